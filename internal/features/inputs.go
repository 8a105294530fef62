package features

import (
	"strconv"

	"houseprice/internal/category"
)

// MinYear is the lower bound of every year control.
const MinYear = 1800

// OptionalYear is a calendar year that may be left unset (no renovation, no garage).
type OptionalYear struct {
	year int
	set  bool
}

// YearOf returns a set OptionalYear.
func YearOf(y int) OptionalYear { return OptionalYear{year: y, set: true} }

// NoYear returns an unset OptionalYear.
func NoYear() OptionalYear { return OptionalYear{} }

// YearFromSlider converts a slider position to an OptionalYear. The slider minimum doubles as
// "not set", so an explicit choice of 1800 cannot be told apart from an untouched control.
func YearFromSlider(y int) OptionalYear {
	if y <= MinYear {
		return NoYear()
	}
	return YearOf(y)
}

// Get returns the year and whether it is set.
func (y OptionalYear) Get() (int, bool) { return y.year, y.set }

// IsSet reports whether a year was given.
func (y OptionalYear) IsSet() bool { return y.set }

// Slider returns the slider position for y, MinYear when unset.
func (y OptionalYear) Slider() int {
	if !y.set {
		return MinYear
	}
	return y.year
}

func (y OptionalYear) String() string {
	if !y.set {
		return "none"
	}
	return strconv.Itoa(y.year)
}

// RawInputs holds one value per house attribute as entered in the form.
type RawInputs struct {
	MSSubClass    int
	Zoning        category.Zoning
	LotArea       float64
	LotConfig     category.LotConfig
	Neighborhood  category.Neighborhood
	HouseStyle    category.HouseStyle
	OverallQual   int
	OverallCond   int
	YearBuilt     int
	YearRemodAdd  OptionalYear
	Exterior1st   category.Exterior1st
	Foundation    category.Foundation
	BsmtExposure  category.BsmtExposure
	BsmtFinSF1    float64
	BsmtFinSF2    float64
	BsmtUnfSF     float64
	TotalBsmtSF   float64
	HeatingQC     category.HeatingQC
	FirstFlrSF    float64
	SecondFlrSF   float64
	LowQualFinSF  float64
	BsmtFullBath  int
	KitchenQual   category.KitchenQual
	TotRmsAbvGrd  int
	Functional    category.Functional
	FireplaceQu   category.FireplaceQu
	GarageType    category.GarageType
	GarageYrBlt   OptionalYear
	GarageFinish  category.GarageFinish
	GarageCars    int
	GarageArea    float64
	WoodDeckSF    float64
	OpenPorchSF   float64
	EnclosedPorch float64
	ThreeSsnPorch float64
	ScreenPorch   float64
	PoolArea      float64
	SaleCondition category.SaleCondition
}

// DefaultInputs returns the values the form starts with. Each choice defaults to its first label.
func DefaultInputs() RawInputs {
	return RawInputs{
		MSSubClass:    60,
		Zoning:        category.ZoningTable.Default(),
		LotArea:       10000,
		LotConfig:     category.LotConfigTable.Default(),
		Neighborhood:  category.NeighborhoodTable.Default(),
		HouseStyle:    category.HouseStyleTable.Default(),
		OverallQual:   6,
		OverallCond:   6,
		YearBuilt:     1990,
		YearRemodAdd:  YearOf(1990),
		Exterior1st:   category.Exterior1stTable.Default(),
		Foundation:    category.FoundationTable.Default(),
		BsmtExposure:  category.BsmtExposureTable.Default(),
		TotalBsmtSF:   1000,
		HeatingQC:     category.HeatingQCTable.Default(),
		FirstFlrSF:    1500,
		KitchenQual:   category.KitchenQualTable.Default(),
		TotRmsAbvGrd:  6,
		Functional:    category.FunctionalTable.Default(),
		FireplaceQu:   category.FireplaceQuTable.Default(),
		GarageType:    category.GarageTypeTable.Default(),
		GarageYrBlt:   YearOf(1990),
		GarageFinish:  category.GarageFinishTable.Default(),
		GarageCars:    2,
		GarageArea:    500,
		SaleCondition: category.SaleConditionTable.Default(),
	}
}
