package features

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"houseprice/internal/category"
	"houseprice/internal/domain"
)

// Kind tells the form how a field is edited.
type Kind int

const (
	KindNumber Kind = iota
	KindSlider
	KindChoice
	KindYear
)

// Field describes one form control bound to a RawInputs attribute.
type Field struct {
	Key   string
	Label string
	Help  string
	Group string
	Kind  Kind

	Min, Max, Step float64
	Optional       bool

	whole bool

	get     func(*RawInputs) float64
	set     func(*RawInputs, float64)
	options []string
	index   func(*RawInputs) int
	choose  func(*RawInputs, int)
}

// Options returns the choice labels of a KindChoice field.
func (f Field) Options() []string { return f.options }

// Value renders the field's current value.
func (f Field) Value(in *RawInputs) string {
	switch f.Kind {
	case KindChoice:
		i := f.index(in)
		if i < 0 {
			return "<invalid>"
		}
		return f.options[i]
	case KindYear:
		y := int(f.get(in))
		if f.Optional && y <= MinYear {
			return "none"
		}
		return strconv.Itoa(y)
	default:
		return strconv.FormatFloat(f.get(in), 'f', -1, 64)
	}
}

// Number returns the numeric value of a non-choice field.
func (f Field) Number(in *RawInputs) float64 {
	if f.Kind == KindChoice {
		return float64(f.index(in))
	}
	return f.get(in)
}

// Nudge moves the field by n steps, clamped to its bounds. Choices wrap around.
func (f Field) Nudge(in *RawInputs, n int) {
	if f.Kind == KindChoice {
		f.choose(in, f.index(in)+n)
		return
	}
	v := f.get(in) + float64(n)*f.Step
	f.set(in, math.Max(f.Min, math.Min(f.Max, v)))
}

// Set parses s and stores it. Numbers are range-checked; labels must belong to the table.
func (f Field) Set(in *RawInputs, s string) error {
	s = strings.TrimSpace(s)
	if f.Kind == KindChoice {
		for i, label := range f.options {
			if label == s {
				f.choose(in, i)
				return nil
			}
		}
		return &domain.EncodingError{Attribute: f.Key, Label: s}
	}
	if f.Kind == KindYear && f.Optional && strings.EqualFold(s, "none") {
		f.set(in, MinYear)
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("%s: %w", f.Key, err)
	}
	if f.whole && v != math.Trunc(v) {
		return fmt.Errorf("%s: %g is not a whole number", f.Key, v)
	}
	if err := f.check(v); err != nil {
		return err
	}
	f.set(in, v)
	return nil
}

func (f Field) check(v float64) error {
	if v < f.Min || v > f.Max || math.IsNaN(v) {
		return &domain.ValidationError{Field: f.Key, Value: v, Min: f.Min, Max: f.Max}
	}
	return nil
}

// Fields returns the form controls in display order, grouped like the form.
// Year controls are bounded by currentYear.
func Fields(currentYear int) []Field {
	yearMax := float64(currentYear)
	return []Field{
		number("MSSubClass", "MS SubClass", "Identifies the type of dwelling involved in the sale", groupBasic, 20, 190, 5,
			func(in *RawInputs) *int { return &in.MSSubClass }),
		choice(category.ZoningTable, "MS Zoning", "Identifies the general zoning classification of the sale", groupBasic,
			func(in *RawInputs) *category.Zoning { return &in.Zoning }),
		area("LotArea", "Lot Area (sq ft)", "Lot size in square feet", groupBasic, 1000, 50000, 500,
			func(in *RawInputs) *float64 { return &in.LotArea }),
		choice(category.LotConfigTable, "Lot Configuration", "Lot configuration", groupBasic,
			func(in *RawInputs) *category.LotConfig { return &in.LotConfig }),
		choice(category.NeighborhoodTable, "Neighborhood", "Physical locations within Ames city limits", groupBasic,
			func(in *RawInputs) *category.Neighborhood { return &in.Neighborhood }),
		choice(category.HouseStyleTable, "House Style", "Style of dwelling", groupBasic,
			func(in *RawInputs) *category.HouseStyle { return &in.HouseStyle }),

		slider("OverallQual", "Overall Quality", "Rates the overall material and finish of the house", groupQuality, 1, 10,
			func(in *RawInputs) *int { return &in.OverallQual }),
		slider("OverallCond", "Overall Condition", "Rates the overall condition of the house", groupQuality, 1, 10,
			func(in *RawInputs) *int { return &in.OverallCond }),
		choice(category.KitchenQualTable, "Kitchen Quality", "Kitchen quality", groupQuality,
			func(in *RawInputs) *category.KitchenQual { return &in.KitchenQual }),
		choice(category.HeatingQCTable, "Heating Quality", "Heating quality and condition", groupQuality,
			func(in *RawInputs) *category.HeatingQC { return &in.HeatingQC }),
		choice(category.FunctionalTable, "Home Functionality", "Home functionality rating", groupQuality,
			func(in *RawInputs) *category.Functional { return &in.Functional }),

		area("1stFlrSF", "1st Floor Area (sq ft)", "First Floor square feet", groupSize, 300, 5000, 100,
			func(in *RawInputs) *float64 { return &in.FirstFlrSF }),
		area("2ndFlrSF", "2nd Floor Area (sq ft)", "Second floor square feet", groupSize, 0, 5000, 100,
			func(in *RawInputs) *float64 { return &in.SecondFlrSF }),
		area("TotalBsmtSF", "Total Basement Area (sq ft)", "Total square feet of basement area", groupSize, 0, 5000, 100,
			func(in *RawInputs) *float64 { return &in.TotalBsmtSF }),
		area("GarageArea", "Garage Area (sq ft)", "Size of garage in square feet", groupSize, 0, 2000, 50,
			func(in *RawInputs) *float64 { return &in.GarageArea }),
		slider("GarageCars", "Garage Size (car capacity)", "Size of garage in car capacity", groupSize, 0, 5,
			func(in *RawInputs) *int { return &in.GarageCars }),

		year("YearBuilt", "Year Built", "Original construction date", yearMax,
			func(in *RawInputs) float64 { return float64(in.YearBuilt) },
			func(in *RawInputs, v float64) { in.YearBuilt = int(v) }),
		optionalYear("YearRemodAdd", "Year Renovated", "Remodel date; leave at 1800 for none", yearMax,
			func(in *RawInputs) *OptionalYear { return &in.YearRemodAdd }),
		optionalYear("GarageYrBlt", "Garage Year Built", "Year garage was built; leave at 1800 for none", yearMax,
			func(in *RawInputs) *OptionalYear { return &in.GarageYrBlt }),

		choice(category.BsmtExposureTable, "Basement Exposure", "Walkout or garden level walls", groupBasement,
			func(in *RawInputs) *category.BsmtExposure { return &in.BsmtExposure }),
		area("BsmtFinSF1", "BsmtFinSF1", "Type 1 finished square feet", groupBasement, 0, 5000, 50,
			func(in *RawInputs) *float64 { return &in.BsmtFinSF1 }),
		area("BsmtFinSF2", "BsmtFinSF2", "Type 2 finished square feet", groupBasement, 0, 5000, 50,
			func(in *RawInputs) *float64 { return &in.BsmtFinSF2 }),
		area("BsmtUnfSF", "BsmtUnfSF", "Unfinished square feet of basement area", groupBasement, 0, 5000, 50,
			func(in *RawInputs) *float64 { return &in.BsmtUnfSF }),
		number("BsmtFullBath", "Basement Full Bathrooms", "Basement full bathrooms", groupBasement, 0, 3, 1,
			func(in *RawInputs) *int { return &in.BsmtFullBath }),

		choice(category.Exterior1stTable, "Exterior Covering", "Exterior covering on house", groupExterior,
			func(in *RawInputs) *category.Exterior1st { return &in.Exterior1st }),
		choice(category.FoundationTable, "Foundation Type", "Type of foundation", groupExterior,
			func(in *RawInputs) *category.Foundation { return &in.Foundation }),
		choice(category.FireplaceQuTable, "Fireplace Quality", "Fireplace quality", groupExterior,
			func(in *RawInputs) *category.FireplaceQu { return &in.FireplaceQu }),
		choice(category.GarageTypeTable, "Garage Type", "Garage location", groupExterior,
			func(in *RawInputs) *category.GarageType { return &in.GarageType }),
		choice(category.GarageFinishTable, "Garage Finish", "Interior finish of the garage", groupExterior,
			func(in *RawInputs) *category.GarageFinish { return &in.GarageFinish }),

		area("WoodDeckSF", "Wood Deck Area (sq ft)", "Wood deck area in square feet", groupOutdoor, 0, 1000, 50,
			func(in *RawInputs) *float64 { return &in.WoodDeckSF }),
		area("OpenPorchSF", "Open Porch Area (sq ft)", "Open porch area in square feet", groupOutdoor, 0, 500, 25,
			func(in *RawInputs) *float64 { return &in.OpenPorchSF }),
		area("EnclosedPorch", "Enclosed Porch Area (sq ft)", "Enclosed porch area in square feet", groupOutdoor, 0, 500, 25,
			func(in *RawInputs) *float64 { return &in.EnclosedPorch }),
		area("3SsnPorch", "3 Season Porch Area (sq ft)", "Three season porch area in square feet", groupOutdoor, 0, 500, 25,
			func(in *RawInputs) *float64 { return &in.ThreeSsnPorch }),
		area("ScreenPorch", "Screen Porch Area (sq ft)", "Screen porch area in square feet", groupOutdoor, 0, 500, 25,
			func(in *RawInputs) *float64 { return &in.ScreenPorch }),
		area("PoolArea", "Pool Area (sq ft)", "Pool area in square feet", groupOutdoor, 0, 1000, 50,
			func(in *RawInputs) *float64 { return &in.PoolArea }),

		area("LowQualFinSF", "Low Quality Finished Area (sq ft)", "Low quality finished square feet (all floors)", groupAdditional, 0, 1000, 50,
			func(in *RawInputs) *float64 { return &in.LowQualFinSF }),
		number("TotRmsAbvGrd", "Total Rooms Above Grade", "Total rooms above grade (does not include bathrooms)", groupAdditional, 2, 15, 1,
			func(in *RawInputs) *int { return &in.TotRmsAbvGrd }),
		choice(category.SaleConditionTable, "Sale Condition", "Condition of sale", groupAdditional,
			func(in *RawInputs) *category.SaleCondition { return &in.SaleCondition }),
	}
}

const (
	groupBasic      = "Basic Information"
	groupQuality    = "Quality & Condition"
	groupSize       = "Size & Area"
	groupAge        = "Age & Renovation"
	groupBasement   = "Basement Features"
	groupExterior   = "Exterior Features"
	groupOutdoor    = "Outdoor Features"
	groupAdditional = "Additional Features"
)

func number(key, label, help, group string, lo, hi, step float64, ptr func(*RawInputs) *int) Field {
	return Field{
		Key: key, Label: label, Help: help, Group: group, Kind: KindNumber,
		Min: lo, Max: hi, Step: step, whole: true,
		get: func(in *RawInputs) float64 { return float64(*ptr(in)) },
		set: func(in *RawInputs, v float64) { *ptr(in) = int(v) },
	}
}

func slider(key, label, help, group string, lo, hi float64, ptr func(*RawInputs) *int) Field {
	f := number(key, label, help, group, lo, hi, 1, ptr)
	f.Kind = KindSlider
	return f
}

func area(key, label, help, group string, lo, hi, step float64, ptr func(*RawInputs) *float64) Field {
	return Field{
		Key: key, Label: label, Help: help, Group: group, Kind: KindNumber,
		Min: lo, Max: hi, Step: step,
		get: func(in *RawInputs) float64 { return *ptr(in) },
		set: func(in *RawInputs, v float64) { *ptr(in) = v },
	}
}

func year(key, label, help string, hi float64, get func(*RawInputs) float64, set func(*RawInputs, float64)) Field {
	return Field{
		Key: key, Label: label, Help: help, Group: groupAge, Kind: KindYear,
		Min: MinYear, Max: hi, Step: 1, whole: true,
		get: get, set: set,
	}
}

func optionalYear(key, label, help string, hi float64, ptr func(*RawInputs) *OptionalYear) Field {
	f := year(key, label, help, hi,
		func(in *RawInputs) float64 { return float64(ptr(in).Slider()) },
		func(in *RawInputs, v float64) { *ptr(in) = YearFromSlider(int(v)) })
	f.Optional = true
	return f
}

func choice[T category.Code](table *category.Table[T], label, help, group string, ptr func(*RawInputs) *T) Field {
	return Field{
		Key: table.Attribute(), Label: label, Help: help, Group: group, Kind: KindChoice,
		Min: 0, Max: float64(table.Len() - 1), Step: 1,
		options: table.Labels(),
		index:   func(in *RawInputs) int { return table.Index(*ptr(in)) },
		choose:  func(in *RawInputs, i int) { *ptr(in) = table.At(i) },
	}
}

// Validate checks every field against the form bounds and every choice against its table.
func Validate(in RawInputs, currentYear int) error {
	var errs []error
	for _, f := range Fields(currentYear) {
		if f.Kind == KindChoice {
			if f.index(&in) < 0 {
				errs = append(errs, &domain.EncodingError{Attribute: f.Key, Label: "<invalid>"})
			}
			continue
		}
		if err := f.check(f.get(&in)); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
