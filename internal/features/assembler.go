package features

import "houseprice/internal/domain"

// Assembler turns form inputs into the positional vector the trained model expects.
type Assembler struct {
	clock domain.Clock
}

// NewAssembler creates an assembler that derives ages from the clock's current year.
func NewAssembler(clock domain.Clock) *Assembler {
	return &Assembler{clock: clock}
}

// Name identifies the feature layout.
func (a *Assembler) Name() string { return "ames-38" }

// Dimension returns the number of features produced.
func (a *Assembler) Dimension() int { return domain.NumFeatures }

// CurrentYear is the year ages are computed against.
func (a *Assembler) CurrentYear() int { return a.clock.CurrentYear() }

// Assemble builds the feature vector. The order below is the training column order;
// nothing downstream can detect a reordering.
func (a *Assembler) Assemble(in RawInputs) domain.FeatureVector {
	return AssembleAt(in, a.CurrentYear())
}

// AssembleAt builds the feature vector with ages relative to current.
func AssembleAt(in RawInputs, current int) domain.FeatureVector {
	return domain.FeatureVector{
		float64(in.MSSubClass),
		float64(in.Zoning.Code()),
		in.LotArea,
		float64(in.LotConfig.Code()),
		float64(in.Neighborhood.Code()),
		float64(in.HouseStyle.Code()),
		float64(in.OverallQual),
		float64(in.OverallCond),
		float64(Age(current, in.YearBuilt)),
		float64(OptionalAge(current, in.YearBuilt, in.YearRemodAdd)),
		float64(in.Exterior1st.Code()),
		float64(in.Foundation.Code()),
		float64(in.BsmtExposure.Code()),
		in.BsmtFinSF1,
		in.BsmtFinSF2,
		in.BsmtUnfSF,
		in.TotalBsmtSF,
		float64(in.HeatingQC.Code()),
		in.FirstFlrSF,
		in.SecondFlrSF,
		in.LowQualFinSF,
		float64(in.BsmtFullBath),
		float64(in.KitchenQual.Code()),
		float64(in.TotRmsAbvGrd),
		float64(in.Functional.Code()),
		float64(in.FireplaceQu.Code()),
		float64(in.GarageType.Code()),
		float64(OptionalAge(current, in.YearBuilt, in.GarageYrBlt)),
		float64(in.GarageFinish.Code()),
		float64(in.GarageCars),
		in.GarageArea,
		in.WoodDeckSF,
		in.OpenPorchSF,
		in.EnclosedPorch,
		in.ThreeSsnPorch,
		in.ScreenPorch,
		in.PoolArea,
		float64(in.SaleCondition.Code()),
	}
}

var featureNames = [domain.NumFeatures]string{
	"MS SubClass", "MS Zoning", "Lot Area", "Lot Configuration", "Neighborhood",
	"House Style", "Overall Quality", "Overall Condition", "Years Since Built", "Years Since Renovation",
	"Exterior Covering", "Foundation", "Basement Exposure", "BsmtFinSF1", "BsmtFinSF2",
	"BsmtUnfSF", "Total Basement Area", "Heating Quality", "1st Floor Area", "2nd Floor Area",
	"Low Quality Fin SF", "Basement Full Bath", "Kitchen Quality", "Total Rooms Above Grade", "Functionality",
	"Fireplace Quality", "Garage Type", "Years Since Garage Built", "Garage Finish", "Garage Cars",
	"Garage Area", "Wood Deck Area", "Open Porch Area", "Enclosed Porch Area", "3 Season Porch Area",
	"Screen Porch Area", "Pool Area", "Sale Condition",
}

// Names returns the display name of every vector position.
func Names() []string {
	out := make([]string, domain.NumFeatures)
	copy(out, featureNames[:])
	return out
}
