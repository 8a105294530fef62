package features

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"houseprice/internal/category"
	"houseprice/internal/domain"
)

func TestAge(t *testing.T) {
	assert.Equal(t, 34, Age(2024, 1990))
	assert.Equal(t, 34, OptionalAge(2024, 1990, YearFromSlider(1800)))
	assert.Equal(t, 34, OptionalAge(2024, 1990, NoYear()))
	assert.Equal(t, 24, OptionalAge(2024, 1990, YearOf(2000)))
	assert.Equal(t, 24, OptionalAge(2024, 1990, YearFromSlider(2000)))
}

func TestYearFromSliderTreatsMinimumAsUnset(t *testing.T) {
	assert.False(t, YearFromSlider(MinYear).IsSet())
	assert.True(t, YearFromSlider(MinYear+1).IsSet())
	assert.Equal(t, MinYear, NoYear().Slider())
	assert.Equal(t, "none", NoYear().String())
	assert.Equal(t, "1995", YearOf(1995).String())

	got, ok := YearOf(2004).Get()
	assert.True(t, ok)
	assert.Equal(t, 2004, got)
}

func TestAssembleLengthAndDeterminism(t *testing.T) {
	a := NewAssembler(domain.FixedYear(2024))
	assert.Equal(t, 38, a.Dimension())
	in := DefaultInputs()
	v1 := a.Assemble(in)
	v2 := a.Assemble(in)
	assert.Equal(t, v1, v2)
	assert.Len(t, v1.Row(), 38)
	assert.Len(t, Names(), 38)
}

func TestAssembleScenario(t *testing.T) {
	in := DefaultInputs()
	in.Zoning = category.ZoningRL
	in.LotConfig = category.LotConfigCorner
	in.Neighborhood = category.NeighborhoodNoRidge
	in.HouseStyle = category.HouseStyle2Story
	in.YearBuilt = 2000
	in.YearRemodAdd = YearFromSlider(1800)
	in.GarageYrBlt = YearFromSlider(1800)

	v := AssembleAt(in, 2024)
	assert.Equal(t, 60.0, v[0])
	assert.Equal(t, 3.0, v[1])
	assert.Equal(t, 10000.0, v[2])
	assert.Equal(t, 1.0, v[3])
	assert.Equal(t, 22.0, v[4])
	assert.Equal(t, 5.0, v[5])
	assert.Equal(t, 24.0, v[8])
	assert.Equal(t, 24.0, v[9])
	assert.Equal(t, 24.0, v[27])
}

func TestAssemblePositions(t *testing.T) {
	in := RawInputs{
		MSSubClass: 1, Zoning: category.ZoningFV, LotArea: 3, LotConfig: category.LotConfigCulDSac,
		Neighborhood: category.NeighborhoodSawyerW, HouseStyle: category.HouseStyleSLvl, OverallQual: 7,
		OverallCond: 8, YearBuilt: 2015, YearRemodAdd: YearOf(2020), Exterior1st: category.Exterior1stVinylSd,
		Foundation: category.FoundationPConc, BsmtExposure: category.BsmtExposureGd, BsmtFinSF1: 14,
		BsmtFinSF2: 15, BsmtUnfSF: 16, TotalBsmtSF: 17, HeatingQC: category.HeatingQCEx, FirstFlrSF: 19,
		SecondFlrSF: 20, LowQualFinSF: 21, BsmtFullBath: 2, KitchenQual: category.KitchenQualGd,
		TotRmsAbvGrd: 9, Functional: category.FunctionalTyp, FireplaceQu: category.FireplaceQuEx,
		GarageType: category.GarageTypeBuiltIn, GarageYrBlt: YearOf(2018), GarageFinish: category.GarageFinishFin,
		GarageCars: 3, GarageArea: 31, WoodDeckSF: 32, OpenPorchSF: 33, EnclosedPorch: 34,
		ThreeSsnPorch: 35, ScreenPorch: 36, PoolArea: 37, SaleCondition: category.SaleConditionPartial,
	}
	want := domain.FeatureVector{
		1, 4, 3, 4, 10, 4, 7, 8, 10, 5,
		10, 4, 4, 14, 15, 16, 17, 4, 19, 20,
		21, 2, 2, 9, 4, 5, 5, 7, 3, 3,
		31, 32, 33, 34, 35, 36, 37, 4,
	}
	assert.Equal(t, want, AssembleAt(in, 2025))
}

func TestFieldsCoverEveryFeature(t *testing.T) {
	fields := Fields(2024)
	require.Len(t, fields, 38)
	keys := make(map[string]bool)
	for _, f := range fields {
		assert.False(t, keys[f.Key], "duplicate key %s", f.Key)
		keys[f.Key] = true
		assert.NotEmpty(t, f.Group)
	}
}

func TestFieldNudgeClampsAndWraps(t *testing.T) {
	in := DefaultInputs()
	fields := byKey(Fields(2024))

	qual := fields["OverallQual"]
	qual.Nudge(&in, 10)
	assert.Equal(t, 10, in.OverallQual)

	sub := fields["MSSubClass"]
	sub.Nudge(&in, 1)
	assert.Equal(t, 65, in.MSSubClass)

	zoning := fields[category.AttrZoning]
	zoning.Nudge(&in, -1)
	assert.Equal(t, category.ZoningFV, in.Zoning)

	remod := fields["YearRemodAdd"]
	in.YearRemodAdd = YearOf(1801)
	remod.Nudge(&in, -1)
	assert.False(t, in.YearRemodAdd.IsSet())
	assert.Equal(t, "none", remod.Value(&in))
}

func TestFieldSet(t *testing.T) {
	in := DefaultInputs()
	fields := byKey(Fields(2024))

	require.NoError(t, fields[category.AttrNeighborhood].Set(&in, "NoRidge"))
	assert.Equal(t, category.NeighborhoodNoRidge, in.Neighborhood)

	err := fields[category.AttrNeighborhood].Set(&in, "Veenker")
	assert.ErrorIs(t, err, domain.ErrUnknownLabel)

	err = fields["LotArea"].Set(&in, "999")
	assert.ErrorIs(t, err, domain.ErrOutOfRange)

	require.NoError(t, fields["LotArea"].Set(&in, "8450.5"))
	assert.Equal(t, 8450.5, in.LotArea)

	assert.Error(t, fields["TotRmsAbvGrd"].Set(&in, "6.5"))
	assert.Error(t, fields["YearBuilt"].Set(&in, "2030"))

	require.NoError(t, fields["GarageYrBlt"].Set(&in, "none"))
	assert.False(t, in.GarageYrBlt.IsSet())
}

func TestValidate(t *testing.T) {
	in := DefaultInputs()
	assert.NoError(t, Validate(in, 2024))

	in.PoolArea = 5000
	in.OverallQual = 0
	err := Validate(in, 2024)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrOutOfRange)

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "OverallQual", verr.Field)

	in = DefaultInputs()
	in.Zoning = category.Zoning(42)
	assert.ErrorIs(t, Validate(in, 2024), domain.ErrUnknownLabel)
	assert.Equal(t, "<invalid>", byKey(Fields(2024))[category.AttrZoning].Value(&in))
}

func TestParseInputs(t *testing.T) {
	doc := []byte(`
MSZoning: RL
LotConfig: Corner
Neighborhood: NoRidge
HouseStyle: 2Story
YearBuilt: 2000
YearRemodAdd: none
GarageYrBlt: 1800
Exterior1st: Wd Sdng
`)
	in, err := ParseInputs(doc, 2024)
	require.NoError(t, err)
	assert.Equal(t, category.Exterior1stWdSdng, in.Exterior1st)
	v := AssembleAt(in, 2024)
	assert.Equal(t, 3.0, v[1])
	assert.Equal(t, 1.0, v[3])
	assert.Equal(t, 22.0, v[4])
	assert.Equal(t, 24.0, v[8])
	assert.Equal(t, 24.0, v[9])

	_, err = ParseInputs([]byte("RoofStyle: Gable\n"), 2024)
	assert.ErrorContains(t, err, "unknown field")

	_, err = ParseInputs([]byte("MSZoning: C (all)\n"), 2024)
	assert.ErrorIs(t, err, domain.ErrUnknownLabel)
}

func TestParseInputsReportsFirstErrorInFormOrder(t *testing.T) {
	doc := []byte("PoolArea: 99999\nScreenPorch: 900\nMSSubClass: 7\n")
	for i := 0; i < 20; i++ {
		_, err := ParseInputs(doc, 2024)
		var verr *domain.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, "MSSubClass", verr.Field)
	}

	for i := 0; i < 20; i++ {
		_, err := ParseInputs([]byte("Zeta: 1\nAlpha: 2\nMSZoning: C (all)\n"), 2024)
		assert.ErrorContains(t, err, `unknown field "Alpha"`)
	}
}

func byKey(fields []Field) map[string]Field {
	m := make(map[string]Field, len(fields))
	for _, f := range fields {
		m[f.Key] = f
	}
	return m
}
