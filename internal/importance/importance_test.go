package importance

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"houseprice/internal/domain"
)

type plainModel struct{}

func (plainModel) Name() string { return "plain" }
func (plainModel) Predict(context.Context, [][]float64) ([]float64, error) {
	return []float64{0}, nil
}

type reportingModel struct {
	plainModel
	values []float64
}

func (m reportingModel) FeatureImportances() ([]float64, bool) { return m.values, m.values != nil }

var names = []string{"Lot Area", "Overall Quality", "Pool Area"}

func TestIllustrativeIsSeededAndSorted(t *testing.T) {
	a, err := NewIllustrative(names, 7).Ranking()
	require.NoError(t, err)
	b, err := NewIllustrative(names, 7).Ranking()
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.True(t, a.Illustrative)
	require.Len(t, a.Items, 3)
	for i := 1; i < len(a.Items); i++ {
		assert.GreaterOrEqual(t, a.Items[i-1].Value, a.Items[i].Value)
	}
}

func TestFromModel(t *testing.T) {
	src, err := NewFromModel(names, reportingModel{values: []float64{0.2, 0.7, 0.1}})
	require.NoError(t, err)
	r, err := src.Ranking()
	require.NoError(t, err)
	assert.False(t, r.Illustrative)
	assert.Equal(t, []Item{
		{"Overall Quality", 0.7},
		{"Lot Area", 0.2},
		{"Pool Area", 0.1},
	}, r.Items)
	assert.Equal(t, []Item{{"Overall Quality", 0.7}}, r.Top(1).Items)
	assert.Len(t, r.Top(10).Items, 3)

	_, err = NewFromModel(names, plainModel{})
	assert.ErrorIs(t, err, ErrNotReported)
	_, err = NewFromModel(names, reportingModel{values: []float64{1}})
	assert.ErrorIs(t, err, ErrNotReported)
}

func TestSelect(t *testing.T) {
	src, err := Select(ModeAuto, names, plainModel{}, 1)
	require.NoError(t, err)
	assert.IsType(t, &Illustrative{}, src)

	src, err = Select(ModeAuto, names, reportingModel{values: []float64{1, 2, 3}}, 1)
	require.NoError(t, err)
	assert.IsType(t, &FromModel{}, src)

	src, err = Select(ModeAuto, names, nil, 1)
	require.NoError(t, err)
	assert.IsType(t, &Illustrative{}, src)

	_, err = Select(ModeModel, names, plainModel{}, 1)
	assert.ErrorIs(t, err, ErrNotReported)
	_, err = Select(ModeModel, names, nil, 1)
	assert.ErrorIs(t, err, domain.ErrModelUnavailable)

	_, err = Select("gradient", names, nil, 1)
	assert.Error(t, err)
}
