package service

import (
	"context"
	"errors"
	"math"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"houseprice/internal/dataset"
	"houseprice/internal/domain"
	"houseprice/internal/features"
	"houseprice/internal/importance"
	"houseprice/internal/logging"
)

type fakeModel struct {
	out   []float64
	err   error
	panic bool
	rows  [][]float64
}

func (m *fakeModel) Name() string { return "fake" }

func (m *fakeModel) Predict(_ context.Context, rows [][]float64) ([]float64, error) {
	m.rows = rows
	if m.panic {
		panic("shape mismatch")
	}
	return m.out, m.err
}

func newService(t *testing.T, m domain.Regressor, modelErr error) *PriceService {
	t.Helper()
	return NewPriceService(Deps{
		Assembler: features.NewAssembler(domain.FixedYear(2024)),
		Model:     m,
		ModelErr:  modelErr,
		Logger:    logging.Discard(),
	}, Options{})
}

func TestPredictSuccess(t *testing.T) {
	m := &fakeModel{out: []float64{181500}}
	svc := newService(t, m, nil)

	res, err := svc.Predict(context.Background(), features.DefaultInputs())
	require.NoError(t, err)
	assert.Equal(t, 181500.0, res.Price)
	assert.Equal(t, "$181,500.00", res.Display())
	assert.Equal(t, "fake", res.Model)

	require.Len(t, m.rows, 1)
	assert.Len(t, m.rows[0], domain.NumFeatures)
	assert.Equal(t, res.Vector.Row(), m.rows[0])
	assert.Equal(t, svc.Assemble(features.DefaultInputs()), res.Vector)
}

func TestPredictWithoutModel(t *testing.T) {
	loadErr := &domain.ModelLoadError{Source: "house_price_model.gob", Err: os.ErrNotExist}
	svc := newService(t, nil, loadErr)

	_, err := svc.Predict(context.Background(), features.DefaultInputs())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrModelUnavailable)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Equal(t, loadErr, svc.ModelErr())

	bare := newService(t, nil, nil)
	_, err = bare.Predict(context.Background(), features.DefaultInputs())
	assert.ErrorIs(t, err, domain.ErrModelUnavailable)

	other := newService(t, nil, errors.New("boom"))
	_, err = other.Predict(context.Background(), features.DefaultInputs())
	assert.ErrorIs(t, err, domain.ErrModelUnavailable)
	assert.ErrorContains(t, err, "boom")
}

func TestPredictFailuresBecomePredictionErrors(t *testing.T) {
	cases := map[string]*fakeModel{
		"model error": {err: errors.New("bad input")},
		"empty":       {out: []float64{}},
		"nan":         {out: []float64{math.NaN()}},
		"inf":         {out: []float64{math.Inf(1)}},
		"panic":       {panic: true},
	}
	for name, m := range cases {
		t.Run(name, func(t *testing.T) {
			svc := newService(t, m, nil)
			_, err := svc.Predict(context.Background(), features.DefaultInputs())
			require.Error(t, err)
			var pe *domain.PredictionError
			require.True(t, errors.As(err, &pe), "got %v", err)
			assert.Equal(t, "fake", pe.Model)
		})
	}
}

func TestPredictValidatesInputs(t *testing.T) {
	m := &fakeModel{out: []float64{1}}
	svc := newService(t, m, nil)
	in := features.DefaultInputs()
	in.LotArea = 10
	_, err := svc.Predict(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrOutOfRange)
	assert.Nil(t, m.rows, "model must not be called")
}

func TestImportance(t *testing.T) {
	names := features.Names()
	svc := NewPriceService(Deps{
		Importance: importance.NewIllustrative(names, 1),
		Logger:     logging.Discard(),
	}, Options{TopN: 10})
	r, err := svc.Impact()
	require.NoError(t, err)
	assert.Len(t, r.Items, 10)
	assert.True(t, r.Illustrative)

	all, err := svc.Importance()
	require.NoError(t, err)
	assert.Len(t, all.Items, domain.NumFeatures)

	none := newService(t, nil, nil)
	_, err = none.Impact()
	assert.ErrorIs(t, err, importance.ErrNotReported)
}

const sample = `Id,MSZoning,SalePrice
1,RL,208500
2,RL,181500
3,RM,223500
`

func TestOverview(t *testing.T) {
	ds, err := dataset.Read(strings.NewReader(sample))
	require.NoError(t, err)
	svc := NewPriceService(Deps{Dataset: ds, Logger: logging.Discard()}, Options{HeadRows: 2, HistogramBins: 2})

	ov, err := svc.Overview()
	require.NoError(t, err)
	assert.Equal(t, []string{"Id", "MSZoning", "SalePrice"}, ov.Columns)
	assert.Len(t, ov.Head, 2)
	assert.Len(t, ov.Summary, 2)
	assert.Equal(t, 3, ov.Rows)
	require.NotNil(t, ov.Histogram)
	assert.Equal(t, []int{1, 2}, ov.Histogram.Counts)
	assert.NoError(t, svc.DatasetErr())
}

func TestOverviewWithoutDataset(t *testing.T) {
	loadErr := &domain.DatasetLoadError{Path: "train.csv", Err: os.ErrNotExist}
	svc := NewPriceService(Deps{DatasetErr: loadErr, Logger: logging.Discard()}, Options{})
	_, err := svc.Overview()
	assert.ErrorIs(t, err, domain.ErrDatasetUnavailable)
	assert.Equal(t, loadErr, svc.DatasetErr())
}

func TestOverviewMissingTargetColumn(t *testing.T) {
	ds, err := dataset.Read(strings.NewReader("a,b\n1,2\n"))
	require.NoError(t, err)
	svc := NewPriceService(Deps{Dataset: ds, Logger: logging.Discard()}, Options{})
	ov, err := svc.Overview()
	require.NoError(t, err)
	assert.Nil(t, ov.Histogram)
}
