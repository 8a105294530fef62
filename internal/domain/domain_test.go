package domain

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{181500, "$181,500.00"},
		{1234567.891, "$1,234,567.89"},
		{99.5, "$99.50"},
		{0, "$0.00"},
		{-2500, "-$2,500.00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatCurrency(tt.in))
	}
	assert.Equal(t, "$208,500.00", PredictionResult{Price: 208500}.Display())
}

func TestLoadErrorsUnwrapToSentinelAndCause(t *testing.T) {
	var err error = &ModelLoadError{Source: "model.gob", Err: os.ErrNotExist}
	assert.ErrorIs(t, err, ErrModelUnavailable)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.NotErrorIs(t, err, ErrDatasetUnavailable)

	err = &DatasetLoadError{Path: "train.csv", Err: os.ErrPermission}
	assert.ErrorIs(t, err, ErrDatasetUnavailable)
	assert.ErrorIs(t, err, os.ErrPermission)
	assert.Contains(t, err.Error(), "train.csv")
}

func TestInputErrors(t *testing.T) {
	var err error = &EncodingError{Attribute: "MSZoning", Label: "C (all)"}
	assert.ErrorIs(t, err, ErrUnknownLabel)
	assert.Equal(t, `MSZoning: unknown label "C (all)"`, err.Error())

	err = &ValidationError{Field: "LotArea", Value: 10, Min: 1000, Max: 50000}
	assert.ErrorIs(t, err, ErrOutOfRange)
	assert.Equal(t, "LotArea: 10 outside [1000, 50000]", err.Error())

	cause := errors.New("shape mismatch")
	err = &PredictionError{Model: "forest", Err: cause}
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "prediction failed (forest): shape mismatch", err.Error())
}

func TestClock(t *testing.T) {
	assert.Equal(t, 2024, FixedYear(2024).CurrentYear())
	var wall Clock
	assert.Greater(t, wall.CurrentYear(), 2000)
}

func TestFeatureVectorRowIsACopy(t *testing.T) {
	var v FeatureVector
	v[0] = 60
	row := v.Row()
	assert.Len(t, row, NumFeatures)
	row[0] = 1
	assert.Equal(t, 60.0, v[0])
}
