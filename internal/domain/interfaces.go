package domain

import (
	"context"
	"time"
)

// NumFeatures is the width of the vector the trained model consumes.
const NumFeatures = 38

// FeatureVector is one model input row. Position i always holds the same trained feature.
type FeatureVector [NumFeatures]float64

// Row returns the vector as a slice suitable for batch prediction.
func (v FeatureVector) Row() []float64 {
	row := make([]float64, NumFeatures)
	copy(row, v[:])
	return row
}

// Regressor is a loaded prediction model. It maps a batch of rows to one value per row.
type Regressor interface {
	Name() string
	Predict(ctx context.Context, rows [][]float64) ([]float64, error)
}

// ImportanceReporter is implemented by models that can report per-feature importances.
// The returned slice is aligned with FeatureVector positions.
type ImportanceReporter interface {
	FeatureImportances() ([]float64, bool)
}

// Clock supplies the evaluation time used for derived age features.
type Clock func() time.Time

// CurrentYear returns the calendar year of the clock, falling back to the wall clock.
func (c Clock) CurrentYear() int {
	if c == nil {
		return time.Now().Year()
	}
	return c().Year()
}

// FixedYear returns a clock pinned to January 1st of the given year.
func FixedYear(year int) Clock {
	t := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return func() time.Time { return t }
}
