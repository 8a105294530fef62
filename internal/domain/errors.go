package domain

import (
	"errors"
	"fmt"
)

var (
	ErrModelUnavailable   = errors.New("model not available")
	ErrDatasetUnavailable = errors.New("dataset not available")
	ErrUnknownLabel       = errors.New("unknown category label")
	ErrOutOfRange         = errors.New("value out of range")
)

// ModelLoadError reports that the model artifact could not be loaded.
// Prediction stays disabled for the rest of the process.
type ModelLoadError struct {
	Source string
	Err    error
}

func (e *ModelLoadError) Error() string {
	return fmt.Sprintf("load model %q: %v", e.Source, e.Err)
}

func (e *ModelLoadError) Unwrap() []error { return []error{ErrModelUnavailable, e.Err} }

// DatasetLoadError reports that the dataset file could not be read.
type DatasetLoadError struct {
	Path string
	Err  error
}

func (e *DatasetLoadError) Error() string {
	return fmt.Sprintf("load dataset %q: %v", e.Path, e.Err)
}

func (e *DatasetLoadError) Unwrap() []error { return []error{ErrDatasetUnavailable, e.Err} }

// PredictionError is a failure during a single inference call. The caller may retry with other inputs.
type PredictionError struct {
	Model string
	Err   error
}

func (e *PredictionError) Error() string {
	if e.Model == "" {
		return fmt.Sprintf("prediction failed: %v", e.Err)
	}
	return fmt.Sprintf("prediction failed (%s): %v", e.Model, e.Err)
}

func (e *PredictionError) Unwrap() error { return e.Err }

// EncodingError reports a label missing from its category table.
type EncodingError struct {
	Attribute string
	Label     string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("%s: unknown label %q", e.Attribute, e.Label)
}

func (e *EncodingError) Unwrap() error { return ErrUnknownLabel }

// ValidationError reports a numeric input outside the bounds offered by the form.
type ValidationError struct {
	Field    string
	Value    float64
	Min, Max float64
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %g outside [%g, %g]", e.Field, e.Value, e.Min, e.Max)
}

func (e *ValidationError) Unwrap() error { return ErrOutOfRange }
