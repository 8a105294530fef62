package linear

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"

	"gonum.org/v1/gonum/mat"
	"gopkg.in/yaml.v3"
)

// Artifact is the on-disk form of a fitted linear regression.
type Artifact struct {
	Intercept    float64   `yaml:"intercept"`
	Coefficients []float64 `yaml:"coefficients"`
	Importances  []float64 `yaml:"importances,omitempty"`
	FeatureNames []string  `yaml:"feature_names,omitempty"`
}

// Model predicts intercept + coefficients·row.
type Model struct {
	intercept   float64
	coef        *mat.VecDense
	importances []float64
}

// New builds a model from an artifact, checking it against the expected feature count.
func New(a Artifact, dimension int) (*Model, error) {
	if len(a.Coefficients) != dimension {
		return nil, fmt.Errorf("linear: artifact has %d coefficients, want %d", len(a.Coefficients), dimension)
	}
	if a.Importances != nil && len(a.Importances) != dimension {
		return nil, fmt.Errorf("linear: artifact has %d importances, want %d", len(a.Importances), dimension)
	}
	for _, c := range a.Coefficients {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return nil, errors.New("linear: non-finite coefficient")
		}
	}
	coef := make([]float64, dimension)
	copy(coef, a.Coefficients)
	return &Model{intercept: a.Intercept, coef: mat.NewVecDense(dimension, coef), importances: a.Importances}, nil
}

// Load reads a YAML artifact from path.
func Load(path string, dimension int) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var a Artifact
	if err := yaml.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("linear: decode %s: %w", path, err)
	}
	return New(a, dimension)
}

// Name returns the identifier of this model implementation.
func (m *Model) Name() string { return "linear" }

// Predict scores every row; all rows must have the model's width.
func (m *Model) Predict(ctx context.Context, rows [][]float64) ([]float64, error) {
	if len(rows) == 0 {
		return nil, nil
	}
	n := m.coef.Len()
	flat := make([]float64, 0, len(rows)*n)
	for i, r := range rows {
		if len(r) != n {
			return nil, fmt.Errorf("linear: row %d has %d features, want %d", i, len(r), n)
		}
		flat = append(flat, r...)
	}
	x := mat.NewDense(len(rows), n, flat)
	var y mat.VecDense
	y.MulVec(x, m.coef)
	out := make([]float64, len(rows))
	for i := range out {
		out[i] = y.AtVec(i) + m.intercept
	}
	return out, nil
}

// FeatureImportances returns the importances stored in the artifact, if any.
func (m *Model) FeatureImportances() ([]float64, bool) {
	if m.importances == nil {
		return nil, false
	}
	out := make([]float64, len(m.importances))
	copy(out, m.importances)
	return out, true
}
