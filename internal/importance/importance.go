package importance

import (
	"errors"
	"math/rand"
	"sort"

	"houseprice/internal/domain"
)

// Mode selects where importances come from.
type Mode string

const (
	ModeAuto         Mode = "auto"
	ModeModel        Mode = "model"
	ModeIllustrative Mode = "illustrative"
)

// ErrNotReported means the loaded model does not expose importances.
var ErrNotReported = errors.New("model does not report feature importances")

// Item is one feature and its importance.
type Item struct {
	Feature string
	Value   float64
}

// Ranking is a list of features ordered by descending importance.
type Ranking struct {
	Items []Item
	// Illustrative is true when the values are placeholders and say nothing about the model.
	Illustrative bool
}

// Top returns the n most important features.
func (r Ranking) Top(n int) Ranking {
	if n < 0 || n > len(r.Items) {
		n = len(r.Items)
	}
	return Ranking{Items: r.Items[:n], Illustrative: r.Illustrative}
}

// Source produces a ranking.
type Source interface {
	Ranking() (Ranking, error)
}

func rank(names []string, values []float64, illustrative bool) Ranking {
	items := make([]Item, len(names))
	for i, n := range names {
		items[i] = Item{Feature: n, Value: values[i]}
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].Value > items[j].Value })
	return Ranking{Items: items, Illustrative: illustrative}
}

// Illustrative draws placeholder values from a seeded generator.
type Illustrative struct {
	names []string
	rng   *rand.Rand
}

// NewIllustrative creates a placeholder source. The same seed yields the same sequence of rankings.
func NewIllustrative(names []string, seed int64) *Illustrative {
	return &Illustrative{names: names, rng: rand.New(rand.NewSource(seed))}
}

// Ranking returns a fresh placeholder ranking on every call.
func (s *Illustrative) Ranking() (Ranking, error) {
	values := make([]float64, len(s.names))
	for i := range values {
		values[i] = s.rng.Float64()
	}
	return rank(s.names, values, true), nil
}

// FromModel reads importances from a model that reports them.
type FromModel struct {
	names    []string
	reporter domain.ImportanceReporter
}

// NewFromModel wraps a regressor. It fails with ErrNotReported when the model cannot report.
func NewFromModel(names []string, model domain.Regressor) (*FromModel, error) {
	rep, ok := model.(domain.ImportanceReporter)
	if !ok {
		return nil, ErrNotReported
	}
	if values, ok := rep.FeatureImportances(); !ok || len(values) != len(names) {
		return nil, ErrNotReported
	}
	return &FromModel{names: names, reporter: rep}, nil
}

// Ranking returns the model's importances, highest first.
func (s *FromModel) Ranking() (Ranking, error) {
	values, ok := s.reporter.FeatureImportances()
	if !ok || len(values) != len(s.names) {
		return Ranking{}, ErrNotReported
	}
	return rank(s.names, values, false), nil
}

// Select picks a source for the mode. In auto mode a model without importances falls back to
// illustrative values; model mode fails instead.
func Select(mode Mode, names []string, model domain.Regressor, seed int64) (Source, error) {
	switch mode {
	case ModeIllustrative:
		return NewIllustrative(names, seed), nil
	case ModeModel:
		if model == nil {
			return nil, domain.ErrModelUnavailable
		}
		return NewFromModel(names, model)
	case ModeAuto, "":
		if model != nil {
			if src, err := NewFromModel(names, model); err == nil {
				return src, nil
			}
		}
		return NewIllustrative(names, seed), nil
	default:
		return nil, errors.New("unknown importance mode: " + string(mode))
	}
}
