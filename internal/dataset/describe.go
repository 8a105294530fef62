package dataset

import (
	"errors"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary holds the describe() statistics for one numeric column.
type Summary struct {
	Column string
	Count  int
	Mean   float64
	Std    float64
	Min    float64
	Q25    float64
	Q50    float64
	Q75    float64
	Max    float64
}

// Describe summarises every numeric column. Std is the sample standard deviation and quartiles
// interpolate linearly between order statistics, matching pandas.
func (d *Dataset) Describe() []Summary {
	var out []Summary
	for j, h := range d.header {
		if d.dtypes[j] == Object {
			continue
		}
		out = append(out, summarize(h, d.numeric(j)))
	}
	return out
}

func summarize(name string, x []float64) Summary {
	s := Summary{Column: name, Count: len(x)}
	if len(x) == 0 {
		nan := math.NaN()
		s.Mean, s.Std, s.Min, s.Q25, s.Q50, s.Q75, s.Max = nan, nan, nan, nan, nan, nan, nan
		return s
	}
	sorted := append([]float64(nil), x...)
	sort.Float64s(sorted)
	s.Mean = stat.Mean(sorted, nil)
	s.Std = math.NaN()
	if len(sorted) > 1 {
		s.Std = stat.StdDev(sorted, nil)
	}
	s.Min = floats.Min(sorted)
	s.Max = floats.Max(sorted)
	s.Q25 = quantile(0.25, sorted)
	s.Q50 = quantile(0.50, sorted)
	s.Q75 = quantile(0.75, sorted)
	return s
}

// quantile interpolates at position p*(n-1) of sorted data.
func quantile(p float64, sorted []float64) float64 {
	pos := p * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}

// Histogram is an equal-width binning of a numeric column.
type Histogram struct {
	Column string
	Edges  []float64
	Counts []int
}

// Histogram bins a numeric column into the given number of equal-width bins. The last bin
// includes its right edge.
func (d *Dataset) Histogram(column string, bins int) (*Histogram, error) {
	if bins <= 0 {
		return nil, errors.New("histogram: bins must be positive")
	}
	x, err := d.Column(column)
	if err != nil {
		return nil, err
	}
	if len(x) == 0 {
		return nil, errors.New("histogram: column has no values")
	}
	lo, hi := floats.Min(x), floats.Max(x)
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}
	edges := make([]float64, bins+1)
	floats.Span(edges, lo, hi)
	counts := make([]int, bins)
	width := (hi - lo) / float64(bins)
	for _, v := range x {
		i := int((v - lo) / width)
		if i >= bins {
			i = bins - 1
		}
		counts[i]++
	}
	return &Histogram{Column: column, Edges: edges, Counts: counts}, nil
}
