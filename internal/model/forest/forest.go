package forest

import (
	"context"
	"encoding/gob"
	"errors"
	"fmt"
	"os"
)

// Node is one regression tree node. Leaves carry Value; inner nodes route on Feature <= Threshold.
type Node struct {
	Feature   int
	Threshold float64
	Left      *Node
	Right     *Node
	Value     float64
	IsLeaf    bool
}

// Forest is an averaged ensemble of regression trees.
type Forest struct {
	Trees     []*Node
	NFeatures int
}

// Name returns the identifier of this model implementation.
func (f *Forest) Name() string { return "forest" }

// Predict averages the trees' outputs for every row.
func (f *Forest) Predict(ctx context.Context, rows [][]float64) ([]float64, error) {
	if len(f.Trees) == 0 {
		return nil, errors.New("forest: no trees")
	}
	out := make([]float64, len(rows))
	for i, r := range rows {
		if len(r) != f.NFeatures {
			return nil, fmt.Errorf("forest: row %d has %d features, want %d", i, len(r), f.NFeatures)
		}
		sum := 0.0
		for _, t := range f.Trees {
			v, err := walk(t, r)
			if err != nil {
				return nil, err
			}
			sum += v
		}
		out[i] = sum / float64(len(f.Trees))
	}
	return out, nil
}

func walk(n *Node, x []float64) (float64, error) {
	for n != nil {
		if n.IsLeaf {
			return n.Value, nil
		}
		if n.Feature < 0 || n.Feature >= len(x) {
			return 0, fmt.Errorf("forest: split on feature %d outside row of %d", n.Feature, len(x))
		}
		if x[n.Feature] <= n.Threshold {
			n = n.Left
		} else {
			n = n.Right
		}
	}
	return 0, errors.New("forest: reached a nil branch")
}

// FeatureImportances counts splits per feature, normalised to sum to 1.
func (f *Forest) FeatureImportances() ([]float64, bool) {
	counts := make([]float64, f.NFeatures)
	total := 0.0
	var visit func(n *Node)
	visit = func(n *Node) {
		if n == nil || n.IsLeaf {
			return
		}
		if n.Feature >= 0 && n.Feature < len(counts) {
			counts[n.Feature]++
			total++
		}
		visit(n.Left)
		visit(n.Right)
	}
	for _, t := range f.Trees {
		visit(t)
	}
	if total == 0 {
		return nil, false
	}
	for i := range counts {
		counts[i] /= total
	}
	return counts, true
}

// Save writes the forest as gob.
func (f *Forest) Save(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return gob.NewEncoder(file).Encode(f)
}

// Load reads a gob-encoded forest and checks its width.
func Load(path string, dimension int) (*Forest, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	var f Forest
	if err := gob.NewDecoder(file).Decode(&f); err != nil {
		return nil, fmt.Errorf("forest: decode %s: %w", path, err)
	}
	if f.NFeatures != dimension {
		return nil, fmt.Errorf("forest: model expects %d features, want %d", f.NFeatures, dimension)
	}
	if len(f.Trees) == 0 {
		return nil, errors.New("forest: no trees")
	}
	return &f, nil
}
