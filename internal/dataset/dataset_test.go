package dataset

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"houseprice/internal/domain"
)

const sample = `MSSubClass,MSZoning,LotArea,OverallQual,SalePrice
60,RL,8450,7,208500
20,RL,9600,6,181500
60,RM,11250,7,223500
70,RL,9550,,140000
`

func load(t *testing.T) *Dataset {
	t.Helper()
	ds, err := Read(strings.NewReader(sample))
	require.NoError(t, err)
	return ds
}

func TestLoadMissingFile(t *testing.T) {
	ds, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Nil(t, ds)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDatasetUnavailable))
	assert.True(t, errors.Is(err, os.ErrNotExist))

	var loadErr *domain.DatasetLoadError
	assert.True(t, errors.As(err, &loadErr))
}

func TestLoadRejectsRaggedRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b\n1,2,3\n"), 0o644))
	_, err := Load(path)
	assert.ErrorIs(t, err, domain.ErrDatasetUnavailable)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "train.csv")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))
	ds, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, ds.Len())
}

func TestDTypes(t *testing.T) {
	ds := load(t)
	assert.Equal(t, []ColumnType{
		{"MSSubClass", Int64},
		{"MSZoning", Object},
		{"LotArea", Int64},
		{"OverallQual", Float64},
		{"SalePrice", Int64},
	}, ds.DTypes())
}

func TestHead(t *testing.T) {
	ds := load(t)
	head := ds.Head(2)
	require.Len(t, head, 2)
	assert.Equal(t, []string{"20", "RL", "9600", "6", "181500"}, head[1])
	assert.Len(t, ds.Head(10), 4)
	assert.Empty(t, ds.Head(-1))

	head[0][0] = "changed"
	assert.Equal(t, "60", ds.Head(1)[0][0], "head returns copies")
}

func TestDescribe(t *testing.T) {
	ds := load(t)
	summaries := ds.Describe()
	require.Len(t, summaries, 4)

	price := summaries[3]
	assert.Equal(t, "SalePrice", price.Column)
	assert.Equal(t, 4, price.Count)
	assert.InDelta(t, 188375.0, price.Mean, 1e-9)
	assert.Equal(t, 140000.0, price.Min)
	assert.Equal(t, 223500.0, price.Max)
	assert.InDelta(t, 171125.0, price.Q25, 1e-9)
	assert.InDelta(t, 195000.0, price.Q50, 1e-9)
	assert.InDelta(t, 212250.0, price.Q75, 1e-9)
	assert.InDelta(t, 36634.17, price.Std, 0.01)

	qual := summaries[2]
	assert.Equal(t, "OverallQual", qual.Column)
	assert.Equal(t, 3, qual.Count)
}

func TestDescribeSingleValue(t *testing.T) {
	s := summarize("x", []float64{5})
	assert.Equal(t, 5.0, s.Mean)
	assert.True(t, math.IsNaN(s.Std))
	assert.Equal(t, 5.0, s.Q75)
}

func TestHistogram(t *testing.T) {
	ds := load(t)
	h, err := ds.Histogram("SalePrice", 3)
	require.NoError(t, err)
	assert.Len(t, h.Edges, 4)
	assert.Equal(t, 140000.0, h.Edges[0])
	assert.InDelta(t, 223500.0, h.Edges[3], 1e-6)
	assert.Equal(t, []int{1, 1, 2}, h.Counts)

	total := 0
	for _, c := range h.Counts {
		total += c
	}
	assert.Equal(t, ds.Len(), total)

	_, err = ds.Histogram("MSZoning", 3)
	assert.ErrorContains(t, err, "not numeric")
	_, err = ds.Histogram("Missing", 3)
	assert.ErrorContains(t, err, "not found")
	_, err = ds.Histogram("SalePrice", 0)
	assert.Error(t, err)
}

func TestInfiniteCellsAreSkipped(t *testing.T) {
	ds, err := Read(strings.NewReader("SalePrice\n100\n200\ninf\n-Infinity\n"))
	require.NoError(t, err)
	assert.Equal(t, []ColumnType{{"SalePrice", Float64}}, ds.DTypes())

	x, err := ds.Column("SalePrice")
	require.NoError(t, err)
	assert.Equal(t, []float64{100, 200}, x)

	h, err := ds.Histogram("SalePrice", 3)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0, 1}, h.Counts)

	s := ds.Describe()
	require.Len(t, s, 1)
	assert.Equal(t, 2, s[0].Count)
	assert.Equal(t, 200.0, s[0].Max)
}
