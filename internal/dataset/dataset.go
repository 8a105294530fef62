package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"houseprice/internal/domain"
)

// DType is the inferred type of a column, named like pandas dtypes.
type DType string

const (
	Int64   DType = "int64"
	Float64 DType = "float64"
	Object  DType = "object"
)

// Dataset is a read-only table of historical sales.
type Dataset struct {
	header []string
	rows   [][]string
	dtypes []DType
}

// Load reads a CSV file with a header row. Any failure is reported as a DatasetLoadError.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &domain.DatasetLoadError{Path: path, Err: err}
	}
	defer f.Close()
	ds, err := Read(f)
	if err != nil {
		return nil, &domain.DatasetLoadError{Path: path, Err: err}
	}
	return ds, nil
}

// Read parses CSV data from r.
func Read(r io.Reader) (*Dataset, error) {
	cr := csv.NewReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csv: %w", err)
	}
	if len(records) == 0 {
		return nil, errors.New("csv: empty file")
	}
	header := records[0]
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	ds := &Dataset{header: header, rows: records[1:]}
	ds.dtypes = make([]DType, len(header))
	for j := range header {
		ds.dtypes[j] = inferType(ds.rows, j)
	}
	return ds, nil
}

func inferType(rows [][]string, col int) DType {
	t := Int64
	for _, r := range rows {
		v := strings.TrimSpace(r[col])
		if isMissing(v) {
			// pandas promotes integer columns with gaps to float64
			if t == Int64 {
				t = Float64
			}
			continue
		}
		if t == Int64 {
			if _, err := strconv.ParseInt(v, 10, 64); err == nil {
				continue
			}
			t = Float64
		}
		if _, err := strconv.ParseFloat(v, 64); err != nil {
			return Object
		}
	}
	return t
}

func isMissing(v string) bool {
	return v == "" || v == "NA" || v == "NaN" || v == "nan"
}

// Columns returns the header names.
func (d *Dataset) Columns() []string {
	out := make([]string, len(d.header))
	copy(out, d.header)
	return out
}

// Len returns the number of data rows.
func (d *Dataset) Len() int { return len(d.rows) }

// DTypes returns the inferred column types in column order.
func (d *Dataset) DTypes() []ColumnType {
	out := make([]ColumnType, len(d.header))
	for i, h := range d.header {
		out[i] = ColumnType{Name: h, Type: d.dtypes[i]}
	}
	return out
}

// ColumnType pairs a column with its inferred type.
type ColumnType struct {
	Name string
	Type DType
}

// Head returns up to n rows as raw cells.
func (d *Dataset) Head(n int) [][]string {
	if n > len(d.rows) {
		n = len(d.rows)
	}
	if n < 0 {
		n = 0
	}
	out := make([][]string, n)
	for i := 0; i < n; i++ {
		out[i] = append([]string(nil), d.rows[i]...)
	}
	return out
}

func (d *Dataset) index(name string) (int, error) {
	for i, h := range d.header {
		if h == name {
			return i, nil
		}
	}
	return -1, fmt.Errorf("column %q not found", name)
}

// Column returns the finite, non-missing values of a numeric column.
func (d *Dataset) Column(name string) ([]float64, error) {
	j, err := d.index(name)
	if err != nil {
		return nil, err
	}
	if d.dtypes[j] == Object {
		return nil, fmt.Errorf("column %q is not numeric", name)
	}
	return d.numeric(j), nil
}

func (d *Dataset) numeric(j int) []float64 {
	out := make([]float64, 0, len(d.rows))
	for _, r := range d.rows {
		v := strings.TrimSpace(r[j])
		if isMissing(v) {
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			continue
		}
		out = append(out, f)
	}
	return out
}
