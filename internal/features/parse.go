package features

import (
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// ParseInputs reads a YAML mapping of training column names to values on top of the form defaults.
// Choices are given by label, optional years accept "none".
func ParseInputs(data []byte, currentYear int) (RawInputs, error) {
	in := DefaultInputs()
	var doc map[string]yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return in, fmt.Errorf("parse inputs: %w", err)
	}
	fields := Fields(currentYear)
	known := make(map[string]bool, len(fields))
	for _, f := range fields {
		known[f.Key] = true
	}
	keys := make([]string, 0, len(doc))
	for key := range doc {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	for _, key := range keys {
		if !known[key] {
			return in, fmt.Errorf("parse inputs: unknown field %q", key)
		}
	}
	// Form order keeps the reported error stable when several values are bad.
	for _, f := range fields {
		node, ok := doc[f.Key]
		if !ok {
			continue
		}
		if node.Kind != yaml.ScalarNode {
			return in, fmt.Errorf("parse inputs: %s must be a scalar", f.Key)
		}
		if err := f.Set(&in, node.Value); err != nil {
			return in, fmt.Errorf("parse inputs: %w", err)
		}
	}
	return in, nil
}

// LoadInputs reads inputs from a YAML file.
func LoadInputs(path string, currentYear int) (RawInputs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RawInputs{}, err
	}
	return ParseInputs(data, currentYear)
}
