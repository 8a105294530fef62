package category

import "houseprice/internal/domain"

// Code is the constraint shared by every attribute enum. The enum value is the training-time code.
type Code interface {
	~uint8
}

// Entry pairs a display label with its enum value.
type Entry[T Code] struct {
	Label string
	Value T
}

// Table is an immutable label/code vocabulary for one attribute, kept in display order.
type Table[T Code] struct {
	attribute string
	entries   []Entry[T]
	byLabel   map[string]T
}

func newTable[T Code](attribute string, entries ...Entry[T]) *Table[T] {
	t := &Table[T]{attribute: attribute, entries: entries, byLabel: make(map[string]T, len(entries))}
	for _, e := range entries {
		if _, dup := t.byLabel[e.Label]; dup {
			panic("category: duplicate label " + e.Label + " in " + attribute)
		}
		t.byLabel[e.Label] = e.Value
	}
	return t
}

// Attribute returns the attribute name this table encodes.
func (t *Table[T]) Attribute() string { return t.attribute }

// Len returns the number of labels.
func (t *Table[T]) Len() int { return len(t.entries) }

// Labels returns the labels in display order.
func (t *Table[T]) Labels() []string {
	out := make([]string, len(t.entries))
	for i, e := range t.entries {
		out[i] = e.Label
	}
	return out
}

// Options returns the enum values in display order.
func (t *Table[T]) Options() []T {
	out := make([]T, len(t.entries))
	for i, e := range t.entries {
		out[i] = e.Value
	}
	return out
}

// Default is the first option in display order.
func (t *Table[T]) Default() T { return t.entries[0].Value }

// Label returns the display label of v, or "" when v is not part of the table.
func (t *Table[T]) Label(v T) string {
	for _, e := range t.entries {
		if e.Value == v {
			return e.Label
		}
	}
	return ""
}

// Index returns the display position of v, or -1.
func (t *Table[T]) Index(v T) int {
	for i, e := range t.entries {
		if e.Value == v {
			return i
		}
	}
	return -1
}

// At returns the value at display position i, wrapping around in both directions.
func (t *Table[T]) At(i int) T {
	n := len(t.entries)
	return t.entries[((i%n)+n)%n].Value
}

// Parse maps a label to its enum value.
func (t *Table[T]) Parse(label string) (T, error) {
	v, ok := t.byLabel[label]
	if !ok {
		var zero T
		return zero, &domain.EncodingError{Attribute: t.attribute, Label: label}
	}
	return v, nil
}

// Encode maps a label straight to its integer code.
func (t *Table[T]) Encode(label string) (int, error) {
	v, err := t.Parse(label)
	if err != nil {
		return 0, err
	}
	return int(v), nil
}
