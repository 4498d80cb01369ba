// Package compare expresses a magnitude as a multiple of a well-known reference
// quantity ("3,5× die jährliche Weltreisproduktion").
package compare

import (
	"errors"
	"fmt"
	"sort"

	"expgrowth/internal/format"
)

var ErrInvalidTable = errors.New("invalid reference table")

// Entry is one reference quantity.
type Entry struct {
	Label     string  `yaml:"label" json:"label"`
	Threshold float64 `yaml:"threshold" json:"threshold"`
}

// Table is a set of reference quantities. Tables built with NewTable are sorted by
// ascending threshold; Best and Exceeded accept unsorted tables as well.
type Table []Entry

// NewTable validates the entries and returns them sorted ascending by threshold.
func NewTable(entries ...Entry) (Table, error) {
	labels := make(map[string]struct{}, len(entries))
	thresholds := make(map[float64]struct{}, len(entries))
	for _, e := range entries {
		if e.Threshold <= 0 {
			return nil, fmt.Errorf("%w: threshold for %q must be > 0", ErrInvalidTable, e.Label)
		}
		if _, ok := labels[e.Label]; ok {
			return nil, fmt.Errorf("%w: duplicate label %q", ErrInvalidTable, e.Label)
		}
		if _, ok := thresholds[e.Threshold]; ok {
			return nil, fmt.Errorf("%w: duplicate threshold %v", ErrInvalidTable, e.Threshold)
		}
		labels[e.Label] = struct{}{}
		thresholds[e.Threshold] = struct{}{}
	}
	return sorted(entries), nil
}

// MustTable is NewTable for package-level defaults.
func MustTable(entries ...Entry) Table {
	t, err := NewTable(entries...)
	if err != nil {
		panic(err)
	}
	return t
}

// Best returns "{value/threshold}× {label}" for the largest reference that value
// reaches. Values below every reference use the smallest one (a multiple below 1);
// values <= 0 yield a zero multiple of the smallest reference.
func Best(value float64, table Table) string {
	e, factor, ok := Match(value, table)
	if !ok {
		return ""
	}
	return Phrase(factor, e.Label)
}

// Match is Best without the phrase: the chosen entry and the multiple.
func Match(value float64, table Table) (Entry, float64, bool) {
	if len(table) == 0 {
		return Entry{}, 0, false
	}
	s := sorted(table)
	if value <= 0 {
		return s[0], 0, true
	}
	for i := len(s) - 1; i >= 0; i-- {
		if s[i].Threshold <= value {
			return s[i], value / s[i].Threshold, true
		}
	}
	return s[0], value / s[0].Threshold, true
}

// Exceeded returns the largest entry whose threshold value strictly exceeds.
func Exceeded(value float64, table Table) (Entry, bool) {
	s := sorted(table)
	for i := len(s) - 1; i >= 0; i-- {
		if value > s[i].Threshold {
			return s[i], true
		}
	}
	return Entry{}, false
}

// Phrase renders a multiple of a label.
func Phrase(factor float64, label string) string {
	return format.Factor(factor) + "× " + label
}

func sorted(entries []Entry) Table {
	out := make(Table, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Threshold < out[j].Threshold
	})
	return out
}
