package pagination

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/rshade/tablekit/internal/records"
)

// ErrUnknownSortField is returned when sorting by a key no record has.
var ErrUnknownSortField = errors.New("unknown sort field")

// RecordSorter sorts records by one of a known set of keys.
type RecordSorter struct {
	validFields map[string]bool
}

// NewRecordSorter creates a RecordSorter accepting the given keys.
func NewRecordSorter(keys []string) *RecordSorter {
	valid := make(map[string]bool, len(keys))
	for _, k := range keys {
		valid[k] = true
	}
	return &RecordSorter{validFields: valid}
}

// IsValidField checks if the field is valid for sorting.
func (s *RecordSorter) IsValidField(field string) bool {
	return s.validFields[field]
}

// GetValidFields returns all valid sort fields in sorted order.
func (s *RecordSorter) GetValidFields() []string {
	fields := make([]string, 0, len(s.validFields))
	for field := range s.validFields {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// Sort returns a sorted copy of recs.
// Numbers compare numerically, other values by their string form, and
// records missing the field sort last in either order.
func (s *RecordSorter) Sort(recs []records.Record, field, order string) ([]records.Record, error) {
	if !s.IsValidField(field) {
		return nil, fmt.Errorf("%w: %q (valid: %s)",
			ErrUnknownSortField, field, strings.Join(s.GetValidFields(), ", "))
	}

	sorted := make([]records.Record, len(recs))
	copy(sorted, recs)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, aok := present(sorted[i], field)
		b, bok := present(sorted[j], field)
		if !aok || !bok {
			return aok && !bok
		}
		if order == SortOrderDesc {
			a, b = b, a
		}
		return less(a, b)
	})

	return sorted, nil
}

func present(r records.Record, field string) (any, bool) {
	v, ok := r[field]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

func less(a, b any) bool {
	fa, aNum := number(a)
	fb, bNum := number(b)
	switch {
	case aNum && bNum:
		return fa < fb
	case aNum != bNum:
		// numbers before text
		return aNum
	default:
		return fmt.Sprint(a) < fmt.Sprint(b)
	}
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
