package pagination

import (
	"errors"
	"fmt"
	"strings"
)

// Pagination defaults and sort orders.
const (
	DefaultPage      = 1
	MinPage          = 1
	MaxPageSize      = 1000
	DefaultSortOrder = "asc"
	SortOrderAsc     = "asc"
	SortOrderDesc    = "desc"
)

// Validation errors.
var (
	ErrNegativeValue        = errors.New("pagination values cannot be negative")
	ErrMixedPaginationModes = errors.New("cannot use both offset-based (--offset/--limit) and page-based (--page) pagination")
	ErrPageSizeTooLarge     = errors.New("page-size must be at most 1000")
	ErrInvalidSortOrder     = errors.New("sort order must be 'asc' or 'desc'")
	ErrInvalidSortFormat    = errors.New("invalid sort format: use 'field' or 'field:order' (e.g., 'name:desc')")
	ErrEmptySortField       = errors.New("sort field cannot be empty")
)

// Params holds the pagination flags of a listing command.
// Two modes are supported and are mutually exclusive:
//   - Page-based: --page and --page-size
//   - Offset-based: --offset and --limit
//
// Page-based mode is used whenever Page is set.
type Params struct {
	// Page is the 1-based page number (page-based mode).
	Page int
	// PageSize is the number of records per page (page-based mode).
	PageSize int

	// Offset is the number of records to skip (offset-based mode).
	Offset int
	// Limit is the maximum number of records to return; 0 means all (offset-based mode).
	Limit int
}

// Validate checks that the parameters are non-negative and consistent.
func (p Params) Validate() error {
	if p.Page < 0 || p.PageSize < 0 || p.Offset < 0 || p.Limit < 0 {
		return ErrNegativeValue
	}
	if p.Page > 0 && (p.Offset > 0 || p.Limit > 0) {
		return ErrMixedPaginationModes
	}
	if p.PageSize > MaxPageSize {
		return fmt.Errorf("%w: got %d", ErrPageSizeTooLarge, p.PageSize)
	}
	return nil
}

// IsPageBased reports whether page-based pagination is active.
func (p Params) IsPageBased() bool {
	return p.Page > 0
}

// TotalPages returns the number of pages needed for totalItems.
// An empty result still has one page so a page selector stays in range.
// Offset-based params always yield a single page.
func (p Params) TotalPages(totalItems int) int {
	if !p.IsPageBased() || p.PageSize <= 0 || totalItems == 0 {
		return 1
	}
	return (totalItems + p.PageSize - 1) / p.PageSize
}

// EffectivePage returns Page capped to the last available page.
func (p Params) EffectivePage(totalItems int) int {
	if !p.IsPageBased() {
		return DefaultPage
	}
	return min(p.Page, p.TotalPages(totalItems))
}

// Bounds returns the [start, end) indexes selected from totalItems records.
// Page-based requests beyond the last page select the last page.
//
//nolint:nonamedreturns // Named returns improve readability for this multi-value function.
func (p Params) Bounds(totalItems int) (start, end int) {
	if p.IsPageBased() {
		if p.PageSize <= 0 {
			return 0, totalItems
		}
		start = (p.EffectivePage(totalItems) - 1) * p.PageSize
		end = min(start+p.PageSize, totalItems)
		return start, end
	}

	start = min(p.Offset, totalItems)
	end = totalItems
	if p.Limit > 0 {
		end = min(start+p.Limit, totalItems)
	}
	return start, end
}

// Apply returns the slice of items selected by p.
func Apply[T any](p Params, items []T) []T {
	start, end := p.Bounds(len(items))
	return items[start:end]
}

// ParseSort parses a sort string in the format "field" or "field:order".
// The order defaults to ascending.
//
//nolint:nonamedreturns // Named returns improve readability for this multi-value function.
func ParseSort(sortStr string) (field, order string, err error) {
	if strings.TrimSpace(sortStr) == "" {
		return "", "", ErrEmptySortField
	}

	parts := strings.Split(sortStr, ":")
	switch len(parts) {
	case 1:
		field = strings.TrimSpace(parts[0])
		order = DefaultSortOrder
	case 2: //nolint:mnd // field:order
		field = strings.TrimSpace(parts[0])
		order = strings.ToLower(strings.TrimSpace(parts[1]))
	default:
		return "", "", fmt.Errorf("%w: %q", ErrInvalidSortFormat, sortStr)
	}

	if field == "" {
		return "", "", ErrEmptySortField
	}
	if order != SortOrderAsc && order != SortOrderDesc {
		return "", "", fmt.Errorf("%w: got %q", ErrInvalidSortOrder, order)
	}

	return field, order, nil
}
