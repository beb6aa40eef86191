package pagination

// Meta contains metadata about a paginated listing.
type Meta struct {
	CurrentPage int  `json:"current_page" yaml:"current_page"`
	PageSize    int  `json:"page_size"    yaml:"page_size"`
	TotalPages  int  `json:"total_pages"  yaml:"total_pages"`
	TotalItems  int  `json:"total_items"  yaml:"total_items"`
	First       int  `json:"first"        yaml:"first"`
	Last        int  `json:"last"         yaml:"last"`
	HasPrevious bool `json:"has_previous" yaml:"has_previous"`
	HasNext     bool `json:"has_next"     yaml:"has_next"`
}

// NewMeta creates metadata for p applied to totalItems records.
// First and Last are 1-based record positions; both are 0 for an empty page.
func NewMeta(p Params, totalItems int) Meta {
	start, end := p.Bounds(totalItems)

	pageSize := end - start
	if p.IsPageBased() && p.PageSize > 0 {
		pageSize = p.PageSize
	}

	current := p.EffectivePage(totalItems)
	totalPages := p.TotalPages(totalItems)

	meta := Meta{
		CurrentPage: current,
		PageSize:    pageSize,
		TotalPages:  totalPages,
		TotalItems:  totalItems,
		HasPrevious: current > 1,
		HasNext:     current < totalPages,
	}
	if end > start {
		meta.First = start + 1
		meta.Last = end
	}
	return meta
}
