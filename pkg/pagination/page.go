package pagination

// Page carries one page of data together with the page count a Pagination
// should be bounded by. Extra is free for host specific counts, such as the
// number of items across all pages.
type Page[T any] struct {
	Data  T    `json:"data"            yaml:"data"`
	Total int  `json:"total"           yaml:"total"`
	Extra *int `json:"extra,omitempty" yaml:"extra,omitempty"`
}
