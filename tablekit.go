// Package tablekit is the public entry point of the tablekit components.
//
// It re-exports the page selector, the generic table and the theme so hosts
// can depend on a single import path:
//
//	p := tablekit.NewPagination(12, "of", func(s string) { field = s })
//	p.HandleInput("7")
//
//	cfg := tablekit.TableConfig[Service]{
//		{Key: "name", Name: "Name", Render: tablekit.Field(func(s Service) any { return s.Name })},
//	}
//	fmt.Println(tablekit.RenderTable(services, cfg))
package tablekit

import (
	"github.com/rshade/tablekit/pkg/pagination"
	"github.com/rshade/tablekit/pkg/table"
	"github.com/rshade/tablekit/pkg/theme"
)

// Pagination types.
type (
	Pagination       = pagination.Pagination
	PaginationOption = pagination.Option
	PaginationStyles = pagination.Styles
	PaginationModel  = pagination.Model
	PageChangedMsg   = pagination.PageChangedMsg
	Page[T any]      = pagination.Page[T]
)

// Table types.
type (
	Column[T any]      = table.Column[T]
	TableConfig[T any] = table.Config[T]
	RenderFunc[T any]  = table.RenderFunc[T]
	TableStyles        = table.Styles
	TableOption        = table.Option
)

// Theme types.
type (
	Theme     = theme.Theme
	ClassSpec = theme.ClassSpec
)

// NewPagination creates a Pagination; see pagination.New.
func NewPagination(total int, label string, setTextPage func(string), opts ...PaginationOption) *Pagination {
	return pagination.New(total, label, setTextPage, opts...)
}

// NewPaginationModel creates a Bubble Tea page selector; see pagination.NewModel.
func NewPaginationModel(total int, label string, opts ...PaginationOption) *PaginationModel {
	return pagination.NewModel(total, label, opts...)
}

// RenderTable renders data against cfg; see table.Render.
func RenderTable[T any](data []T, cfg TableConfig[T], opts ...TableOption) string {
	return table.Render(data, cfg, opts...)
}

// Field returns a RenderFunc formatting the value selected by fn.
func Field[T any](fn func(T) any) RenderFunc[T] {
	return table.Field(fn)
}

// DefaultTheme returns the built-in theme.
func DefaultTheme() *Theme {
	return theme.Default()
}
