package table

import "github.com/rshade/tablekit/pkg/theme"

// Styles holds the class tokens applied to the table parts.
// Tr is layered under both Th and Td.
type Styles struct {
	Table string `yaml:"table,omitempty" json:"table,omitempty"`
	Tr    string `yaml:"tr,omitempty"    json:"tr,omitempty"`
	Th    string `yaml:"th,omitempty"    json:"th,omitempty"`
	Td    string `yaml:"td,omitempty"    json:"td,omitempty"`
}

// DefaultStyles returns styles referencing the classes of theme.Default.
func DefaultStyles() Styles {
	return Styles{
		Table: theme.ClassTable,
		Tr:    theme.ClassTableRow,
		Th:    theme.ClassTableHeader,
		Td:    theme.ClassTableCell,
	}
}
