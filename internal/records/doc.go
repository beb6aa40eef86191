// Package records loads tabular data files for the tablekit CLI.
//
// Files hold a YAML or JSON list of objects. Decoding goes through yaml.Node
// so the order in which keys appear in the file is kept; that order becomes
// the default column order of the rendered table.
package records
