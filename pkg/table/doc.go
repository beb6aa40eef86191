// Package table renders records against an ordered column configuration.
//
// A Config is an ordered list of Column values, each pairing a field key and
// a title with a RenderFunc that produces the cell content. Rendering is a
// pure function of the data and the config:
//   - Cells returns the header row and the body rows as strings
//   - Render draws a bordered lipgloss table
//   - NewModel builds an interactive bubbles table
//
// The package does not validate configs; errors raised by a RenderFunc are
// the caller's responsibility.
package table
