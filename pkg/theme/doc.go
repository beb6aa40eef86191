// Package theme resolves class-name tokens into lipgloss styles.
//
// Components in this module accept plain string class names for each of their
// visual parts, much like CSS classes. A Theme is the registry those names are
// looked up in:
//   - Define registers a lipgloss style under a class name
//   - Style resolves a whitespace separated token list into one style
//   - FromSpecs builds a theme from declarative ClassSpec values (YAML config)
//
// Unknown or empty tokens are not an error; they render unstyled.
package theme
