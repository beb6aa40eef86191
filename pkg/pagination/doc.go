// Package pagination provides a numeric page selector for terminal UIs.
//
// The package has two layers:
//   - Pagination: the framework independent core. It owns the current page,
//     validates free text page input and writes the page text through a
//     setter callback owned by the host.
//   - Model: a Bubble Tea component that hosts a Pagination, keeps the page
//     text in a text input and emits PageChangedMsg when the page moves.
//
// Input handling follows a fallback policy rather than reporting errors:
// empty input clears the field, zero and non numeric input become "1", and
// values above the total become the total. Only a valid page number moves
// the current page. The previous and next steps are disabled at the bounds.
package pagination
