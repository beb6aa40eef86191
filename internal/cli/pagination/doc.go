// Package pagination provides the paging and sorting flags of the tablekit CLI.
//
// This package contains the logic shared by listing commands:
//   - Params: page/offset flag validation and slicing
//   - Meta: metadata describing the selected page
//   - RecordSorter: field-validated sorting of loaded records
//
// It works on whole pages selected before rendering; interactive page
// selection lives in pkg/pagination.
package pagination
