// Package export renders tabular report data as CSV and Excel files.
package export

// Table is a generic tabular report ready for serialization.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}
