package export

import (
	"encoding/csv"
	"io"
)

// WriteCSV serialises a report table to CSV.
func WriteCSV(w io.Writer, table Table) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	if len(table.Headers) > 0 {
		if err := writer.Write(table.Headers); err != nil {
			return err
		}
	}
	for _, row := range table.Rows {
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
