package cmm

import (
	"encoding/csv"
	"fmt"
	"io"
)

// WriteCSV emits all records as one flat table: ID, Type, then the union of
// field names in first-seen order. Cells without a value stay empty.
func WriteCSV(w io.Writer, records []Record) error {
	cols := Columns(records)

	cw := csv.NewWriter(w)
	header := append([]string{"ID", "Type"}, cols...)
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, rec := range records {
		row := make([]string, 0, len(header))
		row = append(row, rec.ID, string(rec.Type))
		for _, col := range cols {
			v, ok := rec.Lookup(col)
			if !ok {
				row = append(row, "")
				continue
			}
			row = append(row, fmt.Sprint(v))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
