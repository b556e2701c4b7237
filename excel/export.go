package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/keisoku-go/cmm"
)

// ExportXLSX writes all records into a new workbook: one sheet per record
// type plus an "All Data" sheet, each a flat table of ID, Type and the type's
// field columns.
func ExportXLSX(records []cmm.Record) ([]byte, error) {
	xlsx := excelize.NewFile()

	_ = xlsx.SetAppProps(&excelize.AppProperties{
		Application: "github.com/keisoku-go/cmm",
		DocSecurity: 2,
	})

	sheet := xlsx.GetSheetName(xlsx.GetActiveSheetIndex())
	writeRecordSheet(xlsx, sheet, records)
	_ = xlsx.SetSheetName(sheet, "All Data")

	for _, summary := range cmm.Summarize(records) {
		name := sheetName(summary.Type)
		if _, err := xlsx.NewSheet(name); err != nil {
			return nil, err
		}
		writeRecordSheet(xlsx, name, summary.Records)
	}

	xlsx.SetActiveSheet(0)

	buf, err := xlsx.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// sheetName caps a record type at the 31 characters the format allows.
func sheetName(t cmm.RecordType) string {
	name := string(t)
	if len(name) > 31 {
		name = name[:31]
	}
	return name
}

func writeRecordSheet(xlsx *excelize.File, sheet string, records []cmm.Record) {
	cols := cmm.Columns(records)

	_ = xlsx.SetColWidth(sheet, "A", "B", 12)
	if len(cols) > 0 {
		last, _ := excelize.ColumnNumberToName(2 + len(cols))
		_ = xlsx.SetColWidth(sheet, "C", last, 10)
	}

	header := append([]string{"ID", "Type"}, cols...)
	for i, h := range header {
		_ = xlsx.SetCellValue(sheet, cellName(i+1, 1), h)
	}
	style, _ := xlsx.NewStyle(mergeStyles(defaultStyle(), fontBold(), thinBorder("bottom"), textAlignment("center")))
	_ = xlsx.SetCellStyle(sheet, cellName(1, 1), cellName(len(header), 1), style)

	for i, rec := range records {
		row := i + 2
		_ = xlsx.SetCellValue(sheet, cellName(1, row), rec.ID)
		_ = xlsx.SetCellValue(sheet, cellName(2, row), string(rec.Type))
		for j, col := range cols {
			if v, ok := rec.Lookup(col); ok {
				_ = xlsx.SetCellValue(sheet, cellName(j+3, row), v)
			}
		}
		if row%2 == 0 {
			style, _ := xlsx.NewStyle(mergeStyles(altRowFill()))
			_ = xlsx.SetCellStyle(sheet, cellName(1, row), cellName(len(header), row), style)
		}
	}
}

func cellName(col, row int) string {
	name, _ := excelize.ColumnNumberToName(col)
	return fmt.Sprintf("%s%d", name, row)
}
