package main

import (
	"log/slog"
	"os"

	"github.com/keisoku-go/cmm"
	"github.com/keisoku-go/cmm/excel"
)

func main() {
	records, err := cmm.Parse(os.Stdin)
	if err != nil {
		slog.Error("Error parsing CMM records", "error", err)
	}

	bs, err := excel.ExportXLSX(records)
	if err != nil {
		slog.Error("Error creating Excel file", "error", err)
	}
	if err := os.WriteFile("records.xlsx", bs, 0o644); err != nil {
		slog.Error("Error writing Excel file", "error", err)
	}
}
