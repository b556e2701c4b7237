package main

import (
	"io"
	"log"
	"os"

	"github.com/alecthomas/kingpin"

	"github.com/keisoku-go/cmm"
	"github.com/keisoku-go/cmm/excel"
)

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.Lshortfile)

	cmdFill := kingpin.Command("fill", "Fill an inspection sheet template")
	fillTemplate := cmdFill.Flag("template", "Template xlsx file").String()
	fillSheet := cmdFill.Flag("sheet", "Target sheet name").String()
	fillLot := cmdFill.Flag("lot", "Lot number").String()
	fillDate := cmdFill.Flag("date", "Inspection date (yyyy/mm/dd)").String()
	fillConfig := cmdFill.Flag("config", "Cell mapping yaml file").String()
	fillOut := cmdFill.Flag("out", "Output file, derived from lot and date when empty").String()

	cmdExport := kingpin.Command("export", "Export records to a workbook grouped by type")
	exportOut := cmdExport.Flag("out", "Output file").Default("records.xlsx").String()

	cmdCSV := kingpin.Command("csv", "Export records as CSV to stdout")
	cmdReport := kingpin.Command("report", "Show records grouped by type with statistics")

	infile := kingpin.Flag("input", "Input file").OpenFile(os.O_RDONLY, 0666)
	cmd := kingpin.Parse()

	input := io.Reader(os.Stdin)
	if *infile != nil {
		input = *infile
	}

	records, err := cmm.Parse(input)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("parsed %d records", len(records))

	switch cmd {
	case cmdFill.FullCommand():
		fill(records, *fillTemplate, *fillSheet, *fillLot, *fillDate, *fillConfig, *fillOut)
	case cmdExport.FullCommand():
		export(records, *exportOut)
	case cmdCSV.FullCommand():
		if err := cmm.WriteCSV(os.Stdout, records); err != nil {
			log.Fatal(err)
		}
	case cmdReport.FullCommand():
		report(os.Stdout, records)
	}
}

func fill(records []cmm.Record, template, sheet, lot, date, configPath, out string) {
	cfg := cmm.DefaultConfig()
	if configPath != "" {
		var err error
		cfg, err = cmm.LoadConfig(configPath)
		if err != nil {
			log.Fatal(err)
		}
	}
	if template == "" {
		template = cfg.Template
	}
	if template == "" {
		log.Fatal("no template given: pass --template or set one in the config")
	}
	if sheet == "" {
		sheet = cfg.Sheet
	}

	sess := cmm.NewSession(lot, date)
	if err := sess.Validate(); err != nil {
		log.Fatal(err)
	}

	distances, radii := cmm.TargetValues(records)

	bs, notices, err := excel.FillFile(template, excel.FillRequest{
		Session:       sess,
		Sheet:         sheet,
		Distances:     distances,
		DistanceCells: cfg.DistanceCells(len(distances)),
		Radii:         radii,
		RadiusCells:   cfg.RadiusCells(len(radii)),
	})
	for _, n := range notices {
		log.Printf("notice: %s", n)
	}
	if err != nil {
		log.Fatal(err)
	}

	if out == "" {
		if lot != "" && date != "" {
			out = sess.OutputName()
		} else {
			out = "filled.xlsx"
		}
	}
	if err := os.WriteFile(out, bs, 0o644); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s (%d distance values, %d radii)", out, len(distances), len(radii))
}

func export(records []cmm.Record, out string) {
	bs, err := excel.ExportXLSX(records)
	if err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile(out, bs, 0o644); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s", out)
}
