package main

import (
	"fmt"
	"io"

	"github.com/keisoku-go/cmm"
)

// report prints the records grouped by type, each group followed by
// statistics on its numeric columns.
func report(w io.Writer, records []cmm.Record) {
	for _, summary := range cmm.Summarize(records) {
		label := string(summary.Type)
		if !summary.Type.Known() {
			label += " (unrecognized type)"
		}
		fmt.Fprintf(w, "%s (%d records)\n", label, len(summary.Records))
		dashes(w)

		cols := cmm.Columns(summary.Records)
		fmt.Fprintf(w, "  %-6s %-6s", "ID", "Type")
		for _, col := range cols {
			fmt.Fprintf(w, " %10s", col)
		}
		fmt.Fprintln(w)
		for _, rec := range summary.Records {
			fmt.Fprintf(w, "  %-6s %-6s", rec.ID, rec.Type)
			for _, col := range cols {
				v, ok := rec.Lookup(col)
				if !ok {
					fmt.Fprintf(w, " %10s", "·")
					continue
				}
				switch v := v.(type) {
				case float64:
					fmt.Fprintf(w, " %10.3f", v)
				default:
					fmt.Fprintf(w, " %10v", v)
				}
			}
			fmt.Fprintln(w)
		}

		if len(summary.Stats) > 0 {
			fmt.Fprintln(w)
			fmt.Fprintf(w, "  %-12s %5s %10s %10s %10s %10s\n", "Column", "Count", "Mean", "Std", "Min", "Max")
			for _, cs := range summary.Stats {
				fmt.Fprintf(w, "  %-12s %5d %10.3f %10.3f %10.3f %10.3f\n",
					cs.Name, cs.Count, cs.Mean, cs.Std, cs.Min, cs.Max)
			}
		}
		fmt.Fprintln(w)
	}
}

func dashes(w io.Writer) {
	fmt.Fprintln(w, "  ------------------------------------------------------------")
}
