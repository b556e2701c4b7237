package cmm

import (
	"math"
	"sort"
)

// ColumnStats summarizes one numeric column within a record type.
type ColumnStats struct {
	Name  string
	Count int
	Mean  float64
	Std   float64
	Min   float64
	Max   float64
}

// TypeSummary groups the records of one type with statistics on its numeric
// columns.
type TypeSummary struct {
	Type    RecordType
	Records []Record
	Stats   []ColumnStats
}

// Summarize groups records by type, sorted by type name, and computes
// count/mean/std/min/max for every column that holds at least one numeric
// value.
func Summarize(records []Record) []TypeSummary {
	byType := make(map[RecordType][]Record)
	var order []RecordType
	for _, rec := range records {
		if _, ok := byType[rec.Type]; !ok {
			order = append(order, rec.Type)
		}
		byType[rec.Type] = append(byType[rec.Type], rec)
	}
	sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })

	summaries := make([]TypeSummary, 0, len(order))
	for _, t := range order {
		recs := byType[t]
		summaries = append(summaries, TypeSummary{
			Type:    t,
			Records: recs,
			Stats:   columnStats(recs),
		})
	}
	return summaries
}

func columnStats(records []Record) []ColumnStats {
	samples := make(map[string][]float64)
	var order []string
	for _, rec := range records {
		for _, f := range rec.Fields {
			v, ok := f.Value.(float64)
			if !ok {
				continue
			}
			if _, seen := samples[f.Name]; !seen {
				order = append(order, f.Name)
			}
			samples[f.Name] = append(samples[f.Name], v)
		}
	}

	stats := make([]ColumnStats, 0, len(order))
	for _, name := range order {
		vals := samples[name]
		cs := ColumnStats{Name: name, Count: len(vals), Min: vals[0], Max: vals[0]}
		var sum float64
		for _, v := range vals {
			sum += v
			cs.Min = math.Min(cs.Min, v)
			cs.Max = math.Max(cs.Max, v)
		}
		cs.Mean = sum / float64(len(vals))
		if len(vals) > 1 {
			var sq float64
			for _, v := range vals {
				d := v - cs.Mean
				sq += d * d
			}
			cs.Std = math.Sqrt(sq / float64(len(vals)-1))
		}
		stats = append(stats, cs)
	}
	return stats
}

// Columns returns the union of field names across records in first-seen
// order, for flat exports.
func Columns(records []Record) []string {
	seen := make(map[string]bool)
	var cols []string
	for _, rec := range records {
		for _, f := range rec.Fields {
			if !seen[f.Name] {
				seen[f.Name] = true
				cols = append(cols, f.Name)
			}
		}
	}
	return cols
}
