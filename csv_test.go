package cmm

import (
	"bytes"
	"encoding/csv"
	"reflect"
	"testing"
)

func TestWriteCSV(t *testing.T) {
	records := []Record{
		{ID: "5", Type: TypeCircle, Fields: []Field{{"Method", "GAUSS"}, {"Radius", 12.7}}},
		{ID: "3", Type: TypeDistance, Fields: []Field{{"X", 0.5}}},
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, records); err != nil {
		t.Fatal(err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatal(err)
	}

	expected := [][]string{
		{"ID", "Type", "Method", "Radius", "X"},
		{"5", "CIRCLE", "GAUSS", "12.7", ""},
		{"3", "DISTANCE", "", "", "0.5"},
	}
	if !reflect.DeepEqual(rows, expected) {
		t.Errorf("csv rows\n  got      %v\n  expected %v", rows, expected)
	}
}
