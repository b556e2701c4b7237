package cmm

import (
	"reflect"
	"testing"
)

func distanceRecord(id string, x float64) Record {
	return Record{ID: id, Type: TypeDistance, Fields: []Field{{"X", x}}}
}

func intCircleRecord(radius float64) Record {
	return Record{ID: "r", Type: TypeIntCircle, Fields: []Field{{"Radius", radius}}}
}

func TestTargetValuesPriorityOrder(t *testing.T) {
	records := []Record{
		distanceRecord("1", -1.235),
		distanceRecord("2", 2.004),
		distanceRecord("3", 0.5),
		distanceRecord("4", 9.999),
	}

	distances, radii := TargetValues(records)
	if expected := []float64{0.5, 2.0, 1.24, 10.0}; !reflect.DeepEqual(distances, expected) {
		t.Errorf("distances = %v, expected %v", distances, expected)
	}
	if radii != nil {
		t.Errorf("radii = %v, expected none", radii)
	}
}

func TestTargetValuesMissingIDs(t *testing.T) {
	records := []Record{
		distanceRecord("4", 1.0),
		distanceRecord("2", 2.0),
	}

	distances, _ := TargetValues(records)
	// ids 3 and 1 have no record; the sequence shortens, no placeholders.
	if expected := []float64{2.0, 1.0}; !reflect.DeepEqual(distances, expected) {
		t.Errorf("distances = %v, expected %v", distances, expected)
	}
}

func TestTargetValuesFirstMatchWins(t *testing.T) {
	records := []Record{
		distanceRecord("3", 1.0),
		distanceRecord("3", 99.0),
	}

	distances, _ := TargetValues(records)
	if expected := []float64{1.0}; !reflect.DeepEqual(distances, expected) {
		t.Errorf("distances = %v, expected %v", distances, expected)
	}
}

func TestTargetValuesSkipsIncompleteRecords(t *testing.T) {
	records := []Record{
		{ID: "3", Type: TypeDistance, Fields: []Field{{"X", "not a number"}}},
		{ID: "", Type: TypeDistance, Fields: []Field{{"X", 1.0}}},
		{ID: "2", Type: TypeCircle, Fields: []Field{{"X", 5.0}}},
		{ID: "c", Type: TypeIntCircle, Fields: []Field{{"X", 5.0}}},
	}

	distances, radii := TargetValues(records)
	if distances != nil {
		t.Errorf("distances = %v, expected none", distances)
	}
	if radii != nil {
		t.Errorf("radii = %v, expected none", radii)
	}
}

func TestTargetValuesRadiiInRecordOrder(t *testing.T) {
	records := []Record{
		intCircleRecord(3.456),
		intCircleRecord(1.004),
		intCircleRecord(3.456),
	}

	_, radii := TargetValues(records)
	// Radii are not deduplicated and not reordered.
	if expected := []float64{3.46, 1.0, 3.46}; !reflect.DeepEqual(radii, expected) {
		t.Errorf("radii = %v, expected %v", radii, expected)
	}
}

func TestTargetValuesIdempotent(t *testing.T) {
	records := []Record{
		distanceRecord("2", -4.005),
		distanceRecord("3", 7.5),
		intCircleRecord(1.115),
	}

	d1, r1 := TargetValues(records)
	d2, r2 := TargetValues(records)
	if !reflect.DeepEqual(d1, d2) || !reflect.DeepEqual(r1, r2) {
		t.Errorf("extraction not idempotent: %v/%v vs %v/%v", d1, r1, d2, r2)
	}
}
