package cmm

import "math"

// distancePriority is the inspection-sheet order for DISTANCE records. The
// sheet rows are laid out 3, 2, 1, 4; ids with no record are skipped.
var distancePriority = []string{"3", "2", "1", "4"}

// TargetValues pulls the numbers destined for the inspection sheet: the
// absolute DISTANCE X values reordered by distancePriority, and INT-CIRCLE
// radii in record order. All values are rounded to two decimals.
func TargetValues(records []Record) (distances, radii []float64) {
	byID := make(map[string]float64)
	for _, rec := range records {
		if rec.Type != TypeDistance || rec.ID == "" {
			continue
		}
		x, ok := rec.Float("X")
		if !ok {
			continue
		}
		if _, seen := byID[rec.ID]; seen {
			continue
		}
		byID[rec.ID] = round2(math.Abs(x))
	}
	for _, id := range distancePriority {
		if v, ok := byID[id]; ok {
			distances = append(distances, v)
		}
	}

	for _, rec := range records {
		if rec.Type != TypeIntCircle {
			continue
		}
		if r, ok := rec.Float("Radius"); ok {
			radii = append(radii, round2(r))
		}
	}
	return distances, radii
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
