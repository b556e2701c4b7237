package cmm

import (
	"bufio"
	"io"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

// numericPattern accepts plain decimal literals only. Exponential notation
// and thousands separators stay strings.
var numericPattern = regexp.MustCompile(`^-?\d+\.?\d*$`)

// Parse reads semicolon-delimited CMM records from r. Malformed lines are
// dropped; Parse only fails on a read error.
func Parse(r io.Reader) ([]Record, error) {
	// CMM exports from Japanese controllers arrive as Shift-JIS. The decode
	// is a no-op for the ASCII record fields.
	r = transform.NewReader(r, japanese.ShiftJIS.NewDecoder())

	var records []Record
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if rec, ok := parseLine(sc.Text()); ok {
			records = append(records, rec)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

func parseLine(line string) (Record, bool) {
	if strings.TrimSpace(line) == "" {
		return Record{}, false
	}
	parts := strings.Split(line, ";")
	if len(parts) < 2 {
		return Record{}, false
	}

	rec := Record{
		ID:   strings.TrimSpace(parts[0]),
		Type: RecordType(strings.TrimSpace(parts[1])),
	}

	// Values keep their positions: interior empties matter for column
	// alignment against the schema.
	values := parts[2:]
	for i := range values {
		values[i] = strings.TrimSpace(values[i])
	}

	cols := rec.Type.Schema(len(values))
	for i, val := range values {
		if i >= len(cols) {
			break
		}
		if cols[i] == "" || val == "" {
			continue
		}
		rec.Fields = append(rec.Fields, Field{Name: cols[i], Value: coerce(val)})
	}
	return rec, true
}

func coerce(val string) any {
	if !numericPattern.MatchString(val) {
		return val
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return val
	}
	return f
}
