package cmm // import "github.com/keisoku-go/cmm"

import "strconv"

// RecordType identifies the measured object kind on a CMM output line.
type RecordType string

const (
	TypePlane     RecordType = "PLANE"
	TypeCircle    RecordType = "CIRCLE"
	TypePtComp    RecordType = "PT-COMP"
	TypeDistance  RecordType = "DISTANCE"
	TypeCone      RecordType = "CONE"
	TypeIntCircle RecordType = "INT-CIRCLE"
	TypeSymPoint  RecordType = "SYM-POINT"
)

// schemas maps each known record type to its ordered column names. An empty
// name marks a placeholder column that carries no data.
var schemas = map[RecordType][]string{
	TypePlane:     {"Method", "X", "Y", "Z", "A", "B", "C", "", "D", "Dev"},
	TypeCircle:    {"Method", "X", "Y", "Z", "I", "J", "K", "", "Radius", "Dev"},
	TypePtComp:    {"Method", "X", "Y", "Z"},
	TypeDistance:  {"", "X", "Y", "Z", "", "", "", "", "Distance"},
	TypeCone:      {"Method", "X", "Y", "Z", "I", "J", "K", "", "Half-Angle", "Dev"},
	TypeIntCircle: {"", "X", "Y", "Z", "I", "J", "K", "", "Radius"},
	TypeSymPoint:  {"", "X", "Y", "Z"},
}

// Known reports whether t has a fixed column schema.
func (t RecordType) Known() bool {
	_, ok := schemas[t]
	return ok
}

// Schema returns the ordered column names for t, sized to n values. Unknown
// types get the generic names Val1..Valn.
func (t RecordType) Schema(n int) []string {
	if cols, ok := schemas[t]; ok {
		return cols
	}
	cols := make([]string, n)
	for i := range cols {
		cols[i] = "Val" + strconv.Itoa(i+1)
	}
	return cols
}

// Field is one named value of a record. Value holds a float64 when the raw
// token matched the numeric pattern, otherwise the original string.
type Field struct {
	Name  string
	Value any
}

// Record is one parsed CMM output line.
type Record struct {
	ID     string
	Type   RecordType
	Fields []Field
}

// Lookup returns the value of the named field.
func (r Record) Lookup(name string) (any, bool) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// Float returns the named field as a float64, if it was parsed as numeric.
func (r Record) Float(name string) (float64, bool) {
	v, ok := r.Lookup(name)
	if !ok {
		return 0, false
	}
	f, ok := v.(float64)
	return f, ok
}
