package cmm

import (
	"fmt"
	"regexp"
)

var (
	lotPrefixPattern = regexp.MustCompile(`^([A-Za-z]+\d+)`)
	datePattern      = regexp.MustCompile(`^\d{4}/\d{2}/\d{2}$`)
)

// LotPrefix extracts the leading letter+digit run of a lot number, e.g.
// "LOT234(234-245)" -> "LOT234". Returns "" when the lot number does not
// start with one.
func LotPrefix(lotNumber string) string {
	m := lotPrefixPattern.FindStringSubmatch(lotNumber)
	if m == nil {
		return ""
	}
	return m[1]
}

// ValidDate reports whether s is a yyyy/mm/dd date string. Only the shape is
// checked, not calendar validity.
func ValidDate(s string) bool {
	return datePattern.MatchString(s)
}

// OutputName builds the delivery file name for a filled inspection sheet.
func OutputName(lotNumber, inspectionDate string) string {
	return "水平ノズル" + lotNumber + "全箇所測定" + inspectionDate + ".xlsx"
}

// Session carries the per-request inspection metadata captured before the
// fill step runs.
type Session struct {
	LotNumber      string
	InspectionDate string
	LotPrefix      string
}

// NewSession derives the lot prefix from the lot number.
func NewSession(lotNumber, inspectionDate string) Session {
	return Session{
		LotNumber:      lotNumber,
		InspectionDate: inspectionDate,
		LotPrefix:      LotPrefix(lotNumber),
	}
}

// Validate checks the session before any workbook mutation. A set lot number
// must yield a prefix and a set inspection date must be yyyy/mm/dd.
func (s Session) Validate() error {
	if s.LotNumber != "" && s.LotPrefix == "" {
		return &ValidationError{Field: "lot number", Value: s.LotNumber}
	}
	if s.InspectionDate != "" && !ValidDate(s.InspectionDate) {
		return &ValidationError{Field: "inspection date", Value: s.InspectionDate}
	}
	return nil
}

// OutputName names the filled sheet for this session.
func (s Session) OutputName() string {
	return OutputName(s.LotNumber, s.InspectionDate)
}

// ValidationError reports a malformed session value. It blocks the fill step
// until corrected.
type ValidationError struct {
	Field string
	Value string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q", e.Field, e.Value)
}
