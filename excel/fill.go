package excel

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/keisoku-go/cmm"
)

// Fixed header cells of the inspection sheet layout.
const (
	lotCell    = "B1"
	dateCell   = "B2"
	prefixCell = "B3"
)

// FillRequest describes one fill of an inspection sheet template.
type FillRequest struct {
	Session cmm.Session

	// Sheet is the requested target sheet. Resolution order: this name if
	// present, a sheet literally named "sheet", else the active sheet.
	Sheet string

	Distances     []float64
	DistanceCells []string
	Radii         []float64
	RadiusCells   []string
}

// Notice is a non-fatal signal from a fill: a sheet fallback, a merged-cell
// redirect, or a failed cell write.
type Notice struct {
	Cell    string
	Message string
	Err     error
}

func (n Notice) String() string {
	if n.Cell == "" {
		return n.Message
	}
	return n.Cell + ": " + n.Message
}

// OpenError means the template is not a readable xlsx container.
type OpenError struct {
	Err error
}

func (e *OpenError) Error() string { return fmt.Sprintf("open workbook: %v", e.Err) }

func (e *OpenError) Unwrap() error { return e.Err }

// CellError means one cell reference could not be resolved or written. The
// fill continues past it.
type CellError struct {
	Cell string
	Err  error
}

func (e *CellError) Error() string { return fmt.Sprintf("cell %s: %v", e.Cell, e.Err) }

func (e *CellError) Unwrap() error { return e.Err }

// Fill opens the template from src, writes the session header cells and the
// positional value/cell pairings, and serializes the result to a fresh byte
// buffer. The template source itself is never mutated. Individual cell
// failures are collected as notices; only an unreadable template or a failed
// serialization is an error.
func Fill(src io.Reader, req FillRequest) ([]byte, []Notice, error) {
	if err := req.Session.Validate(); err != nil {
		return nil, nil, err
	}

	f, err := excelize.OpenReader(src)
	if err != nil {
		return nil, nil, &OpenError{Err: err}
	}
	defer f.Close()

	var notices []Notice
	sheet := resolveSheet(f, req.Sheet, &notices)

	merges, err := f.GetMergeCells(sheet)
	if err != nil {
		notices = append(notices, Notice{Message: fmt.Sprintf("merged regions unavailable: %v", err), Err: err})
	}

	if req.Session.LotNumber != "" {
		setCell(f, sheet, lotCell, req.Session.LotNumber, merges, &notices)
	}
	if req.Session.InspectionDate != "" {
		setCell(f, sheet, dateCell, req.Session.InspectionDate, merges, &notices)
	}
	if req.Session.LotPrefix != "" {
		setCell(f, sheet, prefixCell, req.Session.LotPrefix, merges, &notices)
	}

	writePairs(f, sheet, req.Distances, req.DistanceCells, merges, &notices)
	writePairs(f, sheet, req.Radii, req.RadiusCells, merges, &notices)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, notices, err
	}
	return buf.Bytes(), notices, nil
}

// FillFile is Fill reading the template from a file path.
func FillFile(path string, req FillRequest) ([]byte, []Notice, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, &OpenError{Err: err}
	}
	defer f.Close()
	return Fill(f, req)
}

// writePairs pairs values with cell references positionally. Extra values or
// extra cells beyond the shorter list are dropped, blank references skipped.
func writePairs(f *excelize.File, sheet string, values []float64, cells []string, merges []excelize.MergeCell, notices *[]Notice) {
	n := len(values)
	if len(cells) < n {
		n = len(cells)
	}
	for i := 0; i < n; i++ {
		ref := strings.TrimSpace(cells[i])
		if ref == "" {
			continue
		}
		setCell(f, sheet, ref, values[i], merges, notices)
	}
}

// setCell writes one value, redirecting into the anchor of a merged region
// when the target sits inside one. Failures become notices, not errors.
func setCell(f *excelize.File, sheet, ref string, value any, merges []excelize.MergeCell, notices *[]Notice) {
	target, redirected, err := anchorOf(merges, ref)
	if err != nil {
		*notices = append(*notices, Notice{Cell: ref, Message: "invalid cell reference", Err: &CellError{Cell: ref, Err: err}})
		return
	}
	if redirected {
		*notices = append(*notices, Notice{Cell: ref, Message: fmt.Sprintf("inside merged region, written to anchor %s", target)})
	}
	if err := f.SetCellValue(sheet, target, value); err != nil {
		*notices = append(*notices, Notice{Cell: target, Message: "write failed", Err: &CellError{Cell: target, Err: err}})
	}
}

// anchorOf maps ref to the top-left anchor of the merged region containing
// it, if any. Writing a non-anchor cell of a merged region is rejected by
// the file format.
func anchorOf(merges []excelize.MergeCell, ref string) (string, bool, error) {
	col, row, err := excelize.CellNameToCoordinates(ref)
	if err != nil {
		return "", false, err
	}
	for _, m := range merges {
		start := m.GetStartAxis()
		sc, sr, err := excelize.CellNameToCoordinates(start)
		if err != nil {
			continue
		}
		ec, er, err := excelize.CellNameToCoordinates(m.GetEndAxis())
		if err != nil {
			continue
		}
		if col >= sc && col <= ec && row >= sr && row <= er {
			return start, start != ref, nil
		}
	}
	return ref, false, nil
}

// resolveSheet picks the target sheet: the requested name when it exists, a
// sheet literally named "sheet" next, the active sheet last. A missed
// request is a warning, never a failure.
func resolveSheet(f *excelize.File, requested string, notices *[]Notice) string {
	sheets := f.GetSheetList()
	if requested != "" {
		for _, s := range sheets {
			if s == requested {
				return s
			}
		}
		*notices = append(*notices, Notice{Message: fmt.Sprintf("sheet %q not found, falling back", requested)})
	}
	for _, s := range sheets {
		if s == "sheet" {
			return s
		}
	}
	return f.GetSheetName(f.GetActiveSheetIndex())
}
