package cmm

import (
	"errors"
	"testing"
)

func TestLotPrefix(t *testing.T) {
	cases := []struct {
		in  string
		out string
	}{
		{"LOT234(234-245)", "LOT234"},
		{"LOT234", "LOT234"},
		{"abc1def2", "abc1"},
		{"234LOT", ""},
		{"(LOT234)", ""},
		{"", ""},
	}

	for _, tc := range cases {
		if got := LotPrefix(tc.in); got != tc.out {
			t.Errorf("LotPrefix(%q) = %q, expected %q", tc.in, got, tc.out)
		}
	}
}

func TestValidDate(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"2025/10/07", true},
		{"2025/13/99", true}, // shape only, no calendar check
		{"2025-10-07", false},
		{"2025/1/7", false},
		{"2025/10/07 ", false},
		{"", false},
	}

	for _, tc := range cases {
		if got := ValidDate(tc.in); got != tc.ok {
			t.Errorf("ValidDate(%q) = %v, expected %v", tc.in, got, tc.ok)
		}
	}
}

func TestOutputName(t *testing.T) {
	got := OutputName("LOT234", "2025/10/07")
	if expected := "水平ノズルLOT234全箇所測定2025/10/07.xlsx"; got != expected {
		t.Errorf("OutputName = %q, expected %q", got, expected)
	}
}

func TestSessionValidate(t *testing.T) {
	cases := []struct {
		name string
		lot  string
		date string
		ok   bool
	}{
		{"complete", "LOT234(234-245)", "2025/10/07", true},
		{"empty session", "", "", true},
		{"lot without prefix", "234LOT", "2025/10/07", false},
		{"bad date", "LOT234", "07.10.2025", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sess := NewSession(tc.lot, tc.date)
			err := sess.Validate()
			if tc.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tc.ok {
				var verr *ValidationError
				if !errors.As(err, &verr) {
					t.Fatalf("expected ValidationError, got %v", err)
				}
			}
		})
	}
}

func TestNewSessionDerivesPrefix(t *testing.T) {
	sess := NewSession("LOT234(234-245)", "2025/10/07")
	if sess.LotPrefix != "LOT234" {
		t.Errorf("prefix = %q, expected LOT234", sess.LotPrefix)
	}
	if got := sess.OutputName(); got != "水平ノズルLOT234(234-245)全箇所測定2025/10/07.xlsx" {
		t.Errorf("output name = %q", got)
	}
}
