package network

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseCode(t *testing.T) {
	tests := []struct {
		name        string
		token       string
		wantLine    string
		wantOrdinal int
		wantErr     bool
	}{
		{name: "simple", token: "NS16", wantLine: "NS", wantOrdinal: 16},
		{name: "single letter line", token: "A3", wantLine: "A", wantOrdinal: 3},
		{name: "no ordinal", token: "CC", wantLine: "CC", wantOrdinal: 0},
		{name: "suffix after digits", token: "TE22A", wantLine: "TE", wantOrdinal: 22},
		{name: "leading zeros", token: "EW007", wantLine: "EW", wantOrdinal: 7},
		{name: "digits after a separator", token: "CE-2", wantLine: "CE", wantOrdinal: 2},
		{name: "lowercase prefix", token: "ns1", wantErr: true},
		{name: "digit first", token: "1NS", wantErr: true},
		{name: "empty", token: "", wantErr: true},
		{name: "ordinal overflows int", token: "NS99999999999999999999999", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, err := ParseCode(tt.token)
			if tt.wantErr {
				if !errors.Is(err, ErrMalformedCode) {
					t.Fatalf("expected ErrMalformedCode, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if code.Raw != tt.token {
				t.Errorf("Raw = %q, want %q", code.Raw, tt.token)
			}
			if code.Line != tt.wantLine {
				t.Errorf("Line = %q, want %q", code.Line, tt.wantLine)
			}
			if code.Ordinal != tt.wantOrdinal {
				t.Errorf("Ordinal = %d, want %d", code.Ordinal, tt.wantOrdinal)
			}
		})
	}
}

func TestParseCode_ValidCodesHaveLineAndOrdinal(t *testing.T) {
	for _, token := range []string{"NS1", "EW32", "CC", "DT35", "CG2", "BP14", "STC"} {
		code, err := ParseCode(token)
		if err != nil {
			t.Fatalf("ParseCode(%q) failed: %v", token, err)
		}
		if code.Line == "" {
			t.Errorf("ParseCode(%q): empty line", token)
		}
		if code.Ordinal < 0 {
			t.Errorf("ParseCode(%q): negative ordinal %d", token, code.Ordinal)
		}
	}
}

func TestSplitCodes(t *testing.T) {
	tests := []struct {
		raw  string
		sep  string
		want []string
	}{
		{raw: "NS24/NE6/CC1", sep: "/", want: []string{"NS24", "NE6", "CC1"}},
		{raw: "EW13 / NS25", sep: "/", want: []string{"EW13", "NS25"}},
		{raw: "NS1", sep: "/", want: []string{"NS1"}},
		{raw: "NS1/", sep: "/", want: []string{"NS1", ""}},
		{raw: "NS1|EW24", sep: "|", want: []string{"NS1", "EW24"}},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got := SplitCodes(tt.raw, tt.sep)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitCodes(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}
