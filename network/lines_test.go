package network

import (
	"reflect"
	"testing"
)

func mustCodes(t *testing.T, tokens ...string) []Code {
	t.Helper()
	out := make([]Code, 0, len(tokens))
	for _, tok := range tokens {
		c, err := ParseCode(tok)
		if err != nil {
			t.Fatalf("ParseCode(%q): %v", tok, err)
		}
		out = append(out, c)
	}
	return out
}

func raws(codes []Code) []string {
	out := make([]string, len(codes))
	for i, c := range codes {
		out[i] = c.Raw
	}
	return out
}

func TestGroupLines(t *testing.T) {
	codes := mustCodes(t, "NS10", "EW2", "NS9", "NS1", "EW1", "CC3", "NS2")

	lines := GroupLines(codes)

	var ids []string
	for _, l := range lines {
		ids = append(ids, l.ID)
	}
	if want := []string{"CC", "EW", "NS"}; !reflect.DeepEqual(ids, want) {
		t.Fatalf("line ids = %v, want %v", ids, want)
	}
	if got, want := raws(lines[2].Stops), []string{"NS1", "NS2", "NS9", "NS10"}; !reflect.DeepEqual(got, want) {
		t.Errorf("NS stops = %v, want %v (numeric order)", got, want)
	}
	if got, want := raws(lines[1].Stops), []string{"EW1", "EW2"}; !reflect.DeepEqual(got, want) {
		t.Errorf("EW stops = %v, want %v", got, want)
	}
}

func TestGroupLines_EqualOrdinalsKeepInputOrder(t *testing.T) {
	codes := mustCodes(t, "TE2", "TE", "TE1A", "TE1", "TE0")

	lines := GroupLines(codes)
	if len(lines) != 1 {
		t.Fatalf("expected one line, got %d", len(lines))
	}
	want := []string{"TE", "TE0", "TE1A", "TE1", "TE2"}
	if got := raws(lines[0].Stops); !reflect.DeepEqual(got, want) {
		t.Errorf("stops = %v, want %v", got, want)
	}
}

func TestSortStops_Idempotent(t *testing.T) {
	stops := mustCodes(t, "CC29", "CC3", "CC", "CC10", "CC3", "CC1")
	SortStops(stops)
	once := raws(stops)
	SortStops(stops)
	if twice := raws(stops); !reflect.DeepEqual(once, twice) {
		t.Errorf("sorting twice changed order: %v then %v", once, twice)
	}
}

func TestGroupLines_Empty(t *testing.T) {
	if lines := GroupLines(nil); len(lines) != 0 {
		t.Errorf("expected no lines, got %v", lines)
	}
}
