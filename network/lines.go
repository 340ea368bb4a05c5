package network

import (
	"cmp"
	"maps"
	"slices"
)

// Line is the ordered stop sequence of one line
type Line struct {
	ID    string `json:"id"`
	Stops []Code `json:"stops"`
}

// GroupLines groups codes by line id and orders each line by ordinal. Equal
// ordinals keep their input order. Lines come back sorted by id.
func GroupLines(codes []Code) []Line {
	grouped := map[string][]Code{}
	for _, c := range codes {
		grouped[c.Line] = append(grouped[c.Line], c)
	}
	out := make([]Line, 0, len(grouped))
	for _, id := range slices.Sorted(maps.Keys(grouped)) {
		stops := grouped[id]
		SortStops(stops)
		out = append(out, Line{ID: id, Stops: stops})
	}
	return out
}

// SortStops orders stops by ascending ordinal in place (stable)
func SortStops(stops []Code) {
	slices.SortStableFunc(stops, func(a, b Code) int { return cmp.Compare(a.Ordinal, b.Ordinal) })
}
