package network

import (
	"github.com/Helhest/mrt/geo"
	"github.com/Helhest/mrt/stations"
)

// StationIndex maps codes and station names to coordinates and groups the
// codes that share a station name.
type StationIndex struct {
	codes      []Code                    // valid codes, first-encounter order
	coords     map[string]geo.Coordinate // code -> coordinate
	codeNames  map[string]string         // code -> station name
	nameCoords map[string]geo.Coordinate // station name -> coordinate
	groups     map[string][]string       // station name -> codes
	names      []string                  // station names, first-encounter order
}

// NewStationIndex parses the code field of every record. Malformed tokens and
// duplicate codes are recorded on report.
func NewStationIndex(records []stations.Record, sep string, report *Report) *StationIndex {
	idx := &StationIndex{
		coords:     map[string]geo.Coordinate{},
		codeNames:  map[string]string{},
		nameCoords: map[string]geo.Coordinate{},
		groups:     map[string][]string{},
	}
	for _, rec := range records {
		coord := geo.Coordinate{Latitude: rec.Latitude, Longitude: rec.Longitude}
		if _, ok := idx.nameCoords[rec.Name]; !ok {
			idx.names = append(idx.names, rec.Name)
		}
		idx.nameCoords[rec.Name] = coord

		for _, token := range SplitCodes(rec.Codes, sep) {
			code, err := ParseCode(token)
			if err != nil {
				report.drop(token)
				continue
			}
			if _, seen := idx.coords[code.Raw]; seen {
				report.Add(WarningDuplicateCode, code.Raw)
			} else {
				idx.codes = append(idx.codes, code)
			}
			idx.coords[code.Raw] = coord
			idx.codeNames[code.Raw] = rec.Name
			if !contains(idx.groups[rec.Name], code.Raw) {
				idx.groups[rec.Name] = append(idx.groups[rec.Name], code.Raw)
			}
		}
	}
	return idx
}

// Codes returns the valid codes in first-encounter order
func (s *StationIndex) Codes() []Code { return append([]Code(nil), s.codes...) }

// Coordinate returns the coordinate of a code
func (s *StationIndex) Coordinate(code string) (geo.Coordinate, bool) {
	c, ok := s.coords[code]
	return c, ok
}

// StationCoordinate returns the coordinate of a station by display name
func (s *StationIndex) StationCoordinate(name string) (geo.Coordinate, bool) {
	c, ok := s.nameCoords[name]
	return c, ok
}

// StationName returns the display name a code was listed under
func (s *StationIndex) StationName(code string) string { return s.codeNames[code] }

// Group returns the codes sharing a station name
func (s *StationIndex) Group(name string) []string {
	return append([]string(nil), s.groups[name]...)
}

// Interchanges returns, in first-encounter order, the names of stations
// with more than one code.
func (s *StationIndex) Interchanges() []string {
	var out []string
	for _, name := range s.names {
		if len(s.groups[name]) > 1 {
			out = append(out, name)
		}
	}
	return out
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
