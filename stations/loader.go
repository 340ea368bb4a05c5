package stations

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// ErrMissingColumn is returned when the header lacks a required column
var ErrMissingColumn = errors.New("missing column")

// ErrNonFinite is returned for NaN or infinite coordinates
var ErrNonFinite = errors.New("coordinate is not finite")

// LoadFile reads station records from a CSV file
func LoadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	recs, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return recs, nil
}

// ReadCSV reads station records from r. The first row is the header; columns
// are matched case-insensitively and may appear in any order.
func ReadCSV(r io.Reader) ([]Record, error) {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1
	csvr.TrimLeadingSpace = true
	rows, err := csvr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	head := rows[0]
	if len(head) > 0 {
		// Excel exports prepend a BOM to the first header cell
		head[0] = strings.TrimPrefix(head[0], "\ufeff")
	}
	idx := func(col string) int {
		for i, h := range head {
			if strings.EqualFold(strings.TrimSpace(h), col) {
				return i
			}
		}
		return -1
	}
	cCode := idx(ColumnCodes)
	cName := idx(ColumnName)
	cLat := idx(ColumnLatitude)
	cLon := idx(ColumnLongitude)
	required := []struct {
		name string
		pos  int
	}{{ColumnCodes, cCode}, {ColumnName, cName}, {ColumnLatitude, cLat}, {ColumnLongitude, cLon}}
	for _, c := range required {
		if c.pos < 0 {
			return nil, fmt.Errorf("%w %s", ErrMissingColumn, c.name)
		}
	}

	out := make([]Record, 0, len(rows)-1)
	for n, row := range rows[1:] {
		line := n + 2
		field := func(i int) string {
			if i < len(row) {
				return strings.TrimSpace(row[i])
			}
			return ""
		}
		if len(row) == 1 && field(0) == "" {
			continue
		}
		lat, err := parseDegrees(field(cLat))
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid latitude %q: %w", line, field(cLat), err)
		}
		lon, err := parseDegrees(field(cLon))
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid longitude %q: %w", line, field(cLon), err)
		}
		out = append(out, Record{
			Codes:     field(cCode),
			Name:      field(cName),
			Latitude:  lat,
			Longitude: lon,
		})
	}
	return out, nil
}

// parseDegrees accepts finite decimal values only.
func parseDegrees(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrNonFinite
	}
	return v, nil
}
