package stations

// Record is one row of the station dataset
type Record struct {
	Codes     string  `json:"codes"` // raw compound code field, e.g. "NS24/NE6/CC1"
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Column names in the station CSV header
const (
	ColumnCodes     = "STN_NO"
	ColumnName      = "STN_NAME"
	ColumnLatitude  = "Latitude"
	ColumnLongitude = "Longitude"
)
