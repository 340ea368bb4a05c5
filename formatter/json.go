package formatter

import (
	"encoding/json"
)

// BuildJSON serializes a route response to JSON
func (rb *responseBuilder) BuildJSON(res *RouteResponse) []byte {
	b, _ := json.Marshal(res)
	return b
}
