package formatter

import (
	"fmt"

	"github.com/Helhest/mrt/network"
	"github.com/Helhest/mrt/routing"
)

// Supported output formats
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatXML  = "xml"
)

// RouteResponse pairs the two queries for one origin/destination
type RouteResponse struct {
	NetworkVersion string          `json:"networkVersion,omitempty"`
	From           string          `json:"from"`
	To             string          `json:"to"`
	Shortest       *routing.Result `json:"shortest,omitempty"`
	Fastest        *routing.Result `json:"fastest,omitempty"`
	Stops          []Stop          `json:"stops,omitempty"`
}

// Stop describes a code appearing in one of the paths
type Stop struct {
	Code      string  `json:"code"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// NewRouteResponse builds a response and describes every code on either
// path. Either result may be nil.
func NewRouteResponse(g *network.Graph, shortest, fastest *routing.Result) *RouteResponse {
	res := &RouteResponse{Shortest: shortest, Fastest: fastest}
	seen := map[string]bool{}
	for _, r := range []*routing.Result{shortest, fastest} {
		if r == nil {
			continue
		}
		res.From, res.To = r.From, r.To
		for _, code := range r.Path {
			if seen[code] {
				continue
			}
			seen[code] = true
			c, _ := g.Coordinate(code)
			res.Stops = append(res.Stops, Stop{Code: code, Name: g.StationName(code), Latitude: c.Latitude, Longitude: c.Longitude})
		}
	}
	return res
}

type responseBuilder struct{}

func newResponseBuilder() *responseBuilder { return &responseBuilder{} }

// NewResponseBuilder creates a new response builder for formatting route responses
func NewResponseBuilder() *responseBuilder {
	return newResponseBuilder()
}

// Build serializes res in the requested format
func (rb *responseBuilder) Build(res *RouteResponse, format string) ([]byte, error) {
	switch format {
	case FormatText, "":
		return rb.BuildText(res), nil
	case FormatJSON:
		return rb.BuildJSON(res), nil
	case FormatXML:
		return rb.BuildXML(res), nil
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}

// ContentType returns the MIME type for a format
func ContentType(format string) string {
	switch format {
	case FormatJSON:
		return "application/json"
	case FormatXML:
		return "application/xml"
	default:
		return "text/plain; charset=utf-8"
	}
}
