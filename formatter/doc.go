// Package formatter renders route query results.
//
// This package is organized into:
// - response.go: the RouteResponse pairing a shortest and a fastest result
// - json.go: JSON serialization
// - xml.go: XML serialization with proper escaping
// - text.go: the one-line-per-query console format
package formatter
