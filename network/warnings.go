package network

import (
	"fmt"
	"log"
	"sort"
	"strings"
)

// Warning type constants
const (
	WarningMalformedCode = "malformed_code"
	WarningDuplicateCode = "duplicate_code"
	WarningEdgeConflict  = "edge_conflict"
	WarningSelfLoop      = "self_loop"
)

// warningInfo holds aggregated information about a specific warning type
type warningInfo struct {
	count    int
	examples []string
}

// Report collects the anomalies seen while building a graph. Malformed codes
// are dropped from the graph; Complete reports whether that happened.
type Report struct {
	warnings map[string]*warningInfo
	dropped  []string
}

// NewReport creates an empty build report
func NewReport() *Report {
	return &Report{
		warnings: make(map[string]*warningInfo),
	}
}

// Add records a warning occurrence with an example ID
func (r *Report) Add(warningType, exampleID string) {
	if r.warnings[warningType] == nil {
		r.warnings[warningType] = &warningInfo{
			examples: make([]string, 0, 3),
		}
	}

	info := r.warnings[warningType]
	info.count++

	// Store up to 3 examples
	if len(info.examples) < 3 {
		info.examples = append(info.examples, exampleID)
	}
}

func (r *Report) drop(token string) {
	r.dropped = append(r.dropped, token)
	r.Add(WarningMalformedCode, fmt.Sprintf("%q", token))
}

// Count returns how many times warningType was recorded
func (r *Report) Count(warningType string) int {
	if info := r.warnings[warningType]; info != nil {
		return info.count
	}
	return 0
}

// Dropped returns the code tokens left out of the graph, in input order
func (r *Report) Dropped() []string {
	return append([]string(nil), r.dropped...)
}

// Complete is true when every input code made it into the graph
func (r *Report) Complete() bool { return len(r.dropped) == 0 }

// Types returns the recorded warning types, sorted
func (r *Report) Types() []string {
	out := make([]string, 0, len(r.warnings))
	for t := range r.warnings {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// LogAll outputs all collected warnings in consolidated format
func (r *Report) LogAll(source string) {
	for _, warningType := range r.Types() {
		log.Printf("%s", r.formatWarningMessage(warningType, source, r.warnings[warningType]))
	}
}

// formatWarningMessage creates a human-readable warning message
func (r *Report) formatWarningMessage(warningType, source string, info *warningInfo) string {
	var description, action string

	switch warningType {
	case WarningMalformedCode:
		description = "station codes without a line prefix"
		action = "Skipping them; they are not part of the network"
	case WarningDuplicateCode:
		description = "station codes listed more than once"
		action = "Using the coordinates of the last occurrence"
	case WarningEdgeConflict:
		description = "edges written twice with different weights"
		action = "Resolving with the configured conflict policy"
	case WarningSelfLoop:
		description = "edges from a code to itself"
		action = "Ignoring them"
	default:
		description = "unknown issue"
		action = "Continuing the build"
	}

	return fmt.Sprintf("Stations %s have %s (%d occurrences). %s. Examples: %s",
		source, description, info.count, action, strings.Join(info.examples, ", "))
}
