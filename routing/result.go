package routing

import (
	"github.com/Helhest/mrt/network"
)

// Status is the outcome of a path query
type Status int

const (
	StatusFound Status = iota
	StatusNoPath
	StatusUnknownStation
)

func (s Status) String() string {
	switch s {
	case StatusFound:
		return "found"
	case StatusNoPath:
		return "no_path"
	case StatusUnknownStation:
		return "unknown_station"
	default:
		return "unknown"
	}
}

// MarshalText renders the status by name
func (s Status) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Result of a path query. Path, Hops and Minutes are only meaningful when
// Status is StatusFound; Unknown names the missing code for
// StatusUnknownStation.
type Result struct {
	Status  Status   `json:"status"`
	From    string   `json:"from"`
	To      string   `json:"to"`
	Path    []string `json:"path,omitempty"`
	Hops    int      `json:"hops"`
	Minutes float64  `json:"minutes"`
	Unknown string   `json:"unknown,omitempty"`
}

// Found reports whether a path exists
func (r Result) Found() bool { return r.Status == StatusFound }

// precheck handles the unknown-station and same-station cases shared by
// both searches.
func precheck(g *network.Graph, from, to string) (Result, bool) {
	res := Result{From: from, To: to}
	switch {
	case !g.HasNode(from):
		res.Status, res.Unknown = StatusUnknownStation, from
		return res, true
	case !g.HasNode(to):
		res.Status, res.Unknown = StatusUnknownStation, to
		return res, true
	case from == to:
		res.Status, res.Path = StatusFound, []string{from}
		return res, true
	}
	return res, false
}

// found fills in a path result. Minutes is summed from the graph edges.
func found(g *network.Graph, res Result, path []string) Result {
	res.Status = StatusFound
	res.Path = path
	res.Hops = len(path) - 1
	total := 0.0
	for i := 0; i+1 < len(path); i++ {
		e, _ := g.Edge(path[i], path[i+1])
		total += e.Minutes
	}
	res.Minutes = network.Round2(total)
	return res
}

// walkBack rebuilds the path ending at to from a predecessor map
func walkBack(prev map[string]string, from, to string) []string {
	var rev []string
	for at := to; ; at = prev[at] {
		rev = append(rev, at)
		if at == from {
			break
		}
	}
	path := make([]string, len(rev))
	for i, c := range rev {
		path[len(rev)-1-i] = c
	}
	return path
}
