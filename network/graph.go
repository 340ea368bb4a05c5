package network

import (
	"github.com/Helhest/mrt/geo"
)

// EdgeKind tells which construction rule produced an edge
type EdgeKind int

const (
	EdgeLine EdgeKind = iota
	EdgeLoop
	EdgeTransfer
)

func (k EdgeKind) String() string {
	switch k {
	case EdgeLine:
		return "line"
	case EdgeLoop:
		return "loop"
	case EdgeTransfer:
		return "transfer"
	default:
		return "unknown"
	}
}

// MarshalText renders the kind by name in JSON and XML output
func (k EdgeKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// Edge is one direction of an undirected connection
type Edge struct {
	To      string   `json:"to"`
	Minutes float64  `json:"minutes"`
	Kind    EdgeKind `json:"kind"`
}

// Link is an undirected edge listed once
type Link struct {
	From    string   `json:"from"`
	To      string   `json:"to"`
	Minutes float64  `json:"minutes"`
	Kind    EdgeKind `json:"kind"`
}

// Graph is the routable station network. It is immutable once built.
type Graph struct {
	nodes  []string                  // codes, insertion order
	coords map[string]geo.Coordinate // code -> coordinate
	names  map[string]string         // code -> station name
	adj    map[string][]Edge         // code -> neighbours, insertion order
	lines  []Line
	edges  int
}

func newGraph() *Graph {
	return &Graph{
		coords: map[string]geo.Coordinate{},
		names:  map[string]string{},
		adj:    map[string][]Edge{},
	}
}

func (g *Graph) addNode(code string, coord geo.Coordinate, name string) {
	if _, ok := g.coords[code]; !ok {
		g.nodes = append(g.nodes, code)
	}
	g.coords[code] = coord
	g.names[code] = name
}

// setEdge writes the undirected edge a-b. It returns false for a self-loop
// and reports whether an existing edge with a different weight was targeted.
func (g *Graph) setEdge(a, b string, minutes float64, kind EdgeKind, policy ConflictPolicy) (ok, conflict bool) {
	if a == b {
		return false, false
	}
	i := g.edgeIndex(a, b)
	if i < 0 {
		g.adj[a] = append(g.adj[a], Edge{To: b, Minutes: minutes, Kind: kind})
		g.adj[b] = append(g.adj[b], Edge{To: a, Minutes: minutes, Kind: kind})
		g.edges++
		return true, false
	}

	existing := g.adj[a][i]
	conflict = existing.Minutes != minutes
	replace := false
	switch policy {
	case ConflictKeepMin:
		replace = minutes < existing.Minutes
	case ConflictKeepFirst:
	default:
		replace = true
	}
	if replace {
		g.adj[a][i] = Edge{To: b, Minutes: minutes, Kind: kind}
		j := g.edgeIndex(b, a)
		g.adj[b][j] = Edge{To: a, Minutes: minutes, Kind: kind}
	}
	return true, conflict
}

func (g *Graph) edgeIndex(from, to string) int {
	for i, e := range g.adj[from] {
		if e.To == to {
			return i
		}
	}
	return -1
}

// HasNode reports whether code is part of the network
func (g *Graph) HasNode(code string) bool {
	_, ok := g.coords[code]
	return ok
}

// Nodes returns all codes in insertion order
func (g *Graph) Nodes() []string { return append([]string(nil), g.nodes...) }

// NodeCount returns the number of codes
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of undirected edges
func (g *Graph) EdgeCount() int { return g.edges }

// Coordinate returns the coordinate of a code
func (g *Graph) Coordinate(code string) (geo.Coordinate, bool) {
	c, ok := g.coords[code]
	return c, ok
}

// StationName returns the display name of the station a code belongs to
func (g *Graph) StationName(code string) string { return g.names[code] }

// Neighbors returns the edges leaving code in insertion order
func (g *Graph) Neighbors(code string) []Edge {
	return append([]Edge(nil), g.adj[code]...)
}

// Edge returns the edge between a and b
func (g *Graph) Edge(a, b string) (Edge, bool) {
	i := g.edgeIndex(a, b)
	if i < 0 {
		return Edge{}, false
	}
	return g.adj[a][i], true
}

// Links lists every undirected edge once, ordered by first endpoint
func (g *Graph) Links() []Link {
	out := make([]Link, 0, g.edges)
	seen := make(map[string]bool, len(g.nodes))
	for _, from := range g.nodes {
		for _, e := range g.adj[from] {
			if seen[e.To] {
				continue
			}
			out = append(out, Link{From: from, To: e.To, Minutes: e.Minutes, Kind: e.Kind})
		}
		seen[from] = true
	}
	return out
}

// Lines returns the ordered stop sequence of every line
func (g *Graph) Lines() []Line {
	out := make([]Line, len(g.lines))
	for i, l := range g.lines {
		out[i] = Line{ID: l.ID, Stops: append([]Code(nil), l.Stops...)}
	}
	return out
}
