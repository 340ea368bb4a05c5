// Package mrt serves path queries over a station network built from a
// station dataset. A Router owns the current graph; Server exposes it over
// HTTP.
package mrt

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Helhest/mrt/config"
	"github.com/Helhest/mrt/network"
	"github.com/Helhest/mrt/routing"
	"github.com/Helhest/mrt/stations"
)

// Router answers path queries against the most recently built network.
// Queries share the graph read-only; Reload swaps in a new one.
type Router struct {
	mu      sync.RWMutex
	graph   *network.Graph
	report  *network.Report
	version string
	builtAt time.Time

	opts  network.Options
	cache *QueryCache
}

// NewRouter creates a router with an empty network
func NewRouter(opts network.Options, cacheCfg config.CacheConfig) *Router {
	g, report := network.Build(nil, opts)
	return &Router{
		graph:   g,
		report:  report,
		version: "",
		opts:    opts,
		cache:   NewQueryCache(cacheCfg),
	}
}

// NewRouterFromConfig creates a router and builds the network from the
// configured station file.
func NewRouterFromConfig(cfg config.AppConfig) (*Router, error) {
	r := NewRouter(network.OptionsFromConfig(cfg.Network), cfg.Cache)
	if err := r.ReloadFile(cfg.Stations.Path); err != nil {
		return nil, err
	}
	return r, nil
}

// ReloadFile rebuilds the network from a station CSV file
func (r *Router) ReloadFile(path string) error {
	recs, err := stations.LoadFile(path)
	if err != nil {
		return fmt.Errorf("load stations: %w", err)
	}
	r.Reload(recs)
	return nil
}

// Reload builds a new network from records and makes it current. Build
// warnings are logged; the report is returned so callers can tell whether
// codes were dropped.
func (r *Router) Reload(records []stations.Record) *network.Report {
	g, report := network.Build(records, r.opts)
	version := uuid.NewString()
	report.LogAll(version)
	if !report.Complete() {
		log.Printf("network %s built with %d dropped codes", version, len(report.Dropped()))
	}

	r.mu.Lock()
	r.graph, r.report, r.version, r.builtAt = g, report, version, time.Now().UTC()
	r.mu.Unlock()
	r.cache.Purge()

	log.Printf("network %s ready: %d codes, %d edges", version, g.NodeCount(), g.EdgeCount())
	return report
}

// Snapshot returns the current graph and its version
func (r *Router) Snapshot() (*network.Graph, string) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.graph, r.version
}

// Status describes the current network
type Status struct {
	NetworkVersion string    `json:"networkVersion"`
	BuiltAt        time.Time `json:"builtAt"`
	Codes          int       `json:"codes"`
	Edges          int       `json:"edges"`
	Complete       bool      `json:"complete"`
	DroppedCodes   []string  `json:"droppedCodes,omitempty"`
}

// Status reports on the current network
func (r *Router) Status() Status {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return Status{
		NetworkVersion: r.version,
		BuiltAt:        r.builtAt,
		Codes:          r.graph.NodeCount(),
		Edges:          r.graph.EdgeCount(),
		Complete:       r.report.Complete(),
		DroppedCodes:   r.report.Dropped(),
	}
}

// Shortest returns the minimum-hop path
func (r *Router) Shortest(from, to string) routing.Result {
	g, version := r.Snapshot()
	return r.query(g, version, kindShortest, from, to, routing.ShortestHops)
}

// Fastest returns the minimum-time path
func (r *Router) Fastest(from, to string) routing.Result {
	g, version := r.Snapshot()
	return r.query(g, version, kindFastest, from, to, routing.Fastest)
}

// RoutePair answers both queries against a single network snapshot.
type RoutePair struct {
	Graph    *network.Graph
	Version  string
	Shortest routing.Result
	Fastest  routing.Result
}

// Route runs the shortest and fastest queries against the same network,
// so a concurrent Reload cannot split them across versions.
func (r *Router) Route(from, to string) RoutePair {
	g, version := r.Snapshot()
	return RoutePair{
		Graph:    g,
		Version:  version,
		Shortest: r.query(g, version, kindShortest, from, to, routing.ShortestHops),
		Fastest:  r.query(g, version, kindFastest, from, to, routing.Fastest),
	}
}

func (r *Router) query(g *network.Graph, version, kind, from, to string, search func(*network.Graph, string, string) routing.Result) routing.Result {
	if res, ok := r.cache.Get(version, kind, from, to); ok {
		return res
	}
	res := search(g, from, to)
	r.cache.Set(version, kind, from, to, res)
	return res
}
