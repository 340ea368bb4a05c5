package mrt

import (
	"bytes"
	"time"

	"github.com/bluele/gcache"

	"github.com/Helhest/mrt/config"
	"github.com/Helhest/mrt/routing"
)

const (
	kindShortest = "shortest"
	kindFastest  = "fastest"
)

// QueryCache memoises path results per network version. A zero size
// disables it.
type QueryCache struct {
	c gcache.Cache
}

// NewQueryCache creates an LRU cache sized from config
func NewQueryCache(cfg config.CacheConfig) *QueryCache {
	if cfg.Size <= 0 {
		return &QueryCache{}
	}
	b := gcache.New(cfg.Size).LRU()
	if cfg.TTLSeconds > 0 {
		b = b.Expiration(time.Duration(cfg.TTLSeconds) * time.Second)
	}
	return &QueryCache{c: b.Build()}
}

func (qc *QueryCache) memoKey(args ...string) string {
	var b bytes.Buffer
	for i, a := range args {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(a)
	}
	return b.String()
}

// Get returns a cached result. The path slice is copied.
func (qc *QueryCache) Get(version, kind, from, to string) (routing.Result, bool) {
	if qc.c == nil {
		return routing.Result{}, false
	}
	v, err := qc.c.Get(qc.memoKey(version, kind, from, to))
	if err != nil {
		return routing.Result{}, false
	}
	res := v.(routing.Result)
	res.Path = append([]string(nil), res.Path...)
	return res, true
}

// Set stores a copy of the result
func (qc *QueryCache) Set(version, kind, from, to string, res routing.Result) {
	if qc.c == nil {
		return
	}
	res.Path = append([]string(nil), res.Path...)
	_ = qc.c.Set(qc.memoKey(version, kind, from, to), res)
}

// Len returns the number of cached results
func (qc *QueryCache) Len() int {
	if qc.c == nil {
		return 0
	}
	return qc.c.Len(false)
}

// Purge drops every cached result
func (qc *QueryCache) Purge() {
	if qc.c != nil {
		qc.c.Purge()
	}
}
