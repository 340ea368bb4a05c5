package routing

import (
	"github.com/Helhest/mrt/network"
)

type queued struct {
	code    string
	minutes float64
	seq     int // push order, breaks ties between equal costs
}

// Fastest returns a path from one code to another with the least total
// travel time. Edge weights are never negative.
func Fastest(g *network.Graph, from, to string) Result {
	if res, done := precheck(g, from, to); done {
		return res
	}

	dist := map[string]float64{from: 0}
	prev := map[string]string{}
	settled := map[string]bool{}
	pq := MakeHeap(func(a, b queued) bool {
		if a.minutes != b.minutes {
			return a.minutes < b.minutes
		}
		return a.seq < b.seq
	})
	seq := 0
	pq.Push(queued{code: from})

	for !pq.IsEmpty() {
		cur := pq.Pop()
		if settled[cur.code] {
			continue
		}
		settled[cur.code] = true
		if cur.code == to {
			return found(g, Result{From: from, To: to}, walkBack(prev, from, to))
		}
		for _, e := range g.Neighbors(cur.code) {
			if settled[e.To] {
				continue
			}
			d := cur.minutes + e.Minutes
			if old, ok := dist[e.To]; ok && d >= old {
				continue
			}
			dist[e.To] = d
			prev[e.To] = cur.code
			seq++
			pq.Push(queued{code: e.To, minutes: d, seq: seq})
		}
	}
	return Result{Status: StatusNoPath, From: from, To: to}
}
