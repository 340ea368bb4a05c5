package routing

import (
	"github.com/Helhest/mrt/network"
)

// ShortestHops returns a path from one code to another with the fewest
// edges, ignoring weights.
func ShortestHops(g *network.Graph, from, to string) Result {
	if res, done := precheck(g, from, to); done {
		return res
	}

	prev := map[string]string{}
	visited := map[string]bool{from: true}
	queue := []string{from}
	for len(queue) > 0 {
		at := queue[0]
		queue = queue[1:]
		for _, e := range g.Neighbors(at) {
			if visited[e.To] {
				continue
			}
			visited[e.To] = true
			prev[e.To] = at
			if e.To == to {
				return found(g, Result{From: from, To: to}, walkBack(prev, from, to))
			}
			queue = append(queue, e.To)
		}
	}
	return Result{Status: StatusNoPath, From: from, To: to}
}
