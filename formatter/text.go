package formatter

import (
	"fmt"
	"strings"

	"github.com/Helhest/mrt/routing"
)

// BuildText renders one line per query, e.g.
//
//	Shortest path: NS16 -> NS17 (1 stops)
//	Fastest route: NS16 -> NS17 (Total time: 3.12 mins)
func (rb *responseBuilder) BuildText(res *RouteResponse) []byte {
	var b strings.Builder
	if r := res.Shortest; r != nil {
		switch r.Status {
		case routing.StatusFound:
			fmt.Fprintf(&b, "Shortest path: %s (%d stops)\n", strings.Join(r.Path, " -> "), r.Hops)
		case routing.StatusUnknownStation:
			fmt.Fprintf(&b, "Unknown station %s for shortest route.\n", r.Unknown)
		default:
			b.WriteString("No available path for shortest route.\n")
		}
	}
	if r := res.Fastest; r != nil {
		switch r.Status {
		case routing.StatusFound:
			fmt.Fprintf(&b, "Fastest route: %s (Total time: %.2f mins)\n", strings.Join(r.Path, " -> "), r.Minutes)
		case routing.StatusUnknownStation:
			fmt.Fprintf(&b, "Unknown station %s for fastest route.\n", r.Unknown)
		default:
			b.WriteString("No available path for fastest route.\n")
		}
	}
	return []byte(b.String())
}
