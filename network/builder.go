package network

import (
	"math"

	"github.com/Helhest/mrt/geo"
	"github.com/Helhest/mrt/stations"
)

// Build constructs the network from the station records. Problems with
// individual codes never abort the build; they are returned in the report.
func Build(records []stations.Record, opts Options) (*Graph, *Report) {
	opts = opts.withDefaults()
	report := NewReport()
	idx := NewStationIndex(records, opts.Separator, report)

	g := newGraph()
	codes := idx.Codes()
	for _, c := range codes {
		coord, _ := idx.Coordinate(c.Raw)
		g.addNode(c.Raw, coord, idx.StationName(c.Raw))
	}

	g.lines = GroupLines(codes)
	for _, line := range g.lines {
		stops := line.Stops
		for i := 0; i+1 < len(stops); i++ {
			connect(g, report, opts, stops[i].Raw, stops[i+1].Raw, travelMinutes(g, opts, stops[i].Raw, stops[i+1].Raw), EdgeLine)
		}
		if opts.isLoop(line.ID) && len(stops) > 1 {
			last, first := stops[len(stops)-1].Raw, stops[0].Raw
			connect(g, report, opts, last, first, travelMinutes(g, opts, last, first), EdgeLoop)
		}
	}

	for _, name := range idx.Interchanges() {
		group := idx.Group(name)
		for i := 0; i < len(group); i++ {
			for j := i + 1; j < len(group); j++ {
				connect(g, report, opts, group[i], group[j], opts.TransferMinutes, EdgeTransfer)
			}
		}
	}

	return g, report
}

func connect(g *Graph, report *Report, opts Options, a, b string, minutes float64, kind EdgeKind) {
	ok, conflict := g.setEdge(a, b, minutes, kind, opts.Conflict)
	if !ok {
		report.Add(WarningSelfLoop, a)
		return
	}
	if conflict {
		report.Add(WarningEdgeConflict, a+"-"+b)
	}
}

// travelMinutes estimates the ride between two codes at the average speed
func travelMinutes(g *Graph, opts Options, a, b string) float64 {
	ca, _ := g.Coordinate(a)
	cb, _ := g.Coordinate(b)
	km := geo.HaversineKM(ca, cb, opts.EarthRadiusKM)
	return Round2(km / opts.AverageSpeedKMH * 60)
}

// Round2 rounds minutes to two decimal places
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
