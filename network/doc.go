/*
Package network builds the routable station graph.

The build runs in four steps, each returning plain values that feed the
next one:

  - codes: a station's compound code field ("NS24/NE6/CC1") is split on the
    separator and every token is parsed into a line id and an ordinal.
  - index: codes are mapped to the coordinates of the record they came from,
    and grouped by station name to find interchanges.
  - lines: codes are grouped by line id and ordered by ordinal.
  - builder: consecutive stops are joined by edges weighted with the
    estimated travel time, loop lines are closed, and all codes sharing a
    station name are joined pairwise by fixed-cost transfer edges.

# Basic Usage

	recs, err := stations.LoadFile("stations.csv")
	if err != nil {
	    log.Fatal(err)
	}
	g, report := network.Build(recs, network.DefaultOptions())
	if !report.Complete() {
	    log.Printf("dropped codes: %v", report.Dropped())
	}

# Edge weights

Line and loop edges cost

	round2(haversineKM / averageSpeedKMH * 60)

minutes. Transfer edges cost Options.TransferMinutes regardless of distance.
When two rules target the same pair of codes, Options.Conflict decides which
weight survives; the default keeps the last one written.

# Thread safety

A Graph is never modified after Build returns. Any number of goroutines may
query it concurrently.
*/
package network
