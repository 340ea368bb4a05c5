// Package routing answers path queries over a built network.Graph.
//
// ShortestHops runs a breadth-first search and minimises the number of
// edges; Fastest runs Dijkstra over the edge weights and minimises minutes.
// Both visit neighbours in the graph's insertion order, so the same graph
// always yields the same path. Neither mutates the graph, so queries may run
// concurrently.
package routing
