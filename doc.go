// SPDX-License-Identifier: MIT

// Package shortpath computes single-source shortest paths over weighted
// undirected graphs and shows the result.
//
// The module is organized into small packages:
//
//	core/     : thread-safe weighted undirected Graph with insertion order
//	dijkstra/ : Dijkstra with linear-scan or heap selection, plus a
//	            concurrent multi-source fan-out (DijkstraAll)
//	builder/  : deterministic topologies (path, cycle, star, complete,
//	            grid, random sparse) and the six-vertex classic graph
//	graphio/  : adjacency documents in JSON and YAML
//	render/   : SVG drawing with vertices coloured by distance
//	cmd/shortpath : command-line front end with SQLite run history
//
// Quick example, distances from A on the classic graph:
//
//	g, _ := builder.BuildGraph(nil, nil, builder.Classic())
//	dist, prev, _ := dijkstra.Dijkstra(g, "A")
//	// dist["F"] == 13, prev["F"] == "E"
//
// Unreachable vertices keep distance +Inf and have no predecessor entry.
package shortpath
