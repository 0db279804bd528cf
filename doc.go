// Package costpath answers shortest-path queries over weighted, possibly
// asymmetric digraphs loaded from a flat "from;to;forward;backward" edge file.
//
// The stack, bottom-up:
//
//	registry/    — vertex name ↔ dense index, first-seen order
//	edgefile/    — line parsing, line-numbered format errors
//	digraph/     — frozen graph: registry + records + dense N×N cost matrix
//	bellmanford/ — Bellman-Ford with negative-cycle detection and tagged outcomes
//	dijkstra/    — reference solver used as a cross-check oracle in tests
//	network/     — Load / Vertices / Edges / ShortestPathCost facade
//	render/      — vertex list, matrix, DOT and SVG output
//
// Quick example:
//
//	A;B;1;N/A
//	B;C;2;N/A
//	A;C;10;N/A
//
//	n, _ := network.Load("cities.txt")
//	res, _ := n.ShortestPathCost("A", "C") // 3, via B
//
// The command-line front end lives in cmd/costpath.
package costpath
