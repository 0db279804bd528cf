// Package network is the query facade over a loaded edge file.
//
// It strings the core together in load order: edgefile.ReadFile → digraph.Build,
// and then answers the queries an external collaborator such as a CLI needs:
//
//	n, err := network.Load("cities.txt")
//	n.Vertices()                  // names in registration order
//	n.Edges()                     // (from, to, weight) in row-major order
//	n.ShortestPathCost("A", "C")  // cost, unreachable or negative cycle
//
// Load is all-or-nothing: on any I/O, format or cost error it returns a nil
// *Network, so a half-built graph can never be queried. A loaded Network is
// immutable and safe for concurrent queries.
package network
