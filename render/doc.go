// Package render turns a dijkstra.Result into human- and tool-readable output.
//
//   - Line / Text: one line per vertex, "A -> C -> B -> D : 8", or
//     "X : unreached" for vertices the solve never reached.
//   - DOT: the shortest-path tree as a Graphviz digraph (gographviz). Reached
//     vertices carry their distance, tree edges carry their weight, unreached
//     vertices are dashed.
//
// Vertices are always listed in handle (insertion) order.
package render
