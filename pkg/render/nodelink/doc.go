// Package nodelink renders reference graphs as node-link diagrams.
//
// # Usage
//
// Convert a graph to DOT, then render it with the embedded Graphviz:
//
//	dot := nodelink.ToDOT(g, nodelink.Options{Detailed: false})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//	png, err := nodelink.RenderPNG(ctx, dot)
//
// # Options
//
//   - Detailed: node labels include the resource type, resource group and
//     location in addition to the name
//
// # DOT Format
//
// [ToDOT] emits plain DOT text, so it can also be fed to an external `dot`
// binary or any other Graphviz-compatible tool. Nodes are emitted in graph
// insertion order and edges in edge insertion order. The synthetic Internet
// node is drawn as an ellipse; every other node is a rounded box.
package nodelink
