// Package graph provides the directed reference graph handed to consumers.
//
// # Overview
//
// Nodes are cloud resources keyed by name and carry string attributes taken
// from the source row. Edges are ordered (from, to) pairs meaning "from
// references to" or, for the synthetic Internet node, "Internet reaches to".
// Edges have no attributes and a given pair is stored once, so inserting the
// same reference twice is a no-op. Cycles and self loops are representable.
//
// # Construction
//
// A [Builder] exclusively owns the node and edge collections while a graph
// is being assembled. Calling [Builder.Graph] transfers ownership to the
// returned [Graph], which has no mutating methods; the builder rejects any
// further changes with [ErrBuilderClosed]:
//
//	b := graph.NewBuilder()
//	b.UpsertNode("vm-a", graph.Attrs{"type": "Microsoft.Compute/virtualMachines"})
//	b.UpsertNode("nic-a", nil)
//	b.AddEdge("vm-a", "nic-a")
//	g := b.Graph()
//
// # Ordering
//
// [Graph.Nodes] and [Graph.Edges] return insertion order, so output built
// from the same input is stable across runs.
//
// # Concurrency
//
// A Builder is not safe for concurrent use. A finished Graph is read-only
// and may be shared between goroutines.
package graph
