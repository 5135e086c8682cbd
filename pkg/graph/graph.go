package graph

import (
	"errors"
	"maps"
	"slices"
)

var (
	// ErrInvalidNodeName is returned when a node name is empty.
	ErrInvalidNodeName = errors.New("node name must not be empty")

	// ErrUnknownSourceNode is returned by [Builder.AddEdge] when the From
	// node has not been added.
	ErrUnknownSourceNode = errors.New("unknown source node")

	// ErrUnknownTargetNode is returned by [Builder.AddEdge] when the To node
	// has not been added.
	ErrUnknownTargetNode = errors.New("unknown target node")

	// ErrBuilderClosed is returned by mutating calls after [Builder.Graph]
	// handed the collections over.
	ErrBuilderClosed = errors.New("builder already produced its graph")
)

// Attrs holds the string attributes of a node.
type Attrs map[string]string

// Node is a resource vertex.
type Node struct {
	Name  string
	Attrs Attrs // never nil
}

// Attr returns the attribute value for key, or "" when unset.
func (n Node) Attr(key string) string { return n.Attrs[key] }

// Edge is a directed reference from one node to another.
type Edge struct {
	From string
	To   string
}

// Graph is a finished, read-only reference graph.
type Graph struct {
	nodes    map[string]*Node
	order    []string
	edges    []Edge
	edgeSet  map[Edge]struct{}
	outgoing map[string][]string
	incoming map[string][]string
}

func newGraph() *Graph {
	return &Graph{
		nodes:    make(map[string]*Node),
		edgeSet:  make(map[Edge]struct{}),
		outgoing: make(map[string][]string),
		incoming: make(map[string][]string),
	}
}

// Nodes returns copies of all nodes in insertion order.
func (g *Graph) Nodes() []Node {
	out := make([]Node, len(g.order))
	for i, name := range g.order {
		out[i] = g.nodes[name].clone()
	}
	return out
}

// Node returns a copy of the named node and true, or false if absent.
func (g *Graph) Node(name string) (Node, bool) {
	n, ok := g.nodes[name]
	if !ok {
		return Node{}, false
	}
	return n.clone(), true
}

// HasNode reports whether a node with the given name exists.
func (g *Graph) HasNode(name string) bool {
	_, ok := g.nodes[name]
	return ok
}

// Edges returns a copy of all edges in insertion order.
func (g *Graph) Edges() []Edge { return slices.Clone(g.edges) }

// HasEdge reports whether the edge from→to exists.
func (g *Graph) HasEdge(from, to string) bool {
	_, ok := g.edgeSet[Edge{From: from, To: to}]
	return ok
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of distinct edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Successors returns the names the node references, in edge insertion order.
func (g *Graph) Successors(name string) []string { return slices.Clone(g.outgoing[name]) }

// Predecessors returns the names referencing the node, in edge insertion order.
func (g *Graph) Predecessors(name string) []string { return slices.Clone(g.incoming[name]) }

// OutDegree returns the number of outgoing edges from the node.
func (g *Graph) OutDegree(name string) int { return len(g.outgoing[name]) }

// InDegree returns the number of incoming edges to the node.
func (g *Graph) InDegree(name string) int { return len(g.incoming[name]) }

// Sources returns the names of nodes with no incoming edges, in insertion order.
func (g *Graph) Sources() []string {
	var out []string
	for _, name := range g.order {
		if len(g.incoming[name]) == 0 {
			out = append(out, name)
		}
	}
	return out
}

// Sinks returns the names of nodes with no outgoing edges, in insertion order.
func (g *Graph) Sinks() []string {
	var out []string
	for _, name := range g.order {
		if len(g.outgoing[name]) == 0 {
			out = append(out, name)
		}
	}
	return out
}

// Names returns all node names sorted ascending.
func (g *Graph) Names() []string {
	return slices.Sorted(maps.Keys(g.nodes))
}

func (n *Node) clone() Node {
	return Node{Name: n.Name, Attrs: maps.Clone(n.Attrs)}
}
