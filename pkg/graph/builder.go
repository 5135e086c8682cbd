package graph

// Builder assembles a [Graph]. The zero value is not usable; use [NewBuilder].
type Builder struct {
	g *Graph
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{g: newGraph()}
}

// UpsertNode adds the named node or updates an existing one. Attributes are
// merged key by key, later values overwriting earlier ones; a nil attrs map
// leaves an existing node untouched.
func (b *Builder) UpsertNode(name string, attrs Attrs) error {
	if b.g == nil {
		return ErrBuilderClosed
	}
	if name == "" {
		return ErrInvalidNodeName
	}
	n, ok := b.g.nodes[name]
	if !ok {
		n = &Node{Name: name, Attrs: Attrs{}}
		b.g.nodes[name] = n
		b.g.order = append(b.g.order, name)
	}
	for k, v := range attrs {
		n.Attrs[k] = v
	}
	return nil
}

// EnsureNode adds a bare node if none exists under name. Existing nodes and
// their attributes are left as they are.
func (b *Builder) EnsureNode(name string) error {
	return b.UpsertNode(name, nil)
}

// AddEdge adds the directed edge from→to. Both nodes must already exist.
// Adding an existing pair again has no effect.
func (b *Builder) AddEdge(from, to string) error {
	if b.g == nil {
		return ErrBuilderClosed
	}
	if _, ok := b.g.nodes[from]; !ok {
		return ErrUnknownSourceNode
	}
	if _, ok := b.g.nodes[to]; !ok {
		return ErrUnknownTargetNode
	}
	if b.g.HasEdge(from, to) {
		return nil
	}
	e := Edge{From: from, To: to}
	b.g.edges = append(b.g.edges, e)
	b.g.edgeSet[e] = struct{}{}
	b.g.outgoing[from] = append(b.g.outgoing[from], to)
	b.g.incoming[to] = append(b.g.incoming[to], from)
	return nil
}

// HasNode reports whether the builder already holds the named node.
func (b *Builder) HasNode(name string) bool {
	if b.g == nil {
		return false
	}
	return b.g.HasNode(name)
}

// HasEdge reports whether the builder already holds the edge from→to.
func (b *Builder) HasEdge(from, to string) bool {
	if b.g == nil {
		return false
	}
	return b.g.HasEdge(from, to)
}

// NodeCount returns the number of nodes added so far.
func (b *Builder) NodeCount() int {
	if b.g == nil {
		return 0
	}
	return b.g.NodeCount()
}

// EdgeCount returns the number of distinct edges added so far.
func (b *Builder) EdgeCount() int {
	if b.g == nil {
		return 0
	}
	return b.g.EdgeCount()
}

// Graph hands the assembled graph over and closes the builder. A second call
// returns nil.
func (b *Builder) Graph() *Graph {
	g := b.g
	b.g = nil
	return g
}
