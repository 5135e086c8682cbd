package graph

import (
	"errors"
	"slices"
	"testing"
)

func TestBuilderUpsertNode(t *testing.T) {
	b := NewBuilder()
	if err := b.UpsertNode("vm", Attrs{"type": "vm", "location": "westeurope"}); err != nil {
		t.Fatalf("UpsertNode() error = %v", err)
	}
	if err := b.UpsertNode("vm", Attrs{"location": "northeurope"}); err != nil {
		t.Fatalf("UpsertNode() error = %v", err)
	}

	g := b.Graph()
	if g.NodeCount() != 1 {
		t.Fatalf("NodeCount() = %d, want 1", g.NodeCount())
	}
	n, ok := g.Node("vm")
	if !ok {
		t.Fatal("Node(vm) not found")
	}
	if got := n.Attr("location"); got != "northeurope" {
		t.Errorf("location = %q, want northeurope", got)
	}
	if got := n.Attr("type"); got != "vm" {
		t.Errorf("type = %q, want vm", got)
	}
}

func TestBuilderEnsureNodeKeepsAttrs(t *testing.T) {
	b := NewBuilder()
	b.UpsertNode("disk", Attrs{"type": "disk"})
	b.EnsureNode("disk")
	b.EnsureNode("bare")

	g := b.Graph()
	if n, _ := g.Node("disk"); n.Attr("type") != "disk" {
		t.Errorf("EnsureNode overwrote attributes: %v", n.Attrs)
	}
	n, ok := g.Node("bare")
	if !ok {
		t.Fatal("bare node not inserted")
	}
	if n.Attrs == nil || len(n.Attrs) != 0 {
		t.Errorf("bare node attrs = %v, want empty non-nil map", n.Attrs)
	}
}

func TestBuilderErrors(t *testing.T) {
	b := NewBuilder()
	b.UpsertNode("a", nil)

	tests := []struct {
		name string
		fn   func() error
		want error
	}{
		{"empty node name", func() error { return b.UpsertNode("", nil) }, ErrInvalidNodeName},
		{"unknown source", func() error { return b.AddEdge("x", "a") }, ErrUnknownSourceNode},
		{"unknown target", func() error { return b.AddEdge("a", "x") }, ErrUnknownTargetNode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.fn(); !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestBuilderClosed(t *testing.T) {
	b := NewBuilder()
	b.UpsertNode("a", nil)
	g := b.Graph()
	if g == nil {
		t.Fatal("Graph() = nil")
	}

	if err := b.UpsertNode("b", nil); !errors.Is(err, ErrBuilderClosed) {
		t.Errorf("UpsertNode after Graph() error = %v, want ErrBuilderClosed", err)
	}
	if err := b.AddEdge("a", "a"); !errors.Is(err, ErrBuilderClosed) {
		t.Errorf("AddEdge after Graph() error = %v, want ErrBuilderClosed", err)
	}
	if b.Graph() != nil {
		t.Error("second Graph() call should return nil")
	}
	if g.NodeCount() != 1 {
		t.Errorf("graph changed after close: %d nodes", g.NodeCount())
	}
}

func TestAddEdgeIdempotent(t *testing.T) {
	b := NewBuilder()
	b.UpsertNode("a", nil)
	b.UpsertNode("b", nil)
	for range 3 {
		if err := b.AddEdge("a", "b"); err != nil {
			t.Fatalf("AddEdge() error = %v", err)
		}
	}
	b.AddEdge("b", "a")

	g := b.Graph()
	if g.EdgeCount() != 2 {
		t.Errorf("EdgeCount() = %d, want 2", g.EdgeCount())
	}
	if !g.HasEdge("a", "b") || !g.HasEdge("b", "a") {
		t.Errorf("edges = %v", g.Edges())
	}
	if got := g.Successors("a"); !slices.Equal(got, []string{"b"}) {
		t.Errorf("Successors(a) = %v, want [b]", got)
	}
}

func TestGraphQueries(t *testing.T) {
	b := NewBuilder()
	for _, n := range []string{"Internet", "nsg", "nic", "vm"} {
		b.UpsertNode(n, nil)
	}
	b.AddEdge("Internet", "nsg")
	b.AddEdge("nic", "nsg")
	b.AddEdge("vm", "nic")
	g := b.Graph()

	if got := g.Predecessors("nsg"); !slices.Equal(got, []string{"Internet", "nic"}) {
		t.Errorf("Predecessors(nsg) = %v", got)
	}
	if g.InDegree("nsg") != 2 || g.OutDegree("vm") != 1 {
		t.Errorf("InDegree(nsg) = %d, OutDegree(vm) = %d", g.InDegree("nsg"), g.OutDegree("vm"))
	}
	if got := g.Sources(); !slices.Equal(got, []string{"Internet", "vm"}) {
		t.Errorf("Sources() = %v", got)
	}
	if got := g.Sinks(); !slices.Equal(got, []string{"nsg"}) {
		t.Errorf("Sinks() = %v", got)
	}
	if got := g.Names(); !slices.Equal(got, []string{"Internet", "nic", "nsg", "vm"}) {
		t.Errorf("Names() = %v", got)
	}

	var order []string
	for _, n := range g.Nodes() {
		order = append(order, n.Name)
	}
	if !slices.Equal(order, []string{"Internet", "nsg", "nic", "vm"}) {
		t.Errorf("Nodes() order = %v", order)
	}
	want := []Edge{{"Internet", "nsg"}, {"nic", "nsg"}, {"vm", "nic"}}
	if got := g.Edges(); !slices.Equal(got, want) {
		t.Errorf("Edges() = %v, want %v", got, want)
	}
}

func TestGraphReturnsCopies(t *testing.T) {
	b := NewBuilder()
	b.UpsertNode("a", Attrs{"type": "x"})
	g := b.Graph()

	n, _ := g.Node("a")
	n.Attrs["type"] = "mutated"
	if again, _ := g.Node("a"); again.Attr("type") != "x" {
		t.Errorf("node attributes aliased: %v", again.Attrs)
	}

	if _, ok := g.Node("missing"); ok {
		t.Error("Node(missing) reported found")
	}
}
