package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/matzehuels/cloudgraph/pkg/exposure"
	"github.com/matzehuels/cloudgraph/pkg/graph"
	"github.com/matzehuels/cloudgraph/pkg/props"
)

const (
	kindInternet = "internet"

	typeVirtualMachine = "microsoft.compute/virtualmachines"
)

type document struct {
	Nodes []node `json:"nodes"`
	Edges []edge `json:"edges"`
}

type node struct {
	ID         string            `json:"id"`
	Kind       string            `json:"kind,omitempty"`
	Attrs      map[string]string `json:"attrs,omitempty"`
	PowerState string            `json:"power_state,omitempty"`
}

type edge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// WriteJSON encodes g as indented JSON and writes it to w.
func WriteJSON(g *graph.Graph, w io.Writer) error {
	nodes := g.Nodes()
	edges := g.Edges()
	out := document{
		Nodes: make([]node, len(nodes)),
		Edges: make([]edge, len(edges)),
	}

	for i, n := range nodes {
		out.Nodes[i] = node{
			ID:         n.Name,
			Kind:       kindOf(n),
			Attrs:      n.Attrs,
			PowerState: PowerState(n),
		}
	}
	for i, e := range edges {
		out.Edges[i] = edge{From: e.From, To: e.To}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes g to a JSON file at path.
func ExportJSON(g *graph.Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteJSON(g, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// PowerState returns the display status of a virtual machine node, or ""
// for other nodes and for properties that do not parse.
func PowerState(n graph.Node) string {
	if !strings.EqualFold(n.Attr("type"), typeVirtualMachine) {
		return ""
	}
	p, ok := props.Parse(n.Attr("properties"))
	if !ok {
		return ""
	}
	return props.PowerState(p)
}

func kindOf(n graph.Node) string {
	if n.Name == exposure.InternetNode && n.Attr("type") == "Internet" {
		return kindInternet
	}
	return ""
}
