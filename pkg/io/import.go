package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/cloudgraph/pkg/graph"
)

// ReadJSON decodes a JSON graph from r.
//
// Node ids must be non-empty and every edge must reference declared nodes.
// A node id listed twice merges its attributes, the later entry winning.
// Repeated edges collapse into one. Errors name the offending node or edge.
// ReadJSON does not close r.
func ReadJSON(r io.Reader) (*graph.Graph, error) {
	var data document
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	b := graph.NewBuilder()
	for _, n := range data.Nodes {
		if err := b.UpsertNode(n.ID, graph.Attrs(n.Attrs)); err != nil {
			return nil, fmt.Errorf("node %q: %w", n.ID, err)
		}
	}
	for _, e := range data.Edges {
		if err := b.AddEdge(e.From, e.To); err != nil {
			return nil, fmt.Errorf("edge %s->%s: %w", e.From, e.To, err)
		}
	}
	return b.Graph(), nil
}

// ImportJSON reads the JSON file at path.
func ImportJSON(path string) (*graph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}
