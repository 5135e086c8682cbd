// Package refs infers "resource A references resource B" edges.
//
// Every row with a name becomes a node carrying its non-empty fields. The
// text of a row's search columns is then scanned for the ids of every other
// indexed resource; each id found as a literal substring yields an edge from
// the row to the resource that declared the id.
//
// Substring matching needs no knowledge of where references live inside the
// exported JSON, because provider ids are long and effectively unique. The
// scan costs rows × ids comparisons. An id that is itself a substring of a
// longer id also matches wherever the longer one appears; such edges are
// kept.
package refs

import (
	"context"
	"fmt"
	"strings"

	"github.com/matzehuels/cloudgraph/pkg/graph"
	"github.com/matzehuels/cloudgraph/pkg/index"
	"github.com/matzehuels/cloudgraph/pkg/table"
)

// SearchableColumns are the columns scanned for references when present.
var SearchableColumns = []table.Column{
	table.ColumnProperties,
	table.ColumnTags,
	table.ColumnIdentity,
	table.ColumnManagedBy,
	table.ColumnResourceGroup,
	table.ColumnType,
}

// Stats summarizes one build.
type Stats struct {
	Nodes          int // rows that produced or updated a node
	ReferenceEdges int // distinct reference edges in the graph
	Matches        int // substring hits, before edge de-duplication
}

// SearchColumns picks the header columns to scan, in header order. If the
// header has none of [SearchableColumns], every column is scanned.
func SearchColumns(header []string) []string {
	want := make(map[string]bool, len(SearchableColumns))
	for _, c := range SearchableColumns {
		want[c.String()] = true
	}
	var cols []string
	for _, h := range header {
		if want[h] {
			cols = append(cols, h)
		}
	}
	if len(cols) == 0 {
		return append([]string(nil), header...)
	}
	return cols
}

// Haystack joins the row's values for cols with single spaces.
func Haystack(r table.Row, cols []string) string {
	var b strings.Builder
	for i, c := range cols {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(r.Get(c))
	}
	return b.String()
}

// Build adds resource nodes and reference edges for tbl to b.
//
// Nodes are added for all rows first, so attributes always come from the
// last row carrying a name even when an earlier row references it. ctx is
// only checked before the scan starts.
func Build(ctx context.Context, tbl *table.Table, idx *index.Index, b *graph.Builder) (Stats, error) {
	var st Stats
	for _, r := range tbl.Rows {
		name := r.Name()
		if name == "" {
			continue
		}
		if err := b.UpsertNode(name, graph.Attrs(r.Attributes())); err != nil {
			return st, fmt.Errorf("node %s: %w", name, err)
		}
		st.Nodes++
	}

	if err := ctx.Err(); err != nil {
		return st, err
	}

	cols := SearchColumns(tbl.Columns())
	ids := idx.IDs()
	before := b.EdgeCount()
	for _, r := range tbl.Rows {
		src := r.Name()
		if src == "" {
			continue
		}
		hay := Haystack(r, cols)
		own := r.ID()
		for _, cid := range ids {
			if cid == own || !strings.Contains(hay, cid) {
				continue
			}
			tgt, _ := idx.Name(cid)
			if tgt == "" {
				continue
			}
			st.Matches++
			if err := b.EnsureNode(tgt); err != nil {
				return st, fmt.Errorf("node %s: %w", tgt, err)
			}
			if err := b.AddEdge(src, tgt); err != nil {
				return st, fmt.Errorf("edge %s->%s: %w", src, tgt, err)
			}
		}
	}
	st.ReferenceEdges = b.EdgeCount() - before
	return st, nil
}
