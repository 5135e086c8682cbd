// Package index resolves resource ids to the rows that declare them.
//
// The index is the lookup the reference builder uses to turn an id found in
// free text into a graph node name. Rows with an empty id are not indexed.
// When two rows declare the same id the later row wins; this is not treated
// as an error.
package index

import "github.com/matzehuels/cloudgraph/pkg/table"

// Index maps resource ids to names and rows.
type Index struct {
	idToName map[string]string
	idToRow  map[string]table.Row
	ids      []string
}

// Build indexes rows in iteration order.
func Build(rows []table.Row) *Index {
	idx := &Index{
		idToName: make(map[string]string, len(rows)),
		idToRow:  make(map[string]table.Row, len(rows)),
	}
	for _, r := range rows {
		id := r.ID()
		if id == "" {
			continue
		}
		if _, seen := idx.idToRow[id]; !seen {
			idx.ids = append(idx.ids, id)
		}
		idx.idToName[id] = r.Name()
		idx.idToRow[id] = r
	}
	return idx
}

// Name returns the name of the row that declared id.
// The name may be empty if that row had none.
func (x *Index) Name(id string) (string, bool) {
	n, ok := x.idToName[id]
	return n, ok
}

// Row returns the full row that declared id.
func (x *Index) Row(id string) (table.Row, bool) {
	r, ok := x.idToRow[id]
	return r, ok
}

// IDs returns every indexed id once, in first-seen order.
// The returned slice must not be modified.
func (x *Index) IDs() []string { return x.ids }

// Len returns the number of distinct indexed ids.
func (x *Index) Len() int { return len(x.ids) }
