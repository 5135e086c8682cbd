package table

// Field is a single (column, value) pair of a row.
type Field struct {
	Column string
	Value  string
}

// Row is one resource record. Known columns are stored by [Column], all other
// header columns in a side map. A Row is only built by [Read], which
// guarantees every header column has a value.
type Row struct {
	known   [numColumns]string
	extra   map[string]string
	columns []string // shared header, not owned
}

// Value returns the value of a known column.
func (r Row) Value(c Column) string {
	if c < 0 || c >= numColumns {
		return ""
	}
	return r.known[c]
}

// Get returns the value of any header column by name.
// Unknown names yield the empty string.
func (r Row) Get(name string) string {
	if c, ok := LookupColumn(name); ok {
		return r.known[c]
	}
	return r.extra[name]
}

// ID returns the resource id.
func (r Row) ID() string { return r.known[ColumnID] }

// Name returns the resource name.
func (r Row) Name() string { return r.known[ColumnName] }

// Type returns the resource type, e.g. "Microsoft.Network/networkSecurityGroups".
func (r Row) Type() string { return r.known[ColumnType] }

// Properties returns the raw properties text.
func (r Row) Properties() string { return r.known[ColumnProperties] }

// Fields returns every header column with its value, in header order.
func (r Row) Fields() []Field {
	fields := make([]Field, len(r.columns))
	for i, col := range r.columns {
		fields[i] = Field{Column: col, Value: r.Get(col)}
	}
	return fields
}

// Attributes returns the non-empty fields of the row keyed by column name.
func (r Row) Attributes() map[string]string {
	attrs := make(map[string]string, len(r.columns))
	for _, col := range r.columns {
		if v := r.Get(col); v != "" {
			attrs[col] = v
		}
	}
	return attrs
}

func (r *Row) set(col, value string) {
	if c, ok := LookupColumn(col); ok {
		r.known[c] = value
		return
	}
	if r.extra == nil {
		r.extra = make(map[string]string)
	}
	r.extra[col] = value
}

// NewRow builds a row from a column->value map against the given header.
// Header columns absent from values are set to the empty string.
func NewRow(columns []string, values map[string]string) Row {
	r := Row{columns: columns}
	for _, col := range columns {
		r.set(col, values[col])
	}
	return r
}
