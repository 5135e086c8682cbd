package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	cgerrors "github.com/matzehuels/cloudgraph/pkg/errors"
)

// DefaultNullTokens are cell values read as missing. They match the tokens
// spreadsheet and dataframe exports write for empty cells.
var DefaultNullTokens = []string{
	"#N/A", "#N/A N/A", "#NA", "-1.#IND", "-1.#QNAN", "-NaN", "-nan",
	"1.#IND", "1.#QNAN", "<NA>", "N/A", "NA", "NULL", "NaN", "None",
	"n/a", "nan", "null",
}

// Options configures how delimited input is read.
type Options struct {
	// Delimiter separates cells. Zero means ','.
	Delimiter rune

	// TrimSpace strips leading and trailing whitespace from every cell.
	TrimSpace bool

	// KeepNullTokens disables mapping of [DefaultNullTokens] to "".
	KeepNullTokens bool
}

// Table is the in-memory row store.
type Table struct {
	columns []string
	Rows    []Row
}

// Columns returns the header in input order.
func (t *Table) Columns() []string { return t.columns }

// Has reports whether the header declares the named column.
func (t *Table) Has(name string) bool {
	for _, c := range t.columns {
		if c == name {
			return true
		}
	}
	return false
}

// Len returns the number of data rows.
func (t *Table) Len() int { return len(t.Rows) }

// Load reads the file at path. A missing file yields FILE_NOT_FOUND.
func Load(path string, opts Options) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, cgerrors.Wrap(cgerrors.ErrCodeFileNotFound, err, "input %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	t, err := Read(f, opts)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return t, nil
}

// Read parses delimited text with a header row.
//
// It fails with MALFORMED_INPUT when the input is empty or the header lacks
// any of [RequiredColumns]. Short rows are padded with empty values and cells
// beyond the header width are dropped.
func Read(r io.Reader, opts Options) (*Table, error) {
	cr := csv.NewReader(r)
	if opts.Delimiter != 0 {
		cr.Comma = opts.Delimiter
	}
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, cgerrors.New(cgerrors.ErrCodeMalformedInput, "input has no header row")
	}
	if err != nil {
		return nil, cgerrors.Wrap(cgerrors.ErrCodeMalformedInput, err, "read header")
	}
	header = normalizeHeader(header)
	if err := checkRequired(header); err != nil {
		return nil, err
	}

	nulls := nullSet(opts)
	t := &Table{columns: header}
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, cgerrors.Wrap(cgerrors.ErrCodeMalformedInput, err, "read row %d", len(t.Rows)+1)
		}
		t.Rows = append(t.Rows, buildRow(header, rec, opts, nulls))
	}
	return t, nil
}

func normalizeHeader(header []string) []string {
	out := make([]string, len(header))
	for i, h := range header {
		h = strings.TrimSpace(h)
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		out[i] = h
	}
	return out
}

func checkRequired(header []string) error {
	have := make(map[string]bool, len(header))
	for _, h := range header {
		have[h] = true
	}
	var missing []string
	for _, c := range RequiredColumns {
		if !have[c.String()] {
			missing = append(missing, c.String())
		}
	}
	if len(missing) > 0 {
		return cgerrors.New(cgerrors.ErrCodeMalformedInput,
			"input must contain %s columns, missing %s",
			quoteJoin(requiredNames()), quoteJoin(missing))
	}
	return nil
}

func buildRow(header, rec []string, opts Options, nulls map[string]bool) Row {
	r := Row{columns: header}
	for i, col := range header {
		var v string
		if i < len(rec) {
			v = rec[i]
		}
		if opts.TrimSpace {
			v = strings.TrimSpace(v)
		}
		if nulls[v] {
			v = ""
		}
		r.set(col, v)
	}
	return r
}

func nullSet(opts Options) map[string]bool {
	if opts.KeepNullTokens {
		return nil
	}
	m := make(map[string]bool, len(DefaultNullTokens))
	for _, tok := range DefaultNullTokens {
		m[tok] = true
	}
	return m
}

func requiredNames() []string {
	names := make([]string, len(RequiredColumns))
	for i, c := range RequiredColumns {
		names[i] = c.String()
	}
	return names
}

func quoteJoin(s []string) string {
	q := make([]string, len(s))
	for i, v := range s {
		q[i] = fmt.Sprintf("%q", v)
	}
	return strings.Join(q, ", ")
}

// New assembles a table from an explicit header and rows. It applies the same
// header check as [Read]; values are taken verbatim.
func New(columns []string, rows []map[string]string) (*Table, error) {
	if len(columns) == 0 {
		return nil, cgerrors.New(cgerrors.ErrCodeMalformedInput, "input has no header row")
	}
	if err := checkRequired(columns); err != nil {
		return nil, err
	}
	t := &Table{columns: columns, Rows: make([]Row, len(rows))}
	for i, values := range rows {
		t.Rows[i] = NewRow(columns, values)
	}
	return t, nil
}
