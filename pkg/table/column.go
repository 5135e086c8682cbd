package table

// Column identifies a column with meaning to the graph builder.
type Column int

const (
	ColumnID Column = iota
	ColumnName
	ColumnProperties
	ColumnTags
	ColumnIdentity
	ColumnManagedBy
	ColumnResourceGroup
	ColumnType

	numColumns
)

var columnNames = [numColumns]string{
	ColumnID:            "id",
	ColumnName:          "name",
	ColumnProperties:    "properties",
	ColumnTags:          "tags",
	ColumnIdentity:      "identity",
	ColumnManagedBy:     "managedBy",
	ColumnResourceGroup: "resourceGroup",
	ColumnType:          "type",
}

var columnsByName = func() map[string]Column {
	m := make(map[string]Column, numColumns)
	for c, name := range columnNames {
		m[name] = Column(c)
	}
	return m
}()

// String returns the header name of the column.
func (c Column) String() string {
	if c < 0 || c >= numColumns {
		return ""
	}
	return columnNames[c]
}

// LookupColumn maps a header name to its known column.
// Matching is exact, as header names are case-sensitive in the export.
func LookupColumn(name string) (Column, bool) {
	c, ok := columnsByName[name]
	return c, ok
}

// RequiredColumns are the columns every input must declare.
var RequiredColumns = []Column{ColumnID, ColumnName}
