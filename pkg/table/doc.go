// Package table loads a delimited export of cloud resources into memory.
//
// Every cell is kept as text. The header row is mandatory and must name the
// id and name columns; any other column is carried along untouched. Rows are
// returned in input order and every row holds a value for every header
// column, with missing cells normalized to the empty string.
//
// Columns that the graph builder and the exposure detector care about are
// addressed through the typed [Column] enum. Everything else lives in a side
// map and is reached with [Row.Get]:
//
//	tbl, err := table.Load("Azure_Arm.csv", table.Options{})
//	if err != nil {
//	    return err
//	}
//	for _, r := range tbl.Rows {
//	    fmt.Println(r.Name(), r.Type(), r.Get("location"))
//	}
package table
