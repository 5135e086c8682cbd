// Package pkg provides the libraries behind cloudgraph.
//
// # Overview
//
// cloudgraph turns a CSV export of Azure resources into a directed graph in
// which an edge A → B means the id of B appears in one of A's fields. A
// synthetic Internet node is linked to every network security group or
// storage account that admits traffic from anywhere.
//
// # Architecture
//
//	CSV export
//	     ↓
//	[table] rows            (typed columns, header validation)
//	     ↓
//	[index] id → name       (last write wins)
//	     ↓
//	[refs] reference edges  (id substring scan over searchable columns)
//	     ↓
//	[exposure] Internet edges (NSG and storage rules over [props])
//	     ↓
//	[graph] immutable graph
//	     ↓
//	[io] JSON · [render/nodelink] DOT/SVG/PNG
//
// [pipeline] wires these stages together and reports through
// [observability] hooks. Failures carry codes from [errors]; user settings
// come from [config].
package pkg
