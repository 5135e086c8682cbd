// Package io provides JSON import and export of reference graphs.
//
// # JSON Format
//
// The format has two top-level arrays:
//
//	{
//	  "nodes": [
//	    {"id": "vm-web", "attrs": {"type": "Microsoft.Compute/virtualMachines"}, "power_state": "VM running"},
//	    {"id": "nic-web", "attrs": {"type": "Microsoft.Network/networkInterfaces"}},
//	    {"id": "Internet", "kind": "internet", "attrs": {"type": "Internet"}}
//	  ],
//	  "edges": [
//	    {"from": "vm-web", "to": "nic-web"},
//	    {"from": "Internet", "to": "nic-web"}
//	  ]
//	}
//
// # Node Fields
//
//   - id: the resource name
//   - attrs: the non-empty fields of the source row, as strings
//   - kind: "internet" for the synthetic Internet node, omitted otherwise
//   - power_state: display status of virtual machines, derived from the
//     properties attribute on export and ignored on import
//
// Nodes and edges are written in graph insertion order, so exporting the
// same input twice yields identical files.
package io
