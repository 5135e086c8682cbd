// Package exposure decides which resources are reachable from the public
// Internet and links them to a synthetic Internet node.
//
// Each resource type that can be exposed has a [Rule]. The [Detector] parses
// a row's properties column, finds the rule for the row's type and asks it
// whether the resource is exposed. Rows whose properties do not parse as a
// JSON object are skipped silently; that is expected for most resource
// types.
//
// The Internet node is created on the first exposure found and never again,
// so a graph holds at most one node named [InternetNode]. Every exposed
// resource gets one Internet→resource edge.
//
// Built-in rules:
//
//   - [NSGRule]: a network security group with an inbound allow rule whose
//     source prefix is "*", "Internet" or "0.0.0.0/0"
//   - [StorageRule]: a storage account whose network ACL default action is
//     "Allow"
package exposure
