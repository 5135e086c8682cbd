// Package pipeline runs the complete table → graph build.
//
// # Architecture
//
// The build is one sequential pass through four stages:
//
//  1. Load: read the delimited export into a [table.Table]
//  2. Index: map resource ids to names and rows
//  3. References: add resource nodes and inferred reference edges
//  4. Exposure: link publicly reachable resources to the Internet node
//
// The finished [graph.Graph] is handed to consumers (JSON export, DOT/SVG
// rendering, the CLI explorer) through [Result].
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.BuildFile(ctx, "Azure_Arm.csv", pipeline.Options{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Graph.NodeCount(), result.Graph.EdgeCount())
//
// Cancellation is honored between stages only; a stage that has started
// runs to completion.
package pipeline

import (
	"time"

	"github.com/matzehuels/cloudgraph/pkg/exposure"
	"github.com/matzehuels/cloudgraph/pkg/graph"
	"github.com/matzehuels/cloudgraph/pkg/table"
)

// Options configures a build.
type Options struct {
	// Table controls how delimited input is read.
	Table table.Options

	// Rules replaces the built-in exposure rules when non-empty.
	Rules []exposure.Rule

	// SkipExposure disables the exposure stage.
	SkipExposure bool
}

// Stats records sizes and timings of a build.
type Stats struct {
	Rows           int
	IndexedIDs     int
	Nodes          int
	Edges          int
	ReferenceEdges int
	ExposureEdges  int
	SkippedRows    int // rows whose properties did not parse or were malformed

	LoadTime  time.Duration
	BuildTime time.Duration
}

// Result is the outcome of a successful build.
type Result struct {
	// ID uniquely identifies this build, for logs and exported metadata.
	ID string

	// Source names the input, usually a file path.
	Source string

	Graph    *graph.Graph
	Exposure exposure.Result
	Stats    Stats
}
