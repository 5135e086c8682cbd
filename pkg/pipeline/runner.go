package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/cloudgraph/pkg/exposure"
	"github.com/matzehuels/cloudgraph/pkg/graph"
	"github.com/matzehuels/cloudgraph/pkg/index"
	"github.com/matzehuels/cloudgraph/pkg/observability"
	"github.com/matzehuels/cloudgraph/pkg/refs"
	"github.com/matzehuels/cloudgraph/pkg/table"
)

// Runner executes builds and reports progress through its logger.
//
// The Runner holds no per-build state, so one Runner may serve several
// builds, including concurrent ones.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. A nil logger falls back to log.Default().
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// BuildFile loads the export at path and builds its graph.
func (r *Runner) BuildFile(ctx context.Context, path string, opts Options) (*Result, error) {
	hooks := observability.Pipeline()
	hooks.OnLoadStart(ctx, path)

	start := time.Now()
	tbl, err := table.Load(path, opts.Table)
	loadTime := time.Since(start)
	hooks.OnLoadComplete(ctx, path, rowCount(tbl), loadTime, err)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	r.Logger.Debug("loaded table", "path", path, "rows", tbl.Len(), "columns", len(tbl.Columns()), "duration", loadTime)

	res, err := r.Build(ctx, tbl, opts)
	if err != nil {
		return nil, err
	}
	res.Source = path
	res.Stats.LoadTime = loadTime
	return res, nil
}

// BuildReader reads an export from rd and builds its graph.
// source is only used for logging and [Result.Source].
func (r *Runner) BuildReader(ctx context.Context, rd io.Reader, source string, opts Options) (*Result, error) {
	hooks := observability.Pipeline()
	hooks.OnLoadStart(ctx, source)

	start := time.Now()
	tbl, err := table.Read(rd, opts.Table)
	loadTime := time.Since(start)
	hooks.OnLoadComplete(ctx, source, rowCount(tbl), loadTime, err)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}

	res, err := r.Build(ctx, tbl, opts)
	if err != nil {
		return nil, err
	}
	res.Source = source
	res.Stats.LoadTime = loadTime
	return res, nil
}

// Build runs the index, reference and exposure stages over tbl.
// A build either returns a complete graph or an error, never a partial graph.
func (r *Runner) Build(ctx context.Context, tbl *table.Table, opts Options) (res *Result, err error) {
	hooks := observability.Pipeline()
	hooks.OnBuildStart(ctx, tbl.Len())

	start := time.Now()
	defer func() {
		var nodes, edges int
		if res != nil {
			nodes, edges = res.Graph.NodeCount(), res.Graph.EdgeCount()
		}
		hooks.OnBuildComplete(ctx, nodes, edges, time.Since(start), err)
	}()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	idx := index.Build(tbl.Rows)
	r.Logger.Debug("indexed resources", "ids", idx.Len())

	b := graph.NewBuilder()
	refStats, err := refs.Build(ctx, tbl, idx, b)
	if err != nil {
		return nil, fmt.Errorf("references: %w", err)
	}
	r.Logger.Debug("inferred references",
		"nodes", b.NodeCount(),
		"edges", refStats.ReferenceEdges,
		"matches", refStats.Matches)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var exp exposure.Result
	refEdges := b.EdgeCount()
	if !opts.SkipExposure {
		exp, err = exposure.New(opts.Rules...).Apply(tbl.Rows, b)
		if err != nil {
			return nil, fmt.Errorf("exposure: %w", err)
		}
		reportExposure(ctx, r.Logger, exp)
	}

	g := b.Graph()
	res = &Result{
		ID:       uuid.NewString(),
		Graph:    g,
		Exposure: exp,
		Stats: Stats{
			Rows:           tbl.Len(),
			IndexedIDs:     idx.Len(),
			Nodes:          g.NodeCount(),
			Edges:          g.EdgeCount(),
			ReferenceEdges: refStats.ReferenceEdges,
			ExposureEdges:  g.EdgeCount() - refEdges,
			SkippedRows:    exp.Skipped,
			BuildTime:      time.Since(start),
		},
	}

	r.Logger.Info("built graph",
		"build", res.ID,
		"nodes", res.Stats.Nodes,
		"edges", res.Stats.Edges,
		"exposed", len(exp.Findings),
		"duration", res.Stats.BuildTime)

	return res, nil
}

func reportExposure(ctx context.Context, logger *log.Logger, exp exposure.Result) {
	hooks := observability.Exposure()
	for _, f := range exp.Findings {
		hooks.OnExposed(ctx, f.Name, f.Type, f.Rule)
		logger.Debug("exposed resource", "name", f.Name, "type", f.Type, "rule", f.Rule)
	}
	if exp.Skipped > 0 {
		hooks.OnSkipped(ctx, exp.Skipped)
	}
}

func rowCount(tbl *table.Table) int {
	if tbl == nil {
		return 0
	}
	return tbl.Len()
}
