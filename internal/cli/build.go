package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cloudgraph/pkg/config"
	"github.com/matzehuels/cloudgraph/pkg/graph"
	"github.com/matzehuels/cloudgraph/pkg/io"
	"github.com/matzehuels/cloudgraph/pkg/observability"
	"github.com/matzehuels/cloudgraph/pkg/render/nodelink"
)

// buildOpts holds the command-line flags for the build command.
type buildOpts struct {
	output     string
	formats    string
	detailed   bool
	delimiter  string
	trimSpace  bool
	noExposure bool
}

// buildCommand creates the build command, which reads a CSV inventory and
// writes the graph in the requested formats.
func (c *CLI) buildCommand() *cobra.Command {
	var opts buildOpts

	cmd := &cobra.Command{
		Use:   "build [csv]",
		Short: "Build a resource graph from a CSV export",
		Long: `Build a resource graph from a CSV export of Azure resources.

Without an argument the first *.csv file in the configured data directory
(default Test_data/Azure) is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if err := opts.apply(cmd, &cfg); err != nil {
				return err
			}
			return c.runBuild(cmd.Context(), args, cfg, opts.noExposure)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output base path (default "+config.DefaultOutput+")")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): json (default), dot, svg, png (comma-separated)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "include type, group and location in diagram labels")
	cmd.Flags().StringVar(&opts.delimiter, "delimiter", "", "CSV cell delimiter (default ',')")
	cmd.Flags().BoolVar(&opts.trimSpace, "trim-space", false, "strip whitespace around cells")
	cmd.Flags().BoolVar(&opts.noExposure, "no-exposure", false, "skip Internet exposure detection")

	return cmd
}

// apply overlays flags the user set on cfg and validates the result.
func (o buildOpts) apply(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.Output = o.output
	}
	if flags.Changed("format") {
		cfg.Formats = parseFormats(o.formats)
	}
	if flags.Changed("detailed") {
		cfg.Detailed = o.detailed
	}
	if flags.Changed("delimiter") {
		cfg.Delimiter = o.delimiter
	}
	if flags.Changed("trim-space") {
		cfg.TrimSpace = o.trimSpace
	}
	return cfg.Validate()
}

func (c *CLI) runBuild(ctx context.Context, args []string, cfg config.Config, noExposure bool) error {
	res, err := c.buildGraph(ctx, args, cfg, noExposure)
	if err != nil {
		return err
	}
	g := res.Graph

	printSuccess("Built graph: %d nodes, %d edges", g.NodeCount(), g.EdgeCount())
	printStats(res.Stats.ReferenceEdges, res.Stats.ExposureEdges, res.Stats.SkippedRows)
	printDetail("build %s", res.ID)

	prog := newProgress(c.Logger)
	paths, err := writeOutputs(ctx, g, basePath(cfg.Output), cfg.Formats, cfg.Detailed)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Wrote %d output(s)", len(paths)))
	for _, p := range paths {
		printFile(p)
	}

	if res.Stats.ExposureEdges > 0 {
		printNewline()
		printNextStep("List exposed resources", appName+" exposed "+res.Source)
	}
	return nil
}

// parseFormats splits a comma-separated format list, dropping blanks.
func parseFormats(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.ToLower(strings.TrimSpace(f)); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// basePath strips a known format extension from output so that
// "graph.svg" and "graph" name the same set of files.
func basePath(output string) string {
	ext := filepath.Ext(output)
	if slices.Contains(config.Formats, strings.TrimPrefix(ext, ".")) {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// writeOutputs writes one file per format at base.<format> and returns the
// written paths in format order.
func writeOutputs(ctx context.Context, g *graph.Graph, base string, formats []string, detailed bool) ([]string, error) {
	if dir := filepath.Dir(base); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create output dir: %w", err)
		}
	}

	hooks := observability.Export()
	var paths []string
	for _, format := range formats {
		start := time.Now()
		data, err := renderArtifact(ctx, g, format, detailed)
		if err == nil {
			path := base + "." + format
			if err = os.WriteFile(path, data, 0o644); err == nil {
				paths = append(paths, path)
			}
		}
		hooks.OnExport(ctx, format, len(data), time.Since(start), err)
		if err != nil {
			return paths, fmt.Errorf("write %s: %w", format, err)
		}
	}
	return paths, nil
}

// renderArtifact encodes g in a single output format.
func renderArtifact(ctx context.Context, g *graph.Graph, format string, detailed bool) ([]byte, error) {
	switch format {
	case config.FormatJSON:
		var buf bytes.Buffer
		if err := io.WriteJSON(g, &buf); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case config.FormatDOT:
		return []byte(nodelink.ToDOT(g, nodelink.Options{Detailed: detailed})), nil
	case config.FormatSVG:
		return nodelink.RenderSVG(ctx, nodelink.ToDOT(g, nodelink.Options{Detailed: detailed}))
	case config.FormatPNG:
		return nodelink.RenderPNG(ctx, nodelink.ToDOT(g, nodelink.Options{Detailed: detailed}))
	}
	return nil, config.ValidateFormats([]string{format})
}
