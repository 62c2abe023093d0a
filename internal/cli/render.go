package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/chartlabel/pkg/chart"
	"github.com/matzehuels/chartlabel/pkg/errors"
	"github.com/matzehuels/chartlabel/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	chart      string  // chart name within a multi-chart document
	theme      string  // palette name; empty selects the configured default
	formats    string  // comma-separated: svg, png, pdf, json
	output     string  // output file (single format) or base path
	width      float64 // overrides the chart width
	height     float64 // overrides the chart height
	scale      float64 // PNG device pixel ratio
	background string  // canvas background color
	noCache    bool
	refresh    bool
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render <chart.yaml>",
		Short: "Render a chart with placed labels",
		Long: `Render a chart document to SVG, PNG, PDF or a JSON dump of its placed labels.

The document may be YAML or JSON. When it holds several charts, choose one
with --chart; on a terminal an interactive picker is shown instead.

PDF output requires rsvg-convert (librsvg).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.chart, "chart", "c", "", "chart to render from a multi-chart document")
	cmd.Flags().StringVarP(&opts.theme, "theme", "t", "", "theme: light, dark or a [themes.<name>] table from the config")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): svg (default), png, pdf, json (comma-separated)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().Float64Var(&opts.width, "width", 0, "canvas width (default: chart width or 640)")
	cmd.Flags().Float64Var(&opts.height, "height", 0, "canvas height (default: chart height or 400)")
	cmd.Flags().Float64Var(&opts.scale, "scale", pipeline.DefaultScale, "PNG device pixel ratio")
	cmd.Flags().StringVar(&opts.background, "background", "", "canvas background color (default: transparent)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "ignore cached results")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, input string, ro renderOpts) error {
	logger := loggerFromContext(ctx)

	ch, charts, err := c.loadChart(input, ro.chart)
	if err != nil {
		return err
	}

	opts, err := c.pipelineOptions(ro.theme)
	if err != nil {
		return err
	}
	opts.Width = ro.width
	opts.Height = ro.height
	opts.Formats = parseFormats(ro.formats)
	opts.Scale = ro.scale
	opts.Background = ro.background
	opts.Refresh = ro.refresh
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, ro.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	logger.Debug("rendering", "chart", chartName(ch), "type", ch.Type, "formats", opts.Formats, "theme", opts.Theme)
	done := timed(logger)
	sp := spin(ctx, os.Stderr, fmt.Sprintf("Rendering %s...", chartName(ch)))

	result, err := runner.Execute(ctx, ch, opts)
	if err != nil {
		sp.Fail("Render failed")
		return err
	}
	sp.Stop()
	done("Placed %d labels", result.Stats.Labels)

	base := outputBase(ro.output, input, ch, charts)
	var paths []string
	for _, format := range opts.Formats {
		path := base + "." + format
		if len(opts.Formats) == 1 && ro.output != "" {
			path = ro.output
		}
		if err := writeOutput(path, result.Artifacts[format]); err != nil {
			return err
		}
		paths = append(paths, path)
	}

	printSuccess("Rendered %s", chartName(ch))
	for _, p := range paths {
		if p != "-" {
			printFile(p)
		}
	}
	printStats(result.Stats.Labels, result.Stats.Displaced, result.CacheInfo.RenderHit)
	if result.Stats.Labels == 0 {
		printWarning("No labels placed; every value is null, hidden or zero")
	}
	return nil
}

func chartName(ch *chart.Chart) string {
	if ch.Name != "" {
		return ch.Name
	}
	return string(ch.Type) + " chart"
}

// outputBase derives the base output path. Without --output it strips the
// input extension and, for multi-chart documents, appends the chart name.
func outputBase(output, input string, ch *chart.Chart, charts int) string {
	if output != "" {
		ext := filepath.Ext(output)
		if pipeline.ValidateFormat(strings.TrimPrefix(ext, ".")) == nil {
			return strings.TrimSuffix(output, ext)
		}
		return output
	}
	base := strings.TrimSuffix(input, filepath.Ext(input))
	if charts > 1 && ch.Name != "" {
		base += "_" + ch.Name
	}
	return base
}

// writeOutput writes data to path, or to stdout when path is "-".
func writeOutput(path string, data []byte) error {
	if path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", dir)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", path)
	}
	return nil
}
