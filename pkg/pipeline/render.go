package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/chartlabel/pkg/chart"
	"github.com/matzehuels/chartlabel/pkg/render/sink"
)

// Render generates output artifacts in the requested formats. JSON is
// exported from l; every other format redraws the chart on its own surface.
func Render(ctx context.Context, c *chart.Chart, l Layout, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, err := renderFormat(ctx, c, l, opts, format)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

func renderFormat(ctx context.Context, c *chart.Chart, l Layout, opts Options, format string) ([]byte, error) {
	switch format {
	case FormatSVG:
		return renderSVG(c, opts).Bytes(), nil
	case FormatPDF:
		return sink.RenderPDF(ctx, renderSVG(c, opts))
	case FormatPNG:
		return renderPNG(c, opts)
	case FormatJSON:
		return l.JSON(opts.Theme)
	}
	return nil, ValidateFormat(format)
}

func renderSVG(c *chart.Chart, opts Options) *sink.SVG {
	w, h := opts.Size(c)
	svgOpts := []sink.SVGOption{sink.WithTitle(c.Title)}
	if opts.Background != "" {
		svgOpts = append(svgOpts, sink.WithBackground(opts.Background))
	}
	s := sink.NewSVG(w, h, svgOpts...)
	chart.Draw(s, c, drawOptions(newEngine(opts), c, opts, w, h)...)
	return s
}

func renderPNG(c *chart.Chart, opts Options) ([]byte, error) {
	w, h := opts.Size(c)
	rasterOpts := []sink.RasterOption{sink.WithScale(opts.Scale)}
	if opts.Background != "" {
		rasterOpts = append(rasterOpts, sink.WithRasterBackground(opts.Background))
	}
	r := sink.NewRaster(w, h, rasterOpts...)
	chart.Draw(r, c, drawOptions(newEngine(opts), c, opts, w, h)...)
	return r.PNG()
}
