// Package render turns laid-out charts into output documents.
//
// # Overview
//
// Charts are drawn onto a [surface.Surface]. The [sink] subpackage provides
// the concrete surfaces and exporters:
//
//   - SVG documents, measured with the embedded fonts
//   - PNG images rasterised with gg at any device pixel ratio
//   - PDF documents, converted from SVG by rsvg-convert
//   - JSON dumps of the placed labels for inspection and tests
//
// # Format Conversion
//
// [ToPDF] converts any SVG using the external rsvg-convert tool
// (from librsvg).
//
//	svg := sink.NewSVG(640, 400)
//	chart.Draw(ctx, svg)
//	pdf, err := render.ToPDF(ctx, svg.Bytes())
//
// [surface.Surface]: github.com/matzehuels/chartlabel/pkg/surface#Surface
// [sink]: github.com/matzehuels/chartlabel/pkg/render/sink
package render
