// Package sink provides the drawing surfaces and exporters for charts.
//
// # Surfaces
//
// [SVG] and [Raster] implement [surface.Surface]. Both measure text with the
// embedded fonts, so a chart laid out on one lands at the same coordinates
// on the other.
//
//	svg := sink.NewSVG(640, 400, sink.WithBackground("#fff"))
//	png := sink.NewRaster(640, 400, sink.WithScale(2))
//
// Colors are CSS strings and are parsed by [ParseColor] when a raster
// surface paints them. Unknown colors paint transparent.
//
// # Exporters
//
//   - [SVG.Bytes]: the SVG document
//   - [Raster.PNG]: PNG-encoded pixels
//   - [RenderPDF]: PDF via rsvg-convert
//   - [RenderJSON]: placed labels and leaders as JSON
//
// [surface.Surface]: github.com/matzehuels/chartlabel/pkg/surface#Surface
package sink
