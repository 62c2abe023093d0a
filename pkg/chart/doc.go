// Package chart is a small host charting library for the label engine.
//
// # Overview
//
// A [Chart] is a category chart (column, line, mixed) or an arc chart (pie,
// doughnut, gauge). [Draw] lays the chart out on a [surface.Surface], reports
// its geometry to the engine as a [label.Frame], and runs plugins around the
// dataset drawing the way a canvas charting library does:
//
//  1. axes and grid
//  2. BeforeDatasetsDraw hooks (null-point suppression, column highlight)
//  3. datasets (bars, lines and points, arcs)
//  4. AfterDatasetsDraw hooks (value labels, external labels, gauge values)
//
// [Preset] selects the plugins each chart type uses.
//
//	e := label.New(theme.Light)
//	svg := sink.NewSVG(640, 400)
//	f := chart.Draw(svg, c, chart.WithPlugins(chart.Preset(e, c)...))
//	fmt.Println(len(f.Placed), "labels")
//
// [surface.Surface]: github.com/matzehuels/chartlabel/pkg/surface#Surface
// [label.Frame]: github.com/matzehuels/chartlabel/pkg/label#Frame
package chart
