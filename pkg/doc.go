// Package pkg provides the libraries behind chartlabel, a collision-aware
// label placement engine for charts.
//
// # Overview
//
// Value labels are positioned next to the data they describe (above a bar,
// above a line point, outside a pie slice). When labels would overlap, the
// engine moves them apart in a fixed pass order and joins displaced labels
// to their data with leader lines. The pkg directory is organized into:
//
//  1. [label] - the engine: candidates, collision resolution, leaders, plugins
//  2. [chart] - a small host charting library that runs the plugins
//  3. [surface] and [render] - drawing surfaces and output formats
//  4. [pipeline] - orchestration (load → layout → render) with caching
//  5. [io] and [config] - chart documents and TOML configuration
//
// # Architecture
//
// The typical data flow through chartlabel:
//
//	chart document (YAML / JSON)
//	         ↓
//	    [chart] package (scales, geometry records)
//	         ↓
//	    [label] package (candidates → resolver → placed labels)
//	         ↓
//	    [render/sink] package (SVG, PNG, PDF, JSON)
//
// # Quick Start
//
//	doc, _ := io.ImportFile("sales.yaml")
//	c, _ := doc.Chart("")
//
//	runner := pipeline.NewRunner(nil, nil, nil)
//	result, _ := runner.Execute(ctx, c, pipeline.Options{Formats: []string{"svg"}})
//	os.WriteFile("sales.svg", result.Artifacts["svg"], 0o644)
//
// [label]: github.com/matzehuels/chartlabel/pkg/label
// [chart]: github.com/matzehuels/chartlabel/pkg/chart
// [surface]: github.com/matzehuels/chartlabel/pkg/surface
// [render]: github.com/matzehuels/chartlabel/pkg/render
// [render/sink]: github.com/matzehuels/chartlabel/pkg/render/sink
// [pipeline]: github.com/matzehuels/chartlabel/pkg/pipeline
// [io]: github.com/matzehuels/chartlabel/pkg/io
// [config]: github.com/matzehuels/chartlabel/pkg/config
package pkg
