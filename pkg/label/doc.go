// Package label places value labels on top of rendered chart primitives.
//
// The host charting library draws its own bars, line points and arcs, then
// hands the engine a [Frame]: the surface it drew on, the plotting area, and
// the per-point geometry of every series. The engine reads that geometry into
// [GeometryRecord] values, builds one [Candidate] per non-null value, runs a
// deterministic greedy de-overlap pass for the chart family, and emits text,
// background chips and leader lines in a fixed z-order.
//
// # Families
//
// Linear charts (bar, line, mixed) are resolved by four ordered passes that
// compare labels only within a narrow column window (see [Window]):
//
//  1. bar label vs. visible line point
//  2. line label vs. bar label
//  3. line label vs. line label
//  4. bar label vs. bar label
//
// Radial charts (pie, doughnut) place labels outside the ring along each
// arc's bisector. Slices below 5% of the total are pushed down when they
// collide with earlier labels and, if they still sit on the ring, sideways;
// displaced labels get a bullet and leader line. Gauges label their first
// five arcs inline, or outside with a dashed leader when the slice is thin.
//
// # Lifecycle
//
// The host calls every registered [Plugin] twice per frame: once before it
// draws its datasets and once after. [NullPoints] runs before drawing and
// publishes per-point radius overrides so that null values render as gaps.
// The label plugins run after drawing. Nothing is kept between frames.
//
// # Degradation
//
// The engine never returns errors. Missing geometry, zero radii, unsized
// surfaces and zero totals silently suppress the affected labels.
package label
