package label

// Options tunes label placement. The zero value is not usable; start from
// [DefaultOptions] or call [Options.ValidateAndSetDefaults].
type Options struct {
	// Font is the CSS font used for bar and line value labels.
	Font string
	// Padding is the gap between a line point and its label's baseline.
	Padding float64
	// Window is the collision window for the linear passes.
	Window Window
	// Step is the distance a label is raised per collision step.
	Step float64
	// PointMargin widens a line point's circle when testing it against a
	// bar label.
	PointMargin float64
	// PointClearance is the gap left between a raised bar label and the
	// point it cleared.
	PointClearance float64
	// ChipPadding pads the rounded background behind line labels.
	ChipPadding float64
	ChipRadius  float64
	// LinearLeaders draws a leader from each displaced linear label to its
	// data point.
	LinearLeaders bool

	Radial RadialOptions
	Gauge  GaugeOptions
	Center CenterOptions
}

// RadialOptions tunes external pie and doughnut labels.
type RadialOptions struct {
	Font           string
	Offset         float64 // distance past the outer radius
	SmallThreshold float64 // share of the total below which a slice is small
	LabelHeight    float64
	XWindow        float64 // horizontal distance within which labels collide
	ShiftRatio     float64 // downward shift per collision, in label heights
	SmallRatio     float64 // vertical window between two small labels, in label heights
	BodyMargin     float64
	Displacement   float64 // sideways move for labels still on the ring
	BulletRadius   float64
	LeaderGap      float64 // leader elbow distance past the outer radius
}

// GaugeOptions tunes gauge value labels.
type GaugeOptions struct {
	Font           string
	Slots          int
	SmallThreshold float64
	BulletDivisor  float64
	BulletRadius   float64
	LeaderOffset   float64
	TextOffset     float64
	RuleOverhang   float64
	Dash           []float64
}

// CenterOptions tunes the doughnut centre annotation.
type CenterOptions struct {
	Font       string
	WrapRatio  float64
	LineHeight float64
	DiskInset  float64
}

// DefaultOptions returns the reference placement parameters.
func DefaultOptions() Options {
	return Options{
		Font:           "bold 1.2rem Arial",
		Padding:        10,
		Window:         DefaultWindow,
		Step:           20,
		PointMargin:    3,
		PointClearance: 5,
		ChipPadding:    3,
		ChipRadius:     4,
		Radial: RadialOptions{
			Font:           "bold 18px -apple-system, sans-serif",
			Offset:         15,
			SmallThreshold: 0.05,
			LabelHeight:    22,
			XWindow:        100,
			ShiftRatio:     0.4,
			SmallRatio:     0.8,
			BodyMargin:     10,
			Displacement:   50,
			BulletRadius:   4,
			LeaderGap:      5,
		},
		Gauge: GaugeOptions{
			Font:           "bold 2rem -apple-system, sans-serif",
			Slots:          5,
			SmallThreshold: 0.08,
			BulletDivisor:  1.75,
			BulletRadius:   3,
			LeaderOffset:   20,
			TextOffset:     30,
			RuleOverhang:   12,
			Dash:           []float64{4, 4},
		},
		Center: CenterOptions{
			Font:       "bold 20px -apple-system, sans-serif",
			WrapRatio:  1.6,
			LineHeight: 26,
			DiskInset:  5,
		},
	}
}

// ValidateAndSetDefaults fills every unset or non-positive field with its
// default. Options never fail validation; bad values fall back.
func (o *Options) ValidateAndSetDefaults() {
	d := DefaultOptions()
	str(&o.Font, d.Font)
	pos(&o.Padding, d.Padding)
	pos(&o.Window.X, d.Window.X)
	pos(&o.Window.Y, d.Window.Y)
	pos(&o.Step, d.Step)
	pos(&o.PointMargin, d.PointMargin)
	pos(&o.PointClearance, d.PointClearance)
	pos(&o.ChipPadding, d.ChipPadding)
	pos(&o.ChipRadius, d.ChipRadius)

	r, dr := &o.Radial, d.Radial
	str(&r.Font, dr.Font)
	pos(&r.Offset, dr.Offset)
	pos(&r.SmallThreshold, dr.SmallThreshold)
	pos(&r.LabelHeight, dr.LabelHeight)
	pos(&r.XWindow, dr.XWindow)
	pos(&r.ShiftRatio, dr.ShiftRatio)
	pos(&r.SmallRatio, dr.SmallRatio)
	pos(&r.BodyMargin, dr.BodyMargin)
	pos(&r.Displacement, dr.Displacement)
	pos(&r.BulletRadius, dr.BulletRadius)
	pos(&r.LeaderGap, dr.LeaderGap)

	g, dg := &o.Gauge, d.Gauge
	str(&g.Font, dg.Font)
	if g.Slots <= 0 {
		g.Slots = dg.Slots
	}
	pos(&g.SmallThreshold, dg.SmallThreshold)
	pos(&g.BulletDivisor, dg.BulletDivisor)
	pos(&g.BulletRadius, dg.BulletRadius)
	pos(&g.LeaderOffset, dg.LeaderOffset)
	pos(&g.TextOffset, dg.TextOffset)
	pos(&g.RuleOverhang, dg.RuleOverhang)
	if len(g.Dash) == 0 {
		g.Dash = dg.Dash
	}

	c, dc := &o.Center, d.Center
	str(&c.Font, dc.Font)
	pos(&c.WrapRatio, dc.WrapRatio)
	pos(&c.LineHeight, dc.LineHeight)
	pos(&c.DiskInset, dc.DiskInset)
}

func str(p *string, def string) {
	if *p == "" {
		*p = def
	}
}

func pos(p *float64, def float64) {
	if !(*p > 0) {
		*p = def
	}
}
