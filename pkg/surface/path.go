package surface

// SegmentOp is the kind of a path segment.
type SegmentOp int

const (
	OpMoveTo SegmentOp = iota
	OpLineTo
	OpArc
	OpRect
	OpRoundRect
	OpClose
)

// Segment is one recorded path command. Fields unused by an op are zero.
type Segment struct {
	Op         SegmentOp
	X, Y       float64
	W, H, R    float64
	Start, End float64
}

// Path implements the path half of [Surface] by recording segments.
// Concrete surfaces embed it and replay [Path.Segments] on Fill/Stroke.
type Path struct {
	segs []Segment
}

// Segments returns the segments recorded since the last BeginPath.
func (p *Path) Segments() []Segment { return p.segs }

func (p *Path) BeginPath()          { p.segs = p.segs[:0] }
func (p *Path) MoveTo(x, y float64) { p.segs = append(p.segs, Segment{Op: OpMoveTo, X: x, Y: y}) }
func (p *Path) LineTo(x, y float64) { p.segs = append(p.segs, Segment{Op: OpLineTo, X: x, Y: y}) }
func (p *Path) ClosePath()          { p.segs = append(p.segs, Segment{Op: OpClose}) }

func (p *Path) Arc(x, y, r, startAngle, endAngle float64) {
	p.segs = append(p.segs, Segment{Op: OpArc, X: x, Y: y, R: r, Start: startAngle, End: endAngle})
}

func (p *Path) Rect(x, y, w, h float64) {
	p.segs = append(p.segs, Segment{Op: OpRect, X: x, Y: y, W: w, H: h})
}

func (p *Path) RoundRect(x, y, w, h, r float64) {
	p.segs = append(p.segs, Segment{Op: OpRoundRect, X: x, Y: y, W: w, H: h, R: r})
}
