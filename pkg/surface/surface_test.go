package surface

import "testing"

func TestStackSaveRestore(t *testing.T) {
	s := NewStack()
	s.SetFont("bold 12px Arial")
	s.SetLineDash(4, 4)
	s.Save()

	s.SetFont("18px sans-serif")
	s.SetLineDash(1, 2, 3)
	s.SetFillGradient(NewLinearGradient(0, 0, 1, 1))
	s.Restore()

	cur := s.Current()
	if cur.Font != "bold 12px Arial" {
		t.Errorf("font = %q", cur.Font)
	}
	if len(cur.Dash) != 2 || cur.Dash[0] != 4 {
		t.Errorf("dash = %v, want [4 4]", cur.Dash)
	}
	if cur.Fill.Gradient != nil {
		t.Error("gradient survived restore")
	}

	// Unbalanced restores are ignored.
	s.Restore()
	s.Restore()
	if s.Current().Font != "bold 12px Arial" {
		t.Error("extra restore changed state")
	}
}

func TestGradientAddColorStop(t *testing.T) {
	base := NewRadialGradient(0, 0, 0, 0, 0, 10).AddColorStop(0, "#fff")
	a := base.AddColorStop(1, "#000")
	b := base.AddColorStop(1, "#f00")

	if len(base.Stops) != 1 {
		t.Errorf("base stops = %d, want 1", len(base.Stops))
	}
	if a.Stops[1].Color != "#000" || b.Stops[1].Color != "#f00" {
		t.Errorf("stops alias: %v %v", a.Stops, b.Stops)
	}
}

func TestRecorder(t *testing.T) {
	r := NewRecorder()
	r.SetFillColor("red")
	r.BeginPath()
	r.Rect(1, 2, 3, 4)
	r.Fill()
	r.BeginPath()
	r.MoveTo(0, 0)
	r.LineTo(5, 5)
	r.Stroke()
	r.FillText("hi", 1, 1)

	if len(r.Ops) != 3 {
		t.Fatalf("ops = %d, want 3", len(r.Ops))
	}
	fill := r.Ops[0]
	if fill.Kind != OpFill || fill.State.Fill.Color != "red" || len(fill.Path) != 1 || fill.Path[0].Op != OpRect {
		t.Errorf("fill op = %+v", fill)
	}
	if got := len(r.Ops[1].Path); got != 2 {
		t.Errorf("stroke path = %d segments, want 2", got)
	}
	if got := r.Texts(); len(got) != 1 || got[0] != "hi" {
		t.Errorf("texts = %q", got)
	}

	r.Reset()
	if len(r.Ops) != 0 || r.Current().Fill.Color != "#000000" {
		t.Error("reset kept state")
	}
}

func TestRecorderMeasuresWithEmbeddedFont(t *testing.T) {
	r := NewRecorder()
	r.SetFont("bold 16px sans-serif")
	short := r.MeasureText("1")
	long := r.MeasureText("1000")
	if !(short.Width > 0) || !(long.Width > short.Width) {
		t.Errorf("widths = %v, %v", short.Width, long.Width)
	}
	if !(short.Height > 0) {
		t.Errorf("height = %v", short.Height)
	}
}

func TestShadowEnabled(t *testing.T) {
	if (Shadow{}).Enabled() {
		t.Error("zero shadow enabled")
	}
	if !(Shadow{Color: "black", Blur: 2}).Enabled() {
		t.Error("blurred shadow disabled")
	}
}

func TestArea(t *testing.T) {
	a := Area{Left: 10, Top: 20, Right: 110, Bottom: 70}
	if a.Width() != 100 || a.Height() != 50 || a.CenterX() != 60 || a.CenterY() != 45 {
		t.Errorf("area = %v %v %v %v", a.Width(), a.Height(), a.CenterX(), a.CenterY())
	}
}
