package sink

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/matzehuels/chartlabel/pkg/surface"
)

func TestRasterScale(t *testing.T) {
	r := NewRaster(100, 50, WithScale(2))
	b := r.Image().Bounds()
	if b.Dx() != 200 || b.Dy() != 100 {
		t.Errorf("bounds = %v, want 200x100", b)
	}
}

func TestRasterFill(t *testing.T) {
	r := NewRaster(20, 20, WithRasterBackground("#ffffff"))
	r.SetFillColor("#ff0000")
	r.BeginPath()
	r.Rect(0, 0, 10, 10)
	r.Fill()

	red := r.Image().At(5, 5)
	if cr, cg, _, _ := red.RGBA(); cr>>8 != 0xff || cg>>8 != 0 {
		t.Errorf("inside = %v, want red", red)
	}
	white := r.Image().At(15, 15)
	if _, cg, _, _ := white.RGBA(); cg>>8 != 0xff {
		t.Errorf("outside = %v, want white", white)
	}
}

func TestRasterTextAndPNG(t *testing.T) {
	r := NewRaster(120, 40)
	r.SetFont("bold 16px sans-serif")
	r.SetTextAlign(surface.AlignCenter)
	r.SetTextBaseline(surface.BaselineMiddle)
	r.SetStrokeColor("#ffffff")
	r.SetLineWidth(3)
	r.StrokeText("42", 60, 20)
	r.SetFillColor("#000000")
	r.FillText("42", 60, 20)

	painted := false
	b := r.Image().Bounds()
	for y := b.Min.Y; y < b.Max.Y && !painted; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := r.Image().At(x, y).RGBA(); a > 0 {
				painted = true
				break
			}
		}
	}
	if !painted {
		t.Error("text left the canvas empty")
	}

	data, err := r.PNG()
	if err != nil {
		t.Fatalf("PNG() error: %v", err)
	}
	if _, err := png.Decode(bytes.NewReader(data)); err != nil {
		t.Errorf("png.Decode() error: %v", err)
	}
}

func TestRasterMeasureMatchesSVG(t *testing.T) {
	r := NewRaster(10, 10, WithScale(3))
	s := NewSVG(10, 10)
	r.SetFont("bold 18px sans-serif")
	s.SetFont("bold 18px sans-serif")
	if r.MeasureText("1,234") != s.MeasureText("1,234") {
		t.Error("surfaces disagree on text metrics")
	}
}
