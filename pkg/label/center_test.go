package label

import (
	"reflect"
	"testing"

	"github.com/matzehuels/chartlabel/pkg/surface"
	"github.com/matzehuels/chartlabel/pkg/theme"
)

func donutFrame(inner float64) *Frame {
	return newFrame(Series{
		Kind:     Arc,
		Values:   vals(1, 1),
		Elements: arcs([]float64{1, 1}, 150, 120, inner, 100, 0, 6),
	})
}

func TestLayoutCenter(t *testing.T) {
	tests := []struct {
		name      string
		inner     float64
		text      string
		wantLines []string
		wantDisk  float64
	}{
		{"fits", 100, "Total", []string{"Total"}, 95},
		{"split at middle rune", 20, "Total", []string{"To", "tal"}, 15},
		{"single rune never splits", 2, "총", []string{"총"}, 0},
		{"multibyte split", 10, "합계금액", []string{"합계", "금액"}, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cl, ok := New(theme.Light).LayoutCenter(donutFrame(tt.inner), tt.text)
			if !ok {
				t.Fatal("no center label")
			}
			if !reflect.DeepEqual(cl.Lines, tt.wantLines) {
				t.Errorf("lines = %q, want %q", cl.Lines, tt.wantLines)
			}
			if cl.DiskRadius != tt.wantDisk {
				t.Errorf("disk = %v, want %v", cl.DiskRadius, tt.wantDisk)
			}
			if cl.X != 150 || cl.Y != 120 {
				t.Errorf("centre = (%v, %v), want arc centre", cl.X, cl.Y)
			}
		})
	}
}

func TestCenterLineY(t *testing.T) {
	cl := CenterLabel{Y: 100, LineHeight: 26, Lines: []string{"a", "b"}}
	if cl.LineY(0) != 87 || cl.LineY(1) != 113 {
		t.Errorf("line ys = %v, %v", cl.LineY(0), cl.LineY(1))
	}
	cl.Lines = []string{"a"}
	if cl.LineY(0) != 100 {
		t.Errorf("single line y = %v", cl.LineY(0))
	}
}

func TestCenterLabelPlugin(t *testing.T) {
	f := donutFrame(40)
	New(theme.Light).CenterLabel("Sum").AfterDatasetsDraw(f)

	rec := f.Surface.(*surface.Recorder)
	fills := rec.Filter(surface.OpFill)
	if len(fills) != 1 {
		t.Fatalf("got %d fills, want the backing disk", len(fills))
	}
	if !fills[0].State.Shadow.Enabled() {
		t.Error("disk drawn without shadow")
	}
	if got := rec.Texts(); !reflect.DeepEqual(got, []string{"Sum"}) {
		t.Errorf("texts = %q", got)
	}
	if rec.Ops[len(rec.Ops)-1].State.Shadow.Enabled() {
		t.Error("text inherited the disk shadow")
	}
}
