package chart

import (
	"testing"

	"github.com/matzehuels/chartlabel/pkg/errors"
	"github.com/matzehuels/chartlabel/pkg/label"
)

func TestParseType(t *testing.T) {
	tests := []struct {
		in   string
		want Type
		ok   bool
	}{
		{"column", Column, true},
		{"bar", Column, true},
		{"mixed", Mixed, true},
		{"doughnut", Doughnut, true},
		{"gauge", Gauge, true},
		{"radar", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseType(tt.in)
			if ok != tt.ok || (ok && got != tt.want) {
				t.Errorf("ParseType(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestTypeRadial(t *testing.T) {
	for _, typ := range Types {
		want := typ == Pie || typ == Doughnut || typ == Gauge
		if typ.Radial() != want {
			t.Errorf("%s.Radial() = %v", typ, !want)
		}
	}
}

func TestValidate(t *testing.T) {
	ok := func() *Chart {
		return &Chart{Type: Mixed, Datasets: []Dataset{{Kind: label.Bar, Data: vals(1, 2)}}}
	}
	tests := []struct {
		name   string
		mutate func(c *Chart)
		code   errors.Code
	}{
		{"valid", func(*Chart) {}, ""},
		{"unknown type", func(c *Chart) { c.Type = "radar" }, errors.ErrCodeInvalidChart},
		{"no datasets", func(c *Chart) { c.Datasets = nil }, errors.ErrCodeInvalidChart},
		{"negative width", func(c *Chart) { c.Width = -1 }, errors.ErrCodeInvalidInput},
		{"arc on category chart", func(c *Chart) { c.Datasets[0].Kind = label.Arc }, errors.ErrCodeInvalidChart},
		{"nulls are fine", func(c *Chart) { c.Datasets[0].Data = vals(nil, nil) }, ""},
		{"negative bar", func(c *Chart) { c.Datasets[0].Data = vals(-3, 2) }, ""},
		{"negative slice", func(c *Chart) {
			c.Type = Pie
			c.Datasets[0] = Dataset{Kind: label.Arc, Data: vals(4, -1)}
		}, errors.ErrCodeInvalidChart},
		{"negative gauge", func(c *Chart) {
			c.Type = Gauge
			c.Datasets[0] = Dataset{Kind: label.Arc, Data: vals(-2)}
		}, errors.ErrCodeInvalidChart},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := ok()
			tt.mutate(c)
			err := c.Validate()
			if tt.code == "" {
				if err != nil {
					t.Fatalf("Validate() = %v", err)
				}
				return
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("Validate() = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestSeriesKinds(t *testing.T) {
	c := &Chart{Type: Line, Datasets: []Dataset{{Kind: label.Bar}}}
	if k := c.series()[0].Kind; k != label.LinePoint {
		t.Errorf("line chart series kind = %v", k)
	}
	c.Type = Mixed
	if k := c.series()[0].Kind; k != label.Bar {
		t.Errorf("mixed chart kept kind = %v", k)
	}
	c.Type = Doughnut
	if k := c.series()[0].Kind; k != label.Arc {
		t.Errorf("doughnut series kind = %v", k)
	}
}

func TestSize(t *testing.T) {
	w, h := (&Chart{}).Size()
	if w != DefaultWidth || h != DefaultHeight {
		t.Errorf("default size = %vx%v", w, h)
	}
	w, h = (&Chart{Width: 300, Height: 200}).Size()
	if w != 300 || h != 200 {
		t.Errorf("size = %vx%v", w, h)
	}
}

// vals builds values from ints, floats and nil (null).
func vals(vs ...any) []label.Value {
	out := make([]label.Value, len(vs))
	for i, v := range vs {
		switch x := v.(type) {
		case int:
			out[i] = label.Num(float64(x))
		case float64:
			out[i] = label.Num(x)
		default:
			out[i] = label.Null
		}
	}
	return out
}
