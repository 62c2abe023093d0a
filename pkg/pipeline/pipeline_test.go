package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"image/png"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/matzehuels/chartlabel/pkg/cache"
	"github.com/matzehuels/chartlabel/pkg/chart"
	"github.com/matzehuels/chartlabel/pkg/errors"
	"github.com/matzehuels/chartlabel/pkg/label"
	"github.com/matzehuels/chartlabel/pkg/observability"
	"github.com/matzehuels/chartlabel/pkg/render"
	"github.com/matzehuels/chartlabel/pkg/theme"
)

func mixedChart() *chart.Chart {
	return &chart.Chart{
		Name:   "sales",
		Type:   chart.Mixed,
		Title:  "Sales & Trend",
		Labels: []string{"Q1", "Q2", "Q3", "Q4"},
		Datasets: []chart.Dataset{
			{Label: "units", Kind: label.Bar, Data: []label.Value{label.Num(10), label.Num(20), label.Num(30), label.Num(40)}},
			{Label: "trend", Kind: label.LinePoint, Data: []label.Value{label.Num(12), label.Null, label.Num(28), label.Num(44)}},
		},
	}
}

func gaugeChart() *chart.Chart {
	return &chart.Chart{
		Name: "score",
		Type: chart.Gauge,
		Datasets: []chart.Dataset{
			{Label: "score", Data: []label.Value{label.Num(70), label.Num(5), label.Num(25)}},
		},
	}
}

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"svg", false},
		{"png", false},
		{"pdf", false},
		{"json", false},
		{"invalid", true},
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"svg", "png"}); err != nil {
		t.Errorf("Valid formats should pass: %v", err)
	}
	if err := ValidateFormats([]string{"svg", "invalid"}); err == nil {
		t.Error("Invalid format should fail")
	}
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
}

func TestOptionsDefaults(t *testing.T) {
	var o Options
	if err := o.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	if o.Theme != DefaultTheme || o.Scale != DefaultScale || len(o.Formats) != 1 || o.Formats[0] != FormatSVG {
		t.Errorf("defaults = %+v", o)
	}
	if o.Palette == nil || o.Logger == nil {
		t.Error("runtime defaults not set")
	}
	if o.Label.Step != label.DefaultOptions().Step {
		t.Errorf("label defaults not applied: %+v", o.Label)
	}
}

func TestOptionsErrors(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code errors.Code
	}{
		{"theme", Options{Theme: "sepia"}, errors.ErrCodeInvalidTheme},
		{"format", Options{Formats: []string{"gif"}}, errors.ErrCodeInvalidFormat},
		{"scale", Options{Scale: 10}, errors.ErrCodeInvalidInput},
		{"width", Options{Width: -1}, errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if !errors.Is(err, tt.code) {
				t.Errorf("err = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestSizeOverride(t *testing.T) {
	o := Options{Width: 300}
	w, h := o.Size(mixedChart())
	if w != 300 || h != chart.DefaultHeight {
		t.Errorf("size = %v x %v", w, h)
	}
}

func TestExecute(t *testing.T) {
	ctx := context.Background()
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := NewRunner(c, nil, nil)
	defer r.Close()

	opts := Options{Formats: []string{FormatSVG, FormatJSON, FormatPNG}, Scale: 1}
	res, err := r.Execute(ctx, mixedChart(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if res.CacheInfo.LayoutHit || res.CacheInfo.RenderHit {
		t.Error("first run hit the cache")
	}
	if res.Stats.Labels != 7 || res.Stats.Datasets != 2 {
		t.Errorf("stats = %+v", res.Stats)
	}
	if len(res.ChartHash) != 64 {
		t.Errorf("hash = %q", res.ChartHash)
	}

	svg := string(res.Artifacts[FormatSVG])
	if !strings.HasPrefix(svg, "<svg") || !strings.Contains(svg, "Sales &amp; Trend") || !strings.Contains(svg, ">44<") {
		t.Errorf("unexpected svg:\n%s", svg)
	}

	var doc struct {
		Chart  string `json:"chart"`
		Theme  string `json:"theme"`
		Labels []struct {
			Kind string `json:"kind"`
			Text string `json:"text"`
		} `json:"labels"`
	}
	if err := json.Unmarshal(res.Artifacts[FormatJSON], &doc); err != nil {
		t.Fatal(err)
	}
	if doc.Chart != "mixed" || doc.Theme != "light" || len(doc.Labels) != 7 {
		t.Errorf("json = %+v", doc)
	}

	img, err := png.Decode(bytes.NewReader(res.Artifacts[FormatPNG]))
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != int(chart.DefaultWidth) || b.Dy() != int(chart.DefaultHeight) {
		t.Errorf("png bounds = %v", b)
	}

	again, err := r.Execute(ctx, mixedChart(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if !again.CacheInfo.LayoutHit || !again.CacheInfo.RenderHit {
		t.Errorf("second run cache info = %+v", again.CacheInfo)
	}
	if !bytes.Equal(again.Artifacts[FormatSVG], res.Artifacts[FormatSVG]) {
		t.Error("cached svg differs")
	}
	if again.Stats.Labels != 7 {
		t.Errorf("cached layout labels = %d", again.Stats.Labels)
	}

	opts.Refresh = true
	fresh, err := r.Execute(ctx, mixedChart(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if fresh.CacheInfo.LayoutHit || fresh.CacheInfo.RenderHit {
		t.Error("refresh read the cache")
	}
}

func TestExecuteThemeChangesKey(t *testing.T) {
	ctx := context.Background()
	c, _ := cache.NewFileCache(t.TempDir())
	r := NewRunner(c, nil, nil)

	light, err := r.Execute(ctx, mixedChart(), Options{})
	if err != nil {
		t.Fatal(err)
	}
	dark, err := r.Execute(ctx, mixedChart(), Options{Theme: "dark"})
	if err != nil {
		t.Fatal(err)
	}
	if dark.CacheInfo.RenderHit {
		t.Error("dark render served from light cache entry")
	}
	if bytes.Equal(light.Artifacts[FormatSVG], dark.Artifacts[FormatSVG]) {
		t.Error("theme did not change output")
	}
	if !strings.Contains(string(dark.Artifacts[FormatSVG]), theme.Dark[theme.TokenBarLabel]) {
		t.Error("dark bar label color missing")
	}
}

func TestExecuteInvalidChart(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	_, err := r.Execute(context.Background(), &chart.Chart{Type: "radar"}, Options{})
	if !errors.Is(err, errors.ErrCodeInvalidChart) {
		t.Errorf("err = %v", err)
	}
}

func TestLayoutGauge(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	l, err := r.Layout(context.Background(), gaugeChart(), Options{})
	if err != nil {
		t.Fatal(err)
	}
	if l.Gauge == nil || !l.Gauge.HasRule {
		t.Fatalf("gauge layout missing: %+v", l)
	}
	if len(l.Labels) != 0 {
		t.Errorf("gauge labels repeated in Labels: %d", len(l.Labels))
	}
	if l.Count() != len(l.Gauge.Labels) || l.Count() != 3 {
		t.Errorf("count = %d, gauge labels = %d", l.Count(), len(l.Gauge.Labels))
	}

	data, err := l.JSON("light")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"rule"`) {
		t.Errorf("json lacks rule:\n%s", data)
	}
}

func TestLayoutDoughnutCenter(t *testing.T) {
	c := &chart.Chart{
		Type:       chart.Doughnut,
		Labels:     []string{"a", "b"},
		CenterText: "Total",
		Datasets:   []chart.Dataset{{Data: []label.Value{label.Num(3), label.Num(1)}}},
	}
	l := GenerateLayout(c, defaults(t))
	if l.Center == nil || len(l.Center.Lines) != 1 || l.Center.Lines[0] != "Total" {
		t.Errorf("center = %+v", l.Center)
	}
	if len(l.Labels) != 2 {
		t.Errorf("labels = %d", len(l.Labels))
	}
}

func TestLayoutRoundTrip(t *testing.T) {
	l := GenerateLayout(mixedChart(), defaults(t))
	data, err := MarshalLayout(l)
	if err != nil {
		t.Fatal(err)
	}
	back, err := UnmarshalLayout(data)
	if err != nil {
		t.Fatal(err)
	}
	if back.Count() != l.Count() || back.Displaced() != l.Displaced() {
		t.Errorf("round trip: %d/%d vs %d/%d", back.Count(), back.Displaced(), l.Count(), l.Displaced())
	}
	for i := range l.Labels {
		if back.Labels[i].Text != l.Labels[i].Text || back.Labels[i].TargetY != l.Labels[i].TargetY {
			t.Errorf("label %d: %+v vs %+v", i, back.Labels[i].Candidate, l.Labels[i].Candidate)
		}
	}
}

func TestRenderPDF(t *testing.T) {
	if !render.HasConverter() {
		t.Skip("rsvg-convert not installed")
	}
	opts := defaults(t)
	opts.Formats = []string{FormatPDF}
	out, err := Render(context.Background(), mixedChart(), Layout{}, opts)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(out[FormatPDF], []byte("%PDF")) {
		t.Error("not a pdf")
	}
}

func TestRenderCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Render(ctx, mixedChart(), Layout{}, defaults(t)); err != context.Canceled {
		t.Errorf("err = %v", err)
	}
}

func TestHooksObserveRun(t *testing.T) {
	h := &recordingHooks{}
	observability.SetFrameHooks(h)
	observability.SetCacheHooks(h)
	defer observability.Reset()

	r := NewRunner(cache.NewNullCache(), nil, nil)
	if _, err := r.Execute(context.Background(), mixedChart(), Options{}); err != nil {
		t.Fatal(err)
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.layouts != 1 || h.renders != 1 || h.placed != 7 {
		t.Errorf("hooks = %+v", h)
	}
	if h.misses == 0 || h.sets == 0 {
		t.Errorf("cache hooks = %d misses, %d sets", h.misses, h.sets)
	}
}

func defaults(t *testing.T) Options {
	t.Helper()
	var o Options
	if err := o.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	return o
}

type recordingHooks struct {
	observability.NoopFrameHooks
	observability.NoopCacheHooks

	mu                       sync.Mutex
	layouts, renders, placed int
	misses, sets             int
}

func (h *recordingHooks) OnLayoutComplete(_ context.Context, _ string, placed, _ int, _ time.Duration, _ error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.layouts++
	h.placed = placed
}

func (h *recordingHooks) OnRenderComplete(context.Context, []string, time.Duration, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.renders++
}

func (h *recordingHooks) OnCacheMiss(context.Context, string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.misses++
}

func (h *recordingHooks) OnCacheSet(context.Context, string, int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sets++
}
