package io

import (
	"encoding/json"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/chartlabel/pkg/chart"
	"github.com/matzehuels/chartlabel/pkg/errors"
	"github.com/matzehuels/chartlabel/pkg/label"
	"github.com/matzehuels/chartlabel/pkg/surface"
)

// Document is a decoded set of charts.
type Document struct {
	Charts []*chart.Chart
}

// Names returns the chart names in document order.
func (d *Document) Names() []string {
	names := make([]string, len(d.Charts))
	for i, c := range d.Charts {
		names[i] = c.Name
	}
	return names
}

// Chart returns the chart called name. An empty name selects the only chart
// of a single-chart document.
func (d *Document) Chart(name string) (*chart.Chart, error) {
	if name == "" {
		if len(d.Charts) == 1 {
			return d.Charts[0], nil
		}
		return nil, errors.New(errors.ErrCodeInvalidInput, "document has %d charts; choose one of %v", len(d.Charts), d.Names())
	}
	for _, c := range d.Charts {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, errors.New(errors.ErrCodeChartNotFound, "no chart named %q", name)
}

type document struct {
	Charts   []chartDoc `json:"charts,omitempty" yaml:"charts,omitempty"`
	chartDoc `yaml:",inline"`
}

type chartDoc struct {
	Name      string       `json:"name,omitempty" yaml:"name,omitempty"`
	Type      string       `json:"type,omitempty" yaml:"type,omitempty"`
	Title     string       `json:"title,omitempty" yaml:"title,omitempty"`
	Labels    []string     `json:"labels,omitempty" yaml:"labels,omitempty"`
	Center    string       `json:"center,omitempty" yaml:"center,omitempty"`
	Highlight string       `json:"highlight,omitempty" yaml:"highlight,omitempty"`
	Width     float64      `json:"width,omitempty" yaml:"width,omitempty"`
	Height    float64      `json:"height,omitempty" yaml:"height,omitempty"`
	Datasets  []datasetDoc `json:"datasets,omitempty" yaml:"datasets,omitempty"`
}

type datasetDoc struct {
	Label       string     `json:"label,omitempty" yaml:"label,omitempty"`
	Type        string     `json:"type,omitempty" yaml:"type,omitempty"`
	Data        []*float64 `json:"data" yaml:"data"`
	Hidden      bool       `json:"hidden,omitempty" yaml:"hidden,omitempty"`
	Color       string     `json:"color,omitempty" yaml:"color,omitempty"`
	Colors      []string   `json:"colors,omitempty" yaml:"colors,omitempty"`
	LabelToken  string     `json:"labelToken,omitempty" yaml:"labelToken,omitempty"`
	PointRadius *radii     `json:"pointRadius,omitempty" yaml:"pointRadius,omitempty"`
	HoverRadius *radii     `json:"hoverRadius,omitempty" yaml:"hoverRadius,omitempty"`
	Gradient    []stopDoc  `json:"gradient,omitempty" yaml:"gradient,omitempty"`
}

type stopDoc struct {
	Offset float64 `json:"offset" yaml:"offset"`
	Color  string  `json:"color" yaml:"color"`
}

// radii is a point radius written either as a number or a list of numbers.
type radii label.Radii

func (r *radii) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.SequenceNode {
		var list []float64
		if err := n.Decode(&list); err != nil {
			return err
		}
		*r = radii{PerPoint: list}
		return nil
	}
	var v float64
	if err := n.Decode(&v); err != nil {
		return fmt.Errorf("radius must be a number or a list: %w", err)
	}
	*r = radii{Scalar: v}
	return nil
}

func (r radii) MarshalYAML() (any, error) {
	if r.PerPoint != nil {
		return r.PerPoint, nil
	}
	return r.Scalar, nil
}

func (r *radii) UnmarshalJSON(b []byte) error {
	var list []float64
	if err := json.Unmarshal(b, &list); err == nil {
		*r = radii{PerPoint: list}
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("radius must be a number or a list: %w", err)
	}
	*r = radii{Scalar: v}
	return nil
}

func (r radii) MarshalJSON() ([]byte, error) {
	if r.PerPoint != nil {
		return json.Marshal(r.PerPoint)
	}
	return json.Marshal(r.Scalar)
}

// toDocument converts the wire form, validating every chart.
func (d document) toDocument() (*Document, error) {
	docs := d.Charts
	if len(docs) == 0 && d.Type != "" {
		docs = []chartDoc{d.chartDoc}
	}
	if len(docs) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidDocument, "document contains no charts")
	}
	out := &Document{Charts: make([]*chart.Chart, 0, len(docs))}
	seen := map[string]bool{}
	for i, cd := range docs {
		if cd.Name == "" {
			cd.Name = fmt.Sprintf("chart-%d", i+1)
		}
		if err := errors.ValidateName("chart", cd.Name); err != nil {
			return nil, err
		}
		if seen[cd.Name] {
			return nil, errors.New(errors.ErrCodeInvalidDocument, "duplicate chart name %q", cd.Name)
		}
		seen[cd.Name] = true
		c, err := cd.toChart()
		if err != nil {
			return nil, fmt.Errorf("chart %s: %w", cd.Name, err)
		}
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("chart %s: %w", cd.Name, err)
		}
		out.Charts = append(out.Charts, c)
	}
	return out, nil
}

func (cd chartDoc) toChart() (*chart.Chart, error) {
	typ, ok := chart.ParseType(cd.Type)
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidChart, "unknown chart type %q", cd.Type)
	}
	c := &chart.Chart{
		Name:       cd.Name,
		Type:       typ,
		Title:      cd.Title,
		Labels:     slices.Clone(cd.Labels),
		CenterText: cd.Center,
		Highlight:  cd.Highlight,
		Width:      cd.Width,
		Height:     cd.Height,
	}
	for i, dd := range cd.Datasets {
		ds, err := dd.toDataset(typ)
		if err != nil {
			return nil, fmt.Errorf("dataset %d: %w", i, err)
		}
		c.Datasets = append(c.Datasets, ds)
	}
	return c, nil
}

func (dd datasetDoc) toDataset(typ chart.Type) (chart.Dataset, error) {
	kind := label.Bar
	switch {
	case typ.Radial():
		kind = label.Arc
	case dd.Type != "":
		k, ok := label.ParseKind(dd.Type)
		if !ok || k == label.Arc {
			return chart.Dataset{}, errors.New(errors.ErrCodeInvalidChart, "unknown dataset type %q", dd.Type)
		}
		kind = k
	case typ == chart.Line:
		kind = label.LinePoint
	}
	ds := chart.Dataset{
		Label:      dd.Label,
		Kind:       kind,
		Data:       make([]label.Value, len(dd.Data)),
		Hidden:     dd.Hidden,
		Color:      dd.Color,
		Colors:     slices.Clone(dd.Colors),
		LabelToken: dd.LabelToken,
	}
	for i, v := range dd.Data {
		if v != nil {
			ds.Data[i] = label.Num(*v)
		}
	}
	if dd.PointRadius != nil {
		ds.PointRadius = label.Radii(*dd.PointRadius)
	}
	if dd.HoverRadius != nil {
		ds.HoverRadius = label.Radii(*dd.HoverRadius)
	}
	for _, st := range dd.Gradient {
		ds.Gradient = append(ds.Gradient, surface.ColorStop{Offset: st.Offset, Color: st.Color})
	}
	return ds, nil
}

// fromDocument converts a document to its wire form.
func fromDocument(d *Document) document {
	out := document{Charts: make([]chartDoc, len(d.Charts))}
	for i, c := range d.Charts {
		cd := chartDoc{
			Name:      c.Name,
			Type:      string(c.Type),
			Title:     c.Title,
			Labels:    c.Labels,
			Center:    c.CenterText,
			Highlight: c.Highlight,
			Width:     c.Width,
			Height:    c.Height,
		}
		for _, ds := range c.Datasets {
			cd.Datasets = append(cd.Datasets, fromDataset(c.Type, ds))
		}
		out.Charts[i] = cd
	}
	return out
}

func fromDataset(typ chart.Type, ds chart.Dataset) datasetDoc {
	dd := datasetDoc{
		Label:      ds.Label,
		Data:       make([]*float64, len(ds.Data)),
		Hidden:     ds.Hidden,
		Color:      ds.Color,
		Colors:     ds.Colors,
		LabelToken: ds.LabelToken,
	}
	if typ == chart.Mixed {
		dd.Type = ds.Kind.String()
	}
	for i, v := range ds.Data {
		if v.Valid {
			x := v.V
			dd.Data[i] = &x
		}
	}
	if ds.PointRadius.Explicit() || ds.PointRadius.Scalar > 0 {
		r := radii(ds.PointRadius)
		dd.PointRadius = &r
	}
	if ds.HoverRadius.Explicit() || ds.HoverRadius.Scalar > 0 {
		r := radii(ds.HoverRadius)
		dd.HoverRadius = &r
	}
	for _, st := range ds.Gradient {
		dd.Gradient = append(dd.Gradient, stopDoc{Offset: st.Offset, Color: st.Color})
	}
	return dd
}
