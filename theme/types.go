// Package theme holds chart layout templates and the registry charts look
// them up in.
package theme

// Template is a named chart layout template. Its JSON form matches the
// plotly layout-template shape so it can be handed to plotly front-ends.
type Template struct {
	Name   string `json:"name,omitempty" yaml:"name,omitempty"`
	Layout Layout `json:"layout" yaml:"layout"`
}

// Layout holds the figure-level styling a template contributes.
type Layout struct {
	Font         *Font     `json:"font,omitempty" yaml:"font,omitempty"`
	ShowLegend   *bool     `json:"showlegend,omitempty" yaml:"showlegend,omitempty"`
	PaperBgColor string    `json:"paper_bgcolor,omitempty" yaml:"paper_bgcolor,omitempty"`
	PlotBgColor  string    `json:"plot_bgcolor,omitempty" yaml:"plot_bgcolor,omitempty"`
	Title        *Title    `json:"title,omitempty" yaml:"title,omitempty"`
	Margin       *Margin   `json:"margin,omitempty" yaml:"margin,omitempty"`
	XAxis        *Axis     `json:"xaxis,omitempty" yaml:"xaxis,omitempty"`
	YAxis        *Axis     `json:"yaxis,omitempty" yaml:"yaxis,omitempty"`
	HoverMode    HoverMode `json:"hovermode,omitempty" yaml:"hovermode,omitempty"`
}

// Font describes a text style. Zero values mean "not set".
type Font struct {
	Family string `json:"family,omitempty" yaml:"family,omitempty"`
	Color  string `json:"color,omitempty" yaml:"color,omitempty"`
	Size   int    `json:"size,omitempty" yaml:"size,omitempty"`
}

// Title carries title styling for the figure or an axis.
type Title struct {
	Font *Font `json:"font,omitempty" yaml:"font,omitempty"`
}

// Margin is the plot area offset in pixels.
type Margin struct {
	L int `json:"l" yaml:"l"`
	R int `json:"r" yaml:"r"`
	B int `json:"b" yaml:"b"`
	T int `json:"t" yaml:"t"`
}

// Axis contains per-axis styling.
type Axis struct {
	Color         string `json:"color,omitempty" yaml:"color,omitempty"`
	ShowGrid      *bool  `json:"showgrid,omitempty" yaml:"showgrid,omitempty"`
	ZeroLineWidth int    `json:"zerolinewidth,omitempty" yaml:"zerolinewidth,omitempty"`
	Title         *Title `json:"title,omitempty" yaml:"title,omitempty"`
}

// Bool returns a pointer to v, for the optional boolean fields.
func Bool(v bool) *bool {
	return &v
}

// Clone returns a deep copy of t.
func (t *Template) Clone() *Template {
	if t == nil {
		return nil
	}
	return &Template{Name: t.Name, Layout: t.Layout.clone()}
}

func (l Layout) clone() Layout {
	out := l
	out.Font = l.Font.clone()
	out.ShowLegend = cloneBool(l.ShowLegend)
	out.Title = l.Title.clone()
	if l.Margin != nil {
		m := *l.Margin
		out.Margin = &m
	}
	out.XAxis = l.XAxis.clone()
	out.YAxis = l.YAxis.clone()
	return out
}

func (f *Font) clone() *Font {
	if f == nil {
		return nil
	}
	c := *f
	return &c
}

func (t *Title) clone() *Title {
	if t == nil {
		return nil
	}
	return &Title{Font: t.Font.clone()}
}

func (a *Axis) clone() *Axis {
	if a == nil {
		return nil
	}
	c := *a
	c.ShowGrid = cloneBool(a.ShowGrid)
	c.Title = a.Title.clone()
	return &c
}

func cloneBool(b *bool) *bool {
	if b == nil {
		return nil
	}
	v := *b
	return &v
}
