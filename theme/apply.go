package theme

// Apply returns fig with unset fields filled from the named template.
// Fields already set on fig take precedence.
func (r *Registry) Apply(name string, fig Layout) (Layout, error) {
	t, err := r.Lookup(name)
	if err != nil {
		return Layout{}, err
	}
	return Merge(t.Layout, fig), nil
}

// Merge overlays override on top of base and returns the result. Neither
// argument is modified.
func Merge(base, override Layout) Layout {
	out := base.clone()
	o := override.clone()

	out.Font = mergeFont(out.Font, o.Font)
	if o.ShowLegend != nil {
		out.ShowLegend = o.ShowLegend
	}
	if o.PaperBgColor != "" {
		out.PaperBgColor = o.PaperBgColor
	}
	if o.PlotBgColor != "" {
		out.PlotBgColor = o.PlotBgColor
	}
	out.Title = mergeTitle(out.Title, o.Title)
	if o.Margin != nil {
		out.Margin = o.Margin
	}
	out.XAxis = mergeAxis(out.XAxis, o.XAxis)
	out.YAxis = mergeAxis(out.YAxis, o.YAxis)
	if o.HoverMode != "" {
		out.HoverMode = o.HoverMode
	}
	return out
}

func mergeFont(base, o *Font) *Font {
	if base == nil {
		return o
	}
	if o == nil {
		return base
	}
	if o.Family != "" {
		base.Family = o.Family
	}
	if o.Color != "" {
		base.Color = o.Color
	}
	if o.Size != 0 {
		base.Size = o.Size
	}
	return base
}

func mergeTitle(base, o *Title) *Title {
	if base == nil {
		return o
	}
	if o == nil {
		return base
	}
	base.Font = mergeFont(base.Font, o.Font)
	return base
}

func mergeAxis(base, o *Axis) *Axis {
	if base == nil {
		return o
	}
	if o == nil {
		return base
	}
	if o.Color != "" {
		base.Color = o.Color
	}
	if o.ShowGrid != nil {
		base.ShowGrid = o.ShowGrid
	}
	if o.ZeroLineWidth != 0 {
		base.ZeroLineWidth = o.ZeroLineWidth
	}
	base.Title = mergeTitle(base.Title, o.Title)
	return base
}
