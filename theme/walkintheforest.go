package theme

// WalkInTheForestDarkName is the registry key of the dark theme.
const WalkInTheForestDarkName = "walkintheforest-dark"

// WalkInTheForestDark returns a new copy of the dark theme.
func WalkInTheForestDark() *Template {
	axis := func() *Axis {
		return &Axis{
			Color:         "white",
			ShowGrid:      Bool(false),
			ZeroLineWidth: 2,
			Title:         &Title{Font: &Font{Size: 16}},
		}
	}

	return &Template{
		Name: WalkInTheForestDarkName,
		Layout: Layout{
			Font: &Font{
				Family: "'Open Sans', verdana, arial, sans-serif",
				Color:  "white",
			},
			ShowLegend:   Bool(true),
			PaperBgColor: "#1e1e1e",
			PlotBgColor:  "#1e1e1e",
			Title:        &Title{Font: &Font{Size: 20}},
			Margin:       &Margin{L: 100, R: 50, B: 90, T: 90},
			XAxis:        axis(),
			YAxis:        axis(),
			HoverMode:    "closest",
		},
	}
}

// RegisterWalkInTheForest adds the dark theme to r. Calling it again
// overwrites the earlier entry.
func RegisterWalkInTheForest(r *Registry) error {
	return r.Register(WalkInTheForestDarkName, WalkInTheForestDark())
}
