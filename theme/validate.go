package theme

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/agilira/go-errors"
)

var (
	hexColor  = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)
	funcColor = regexp.MustCompile(`^(rgb|rgba|hsl|hsla)\([0-9.,%\s]+\)$`)
)

// hoverModes are the values plotly accepts for layout.hovermode.
var hoverModes = map[HoverMode]bool{
	"x":         true,
	"y":         true,
	"closest":   true,
	"x unified": true,
	"y unified": true,
	"false":     true,
}

// Validate reports the first structural problem in t, or nil.
func Validate(name string, t *Template) error {
	if strings.TrimSpace(name) == "" {
		return errors.New(ErrCodeInvalidTemplate, "template name is empty")
	}
	if t == nil {
		return errors.New(ErrCodeInvalidTemplate, "template is nil").
			WithContext("template", name)
	}

	if ps := t.Layout.problems(); len(ps) > 0 {
		p := ps[0]
		return errors.New(ErrCodeInvalidTemplate, p.msg).
			WithContext("template", name).
			WithContext("field", p.field)
	}
	return nil
}

type problem struct {
	field string
	msg   string
}

func (l Layout) problems() []problem {
	var out []problem
	add := func(field, format string, args ...any) {
		out = append(out, problem{field: field, msg: field + ": " + fmt.Sprintf(format, args...)})
	}

	out = append(out, l.Font.problems("font")...)
	if l.PaperBgColor != "" && !validColor(l.PaperBgColor) {
		add("paper_bgcolor", "invalid color %q", l.PaperBgColor)
	}
	if l.PlotBgColor != "" && !validColor(l.PlotBgColor) {
		add("plot_bgcolor", "invalid color %q", l.PlotBgColor)
	}
	if l.Title != nil {
		out = append(out, l.Title.Font.problems("title.font")...)
	}
	if m := l.Margin; m != nil {
		if m.L < 0 || m.R < 0 || m.B < 0 || m.T < 0 {
			add("margin", "offsets must be non-negative, got l=%d r=%d b=%d t=%d", m.L, m.R, m.B, m.T)
		}
	}
	out = append(out, l.XAxis.problems("xaxis")...)
	out = append(out, l.YAxis.problems("yaxis")...)
	if l.HoverMode != "" && !hoverModes[l.HoverMode] {
		add("hovermode", "unsupported mode %q", l.HoverMode)
	}
	return out
}

func (f *Font) problems(field string) []problem {
	if f == nil {
		return nil
	}
	var out []problem
	if f.Color != "" && !validColor(f.Color) {
		out = append(out, problem{field + ".color", fmt.Sprintf("%s.color: invalid color %q", field, f.Color)})
	}
	if f.Size < 0 {
		out = append(out, problem{field + ".size", fmt.Sprintf("%s.size: must be at least 1, got %d", field, f.Size)})
	}
	return out
}

func (a *Axis) problems(field string) []problem {
	if a == nil {
		return nil
	}
	var out []problem
	if a.Color != "" && !validColor(a.Color) {
		out = append(out, problem{field + ".color", fmt.Sprintf("%s.color: invalid color %q", field, a.Color)})
	}
	if a.ZeroLineWidth < 0 {
		out = append(out, problem{field + ".zerolinewidth", fmt.Sprintf("%s.zerolinewidth: must be non-negative, got %d", field, a.ZeroLineWidth)})
	}
	if a.Title != nil {
		out = append(out, a.Title.Font.problems(field+".title.font")...)
	}
	return out
}

func validColor(c string) bool {
	c = strings.TrimSpace(c)
	return hexColor.MatchString(c) || cssColorNames[strings.ToLower(c)] || funcColor.MatchString(c)
}
