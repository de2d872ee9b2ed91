package theme

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
)

const forestJSON = `{
  "name": "forest-light",
  "layout": {
    "font": {"family": "serif", "color": "#222"},
    "showlegend": false,
    "paper_bgcolor": "#f5f5f0",
    "margin": {"l": 40, "r": 20, "b": 30, "t": 30},
    "xaxis": {"showgrid": true, "title": {"font": {"size": 12}}},
    "hovermode": "x unified"
  }
}`

const mossYAML = `layout:
  plot_bgcolor: "#2e3b2e"
  yaxis:
    color: white
    showgrid: false
    zerolinewidth: 1
`

func TestParseTemplate(t *testing.T) {
	got, err := ParseTemplate("forest.json", []byte(forestJSON))
	if err != nil {
		t.Fatal(err)
	}
	want := &Template{
		Name: "forest-light",
		Layout: Layout{
			Font:         &Font{Family: "serif", Color: "#222"},
			ShowLegend:   Bool(false),
			PaperBgColor: "#f5f5f0",
			Margin:       &Margin{L: 40, R: 20, B: 30, T: 30},
			XAxis:        &Axis{ShowGrid: Bool(true), Title: &Title{Font: &Font{Size: 12}}},
			HoverMode:    "x unified",
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("template mismatch (-want +got):\n%s", diff)
	}
}

func TestParseTemplateYAMLNameFromFile(t *testing.T) {
	got, err := ParseTemplate("dir/moss-dark.yml", []byte(mossYAML))
	if err != nil {
		t.Fatal(err)
	}
	want := &Template{
		Name: "moss-dark",
		Layout: Layout{
			PlotBgColor: "#2e3b2e",
			YAxis:       &Axis{Color: "white", ShowGrid: Bool(false), ZeroLineWidth: 1},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("template mismatch (-want +got):\n%s", diff)
	}
}

func TestParseTemplateErrors(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		data     string
	}{
		{"unknown json key", "a.json", `{"layout": {"bgcolor": "red"}}`},
		{"unknown yaml key", "a.yaml", "layout:\n  legend: true\n"},
		{"bad json", "a.json", `{"layout": `},
		{"wrong type", "a.json", `{"layout": {"margin": {"l": "wide"}}}`},
		{"unsupported extension", "a.toml", `layout = {}`},
		{"trailing garbage", "a.json", `{"layout": {}} garbage`},
		{"second object", "a.json", `{"layout": {}} {"layout": {}}`},
		{"hovermode true json", "a.json", `{"layout": {"hovermode": true}}`},
		{"hovermode true yaml", "a.yaml", "layout:\n  hovermode: true\n"},
		{"hovermode number", "a.json", `{"layout": {"hovermode": 3}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTemplate(tt.filename, []byte(tt.data))
			if err == nil {
				t.Fatal("expected error")
			}
			if got := errorCode(err); got != ErrCodeParseFailed {
				t.Errorf("got code %q want %q", got, ErrCodeParseFailed)
			}
		})
	}
}

func TestParseTemplateHoverModeOff(t *testing.T) {
	tests := []struct {
		filename string
		data     string
	}{
		{"off.json", `{"layout": {"hovermode": false}}`},
		{"off.yaml", "layout:\n  hovermode: false\n"},
		{"quoted.yaml", "layout:\n  hovermode: \"false\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			got, err := ParseTemplate(tt.filename, []byte(tt.data))
			if err != nil {
				t.Fatal(err)
			}
			if got.Layout.HoverMode != HoverModeOff {
				t.Errorf("got hovermode %q want %q", got.Layout.HoverMode, HoverModeOff)
			}
			if err := Validate(got.Name, got); err != nil {
				t.Errorf("validate: %v", err)
			}
		})
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.yaml")
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(good, []byte(mossYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(bad, []byte("layout:\n  hovermode: nowhere\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := ParseFile(good); err != nil {
		t.Errorf("good file: %v", err)
	}
	if _, err := ParseFile(bad); errorCode(err) != ErrCodeInvalidTemplate {
		t.Errorf("bad file: got %v want code %s", err, ErrCodeInvalidTemplate)
	}
	if _, err := ParseFile(filepath.Join(dir, "missing.yaml")); errorCode(err) != ErrCodeParseFailed {
		t.Errorf("missing file: got %v want code %s", err, ErrCodeParseFailed)
	}
}

func TestLoadTemplates(t *testing.T) {
	fsys := fstest.MapFS{
		"templates/forest.json":    {Data: []byte(forestJSON)},
		"templates/moss-dark.yaml": {Data: []byte(mossYAML)},
		"templates/broken.json":    {Data: []byte(`{"layout": {"hovermode": "nowhere"}}`)},
		"templates/README.md":      {Data: []byte("not a template")},
		"templates/nested/x.json":  {Data: []byte(`{}`)},
		"other/ignored-theme.json": {Data: []byte(`{}`)},
	}

	r := NewRegistry(WalkInTheForestDarkName, nil)
	if err := RegisterWalkInTheForest(r); err != nil {
		t.Fatal(err)
	}

	loaded, err := r.LoadTemplates(fsys, "templates")
	if err == nil {
		t.Error("expected error for broken.json")
	}
	if diff := cmp.Diff([]string{"forest-light", "moss-dark"}, loaded); diff != "" {
		t.Errorf("loaded mismatch (-want +got):\n%s", diff)
	}
	want := []string{WalkInTheForestDarkName, "forest-light", "moss-dark"}
	if diff := cmp.Diff(want, r.List()); diff != "" {
		t.Errorf("list mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadTemplatesMissingDir(t *testing.T) {
	r := NewRegistry("", nil)
	if _, err := r.LoadTemplates(fstest.MapFS{}, "nope"); err == nil {
		t.Fatal("expected error for missing directory")
	}
}
