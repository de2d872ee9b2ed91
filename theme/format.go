package theme

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v3"
)

// Output formats accepted by WriteTemplate.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// DisplayName turns a template key such as "walkintheforest-dark" into
// "Walkintheforest Dark".
func DisplayName(name string) string {
	parts := strings.Split(name, "-")
	for i, part := range parts {
		if len(part) > 0 {
			parts[i] = strings.ToUpper(part[:1]) + part[1:]
		}
	}
	return strings.Join(parts, " ")
}

// WriteList writes one line per registered template, marking current
// with an asterisk.
func WriteList(w io.Writer, r *Registry, current string) error {
	for _, name := range r.List() {
		marker := " "
		if name == current {
			marker = "*"
		}
		if _, err := fmt.Fprintf(w, "%s %s\t%s\n", marker, name, DisplayName(name)); err != nil {
			return err
		}
	}
	return nil
}

// WriteTemplate encodes t to w in the given format.
func WriteTemplate(w io.Writer, t *Template, format string) error {
	switch format {
	case FormatJSON, "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(t)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(t); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q (want %s or %s)", format, FormatJSON, FormatYAML)
	}
}
