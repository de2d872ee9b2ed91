package theme

import (
	"encoding/json"
	"fmt"

	"go.yaml.in/yaml/v3"
)

// HoverMode is layout.hovermode. plotly encodes the disabled mode as the
// boolean false, which is held here as HoverModeOff.
type HoverMode string

// HoverModeOff disables hover interaction.
const HoverModeOff HoverMode = "false"

// MarshalJSON writes HoverModeOff as a JSON boolean.
func (h HoverMode) MarshalJSON() ([]byte, error) {
	if h == HoverModeOff {
		return []byte("false"), nil
	}
	return json.Marshal(string(h))
}

// UnmarshalJSON accepts a mode string or the boolean false.
func (h *HoverMode) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		if b {
			return fmt.Errorf("hovermode: true is not a valid mode")
		}
		*h = HoverModeOff
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("hovermode: %w", err)
	}
	*h = HoverMode(s)
	return nil
}

// MarshalYAML writes HoverModeOff as a YAML boolean.
func (h HoverMode) MarshalYAML() (any, error) {
	if h == HoverModeOff {
		return false, nil
	}
	return string(h), nil
}

// UnmarshalYAML accepts a mode string or the boolean false.
func (h *HoverMode) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode && value.Tag == "!!bool" {
		var b bool
		if err := value.Decode(&b); err != nil {
			return err
		}
		if b {
			return fmt.Errorf("hovermode: true is not a valid mode")
		}
		*h = HoverModeOff
		return nil
	}
	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("hovermode: %w", err)
	}
	*h = HoverMode(s)
	return nil
}
