package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		level     string
		wantDebug bool
		wantWarn  bool
	}{
		{"", false, true},
		{"debug", true, true},
		{"info", false, true},
		{"error", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			logger, err := New(&buf, "test", tt.level)
			if err != nil {
				t.Fatal(err)
			}
			logger.Debug("debug line")
			logger.Warn("warn line")

			if got := strings.Contains(buf.String(), "debug line"); got != tt.wantDebug {
				t.Errorf("debug logged = %v, want %v\n%s", got, tt.wantDebug, buf.String())
			}
			if got := strings.Contains(buf.String(), "warn line"); got != tt.wantWarn {
				t.Errorf("warn logged = %v, want %v\n%s", got, tt.wantWarn, buf.String())
			}
		})
	}
}

func TestNewInvalidLevel(t *testing.T) {
	if _, err := New(&bytes.Buffer{}, "", "loud"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}
