package theme

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/agilira/go-errors"
	"go.yaml.in/yaml/v3"
)

// Suffixes lists the file extensions ParseTemplate understands.
var Suffixes = []string{".json", ".yaml", ".yml"}

// IsTemplateFile reports whether filename has a template suffix.
func IsTemplateFile(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, s := range Suffixes {
		if ext == s {
			return true
		}
	}
	return false
}

// ParseTemplate decodes a template file. The format is chosen by the
// extension of filename. Unknown keys are rejected. When the file has no
// name field, the base name without extension is used.
func ParseTemplate(filename string, data []byte) (*Template, error) {
	var t Template
	var err error

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&t)
		if err == nil {
			if extra := dec.Decode(&struct{}{}); extra != io.EOF {
				err = fmt.Errorf("unexpected data after template object")
			}
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(&t)
	default:
		return nil, errors.New(ErrCodeParseFailed, "unsupported template file extension").
			WithContext("file", filename)
	}
	if err != nil {
		return nil, errors.Wrap(err, ErrCodeParseFailed, "decode template").
			WithContext("file", filename)
	}

	if strings.TrimSpace(t.Name) == "" {
		base := filepath.Base(filename)
		t.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return &t, nil
}

// ParseFile reads and parses the template at path, then validates it.
func ParseFile(path string) (*Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, ErrCodeParseFailed, "read template file").
			WithContext("file", path)
	}
	t, err := ParseTemplate(path, data)
	if err != nil {
		return nil, err
	}
	if err := Validate(t.Name, t); err != nil {
		return nil, err
	}
	return t, nil
}
