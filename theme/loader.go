package theme

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"
	"path"
)

// LoadTemplates parses every template file in dir of fsys and registers
// it in r. Files that fail to parse or validate are skipped. Their errors
// are joined into the returned error, and the names that did load are
// returned either way.
func (r *Registry) LoadTemplates(fsys fs.FS, dir string) ([]string, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read templates directory: %w", err)
	}

	var loaded []string
	var errs []error
	for _, entry := range entries {
		if entry.IsDir() || !IsTemplateFile(entry.Name()) {
			continue
		}

		data, err := fs.ReadFile(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			r.logger.Warn("failed to read template", "file", entry.Name(), "err", err)
			errs = append(errs, err)
			continue
		}

		t, err := ParseTemplate(entry.Name(), data)
		if err == nil {
			err = r.Register(t.Name, t)
		}
		if err != nil {
			r.logger.Warn("skipping template", "file", entry.Name(), "err", err)
			errs = append(errs, err)
			continue
		}
		loaded = append(loaded, t.Name)
	}

	r.logger.Info("loaded theme templates", "dir", dir, "count", len(loaded), "skipped", len(errs))
	return loaded, stderrors.Join(errs...)
}

// LoadDir loads the template files in the on-disk directory dir.
func (r *Registry) LoadDir(dir string) ([]string, error) {
	return r.LoadTemplates(os.DirFS(dir), ".")
}
