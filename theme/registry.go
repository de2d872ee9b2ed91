package theme

import (
	"io"
	"sort"
	"sync"

	"github.com/agilira/go-errors"
	"github.com/charmbracelet/log"
)

// Registry maps template names to templates. Registering a name that is
// already present replaces the previous template.
type Registry struct {
	mu            sync.RWMutex
	templatesMap  map[string]*Template
	templatesList []string
	defaultName   string
	logger        *log.Logger
}

// NewRegistry creates an empty registry. defaultName is listed first by
// List when it is registered. A nil logger discards debug output.
func NewRegistry(defaultName string, logger *log.Logger) *Registry {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Registry{
		templatesMap:  make(map[string]*Template),
		templatesList: []string{},
		defaultName:   defaultName,
		logger:        logger,
	}
}

// Register validates t and stores a copy of it under name.
func (r *Registry) Register(name string, t *Template) error {
	if err := Validate(name, t); err != nil {
		return err
	}

	stored := t.Clone()
	stored.Name = name

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.templatesMap[name]; exists {
		r.logger.Debug("replacing template", "name", name)
	} else {
		r.templatesList = sortTemplates(append(r.templatesList, name), r.defaultName)
		r.logger.Debug("registered template", "name", name)
	}
	r.templatesMap[name] = stored
	return nil
}

// Get returns a copy of the template registered under name, or nil if
// not found.
func (r *Registry) Get(name string) *Template {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.templatesMap[name].Clone()
}

// Lookup is like Get but reports a missing template as an error.
func (r *Registry) Lookup(name string) (*Template, error) {
	t := r.Get(name)
	if t == nil {
		return nil, errors.New(ErrCodeTemplateNotFound, "template not found").
			WithContext("template", name)
	}
	return t, nil
}

// List returns all template names, default first and then alphabetically.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.templatesList...)
}

// Len returns the number of registered templates.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.templatesMap)
}

// DefaultName returns the name List puts first.
func (r *Registry) DefaultName() string {
	return r.defaultName
}

func sortTemplates(templates []string, preferred string) []string {
	var sorted []string
	var others []string

	for _, t := range templates {
		if t == preferred {
			sorted = append(sorted, t)
			continue
		}
		others = append(others, t)
	}

	sort.Strings(others)

	return append(sorted, others...)
}
