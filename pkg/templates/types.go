package templates

import (
	"slices"
	"strings"
)

// Registry keeps the parsed print templates and the field label map. It is
// safe for concurrent readers when treated as immutable after construction.
type Registry struct {
	templates map[string]Template
	labels    map[string]string
}

// Template describes one printable arrangement of record fields.
type Template struct {
	ID       string
	Title    string
	Order    int
	Source   string
	Callout  *Callout
	Sections []Section
}

// Callout highlights a single field next to the document header.
type Callout struct {
	Field string `json:"field" yaml:"field"`
	Label string `json:"label" yaml:"label"`
}

// Section groups fields under a heading. Composite names a field group that
// is rendered as a single row at the top of the section.
type Section struct {
	ID        string   `json:"id" yaml:"id"`
	Title     string   `json:"title" yaml:"title"`
	Composite string   `json:"composite,omitempty" yaml:"composite,omitempty"`
	Fields    []string `json:"fields" yaml:"fields"`
}

// Template returns the template registered under id.
func (r *Registry) Template(id string) (Template, bool) {
	if r == nil {
		return Template{}, false
	}
	tpl, ok := r.templates[strings.TrimSpace(id)]
	return tpl, ok
}

// Has reports whether a template is registered under id.
func (r *Registry) Has(id string) bool {
	_, ok := r.Template(id)
	return ok
}

// List returns the templates sorted by Order, then ID.
func (r *Registry) List() []Template {
	if r == nil {
		return nil
	}
	out := make([]Template, 0, len(r.templates))
	for _, tpl := range r.templates {
		out = append(out, tpl)
	}
	slices.SortFunc(out, func(a, b Template) int {
		if a.Order != b.Order {
			return a.Order - b.Order
		}
		return strings.Compare(a.ID, b.ID)
	})
	return out
}

// IDs returns the template identifiers in List order.
func (r *Registry) IDs() []string {
	list := r.List()
	out := make([]string, len(list))
	for i, tpl := range list {
		out[i] = tpl.ID
	}
	return out
}

// Label returns the display label for a field key, falling back to the key.
func (r *Registry) Label(key string) string {
	if r != nil {
		if label, ok := r.labels[key]; ok && strings.TrimSpace(label) != "" {
			return label
		}
	}
	return key
}

// Empty reports whether the registry holds any templates.
func (r *Registry) Empty() bool {
	return r == nil || len(r.templates) == 0
}

// Overlay returns a new registry where templates and labels from other
// replace the ones in r with the same key.
func (r *Registry) Overlay(other *Registry) *Registry {
	out := newRegistry()
	for _, src := range []*Registry{r, other} {
		if src == nil {
			continue
		}
		for id, tpl := range src.templates {
			out.templates[id] = tpl
		}
		for key, label := range src.labels {
			out.labels[key] = label
		}
	}
	return out
}

func newRegistry() *Registry {
	return &Registry{
		templates: make(map[string]Template),
		labels:    make(map[string]string),
	}
}
