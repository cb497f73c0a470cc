package templates

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type documentFile struct {
	Labels    map[string]string       `json:"labels" yaml:"labels"`
	Templates map[string]templateFile `json:"templates" yaml:"templates"`
}

type templateFile struct {
	Title    string    `json:"title" yaml:"title"`
	Order    int       `json:"order" yaml:"order"`
	Callout  *Callout  `json:"callout,omitempty" yaml:"callout,omitempty"`
	Sections []Section `json:"sections" yaml:"sections"`
}

// LoadFS walks fsys and parses every JSON/YAML template document. A nil fsys
// yields an empty registry.
func LoadFS(fsys fs.FS) (*Registry, error) {
	reg := newRegistry()
	if fsys == nil {
		return reg, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isConfigFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("templates: read %s: %w", path, err)
		}
		doc, err := parseDocument(data, path)
		if err != nil {
			return err
		}

		for key, label := range doc.Labels {
			key = strings.TrimSpace(key)
			if key == "" {
				return fmt.Errorf("templates: file %s defines a label with an empty key", path)
			}
			if existing, ok := reg.labels[key]; ok && existing != label {
				return fmt.Errorf("templates: conflicting label for %q (file %s)", key, path)
			}
			reg.labels[key] = label
		}

		for rawID, raw := range doc.Templates {
			id := strings.TrimSpace(rawID)
			if id == "" {
				return fmt.Errorf("templates: file %s defines an empty template id", path)
			}
			if _, exists := reg.templates[id]; exists {
				return fmt.Errorf("templates: duplicate template %q (file %s)", id, path)
			}
			tpl, err := normaliseTemplate(raw, id, path)
			if err != nil {
				return err
			}
			reg.templates[id] = tpl
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return reg, nil
}

// MustLoadFS panics when LoadFS fails. Intended for embedded defaults.
func MustLoadFS(fsys fs.FS) *Registry {
	reg, err := LoadFS(fsys)
	if err != nil {
		panic(err)
	}
	return reg
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if strings.TrimSpace(string(data)) == "" {
		return documentFile{}, fmt.Errorf("templates: file %s is empty", source)
	}
	if strings.EqualFold(filepath.Ext(source), ".json") {
		if err := json.Unmarshal(data, &doc); err != nil {
			return documentFile{}, fmt.Errorf("templates: parse %s: %w", source, err)
		}
		return doc, nil
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return documentFile{}, fmt.Errorf("templates: parse %s: %w", source, err)
	}
	return doc, nil
}

func normaliseTemplate(raw templateFile, id, source string) (Template, error) {
	tpl := Template{
		ID:     id,
		Title:  strings.TrimSpace(raw.Title),
		Order:  raw.Order,
		Source: source,
	}
	if tpl.Title == "" {
		tpl.Title = id
	}
	if raw.Callout != nil {
		field := strings.TrimSpace(raw.Callout.Field)
		if field == "" {
			return Template{}, fmt.Errorf("templates: template %q (file %s) declares a callout without a field", id, source)
		}
		tpl.Callout = &Callout{Field: field, Label: strings.TrimSpace(raw.Callout.Label)}
	}
	if len(raw.Sections) == 0 {
		return Template{}, fmt.Errorf("templates: template %q (file %s) has no sections", id, source)
	}

	seen := make(map[string]struct{}, len(raw.Sections))
	for idx, section := range raw.Sections {
		title := strings.TrimSpace(section.Title)
		if title == "" {
			return Template{}, fmt.Errorf("templates: template %q (file %s) section %d has no title", id, source, idx)
		}
		sectionID := strings.TrimSpace(section.ID)
		if sectionID == "" {
			sectionID = title
		}
		if _, dup := seen[sectionID]; dup {
			return Template{}, fmt.Errorf("templates: template %q (file %s) repeats section %q", id, source, sectionID)
		}
		seen[sectionID] = struct{}{}

		fields := make([]string, 0, len(section.Fields))
		for fieldIdx, field := range section.Fields {
			// Keys keep inner full-width spaces; only the ends are trimmed.
			key := strings.TrimSpace(field)
			if key == "" {
				return Template{}, fmt.Errorf("templates: template %q (file %s) section %q has an empty field at index %d", id, source, sectionID, fieldIdx)
			}
			fields = append(fields, key)
		}
		tpl.Sections = append(tpl.Sections, Section{
			ID:        sectionID,
			Title:     title,
			Composite: strings.TrimSpace(section.Composite),
			Fields:    fields,
		})
	}
	return tpl, nil
}

func isConfigFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
