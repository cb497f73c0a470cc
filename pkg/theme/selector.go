package theme

import (
	"fmt"
	"sort"
	"strings"

	gotheme "github.com/goliatone/go-theme"
)

// Selector resolves a theme and variant name to a go-theme selection.
type Selector struct {
	provider       gotheme.ThemeProvider
	manifests      map[string]*gotheme.Manifest
	defaultTheme   string
	defaultVariant string
}

var _ gotheme.ThemeSelector = (*Selector)(nil)

// NewSelector registers manifests (DefaultManifest when none are given) and
// returns a selector defaulting to the first manifest and the color variant.
func NewSelector(manifests ...*gotheme.Manifest) (*Selector, error) {
	if len(manifests) == 0 {
		manifests = []*gotheme.Manifest{DefaultManifest()}
	}
	registry := gotheme.NewRegistry()
	s := &Selector{
		provider:       registry,
		manifests:      make(map[string]*gotheme.Manifest, len(manifests)),
		defaultVariant: VariantColor,
	}
	for _, manifest := range manifests {
		if manifest == nil {
			continue
		}
		if err := registry.Register(manifest); err != nil {
			return nil, fmt.Errorf("theme: register %q: %w", manifest.Name, err)
		}
		if s.defaultTheme == "" {
			s.defaultTheme = manifest.Name
		}
		s.manifests[manifest.Name] = manifest
	}
	if s.defaultTheme == "" {
		return nil, fmt.Errorf("theme: no manifests registered")
	}
	return s, nil
}

// Provider exposes the go-theme registry holding the manifests.
func (s *Selector) Provider() gotheme.ThemeProvider {
	return s.provider
}

// Select implements gotheme.ThemeSelector. Empty names pick the defaults.
func (s *Selector) Select(name, variant string, _ ...gotheme.QueryOption) (*gotheme.Selection, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = s.defaultTheme
	}
	variant = strings.TrimSpace(variant)
	if variant == "" {
		variant = s.defaultVariant
	}
	manifest, ok := s.manifests[name]
	if !ok {
		return nil, fmt.Errorf("theme: unknown theme %q", name)
	}
	if _, ok := manifest.Variants[variant]; !ok {
		return nil, fmt.Errorf("theme: theme %q has no variant %q (available: %s)", name, variant, strings.Join(variantNames(manifest), ", "))
	}
	return &gotheme.Selection{Theme: name, Variant: variant, Manifest: manifest}, nil
}

func variantNames(manifest *gotheme.Manifest) []string {
	names := make([]string, 0, len(manifest.Variants))
	for name := range manifest.Variants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
