package theme

import (
	"sort"
	"strings"

	gotheme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-houseprint/pkg/status"
)

// Palette is a resolved token set.
type Palette struct {
	Theme   string
	Variant string
	Tokens  map[string]string
}

// Badge is the colour triple for one status tag.
type Badge struct {
	Background string
	Foreground string
	Border     string
}

// Resolve merges the manifest tokens with the selected variant overrides.
func Resolve(selection *gotheme.Selection) Palette {
	if selection == nil || selection.Manifest == nil {
		return Palette{Tokens: map[string]string{}}
	}
	tokens := make(map[string]string, len(selection.Manifest.Tokens))
	for key, value := range selection.Manifest.Tokens {
		tokens[key] = value
	}
	if variant, ok := selection.Manifest.Variants[selection.Variant]; ok {
		for key, value := range variant.Tokens {
			tokens[key] = value
		}
	}
	return Palette{Theme: selection.Theme, Variant: selection.Variant, Tokens: tokens}
}

// Load selects name/variant through selector and resolves the palette.
func Load(selector gotheme.ThemeSelector, name, variant string) (Palette, error) {
	selection, err := selector.Select(name, variant)
	if err != nil {
		return Palette{}, err
	}
	return Resolve(selection), nil
}

// Default resolves the bundled manifest for variant, falling back to the
// color variant when variant is unknown.
func Default(variant string) Palette {
	selector, err := NewSelector()
	if err != nil {
		return Resolve(&gotheme.Selection{Theme: DefaultTheme, Variant: VariantColor, Manifest: DefaultManifest()})
	}
	palette, err := Load(selector, DefaultTheme, variant)
	if err != nil {
		palette, _ = Load(selector, DefaultTheme, VariantColor)
	}
	return palette
}

// Token returns the value stored under key, or "".
func (p Palette) Token(key string) string {
	return p.Tokens[key]
}

// Badge returns the colours for a status tag. Unknown tags use white.
func (p Palette) Badge(tag string) Badge {
	if _, ok := p.Tokens[badgeKey(tag, "bg")]; !ok {
		tag = status.TagWhite
	}
	return Badge{
		Background: p.Tokens[badgeKey(tag, "bg")],
		Foreground: p.Tokens[badgeKey(tag, "fg")],
		Border:     p.Tokens[badgeKey(tag, "border")],
	}
}

// CSSVars maps every token to a CSS custom property.
func (p Palette) CSSVars() map[string]string {
	vars := make(map[string]string, len(p.Tokens))
	for key, value := range p.Tokens {
		vars["--"+key] = value
	}
	return vars
}

// CSSVarsStyle renders the custom properties as a :root rule with sorted
// declarations.
func (p Palette) CSSVarsStyle() string {
	vars := p.CSSVars()
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, key := range keys {
		b.WriteString("  ")
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(vars[key])
		b.WriteString(";\n")
	}
	b.WriteString("}\n")
	return b.String()
}

// RendererConfig converts the palette into a go-theme renderer config.
func (p Palette) RendererConfig() *gotheme.RendererConfig {
	tokens := make(map[string]string, len(p.Tokens))
	for key, value := range p.Tokens {
		tokens[key] = value
	}
	return &gotheme.RendererConfig{
		Theme:   p.Theme,
		Variant: p.Variant,
		Tokens:  tokens,
		CSSVars: p.CSSVars(),
	}
}

// FromRendererConfig rebuilds a palette from a renderer config.
func FromRendererConfig(cfg *gotheme.RendererConfig) Palette {
	if cfg == nil {
		return Default(VariantColor)
	}
	tokens := make(map[string]string, len(cfg.Tokens))
	for key, value := range cfg.Tokens {
		tokens[key] = value
	}
	return Palette{Theme: cfg.Theme, Variant: cfg.Variant, Tokens: tokens}
}
