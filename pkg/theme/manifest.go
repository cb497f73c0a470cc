// Package theme provides the badge palette shared by the HTML and terminal
// renderers. Palettes are go-theme manifests; the "mono" variant targets
// black and white printers.
package theme

import (
	gotheme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-houseprint/pkg/status"
)

const (
	DefaultTheme = "houseprint"
	VariantColor = "color"
	VariantMono  = "mono"
)

// badgeColors holds background and foreground per status tag.
var badgeColors = map[string][2]string{
	status.TagOrange:   {"#ffd8a8", "#7a3e00"},
	status.TagYellow:   {"#fff3a3", "#6b5900"},
	status.TagLime:     {"#dff5a1", "#3f5a00"},
	status.TagGreen:    {"#b9e6c1", "#14532d"},
	status.TagPink:     {"#ffd1e3", "#831843"},
	status.TagPurple:   {"#e4d4ff", "#4c1d95"},
	status.TagCyan:     {"#c4f1f9", "#0e4f5c"},
	status.TagBlue:     {"#cfe0ff", "#1e3a8a"},
	status.TagBeige:    {"#f1e4cc", "#5c4326"},
	status.TagLavender: {"#ece4fb", "#4b3a73"},
	status.TagWhite:    {"#ffffff", "#222222"},
	status.TagGray:     {"#d4d4d4", "#262626"},
	status.TagBlack:    {"#222222", "#ffffff"},
}

// monoBadges maps every tag onto a printer friendly shade.
var monoBadges = map[string][2]string{
	status.TagBlack: {"#000000", "#ffffff"},
	status.TagGray:  {"#bdbdbd", "#000000"},
}

func badgeKey(tag, part string) string {
	return "badge-" + tag + "-" + part
}

// DefaultManifest returns the bundled manifest with its color and mono
// variants.
func DefaultManifest() *gotheme.Manifest {
	tokens := map[string]string{
		"ink":          "#1a1a1a",
		"paper":        "#ffffff",
		"rule":         "#9e9e9e",
		"muted":        "#666666",
		"accent":       "#c62828",
		"accent-paper": "#fff5f5",
		"header-paper": "#f5f5f5",
	}
	for tag, colors := range badgeColors {
		tokens[badgeKey(tag, "bg")] = colors[0]
		tokens[badgeKey(tag, "fg")] = colors[1]
		tokens[badgeKey(tag, "border")] = colors[1]
	}

	mono := map[string]string{
		"accent":       "#000000",
		"accent-paper": "#ffffff",
		"header-paper": "#ffffff",
	}
	for tag := range badgeColors {
		colors, ok := monoBadges[tag]
		if !ok {
			colors = [2]string{"#ffffff", "#000000"}
		}
		mono[badgeKey(tag, "bg")] = colors[0]
		mono[badgeKey(tag, "fg")] = colors[1]
		mono[badgeKey(tag, "border")] = "#000000"
	}

	return &gotheme.Manifest{
		Name:    DefaultTheme,
		Version: "1.0.0",
		Tokens:  tokens,
		Variants: map[string]gotheme.Variant{
			VariantColor: {Tokens: map[string]string{}},
			VariantMono:  {Tokens: mono},
		},
	}
}
