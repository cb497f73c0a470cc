package gotemplate

import (
	"strings"

	"github.com/flosch/pongo2/v6"
)

const (
	checkedGlyph   = "☑"
	uncheckedGlyph = "☐"
)

func registerDefaultFilters() {
	if !pongo2.FilterExists("trim") {
		_ = pongo2.RegisterFilter("trim", filterTrim)
	}
	if !pongo2.FilterExists("glyph") {
		_ = pongo2.RegisterFilter("glyph", filterGlyph)
	}
	if !pongo2.FilterExists("or_dash") {
		_ = pongo2.RegisterFilter("or_dash", filterOrDash)
	}
}

func filterTrim(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if in.Len() <= 0 {
		return pongo2.AsValue(""), nil
	}
	return pongo2.AsValue(strings.TrimSpace(in.String())), nil
}

// filterGlyph renders a boolean as a checkbox glyph.
func filterGlyph(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if in.IsTrue() {
		return pongo2.AsValue(checkedGlyph), nil
	}
	return pongo2.AsValue(uncheckedGlyph), nil
}

// filterOrDash substitutes "-" for blank values.
func filterOrDash(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if in.IsNil() || strings.TrimSpace(in.String()) == "" {
		return pongo2.AsValue("-"), nil
	}
	return in, nil
}
