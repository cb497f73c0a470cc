package templates

import (
	"embed"
	"io/fs"
)

//go:embed defaults/*.yaml
var embeddedDefaults embed.FS

// EmbeddedFS returns the bundled template documents.
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(embeddedDefaults, "defaults")
	if err != nil {
		panic(err)
	}
	return sub
}

// Default parses the bundled templates. The embedded documents are covered by
// tests, so a failure here is a build defect.
func Default() *Registry {
	return MustLoadFS(EmbeddedFS())
}

// Load returns the bundled templates overlaid with the documents found in
// dirs. Empty entries are skipped.
func Load(dirs ...fs.FS) (*Registry, error) {
	reg, err := LoadFS(EmbeddedFS())
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if dir == nil {
			continue
		}
		extra, err := LoadFS(dir)
		if err != nil {
			return nil, err
		}
		reg = reg.Overlay(extra)
	}
	return reg, nil
}
