package houseprint

import (
	"io/fs"

	"github.com/goliatone/go-houseprint/pkg/renderers/html"
	"github.com/goliatone/go-houseprint/pkg/templates"
)

// EmbeddedTemplates exposes the built-in HTML renderer templates so callers
// can reuse or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return html.TemplatesFS()
}

// TemplateDefinitions exposes the bundled print template documents (YAML).
func TemplateDefinitions() fs.FS {
	return templates.EmbeddedFS()
}

// AssetsFS exposes the print stylesheet and photo script so applications can
// serve them next to their own pages.
//
// Typical mount:
//
//	mux.Handle("/assets/",
//	  http.StripPrefix("/assets/",
//	    http.FileServerFS(houseprint.AssetsFS()),
//	  ),
//	)
func AssetsFS() fs.FS {
	return html.AssetsFS()
}
