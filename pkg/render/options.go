package render

import gotheme "github.com/goliatone/go-theme"

// RenderOptions describe per-call presentation settings. Renderers ignore the
// fields that do not apply to their medium.
type RenderOptions struct {
	// Theme carries the resolved badge palette. Nil means the bundled color
	// variant.
	Theme *gotheme.RendererConfig
	// Banner is an error message shown above the document, e.g. after a
	// failed load.
	Banner string
	// AutoPrint makes the HTML output open the browser print dialog on load.
	AutoPrint bool
	// Pretty enables terminal styling (lipgloss, glamour).
	Pretty bool
	// Width bounds terminal output. Zero lets the renderer choose.
	Width int
}
