package render

import (
	"context"

	"github.com/goliatone/go-houseprint/pkg/document"
)

// Renderer converts a document tree into bytes (HTML, terminal text,
// Markdown).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, doc document.Document, options RenderOptions) ([]byte, error)
}
