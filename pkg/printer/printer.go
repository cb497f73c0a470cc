// Package printer turns rendered HTML documents into print output: the HTML
// page itself (printed from the browser dialog) or a PDF produced by
// headless Chromium.
package printer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ErrEmptyDocument is returned when there is nothing to print.
var ErrEmptyDocument = errors.New("printer: empty document")

// Printer writes a rendered HTML document to w in its output format.
type Printer interface {
	Name() string
	Extension() string
	Print(ctx context.Context, html []byte, w io.Writer) error
}

// HTMLPrinter writes the HTML verbatim. The document opens the print dialog
// itself when rendered with auto print.
type HTMLPrinter struct{}

var _ Printer = HTMLPrinter{}

func (HTMLPrinter) Name() string {
	return "html"
}

func (HTMLPrinter) Extension() string {
	return ".html"
}

func (HTMLPrinter) Print(ctx context.Context, html []byte, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(bytes.TrimSpace(html)) == 0 {
		return ErrEmptyDocument
	}
	if _, err := w.Write(html); err != nil {
		return fmt.Errorf("printer: write html: %w", err)
	}
	return nil
}

// PrintFile prints html into path, creating parent directories. A path
// without an extension gets the printer's extension. The final path is
// returned.
func PrintFile(ctx context.Context, p Printer, html []byte, path string) (string, error) {
	if p == nil {
		return "", errors.New("printer: printer is nil")
	}
	if path == "" {
		return "", errors.New("printer: output path is required")
	}
	if filepath.Ext(path) == "" {
		path += p.Extension()
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("printer: create output dir: %w", err)
		}
	}

	var buf bytes.Buffer
	if err := p.Print(ctx, html, &buf); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("printer: write %s: %w", path, err)
	}
	return path, nil
}
