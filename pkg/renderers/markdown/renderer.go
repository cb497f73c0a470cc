// Package markdown renders documents as Markdown, one table per section.
// With RenderOptions.Pretty the Markdown is rendered for the terminal through
// glamour.
package markdown

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/goliatone/go-houseprint/pkg/document"
	"github.com/goliatone/go-houseprint/pkg/render"
)

const (
	Name        = "markdown"
	ContentType = "text/markdown; charset=utf-8"

	defaultWrap = 80
)

type Option func(*Renderer)

// WithStyle selects a glamour style ("dark", "light", "notty", ...) for
// pretty output. The default follows the terminal background.
func WithStyle(style string) Option {
	return func(r *Renderer) {
		r.style = strings.TrimSpace(style)
	}
}

type Renderer struct {
	style string
}

var _ render.Renderer = (*Renderer)(nil)

func New(options ...Option) *Renderer {
	r := &Renderer{}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return ContentType
}

func (r *Renderer) Render(ctx context.Context, doc document.Document, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	source := Markdown(doc, options.Banner)
	if !options.Pretty {
		return []byte(source), nil
	}

	wrap := options.Width
	if wrap <= 0 {
		wrap = defaultWrap
	}
	styleOpt := glamour.WithAutoStyle()
	if r.style != "" {
		styleOpt = glamour.WithStandardStyle(r.style)
	}
	term, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(wrap))
	if err != nil {
		return nil, fmt.Errorf("markdown renderer: configure glamour: %w", err)
	}
	out, err := term.Render(source)
	if err != nil {
		return nil, fmt.Errorf("markdown renderer: render: %w", err)
	}
	return []byte(out), nil
}

// Markdown returns the Markdown source for doc. A non-empty banner is
// printed as a quote above the document.
func Markdown(doc document.Document, banner string) string {
	var b strings.Builder
	if banner != "" {
		fmt.Fprintf(&b, "> **%s**\n\n", escapeInline(banner))
	}
	if doc.IsNotice() {
		fmt.Fprintf(&b, "_%s_\n", escapeInline(doc.Notice))
		return b.String()
	}

	fmt.Fprintf(&b, "# %s\n\n", escapeInline(doc.Title))
	if h := doc.Header; h != nil {
		fmt.Fprintf(&b, "**物件ID** %s ／ **更新日** %s ／ **状態** %s\n\n",
			escapeInline(h.ID), escapeInline(h.UpdatedAt), code(h.Status))
	}
	if c := doc.Callout; c != nil {
		fmt.Fprintf(&b, "> **%s**: %s\n\n", escapeInline(c.Label), escapeInline(c.Value))
	}

	for _, section := range doc.Sections {
		fmt.Fprintf(&b, "## %s\n\n", escapeInline(section.Title))
		b.WriteString("| 項目 | 内容 |\n")
		b.WriteString("| --- | --- |\n")
		for _, row := range section.Rows {
			fmt.Fprintf(&b, "| %s | %s |\n", escapeCell(row.Label), cell(row))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func cell(row document.Row) string {
	switch row.Kind {
	case document.KindPhoto:
		if !row.HasImage() {
			return escapeCell(row.Display)
		}
		return fmt.Sprintf("[%s](<%s>) %s", escapeCell(row.Display), row.Value, escapeCell(row.Hint))
	case document.KindStatus:
		return code(row.Display)
	default:
		return escapeCell(row.Display)
	}
}

func code(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	return "`" + strings.ReplaceAll(s, "`", "'") + "`"
}

var inlineEscaper = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"`", "\\`",
	"[", `\[`,
	"]", `\]`,
	"<", "&lt;",
	">", "&gt;",
)

func escapeInline(s string) string {
	return inlineEscaper.Replace(strings.TrimSpace(s))
}

func escapeCell(s string) string {
	s = escapeInline(s)
	s = strings.ReplaceAll(s, "|", `\|`)
	s = strings.ReplaceAll(s, "\r\n", "<br>")
	return strings.ReplaceAll(s, "\n", "<br>")
}
