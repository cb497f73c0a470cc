// Package text renders documents as a terminal preview. Styling is applied
// only when RenderOptions.Pretty is set, so the plain output is stable.
package text

import (
	"context"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/goliatone/go-houseprint/pkg/document"
	"github.com/goliatone/go-houseprint/pkg/render"
	"github.com/goliatone/go-houseprint/pkg/theme"
)

const (
	Name        = "text"
	ContentType = "text/plain; charset=utf-8"

	defaultWidth  = 80
	minLabelWidth = 12
)

type Option func(*Renderer)

// WithWidth sets the default output width used when RenderOptions.Width is
// zero.
func WithWidth(width int) Option {
	return func(r *Renderer) {
		if width > 0 {
			r.width = width
		}
	}
}

type Renderer struct {
	width int
}

var _ render.Renderer = (*Renderer)(nil)

func New(options ...Option) *Renderer {
	r := &Renderer{width: defaultWidth}
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

	width := options.Width
	if width <= 0 {
		width = r.width
	}
	s := newStyles(options.Pretty, theme.FromRendererConfig(options.Theme))

	var b strings.Builder
	if options.Banner != "" {
		b.WriteString(s.banner.Render("! " + options.Banner))
		b.WriteString("\n\n")
	}
	if doc.IsNotice() {
		b.WriteString(s.muted.Render(doc.Notice))
		b.WriteString("\n")
		return []byte(b.String()), nil
	}

	b.WriteString(s.title.Render(doc.Title))
	b.WriteString("\n")
	if h := doc.Header; h != nil {
		b.WriteString(s.muted.Render("物件ID") + " " + h.ID + "   ")
		b.WriteString(s.muted.Render("更新日") + " " + h.UpdatedAt + "   ")
		b.WriteString(s.muted.Render("状態") + " " + s.badge(h.Tag, h.Status))
		b.WriteString("\n")
	}
	if c := doc.Callout; c != nil {
		b.WriteString(s.callout.Render(c.Label + ": " + c.Value))
		b.WriteString("\n")
	}

	for _, section := range doc.Sections {
		b.WriteString("\n")
		b.WriteString(s.section.Render(sectionRule(section.Title, width)))
		b.WriteString("\n")

		labelWidth := minLabelWidth
		for _, row := range section.Rows {
			if w := lipgloss.Width(row.Label); w > labelWidth {
				labelWidth = w
			}
		}
		label := s.label.Width(labelWidth + 2)
		for _, row := range section.Rows {
			b.WriteString("  ")
			b.WriteString(label.Render(row.Label))
			b.WriteString(s.value(row))
			b.WriteString("\n")
			if row.Hint != "" {
				b.WriteString("  ")
				b.WriteString(label.Render(""))
				b.WriteString(s.muted.Render(row.Hint))
				b.WriteString("\n")
			}
		}
	}
	return []byte(b.String()), nil
}

func sectionRule(title string, width int) string {
	head := "── " + title + " "
	fill := width - lipgloss.Width(head)
	if fill < 2 {
		fill = 2
	}
	return head + strings.Repeat("─", fill)
}

type styles struct {
	palette theme.Palette
	lg      *lipgloss.Renderer
	pretty  bool

	banner  lipgloss.Style
	title   lipgloss.Style
	muted   lipgloss.Style
	callout lipgloss.Style
	section lipgloss.Style
	label   lipgloss.Style
}

func newStyles(pretty bool, palette theme.Palette) styles {
	lg := lipgloss.NewRenderer(io.Discard)
	if pretty {
		lg.SetColorProfile(termenv.TrueColor)
	} else {
		lg.SetColorProfile(termenv.Ascii)
	}

	s := styles{palette: palette, lg: lg, pretty: pretty}
	s.banner = lg.NewStyle().Foreground(lipgloss.Color(palette.Token("accent"))).Bold(true)
	s.title = lg.NewStyle().Bold(true)
	s.muted = lg.NewStyle().Foreground(lipgloss.Color(palette.Token("muted")))
	s.callout = lg.NewStyle().Foreground(lipgloss.Color(palette.Token("accent"))).Bold(true)
	s.section = lg.NewStyle().Foreground(lipgloss.Color(palette.Token("rule"))).Bold(true)
	s.label = lg.NewStyle().Foreground(lipgloss.Color(palette.Token("muted")))
	return s
}

// badge brackets the status in plain mode and paints it with the palette
// colours otherwise.
func (s styles) badge(tag, text string) string {
	if !s.pretty {
		return "[" + text + "]"
	}
	badge := s.palette.Badge(tag)
	return s.lg.NewStyle().
		Background(lipgloss.Color(badge.Background)).
		Foreground(lipgloss.Color(badge.Foreground)).
		Padding(0, 1).
		Render(text)
}

func (s styles) value(row document.Row) string {
	switch row.Kind {
	case document.KindStatus:
		return s.badge(row.Tag, row.Display)
	case document.KindPhoto:
		if row.HasImage() {
			return row.Value
		}
		return s.muted.Render(row.Display)
	default:
		return row.Display
	}
}
