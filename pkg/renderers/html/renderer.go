// Package html renders documents as printable A4 HTML pages.
package html

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-houseprint/pkg/document"
	"github.com/goliatone/go-houseprint/pkg/render"
	rendertemplate "github.com/goliatone/go-houseprint/pkg/render/template"
	gotemplate "github.com/goliatone/go-houseprint/pkg/render/template/gotemplate"
	"github.com/goliatone/go-houseprint/pkg/status"
	"github.com/goliatone/go-houseprint/pkg/theme"
)

const (
	Name        = "html"
	ContentType = "text/html; charset=utf-8"

	documentTemplate = "templates/document.tmpl"
)

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	policy           *bluemonday.Policy
	stylesheet       string
	hasStylesheet    bool
}

// WithTemplatesFS supplies an alternate template bundle. It must contain
// templates/document.tmpl.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithPolicy replaces the photo sanitizer.
func WithPolicy(policy *bluemonday.Policy) Option {
	return func(cfg *config) {
		if policy != nil {
			cfg.policy = policy
		}
	}
}

// WithStylesheet replaces the embedded print stylesheet.
func WithStylesheet(css string) Option {
	return func(cfg *config) {
		cfg.stylesheet = css
		cfg.hasStylesheet = true
	}
}

type Renderer struct {
	templates  rendertemplate.TemplateRenderer
	policy     *bluemonday.Policy
	stylesheet string
	script     string
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the HTML renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}
	if cfg.policy == nil {
		cfg.policy = PhotoPolicy()
	}
	if !cfg.hasStylesheet {
		cfg.stylesheet = readAsset(StylesheetName)
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("html renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{
		templates:  renderer,
		policy:     cfg.policy,
		stylesheet: cfg.stylesheet,
		script:     readAsset(PhotoScriptName),
	}, nil
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return ContentType
}

func (r *Renderer) Render(ctx context.Context, doc document.Document, options render.RenderOptions) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("html renderer: template renderer is nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	palette := theme.FromRendererConfig(options.Theme)
	page := pageView{
		TemplateID: doc.TemplateID,
		Title:      doc.Title,
		Notice:     doc.Notice,
		Banner:     options.Banner,
		Header:     doc.Header,
		Callout:    doc.Callout,
		Sections:   sectionViews(r.policy, doc.Sections),
		Stylesheet: r.stylesheet,
		ThemeVars:  palette.CSSVarsStyle(),
		BadgeTags:  status.Tags(),
		Script:     r.script,
		AutoPrint:  options.AutoPrint,
	}

	result, err := r.templates.RenderTemplate(documentTemplate, map[string]any{
		"page": page,
	})
	if err != nil {
		return nil, fmt.Errorf("html renderer: render template: %w", err)
	}
	return []byte(result), nil
}
