package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"time"

	gotheme "github.com/goliatone/go-theme"
	"go.uber.org/zap"

	"github.com/goliatone/go-houseprint/pkg/document"
	"github.com/goliatone/go-houseprint/pkg/loader"
	"github.com/goliatone/go-houseprint/pkg/printer"
	"github.com/goliatone/go-houseprint/pkg/record"
	"github.com/goliatone/go-houseprint/pkg/render"
	"github.com/goliatone/go-houseprint/pkg/renderers/html"
	"github.com/goliatone/go-houseprint/pkg/renderers/markdown"
	"github.com/goliatone/go-houseprint/pkg/renderers/text"
	"github.com/goliatone/go-houseprint/pkg/session"
	"github.com/goliatone/go-houseprint/pkg/templates"
	"github.com/goliatone/go-houseprint/pkg/theme"
)

const defaultRendererName = html.Name

// RecordLoader fetches the record list for a source.
type RecordLoader interface {
	Load(ctx context.Context, src loader.Source) (*record.Store, error)
}

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom record loader.
func WithLoader(l RecordLoader) Option {
	return func(o *Orchestrator) {
		o.loader = l
	}
}

// WithTemplates injects the template registry. The default is the embedded
// template set.
func WithTemplates(reg *templates.Registry) Option {
	return func(o *Orchestrator) {
		o.templates = reg
	}
}

// WithLocation sets the zone used to print update dates.
func WithLocation(loc *time.Location) Option {
	return func(o *Orchestrator) {
		o.location = loc
	}
}

// WithRules overrides the field display rules.
func WithRules(rules document.Rules) Option {
	return func(o *Orchestrator) {
		o.rules = &rules
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithThemeSelector resolves badge palettes through selector instead of the
// bundled manifest.
func WithThemeSelector(selector gotheme.ThemeSelector) Option {
	return func(o *Orchestrator) {
		o.selector = selector
	}
}

// WithThemeVariant sets the default palette variant (color, mono).
func WithThemeVariant(variant string) Option {
	return func(o *Orchestrator) {
		o.themeVariant = variant
	}
}

// WithLogger sets the logger handed to the loader and sessions.
func WithLogger(logger *zap.Logger) Option {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Orchestrator coordinates the full pipeline from record source to rendered
// output. It applies sensible defaults (embedded templates, html/text/markdown
// renderers, bundled theme) while remaining open to dependency injection.
type Orchestrator struct {
	loader          RecordLoader
	templates       *templates.Registry
	rules           *document.Rules
	location        *time.Location
	builder         *document.Builder
	registry        *render.Registry
	defaultRenderer string
	selector        gotheme.ThemeSelector
	themeVariant    string
	logger          *zap.Logger
	initialiseErr   error
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
		themeVariant:    theme.VariantColor,
		logger:          zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Err reports a construction failure (e.g. an invalid template set).
func (o *Orchestrator) Err() error {
	return o.initialiseErr
}

// Builder returns the document builder.
func (o *Orchestrator) Builder() *document.Builder {
	return o.builder
}

// Registry returns the renderer registry.
func (o *Orchestrator) Registry() *render.Registry {
	return o.registry
}

// NewSession returns a session over the configured builder.
func (o *Orchestrator) NewSession(opts ...session.Option) *session.Session {
	base := []session.Option{session.WithLogger(o.logger)}
	return session.New(o.builder, append(base, opts...)...)
}

// Open creates a session and loads src into it. A load failure is returned
// together with a usable session holding an empty store, so callers can show
// the error as a banner and carry on.
func (o *Orchestrator) Open(ctx context.Context, src loader.Source, opts ...session.Option) (*session.Session, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := o.initialiseErr; err != nil {
		return nil, err
	}

	sess := o.NewSession(opts...)
	sess.BeginLoad()
	store, err := o.loader.Load(ctx, src)
	sess.FinishLoad(store, err)
	if err != nil {
		return sess, fmt.Errorf("orchestrator: load records: %w", err)
	}
	return sess, nil
}

// Request describes one render of the session's current document.
type Request struct {
	// Renderer names the renderer to use. If empty, the orchestrator falls back
	// to the configured default renderer.
	Renderer string

	// ThemeName and ThemeVariant select the badge palette. Empty values use
	// the bundled theme and the configured variant.
	ThemeName    string
	ThemeVariant string

	// RenderOptions carries per-request presentation settings. A nil Theme
	// is filled from ThemeName/ThemeVariant.
	RenderOptions render.RenderOptions
}

// Result is a rendered document.
type Result struct {
	Document    document.Document
	Output      []byte
	ContentType string
}

// Generate renders the current document of sess.
func (o *Orchestrator) Generate(ctx context.Context, sess *session.Session, req Request) (Result, error) {
	if ctx == nil {
		return Result{}, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if err := o.initialiseErr; err != nil {
		return Result{}, err
	}
	if sess == nil {
		return Result{}, errors.New("orchestrator: session is required")
	}
	return o.RenderDocument(ctx, sess.Document(), req)
}

// RenderDocument renders doc with the requested renderer.
func (o *Orchestrator) RenderDocument(ctx context.Context, doc document.Document, req Request) (Result, error) {
	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return Result{}, err
	}

	opts := req.RenderOptions
	if opts.Theme == nil {
		cfg, err := o.ThemeConfig(req.ThemeName, req.ThemeVariant)
		if err != nil {
			return Result{}, err
		}
		opts.Theme = cfg
	}

	output, err := renderer.Render(ctx, doc, opts)
	if err != nil {
		return Result{}, fmt.Errorf("orchestrator: render output: %w", err)
	}
	return Result{Document: doc, Output: output, ContentType: renderer.ContentType()}, nil
}

// Print renders the current document of sess as HTML and hands it to p.
func (o *Orchestrator) Print(ctx context.Context, sess *session.Session, p printer.Printer, req Request, path string) (string, error) {
	if p == nil {
		p = printer.HTMLPrinter{}
	}
	req.Renderer = html.Name
	result, err := o.Generate(ctx, sess, req)
	if err != nil {
		return "", err
	}
	if result.Document.IsNotice() {
		return "", fmt.Errorf("orchestrator: nothing to print: %s", result.Document.Notice)
	}
	out, err := printer.PrintFile(ctx, p, result.Output, path)
	if err != nil {
		return "", fmt.Errorf("orchestrator: print: %w", err)
	}
	o.logger.Info("document printed",
		zap.String("printer", p.Name()),
		zap.String("template", result.Document.TemplateID),
		zap.String("path", out),
	)
	return out, nil
}

// ThemeConfig resolves a palette into a renderer config.
func (o *Orchestrator) ThemeConfig(name, variant string) (*gotheme.RendererConfig, error) {
	if name == "" {
		name = theme.DefaultTheme
	}
	if variant == "" {
		variant = o.themeVariant
	}
	palette, err := theme.Load(o.selector, name, variant)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: resolve theme: %w", err)
	}
	return palette.RendererConfig(), nil
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	renderer, err := o.registry.Get(target)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: renderer %q: %w", target, err)
	}
	return renderer, nil
}

func (o *Orchestrator) applyDefaults() {
	if o.loader == nil {
		o.loader = loader.New(loader.WithLogger(o.logger))
	}
	if o.templates == nil {
		reg, err := templates.Load()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: load templates: %w", err)
			return
		}
		o.templates = reg
	}

	builderOpts := []document.Option{document.WithLocation(o.location)}
	if o.rules != nil {
		builderOpts = append(builderOpts, document.WithRules(*o.rules))
	}
	o.builder = document.NewBuilder(o.templates, builderOpts...)
	if err := o.builder.Validate(); err != nil {
		o.initialiseErr = fmt.Errorf("orchestrator: validate templates: %w", err)
		return
	}

	if o.registry == nil {
		htmlRenderer, err := html.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default renderer: %w", err)
			return
		}
		registry, err := render.NewRegistry(htmlRenderer, text.New(), markdown.New())
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: renderer registry: %w", err)
			return
		}
		o.registry = registry
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}

	if o.selector == nil {
		selector, err := theme.NewSelector()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: theme selector: %w", err)
			return
		}
		o.selector = selector
	}
}
