package printer

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"go.uber.org/zap"
)

const defaultPDFTimeout = 60 * time.Second

// PDFOption configures a PDFPrinter.
type PDFOption func(*PDFPrinter)

// WithBrowserBin sets the Chromium binary. The default lets the launcher
// find (or download) a browser.
func WithBrowserBin(bin string) PDFOption {
	return func(p *PDFPrinter) {
		p.bin = strings.TrimSpace(bin)
	}
}

// WithControlURL connects to an already running browser instead of
// launching one.
func WithControlURL(url string) PDFOption {
	return func(p *PDFPrinter) {
		p.controlURL = strings.TrimSpace(url)
	}
}

// WithPDFTimeout bounds a single print. Zero disables the bound.
func WithPDFTimeout(timeout time.Duration) PDFOption {
	return func(p *PDFPrinter) {
		p.timeout = timeout
	}
}

// WithLogger sets the logger used for browser lifecycle events.
func WithLogger(logger *zap.Logger) PDFOption {
	return func(p *PDFPrinter) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// PDFPrinter renders HTML into an A4 PDF with headless Chromium. The page
// size comes from the document's @page rule.
type PDFPrinter struct {
	bin        string
	controlURL string
	timeout    time.Duration
	logger     *zap.Logger
}

var _ Printer = (*PDFPrinter)(nil)

func NewPDFPrinter(opts ...PDFOption) *PDFPrinter {
	p := &PDFPrinter{timeout: defaultPDFTimeout, logger: zap.NewNop()}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
	return p
}

func (p *PDFPrinter) Name() string {
	return "pdf"
}

func (p *PDFPrinter) Extension() string {
	return ".pdf"
}

func (p *PDFPrinter) Print(ctx context.Context, html []byte, w io.Writer) error {
	if len(bytes.TrimSpace(html)) == 0 {
		return ErrEmptyDocument
	}
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	controlURL := p.controlURL
	if controlURL == "" {
		l := launcher.New().Context(ctx).Headless(true)
		if p.bin != "" {
			l = l.Bin(p.bin)
		}
		p.logger.Debug("launching browser", zap.String("bin", p.bin))
		url, err := l.Launch()
		if err != nil {
			return fmt.Errorf("printer: launch browser: %w", err)
		}
		defer l.Cleanup()
		controlURL = url
	}

	browser := rod.New().ControlURL(controlURL).Context(ctx)
	if err := browser.Connect(); err != nil {
		return fmt.Errorf("printer: connect to browser: %w", err)
	}
	defer func() {
		if err := browser.Close(); err != nil {
			p.logger.Debug("close browser", zap.Error(err))
		}
	}()

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return fmt.Errorf("printer: open page: %w", err)
	}
	if err := page.SetDocumentContent(string(html)); err != nil {
		return fmt.Errorf("printer: load document: %w", err)
	}
	if err := page.WaitLoad(); err != nil {
		return fmt.Errorf("printer: wait for load: %w", err)
	}

	stream, err := page.PDF(&proto.PagePrintToPDF{
		PrintBackground:   true,
		PreferCSSPageSize: true,
	})
	if err != nil {
		return fmt.Errorf("printer: print pdf: %w", err)
	}
	n, err := io.Copy(w, stream)
	if err != nil {
		return fmt.Errorf("printer: write pdf: %w", err)
	}
	p.logger.Info("pdf printed", zap.Int64("bytes", n))
	return nil
}
