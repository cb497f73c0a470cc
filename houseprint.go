// Package houseprint renders printable property sheets from a spreadsheet
// backed record list. The root package re-exports the orchestrator entry
// points for callers that want a single import.
package houseprint

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-houseprint/pkg/filter"
	"github.com/goliatone/go-houseprint/pkg/loader"
	"github.com/goliatone/go-houseprint/pkg/orchestrator"
	"github.com/goliatone/go-houseprint/pkg/render"
	"github.com/goliatone/go-houseprint/pkg/session"
)

// Request aliases orchestrator.Request.
type Request = orchestrator.Request

// RenderOptions aliases render.RenderOptions.
type RenderOptions = render.RenderOptions

// Source aliases loader.Source.
type Source = loader.Source

// Session aliases session.Session.
type Session = session.Session

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// NewLoader constructs a record loader.
func NewLoader(options ...loader.Option) *loader.Loader {
	return loader.New(options...)
}

// Query selects the record and template GenerateHTML renders.
type Query struct {
	Filter     filter.State
	RecordID   string
	TemplateID string
}

// GenerateHTML loads source, narrows it with q and renders the selected
// record as HTML. It is the simplest entry point for callers that just want a
// printable page.
func GenerateHTML(ctx context.Context, source Source, q Query, options ...orchestrator.Option) ([]byte, error) {
	orch := orchestrator.New(options...)
	sess, err := orch.Open(ctx, source)
	if err != nil {
		return nil, err
	}
	if err := Apply(sess, q); err != nil {
		return nil, err
	}
	result, err := orch.Generate(ctx, sess, Request{Renderer: "html"})
	if err != nil {
		return nil, err
	}
	return result.Output, nil
}

// Apply sets the filter, template and record of q on sess. An empty RecordID
// keeps the reconciled selection.
func Apply(sess *Session, q Query) error {
	if sess == nil {
		return errors.New("houseprint: session is required")
	}
	sess.SetFilter(q.Filter)
	if q.TemplateID != "" {
		sess.SetTemplate(q.TemplateID)
	}
	if q.RecordID != "" {
		if err := sess.Select(q.RecordID); err != nil {
			return fmt.Errorf("houseprint: select %q: %w", q.RecordID, err)
		}
	}
	return nil
}
