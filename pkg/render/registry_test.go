package render

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/goliatone/go-houseprint/pkg/document"
)

type stubRenderer struct {
	name string
	err  error
}

func (s stubRenderer) Name() string        { return s.name }
func (s stubRenderer) ContentType() string { return "text/plain" }
func (s stubRenderer) Render(_ context.Context, doc document.Document, opts RenderOptions) ([]byte, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []byte(s.name + ":" + doc.Title + ":" + opts.Banner), nil
}

func TestRegistry(t *testing.T) {
	reg, err := NewRegistry(stubRenderer{name: "text"}, stubRenderer{name: "html"})
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	if got := strings.Join(reg.List(), ","); got != "html,text" {
		t.Fatalf("List = %s", got)
	}
	if err := reg.Register(stubRenderer{name: "text"}); err == nil {
		t.Fatalf("expected duplicate error")
	}
	if err := reg.Register(stubRenderer{}); err == nil {
		t.Fatalf("expected empty name error")
	}
	if err := reg.Register(nil); err == nil {
		t.Fatalf("expected nil renderer error")
	}
	if _, err := reg.Get("pdf"); err == nil || !strings.Contains(err.Error(), "[html text]") {
		t.Fatalf("expected not found error listing renderers, got %v", err)
	}

	out, contentType, err := reg.Render(context.Background(), "text", document.Document{Title: "T"}, RenderOptions{Banner: "b"})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if string(out) != "text:T:b" || contentType != "text/plain" {
		t.Fatalf("unexpected output %q %q", out, contentType)
	}
}

func TestRegistry_RenderWrapsErrors(t *testing.T) {
	boom := errors.New("boom")
	reg, _ := NewRegistry(stubRenderer{name: "bad", err: boom})
	_, _, err := reg.Render(context.Background(), "bad", document.Document{}, RenderOptions{})
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped error, got %v", err)
	}
}
