package session_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/goliatone/go-houseprint/pkg/document"
	"github.com/goliatone/go-houseprint/pkg/filter"
	"github.com/goliatone/go-houseprint/pkg/record"
	"github.com/goliatone/go-houseprint/pkg/selection"
	"github.com/goliatone/go-houseprint/pkg/session"
	"github.com/goliatone/go-houseprint/pkg/templates"
)

func scenarioStore() *record.Store {
	return record.NewStore([]record.Record{
		{"house_id": "H1", "状態": "現在居住", "所属する地区": "A", "届出者　氏名": "田中太郎"},
		{"house_id": "H2", "状態": "完全空き家", "所属する地区": "B"},
	})
}

func newSession(t *testing.T, opts ...session.Option) *session.Session {
	t.Helper()
	builder := document.NewBuilder(templates.Default())
	return session.New(builder, append([]session.Option{session.WithStore(scenarioStore())}, opts...)...)
}

func subsetIDs(s *session.Session) []string {
	var out []string
	for _, rec := range s.Subset() {
		out = append(out, rec.ID())
	}
	return out
}

func TestSession_EndToEndScenario(t *testing.T) {
	s := newSession(t)
	if got := s.SelectedID(); got != "H1" {
		t.Fatalf("initial selection = %q, want H1", got)
	}

	s.SetDistrict("A")
	if diff := cmp.Diff([]string{"H1"}, subsetIDs(s)); diff != "" {
		t.Fatalf("district A subset (-want +got):\n%s", diff)
	}

	s.Reset()
	s.SetQuery("田中")
	if diff := cmp.Diff([]string{"H1"}, subsetIDs(s)); diff != "" {
		t.Fatalf("query subset (-want +got):\n%s", diff)
	}

	s.Reset()
	s.SetStatus("完全空き家")
	if diff := cmp.Diff([]string{"H2"}, subsetIDs(s)); diff != "" {
		t.Fatalf("status subset (-want +got):\n%s", diff)
	}

	s.Reset()
	if err := s.Select("H1"); err != nil {
		t.Fatalf("select H1: %v", err)
	}
	s.SetDistrict("B")
	if got := s.SelectedID(); got != "H2" {
		t.Fatalf("selection after district B = %q, want H2", got)
	}
}

func TestSession_SelectionSurvivesWhenStillPresent(t *testing.T) {
	s := newSession(t)
	if err := s.Select("H2"); err != nil {
		t.Fatalf("select H2: %v", err)
	}
	s.SetQuery("H")
	if got := s.SelectedID(); got != "H2" {
		t.Fatalf("selection = %q, want H2", got)
	}
}

func TestSession_SelectRejectsFilteredOutRecord(t *testing.T) {
	s := newSession(t)
	s.SetDistrict("A")
	err := s.Select("H2")
	if !errors.Is(err, selection.ErrNotInSubset) {
		t.Fatalf("expected ErrNotInSubset, got %v", err)
	}
	if got := s.SelectedID(); got != "H1" {
		t.Fatalf("rejected select changed selection to %q", got)
	}
}

func TestSession_EmptySubset(t *testing.T) {
	s := newSession(t)
	s.SetQuery("存在しない")
	if s.SelectedID() != "" {
		t.Fatalf("selection should be cleared, got %q", s.SelectedID())
	}
	if _, err := s.Current(); !errors.Is(err, session.ErrNoMatchingRecords) {
		t.Fatalf("expected ErrNoMatchingRecords, got %v", err)
	}
	if doc := s.Document(); doc.Notice != document.NoticeNoRecords {
		t.Fatalf("expected no records notice, got %#v", doc)
	}
}

func TestSession_OptionsIgnoreFilters(t *testing.T) {
	s := newSession(t)
	s.SetDistrict("A")
	if diff := cmp.Diff([]string{filter.All, "完全空き家", "現在居住"}, s.StatusOptions()); diff != "" {
		t.Fatalf("status options (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{filter.All, "A", "B"}, s.DistrictOptions()); diff != "" {
		t.Fatalf("district options (-want +got):\n%s", diff)
	}
}

func TestSession_Templates(t *testing.T) {
	s := newSession(t)
	if s.TemplateID() != session.DefaultTemplate {
		t.Fatalf("default template = %q", s.TemplateID())
	}
	doc := s.Document()
	if doc.IsNotice() || doc.TemplateID != "emergency" || doc.Header.ID != "H1" {
		t.Fatalf("unexpected document: %#v", doc)
	}

	s.SetTemplate("unknown")
	if doc := s.Document(); doc.Notice != document.NoticeTemplateNotFound {
		t.Fatalf("expected template notice, got %#v", doc)
	}

	s.SetTemplate("house")
	if doc := s.Document(); doc.TemplateID != "house" {
		t.Fatalf("expected house document, got %#v", doc)
	}
}

func TestSession_LoadLifecycle(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	s := session.New(document.NewBuilder(templates.Default()), session.WithLogger(zap.New(core)))

	s.BeginLoad()
	if !s.Loading() {
		t.Fatalf("expected loading state")
	}
	if doc := s.Document(); doc.Notice != session.NoticeLoading {
		t.Fatalf("expected loading notice, got %#v", doc)
	}

	loadErr := errors.New("boom")
	s.FinishLoad(scenarioStore(), loadErr)
	if s.Loading() {
		t.Fatalf("loading flag should be cleared")
	}
	if !errors.Is(s.LoadErr(), loadErr) {
		t.Fatalf("load error not kept: %v", s.LoadErr())
	}
	if s.Store().Len() != 0 {
		t.Fatalf("failed load must leave an empty store")
	}
	if logs.FilterMessage("record load failed").Len() != 1 {
		t.Fatalf("expected a warning for the failed load, got %v", logs.All())
	}

	s.FinishLoad(scenarioStore(), nil)
	if s.LoadErr() != nil || s.SelectedID() != "H1" {
		t.Fatalf("successful load did not install the store: err=%v selected=%q", s.LoadErr(), s.SelectedID())
	}
}

func TestSession_SetFilterNormalisesBlankAxes(t *testing.T) {
	s := newSession(t)
	s.SetFilter(filter.State{Query: "H", Status: "", District: "B"})
	want := filter.State{Query: "H", Status: filter.All, District: "B"}
	if diff := cmp.Diff(want, s.State()); diff != "" {
		t.Fatalf("state (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"H2"}, subsetIDs(s)); diff != "" {
		t.Fatalf("subset (-want +got):\n%s", diff)
	}
}

func TestSession_TemplatesListOrder(t *testing.T) {
	s := newSession(t)
	var ids []string
	for _, tpl := range s.Templates() {
		ids = append(ids, tpl.ID)
	}
	if diff := cmp.Diff([]string{"emergency", "owner", "house", "resident"}, ids); diff != "" {
		t.Fatalf("templates (-want +got):\n%s", diff)
	}
}
