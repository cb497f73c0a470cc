package prompt_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-houseprint/pkg/document"
	"github.com/goliatone/go-houseprint/pkg/prompt"
	"github.com/goliatone/go-houseprint/pkg/record"
	"github.com/goliatone/go-houseprint/pkg/session"
	"github.com/goliatone/go-houseprint/pkg/templates"
	"github.com/goliatone/go-houseprint/pkg/testsupport"
)

func newSession(t *testing.T) *session.Session {
	t.Helper()
	builder := document.NewBuilder(templates.Default())
	return session.New(builder, session.WithStore(testsupport.SampleStore(t)))
}

type capture struct {
	docs []document.Document
}

func (c *capture) fn(_ context.Context, doc document.Document) error {
	c.docs = append(c.docs, doc)
	return nil
}

func TestBrowser_Scenario(t *testing.T) {
	sess := newSession(t)
	driver := &prompt.Scripted{
		Selects: []int{
			int(prompt.ActionDistrict), 2,
			int(prompt.ActionRecord), 1,
			int(prompt.ActionTemplate), 2,
			int(prompt.ActionPreview),
			int(prompt.ActionSearch),
			int(prompt.ActionPreview),
			int(prompt.ActionReset),
			int(prompt.ActionPrint),
			int(prompt.ActionQuit),
		},
		Inputs:   []string{"存在しない"},
		Confirms: []bool{true},
	}
	var previews, prints capture

	browser := prompt.NewBrowser(sess, driver, prompt.WithPreview(previews.fn), prompt.WithPrint(prints.fn))
	if err := browser.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}

	if len(previews.docs) != 1 {
		t.Fatalf("expected one preview, got %d", len(previews.docs))
	}
	preview := previews.docs[0]
	if preview.TemplateID != "house" || preview.Header == nil || preview.Header.ID != "H003" {
		t.Fatalf("unexpected preview document %+v", preview)
	}

	if len(prints.docs) != 1 {
		t.Fatalf("expected one print, got %d", len(prints.docs))
	}
	if got := prints.docs[0]; got.TemplateID != "house" || got.Header.ID != "H001" {
		t.Fatalf("unexpected printed document %+v", got)
	}

	found := false
	for _, info := range driver.Infos {
		if info == document.NoticeNoRecords {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected the no records notice, infos: %v", driver.Infos)
	}
	if !strings.HasPrefix(driver.Infos[0], "該当 3/3 件") {
		t.Fatalf("unexpected first summary %q", driver.Infos[0])
	}
}

func TestBrowser_FilterMenusUseFullStoreOptions(t *testing.T) {
	sess := newSession(t)
	driver := &prompt.Scripted{
		Selects: []int{int(prompt.ActionStatus), 1, int(prompt.ActionQuit)},
	}
	if err := prompt.NewBrowser(sess, driver).Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := sess.State().Status; got != "完全空き家" {
		t.Fatalf("status = %q, want 完全空き家", got)
	}
	if diff := cmp.Diff([]string{"操作", "状態", "操作"}, driver.Prompts); diff != "" {
		t.Fatalf("prompts (-want +got):\n%s", diff)
	}
}

type abortingDriver struct {
	prompt.Scripted
	abortMenu bool
}

func (d *abortingDriver) Select(ctx context.Context, cfg prompt.SelectConfig) (int, error) {
	if cfg.Message == "操作" && d.abortMenu {
		return -1, prompt.ErrAborted
	}
	return d.Scripted.Select(ctx, cfg)
}

func (d *abortingDriver) Input(ctx context.Context, cfg prompt.InputConfig) (string, error) {
	d.abortMenu = true
	return "", prompt.ErrAborted
}

func TestBrowser_AbortReturnsToMenuThenQuits(t *testing.T) {
	sess := newSession(t)
	driver := &abortingDriver{Scripted: prompt.Scripted{Selects: []int{int(prompt.ActionSearch)}}}
	if err := prompt.NewBrowser(sess, driver).Run(context.Background()); err != nil {
		t.Fatalf("expected abort to end the loop cleanly, got %v", err)
	}
	if sess.State().Query != "" {
		t.Fatalf("aborted search must not change the query")
	}
}

func TestBrowser_ShowsLoadError(t *testing.T) {
	sess := newSession(t)
	sess.BeginLoad()
	sess.FinishLoad(nil, errors.New("loader: endpoint unreachable"))

	driver := &prompt.Scripted{Selects: []int{int(prompt.ActionRecord), int(prompt.ActionQuit)}}
	if err := prompt.NewBrowser(sess, driver).Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if driver.Infos[0] != "! loader: endpoint unreachable" {
		t.Fatalf("expected load error banner first, got %v", driver.Infos)
	}
	if !contains(driver.Infos, document.NoticeNoRecords) {
		t.Fatalf("expected empty store notice, got %v", driver.Infos)
	}
}

func TestBrowser_ScriptExhausted(t *testing.T) {
	sess := session.New(document.NewBuilder(templates.Default()), session.WithStore(record.Empty()))
	err := prompt.NewBrowser(sess, &prompt.Scripted{}).Run(context.Background())
	if !errors.Is(err, prompt.ErrNoScript) {
		t.Fatalf("expected ErrNoScript, got %v", err)
	}
}

func TestMenuLabels(t *testing.T) {
	labels := prompt.MenuLabels()
	if len(labels) != int(prompt.ActionQuit)+1 || labels[prompt.ActionQuit] != "終了" {
		t.Fatalf("unexpected menu %v", labels)
	}
}

func contains(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}
