package markdown_test

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-houseprint/pkg/document"
	"github.com/goliatone/go-houseprint/pkg/render"
	"github.com/goliatone/go-houseprint/pkg/renderers/markdown"
	"github.com/goliatone/go-houseprint/pkg/templates"
	"github.com/goliatone/go-houseprint/pkg/testsupport"
)

func sampleDocument(t *testing.T, templateID, id string) document.Document {
	t.Helper()
	rec, ok := testsupport.SampleStore(t).Find(id)
	if !ok {
		t.Fatalf("record %s not found", id)
	}
	return document.NewBuilder(templates.Default()).Render(templateID, rec)
}

func TestRenderer_Golden(t *testing.T) {
	out, err := markdown.New().Render(context.Background(), sampleDocument(t, "owner", "H002"), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	goldenPath := filepath.Join("testdata", "owner_h002.golden.md")
	if testsupport.WriteMaybeGolden(t, goldenPath, out) {
		return
	}
	want := testsupport.MustReadGoldenString(t, goldenPath)
	if diff := testsupport.CompareGolden(want, string(out)); diff != "" {
		t.Fatalf("markdown mismatch (-want +got):\n%s", diff)
	}
}

func TestMarkdown_PhotoAndCallout(t *testing.T) {
	house := markdown.Markdown(sampleDocument(t, "house", "H001"), "")
	if !strings.Contains(house, "[物件写真](<https://example.com/photos/h001.jpg>)") {
		t.Fatalf("expected photo link\n%s", house)
	}

	emergency := markdown.Markdown(sampleDocument(t, "emergency", "H001"), "")
	if !strings.Contains(emergency, "> **緊急連絡先①（電話）**: 090-0000-0001") {
		t.Fatalf("expected callout quote\n%s", emergency)
	}
}

func TestMarkdown_EscapesCells(t *testing.T) {
	doc := document.Document{
		Title:  "t",
		Header: &document.Header{ID: "H1", UpdatedAt: "-", Status: "不明"},
		Sections: []document.Section{{
			ID:    "s",
			Title: "s",
			Rows:  []document.Row{{Key: "k", Label: "a|b", Kind: document.KindText, Display: "line1\nline2 *x*"}},
		}},
	}
	out := markdown.Markdown(doc, "")
	if !strings.Contains(out, `| a\|b | line1<br>line2 \*x\* |`) {
		t.Fatalf("unexpected escaping\n%s", out)
	}
}

func TestMarkdown_NoticeWithBanner(t *testing.T) {
	got := markdown.Markdown(document.NoRecords(), "接続できません")
	want := "> **接続できません**\n\n_" + document.NoticeNoRecords + "_\n"
	if diff := testsupport.CompareGolden(want, got); diff != "" {
		t.Fatalf("notice mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderer_Pretty(t *testing.T) {
	renderer := markdown.New(markdown.WithStyle("notty"))
	out, err := renderer.Render(context.Background(), sampleDocument(t, "owner", "H002"), render.RenderOptions{Pretty: true, Width: 60})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(out), "H002") {
		t.Fatalf("expected record id in pretty output\n%s", out)
	}
	if strings.Contains(string(out), "| --- |") {
		t.Fatalf("pretty output should not contain raw table markup")
	}
}
