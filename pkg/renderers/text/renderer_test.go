package text_test

import (
	"context"
	"strings"
	"testing"

	"github.com/goliatone/go-houseprint/pkg/document"
	"github.com/goliatone/go-houseprint/pkg/render"
	"github.com/goliatone/go-houseprint/pkg/renderers/text"
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

func renderString(t *testing.T, doc document.Document, opts render.RenderOptions) string {
	t.Helper()
	out, err := text.New().Render(context.Background(), doc, opts)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return string(out)
}

func TestRenderer_PlainOutput(t *testing.T) {
	output := renderString(t, sampleDocument(t, "emergency", "H001"), render.RenderOptions{})

	for _, fragment := range []string{
		"緊急連絡先シート\n",
		"物件ID H001",
		"更新日 2024/03/05",
		"状態 [現在居住]",
		"緊急連絡先①（電話）: 090-0000-0001",
		"── 基本情報 ─",
		"田中花子",
	} {
		if !strings.Contains(output, fragment) {
			t.Fatalf("expected %q in output\n%s", fragment, output)
		}
	}
	if strings.Contains(output, "\x1b[") {
		t.Fatalf("plain output must not contain escape sequences\n%q", output)
	}
}

func TestRenderer_PhotoRowShowsURLAndHint(t *testing.T) {
	output := renderString(t, sampleDocument(t, "house", "H001"), render.RenderOptions{})
	if !strings.Contains(output, "https://example.com/photos/h001.jpg") {
		t.Fatalf("expected photo url\n%s", output)
	}
	if !strings.Contains(output, document.PhotoHint) {
		t.Fatalf("expected photo hint\n%s", output)
	}
	if !strings.Contains(output, document.CheckedGlyph+" 平屋") {
		t.Fatalf("expected composite row\n%s", output)
	}
}

func TestRenderer_PrettyOutputIsStyled(t *testing.T) {
	output := renderString(t, sampleDocument(t, "owner", "H002"), render.RenderOptions{Pretty: true})
	if !strings.Contains(output, "\x1b[") {
		t.Fatalf("expected escape sequences in pretty output\n%q", output)
	}
	if strings.Contains(output, "[完全空き家]") {
		t.Fatalf("pretty output should paint the badge instead of bracketing it")
	}
}

func TestRenderer_Notice(t *testing.T) {
	output := renderString(t, document.NoRecords(), render.RenderOptions{Banner: "接続できません"})
	want := "! 接続できません\n\n" + document.NoticeNoRecords + "\n"
	if diff := testsupport.CompareGolden(want, output); diff != "" {
		t.Fatalf("notice mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderer_SectionRuleWidth(t *testing.T) {
	out, err := text.New(text.WithWidth(30)).Render(context.Background(), sampleDocument(t, "owner", "H002"), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, line := range strings.Split(string(out), "\n") {
		if strings.HasPrefix(line, "── ") && !strings.HasSuffix(line, "──") {
			t.Fatalf("section rule should be filled: %q", line)
		}
	}
}
