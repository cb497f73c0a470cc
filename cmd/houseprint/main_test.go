package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-houseprint/pkg/config"
	"github.com/goliatone/go-houseprint/pkg/prompt"
	"github.com/goliatone/go-houseprint/pkg/testsupport"
)

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func withSampleEndpoint(t *testing.T) {
	t.Helper()
	t.Setenv(config.EnvEndpointURL, testsupport.SamplePath())
}

func TestTemplatesCommand(t *testing.T) {
	code, out, errOut := runCLI(t, "templates")
	if code != exitOK {
		t.Fatalf("exit code %d, stderr: %s", code, errOut)
	}
	for _, id := range []string{"emergency", "owner", "resident", "house"} {
		if !strings.Contains(out, id) {
			t.Fatalf("expected template %q in output:\n%s", id, out)
		}
	}
}

func TestListCommand_FiltersByDistrict(t *testing.T) {
	withSampleEndpoint(t)

	code, out, errOut := runCLI(t, "list", "--district", "浜町")
	if code != exitOK {
		t.Fatalf("exit code %d, stderr: %s", code, errOut)
	}
	if !strings.Contains(out, "該当 2/3 件") {
		t.Fatalf("expected count heading, got:\n%s", out)
	}
	if !strings.Contains(out, "* H001 / 田中太郎") {
		t.Fatalf("expected H001 to be selected, got:\n%s", out)
	}
	if !strings.Contains(out, "  H003 / 佐藤次郎") {
		t.Fatalf("expected H003 listed, got:\n%s", out)
	}
	if strings.Contains(out, "H002") {
		t.Fatalf("H002 belongs to another district:\n%s", out)
	}
}

func TestListCommand_UnknownIDFails(t *testing.T) {
	withSampleEndpoint(t)

	code, _, errOut := runCLI(t, "list", "--district", "北町", "--id", "H001")
	if code != exitError {
		t.Fatalf("exit code %d, want %d", code, exitError)
	}
	if !strings.Contains(errOut, "Error:") {
		t.Fatalf("expected error output, got %q", errOut)
	}
}

func TestOptionsCommand(t *testing.T) {
	withSampleEndpoint(t)

	code, out, errOut := runCLI(t, "options")
	if code != exitOK {
		t.Fatalf("exit code %d, stderr: %s", code, errOut)
	}
	for _, want := range []string{"状態", "地区", "完全空き家", "現在居住（別荘）", "北町", "浜町"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in options output:\n%s", want, out)
		}
	}
}

func TestMissingEndpoint(t *testing.T) {
	t.Setenv(config.EnvEndpointURL, "")

	code, out, errOut := runCLI(t, "list", "--config", filepath.Join(t.TempDir(), "none.yaml"))
	if code != exitConfig {
		t.Fatalf("exit code %d, want %d", code, exitConfig)
	}
	if out != "" {
		t.Fatalf("expected no stdout, got %q", out)
	}
	if strings.TrimSpace(errOut) != config.MissingEndpointMessage {
		t.Fatalf("unexpected stderr %q", errOut)
	}
}

func TestLoadFailureShowsBanner(t *testing.T) {
	t.Setenv(config.EnvEndpointURL, filepath.Join(t.TempDir(), "missing.json"))

	code, out, errOut := runCLI(t, "list")
	if code != exitOK {
		t.Fatalf("exit code %d, stderr: %s", code, errOut)
	}
	if !strings.Contains(errOut, "データの読み込みに失敗しました") {
		t.Fatalf("expected load banner on stderr, got %q", errOut)
	}
	if !strings.Contains(out, "該当 0/0 件") {
		t.Fatalf("expected an empty listing, got:\n%s", out)
	}
}

func TestRenderCommand_Markdown(t *testing.T) {
	withSampleEndpoint(t)

	code, out, errOut := runCLI(t, "render", "--format", "markdown", "--id", "H002", "--template", "owner")
	if code != exitOK {
		t.Fatalf("exit code %d, stderr: %s", code, errOut)
	}
	if !strings.Contains(out, "**物件ID** H002") {
		t.Fatalf("expected markdown header for H002, got:\n%s", out)
	}
	if !strings.Contains(out, "## ") {
		t.Fatalf("expected section headings, got:\n%s", out)
	}
}

func TestRenderCommand_UnknownFormat(t *testing.T) {
	withSampleEndpoint(t)

	code, _, errOut := runCLI(t, "render", "--format", "docx")
	if code != exitError {
		t.Fatalf("exit code %d, want %d", code, exitError)
	}
	if !strings.Contains(errOut, "docx") {
		t.Fatalf("expected the format in the error, got %q", errOut)
	}
}

func TestRenderCommand_WritesFile(t *testing.T) {
	withSampleEndpoint(t)
	target := filepath.Join(t.TempDir(), "out", "h001.txt")

	code, out, errOut := runCLI(t, "render", "--format", "text", "--output", target)
	if code != exitOK {
		t.Fatalf("exit code %d, stderr: %s", code, errOut)
	}
	if !strings.Contains(out, target) {
		t.Fatalf("expected the written path, got %q", out)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(data), "H001") {
		t.Fatalf("expected H001 in text output:\n%s", data)
	}
}

func TestPrintCommand_HTML(t *testing.T) {
	withSampleEndpoint(t)
	target := filepath.Join(t.TempDir(), "sheets", "h003")

	code, out, errOut := runCLI(t, "print", "--id", "H003", "--output", target, "--auto-print")
	if code != exitOK {
		t.Fatalf("exit code %d, stderr: %s", code, errOut)
	}
	if !strings.Contains(out, target+".html") {
		t.Fatalf("expected printed path, got %q", out)
	}
	data, err := os.ReadFile(target + ".html")
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	html := string(data)
	if !strings.Contains(html, "H003") {
		t.Fatalf("expected H003 in printed HTML")
	}
	if !strings.Contains(html, "window.print()") {
		t.Fatalf("expected the auto print script")
	}
}

func TestPrintCommand_EmptySubsetFails(t *testing.T) {
	withSampleEndpoint(t)

	code, _, errOut := runCLI(t, "print", "--query", "存在しない", "--output", filepath.Join(t.TempDir(), "x"))
	if code != exitError {
		t.Fatalf("exit code %d, want %d", code, exitError)
	}
	if !strings.Contains(errOut, "nothing to print") {
		t.Fatalf("unexpected stderr %q", errOut)
	}
}

func TestBrowseCommand_Scripted(t *testing.T) {
	withSampleEndpoint(t)

	driver := &prompt.Scripted{
		// status filter -> 完全空き家, preview, quit
		Selects: []int{int(prompt.ActionStatus), 1, int(prompt.ActionPreview), int(prompt.ActionQuit)},
	}
	var stdout, stderr bytes.Buffer
	a := newApp(&stdout, &stderr)
	a.driver = driver

	code := execute(a, []string{"browse", "--pretty=false"})
	if code != exitOK {
		t.Fatalf("exit code %d, stderr: %s", code, stderr.String())
	}
	if len(driver.Infos) == 0 || !strings.Contains(driver.Infos[0], "該当 3/3 件") {
		t.Fatalf("unexpected first summary %v", driver.Infos)
	}
	last := driver.Infos[len(driver.Infos)-1]
	if !strings.Contains(last, "該当 1/3 件") || !strings.Contains(last, "H002") {
		t.Fatalf("expected the filtered summary, got %q", last)
	}
	if !strings.Contains(stdout.String(), "H002") {
		t.Fatalf("expected the preview on stdout, got:\n%s", stdout.String())
	}
}

func TestConfigInit(t *testing.T) {
	t.Setenv(config.EnvEndpointURL, "https://example.com/exec")
	path := filepath.Join(t.TempDir(), "conf", "houseprint.yaml")

	code, out, errOut := runCLI(t, "config", "init", "--config", path, "--theme", "mono")
	if code != exitOK {
		t.Fatalf("exit code %d, stderr: %s", code, errOut)
	}
	if !strings.Contains(out, path) {
		t.Fatalf("expected the written path, got %q", out)
	}

	t.Setenv(config.EnvEndpointURL, "")
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("load written config: %v", err)
	}
	if cfg.EndpointURL != "https://example.com/exec" || cfg.ThemeVariant != "mono" {
		t.Fatalf("unexpected config: %+v", cfg)
	}

	code, _, errOut = runCLI(t, "config", "init", "--config", path)
	if code != exitError || !strings.Contains(errOut, "already exists") {
		t.Fatalf("expected a refusal to overwrite, got %d %q", code, errOut)
	}
	if code, _, errOut := runCLI(t, "config", "init", "--config", path, "--force"); code != exitOK {
		t.Fatalf("--force failed: %s", errOut)
	}
}
