package loader_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/goliatone/go-houseprint/pkg/loader"
	"github.com/goliatone/go-houseprint/pkg/record"
)

func serve(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("unexpected method %s", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestLoad_HTTP(t *testing.T) {
	srv := serve(t, http.StatusOK, `[{"house_id":"H1","状態":"現在居住","平屋":true,"年齢①":82},{"house_id":"H2","メモ":null}]`)

	store, err := loader.New().Load(context.Background(), loader.SourceFromURL(srv.URL))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := []record.Record{
		{"house_id": "H1", "状態": "現在居住", "平屋": "true", "年齢①": "82"},
		{"house_id": "H2", "メモ": ""},
	}
	if diff := cmp.Diff(want, store.Records()); diff != "" {
		t.Fatalf("records mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_StatusErrorIsLoadError(t *testing.T) {
	srv := serve(t, http.StatusBadGateway, `upstream down`)

	_, err := loader.New().Load(context.Background(), loader.SourceFromURL(srv.URL))
	var loadErr *loader.LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected LoadError, got %v", err)
	}
	if loadErr.StatusCode != http.StatusBadGateway {
		t.Fatalf("status code = %d", loadErr.StatusCode)
	}
}

func TestLoad_TransportErrorIsLoadError(t *testing.T) {
	srv := serve(t, http.StatusOK, `[]`)
	url := srv.URL
	srv.Close()

	_, err := loader.New().Load(context.Background(), loader.SourceFromURL(url))
	var loadErr *loader.LoadError
	if !errors.As(err, &loadErr) || loadErr.StatusCode != 0 {
		t.Fatalf("expected transport LoadError, got %v", err)
	}
}

func TestLoad_MalformedShapeIsEmpty(t *testing.T) {
	bodies := map[string]string{
		"object":        `{"error":"quota"}`,
		"scalar items":  `[1, 2]`,
		"not json":      `<html>login</html>`,
		"empty":         ``,
		"nested arrays": `[[{"house_id":"H1"}]]`,
	}
	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			core, logs := observer.New(zapcore.WarnLevel)
			srv := serve(t, http.StatusOK, body)

			store, err := loader.New(loader.WithLogger(zap.New(core))).Load(context.Background(), loader.SourceFromURL(srv.URL))
			if err != nil {
				t.Fatalf("malformed payload must not be an error: %v", err)
			}
			if store.Len() != 0 {
				t.Fatalf("expected empty store, got %d records", store.Len())
			}
			if logs.Len() != 1 {
				t.Fatalf("expected one warning, got %v", logs.All())
			}
		})
	}
}

func TestLoad_File(t *testing.T) {
	store, err := loader.New().Load(context.Background(), loader.SourceFromFile(filepath.Join("testdata", "records.json")))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if store.Len() != 2 {
		t.Fatalf("expected 2 records, got %d", store.Len())
	}
	rec, ok := store.Find("H1")
	if !ok || rec.Get("年齢①") != "82" || rec.Get("平屋") != "true" {
		t.Fatalf("unexpected record: %#v", rec)
	}

	_, err = loader.New().Load(context.Background(), loader.SourceFromFile(filepath.Join("testdata", "missing.json")))
	var loadErr *loader.LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected LoadError for missing file, got %v", err)
	}
}

func TestLoad_FS(t *testing.T) {
	files := fstest.MapFS{"snap.json": {Data: []byte(`[{"house_id":"X"}]`)}}
	store, err := loader.New(loader.WithFileSystem(files)).Load(context.Background(), loader.SourceFromFS("snap.json"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if store.Len() != 1 || store.At(0).ID() != "X" {
		t.Fatalf("unexpected store: %#v", store.Records())
	}
}

func TestLoad_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := loader.New().Load(ctx, loader.SourceFromFile(filepath.Join("testdata", "records.json")))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestParseSource(t *testing.T) {
	cases := []struct {
		raw  string
		want loader.Source
	}{
		{"https://script.google.com/macros/s/abc/exec", loader.SourceFromURL("https://script.google.com/macros/s/abc/exec")},
		{"HTTP://example.com/x", loader.SourceFromURL("http://example.com/x")},
		{" ./snapshot.json ", loader.SourceFromFile("./snapshot.json")},
		{"file:///tmp/a.json", loader.SourceFromFile("/tmp/a.json")},
	}
	for _, tc := range cases {
		got, err := loader.ParseSource(tc.raw)
		if err != nil {
			t.Fatalf("ParseSource(%q): %v", tc.raw, err)
		}
		if got != tc.want {
			t.Fatalf("ParseSource(%q) = %#v, want %#v", tc.raw, got, tc.want)
		}
	}
	if _, err := loader.ParseSource("  "); err == nil {
		t.Fatalf("expected error for empty source")
	}
	if _, err := loader.ParseSource("https://"); err == nil {
		t.Fatalf("expected error for url without host")
	}
}
