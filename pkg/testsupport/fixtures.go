// Package testsupport holds fixtures and golden-file helpers shared by the
// package tests.
package testsupport

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-houseprint/pkg/record"
)

// LoadRecords reads a JSON fixture holding an array of record objects.
func LoadRecords(path string) ([]record.Record, error) {
	if path == "" {
		return nil, errors.New("testsupport: records path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("testsupport: read records: %w", err)
	}
	records, err := record.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("testsupport: decode records: %w", err)
	}
	return records, nil
}

// MustLoadStore loads a fixture into a record store.
func MustLoadStore(t *testing.T, path string) *record.Store {
	t.Helper()

	records, err := LoadRecords(path)
	if err != nil {
		t.Fatalf("load store: %v", err)
	}
	return record.NewStore(records)
}

// SampleStore returns the shared sample records bundled with this package.
func SampleStore(t *testing.T) *record.Store {
	t.Helper()
	return MustLoadStore(t, SamplePath())
}

// SamplePath returns the absolute path of the bundled sample records.
func SamplePath() string {
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		return filepath.Join("testdata", "records.json")
	}
	return filepath.Join(filepath.Dir(file), "testdata", "records.json")
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// CaptureTemplateOutput executes a render function that writes to an
// io.Writer, returning both the string result and the writer contents.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}
	return out, buf.String()
}
