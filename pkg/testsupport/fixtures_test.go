package testsupport

import (
	"testing"
)

func TestSampleStore(t *testing.T) {
	store := SampleStore(t)
	if store.Len() != 3 {
		t.Fatalf("expected 3 sample records, got %d", store.Len())
	}
	rec, ok := store.Find("H001")
	if !ok {
		t.Fatalf("H001 missing")
	}
	if rec.Get("年齢①") != "84" || rec.Get("平屋") != "true" {
		t.Fatalf("scalar coercion mismatch: %#v", rec)
	}
}

func TestLoadRecords_MissingPath(t *testing.T) {
	if _, err := LoadRecords(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}
