package document

import (
	"testing"
	"time"
)

func TestFormatDate(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	cases := []struct {
		raw  string
		want string
	}{
		{"", ""},
		{"   ", ""},
		{"2024-03-05", "2024/03/05"},
		{"2024-3-5", "2024/03/05"},
		{"2024/03/05", "2024/03/05"},
		{"2024/3/5", "2024/03/05"},
		{"2024-03-05 10:30", "2024/03/05"},
		{"2024-03-05T20:00:00Z", "2024/03/06"},
		{"2024-03-05T10:00:00.000Z", "2024/03/05"},
		{"2024-03-05T23:30:00+09:00", "2024/03/05"},
		{"令和6年3月5日", "令和6年3月5日"},
		{"not a date", "not a date"},
	}
	for _, tc := range cases {
		if got := FormatDate(tc.raw, tokyo); got != tc.want {
			t.Fatalf("FormatDate(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestFormatDate_DefaultLocation(t *testing.T) {
	if got := FormatDate("2024-12-31T15:00:00Z", nil); got != "2025/01/01" {
		t.Fatalf("expected conversion to the default zone, got %q", got)
	}
}
