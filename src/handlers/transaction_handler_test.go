package handlers

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	got, err := parseDate("2026-03-15")
	if err != nil {
		t.Fatalf("parseDate(2026-03-15): %v", err)
	}
	want := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("parseDate(2026-03-15) = %v, want %v", got, want)
	}

	got, err = parseDate("2026-03-15T09:30:00Z")
	if err != nil {
		t.Fatalf("parseDate(RFC3339): %v", err)
	}
	want = time.Date(2026, 3, 15, 9, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("parseDate(RFC3339) = %v, want %v", got, want)
	}

	if _, err := parseDate("15/03/2026"); err == nil {
		t.Error("parseDate(15/03/2026) accepted")
	}
	if _, err := parseDate(""); err == nil {
		t.Error("parseDate(\"\") accepted")
	}
}
