package shared

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2024-03-15")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parsed.Year() != 2024 || parsed.Month() != time.March || parsed.Day() != 15 {
		t.Fatalf("unexpected date: %v", parsed)
	}
}

func TestParseDateEmpty(t *testing.T) {
	parsed, err := ParseDate("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !parsed.IsZero() {
		t.Fatal("expected zero time for empty input")
	}
}

func TestParseDateRejectsGarbage(t *testing.T) {
	if _, err := ParseDate("15/03/2024"); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestParseMonth(t *testing.T) {
	start, end, err := ParseMonth("2024-02")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if start.Format("2006-01-02") != "2024-02-01" {
		t.Fatalf("unexpected month start: %v", start)
	}
	if end.Format("2006-01-02") != "2024-03-01" {
		t.Fatalf("expected half-open end at next month, got %v", end)
	}
}

func TestParseMonthRejectsGarbage(t *testing.T) {
	if _, _, err := ParseMonth("February"); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}
