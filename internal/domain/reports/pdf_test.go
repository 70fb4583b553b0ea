package reports

import "testing"

func TestTruncateKeepsMultibyteRunes(t *testing.T) {
	got := truncate("Jürgen Müßigbrodt", 8)
	if got != "Jürgen M" {
		t.Fatalf("expected rune-safe cut, got %q", got)
	}
	if got := truncate("short", 20); got != "short" {
		t.Fatalf("expected short value untouched, got %q", got)
	}
}

func TestTitleCase(t *testing.T) {
	if got := titleCase("travel expenses"); got != "Travel Expenses" {
		t.Fatalf("unexpected title: %q", got)
	}
	if got := titleCase("  "); got != "Report" {
		t.Fatalf("expected fallback title, got %q", got)
	}
	if got := titleCase("émile"); got != "Émile" {
		t.Fatalf("expected rune-safe capitalization, got %q", got)
	}
}
