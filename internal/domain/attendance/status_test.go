package attendance

import "testing"

func TestStatusAbsentWithoutCheckIn(t *testing.T) {
	if status := Status(nil); status != StatusAbsent {
		t.Fatalf("expected Absent, got %s", status)
	}
}

func TestStatusPresentBeforeCutoff(t *testing.T) {
	checkIn := NewTimeOfDay(9, 15)
	if status := Status(&checkIn); status != StatusPresent {
		t.Fatalf("expected Present for 09:15, got %s", status)
	}
}

func TestStatusPresentAtCutoff(t *testing.T) {
	checkIn := NewTimeOfDay(10, 0)
	if status := Status(&checkIn); status != StatusPresent {
		t.Fatalf("expected Present at 10:00 exactly, got %s", status)
	}
}

func TestStatusLateAfterCutoff(t *testing.T) {
	checkIn := NewTimeOfDay(10, 1)
	if status := Status(&checkIn); status != StatusLate {
		t.Fatalf("expected Late for 10:01, got %s", status)
	}
}

func TestParseClockFormats(t *testing.T) {
	parsed, err := ParseClock("09:15 AM")
	if err != nil || parsed == nil {
		t.Fatalf("expected 12-hour parse to succeed, got %v", err)
	}
	if parsed.Hour() != 9 || parsed.Minute() != 15 {
		t.Fatalf("expected 09:15, got %02d:%02d", parsed.Hour(), parsed.Minute())
	}

	parsed, err = ParseClock("14:30")
	if err != nil || parsed == nil {
		t.Fatalf("expected 24-hour parse to succeed, got %v", err)
	}
	if parsed.Hour() != 14 || parsed.Minute() != 30 {
		t.Fatalf("expected 14:30, got %02d:%02d", parsed.Hour(), parsed.Minute())
	}
}

func TestParseClockBlankMeansNotRecorded(t *testing.T) {
	parsed, err := ParseClock("   ")
	if err != nil {
		t.Fatalf("blank time should not error: %v", err)
	}
	if parsed != nil {
		t.Fatal("blank time should yield nil")
	}
}

func TestParseClockRejectsGarbage(t *testing.T) {
	if _, err := ParseClock("not a time"); err == nil {
		t.Fatal("expected error for invalid time")
	}
}

func TestClock24Rendering(t *testing.T) {
	cases := map[TimeOfDay]string{
		NewTimeOfDay(0, 0):   "00:00:00",
		NewTimeOfDay(9, 5):   "09:05:00",
		NewTimeOfDay(17, 45): "17:45:00",
	}
	for input, want := range cases {
		if got := input.Clock24(); got != want {
			t.Fatalf("expected %s, got %s", want, got)
		}
	}
	if got := LateCutoff.Clock24(); got != "10:00:00" {
		t.Fatalf("expected cutoff to render as 10:00:00, got %s", got)
	}
}

func TestClock12Rendering(t *testing.T) {
	cases := map[TimeOfDay]string{
		NewTimeOfDay(9, 5):   "09:05 AM",
		NewTimeOfDay(12, 0):  "12:00 PM",
		NewTimeOfDay(0, 30):  "12:30 AM",
		NewTimeOfDay(17, 45): "05:45 PM",
	}
	for input, want := range cases {
		if got := input.Clock12(); got != want {
			t.Fatalf("expected %s, got %s", want, got)
		}
	}
}
