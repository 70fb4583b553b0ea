package attendance

import (
	"fmt"
	"strings"
	"time"
)

// TimeOfDay is a clock time expressed as minutes since midnight. Attendance
// rows carry these instead of full timestamps because only the wall-clock
// part of a check-in matters.
type TimeOfDay int

func NewTimeOfDay(hour, minute int) TimeOfDay {
	return TimeOfDay(hour*60 + minute)
}

func (t TimeOfDay) Hour() int {
	return int(t) / 60
}

func (t TimeOfDay) Minute() int {
	return int(t) % 60
}

// Clock12 renders the time in the 12-hour format the frontend tables expect,
// e.g. "09:15 AM".
func (t TimeOfDay) Clock12() string {
	hour := t.Hour()
	meridiem := "AM"
	if hour >= 12 {
		meridiem = "PM"
	}
	display := hour % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%02d:%02d %s", display, t.Minute(), meridiem)
}

// Clock24 renders the time as HH:MM:SS, the form TIME columns compare
// against.
func (t TimeOfDay) Clock24() string {
	return fmt.Sprintf("%02d:%02d:00", t.Hour(), t.Minute())
}

var clockLayouts = []string{"03:04 PM", "3:04 PM", "15:04", "15:04:05"}

// ParseClock parses a shift time from a request payload. Both 12-hour and
// 24-hour formats are accepted; a blank value means the shift was not
// recorded and yields nil.
func ParseClock(raw string) (*TimeOfDay, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, nil
	}
	for _, layout := range clockLayouts {
		if parsed, err := time.Parse(layout, trimmed); err == nil {
			t := NewTimeOfDay(parsed.Hour(), parsed.Minute())
			return &t, nil
		}
	}
	return nil, fmt.Errorf("invalid time %q", raw)
}

// Record is one employee's attendance for one date. Nil shift times mean the
// shift was not recorded.
type Record struct {
	ID           int64
	EmployeeID   int64
	EmployeeName string
	Date         time.Time
	Shift1In     *TimeOfDay
	Shift1Out    *TimeOfDay
	Shift2In     *TimeOfDay
	Shift2Out    *TimeOfDay
}
