package attendance

const (
	StatusAbsent  = "Absent"
	StatusPresent = "Present"
	StatusLate    = "Late"
)

// LateCutoff is the canonical check-in deadline. Arrivals at or before 10:00
// count as present, later arrivals as late.
var LateCutoff = NewTimeOfDay(10, 0)

// Status derives the day's status from the first-shift check-in. A nil
// check-in means the employee never clocked in. Stored midnight values are
// normalized to nil before they reach this function, so a literal 00:00 is
// never treated as a real check-in.
func Status(checkIn *TimeOfDay) string {
	if checkIn == nil {
		return StatusAbsent
	}
	if *checkIn > LateCutoff {
		return StatusLate
	}
	return StatusPresent
}
