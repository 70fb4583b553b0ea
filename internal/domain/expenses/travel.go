package expenses

import "errors"

var ErrInvalidReadings = errors.New("end reading must be greater than start reading")

// ComputeTravel derives distance and reimbursement amount from odometer
// readings at the given per-kilometre rate. Readings where the end does not
// exceed the start are rejected.
func ComputeTravel(startReading, endReading, rate float64) (distance, amount float64, err error) {
	distance = endReading - startReading
	if distance <= 0 {
		return 0, 0, ErrInvalidReadings
	}
	return distance, distance * rate, nil
}
