package expenses

import "testing"

func TestComputeTravel(t *testing.T) {
	distance, amount, err := ComputeTravel(1200, 1250, 3.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if distance != 50 {
		t.Fatalf("expected distance 50, got %v", distance)
	}
	if amount != 175 {
		t.Fatalf("expected amount 175, got %v", amount)
	}
}

func TestComputeTravelUsesConfiguredRate(t *testing.T) {
	_, amount, err := ComputeTravel(100, 110, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if amount != 50 {
		t.Fatalf("expected amount 50 at rate 5, got %v", amount)
	}
}

func TestComputeTravelRejectsEqualReadings(t *testing.T) {
	if _, _, err := ComputeTravel(500, 500, 3.5); err != ErrInvalidReadings {
		t.Fatalf("expected ErrInvalidReadings, got %v", err)
	}
}

func TestComputeTravelRejectsReversedReadings(t *testing.T) {
	if _, _, err := ComputeTravel(500, 400, 3.5); err != ErrInvalidReadings {
		t.Fatalf("expected ErrInvalidReadings, got %v", err)
	}
}
