package salary

import "testing"

func TestCompute(t *testing.T) {
	breakdown := Compute(25000)
	if breakdown.HRA != 10000 {
		t.Fatalf("expected HRA 10000, got %v", breakdown.HRA)
	}
	if breakdown.PF != 3000 {
		t.Fatalf("expected PF 3000, got %v", breakdown.PF)
	}
	if breakdown.Net != 32000 {
		t.Fatalf("expected net 32000, got %v", breakdown.Net)
	}
}

func TestComputeNetEqualsBasicPlusHRAMinusPF(t *testing.T) {
	breakdown := Compute(18000)
	if breakdown.Net != breakdown.Basic+breakdown.HRA-breakdown.PF {
		t.Fatalf("net %v does not reconcile with components", breakdown.Net)
	}
}
