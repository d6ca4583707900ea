package clock

import "testing"

func TestFrozen(t *testing.T) {
	smclk, aclk := Frozen(8000000, REFOCLK)
	if smclk.Freq() != 8000000 {
		t.Errorf("Expected 8000000, got %d", smclk.Freq())
	}
	if aclk.Freq() != 32768 {
		t.Errorf("Expected 32768, got %d", aclk.Freq())
	}
}
