package debug

import "testing"

func capture() *[]string {
	var lines []string
	SetWriter(func(s string) { lines = append(lines, s) })
	return &lines
}

func TestItoa(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "0"},
		{7, "7"},
		{65535, "65535"},
		{-42, "-42"},
	}
	for _, tt := range tests {
		if got := Itoa(tt.n); got != tt.want {
			t.Errorf("Itoa(%d): expected %q, got %q", tt.n, tt.want, got)
		}
	}
}

func TestPrintlnGated(t *testing.T) {
	lines := capture()
	defer SetWriter(nil)
	defer SetEnabled(false)

	SetEnabled(false)
	Println("hidden")
	if len(*lines) != 0 {
		t.Errorf("Expected no output while disabled, got %v", *lines)
	}

	SetEnabled(true)
	if !Enabled() {
		t.Error("Expected Enabled to report true")
	}
	Println("shown")
	if len(*lines) != 1 || (*lines)[0] != "shown" {
		t.Errorf("Expected [shown], got %v", *lines)
	}
}

func TestRingWrap(t *testing.T) {
	Clear()
	defer Clear()

	for i := 1; i <= RingSize+5; i++ {
		Record(EvtCapture, uint16(i), 0)
	}
	evts := Events()
	if len(evts) != RingSize {
		t.Fatalf("Expected %d events, got %d", RingSize, len(evts))
	}
	if evts[0].A != 6 {
		t.Errorf("Expected oldest event 6, got %d", evts[0].A)
	}
	if evts[RingSize-1].A != RingSize+5 {
		t.Errorf("Expected newest event %d, got %d", RingSize+5, evts[RingSize-1].A)
	}
}

func TestDump(t *testing.T) {
	Clear()
	defer Clear()
	lines := capture()
	defer SetWriter(nil)

	Record(EvtPortVector, 2, 4)
	Record(EvtDuty, 1, 2500)
	Dump()

	want := []string{
		"[EVT] === Event Ring Dump ===",
		"[EVT] PORT_IV a=2 b=4",
		"[EVT] DUTY a=1 b=2500",
		"[EVT] === End Dump ===",
	}
	if len(*lines) != len(want) {
		t.Fatalf("Expected %d lines, got %v", len(want), *lines)
	}
	for i := range want {
		if (*lines)[i] != want[i] {
			t.Errorf("Line %d: expected %q, got %q", i, want[i], (*lines)[i])
		}
	}
}
