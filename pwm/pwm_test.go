package pwm_test

import (
	"testing"

	"msp430hal/clock"
	"msp430hal/debug"
	"msp430hal/device"
	"msp430hal/errcode"
	"msp430hal/gpio"
	"msp430hal/pmm"
	"msp430hal/pwm"
	"msp430hal/sim"
	"msp430hal/timerb"
)

const period = 10000

type fixture struct {
	chip  *sim.Chip
	parts pwm.Parts3[timerb.TB0]
	pwm1  pwm.PWM[timerb.TB0, timerb.CCR1]
}

// newFixture starts TB0 at 1 MHz with TB0.1 routed to P1.6.
func newFixture(t *testing.T) fixture {
	t.Helper()
	c := sim.New().Install()
	p1 := gpio.Split[gpio.Port1](pmm.Unlock())

	smclk, _ := clock.Frozen(1000000, clock.REFOCLK)
	parts, err := pwm.New3(timerb.Split3[timerb.TB0](), pwm.TimerConfigSmclk(smclk), period)
	if err != nil {
		t.Fatalf("New3: %v", err)
	}
	pin := gpio.OutputAlternate2(p1.Pin6.ToOutput(), gpio.P1_6Alt2)
	return fixture{chip: c, parts: parts, pwm1: pwm.Init(parts.PWM1, pin)}
}

// highCounts runs one full period after the next period boundary and
// returns how many counts TB0.1 was high.
func (f fixture) highCounts() int {
	f.chip.Advance(0, uint32(period-1-f.parts.Timer.Count()))
	high := 0
	for i := 0; i < period; i++ {
		f.chip.Advance(0, 1)
		if f.chip.Output(0, 1) {
			high++
		}
	}
	return high
}

func TestNew(t *testing.T) {
	f := newFixture(t)
	if f.parts.Period != period {
		t.Errorf("Expected period %d, got %d", period, f.parts.Period)
	}
	if f.parts.Freq != 100 {
		t.Errorf("Expected 100 Hz, got %d", f.parts.Freq)
	}
	if f.parts.Timer.Mode() != timerb.Up {
		t.Error("Expected timer in up mode")
	}
	ccr0 := f.chip.Peek16(sim.TimerAddr(0, device.TBxCCR0))
	if ccr0 != period-1 {
		t.Errorf("Expected CCR0 %d, got %d", period-1, ccr0)
	}
	if f.pwm1.MaxDuty() != period {
		t.Errorf("Expected max duty %d, got %d", period, f.pwm1.MaxDuty())
	}
}

func TestInitLeavesOutputLow(t *testing.T) {
	f := newFixture(t)
	if f.pwm1.Duty() != 0 {
		t.Errorf("Expected zero duty, got %d", f.pwm1.Duty())
	}
	if got := f.highCounts(); got != 0 {
		t.Errorf("Expected disabled output low, got %d high counts", got)
	}
}

func TestDutyCycle(t *testing.T) {
	tests := []struct {
		duty uint16
		high int
	}{
		{0, 0},
		{2500, 2500},
		{5000, 5000},
		{9999, 9999},
		{period, period},
	}
	for _, tt := range tests {
		f := newFixture(t)
		f.pwm1.Enable()
		if err := f.pwm1.SetDuty(tt.duty); err != nil {
			t.Fatalf("SetDuty(%d): %v", tt.duty, err)
		}
		if got := f.pwm1.Duty(); got != tt.duty {
			t.Errorf("Expected duty %d, got %d", tt.duty, got)
		}
		if got := f.highCounts(); got != tt.high {
			t.Errorf("Duty %d: expected %d high counts, got %d", tt.duty, tt.high, got)
		}
	}
}

func TestDisableHoldsLow(t *testing.T) {
	f := newFixture(t)
	f.pwm1.Enable()
	f.pwm1.SetDuty(5000)
	if got := f.highCounts(); got != 5000 {
		t.Fatalf("Expected 5000 high counts, got %d", got)
	}

	f.pwm1.Disable()
	if got := f.highCounts(); got != 0 {
		t.Errorf("Expected disabled output low, got %d high counts", got)
	}
	if f.pwm1.Duty() != 5000 {
		t.Error("Disable should keep the duty")
	}
}

func TestSetDutyAbovePeriod(t *testing.T) {
	f := newFixture(t)
	f.pwm1.SetDuty(100)
	err := f.pwm1.SetDuty(period + 1)
	if errcode.Of(err) != errcode.InvalidParams {
		t.Errorf("Expected InvalidParams, got %v", err)
	}
	if f.pwm1.Duty() != 100 {
		t.Errorf("Rejected duty should not change the compare value, got %d", f.pwm1.Duty())
	}
}

func TestSetDutyRecordsEvent(t *testing.T) {
	f := newFixture(t)
	debug.Clear()
	f.pwm1.SetDuty(1234)
	evts := debug.Events()
	if len(evts) != 1 {
		t.Fatalf("Expected 1 event, got %d", len(evts))
	}
	want := debug.Event{Kind: debug.EvtDuty, A: 1, B: 1234}
	if evts[0] != want {
		t.Errorf("Expected %+v, got %+v", want, evts[0])
	}
	debug.Clear()
}

func TestZeroPeriod(t *testing.T) {
	sim.New().Install()
	smclk, _ := clock.Frozen(1000000, clock.REFOCLK)
	_, err := pwm.New3(timerb.Split3[timerb.TB1](), pwm.TimerConfigSmclk(smclk), 0)
	if errcode.Of(err) != errcode.InvalidParams {
		t.Errorf("Expected InvalidParams, got %v", err)
	}
}

func TestInvalidConfig(t *testing.T) {
	sim.New().Install()
	smclk, _ := clock.Frozen(1000000, clock.REFOCLK)
	cfg := pwm.TimerConfigSmclk(smclk).WithDividers(timerb.Div1, 9)
	_, err := pwm.New3(timerb.Split3[timerb.TB2](), cfg, 100)
	if errcode.Of(err) != errcode.InvalidParams {
		t.Errorf("Expected InvalidParams, got %v", err)
	}
}

func TestCountFreq(t *testing.T) {
	smclk, aclk := clock.Frozen(1000000, clock.REFOCLK)
	if got := pwm.TimerConfigSmclk(smclk).WithDividers(timerb.Div4, timerb.ExDiv5).CountFreq(); got != 50000 {
		t.Errorf("Expected 50000, got %d", got)
	}
	cfg := pwm.TimerConfigAclk(aclk)
	if cfg.Source != timerb.ACLK {
		t.Error("Expected ACLK source")
	}
	if got := cfg.CountFreq(); got != clock.REFOCLK {
		t.Errorf("Expected %d, got %d", clock.REFOCLK, got)
	}
}

func TestNew7(t *testing.T) {
	c := sim.New().Install()
	p6 := gpio.Split[gpio.Port6](pmm.Unlock())
	_, aclk := clock.Frozen(1000000, clock.REFOCLK)

	parts, err := pwm.New7(timerb.Split7[timerb.TB3](), pwm.TimerConfigAclk(aclk), 64)
	if err != nil {
		t.Fatalf("New7: %v", err)
	}
	if parts.Freq != 512 {
		t.Errorf("Expected 512 Hz, got %d", parts.Freq)
	}

	p := pwm.Init(parts.PWM6, gpio.OutputAlternate1(p6.Pin5.ToOutput(), gpio.P6_5Alt1))
	p.Enable()
	p.SetDuty(16)
	c.Advance(3, 63)
	high := 0
	for i := 0; i < 64; i++ {
		c.Advance(3, 1)
		if c.Output(3, 6) {
			high++
		}
	}
	if high != 16 {
		t.Errorf("Expected 16 high counts, got %d", high)
	}
}
