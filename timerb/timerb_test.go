package timerb_test

import (
	"testing"

	"msp430hal/debug"
	"msp430hal/device"
	"msp430hal/errcode"
	"msp430hal/sim"
	"msp430hal/timerb"
)

func TestStartStop(t *testing.T) {
	c := sim.New().Install()
	p := timerb.Split3[timerb.TB0]()

	if err := p.Timer.Apply(timerb.DefaultConfig()); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	p.CCR0.SetCompare(99)
	p.Timer.Start(timerb.Up)
	if p.Timer.Mode() != timerb.Up {
		t.Errorf("Expected up mode, got %d", p.Timer.Mode())
	}

	c.Advance(0, 50)
	if got := p.Timer.Count(); got != 50 {
		t.Errorf("Expected count 50, got %d", got)
	}

	p.Timer.Stop()
	if !p.Timer.IsStopped() {
		t.Error("Expected timer stopped")
	}
	c.Advance(0, 10)
	if got := p.Timer.Count(); got != 50 {
		t.Errorf("Stopped timer should hold its count, got %d", got)
	}

	p.Timer.Start(timerb.Continuous)
	if got := p.Timer.Count(); got != 0 {
		t.Errorf("Start should clear the counter, got %d", got)
	}
}

func TestUpModeOverflow(t *testing.T) {
	c := sim.New().Install()
	p := timerb.Split3[timerb.TB1]()
	p.Timer.Apply(timerb.DefaultConfig())
	p.CCR0.SetCompare(9)
	p.Timer.Start(timerb.Up)

	c.Advance(1, 9)
	if p.Timer.OverflowFlag() {
		t.Error("Overflow flag set before the period ended")
	}
	c.Advance(1, 1)
	if !p.Timer.OverflowFlag() {
		t.Error("Expected overflow flag at the period boundary")
	}
	if got := p.Timer.Count(); got != 0 {
		t.Errorf("Expected count 0 after wrap, got %d", got)
	}
	p.Timer.ClearOverflowFlag()
	if p.Timer.OverflowFlag() {
		t.Error("Expected overflow flag cleared")
	}

	c.Advance(1, 25)
	p.Timer.Reset()
	if p.Timer.OverflowFlag() || p.Timer.Count() != 0 {
		t.Error("Reset should clear the counter and the overflow flag")
	}
	if p.Timer.Mode() != timerb.Up {
		t.Error("Reset should not change the mode")
	}
}

func TestUpDownMode(t *testing.T) {
	c := sim.New().Install()
	p := timerb.Split3[timerb.TB0]()
	p.Timer.Apply(timerb.DefaultConfig())
	p.CCR0.SetCompare(4)
	p.Timer.Start(timerb.UpDown)

	want := []uint16{1, 2, 3, 4, 3, 2, 1, 0, 1}
	for i, w := range want {
		c.Advance(0, 1)
		if got := p.Timer.Count(); got != w {
			t.Fatalf("Step %d: expected %d, got %d", i, w, got)
		}
		if i == 7 && !p.Timer.OverflowFlag() {
			t.Error("Expected overflow flag on reaching zero")
		}
	}
}

// ConfigClock is one masked write and must leave the mode and interrupt
// enable alone.
func TestConfigClockPreservesOtherFields(t *testing.T) {
	c := sim.New().Install()
	p := timerb.Split3[timerb.TB2]()
	ctl := sim.TimerAddr(2, device.TBxCTL)

	p.Timer.EnableInterrupt()
	p.Timer.Start(timerb.Continuous)
	c.ResetTrace()
	p.Timer.ConfigClock(timerb.ACLK, timerb.Div4)

	tr := c.Trace()
	if len(tr) != 1 || tr[0].Op != sim.Modify || tr[0].Addr != ctl {
		t.Fatalf("Expected one modify of TB2CTL, got %+v", tr)
	}
	want := device.TBIE | 2<<device.MC_Pos | 1<<device.TBSSEL_Pos | 2<<device.ID_Pos
	if got := c.Peek16(ctl); got != want {
		t.Errorf("Expected TB2CTL %#x, got %#x", want, got)
	}

	p.Timer.DisableInterrupt()
	if c.Peek16(ctl)&device.TBIE != 0 {
		t.Error("Expected TBIE cleared")
	}
}

func TestPrescale(t *testing.T) {
	c := sim.New().Install()
	p := timerb.Split3[timerb.TB0]()
	cfg := timerb.Config{Source: timerb.SMCLK, Div: timerb.Div2, ExDiv: timerb.ExDiv3}
	if got := cfg.Prescale(); got != 6 {
		t.Errorf("Expected prescale 6, got %d", got)
	}
	if err := p.Timer.Apply(cfg); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if !p.Timer.IsStopped() {
		t.Error("Apply should leave the timer stopped")
	}
	p.Timer.Start(timerb.Continuous)
	c.Advance(0, 60)
	if got := p.Timer.Count(); got != 10 {
		t.Errorf("Expected count 10, got %d", got)
	}
}

func TestDividerFactors(t *testing.T) {
	if timerb.Div8.Factor() != 8 || timerb.Div1.Factor() != 1 {
		t.Error("Wrong Divider factor")
	}
	if timerb.ExDiv8.Factor() != 8 || timerb.ExDiv5.Factor() != 5 {
		t.Error("Wrong ExDivider factor")
	}
}

func TestConfigValidate(t *testing.T) {
	c := sim.New().Install()
	p := timerb.Split3[timerb.TB0]()

	bad := []timerb.Config{
		{Source: 4},
		{Source: timerb.SMCLK, Div: 4},
		{Source: timerb.SMCLK, ExDiv: 8},
	}
	for _, cfg := range bad {
		c.ResetTrace()
		err := p.Timer.Apply(cfg)
		if errcode.Of(err) != errcode.InvalidParams {
			t.Errorf("%+v: expected InvalidParams, got %v", cfg, err)
		}
		if len(c.Trace()) != 0 {
			t.Errorf("%+v: rejected config should not touch the timer", cfg)
		}
	}
	if err := timerb.DefaultConfig().Validate(); err != nil {
		t.Errorf("Default config should be valid, got %v", err)
	}
}

// measure steps timer one clock at a time and records the output of block
// n after each step.
func measure(c *sim.Chip, timer, n, ticks int) (high, rises, falls int) {
	prev := c.Output(timer, n)
	for i := 0; i < ticks; i++ {
		c.Advance(timer, 1)
		now := c.Output(timer, n)
		if now {
			high++
		}
		if now && !prev {
			rises++
		}
		if !now && prev {
			falls++
		}
		prev = now
	}
	return high, rises, falls
}

func TestCompareOutputWaveform(t *testing.T) {
	tests := []struct {
		mode timerb.OutputMode
		high int
	}{
		{timerb.ResetSet, 7500},
		{timerb.SetReset, 22500},
	}
	for _, tt := range tests {
		c := sim.New().Install()
		p := timerb.Split3[timerb.TB0]()
		p.Timer.Apply(timerb.DefaultConfig())
		p.CCR0.SetCompare(9999)
		p.CCR1.SetCompare(2500)
		p.CCR1.SetOutputMode(tt.mode)
		if got := p.CCR1.OutputMode(); got != tt.mode {
			t.Errorf("Expected output mode %d, got %d", tt.mode, got)
		}
		p.Timer.Start(timerb.Up)

		c.Advance(0, 9999)
		high, rises, falls := measure(c, 0, 1, 30000)
		if high != tt.high {
			t.Errorf("Mode %d: expected %d high counts, got %d", tt.mode, tt.high, high)
		}
		if rises != 3 || falls != 3 {
			t.Errorf("Mode %d: expected 3 rises and 3 falls, got %d and %d", tt.mode, rises, falls)
		}
	}
}

func TestOutBitDrivesOutputInOutMode(t *testing.T) {
	c := sim.New().Install()
	p := timerb.Split7[timerb.TB3]()
	p.CCR4.SetOutputMode(timerb.Out)
	p.CCR4.SetOut(true)
	if !c.Output(3, 4) {
		t.Error("Expected output high")
	}
	p.CCR4.SetOut(false)
	if c.Output(3, 4) {
		t.Error("Expected output low")
	}
}

func TestTakeVectorPriority(t *testing.T) {
	c := sim.New().Install()
	p := timerb.Split7[timerb.TB3]()
	p.Timer.Apply(timerb.DefaultConfig())
	p.CCR2.SetCompare(5)
	p.CCR4.SetCompare(7)
	p.CCR5.SetCompare(3)
	p.CCR2.EnableInterrupt()
	p.CCR5.EnableInterrupt()
	p.Timer.EnableInterrupt()
	p.Timer.Start(timerb.Continuous)
	debug.Clear()
	defer debug.Clear()

	c.Advance(3, 0x10000)

	want := []timerb.Vector{timerb.VectorCCR2, timerb.VectorCCR5, timerb.VectorOverflow, timerb.VectorNone}
	for i, w := range want {
		if got := p.Timer.TakeVector(); got != w {
			t.Errorf("Read %d: expected %d, got %d", i, w, got)
		}
	}

	evts := debug.Events()
	wantEvts := []debug.Event{
		{Kind: debug.EvtTimerVector, A: 3, B: 0x04},
		{Kind: debug.EvtTimerVector, A: 3, B: 0x0A},
		{Kind: debug.EvtTimerVector, A: 3, B: device.TBIVOverflow},
	}
	if len(evts) != len(wantEvts) {
		t.Fatalf("Expected %d events, got %+v", len(wantEvts), evts)
	}
	for i := range wantEvts {
		if evts[i] != wantEvts[i] {
			t.Errorf("Event %d: expected %+v, got %+v", i, wantEvts[i], evts[i])
		}
	}
	if !p.CCR4.Flag() {
		t.Error("Disabled block should keep its flag")
	}
	p.CCR4.ClearFlag()
	if p.CCR4.Flag() {
		t.Error("Expected flag cleared")
	}

	if b, ok := timerb.VectorCCR5.Block(); !ok || b != 5 {
		t.Errorf("Expected block 5, got %d (%v)", b, ok)
	}
	if _, ok := timerb.VectorOverflow.Block(); ok {
		t.Error("Overflow vector should report no block")
	}
}

func TestChannelWaitForFlag(t *testing.T) {
	c := sim.New().Install()
	p := timerb.Split3[timerb.TB2]()
	p.Timer.Apply(timerb.DefaultConfig())
	p.CCR2.SetCompare(10)
	p.Timer.Start(timerb.Continuous)

	if err := p.CCR2.WaitForFlag(); !errcode.IsWouldBlock(err) {
		t.Errorf("Expected WouldBlock, got %v", err)
	}
	c.Advance(2, 10)
	if err := p.CCR2.WaitForFlag(); err != nil {
		t.Errorf("Expected flag after the compare, got %v", err)
	}
	if err := p.CCR2.WaitForFlag(); !errcode.IsWouldBlock(err) {
		t.Errorf("Expected the flag to be consumed, got %v", err)
	}
}

func TestCapture(t *testing.T) {
	c := sim.New().Install()
	p := timerb.Split3[timerb.TB1]()
	cctl := sim.TimerAddr(1, device.TBxCCTL0+2)

	p.Timer.Apply(timerb.DefaultConfig())
	p.CCR1.SetCaptureMode(timerb.RisingEdge, timerb.InputB, true)
	want := device.CAP | device.SCS | 1<<device.CM_Pos | 1<<device.CCIS_Pos
	if got := c.Peek16(cctl); got != want {
		t.Errorf("Expected CCTL1 %#x, got %#x", want, got)
	}
	p.Timer.Start(timerb.Continuous)
	debug.Clear()
	defer debug.Clear()

	if ov, pending := p.CCR1.TakeCapture(); ov || pending {
		t.Error("Expected no capture yet")
	}

	c.Advance(1, 42)
	c.Capture(1, 1)
	if ov, pending := p.CCR1.TakeCapture(); ov || !pending {
		t.Errorf("Expected (false, true), got (%v, %v)", ov, pending)
	}
	if got := p.CCR1.Compare(); got != 42 {
		t.Errorf("Expected captured count 42, got %d", got)
	}

	c.Advance(1, 8)
	c.Capture(1, 1)
	c.Advance(1, 8)
	c.Capture(1, 1)
	if ov, pending := p.CCR1.TakeCapture(); !ov || !pending {
		t.Errorf("Expected (true, true), got (%v, %v)", ov, pending)
	}
	if got := p.CCR1.Compare(); got != 58 {
		t.Errorf("Expected the latest capture 58, got %d", got)
	}
	evts := debug.Events()
	if len(evts) != 2 {
		t.Fatalf("Expected 2 capture events, got %+v", evts)
	}
	if want := (debug.Event{Kind: debug.EvtCapture, A: 1, B: 42}); evts[0] != want {
		t.Errorf("Expected %+v, got %+v", want, evts[0])
	}
	if want := (debug.Event{Kind: debug.EvtCapture, A: 1, B: 58}); evts[1] != want {
		t.Errorf("Expected %+v, got %+v", want, evts[1])
	}
	if ov, pending := p.CCR1.TakeCapture(); ov || pending {
		t.Error("Expected flags cleared after TakeCapture")
	}

	p.CCR1.SetCompareMode()
	if c.Peek16(cctl)&device.CAP != 0 {
		t.Error("Expected CAP cleared in compare mode")
	}
}
