// Package pwm generates pulse-width modulated outputs with Timer_B.
//
// The timer runs in up mode with CCR0 holding the last count of the
// period, and each output block uses the reset/set output mode: the output
// is set at the start of every period and reset when the counter reaches
// the block's duty value. A duty of d therefore keeps the output high for d
// of every period counts.
package pwm

import (
	"msp430hal/clock"
	"msp430hal/debug"
	"msp430hal/errcode"
	"msp430hal/gpio"
	"msp430hal/timerb"
)

// TimerConfig is the clock setup of a PWM timer together with the
// resulting counter frequency.
type TimerConfig struct {
	timerb.Config
	freq uint32
}

// TimerConfigSmclk clocks the timer from SMCLK.
func TimerConfigSmclk(c clock.Smclk) TimerConfig {
	return TimerConfig{Config: timerb.Config{Source: timerb.SMCLK}, freq: c.Freq()}
}

// TimerConfigAclk clocks the timer from ACLK.
func TimerConfigAclk(c clock.Aclk) TimerConfig {
	return TimerConfig{Config: timerb.Config{Source: timerb.ACLK}, freq: c.Freq()}
}

// WithDividers returns cfg with both input dividers set.
func (cfg TimerConfig) WithDividers(div timerb.Divider, ex timerb.ExDivider) TimerConfig {
	cfg.Div = div
	cfg.ExDiv = ex
	return cfg
}

// CountFreq returns the counter frequency in Hz.
func (cfg TimerConfig) CountFreq() uint32 {
	return cfg.freq / cfg.Prescale()
}

// Channel is an output block that has not been bound to a pin yet.
type Channel[T timerb.Instance, C timerb.Block] struct {
	ch     timerb.Channel[T, C]
	period uint16
}

// PWM is an output block bound to its pin.
type PWM[T timerb.Instance, C timerb.Block] struct {
	ch     timerb.Channel[T, C]
	period uint16
}

// Parts3 holds the output blocks of TB0, TB1 or TB2.
type Parts3[T timerb.Instance3] struct {
	Timer  timerb.Timer[T]
	PWM1   Channel[T, timerb.CCR1]
	PWM2   Channel[T, timerb.CCR2]
	Period uint16
	Freq   uint32
}

// Parts7 holds the output blocks of TB3.
type Parts7[T timerb.Instance7] struct {
	Timer  timerb.Timer[T]
	PWM1   Channel[T, timerb.CCR1]
	PWM2   Channel[T, timerb.CCR2]
	PWM3   Channel[T, timerb.CCR3]
	PWM4   Channel[T, timerb.CCR4]
	PWM5   Channel[T, timerb.CCR5]
	PWM6   Channel[T, timerb.CCR6]
	Period uint16
	Freq   uint32
}

func start[T timerb.Instance](t timerb.Timer[T], ccr0 timerb.Channel[T, timerb.CCR0], cfg TimerConfig, period uint16) (uint32, error) {
	if period == 0 {
		return 0, errcode.Wrap(errcode.InvalidParams, "pwm.New", "zero period")
	}
	if err := t.Apply(cfg.Config); err != nil {
		return 0, err
	}
	ccr0.SetCompare(period - 1)
	t.Start(timerb.Up)
	freq := cfg.CountFreq() / uint32(period)
	debug.Println("pwm: period=" + debug.Itoa(int(period)) + " freq=" + debug.Itoa(int(freq)))
	return freq, nil
}

// New3 starts a three-block timer generating PWM periods of period counts.
func New3[T timerb.Instance3](tb timerb.Parts3[T], cfg TimerConfig, period uint16) (Parts3[T], error) {
	freq, err := start(tb.Timer, tb.CCR0, cfg, period)
	if err != nil {
		return Parts3[T]{}, err
	}
	return Parts3[T]{
		Timer:  tb.Timer,
		PWM1:   Channel[T, timerb.CCR1]{ch: tb.CCR1, period: period},
		PWM2:   Channel[T, timerb.CCR2]{ch: tb.CCR2, period: period},
		Period: period,
		Freq:   freq,
	}, nil
}

// New7 starts TB3 generating PWM periods of period counts.
func New7[T timerb.Instance7](tb timerb.Parts7[T], cfg TimerConfig, period uint16) (Parts7[T], error) {
	freq, err := start(tb.Timer, tb.CCR0, cfg, period)
	if err != nil {
		return Parts7[T]{}, err
	}
	return Parts7[T]{
		Timer:  tb.Timer,
		PWM1:   Channel[T, timerb.CCR1]{ch: tb.CCR1, period: period},
		PWM2:   Channel[T, timerb.CCR2]{ch: tb.CCR2, period: period},
		PWM3:   Channel[T, timerb.CCR3]{ch: tb.CCR3, period: period},
		PWM4:   Channel[T, timerb.CCR4]{ch: tb.CCR4, period: period},
		PWM5:   Channel[T, timerb.CCR5]{ch: tb.CCR5, period: period},
		PWM6:   Channel[T, timerb.CCR6]{ch: tb.CCR6, period: period},
		Period: period,
		Freq:   freq,
	}, nil
}

// Init binds c to the pin carrying its timer output and leaves the output
// disabled (low) with zero duty. The pin handle is taken as proof the pin
// is an output in the right alternate function; which pin carries which
// block is fixed by the device and not checked here.
func Init[T timerb.Instance, C timerb.Block, P gpio.Port, N gpio.Pin, F gpio.Function](c Channel[T, C], _ gpio.OutputAlt[P, N, F]) PWM[T, C] {
	p := PWM[T, C]{ch: c.ch, period: c.period}
	p.Disable()
	p.ch.SetCompare(0)
	return p
}

// Enable hands the output to the output unit.
func (p PWM[T, C]) Enable() {
	p.ch.SetOutputMode(timerb.ResetSet)
}

// Disable holds the output low.
func (p PWM[T, C]) Disable() {
	p.ch.SetOut(false)
	p.ch.SetOutputMode(timerb.Out)
}

// SetDuty sets the high time in counts, from 0 (always low) to MaxDuty
// (always high).
func (p PWM[T, C]) SetDuty(duty uint16) error {
	if duty > p.period {
		return errcode.Wrap(errcode.InvalidParams, "pwm.SetDuty", "duty above period")
	}
	p.ch.SetCompare(duty)
	var c C
	debug.Record(debug.EvtDuty, uint16(c.Num()), duty)
	return nil
}

// Duty returns the high time in counts.
func (p PWM[T, C]) Duty() uint16 {
	return p.ch.Compare()
}

// MaxDuty returns the duty that keeps the output high.
func (p PWM[T, C]) MaxDuty() uint16 {
	return p.period
}
