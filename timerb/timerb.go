// Package timerb drives the Timer_B counter/capture-compare peripherals.
//
// A Timer value controls the counter of one instance; Channel values
// control its capture/compare blocks. Both are zero-size and bound to their
// instance at compile time. Fields that share a register with bits an
// interrupt handler may touch are always updated with a single masked
// write.
package timerb

import (
	"msp430hal/debug"
	"msp430hal/device"
	"msp430hal/errcode"
	"msp430hal/reg"
)

// Instance identifies a Timer_B peripheral.
type Instance interface {
	base() uintptr
	num() uint8
}

// Instance3 is an instance with three capture/compare blocks.
type Instance3 interface {
	Instance
	threeBlocks()
}

// Instance7 is an instance with seven capture/compare blocks.
type Instance7 interface {
	Instance
	sevenBlocks()
}

// Timer_B instances.
type (
	TB0 struct{}
	TB1 struct{}
	TB2 struct{}
	TB3 struct{}
)

func (TB0) base() uintptr { return device.TB0Start }
func (TB1) base() uintptr { return device.TB1Start }
func (TB2) base() uintptr { return device.TB2Start }
func (TB3) base() uintptr { return device.TB3Start }

func (TB0) num() uint8 { return 0 }
func (TB1) num() uint8 { return 1 }
func (TB2) num() uint8 { return 2 }
func (TB3) num() uint8 { return 3 }

func (TB0) threeBlocks() {}
func (TB1) threeBlocks() {}
func (TB2) threeBlocks() {}
func (TB3) sevenBlocks() {}

// ClockSource selects the counter clock (TBSSEL).
type ClockSource uint16

const (
	TBxCLK ClockSource = iota
	ACLK
	SMCLK
	INCLK
)

// Divider is the first input divider (ID).
type Divider uint16

const (
	Div1 Divider = iota
	Div2
	Div4
	Div8
)

// Factor returns the division ratio.
func (d Divider) Factor() uint32 { return 1 << d }

// ExDivider is the second input divider (TBIDEX), applied after Divider.
type ExDivider uint16

const (
	ExDiv1 ExDivider = iota
	ExDiv2
	ExDiv3
	ExDiv4
	ExDiv5
	ExDiv6
	ExDiv7
	ExDiv8
)

// Factor returns the division ratio.
func (d ExDivider) Factor() uint32 { return uint32(d) + 1 }

// Mode is the counting mode (MC).
type Mode uint16

const (
	Stop       Mode = iota // halted
	Up                     // 0 to CCR0, then back to 0
	Continuous             // 0 to 0xFFFF, then back to 0
	UpDown                 // 0 to CCR0, then down to 0
)

// Config is the clock setup of a timer.
type Config struct {
	Source ClockSource
	Div    Divider
	ExDiv  ExDivider
}

// DefaultConfig clocks the timer from SMCLK without division.
func DefaultConfig() Config {
	return Config{Source: SMCLK, Div: Div1, ExDiv: ExDiv1}
}

// Validate checks every field is in range.
func (c Config) Validate() error {
	if c.Source > INCLK || c.Div > Div8 || c.ExDiv > ExDiv8 {
		return errcode.Wrap(errcode.InvalidParams, "timerb.Config", "field out of range")
	}
	return nil
}

// Prescale returns the total input division ratio.
func (c Config) Prescale() uint32 {
	return c.Div.Factor() * c.ExDiv.Factor()
}

// Timer controls the counter of instance T.
type Timer[T Instance] struct{}

func addr[T Instance](off uintptr) uintptr {
	var t T
	return t.base() + off
}

func ctl[T Instance]() reg.Register16 { return reg.Register16{Addr: addr[T](device.TBxCTL)} }
func ex0[T Instance]() reg.Register16 { return reg.Register16{Addr: addr[T](device.TBxEX0)} }

// Reset clears the counter and the input dividers, and clears the overflow
// flag.
func (Timer[T]) Reset() {
	ctl[T]().Modify(device.TBIFG, device.TBCLR)
}

// Start clears the counter and the overflow flag and starts counting in
// mode m.
func (Timer[T]) Start(m Mode) {
	ctl[T]().Modify(device.MC_Mask<<device.MC_Pos|device.TBIFG, device.TBCLR|uint16(m)<<device.MC_Pos)
}

// Stop halts the counter, keeping its value.
func (Timer[T]) Stop() {
	ctl[T]().ReplaceBits(uint16(Stop), device.MC_Mask, device.MC_Pos)
}

// IsStopped reports whether the counter is halted.
func (Timer[T]) IsStopped() bool {
	return ctl[T]().Field(device.MC_Mask, device.MC_Pos) == uint16(Stop)
}

// Mode returns the counting mode.
func (Timer[T]) Mode() Mode {
	return Mode(ctl[T]().Field(device.MC_Mask, device.MC_Pos))
}

// ConfigClock selects the clock source and first divider. Change them only
// while the timer is stopped.
func (Timer[T]) ConfigClock(src ClockSource, div Divider) {
	ctl[T]().Modify(
		device.TBSSEL_Mask<<device.TBSSEL_Pos|device.ID_Mask<<device.ID_Pos,
		uint16(src)<<device.TBSSEL_Pos|uint16(div)<<device.ID_Pos,
	)
}

// SetExDivider sets the second input divider.
func (Timer[T]) SetExDivider(d ExDivider) {
	ex0[T]().ReplaceBits(uint16(d), device.TBIDEX_Mask, device.TBIDEX_Pos)
}

// Apply stops the timer and applies cfg. The counter is left stopped.
func (t Timer[T]) Apply(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	t.Stop()
	t.ConfigClock(cfg.Source, cfg.Div)
	t.SetExDivider(cfg.ExDiv)
	t.Reset()
	return nil
}

// Count returns the counter value.
func (Timer[T]) Count() uint16 {
	return reg.Register16{Addr: addr[T](device.TBxR)}.Get()
}

// OverflowFlag reports whether TBIFG is set.
func (Timer[T]) OverflowFlag() bool {
	return ctl[T]().HasBits(device.TBIFG)
}

// ClearOverflowFlag clears TBIFG.
func (Timer[T]) ClearOverflowFlag() {
	ctl[T]().ClearBits(device.TBIFG)
}

// EnableInterrupt lets TBIFG raise the timer interrupt.
func (Timer[T]) EnableInterrupt() {
	ctl[T]().SetBits(device.TBIE)
}

// DisableInterrupt masks the overflow interrupt.
func (Timer[T]) DisableInterrupt() {
	ctl[T]().ClearBits(device.TBIE)
}

// TakeVector reads TBxIV: the highest-priority enabled pending event among
// blocks 1 to 6 and the overflow, in that order. The read clears the
// reported flag. Call it from the timer's interrupt handler only.
func (Timer[T]) TakeVector() Vector {
	raw := reg.Register16{Addr: addr[T](device.TBxIV)}.Get()
	v := decodeVector(raw)
	if v != VectorNone {
		var t T
		debug.Record(debug.EvtTimerVector, uint16(t.num()), raw)
	}
	return v
}

// Vector is a decoded timer interrupt vector.
type Vector uint8

const (
	VectorNone Vector = iota
	VectorCCR1
	VectorCCR2
	VectorCCR3
	VectorCCR4
	VectorCCR5
	VectorCCR6
	VectorOverflow
)

// Block returns the capture/compare block the vector reports.
func (v Vector) Block() (uint8, bool) {
	if v == VectorNone || v == VectorOverflow {
		return 0, false
	}
	return uint8(v), true
}

func decodeVector(raw uint16) Vector {
	if raw > device.TBIVOverflow || raw&1 != 0 {
		panic("timerb: invalid interrupt vector")
	}
	return Vector(raw / 2)
}
