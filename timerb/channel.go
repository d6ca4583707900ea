package timerb

import (
	"msp430hal/debug"
	"msp430hal/device"
	"msp430hal/errcode"
	"msp430hal/reg"
)

// Block identifies a capture/compare block.
type Block interface {
	Num() uint8
}

// Capture/compare blocks.
type (
	CCR0 struct{}
	CCR1 struct{}
	CCR2 struct{}
	CCR3 struct{}
	CCR4 struct{}
	CCR5 struct{}
	CCR6 struct{}
)

func (CCR0) Num() uint8 { return 0 }
func (CCR1) Num() uint8 { return 1 }
func (CCR2) Num() uint8 { return 2 }
func (CCR3) Num() uint8 { return 3 }
func (CCR4) Num() uint8 { return 4 }
func (CCR5) Num() uint8 { return 5 }
func (CCR6) Num() uint8 { return 6 }

// OutputMode is the output unit action (OUTMOD). Actions happen when the
// counter reaches CCRn (EQUn) and CCR0 (EQU0).
type OutputMode uint16

const (
	Out         OutputMode = iota // output follows the OUT bit
	Set                           // set on EQUn
	ToggleReset                   // toggle on EQUn, reset on EQU0
	SetReset                      // set on EQUn, reset on EQU0
	Toggle                        // toggle on EQUn
	Reset                         // reset on EQUn
	ToggleSet                     // toggle on EQUn, set on EQU0
	ResetSet                      // reset on EQUn, set on EQU0
)

// CaptureEdge selects which input edges capture (CM).
type CaptureEdge uint16

const (
	NoCapture CaptureEdge = iota
	RisingEdge
	FallingEdge
	BothEdges
)

// CaptureInput selects the capture input (CCIS).
type CaptureInput uint16

const (
	InputA CaptureInput = iota
	InputB
	InputGND
	InputVCC
)

// Channel controls capture/compare block C of instance T.
type Channel[T Instance, C Block] struct{}

func cctl[T Instance, C Block]() reg.Register16 {
	var c C
	return reg.Register16{Addr: addr[T](device.TBxCCTL0 + 2*uintptr(c.Num()))}
}

func ccr[T Instance, C Block]() reg.Register16 {
	var c C
	return reg.Register16{Addr: addr[T](device.TBxCCR0 + 2*uintptr(c.Num()))}
}

// SetCompare sets the compare value. For block 0 in up mode this is the
// last count of each period.
func (Channel[T, C]) SetCompare(v uint16) {
	ccr[T, C]().Set(v)
}

// Compare returns the compare value, or the latched count in capture mode.
func (Channel[T, C]) Compare() uint16 {
	return ccr[T, C]().Get()
}

// SetOutputMode selects the output unit action.
func (Channel[T, C]) SetOutputMode(m OutputMode) {
	cctl[T, C]().ReplaceBits(uint16(m), device.OUTMOD_Mask, device.OUTMOD_Pos)
}

// OutputMode returns the output unit action.
func (Channel[T, C]) OutputMode() OutputMode {
	return OutputMode(cctl[T, C]().Field(device.OUTMOD_Mask, device.OUTMOD_Pos))
}

// SetCompareMode puts the block in compare mode.
func (Channel[T, C]) SetCompareMode() {
	cctl[T, C]().ClearBits(device.CAP)
}

// SetCaptureMode puts the block in capture mode on the given edges of
// input. With sync set the capture is synchronized to the timer clock.
func (Channel[T, C]) SetCaptureMode(edge CaptureEdge, input CaptureInput, sync bool) {
	set := device.CAP | uint16(edge)<<device.CM_Pos | uint16(input)<<device.CCIS_Pos
	if sync {
		set |= device.SCS
	}
	cctl[T, C]().Modify(device.CM_Mask<<device.CM_Pos|device.CCIS_Mask<<device.CCIS_Pos|device.SCS, set)
}

// Flag reports whether CCIFG is set.
func (Channel[T, C]) Flag() bool {
	return cctl[T, C]().HasBits(device.CCIFG)
}

// ClearFlag clears CCIFG.
func (Channel[T, C]) ClearFlag() {
	cctl[T, C]().ClearBits(device.CCIFG)
}

// WaitForFlag polls CCIFG without blocking. If the flag is set it is
// cleared and nil is returned, otherwise errcode.WouldBlock.
func (ch Channel[T, C]) WaitForFlag() error {
	if !ch.Flag() {
		return errcode.WouldBlock
	}
	ch.ClearFlag()
	return nil
}

// EnableInterrupt lets CCIFG raise an interrupt.
func (Channel[T, C]) EnableInterrupt() {
	cctl[T, C]().SetBits(device.CCIE)
}

// DisableInterrupt masks the block's interrupt.
func (Channel[T, C]) DisableInterrupt() {
	cctl[T, C]().ClearBits(device.CCIE)
}

// TakeCapture reads the capture overflow and pending flags and clears
// exactly the ones it saw set. A capture that lands after the read stays
// pending for the next call.
func (Channel[T, C]) TakeCapture() (overflow, pending bool) {
	r := cctl[T, C]()
	seen := r.Get() & (device.COV | device.CCIFG)
	if seen != 0 {
		r.ClearBits(seen)
	}
	if seen&device.CCIFG != 0 {
		var c C
		debug.Record(debug.EvtCapture, uint16(c.Num()), ccr[T, C]().Get())
	}
	return seen&device.COV != 0, seen&device.CCIFG != 0
}

// SetOut sets the OUT bit, which drives the output in mode Out.
func (Channel[T, C]) SetOut(level bool) {
	if level {
		cctl[T, C]().SetBits(device.OUT)
	} else {
		cctl[T, C]().ClearBits(device.OUT)
	}
}

// Input reports the level of the selected capture input (CCI).
func (Channel[T, C]) Input() bool {
	return cctl[T, C]().HasBits(device.CCI)
}
