package gpio

import (
	"msp430hal/debug"
	"msp430hal/errcode"
)

// Edge interrupt controls of an input pin on ports 1 to 4. Each takes the
// input handle, so they are unavailable once the pin has moved to another
// state.

// SelectRisingEdge latches the flag on a low-to-high transition. Changing
// the edge can set the flag, so it is cleared afterwards.
func SelectRisingEdge[P InterruptPort, N Pin, U Pull](Input[P, N, U]) {
	r := regs[P]()
	m := SetMask[N]()
	r.Ies.ClearBits(m)
	r.Ifg.ClearBits(m)
}

// SelectFallingEdge latches the flag on a high-to-low transition.
func SelectFallingEdge[P InterruptPort, N Pin, U Pull](Input[P, N, U]) {
	r := regs[P]()
	m := SetMask[N]()
	r.Ies.SetBits(m)
	r.Ifg.ClearBits(m)
}

// EnableInterrupt lets the pin's flag raise the port interrupt.
func EnableInterrupt[P InterruptPort, N Pin, U Pull](Input[P, N, U]) {
	regs[P]().Ie.SetBits(SetMask[N]())
}

// DisableInterrupt masks the pin's interrupt. The flag still latches.
func DisableInterrupt[P InterruptPort, N Pin, U Pull](Input[P, N, U]) {
	regs[P]().Ie.ClearBits(SetMask[N]())
}

// SetInterruptFlag sets the pending flag in software.
func SetInterruptFlag[P InterruptPort, N Pin, U Pull](Input[P, N, U]) {
	regs[P]().Ifg.SetBits(SetMask[N]())
}

// ClearInterruptFlag clears the pending flag.
func ClearInterruptFlag[P InterruptPort, N Pin, U Pull](Input[P, N, U]) {
	regs[P]().Ifg.ClearBits(SetMask[N]())
}

// InterruptFlag reports whether the pending flag is set.
func InterruptFlag[P InterruptPort, N Pin, U Pull](Input[P, N, U]) bool {
	return regs[P]().Ifg.HasBits(SetMask[N]())
}

// WaitForInterrupt polls the pending flag without blocking. If the flag is
// set it is cleared and nil is returned, otherwise errcode.WouldBlock.
func WaitForInterrupt[P InterruptPort, N Pin, U Pull](p Input[P, N, U]) error {
	if !InterruptFlag(p) {
		return errcode.WouldBlock
	}
	ClearInterruptFlag(p)
	return nil
}

// Vector is a decoded port interrupt vector.
type Vector uint8

const (
	VectorNone Vector = iota
	VectorPin0
	VectorPin1
	VectorPin2
	VectorPin3
	VectorPin4
	VectorPin5
	VectorPin6
	VectorPin7
)

// Pin returns the pin number the vector reports.
func (v Vector) Pin() (uint8, bool) {
	if v == VectorNone {
		return 0, false
	}
	return uint8(v - VectorPin0), true
}

func (v Vector) String() string {
	if n, ok := v.Pin(); ok {
		return "pin" + string(rune('0'+n))
	}
	return "none"
}

// decodeVector maps a PxIV value to a Vector. The hardware only produces
// even values up to 16.
func decodeVector(raw uint16) Vector {
	if raw > 16 || raw&1 != 0 {
		panic("gpio: invalid port interrupt vector")
	}
	return Vector(raw / 2)
}

// TakeInterruptVector reads the vector of port P: the lowest-numbered pin
// whose flag and enable are both set. The read clears that pin's flag, so
// each call consumes one pending interrupt. Call it from the port's
// interrupt handler only.
func TakeInterruptVector[P InterruptPort]() Vector {
	v := decodeVector(regs[P]().IV.Get())
	if v != VectorNone {
		var p P
		debug.Record(debug.EvtPortVector, uint16(p.Number()), uint16(v))
	}
	return v
}
