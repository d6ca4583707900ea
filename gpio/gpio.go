// Package gpio configures and drives the digital I/O pins.
//
// Each pin is represented by a zero-size handle whose type records the
// port, the pin, the direction and the selected function. An operation that
// changes configuration returns a new handle typed to the new state; keep
// only the returned handle. Operations that are not legal in a state, and
// alternate functions the pin does not have, do not compile.
//
// Handles come from Split, once per port, after the I/O lock has been
// released:
//
//	p1 := gpio.Split[gpio.Port1](pmm.Unlock())
//	led := p1.Pin0.ToOutput()
//	led.SetHigh()
package gpio

// Pull is the resistor configuration of an input.
type Pull interface {
	apply(r *Registers, m uint8)
}

// Pull tokens.
type (
	Pullup   struct{}
	Pulldown struct{}
	Floating struct{}
)

func (Pullup) apply(r *Registers, m uint8) {
	r.Out.SetBits(m)
	r.Ren.SetBits(m)
}

func (Pulldown) apply(r *Registers, m uint8) {
	r.Out.ClearBits(m)
	r.Ren.SetBits(m)
}

func (Floating) apply(r *Registers, m uint8) {
	r.Ren.ClearBits(m)
}

func pull[P Port, N Pin, U Pull]() {
	var u U
	u.apply(regs[P](), SetMask[N]())
}

// Input is pin N of port P configured as a GPIO input with pull U.
type Input[P Port, N Pin, U Pull] struct{}

// Output is pin N of port P configured as a GPIO output.
type Output[P Port, N Pin] struct{}

// Pullup enables the pull-up resistor.
func (Input[P, N, U]) Pullup() Input[P, N, Pullup] {
	pull[P, N, Pullup]()
	return Input[P, N, Pullup]{}
}

// Pulldown enables the pull-down resistor.
func (Input[P, N, U]) Pulldown() Input[P, N, Pulldown] {
	pull[P, N, Pulldown]()
	return Input[P, N, Pulldown]{}
}

// Floating disables the pull resistor.
func (Input[P, N, U]) Floating() Input[P, N, Floating] {
	pull[P, N, Floating]()
	return Input[P, N, Floating]{}
}

// ToOutput turns the pin into an output. The output level is whatever
// PxOUT holds, which for a pulled input is the pull direction.
func (Input[P, N, U]) ToOutput() Output[P, N] {
	regs[P]().Dir.SetBits(SetMask[N]())
	return Output[P, N]{}
}

// IsHigh reports whether the pin reads high.
func (Input[P, N, U]) IsHigh() bool {
	return regs[P]().In.HasBits(SetMask[N]())
}

// IsLow reports whether the pin reads low.
func (p Input[P, N, U]) IsLow() bool {
	return !p.IsHigh()
}

func toInput[P Port, N Pin, U Pull]() Input[P, N, U] {
	regs[P]().Dir.ClearBits(SetMask[N]())
	pull[P, N, U]()
	return Input[P, N, U]{}
}

// ToInputFloating turns the pin into an input without pull resistor.
func (Output[P, N]) ToInputFloating() Input[P, N, Floating] {
	return toInput[P, N, Floating]()
}

// ToInputPullup turns the pin into an input with pull-up.
func (Output[P, N]) ToInputPullup() Input[P, N, Pullup] {
	return toInput[P, N, Pullup]()
}

// ToInputPulldown turns the pin into an input with pull-down.
func (Output[P, N]) ToInputPulldown() Input[P, N, Pulldown] {
	return toInput[P, N, Pulldown]()
}

// SetHigh drives the pin high.
func (Output[P, N]) SetHigh() {
	regs[P]().Out.SetBits(SetMask[N]())
}

// SetLow drives the pin low.
func (Output[P, N]) SetLow() {
	regs[P]().Out.ClearBits(SetMask[N]())
}

// Set drives the pin to level.
func (o Output[P, N]) Set(level bool) {
	if level {
		o.SetHigh()
	} else {
		o.SetLow()
	}
}

// Toggle inverts the driven level.
func (Output[P, N]) Toggle() {
	regs[P]().Out.ToggleBits(SetMask[N]())
}

// IsSetHigh reports whether the pin is being driven high.
func (Output[P, N]) IsSetHigh() bool {
	return regs[P]().Out.HasBits(SetMask[N]())
}

// IsSetLow reports whether the pin is being driven low.
func (o Output[P, N]) IsSetLow() bool {
	return !o.IsSetHigh()
}
