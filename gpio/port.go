package gpio

import (
	"msp430hal/device"
	"msp430hal/reg"
)

// Registers describes the register block of one port. Every pin handle of
// the port aliases the same block, so all writes through it are masked.
type Registers struct {
	In   reg.Register8
	Out  reg.Register8
	Dir  reg.Register8
	Ren  reg.Register8
	Sel0 reg.Register8
	Sel1 reg.Register8
	Selc reg.Register8

	// Interrupt logic, valid on ports 1 to 4 only.
	Ies reg.Register8
	Ie  reg.Register8
	Ifg reg.Register8
	IV  reg.Register16
}

func newRegisters(pair uintptr, odd, interrupts bool) Registers {
	var o uintptr
	iv := device.PxIVEven
	if odd {
		o = 1
		iv = device.PxIVOdd
	}
	r := Registers{
		In:   reg.Register8{Addr: pair + device.PxIN + o},
		Out:  reg.Register8{Addr: pair + device.PxOUT + o},
		Dir:  reg.Register8{Addr: pair + device.PxDIR + o},
		Ren:  reg.Register8{Addr: pair + device.PxREN + o},
		Sel0: reg.Register8{Addr: pair + device.PxSEL0 + o},
		Sel1: reg.Register8{Addr: pair + device.PxSEL1 + o},
		Selc: reg.Register8{Addr: pair + device.PxSELC + o},
	}
	if interrupts {
		r.Ies = reg.Register8{Addr: pair + device.PxIES + o}
		r.Ie = reg.Register8{Addr: pair + device.PxIE + o}
		r.Ifg = reg.Register8{Addr: pair + device.PxIFG + o}
		r.IV = reg.Register16{Addr: pair + iv}
	}
	return r
}

var ports = [6]Registers{
	newRegisters(device.PAStart, false, true),
	newRegisters(device.PAStart, true, true),
	newRegisters(device.PBStart, false, true),
	newRegisters(device.PBStart, true, true),
	newRegisters(device.PCStart, false, false),
	newRegisters(device.PCStart, true, false),
}

// Port identifies a GPIO port at compile time.
type Port interface {
	Number() uint8
	Registers() *Registers
}

// InterruptPort is a port with edge-triggered interrupt logic.
type InterruptPort interface {
	Port
	interruptCapable()
}

// Port tokens.
type (
	Port1 struct{}
	Port2 struct{}
	Port3 struct{}
	Port4 struct{}
	Port5 struct{}
	Port6 struct{}
)

func (Port1) Number() uint8 { return 1 }
func (Port2) Number() uint8 { return 2 }
func (Port3) Number() uint8 { return 3 }
func (Port4) Number() uint8 { return 4 }
func (Port5) Number() uint8 { return 5 }
func (Port6) Number() uint8 { return 6 }

func (Port1) Registers() *Registers { return &ports[0] }
func (Port2) Registers() *Registers { return &ports[1] }
func (Port3) Registers() *Registers { return &ports[2] }
func (Port4) Registers() *Registers { return &ports[3] }
func (Port5) Registers() *Registers { return &ports[4] }
func (Port6) Registers() *Registers { return &ports[5] }

func (Port1) interruptCapable() {}
func (Port2) interruptCapable() {}
func (Port3) interruptCapable() {}
func (Port4) interruptCapable() {}

// Pin identifies one of the eight pins of a port at compile time.
type Pin interface {
	Num() uint8
}

// Pin tokens.
type (
	Pin0 struct{}
	Pin1 struct{}
	Pin2 struct{}
	Pin3 struct{}
	Pin4 struct{}
	Pin5 struct{}
	Pin6 struct{}
	Pin7 struct{}
)

func (Pin0) Num() uint8 { return 0 }
func (Pin1) Num() uint8 { return 1 }
func (Pin2) Num() uint8 { return 2 }
func (Pin3) Num() uint8 { return 3 }
func (Pin4) Num() uint8 { return 4 }
func (Pin5) Num() uint8 { return 5 }
func (Pin6) Num() uint8 { return 6 }
func (Pin7) Num() uint8 { return 7 }

// SetMask returns the mask with only pin N's bit set.
func SetMask[N Pin]() uint8 {
	var n N
	return reg.Mask[uint8](n.Num())
}

// ClearMask returns the mask with every bit but pin N's set.
func ClearMask[N Pin]() uint8 {
	return ^SetMask[N]()
}

func regs[P Port]() *Registers {
	var p P
	return p.Registers()
}
