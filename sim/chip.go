//go:build !tinygo

// Package sim models the peripheral address space of an MSP430FR2355 on the
// host, so register-level code can run and be tested without hardware.
//
// A Chip implements reg.Bus. Besides plain memory it reproduces the side
// effects the HAL depends on: PxSELC toggling, read-to-clear vector
// registers, self-clearing TBCLR, the LOCKLPM5 I/O lock, pin edge detection
// and the Timer_B counter with its output units.
package sim

import (
	"strconv"
	"sync"

	"msp430hal/device"
	"msp430hal/reg"
)

const memSize = 0x1000

// Op is the kind of a recorded bus access.
type Op uint8

const (
	Load Op = iota
	Store
	Modify
)

func (o Op) String() string {
	switch o {
	case Load:
		return "load"
	case Store:
		return "store"
	case Modify:
		return "modify"
	}
	return "op(" + strconv.Itoa(int(o)) + ")"
}

// Access is one recorded bus access. For Modify, Value is the result and
// Clear, Set and Flip are the masks the caller passed.
type Access struct {
	Op    Op
	Width uint8
	Addr  uintptr
	Value uint16

	Clear, Set, Flip uint16
}

var (
	portBases     = [3]uintptr{device.PAStart, device.PBStart, device.PCStart}
	timerBases    = [4]uintptr{device.TB0Start, device.TB1Start, device.TB2Start, device.TB3Start}
	timerChannels = [4]int{3, 3, 3, 7}
)

// Ports 1 to 4 have interrupt logic.
const interruptPorts = 4

type pinRef struct {
	port, pin int
}

type portState struct {
	driven uint8 // pins with an external driver
	ext    uint8 // external driver levels
	level  uint8 // resolved pin levels
	wired  uint8 // pins fed by another pin
	src    [8]pinRef
}

type timerState struct {
	base     uintptr
	channels int
	prescale uint32
	down     bool
	out      [7]bool
}

// Chip is a simulated MSP430FR2355 peripheral space. The zero value is not
// usable; call New.
type Chip struct {
	mu         sync.Mutex
	mem        [memSize]byte
	trace      []Access
	ports      [6]portState
	timers     [4]timerState
	violations int
}

// New returns a chip in its power-on reset state.
func New() *Chip {
	c := &Chip{}
	c.put16(device.PM5CTL0, device.LOCKLPM5)
	c.put16(device.WDTCTL, 0x0004)
	for i, b := range timerBases {
		c.timers[i] = timerState{base: b, channels: timerChannels[i]}
	}
	return c
}

// Install makes c the bus behind every reg access and returns c.
func (c *Chip) Install() *Chip {
	reg.SetBus(c)
	return c
}

// PortAddr returns the address of register off (device.PxIN and so on) of
// port 1 to 6.
func PortAddr(port int, off uintptr) uintptr {
	p := port - 1
	switch off {
	case device.PxIVEven, device.PxIVOdd:
		if p%2 == 0 {
			return portBases[p/2] + device.PxIVEven
		}
		return portBases[p/2] + device.PxIVOdd
	}
	return portBases[p/2] + off + uintptr(p%2)
}

// TimerAddr returns the address of register off of timer TB0 to TB3.
func TimerAddr(timer int, off uintptr) uintptr {
	return timerBases[timer] + off
}

func hex(addr uintptr) string {
	return "0x" + strconv.FormatUint(uint64(addr), 16)
}

// Load8 implements reg.Bus.
func (c *Chip) Load8(addr uintptr) uint8 {
	c.mu.Lock()
	defer c.mu.Unlock()
	v := c.read8(addr)
	c.record(Access{Op: Load, Width: 8, Addr: addr, Value: uint16(v)})
	return v
}

// Load16 implements reg.Bus. Reading a vector register clears the flag it
// reports.
func (c *Chip) Load16(addr uintptr) uint16 {
	c.mu.Lock()
	defer c.mu.Unlock()
	var v uint16
	if p, off, ok := decodePort(addr); ok && isPortIV(off) {
		v = c.takePortVector(p)
	} else if t, off, ok := decodeTimer(addr); ok && off == device.TBxIV {
		v = c.takeTimerVector(t)
	} else {
		v = c.read16(addr)
	}
	c.record(Access{Op: Load, Width: 16, Addr: addr, Value: v})
	return v
}

// Store8 implements reg.Bus.
func (c *Chip) Store8(addr uintptr, value uint8) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.record(Access{Op: Store, Width: 8, Addr: addr, Value: uint16(value)})
	c.write8(addr, value)
}

// Store16 implements reg.Bus.
func (c *Chip) Store16(addr uintptr, value uint16) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.record(Access{Op: Store, Width: 16, Addr: addr, Value: value})
	c.write16(addr, value)
}

// Modify8 implements reg.Bus as one indivisible update.
func (c *Chip) Modify8(addr uintptr, clear, set, flip uint8) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v := (c.read8(addr)&^clear | set) ^ flip
	c.record(Access{Op: Modify, Width: 8, Addr: addr, Value: uint16(v),
		Clear: uint16(clear), Set: uint16(set), Flip: uint16(flip)})
	c.write8(addr, v)
}

// Modify16 implements reg.Bus as one indivisible update.
func (c *Chip) Modify16(addr uintptr, clear, set, flip uint16) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v := (c.read16(addr)&^clear | set) ^ flip
	c.record(Access{Op: Modify, Width: 16, Addr: addr, Value: v, Clear: clear, Set: set, Flip: flip})
	c.write16(addr, v)
}

func (c *Chip) record(a Access) {
	c.trace = append(c.trace, a)
	logDebug(ComponentBus, a.Op.String(), "addr", hex(a.Addr), "width", a.Width, "value", a.Value)
}

// Trace returns a copy of the accesses recorded since the last ResetTrace.
func (c *Chip) Trace() []Access {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Access, len(c.trace))
	copy(out, c.trace)
	return out
}

// ResetTrace drops the recorded accesses.
func (c *Chip) ResetTrace() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.trace = c.trace[:0]
}

// Peek8 reads memory directly, without side effects or tracing.
func (c *Chip) Peek8(addr uintptr) uint8 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if p, off, ok := decodePort(addr); ok && off == device.PxIN {
		return c.ports[p].level
	}
	return c.mem[addr]
}

// Peek16 reads a memory word directly, without side effects or tracing.
func (c *Chip) Peek16(addr uintptr) uint16 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.get16(addr)
}

// Poke8 writes memory directly, without side effects or tracing.
func (c *Chip) Poke8(addr uintptr, value uint8) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mem[addr] = value
}

// Poke16 writes a memory word directly, without side effects or tracing.
func (c *Chip) Poke16(addr uintptr, value uint16) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.put16(addr, value)
}

// WatchdogViolations returns how many WDTCTL writes carried a bad password.
// Real silicon resets on each of them.
func (c *Chip) WatchdogViolations() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.violations
}

func (c *Chip) get16(addr uintptr) uint16 {
	return uint16(c.mem[addr]) | uint16(c.mem[addr+1])<<8
}

func (c *Chip) put16(addr uintptr, v uint16) {
	c.mem[addr] = byte(v)
	c.mem[addr+1] = byte(v >> 8)
}

func (c *Chip) read8(addr uintptr) uint8 {
	if p, off, ok := decodePort(addr); ok {
		switch off {
		case device.PxIN:
			return c.ports[p].level
		case device.PxSELC:
			return 0
		}
	}
	if addr == device.WDTCTL+1 {
		return uint8(device.WDTPWRead >> 8)
	}
	return c.mem[addr]
}

func (c *Chip) read16(addr uintptr) uint16 {
	if addr == device.WDTCTL {
		return device.WDTPWRead | uint16(c.mem[addr])
	}
	if _, _, ok := decodePort(addr); ok {
		return uint16(c.read8(addr)) | uint16(c.read8(addr+1))<<8
	}
	return c.get16(addr)
}

func (c *Chip) write8(addr uintptr, v uint8) {
	if addr == device.WDTCTL || addr == device.WDTCTL+1 {
		c.violation("byte write")
		return
	}
	p, off, ok := decodePort(addr)
	if !ok {
		c.mem[addr] = v
		if addr == device.PM5CTL0 {
			c.pmmChanged()
		}
		return
	}
	switch {
	case off == device.PxIN:
		logWarn(ComponentPort, "write to read-only PxIN ignored", "port", p+1)
		return
	case off == device.PxSELC:
		c.mem[PortAddr(p+1, device.PxSEL0)] ^= v
		c.mem[PortAddr(p+1, device.PxSEL1)] ^= v
		logDebug(ComponentPort, "select toggled", "port", p+1, "mask", v)
	case isPortIV(off):
		if p < interruptPorts {
			c.takePortVector(p)
		}
		return
	default:
		c.mem[addr] = v
	}
	c.refreshPins()
}

func (c *Chip) write16(addr uintptr, v uint16) {
	if addr == device.WDTCTL {
		if v&0xFF00 != device.WDTPW {
			c.violation("bad password")
			return
		}
		c.mem[addr] = byte(v)
		logDebug(ComponentWatchdog, "control written", "hold", v&device.WDTHOLD != 0)
		return
	}
	if p, off, ok := decodePort(addr); ok {
		if isPortIV(off) {
			if p < interruptPorts {
				c.takePortVector(p)
			}
			return
		}
		c.write8(addr, byte(v))
		c.write8(addr+1, byte(v>>8))
		return
	}
	if t, off, ok := decodeTimer(addr); ok {
		c.writeTimer(t, off, v)
		return
	}
	c.put16(addr, v)
	if addr == device.PM5CTL0 {
		c.pmmChanged()
	}
}

func (c *Chip) violation(reason string) {
	c.violations++
	logWarn(ComponentWatchdog, "password violation", "reason", reason)
}

func (c *Chip) pmmChanged() {
	logInfo(ComponentPMM, "PM5CTL0 written", "locked", c.locked())
	c.refreshPins()
}

func (c *Chip) locked() bool {
	return c.get16(device.PM5CTL0)&device.LOCKLPM5 != 0
}

func isPortIV(off uintptr) bool {
	return off == device.PxIVEven || off == device.PxIVOdd
}

// decodePort maps addr to a zero-based port index and the register offset
// used by PortAddr.
func decodePort(addr uintptr) (int, uintptr, bool) {
	for i, b := range portBases {
		if addr < b || addr >= b+0x20 {
			continue
		}
		d := addr - b
		switch d {
		case device.PxIVEven, device.PxIVEven + 1:
			return 2 * i, device.PxIVEven, true
		case device.PxIVOdd, device.PxIVOdd + 1:
			return 2*i + 1, device.PxIVOdd, true
		}
		return 2*i + int(d&1), d &^ 1, true
	}
	return 0, 0, false
}

func decodeTimer(addr uintptr) (int, uintptr, bool) {
	for i, b := range timerBases {
		if addr >= b && addr < b+0x30 {
			return i, addr - b, true
		}
	}
	return 0, 0, false
}
