//go:build !tinygo

package sim

import "msp430hal/device"

// Drive applies an external level to pin of port (1 to 6), as a button or
// another device would. An edge on an interrupt-capable port latches PxIFG
// according to PxIES.
func (c *Chip) Drive(port, pin int, level bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	ps := &c.ports[port-1]
	m := uint8(1) << pin
	ps.driven |= m
	if level {
		ps.ext |= m
	} else {
		ps.ext &^= m
	}
	c.refreshPins()
}

// Release removes the external driver from a pin.
func (c *Chip) Release(port, pin int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ports[port-1].driven &^= 1 << pin
	c.refreshPins()
}

// Wire connects pin fromPin of fromPort to pin toPin of toPort. The target
// follows the source whenever the source is driven as an output.
func (c *Chip) Wire(fromPort, fromPin, toPort, toPin int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	ps := &c.ports[toPort-1]
	ps.wired |= 1 << toPin
	ps.src[toPin] = pinRef{port: fromPort - 1, pin: fromPin}
	c.refreshPins()
}

// Level returns the resolved level of a pin.
func (c *Chip) Level(port, pin int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ports[port-1].level&(1<<pin) != 0
}

func (c *Chip) portReg(p int, off uintptr) uint8 {
	return c.mem[PortAddr(p+1, off)]
}

// drives reports whether pin n of port p is actively driven by the chip.
func (c *Chip) drives(p, n int) bool {
	return !c.locked() && c.portReg(p, device.PxDIR)&(1<<n) != 0
}

func (c *Chip) resolve(p, n int) bool {
	m := uint8(1) << n
	if c.drives(p, n) {
		return c.portReg(p, device.PxOUT)&m != 0
	}
	ps := &c.ports[p]
	if ps.wired&m != 0 {
		s := ps.src[n]
		if c.drives(s.port, s.pin) {
			return c.portReg(s.port, device.PxOUT)&(1<<s.pin) != 0
		}
	}
	if ps.driven&m != 0 {
		return ps.ext&m != 0
	}
	if !c.locked() && c.portReg(p, device.PxREN)&m != 0 {
		return c.portReg(p, device.PxOUT)&m != 0
	}
	// Floating inputs keep their last level.
	return ps.level&m != 0
}

func (c *Chip) refreshPins() {
	var levels [6]uint8
	for p := range c.ports {
		for n := 0; n < 8; n++ {
			if c.resolve(p, n) {
				levels[p] |= 1 << n
			}
		}
	}
	for p := range c.ports {
		old := c.ports[p].level
		c.ports[p].level = levels[p]
		if p < interruptPorts && old != levels[p] {
			c.latchEdges(p, old, levels[p])
		}
	}
}

// latchEdges sets PxIFG for low-to-high transitions on pins with PxIES
// clear and high-to-low transitions on pins with PxIES set.
func (c *Chip) latchEdges(p int, old, now uint8) {
	ies := c.portReg(p, device.PxIES)
	rise := ^old & now &^ ies
	fall := old &^ now & ies
	if f := rise | fall; f != 0 {
		c.mem[PortAddr(p+1, device.PxIFG)] |= f
		logDebug(ComponentPort, "edge latched", "port", p+1, "flags", f)
	}
}

// takePortVector returns the PxIV value for the lowest pending enabled pin
// and clears that pin's flag.
func (c *Chip) takePortVector(p int) uint16 {
	ifg := PortAddr(p+1, device.PxIFG)
	pending := c.portReg(p, device.PxIE) & c.mem[ifg]
	for n := 0; n < 8; n++ {
		if pending&(1<<n) != 0 {
			c.mem[ifg] &^= 1 << n
			return uint16(device.PxIVPinStep * (n + 1))
		}
	}
	return device.PxIVNone
}
