//go:build !tinygo

package sim

import (
	"msp430hal/device"
	"msp430hal/reg"
)

func cctl(n int) uintptr { return device.TBxCCTL0 + uintptr(2*n) }
func ccr(n int) uintptr  { return device.TBxCCR0 + uintptr(2*n) }

func (c *Chip) writeTimer(t int, off uintptr, v uint16) {
	ts := &c.timers[t]
	switch {
	case off == device.TBxCTL:
		if v&device.TBCLR != 0 {
			v &^= device.TBCLR
			c.put16(ts.base+device.TBxR, 0)
			ts.prescale = 0
			ts.down = false
			logDebug(ComponentTimer, "counter cleared", "timer", t)
		}
	case off == device.TBxIV:
		return
	case off >= device.TBxCCTL0 && off < device.TBxCCTL0+uintptr(2*ts.channels):
		n := int(off-device.TBxCCTL0) / 2
		if reg.Field(v, device.OUTMOD_Mask, device.OUTMOD_Pos) == 0 {
			ts.out[n] = v&device.OUT != 0
		}
	}
	c.put16(ts.base+off, v)
}

// takeTimerVector returns the TBxIV value for the highest-priority pending
// enabled event and clears its flag.
func (c *Chip) takeTimerVector(t int) uint16 {
	ts := &c.timers[t]
	for n := 1; n < ts.channels; n++ {
		a := ts.base + cctl(n)
		v := c.get16(a)
		if v&device.CCIE != 0 && v&device.CCIFG != 0 {
			c.put16(a, v&^device.CCIFG)
			return uint16(device.TBIVCCR1 * n)
		}
	}
	a := ts.base + device.TBxCTL
	if v := c.get16(a); v&device.TBIE != 0 && v&device.TBIFG != 0 {
		c.put16(a, v&^device.TBIFG)
		return device.TBIVOverflow
	}
	return device.TBIVNone
}

// Advance feeds clocks cycles of the selected clock source to timer TB0 to
// TB3. The input dividers, counting mode, compare flags and output units
// are applied per counter step.
func (c *Chip) Advance(timer int, clocks uint32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for ; clocks > 0; clocks-- {
		c.clock(timer)
	}
}

func (c *Chip) clock(t int) {
	ts := &c.timers[t]
	ctl := c.get16(ts.base + device.TBxCTL)
	mc := reg.Field(ctl, device.MC_Mask, device.MC_Pos)
	if mc == 0 {
		return
	}
	id := uint32(1) << reg.Field(ctl, device.ID_Mask, device.ID_Pos)
	ex := uint32(reg.Field(c.get16(ts.base+device.TBxEX0), device.TBIDEX_Mask, device.TBIDEX_Pos)) + 1
	ts.prescale++
	if ts.prescale < id*ex {
		return
	}
	ts.prescale = 0
	c.step(t, mc)
}

// step advances the counter once. In up mode the EQU0 output action is
// taken on the period boundary, when the counter returns to zero, so a
// compare value of k gives k counts per period on each side of the edge.
func (c *Chip) step(t int, mc uint16) {
	ts := &c.timers[t]
	r := c.get16(ts.base + device.TBxR)
	ccr0 := c.get16(ts.base + ccr(0))
	equ0 := false
	switch mc {
	case 1:
		if ccr0 == 0 {
			return
		}
		if r >= ccr0 {
			r = 0
			equ0 = true
			c.setOverflow(ts)
		} else {
			r++
			if r == ccr0 {
				c.compareHit(ts, 0)
			}
		}
	case 2:
		r++
		if r == 0 {
			c.setOverflow(ts)
		}
		if r == ccr0 {
			c.compareHit(ts, 0)
			equ0 = true
		}
	case 3:
		if ccr0 == 0 {
			return
		}
		if !ts.down {
			r++
			if r >= ccr0 {
				r = ccr0
				ts.down = true
				c.compareHit(ts, 0)
				equ0 = true
			}
		} else {
			r--
			if r == 0 {
				ts.down = false
				c.setOverflow(ts)
			}
		}
	}
	c.put16(ts.base+device.TBxR, r)

	if equ0 {
		for n := 1; n < ts.channels; n++ {
			c.outputAction(ts, n, false)
		}
	}
	for n := 1; n < ts.channels; n++ {
		v := c.get16(ts.base + cctl(n))
		if v&device.CAP == 0 && c.get16(ts.base+ccr(n)) == r {
			c.compareHit(ts, n)
		}
	}
}

func (c *Chip) setOverflow(ts *timerState) {
	a := ts.base + device.TBxCTL
	c.put16(a, c.get16(a)|device.TBIFG)
}

func (c *Chip) compareHit(ts *timerState, n int) {
	a := ts.base + cctl(n)
	v := c.get16(a)
	if v&device.CAP != 0 {
		return
	}
	c.put16(a, v|device.CCIFG)
	c.outputAction(ts, n, true)
}

// outputAction applies an EQUn (equn true) or EQU0 event to the output
// unit of block n.
func (c *Chip) outputAction(ts *timerState, n int, equn bool) {
	mode := reg.Field(c.get16(ts.base+cctl(n)), device.OUTMOD_Mask, device.OUTMOD_Pos)
	o := &ts.out[n]
	if n == 0 && !equn {
		return
	}
	switch mode {
	case 1: // set
		if equn {
			*o = true
		}
	case 2: // toggle/reset
		if equn {
			*o = !*o
		} else {
			*o = false
		}
	case 3: // set/reset
		*o = equn
	case 4: // toggle
		if equn {
			*o = !*o
		}
	case 5: // reset
		if equn {
			*o = false
		}
	case 6: // toggle/set
		if equn {
			*o = !*o
		} else {
			*o = true
		}
	case 7: // reset/set
		*o = !equn
	}
}

// Output returns the output unit level of block n of timer TB0 to TB3.
func (c *Chip) Output(timer, n int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	ts := &c.timers[timer]
	v := c.get16(ts.base + cctl(n))
	if reg.Field(v, device.OUTMOD_Mask, device.OUTMOD_Pos) == 0 {
		return v&device.OUT != 0
	}
	return ts.out[n]
}

// Capture fires a capture event on block n of a timer, as the selected
// input edge would. It latches the counter into CCRn and sets CCIFG, or COV
// as well when CCIFG was still pending.
func (c *Chip) Capture(timer, n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	ts := &c.timers[timer]
	a := ts.base + cctl(n)
	v := c.get16(a)
	if v&device.CAP == 0 || reg.Field(v, device.CM_Mask, device.CM_Pos) == 0 {
		logWarn(ComponentTimer, "capture ignored, block not in capture mode", "timer", timer, "block", n)
		return
	}
	if v&device.CCIFG != 0 {
		v |= device.COV
	}
	c.put16(ts.base+ccr(n), c.get16(ts.base+device.TBxR))
	c.put16(a, v|device.CCIFG)
}
