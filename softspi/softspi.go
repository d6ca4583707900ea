// Package softspi is a bit-banged SPI controller built on GPIO pin
// handles. It implements drivers.SPI, so TinyGo device drivers can use any
// three free pins.
package softspi

import (
	"msp430hal/errcode"

	"tinygo.org/x/drivers"
)

// OutputPin is satisfied by gpio.Output handles.
type OutputPin interface {
	Set(level bool)
	Toggle()
	IsSetHigh() bool
}

// InputPin is satisfied by gpio.Input handles.
type InputPin interface {
	IsHigh() bool
}

// Mode is the SPI clock polarity and phase (0-3)
// Mode 0: CPOL=0, CPHA=0 (clock idle low, sample on rising edge)
// Mode 1: CPOL=0, CPHA=1 (clock idle low, sample on falling edge)
// Mode 2: CPOL=1, CPHA=0 (clock idle high, sample on falling edge)
// Mode 3: CPOL=1, CPHA=1 (clock idle high, sample on rising edge)
type Mode uint8

// Config is the bus configuration.
type Config struct {
	Mode Mode

	// Delay is called after every clock edge to set the bit rate. Nil runs
	// as fast as the pins toggle.
	Delay func()
}

// Bus is a bit-banged SPI controller, MSB first.
type Bus struct {
	sck   OutputPin
	sdo   OutputPin
	sdi   InputPin
	cpol  bool
	cpha  bool
	delay func()
}

var _ drivers.SPI = (*Bus)(nil)

// New builds a bus on the given pins and parks the clock at its idle level.
func New(sck, sdo OutputPin, sdi InputPin, cfg Config) (*Bus, error) {
	if cfg.Mode > 3 {
		return nil, errcode.Wrap(errcode.InvalidParams, "softspi.New", "invalid SPI mode")
	}
	b := &Bus{
		sck:   sck,
		sdo:   sdo,
		sdi:   sdi,
		cpol:  cfg.Mode&2 != 0,
		cpha:  cfg.Mode&1 != 0,
		delay: cfg.Delay,
	}
	if b.delay == nil {
		b.delay = func() {}
	}
	b.sck.Set(b.cpol)
	b.sdo.Set(false)
	return b, nil
}

// Tx transmits w and receives into r. With r nil the received bytes are
// dropped; with w nil zeros are sent. Otherwise the lengths must match.
func (b *Bus) Tx(w, r []byte) error {
	switch {
	case w == nil:
		for i := range r {
			r[i] = b.transferByte(0)
		}
	case r == nil:
		for _, c := range w {
			b.transferByte(c)
		}
	default:
		if len(w) != len(r) {
			return errcode.Wrap(errcode.InvalidParams, "softspi.Tx", "tx and rx buffer lengths must match")
		}
		for i, c := range w {
			r[i] = b.transferByte(c)
		}
	}
	return nil
}

// Transfer sends one byte and returns the byte received.
func (b *Bus) Transfer(c byte) (byte, error) {
	return b.transferByte(c), nil
}

func (b *Bus) transferByte(tx byte) byte {
	var rx byte
	for bit := 7; bit >= 0; bit-- {
		out := tx&(1<<bit) != 0
		if !b.cpha {
			// Data valid before the leading edge, sampled on it.
			b.sdo.Set(out)
			b.delay()
			if b.sdi.IsHigh() {
				rx |= 1 << bit
			}
			b.sck.Toggle()
			b.delay()
			b.sck.Toggle()
		} else {
			// Data changes on the leading edge, sampled on the trailing one.
			b.sck.Toggle()
			b.sdo.Set(out)
			b.delay()
			b.sck.Toggle()
			if b.sdi.IsHigh() {
				rx |= 1 << bit
			}
			b.delay()
		}
	}
	return rx
}
