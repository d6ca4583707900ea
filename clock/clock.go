// Package clock carries the frequencies of the peripheral clocks set up by
// the clock system. Drivers that derive rates take these tokens rather than
// raw numbers, so they can only be built once the clocks are frozen.
package clock

// Fixed oscillator frequencies in Hz.
const (
	REFOCLK = 32768
	VLOCLK  = 10000
)

// Smclk is the frozen subsystem master clock.
type Smclk struct {
	freq uint32
}

// Freq returns the frequency in Hz.
func (c Smclk) Freq() uint32 { return c.freq }

// Aclk is the frozen auxiliary clock.
type Aclk struct {
	freq uint32
}

// Freq returns the frequency in Hz.
func (c Aclk) Freq() uint32 { return c.freq }

// Frozen records the frequencies the clock system was configured for.
func Frozen(smclkHz, aclkHz uint32) (Smclk, Aclk) {
	return Smclk{freq: smclkHz}, Aclk{freq: aclkHz}
}
