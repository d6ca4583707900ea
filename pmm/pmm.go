// Package pmm releases the I/O lock the power management module applies at
// reset.
package pmm

import (
	"msp430hal/device"
	"msp430hal/reg"
)

var pm5ctl0 = reg.Register16{Addr: device.PM5CTL0}

// PMM proves LOCKLPM5 has been cleared, so port configuration reaches the
// pins.
type PMM struct{}

// Unlock clears LOCKLPM5 and returns the proof token.
func Unlock() PMM {
	pm5ctl0.ClearBits(device.LOCKLPM5)
	return PMM{}
}

// Locked reports whether the I/O lock is still applied.
func Locked() bool {
	return pm5ctl0.HasBits(device.LOCKLPM5)
}
