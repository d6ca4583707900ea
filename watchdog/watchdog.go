// Package watchdog holds the watchdog timer so configuration code can run
// without being reset.
package watchdog

import (
	"msp430hal/device"
	"msp430hal/reg"
)

var wdtctl = reg.Register16{Addr: device.WDTCTL}

// Stop holds the watchdog. The password byte reads back differently than
// it must be written, so it is replaced together with the hold bit.
func Stop() {
	wdtctl.Modify(0xFF00, device.WDTPW|device.WDTHOLD)
}

// Held reports whether the watchdog is held.
func Held() bool {
	return wdtctl.HasBits(device.WDTHOLD)
}
