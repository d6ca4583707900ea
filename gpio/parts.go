package gpio

import "msp430hal/pmm"

// Parts holds the eight pins of port P in their reset state.
type Parts[P Port] struct {
	Pin0 Input[P, Pin0, Floating]
	Pin1 Input[P, Pin1, Floating]
	Pin2 Input[P, Pin2, Floating]
	Pin3 Input[P, Pin3, Floating]
	Pin4 Input[P, Pin4, Floating]
	Pin5 Input[P, Pin5, Floating]
	Pin6 Input[P, Pin6, Floating]
	Pin7 Input[P, Pin7, Floating]
}

// Split hands out the pins of port P. The PMM token proves the I/O lock is
// released. Call it once per port; splitting a port twice gives two live
// handles for each pin.
func Split[P Port](pmm.PMM) Parts[P] {
	return Parts[P]{}
}
