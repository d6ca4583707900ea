//go:build !tinygo

package reg

// Bus is the host-side stand-in for the peripheral address space.
// Implementations must apply each Modify call as one indivisible update,
// the guarantee the hardware bus gives a single read-modify-write
// instruction.
type Bus interface {
	Load8(addr uintptr) uint8
	Store8(addr uintptr, value uint8)
	Load16(addr uintptr) uint16
	Store16(addr uintptr, value uint16)

	// Modify8 stores (old &^ clear | set) ^ flip.
	Modify8(addr uintptr, clear, set, flip uint8)
	// Modify16 stores (old &^ clear | set) ^ flip.
	Modify16(addr uintptr, clear, set, flip uint16)
}

// Global singleton used by every register access.
var bus Bus

// SetBus installs the bus that backs register access on the host.
func SetBus(b Bus) {
	bus = b
}

// MustBus returns the installed bus or panics if missing.
func MustBus() Bus {
	if bus == nil {
		panic("register bus not configured")
	}
	return bus
}

func load8(addr uintptr) uint8 {
	return MustBus().Load8(addr)
}

func store8(addr uintptr, value uint8) {
	MustBus().Store8(addr, value)
}

func modify8(addr uintptr, clear, set, flip uint8) {
	MustBus().Modify8(addr, clear, set, flip)
}

func load16(addr uintptr) uint16 {
	return MustBus().Load16(addr)
}

func store16(addr uintptr, value uint16) {
	MustBus().Store16(addr, value)
}

func modify16(addr uintptr, clear, set, flip uint16) {
	MustBus().Modify16(addr, clear, set, flip)
}
