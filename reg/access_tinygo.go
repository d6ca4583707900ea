//go:build tinygo

package reg

import (
	"runtime/volatile"
	"unsafe"
)

func load8(addr uintptr) uint8 {
	return volatile.LoadUint8((*uint8)(unsafe.Pointer(addr)))
}

func store8(addr uintptr, value uint8) {
	volatile.StoreUint8((*uint8)(unsafe.Pointer(addr)), value)
}

func modify8(addr uintptr, clear, set, flip uint8) {
	p := (*uint8)(unsafe.Pointer(addr))
	volatile.StoreUint8(p, (volatile.LoadUint8(p)&^clear|set)^flip)
}

func load16(addr uintptr) uint16 {
	return volatile.LoadUint16((*uint16)(unsafe.Pointer(addr)))
}

func store16(addr uintptr, value uint16) {
	volatile.StoreUint16((*uint16)(unsafe.Pointer(addr)), value)
}

func modify16(addr uintptr, clear, set, flip uint16) {
	p := (*uint16)(unsafe.Pointer(addr))
	volatile.StoreUint16(p, (volatile.LoadUint16(p)&^clear|set)^flip)
}
