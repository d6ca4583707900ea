// Package device holds the MSP430FR2355 peripheral register map.
//
// Addresses and field positions follow the device datasheet (SLASEC4) and
// the MSP430FR4xx/FR2xx family user's guide (SLAU445). Field masks are
// unshifted, ready for reg.Register16.ReplaceBits.
package device

// Digital I/O. Ports are paired; the odd port of a pair sits one byte above
// the even one for every 8-bit register.
const (
	PAStart uintptr = 0x0200 // P1, P2
	PBStart uintptr = 0x0220 // P3, P4
	PCStart uintptr = 0x0240 // P5, P6

	PxIN   uintptr = 0x00
	PxOUT  uintptr = 0x02
	PxDIR  uintptr = 0x04
	PxREN  uintptr = 0x06
	PxSEL0 uintptr = 0x0A
	PxSEL1 uintptr = 0x0C
	PxSELC uintptr = 0x16
	PxIES  uintptr = 0x18
	PxIE   uintptr = 0x1A
	PxIFG  uintptr = 0x1C

	// Interrupt vector word of the even and odd port in a pair.
	PxIVEven uintptr = 0x0E
	PxIVOdd  uintptr = 0x1E
)

// Port interrupt vector values: 0 is none, 2*(n+1) is pin n.
const (
	PxIVNone    = 0x00
	PxIVMaxPin  = 0x10
	PxIVPinStep = 0x02
)

// Power management module.
const (
	PM5CTL0  uintptr = 0x0130
	LOCKLPM5 uint16  = 0x0001
)

// Watchdog timer. Writes must carry WDTPW in the high byte; reads return
// WDTPWRead there instead.
const (
	WDTCTL    uintptr = 0x01CC
	WDTPW     uint16  = 0x5A00
	WDTPWRead uint16  = 0x6900
	WDTHOLD   uint16  = 0x0080
)

// Timer_B instances. TB0 to TB2 have three capture/compare blocks, TB3 has
// seven.
const (
	TB0Start uintptr = 0x0380
	TB1Start uintptr = 0x03C0
	TB2Start uintptr = 0x0400
	TB3Start uintptr = 0x0440
)

// Timer_B register offsets from the instance base.
const (
	TBxCTL   uintptr = 0x00
	TBxCCTL0 uintptr = 0x02 // CCTLn at TBxCCTL0 + 2n
	TBxR     uintptr = 0x10
	TBxCCR0  uintptr = 0x12 // CCRn at TBxCCR0 + 2n
	TBxEX0   uintptr = 0x20
	TBxIV    uintptr = 0x2E
)

// TBxCTL fields.
const (
	TBCLGRP_Pos  = 13
	TBCLGRP_Mask = 0x3
	CNTL_Pos     = 11
	CNTL_Mask    = 0x3
	TBSSEL_Pos   = 8
	TBSSEL_Mask  = 0x3
	ID_Pos       = 6
	ID_Mask      = 0x3
	MC_Pos       = 4
	MC_Mask      = 0x3

	TBCLR uint16 = 0x0004
	TBIE  uint16 = 0x0002
	TBIFG uint16 = 0x0001
)

// TBxEX0 fields.
const (
	TBIDEX_Pos  = 0
	TBIDEX_Mask = 0x7
)

// TBxCCTLn fields.
const (
	CM_Pos      = 14
	CM_Mask     = 0x3
	CCIS_Pos    = 12
	CCIS_Mask   = 0x3
	CLLD_Pos    = 9
	CLLD_Mask   = 0x3
	OUTMOD_Pos  = 5
	OUTMOD_Mask = 0x7

	SCS   uint16 = 0x0800
	CAP   uint16 = 0x0100
	CCIE  uint16 = 0x0010
	CCI   uint16 = 0x0008
	OUT   uint16 = 0x0004
	COV   uint16 = 0x0002
	CCIFG uint16 = 0x0001
)

// Timer_B interrupt vector values. Capture/compare block 0 has a dedicated
// vector and never appears here.
const (
	TBIVNone     = 0x00
	TBIVCCR1     = 0x02 // CCRn at 2n
	TBIVOverflow = 0x0E
)
