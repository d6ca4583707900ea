package gpio

// sel is the (SEL1, SEL0) encoding of a pin function.
type sel uint8

const (
	selGPIO sel = 0b00
	selAlt1 sel = 0b01
	selAlt2 sel = 0b10
	selAlt3 sel = 0b11
)

// Function is an alternate pin function.
type Function interface {
	sel() sel
}

// Function tokens.
type (
	Alt1 struct{}
	Alt2 struct{}
	Alt3 struct{}
)

func (Alt1) sel() sel { return selAlt1 }
func (Alt2) sel() sel { return selAlt2 }
func (Alt3) sel() sel { return selAlt3 }

// edit is the single register write that moves a pin between two
// functions.
type edit uint8

const (
	editNone edit = iota
	editSetSel0
	editSetSel1
	editClearSel0
	editClearSel1
	editFlipSelc
)

// selEdits maps (from, to) to its edit. Moves that change both select bits
// go through PxSELC so the pin never passes through a third function.
var selEdits = [4][4]edit{
	selGPIO: {selGPIO: editNone, selAlt1: editSetSel0, selAlt2: editSetSel1, selAlt3: editFlipSelc},
	selAlt1: {selGPIO: editClearSel0, selAlt1: editNone, selAlt2: editFlipSelc, selAlt3: editSetSel1},
	selAlt2: {selGPIO: editClearSel1, selAlt1: editFlipSelc, selAlt2: editNone, selAlt3: editSetSel0},
	selAlt3: {selGPIO: editFlipSelc, selAlt1: editClearSel1, selAlt2: editClearSel0, selAlt3: editNone},
}

func (e edit) apply(r *Registers, m uint8) {
	switch e {
	case editSetSel0:
		r.Sel0.SetBits(m)
	case editSetSel1:
		r.Sel1.SetBits(m)
	case editClearSel0:
		r.Sel0.ClearBits(m)
	case editClearSel1:
		r.Sel1.ClearBits(m)
	case editFlipSelc:
		r.Selc.Set(m)
	}
}

func selectFunction[P Port, N Pin](from, to sel) {
	selEdits[from][to].apply(regs[P](), SetMask[N]())
}

func selOf[F Function]() sel {
	var f F
	return f.sel()
}

// InputAlt is pin N of port P handed to alternate function F while
// configured as an input with pull U. ToGPIO restores that input.
type InputAlt[P Port, N Pin, U Pull, F Function] struct{}

// OutputAlt is pin N of port P handed to alternate function F while
// configured as an output. ToGPIO restores that output.
type OutputAlt[P Port, N Pin, F Function] struct{}

// InputAlternate1 hands input p to alternate function 1.
func InputAlternate1[P Port, N Pin, U Pull, G Alternate1Input[P, N]](p Input[P, N, U], _ G) InputAlt[P, N, U, Alt1] {
	selectFunction[P, N](selGPIO, selAlt1)
	return InputAlt[P, N, U, Alt1]{}
}

// InputAlternate2 hands input p to alternate function 2.
func InputAlternate2[P Port, N Pin, U Pull, G Alternate2Input[P, N]](p Input[P, N, U], _ G) InputAlt[P, N, U, Alt2] {
	selectFunction[P, N](selGPIO, selAlt2)
	return InputAlt[P, N, U, Alt2]{}
}

// InputAlternate3 hands input p to alternate function 3.
func InputAlternate3[P Port, N Pin, U Pull, G Alternate3Input[P, N]](p Input[P, N, U], _ G) InputAlt[P, N, U, Alt3] {
	selectFunction[P, N](selGPIO, selAlt3)
	return InputAlt[P, N, U, Alt3]{}
}

// OutputAlternate1 hands output p to alternate function 1.
func OutputAlternate1[P Port, N Pin, G Alternate1Output[P, N]](p Output[P, N], _ G) OutputAlt[P, N, Alt1] {
	selectFunction[P, N](selGPIO, selAlt1)
	return OutputAlt[P, N, Alt1]{}
}

// OutputAlternate2 hands output p to alternate function 2.
func OutputAlternate2[P Port, N Pin, G Alternate2Output[P, N]](p Output[P, N], _ G) OutputAlt[P, N, Alt2] {
	selectFunction[P, N](selGPIO, selAlt2)
	return OutputAlt[P, N, Alt2]{}
}

// OutputAlternate3 hands output p to alternate function 3.
func OutputAlternate3[P Port, N Pin, G Alternate3Output[P, N]](p Output[P, N], _ G) OutputAlt[P, N, Alt3] {
	selectFunction[P, N](selGPIO, selAlt3)
	return OutputAlt[P, N, Alt3]{}
}

// ToGPIO returns the pin to GPIO input.
func (InputAlt[P, N, U, F]) ToGPIO() Input[P, N, U] {
	selectFunction[P, N](selOf[F](), selGPIO)
	return Input[P, N, U]{}
}

// SwitchInput1 moves input p from its alternate function to function 1.
func SwitchInput1[P Port, N Pin, U Pull, F Function, G Alternate1Input[P, N]](p InputAlt[P, N, U, F], _ G) InputAlt[P, N, U, Alt1] {
	selectFunction[P, N](selOf[F](), selAlt1)
	return InputAlt[P, N, U, Alt1]{}
}

// SwitchInput2 moves input p from its alternate function to function 2.
func SwitchInput2[P Port, N Pin, U Pull, F Function, G Alternate2Input[P, N]](p InputAlt[P, N, U, F], _ G) InputAlt[P, N, U, Alt2] {
	selectFunction[P, N](selOf[F](), selAlt2)
	return InputAlt[P, N, U, Alt2]{}
}

// SwitchInput3 moves input p from its alternate function to function 3.
func SwitchInput3[P Port, N Pin, U Pull, F Function, G Alternate3Input[P, N]](p InputAlt[P, N, U, F], _ G) InputAlt[P, N, U, Alt3] {
	selectFunction[P, N](selOf[F](), selAlt3)
	return InputAlt[P, N, U, Alt3]{}
}

// ToGPIO returns the pin to GPIO output.
func (OutputAlt[P, N, F]) ToGPIO() Output[P, N] {
	selectFunction[P, N](selOf[F](), selGPIO)
	return Output[P, N]{}
}

// SwitchOutput1 moves output p from its alternate function to function 1.
func SwitchOutput1[P Port, N Pin, F Function, G Alternate1Output[P, N]](p OutputAlt[P, N, F], _ G) OutputAlt[P, N, Alt1] {
	selectFunction[P, N](selOf[F](), selAlt1)
	return OutputAlt[P, N, Alt1]{}
}

// SwitchOutput2 moves output p from its alternate function to function 2.
func SwitchOutput2[P Port, N Pin, F Function, G Alternate2Output[P, N]](p OutputAlt[P, N, F], _ G) OutputAlt[P, N, Alt2] {
	selectFunction[P, N](selOf[F](), selAlt2)
	return OutputAlt[P, N, Alt2]{}
}

// SwitchOutput3 moves output p from its alternate function to function 3.
func SwitchOutput3[P Port, N Pin, F Function, G Alternate3Output[P, N]](p OutputAlt[P, N, F], _ G) OutputAlt[P, N, Alt3] {
	selectFunction[P, N](selOf[F](), selAlt3)
	return OutputAlt[P, N, Alt3]{}
}
