package reg

import "golang.org/x/exp/constraints"

// Mask returns a value with only bit n set.
func Mask[T constraints.Unsigned](n uint8) T {
	return T(1) << n
}

// Set returns v with bit n set.
func Set[T constraints.Unsigned](v T, n uint8) T {
	return v | Mask[T](n)
}

// Clear returns v with bit n cleared.
func Clear[T constraints.Unsigned](v T, n uint8) T {
	return v &^ Mask[T](n)
}

// Toggle returns v with bit n inverted.
func Toggle[T constraints.Unsigned](v T, n uint8) T {
	return v ^ Mask[T](n)
}

// Check reports whether bit n of v is set.
func Check[T constraints.Unsigned](v T, n uint8) bool {
	return v&Mask[T](n) != 0
}

// Field extracts the field mask<<pos from v.
func Field[T constraints.Unsigned](v, mask T, pos uint8) T {
	return (v >> pos) & mask
}

// Insert returns v with the field mask<<pos replaced by value.
func Insert[T constraints.Unsigned](v, value, mask T, pos uint8) T {
	return v&^(mask<<pos) | (value&mask)<<pos
}
