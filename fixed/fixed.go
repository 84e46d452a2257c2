// Package fixed implements 8.8 fixed-point arithmetic: the low 8 bits of
// an int32 hold the fractional part of a pixel coordinate. All motion math
// in the suite uses this representation so behavior is bit-reproducible
// regardless of platform floating point.
package fixed

// Shift is the number of fractional bits.
const Shift = 8

// One is one whole pixel in fixed-point units.
const One int32 = 1 << Shift

// FromInt converts a pixel coordinate to fixed-point.
func FromInt(px int) int32 {
	return int32(px) << Shift
}

// Floor converts a fixed-point value back to a whole pixel coordinate,
// rounding toward negative infinity (arithmetic shift).
func Floor(v int32) int {
	return int(v >> Shift)
}

// Abs returns the absolute value of v.
func Abs(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

// Sign returns -1, 0 or 1 matching the sign of v.
func Sign(v int32) int32 {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}
