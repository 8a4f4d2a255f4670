package bst

import (
	"cmp"
	"fmt"
	"math"
)

// numKind classifies a dynamic numeric key.
type numKind int

const (
	notNumber numKind = iota
	signedInt
	unsignedInt
	floating
)

// number is a dynamic numeric key widened to its 64-bit family.
type number struct {
	kind numKind
	i    int64
	u    uint64
	f    float64
}

// asNumber widens v to a number, or reports notNumber.
func asNumber(v any) number {
	switch x := v.(type) {
	case int:
		return number{kind: signedInt, i: int64(x)}
	case int8:
		return number{kind: signedInt, i: int64(x)}
	case int16:
		return number{kind: signedInt, i: int64(x)}
	case int32:
		return number{kind: signedInt, i: int64(x)}
	case int64:
		return number{kind: signedInt, i: x}
	case uint:
		return number{kind: unsignedInt, u: uint64(x)}
	case uint8:
		return number{kind: unsignedInt, u: uint64(x)}
	case uint16:
		return number{kind: unsignedInt, u: uint64(x)}
	case uint32:
		return number{kind: unsignedInt, u: uint64(x)}
	case uint64:
		return number{kind: unsignedInt, u: x}
	case float32:
		return number{kind: floating, f: float64(x)}
	case float64:
		return number{kind: floating, f: x}
	default:
		return number{kind: notNumber}
	}
}

// twoTo63 and twoTo64 are exact float64 bounds of the int64 and uint64 ranges.
const (
	twoTo63 = float64(1 << 63)
	twoTo64 = twoTo63 * 2
)

// compareIntFloat orders i against f without rounding i to float64.
// NaN sorts before every integer, as with cmp.Compare.
func compareIntFloat(i int64, f float64) int {
	switch {
	case math.IsNaN(f):
		return 1
	case f >= twoTo63:
		return -1
	case f < -twoTo63:
		return 1
	}

	t := math.Trunc(f)
	if c := cmp.Compare(i, int64(t)); c != 0 {
		return c
	}

	// Equal integral parts: the fraction decides.
	return cmp.Compare(t, f)
}

// compareUintFloat orders u against f without rounding u to float64.
func compareUintFloat(u uint64, f float64) int {
	switch {
	case math.IsNaN(f), f < 0:
		return 1
	case f >= twoTo64:
		return -1
	}

	t := math.Trunc(f)
	if c := cmp.Compare(u, uint64(t)); c != 0 {
		return c
	}

	return cmp.Compare(t, f)
}

// compareNumbers orders two numeric keys of any family exactly.
func compareNumbers(a, b number) int {
	switch {
	case a.kind == signedInt && b.kind == signedInt:
		return cmp.Compare(a.i, b.i)
	case a.kind == unsignedInt && b.kind == unsignedInt:
		return cmp.Compare(a.u, b.u)
	case a.kind == signedInt && b.kind == unsignedInt:
		if a.i < 0 {
			return -1
		}
		return cmp.Compare(uint64(a.i), b.u)
	case a.kind == unsignedInt && b.kind == signedInt:
		if b.i < 0 {
			return 1
		}
		return cmp.Compare(a.u, uint64(b.i))
	case a.kind == signedInt && b.kind == floating:
		return compareIntFloat(a.i, b.f)
	case a.kind == floating && b.kind == signedInt:
		return -compareIntFloat(b.i, a.f)
	case a.kind == unsignedInt && b.kind == floating:
		return compareUintFloat(a.u, b.f)
	case a.kind == floating && b.kind == unsignedInt:
		return -compareUintFloat(b.u, a.f)
	default:
		return cmp.Compare(a.f, b.f)
	}
}

// CompareValues orders two dynamically typed keys.
//
// Any two numbers (signed, unsigned or floating point) compare numerically and
// exactly, so integers beyond 2^53 never collapse onto a nearby float;
// strings compare lexicographically with strings. Every other combination,
// including nil, returns an error wrapping ErrTypeMismatch.
// Floats follow cmp.Compare, so NaN sorts before every other number.
func CompareValues(a, b any) (int, error) {
	if sa, ok := a.(string); ok {
		if sb, ok := b.(string); ok {
			return cmp.Compare(sa, sb), nil
		}
		return 0, fmt.Errorf("%w: %T vs %T", ErrTypeMismatch, a, b)
	}

	na, nb := asNumber(a), asNumber(b)
	if na.kind == notNumber || nb.kind == notNumber {
		return 0, fmt.Errorf("%w: %T vs %T", ErrTypeMismatch, a, b)
	}

	return compareNumbers(na, nb), nil
}

// orderedCompare adapts cmp.Compare to CompareFunc; it never fails.
func orderedCompare[K cmp.Ordered](a, b K) (int, error) {
	return cmp.Compare(a, b), nil
}
