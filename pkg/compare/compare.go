package compare

import "cmp"

// Interface is implemented by types that define their own ordering.
//
// Example usage:
//
//	type Version struct{ Major, Minor int }
//
//	func (v Version) Compare(oth Version) int {
//		if c := cmp.Compare(v.Major, oth.Major); c != 0 {
//			return c
//		}
//		return cmp.Compare(v.Minor, oth.Minor)
//	}
type Interface[T any] interface {
	// Compare returns:
	//   -1 if receiver is less than the argument,
	//    0 if they're equal, and
	//   +1 if receiver is greater.
	//
	// Implementors must ensure consistent ordering semantics.
	Compare(T) int
}

// IsEqual reports whether two values are equal based on their comparison result.
func IsEqual(cmp int) bool {
	return cmp == 0
}

// IsLess reports whether the receiver is less than another value.
func IsLess(cmp int) bool {
	return cmp < 0
}

// IsLessOrEqual reports whether the receiver is less than or equal to another value.
func IsLessOrEqual(cmp int) bool {
	return cmp <= 0
}

// IsMore reports whether the receiver is greater than another value.
func IsMore(cmp int) bool {
	return 0 < cmp
}

// IsMoreOrEqual reports whether the receiver is more than or equal to another value.
func IsMoreOrEqual(cmp int) bool {
	return 0 <= cmp
}

// Ordered compares two values of a built-in ordered type.
// A NaN is considered less than any non-NaN value and equal to another NaN,
// which keeps floating point values under a total order.
func Ordered[T cmp.Ordered](a, b T) int {
	return cmp.Compare(a, b)
}

// Self compares two values through their own Compare method.
// The result is normalised to -1, 0 or +1.
func Self[T Interface[T]](a, b T) int {
	switch c := a.Compare(b); {
	case c < 0:
		return -1
	case 0 < c:
		return 1
	default:
		return 0
	}
}
