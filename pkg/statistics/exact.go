package statistics

import (
	"math/big"
)

// IsInteger reports whether T is one of the integer types.
func IsInteger[T Number]() bool {
	var one T = 1
	return one/2 == 0
}

// Rat converts v to an exact rational, v must be finite.
func Rat[T Number](v T) *big.Rat {
	if !IsInteger[T]() {
		return new(big.Rat).SetFloat64(float64(v))
	}

	if v < 0 {
		return new(big.Rat).SetInt64(int64(v))
	}
	return new(big.Rat).SetInt(new(big.Int).SetUint64(uint64(v)))
}

// MedianRat is Median without rounding.
func MedianRat[T Number](sorted []T) *big.Rat {
	n := len(sorted)
	half := n / 2
	if n%2 == 1 {
		return Rat(sorted[half])
	}

	sum := new(big.Rat).Add(Rat(sorted[half-1]), Rat(sorted[half]))
	return sum.Quo(sum, big.NewRat(2, 1))
}

// QuartilesRat is Quartiles without rounding.
func QuartilesRat[T Number](sorted []T) (q1, q2, q3 *big.Rat) {
	q2 = MedianRat(sorted)

	lower, upper := Halves(sorted)
	if len(lower) == 0 || len(upper) == 0 {
		return q2, q2, q2
	}

	return MedianRat(lower), q2, MedianRat(upper)
}
