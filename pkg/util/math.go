package util

import (
	"strconv"
	"strings"
)

// FormatFloat formats val with prec decimals, a negative prec uses the
// fewest digits that represent val exactly.
func FormatFloat(val float64, prec int) string {
	return strconv.FormatFloat(val, 'f', prec, 64)
}

// FormatFloats formats and joins values with sep.
func FormatFloats(values []float64, prec int, sep string) string {
	ss := make([]string, len(values))
	for i, v := range values {
		ss[i] = FormatFloat(v, prec)
	}
	return strings.Join(ss, sep)
}
