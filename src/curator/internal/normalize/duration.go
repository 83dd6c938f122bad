package normalize

import (
	"math"
	"strconv"
	"strings"
)

// FormatSeconds renders a duration the way it appears in trimmed file names:
// the shortest decimal that round trips, always with a fractional part, and
// in exponent form outside [1e-4, 1e16).
//
//	FormatSeconds(2)       == "2.0"
//	FormatSeconds(1.0 / 3) == "0.3333333333333333"
//	FormatSeconds(0.00001) == "1e-05"
func FormatSeconds(seconds float64) string {
	abs := math.Abs(seconds)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(seconds, 'e', -1, 64)
	}

	formatted := strconv.FormatFloat(seconds, 'f', -1, 64)
	if !strings.Contains(formatted, ".") {
		formatted += ".0"
	}

	return formatted
}

// TrimmedName is the name a file takes once trimmed to length.
func TrimmedName(name string, length string) string {
	ext := extension(name)
	return strings.TrimSuffix(name, ext) + "_" + length + "s" + ext
}

func extension(name string) string {
	// a leading dot marks a hidden file, not an extension
	trimmed := strings.TrimLeft(name, ".")
	i := strings.LastIndex(trimmed, ".")
	if i < 0 {
		return ""
	}

	return trimmed[i:]
}
