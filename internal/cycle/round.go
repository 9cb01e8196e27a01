package cycle

import (
	"math"
	"strconv"
	"strings"
)

// Clamp bounds v into [lo, hi]. NaN collapses to lo.
func Clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Min(math.Max(v, lo), hi)
}

// ClampMin bounds v below by lo with no upper limit.
func ClampMin(v, lo float64) float64 {
	return Clamp(v, lo, math.Inf(1))
}

// RoundToHalf returns the nearest multiple of 0.5; halves round away from zero.
func RoundToHalf(n float64) float64 {
	return math.Round(n*2) / 2
}

// ParseHours reads the leading number of a user-entered value, so "7h" and "7,5"
// both read as 7. Input with no leading number, or NaN, is 0.
// Overflowing input keeps its infinite value so that clamping pins it to the bound.
func ParseHours(raw string) float64 {
	num := floatPrefix(strings.TrimSpace(raw))
	if num == "" {
		return 0
	}
	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return v
		}
		return 0
	}
	if math.IsNaN(v) {
		return 0
	}
	return v
}

// floatPrefix returns the longest leading part of s that is a decimal number:
// an optional sign, digits with an optional fraction, and an optional exponent
// that is kept only when it has digits. A signed "Infinity" is also accepted.
func floatPrefix(s string) string {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	if strings.HasPrefix(s[i:], "Infinity") {
		return s[:i+len("Infinity")]
	}

	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		j := i + 1
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		if digits > 0 || j > i+1 {
			digits += j - i - 1
			i = j
		}
	}
	if digits == 0 {
		return ""
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && isDigit(s[k]) {
			k++
		}
		if k > j {
			i = k
		}
	}
	return s[:i]
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// normalizeHours applies the full input discipline: round to half, then clamp.
func normalizeHours(v, upper float64) float64 {
	if math.IsNaN(v) {
		v = 0
	}
	return Clamp(RoundToHalf(v), 0, upper)
}

func clampPercentage(p int) int {
	if p < MinPercentage {
		return MinPercentage
	}
	if p > MaxPercentage {
		return MaxPercentage
	}
	return p
}
