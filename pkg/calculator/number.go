package calculator

import (
	"math"
	"strconv"
	"strings"
)

// ParseOperand reads the longest numeric prefix of s, the way a browser's
// parseFloat does. Input with no numeric prefix yields NaN.
func ParseOperand(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return math.NaN()
	}

	i := 0
	if s[i] == '+' || s[i] == '-' {
		i++
	}
	if strings.HasPrefix(s[i:], "Infinity") {
		if s[0] == '-' {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}

	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return math.NaN()
	}

	end := i
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		expDigits := 0
		for j < len(s) && isDigit(s[j]) {
			j++
			expDigits++
		}
		if expDigits > 0 {
			end = j
		}
	}

	// Only range errors are possible here, and ParseFloat already returns
	// ±Inf or 0 for those.
	v, _ := strconv.ParseFloat(s[:end], 64)
	return v
}

// FormatNumber renders v in the canonical decimal form used for the display:
// shortest round-trip digits, fixed notation between 1e-6 and 1e21 and
// exponent notation outside that range.
func FormatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		return "0"
	}

	abs := math.Abs(v)
	if abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	s := strconv.FormatFloat(v, 'e', -1, 64)
	mantissa, exp, _ := strings.Cut(s, "e")
	sign := exp[:1]
	exp = strings.TrimLeft(exp[1:], "0")
	if exp == "" {
		exp = "0"
	}
	return mantissa + "e" + sign + exp
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
