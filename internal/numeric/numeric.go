// Package numeric classifies dynamically typed numbers as integral or not
// without going through float64 for JSON number literals.
package numeric

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Class is the integrality class of a value.
type Class int

const (
	NotNumber Class = iota
	Fractional
	Whole
	TooLarge    // integral, above the int64 range
	TooNegative // integral, below the int64 range
)

// two63 is 2^63 as a float64; float64 values at or beyond it do not fit int64.
const two63 = float64(1 << 63)

// Classify reports whether v is a number and whether it is mathematically
// integral, returning its int64 value when the class is Whole.
func Classify(v any) (int64, Class) {
	switch n := v.(type) {
	case int:
		return int64(n), Whole
	case int8:
		return int64(n), Whole
	case int16:
		return int64(n), Whole
	case int32:
		return int64(n), Whole
	case int64:
		return n, Whole
	case uint:
		return classifyUint(uint64(n))
	case uint8:
		return int64(n), Whole
	case uint16:
		return int64(n), Whole
	case uint32:
		return int64(n), Whole
	case uint64:
		return classifyUint(n)
	case float32:
		return classifyFloat(float64(n))
	case float64:
		return classifyFloat(n)
	case json.Number:
		return ClassifyLiteral(string(n))
	}
	return 0, NotNumber
}

func classifyUint(u uint64) (int64, Class) {
	if u > math.MaxInt64 {
		return 0, TooLarge
	}
	return int64(u), Whole
}

func classifyFloat(f float64) (int64, Class) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, Fractional
	}
	if math.Trunc(f) != f {
		return 0, Fractional
	}
	if f >= two63 {
		return 0, TooLarge
	}
	if f < -two63 {
		return 0, TooNegative
	}
	return int64(f), Whole
}

var literalRe = regexp.MustCompile(`^([+-]?)([0-9]*)(?:\.([0-9]*))?(?:[eE]([+-]?[0-9]+))?$`)

// maxExp clamps exponents that overflow int. Any literal that fits in memory
// has far fewer digits, so the clamp never changes a classification.
const maxExp = 1 << 30

// ClassifyLiteral classifies a decimal literal such as "12", "1.50e2" or
// "-1e-400" exactly, working on its digits.
func ClassifyLiteral(s string) (int64, Class) {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i, Whole
	}
	m := literalRe.FindStringSubmatch(s)
	if m == nil || m[2]+m[3] == "" {
		return 0, NotNumber
	}
	neg := m[1] == "-"
	exp := 0
	if m[4] != "" {
		e, err := strconv.Atoi(m[4])
		if err != nil {
			e = maxExp
			if m[4][0] == '-' {
				e = -maxExp
			}
		}
		exp = e
	}

	// value = digits * 10^scale
	all := m[2] + m[3]
	digits := strings.TrimRight(all, "0")
	scale := exp - len(m[3]) + (len(all) - len(digits))
	digits = strings.TrimLeft(digits, "0")
	if digits == "" {
		return 0, Whole
	}
	if scale < 0 {
		return 0, Fractional
	}
	// int64 holds at most 19 digits.
	if len(digits)+scale > 19 {
		return 0, outOfRange(neg)
	}
	lit := digits + strings.Repeat("0", scale)
	if neg {
		lit = "-" + lit
	}
	i, err := strconv.ParseInt(lit, 10, 64)
	if err != nil {
		return 0, outOfRange(neg)
	}
	return i, Whole
}

func outOfRange(neg bool) Class {
	if neg {
		return TooNegative
	}
	return TooLarge
}
