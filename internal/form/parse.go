package form

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// ParseMode selects how entry text is turned into a number.
type ParseMode int

const (
	// Lenient takes the longest leading numeric prefix ("12abc" is 12).
	Lenient ParseMode = iota
	// Strict requires the whole trimmed text to be a number ("12abc" is 0).
	Strict
)

func (m ParseMode) String() string {
	switch m {
	case Lenient:
		return "lenient"
	case Strict:
		return "strict"
	default:
		return fmt.Sprintf("ParseMode(%d)", int(m))
	}
}

// ParseModeFromString maps a config value onto a ParseMode.
func ParseModeFromString(s string) (ParseMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "lenient":
		return Lenient, nil
	case "strict":
		return Strict, nil
	default:
		return Lenient, fmt.Errorf("unknown parse mode %q", s)
	}
}

const infinityLiteral = "Infinity"

// ParseValue returns the numeric contribution of text. Anything that does not
// parse contributes 0, so the result is defined for every input.
func ParseValue(text string, mode ParseMode) float64 {
	var literal string
	switch mode {
	case Strict:
		trimmed := strings.TrimFunc(text, unicode.IsSpace)
		n := numericPrefixLen(trimmed)
		if n == 0 || n != len(trimmed) {
			return 0
		}
		literal = trimmed
	default:
		trimmed := strings.TrimLeftFunc(text, unicode.IsSpace)
		n := numericPrefixLen(trimmed)
		if n == 0 {
			return 0
		}
		literal = trimmed[:n]
	}
	return literalValue(literal)
}

// numericPrefixLen returns the byte length of the longest prefix of s matching
// [sign] ( "Infinity" | digits ["." digits] | "." digits ) [exponent].
// An exponent is only part of the prefix when at least one digit follows it.
func numericPrefixLen(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	if strings.HasPrefix(s[i:], infinityLiteral) {
		return i + len(infinityLiteral)
	}

	intDigits := countDigits(s[i:])
	i += intDigits
	fracDigits := 0
	if i < len(s) && s[i] == '.' {
		fracDigits = countDigits(s[i+1:])
		if intDigits > 0 || fracDigits > 0 {
			i += 1 + fracDigits
		}
	}
	if intDigits == 0 && fracDigits == 0 {
		return 0
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if d := countDigits(s[j:]); d > 0 {
			i = j + d
		}
	}
	return i
}

func countDigits(s string) int {
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	return n
}

func literalValue(literal string) float64 {
	switch strings.TrimLeft(literal, "+-") {
	case infinityLiteral:
		if strings.HasPrefix(literal, "-") {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}
	v, err := strconv.ParseFloat(literal, 64)
	if err != nil {
		// ErrRange still carries ±Inf or 0, which is the IEEE result we want.
		if errors.Is(err, strconv.ErrRange) {
			return v
		}
		return 0
	}
	return v
}
