// Package numfmt renders totals using a display locale's grouping and decimal
// separators.
package numfmt

import (
	"fmt"
	"math"
	"math/big"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultLocale is used when no locale is configured.
const DefaultLocale = "vi-VN"

// MaxFractionDigits caps rendered decimals; trailing zeros are dropped.
const MaxFractionDigits = 3

// Formatter formats numbers for one locale.
type Formatter struct {
	tag     language.Tag
	printer *message.Printer
}

// New parses a BCP 47 tag such as "vi-VN" or "en-US". An empty tag selects
// DefaultLocale.
func New(locale string) (*Formatter, error) {
	if locale == "" {
		locale = DefaultLocale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", locale, err)
	}
	return &Formatter{tag: tag, printer: message.NewPrinter(tag)}, nil
}

// MustNew is New for constants known to be valid.
func MustNew(locale string) *Formatter {
	f, err := New(locale)
	if err != nil {
		panic(err)
	}
	return f
}

func (f *Formatter) Locale() string { return f.tag.String() }

// Format renders v with locale grouping and at most MaxFractionDigits decimals.
func (f *Formatter) Format(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "∞"
	case math.IsInf(v, -1):
		return "-∞"
	}
	if v == 0 {
		// avoid "-0"
		v = 0
	}
	v = roundHalfAway(v, MaxFractionDigits)
	return f.printer.Sprintf("%v", number.Decimal(v, number.MaxFractionDigits(MaxFractionDigits)))
}

// exactScaleLimit bounds values worth rounding; float64 has no fraction bits
// left above 2^52.
const exactScaleLimit = 1 << 52

// roundHalfAway rounds v to digits decimals, ties away from zero, judged on the
// exact binary value of v. number.Decimal alone rounds ties to even.
func roundHalfAway(v float64, digits int) float64 {
	if math.Abs(v) >= exactScaleLimit {
		return v
	}
	scale := new(big.Float).SetInt(new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(digits)), nil))
	scaled := new(big.Float).SetPrec(256).Mul(new(big.Float).SetFloat64(v), scale)

	whole, _ := scaled.Int(nil)
	frac := new(big.Float).SetPrec(256).Sub(scaled, new(big.Float).SetInt(whole))
	if frac.Abs(frac).Cmp(big.NewFloat(0.5)) >= 0 {
		if v < 0 {
			whole.Sub(whole, big.NewInt(1))
		} else {
			whole.Add(whole, big.NewInt(1))
		}
	}
	out, _ := new(big.Float).SetPrec(256).Quo(new(big.Float).SetInt(whole), scale).Float64()
	return out
}
