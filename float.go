// SPDX-License-Identifier: Apache-2.0
//
// Copyright © 2025 The Happy Authors

package readable

import (
	"math"
	"strings"

	"github.com/happy-sdk/happy/pkg/strings/readable/dtoa"
)

// DefaultFloatDecimals is the fractional digit count NewFloat pads or
// truncates to.
const DefaultFloatDecimals = 3

// Float is a comma-grouped float with a fixed number of fractional
// digits, e.g. 1234.571 renders as "1,234.571".
type Float struct {
	f float64
	s string
}

// NewFloat formats f with three fractional digits.
func NewFloat(f float64) Float {
	return NewFloatN(f, DefaultFloatDecimals)
}

// NewFloatN formats f with exactly decimals fractional digits. The
// shortest decimal form is truncated, not rounded, when it carries more
// digits than requested, and zero-padded when it carries fewer.
// decimals < 1 drops the fractional part entirely. Non-finite input
// renders as NaN, inf or -inf.
func NewFloatN(f float64, decimals int) Float {
	if s, ok := nonFinite(f); ok {
		return Float{f: f, s: s}
	}
	if decimals < 1 {
		n := int64(f)
		return Float{f: f, s: NewInt(n).String()}
	}
	return Float{f: f, s: groupFloat(dtoa.Format64Decimals(f, decimals), decimals)}
}

func (f Float) String() string { return f.s }

// Float64 returns the value the string was formatted from.
func (f Float) Float64() float64 { return f.f }

func nonFinite(f float64) (string, bool) {
	switch {
	case math.IsNaN(f):
		return NaN, true
	case math.IsInf(f, 1):
		return Inf, true
	case math.IsInf(f, -1):
		return NegInf, true
	}
	return "", false
}

// groupFloat comma-groups the integer part of a fixed-point dtoa string
// and zero-pads the fraction to the requested width. Scientific
// notation passes through untouched.
func groupFloat(s string, decimals int) string {
	if strings.IndexByte(s, 'e') >= 0 {
		return s
	}
	dot := strings.IndexByte(s, '.')
	intPart, frac := s[:dot], s[dot+1:]

	var buf [maxGroupedLen + 1 + dtoa.MaxLen]byte
	b := buf[:0]
	if intPart[0] == '-' {
		b = append(b, '-')
		intPart = intPart[1:]
	}
	b = groupDigits(b, intPart)
	b = append(b, '.')
	b = append(b, frac...)
	for i := len(frac); i < decimals; i++ {
		b = append(b, '0')
	}
	return string(b)
}
