// SPDX-License-Identifier: Apache-2.0
//
// Copyright © 2025 The Happy Authors

// Package dtoa converts binary floating-point values to the shortest
// decimal string that parses back to the same bits, using the Grisu2
// algorithm with a fixed-point or scientific-notation rendering step.
//
// Every input maps to some output: finite values produce forms like
// "1000.0", "0.001234" or "1.234e33", signed zeros produce "0.0"/"-0.0",
// and non-finite values the fixed strings "NaN", "inf" and "-inf". There
// are no error returns, no heap allocations when formatting through a
// Buffer, and no shared mutable state, so all functions are safe for
// concurrent use.
package dtoa

import "math"

// Fixed strings for the non-finite encodings.
const (
	NaN    = "NaN"
	Inf    = "inf"
	NegInf = "-inf"
)

// MaxLen is the longest possible output, e.g. "-1.7976931348623157e308".
const MaxLen = 25

// DefaultMaxDecimalPlaces is the decimal-place bound applied by Format64
// and Format32. It is large enough that only values below 10^-324 are
// truncated to "0.0"; pass a smaller bound to the Decimals variants to
// trim fixed-point output earlier.
const DefaultMaxDecimalPlaces = 324

// Buffer is a fixed-capacity byte buffer for formatted floats. The zero
// value is ready to use. Format methods write in place and return a slice
// of the internal array, valid until the next call on the same Buffer.
type Buffer struct {
	bytes [MaxLen]byte
}

// Format64 formats a double-precision value.
func (b *Buffer) Format64(v float64) []byte {
	return b.Format64Decimals(v, DefaultMaxDecimalPlaces)
}

// Format32 formats a single-precision value. The digit sequence is the
// shortest that round-trips at 32 bits, which is usually shorter than the
// double-precision rendering of the same value.
func (b *Buffer) Format32(v float32) []byte {
	return b.Format32Decimals(v, DefaultMaxDecimalPlaces)
}

// Format64Decimals formats v with at most maxDecimalPlaces digits after
// the decimal point in fixed-point forms. maxDecimalPlaces must be at
// least 1; scientific-notation output is unaffected by the bound.
func (b *Buffer) Format64Decimals(v float64, maxDecimalPlaces int) []byte {
	bits := math.Float64bits(v)
	if bits&exponentMask64 == exponentMask64 {
		return b.bytes[:copy(b.bytes[:], nonFinite64(bits))]
	}
	if v == 0 {
		if bits&signMask64 != 0 {
			return b.bytes[:copy(b.bytes[:], "-0.0")]
		}
		return b.bytes[:copy(b.bytes[:], "0.0")]
	}
	n := 0
	if v < 0 {
		b.bytes[0] = '-'
		n = 1
		v = -v
	}
	length, k := grisu64(v, b.bytes[n:])
	return b.bytes[:n+prettify(b.bytes[n:], length, k, maxDecimalPlaces)]
}

// Format32Decimals is the single-precision variant of Format64Decimals.
func (b *Buffer) Format32Decimals(v float32, maxDecimalPlaces int) []byte {
	bits := math.Float32bits(v)
	if bits&exponentMask32 == exponentMask32 {
		return b.bytes[:copy(b.bytes[:], nonFinite32(bits))]
	}
	if v == 0 {
		if bits&signMask32 != 0 {
			return b.bytes[:copy(b.bytes[:], "-0.0")]
		}
		return b.bytes[:copy(b.bytes[:], "0.0")]
	}
	n := 0
	if v < 0 {
		b.bytes[0] = '-'
		n = 1
		v = -v
	}
	length, k := grisu32(v, b.bytes[n:])
	return b.bytes[:n+prettify(b.bytes[n:], length, k, maxDecimalPlaces)]
}

// Format64 returns the shortest round-tripping decimal string for v.
func Format64(v float64) string {
	var b Buffer
	return string(b.Format64(v))
}

// Format32 returns the shortest round-tripping decimal string for v at
// single precision.
func Format32(v float32) string {
	var b Buffer
	return string(b.Format32(v))
}

// Format64Decimals is like Format64 with an explicit decimal-place bound.
func Format64Decimals(v float64, maxDecimalPlaces int) string {
	var b Buffer
	return string(b.Format64Decimals(v, maxDecimalPlaces))
}

// Format32Decimals is like Format32 with an explicit decimal-place bound.
func Format32Decimals(v float32, maxDecimalPlaces int) string {
	var b Buffer
	return string(b.Format32Decimals(v, maxDecimalPlaces))
}

// nonFinite64 classifies a double with all exponent bits set: a non-zero
// mantissa is NaN, otherwise the sign bit picks the infinity.
func nonFinite64(bits uint64) string {
	switch {
	case bits&significandMask64 != 0:
		return NaN
	case bits&signMask64 != 0:
		return NegInf
	default:
		return Inf
	}
}

func nonFinite32(bits uint32) string {
	switch {
	case bits&significandMask32 != 0:
		return NaN
	case bits&signMask32 != 0:
		return NegInf
	default:
		return Inf
	}
}
