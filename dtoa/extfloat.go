// SPDX-License-Identifier: Apache-2.0
//
// Copyright © 2025 The Happy Authors

package dtoa

import (
	"math"
	"math/bits"
)

// IEEE-754 double precision layout.
const (
	signMask64        = 0x8000000000000000
	exponentMask64    = 0x7FF0000000000000
	significandMask64 = 0x000FFFFFFFFFFFFF
	hiddenBit64       = 0x0010000000000000
	significandSize64 = 52
	exponentBias64    = 0x3FF
)

// IEEE-754 single precision layout.
const (
	signMask32        = 0x80000000
	exponentMask32    = 0x7F800000
	significandMask32 = 0x007FFFFF
	hiddenBit32       = 0x00800000
	significandSize32 = 23
	exponentBias32    = 0x7F
)

// extFloat64 is an extended-precision binary float: the value f * 2^e with
// a full 64-bit significand. It is "normalized" when the top bit of f is
// set, which every operation below either requires or preserves.
type extFloat64 struct {
	f uint64
	e int
}

// extFloatFrom64 decomposes an IEEE-754 double into an extFloat64,
// restoring the hidden bit for normal values. Subnormals keep their raw
// significand with the minimum exponent.
func extFloatFrom64(d float64) extFloat64 {
	u := math.Float64bits(d)
	biasedE := int((u & exponentMask64) >> significandSize64)
	significand := u & significandMask64
	if biasedE != 0 {
		return extFloat64{
			f: significand + hiddenBit64,
			e: biasedE - exponentBias64 - significandSize64,
		}
	}
	return extFloat64{
		f: significand,
		e: 1 - exponentBias64 - significandSize64,
	}
}

// sub subtracts g from v. Both must share the same exponent; callers align
// exponents before calling.
func (v extFloat64) sub(g extFloat64) extFloat64 {
	return extFloat64{f: v.f - g.f, e: v.e}
}

// mul multiplies two extended floats, keeping the high 64 bits of the
// 128-bit significand product with a round-to-nearest correction for the
// discarded low half. The relative error is at most half an ulp.
func (v extFloat64) mul(g extFloat64) extFloat64 {
	hi, lo := bits.Mul64(v.f, g.f)
	return extFloat64{f: hi + (lo >> 63), e: v.e + g.e + 64}
}

// normalize shifts the significand left until its top bit is set.
func (v extFloat64) normalize() extFloat64 {
	s := bits.LeadingZeros64(v.f)
	return extFloat64{f: v.f << s, e: v.e - s}
}

// normalizedBoundaries returns the midpoints between v and its adjacent
// representable doubles, both normalized to the same exponent. Every
// decimal inside (minus, plus) converts back to the same double. The lower
// boundary is asymmetric when the significand is exactly the hidden bit,
// since the gap below a power of two is half the gap above it.
func (v extFloat64) normalizedBoundaries() (minus, plus extFloat64) {
	pl := extFloat64{f: (v.f << 1) + 1, e: v.e - 1}
	for pl.f&(hiddenBit64<<1) == 0 {
		pl.f <<= 1
		pl.e--
	}
	const shift = 64 - significandSize64 - 2
	pl.f <<= shift
	pl.e -= shift

	var mi extFloat64
	if v.f == hiddenBit64 {
		mi = extFloat64{f: (v.f << 2) - 1, e: v.e - 2}
	} else {
		mi = extFloat64{f: (v.f << 1) - 1, e: v.e - 1}
	}

	mi.f <<= uint(mi.e - pl.e)
	mi.e = pl.e
	return mi, pl
}

// extFloat32 is the single-precision counterpart of extFloat64, with a
// 32-bit significand. Kept as a separate type so the digit generator
// operates at the width of the source float and round-trips at 32 bits.
type extFloat32 struct {
	f uint32
	e int
}

func extFloatFrom32(d float32) extFloat32 {
	u := math.Float32bits(d)
	biasedE := int((u & exponentMask32) >> significandSize32)
	significand := u & significandMask32
	if biasedE != 0 {
		return extFloat32{
			f: significand + hiddenBit32,
			e: biasedE - exponentBias32 - significandSize32,
		}
	}
	return extFloat32{
		f: significand,
		e: 1 - exponentBias32 - significandSize32,
	}
}

func (v extFloat32) sub(g extFloat32) extFloat32 {
	return extFloat32{f: v.f - g.f, e: v.e}
}

// mul keeps the high 32 bits of the 64-bit significand product, rounded.
func (v extFloat32) mul(g extFloat32) extFloat32 {
	p := uint64(v.f)*uint64(g.f) + (1 << 31)
	return extFloat32{f: uint32(p >> 32), e: v.e + g.e + 32}
}

func (v extFloat32) normalize() extFloat32 {
	s := bits.LeadingZeros32(v.f)
	return extFloat32{f: v.f << s, e: v.e - s}
}

func (v extFloat32) normalizedBoundaries() (minus, plus extFloat32) {
	pl := extFloat32{f: (v.f << 1) + 1, e: v.e - 1}
	for pl.f&(hiddenBit32<<1) == 0 {
		pl.f <<= 1
		pl.e--
	}
	const shift = 32 - significandSize32 - 2
	pl.f <<= shift
	pl.e -= shift

	var mi extFloat32
	if v.f == hiddenBit32 {
		mi = extFloat32{f: (v.f << 2) - 1, e: v.e - 2}
	} else {
		mi = extFloat32{f: (v.f << 1) - 1, e: v.e - 1}
	}

	mi.f <<= uint(mi.e - pl.e)
	mi.e = pl.e
	return mi, pl
}
