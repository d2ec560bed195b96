// SPDX-License-Identifier: Apache-2.0
//
// Copyright © 2025 The Happy Authors

package dtoa

import (
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/happy-sdk/happy/pkg/devel/testutils"
)

func TestFormat64NonFinite(t *testing.T) {
	testutils.Equal(t, "NaN", Format64(math.NaN()))
	testutils.Equal(t, "inf", Format64(math.Inf(1)))
	testutils.Equal(t, "-inf", Format64(math.Inf(-1)))
}

func TestFormat32NonFinite(t *testing.T) {
	testutils.Equal(t, "NaN", Format32(float32(math.NaN())))
	testutils.Equal(t, "inf", Format32(float32(math.Inf(1))))
	testutils.Equal(t, "-inf", Format32(float32(math.Inf(-1))))
}

func TestFormat64Zero(t *testing.T) {
	testutils.Equal(t, "0.0", Format64(0.0))
	testutils.Equal(t, "-0.0", Format64(math.Copysign(0, -1)))
	testutils.Equal(t, "0.0", Format32(0.0))
	testutils.Equal(t, "-0.0", Format32(float32(math.Copysign(0, -1))))
}

func TestFormat64(t *testing.T) {
	tests := []struct {
		in  float64
		exp string
	}{
		{1.0, "1.0"},
		{-1.0, "-1.0"},
		{1000.0, "1000.0"},
		{1234.567, "1234.567"},
		{12.34, "12.34"},
		{0.1, "0.1"},
		{0.5, "0.5"},
		{0.001234, "0.001234"},
		{0.000001, "0.000001"},
		{12340000000.0, "12340000000.0"},
		{1.5e9, "1500000000.0"},
		// Largest fixed-point magnitude: the decimal point at position
		// 21 still renders as an integer, one past switches to
		// scientific notation.
		{1e20, "100000000000000000000.0"},
		{1e21, "1e21"},
		{1e30, "1e30"},
		{1.234e33, "1.234e33"},
		{1e-7, "1e-7"},
		{-2.5e-8, "-2.5e-8"},
		{math.MaxFloat64, "1.7976931348623157e308"},
		{-math.MaxFloat64, "-1.7976931348623157e308"},
		{math.SmallestNonzeroFloat64, "5e-324"},
		{18.425, "18.425"},
		{19.0918, "19.0918"},
		{2.718281828459045, "2.718281828459045"},
		{3.141592653589793, "3.141592653589793"},
	}

	for _, tc := range tests {
		testutils.Equal(t, tc.exp, Format64(tc.in), "Format64(%v)", tc.in)
	}
}

func TestFormat32(t *testing.T) {
	tests := []struct {
		in  float32
		exp string
	}{
		{1.0, "1.0"},
		{-1.0, "-1.0"},
		{1000.0, "1000.0"},
		{0.5, "0.5"},
		{0.25, "0.25"},
		{0.1, "0.1"},
		{0.3, "0.3"},
		{1.5, "1.5"},
		{100000.0, "100000.0"},
		{math.MaxFloat32, "3.4028235e38"},
		{math.SmallestNonzeroFloat32, "1e-45"},
	}

	for _, tc := range tests {
		testutils.Equal(t, tc.exp, Format32(tc.in), "Format32(%v)", tc.in)
	}
}

func TestFormat64Decimals(t *testing.T) {
	tests := []struct {
		in  float64
		max int
		exp string
	}{
		{1.2345, 2, "1.23"},
		{1.102, 2, "1.1"},
		{0.123, 2, "0.12"},
		{0.102, 2, "0.1"},
		{0.001234, 2, "0.0"},
		{0.00001, 2, "0.0"},
		{-1.2345, 2, "-1.23"},
		{1.2345, 4, "1.2345"},
		{1000.0, 2, "1000.0"},
		{1e30, 2, "1e30"},
	}

	for _, tc := range tests {
		got := Format64Decimals(tc.in, tc.max)
		testutils.Equal(t, tc.exp, got, "Format64Decimals(%v, %d)", tc.in, tc.max)
	}
}

// Formatting with a decimal-place bound must never emit more fractional
// digits than the bound, and always keeps at least one.
func TestFormat64DecimalsBound(t *testing.T) {
	values := []float64{
		0.1, 0.123456789, 1.0 / 3.0, 12.34, 1234.56789, 0.000123, 99.999,
	}
	for _, v := range values {
		for max := 1; max <= 6; max++ {
			s := Format64Decimals(v, max)
			dot := strings.IndexByte(s, '.')
			if dot < 0 || strings.ContainsRune(s, 'e') {
				continue
			}
			frac := len(s) - dot - 1
			testutils.True(t, frac >= 1 && frac <= max,
				"Format64Decimals(%v, %d) = %q: %d fractional digits", v, max, s, frac)
		}
	}
}

func TestFormat64RoundTrip(t *testing.T) {
	values := []float64{
		1.0, 0.1, 0.2, 0.3, 1.5, 2.0, 1e10, 1e-10, 123456.789,
		math.Pi, math.E, math.Sqrt2, math.Ln2,
		math.MaxFloat64, math.SmallestNonzeroFloat64,
		5e-324, 2.2250738585072014e-308, // smallest normal
		4.9406564584124654e-324,
		1.7976931348623157e308,
		9007199254740993.0, // 2^53 + 1, not representable
		9007199254740992.0, // 2^53
	}
	// Powers of two across the full exponent range, including subnormals.
	for e := -1074; e <= 1023; e += 11 {
		values = append(values, math.Ldexp(1, e))
	}
	// Neighbors of powers of ten.
	for e := -300; e <= 300; e += 17 {
		v := math.Pow(10, float64(e))
		values = append(values, v, math.Nextafter(v, 0), math.Nextafter(v, math.Inf(1)))
	}
	// Deterministic pseudo-random bit patterns (splitmix64).
	x := uint64(0x9E3779B97F4A7C15)
	for i := 0; i < 10000; i++ {
		x += 0x9E3779B97F4A7C15
		z := x
		z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
		z = (z ^ (z >> 27)) * 0x94D049BB133111EB
		z ^= z >> 31
		v := math.Float64frombits(z)
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			values = append(values, v)
		}
	}

	var buf Buffer
	for _, v := range values {
		s := string(buf.Format64(v))
		got, err := strconv.ParseFloat(s, 64)
		if !testutils.NoError(t, err, "parsing %q (from %v)", s, v) {
			continue
		}
		testutils.Equal(t, math.Float64bits(v), math.Float64bits(got),
			"round trip of %v via %q", v, s)
	}
}

func TestFormat32RoundTrip(t *testing.T) {
	values := []float32{
		1.0, 0.1, 0.2, 0.3, 1.5, 2.0, 1e10, 1e-10, 123456.789,
		math.Pi, math.E,
		math.MaxFloat32, math.SmallestNonzeroFloat32,
		1.1754944e-38, // smallest normal
	}
	for e := -149; e <= 127; e += 3 {
		values = append(values, float32(math.Ldexp(1, e)))
	}
	x := uint32(0x12345678)
	for i := 0; i < 10000; i++ {
		// xorshift32
		x ^= x << 13
		x ^= x >> 17
		x ^= x << 5
		v := math.Float32frombits(x)
		if !math.IsNaN(float64(v)) && !math.IsInf(float64(v), 0) {
			values = append(values, v)
		}
	}

	var buf Buffer
	for _, v := range values {
		s := string(buf.Format32(v))
		got, err := strconv.ParseFloat(s, 32)
		if !testutils.NoError(t, err, "parsing %q (from %v)", s, v) {
			continue
		}
		testutils.Equal(t, math.Float32bits(v), math.Float32bits(float32(got)),
			"round trip of %v via %q", v, s)
	}
}

// The output must stay within MaxLen and be pure ASCII for any input.
func TestFormat64MaxLen(t *testing.T) {
	values := []float64{
		-math.MaxFloat64, math.MaxFloat64,
		-math.SmallestNonzeroFloat64, math.SmallestNonzeroFloat64,
		-2.2250738585072014e-308, 1.7976931348623157e308,
		math.NaN(), math.Inf(1), math.Inf(-1), 0, math.Copysign(0, -1),
	}
	var buf Buffer
	for _, v := range values {
		b := buf.Format64(v)
		testutils.True(t, len(b) <= MaxLen, "Format64(%v) = %q: %d bytes", v, b, len(b))
		for _, c := range b {
			testutils.True(t, c < 0x80, "Format64(%v) = %q: non-ASCII byte", v, b)
		}
	}
}

func TestBufferReuse(t *testing.T) {
	var buf Buffer
	testutils.Equal(t, "1.5", string(buf.Format64(1.5)))
	testutils.Equal(t, "-0.25", string(buf.Format64(-0.25)))
	testutils.Equal(t, "NaN", string(buf.Format64(math.NaN())))
	testutils.Equal(t, "2.5", string(buf.Format32(2.5)))
}

func TestBufferNoAlloc(t *testing.T) {
	var buf Buffer
	allocs := testing.AllocsPerRun(100, func() {
		_ = buf.Format64(1234.5678)
	})
	testutils.Equal(t, 0.0, allocs, "Buffer.Format64 should not allocate")
}

func BenchmarkFormat64(b *testing.B) {
	var buf Buffer
	for i := 0; i < b.N; i++ {
		_ = buf.Format64(1234.5678)
	}
}

func BenchmarkFormat32(b *testing.B) {
	var buf Buffer
	for i := 0; i < b.N; i++ {
		_ = buf.Format32(1234.5678)
	}
}
