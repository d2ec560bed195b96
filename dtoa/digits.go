// SPDX-License-Identifier: Apache-2.0
//
// Copyright © 2025 The Happy Authors

package dtoa

var pow10u64 = [10]uint64{
	1, 10, 100, 1000, 10000, 100000, 1000000, 10000000, 100000000, 1000000000,
}

var pow10u32 = [10]uint32{
	1, 10, 100, 1000, 10000, 100000, 1000000, 10000000, 100000000, 1000000000,
}

// countDecimalDigits returns the decimal digit count of n, capped at 9:
// the scaled integer part handed to the digit generators never reaches ten
// digits.
func countDecimalDigits(n uint32) int {
	switch {
	case n < 10:
		return 1
	case n < 100:
		return 2
	case n < 1000:
		return 3
	case n < 10000:
		return 4
	case n < 100000:
		return 5
	case n < 1000000:
		return 6
	case n < 10000000:
		return 7
	case n < 100000000:
		return 8
	default:
		return 9
	}
}

// roundDigits64 is the final rounding step of digit generation: while
// decrementing the last emitted digit keeps the represented value inside
// the acceptable interval and strictly closer to the true midpoint wpW, it
// decrements and adds back one decimal unit. This picks the numerically
// closest of the candidate last digits.
func roundDigits64(buf []byte, length int, delta, rest, tenKappa, wpW uint64) {
	for rest < wpW && delta-rest >= tenKappa &&
		(rest+tenKappa < wpW || wpW-rest > rest+tenKappa-wpW) {
		buf[length-1]--
		rest += tenKappa
	}
}

func roundDigits32(buf []byte, length int, delta, rest, tenKappa, wpW uint32) {
	for rest < wpW && delta-rest >= tenKappa &&
		(rest+tenKappa < wpW || wpW-rest > rest+tenKappa-wpW) {
		buf[length-1]--
		rest += tenKappa
	}
}

// generateDigits64 emits the minimal digit sequence for the scaled value w
// given the scaled upper boundary mp and interval width delta. It returns
// the digit count and the final decimal exponent. The significand of mp is
// split at the unit point into an integer part p1 and fraction p2; digits
// of p1 come out most-significant-first, then fractional digits of p2 by
// repeated multiplication by ten, stopping as soon as the remaining
// distance fits inside delta.
func generateDigits64(w, mp extFloat64, delta uint64, buf []byte, k int) (int, int) {
	one := extFloat64{f: 1 << uint(-mp.e), e: mp.e}
	wpW := mp.sub(w)
	p1 := uint32(mp.f >> uint(-one.e))
	p2 := mp.f & (one.f - 1)
	kappa := countDecimalDigits(p1)
	length := 0

	for kappa > 0 {
		var d uint32
		switch kappa {
		case 9:
			d = p1 / 100000000
			p1 %= 100000000
		case 8:
			d = p1 / 10000000
			p1 %= 10000000
		case 7:
			d = p1 / 1000000
			p1 %= 1000000
		case 6:
			d = p1 / 100000
			p1 %= 100000
		case 5:
			d = p1 / 10000
			p1 %= 10000
		case 4:
			d = p1 / 1000
			p1 %= 1000
		case 3:
			d = p1 / 100
			p1 %= 100
		case 2:
			d = p1 / 10
			p1 %= 10
		case 1:
			d = p1
			p1 = 0
		}
		if d != 0 || length != 0 {
			buf[length] = byte('0' + d)
			length++
		}
		kappa--
		tmp := uint64(p1)<<uint(-one.e) + p2
		if tmp <= delta {
			k += kappa
			roundDigits64(buf, length, delta, tmp, pow10u64[kappa]<<uint(-one.e), wpW.f)
			return length, k
		}
	}

	for {
		p2 *= 10
		delta *= 10
		d := byte(p2 >> uint(-one.e))
		if d != 0 || length != 0 {
			buf[length] = '0' + d
			length++
		}
		p2 &= one.f - 1
		kappa--
		if p2 < delta {
			k += kappa
			// The midpoint scales with the fractional digits consumed;
			// the multiplication wraps on purpose past 10^9.
			var scaled uint64
			if -kappa < 9 {
				scaled = wpW.f * pow10u64[-kappa]
			}
			roundDigits64(buf, length, delta, p2, one.f, scaled)
			return length, k
		}
	}
}

func generateDigits32(w, mp extFloat32, delta uint32, buf []byte, k int) (int, int) {
	one := extFloat32{f: 1 << uint(-mp.e), e: mp.e}
	wpW := mp.sub(w)
	p1 := mp.f >> uint(-one.e)
	p2 := mp.f & (one.f - 1)
	kappa := countDecimalDigits(p1)
	length := 0

	for kappa > 0 {
		var d uint32
		switch kappa {
		case 9:
			d = p1 / 100000000
			p1 %= 100000000
		case 8:
			d = p1 / 10000000
			p1 %= 10000000
		case 7:
			d = p1 / 1000000
			p1 %= 1000000
		case 6:
			d = p1 / 100000
			p1 %= 100000
		case 5:
			d = p1 / 10000
			p1 %= 10000
		case 4:
			d = p1 / 1000
			p1 %= 1000
		case 3:
			d = p1 / 100
			p1 %= 100
		case 2:
			d = p1 / 10
			p1 %= 10
		case 1:
			d = p1
			p1 = 0
		}
		if d != 0 || length != 0 {
			buf[length] = byte('0' + d)
			length++
		}
		kappa--
		tmp := p1<<uint(-one.e) + p2
		if tmp <= delta {
			k += kappa
			roundDigits32(buf, length, delta, tmp, pow10u32[kappa]<<uint(-one.e), wpW.f)
			return length, k
		}
	}

	for {
		p2 *= 10
		delta *= 10
		d := byte(p2 >> uint(-one.e))
		if d != 0 || length != 0 {
			buf[length] = '0' + d
			length++
		}
		p2 &= one.f - 1
		kappa--
		if p2 < delta {
			k += kappa
			var scaled uint32
			if -kappa < 9 {
				scaled = wpW.f * pow10u32[-kappa]
			}
			roundDigits32(buf, length, delta, p2, one.f, scaled)
			return length, k
		}
	}
}

// grisu64 runs the Grisu2 pipeline for a positive finite double: decompose,
// compute boundaries, scale everything by one cached power of ten, then
// generate digits within the narrowed interval. The boundary significands
// are nudged inward by one ulp to absorb the rounding error of the scaling
// multiplications.
//
// Grisu2 does not guarantee the globally shortest digit sequence in every
// case (unlike Grisu3 or Ryu); the output always round-trips but may carry
// one extra digit. That trade-off is part of this package's contract.
func grisu64(v float64, buf []byte) (int, int) {
	d := extFloatFrom64(v)
	wm, wp := d.normalizedBoundaries()
	cmk, k := cachedPower64(wp.e)
	w := d.normalize().mul(cmk)
	wpS := wp.mul(cmk)
	wmS := wm.mul(cmk)
	wmS.f++
	wpS.f--
	return generateDigits64(w, wpS, wpS.f-wmS.f, buf, k)
}

func grisu32(v float32, buf []byte) (int, int) {
	d := extFloatFrom32(v)
	wm, wp := d.normalizedBoundaries()
	cmk, k := cachedPower32(wp.e)
	w := d.normalize().mul(cmk)
	wpS := wp.mul(cmk)
	wmS := wm.mul(cmk)
	wmS.f++
	wpS.f--
	return generateDigits32(w, wpS, wpS.f-wmS.f, buf, k)
}
