// SPDX-License-Identifier: Apache-2.0
//
// Copyright © 2025 The Happy Authors

package dtoa

// Pairs of decimal digits 00..99, for two-digit exponent writes.
const digitPairs = "00010203040506070809" +
	"10111213141516171819" +
	"20212223242526272829" +
	"30313233343536373839" +
	"40414243444546474849" +
	"50515253545556575859" +
	"60616263646566676869" +
	"70717273747576777879" +
	"80818283848586878889" +
	"90919293949596979899"

// writeExponent writes a signed decimal exponent (no plus sign, no leading
// zeros) into b and returns the byte count.
func writeExponent(b []byte, k int) int {
	n := 0
	if k < 0 {
		b[0] = '-'
		n = 1
		k = -k
	}
	switch {
	case k >= 100:
		b[n] = byte('0' + k/100)
		n++
		k %= 100
		b[n] = digitPairs[k*2]
		b[n+1] = digitPairs[k*2+1]
		n += 2
	case k >= 10:
		b[n] = digitPairs[k*2]
		b[n+1] = digitPairs[k*2+1]
		n += 2
	default:
		b[n] = byte('0' + k)
		n++
	}
	return n
}

// prettify turns the raw digit buffer (length digits, value digits * 10^k)
// into the final human-facing form, in place, and returns the total byte
// count. kk = length + k is the decimal point position counted from the
// first digit: 10^(kk-1) <= v < 10^kk. maxDecimalPlaces bounds the digits
// after the point; with the 324 default only the sub-10^-324 branch ever
// truncates a double.
func prettify(b []byte, length, k, maxDecimalPlaces int) int {
	kk := length + k

	switch {
	case 0 <= k && kk <= 21:
		// 1234e7 -> 12340000000.0
		for i := length; i < kk; i++ {
			b[i] = '0'
		}
		b[kk] = '.'
		b[kk+1] = '0'
		return kk + 2

	case 0 < kk && kk <= 21:
		// 1234e-2 -> 12.34
		copy(b[kk+1:length+1], b[kk:length])
		b[kk] = '.'
		if k+maxDecimalPlaces < 0 {
			// With maxDecimalPlaces = 2: 1.2345 -> 1.23, 1.102 -> 1.1.
			// Trailing zeros go, but one fractional digit stays.
			for i := kk + maxDecimalPlaces; i > kk+1; i-- {
				if b[i] != '0' {
					return i + 1
				}
			}
			return kk + 2
		}
		return length + 1

	case -6 < kk && kk <= 0:
		// 1234e-6 -> 0.001234
		offset := 2 - kk
		copy(b[offset:offset+length], b[:length])
		b[0] = '0'
		b[1] = '.'
		for i := 2; i < offset; i++ {
			b[i] = '0'
		}
		if length-kk > maxDecimalPlaces {
			// With maxDecimalPlaces = 2: 0.123 -> 0.12, 0.102 -> 0.1.
			for i := maxDecimalPlaces + 1; i > 2; i-- {
				if b[i] != '0' {
					return i + 1
				}
			}
			return 3
		}
		return length + offset

	case kk < -maxDecimalPlaces:
		// Rounds to zero at the requested precision.
		b[0] = '0'
		b[1] = '.'
		b[2] = '0'
		return 3

	case length == 1:
		// 1e30
		b[1] = 'e'
		return 2 + writeExponent(b[2:], kk-1)

	default:
		// 1234e30 -> 1.234e33
		copy(b[2:length+1], b[1:length])
		b[1] = '.'
		b[length+1] = 'e'
		return length + 2 + writeExponent(b[length+2:], kk-1)
	}
}
