// SPDX-License-Identifier: Apache-2.0
//
// Copyright © 2025 The Happy Authors

package readable

import "strconv"

// maxGroupedLen is the longest comma-grouped integer: 20 digits of
// MaxUint64 plus 6 commas plus a sign.
const maxGroupedLen = 27

// Uint is a comma-grouped unsigned integer, e.g. 1234567 renders as
// "1,234,567".
type Uint struct {
	n uint64
	s string
}

// NewUint formats n with comma grouping.
func NewUint(n uint64) Uint {
	var buf [maxGroupedLen]byte
	return Uint{n: n, s: string(appendGroupedUint(buf[:0], n))}
}

func (u Uint) String() string { return u.s }

// Uint64 returns the value the string was formatted from.
func (u Uint) Uint64() uint64 { return u.n }

// Int is the signed counterpart of Uint.
type Int struct {
	n int64
	s string
}

// NewInt formats n with comma grouping, keeping the leading minus
// outside the first group.
func NewInt(n int64) Int {
	var buf [maxGroupedLen]byte
	b := buf[:0]
	u := uint64(n)
	if n < 0 {
		b = append(b, '-')
		u = uint64(-n)
	}
	return Int{n: n, s: string(appendGroupedUint(b, u))}
}

func (i Int) String() string { return i.s }

// Int64 returns the value the string was formatted from.
func (i Int) Int64() int64 { return i.n }

// appendGroupedUint appends the decimal digits of n to dst with a comma
// every three digits.
func appendGroupedUint(dst []byte, n uint64) []byte {
	var digits [20]byte
	d := strconv.AppendUint(digits[:0], n, 10)
	lead := len(d) % 3
	if lead == 0 {
		lead = 3
	}
	dst = append(dst, d[:lead]...)
	for i := lead; i < len(d); i += 3 {
		dst = append(dst, ',')
		dst = append(dst, d[i:i+3]...)
	}
	return dst
}

// groupDigits comma-groups an already formatted run of decimal digits.
func groupDigits(dst []byte, digits string) []byte {
	lead := len(digits) % 3
	if lead == 0 {
		lead = 3
	}
	dst = append(dst, digits[:lead]...)
	for i := lead; i < len(digits); i += 3 {
		dst = append(dst, ',')
		dst = append(dst, digits[i:i+3]...)
	}
	return dst
}
