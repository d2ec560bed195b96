// SPDX-License-Identifier: Apache-2.0
//
// Copyright © 2025 The Happy Authors

package dtoa

// Precomputed powers of ten as extended-precision floats, spaced every
// eighth power so that any normalized binary exponent is one table entry
// away from the digit-generation window. The significand and binary
// exponent live in parallel arrays; both are immutable package data.

const (
	firstPower64 = -348 // powersF64[0] is 10^-348
	firstPower32 = -36  // powersF32[0] is 10^-36
	powerStep    = 8
)

// 10^-348, 10^-340, ..., 10^340.
var powersF64 = [87]uint64{
	0xfa8fd5a0081c0288, 0xbaaee17fa23ebf76,
	0x8b16fb203055ac76, 0xcf42894a5dce35ea,
	0x9a6bb0aa55653b2d, 0xe61acf033d1a45df,
	0xab70fe17c79ac6ca, 0xff77b1fcbebcdc4f,
	0xbe5691ef416bd60c, 0x8dd01fad907ffc3c,
	0xd3515c2831559a83, 0x9d71ac8fada6c9b5,
	0xea9c227723ee8bcb, 0xaecc49914078536d,
	0x823c12795db6ce57, 0xc21094364dfb5637,
	0x9096ea6f3848984f, 0xd77485cb25823ac7,
	0xa086cfcd97bf97f4, 0xef340a98172aace5,
	0xb23867fb2a35b28e, 0x84c8d4dfd2c63f3b,
	0xc5dd44271ad3cdba, 0x936b9fcebb25c996,
	0xdbac6c247d62a584, 0xa3ab66580d5fdaf6,
	0xf3e2f893dec3f126, 0xb5b5ada8aaff80b8,
	0x87625f056c7c4a8b, 0xc9bcff6034c13053,
	0x964e858c91ba2655, 0xdff9772470297ebd,
	0xa6dfbd9fb8e5b88f, 0xf8a95fcf88747d94,
	0xb94470938fa89bcf, 0x8a08f0f8bf0f156b,
	0xcdb02555653131b6, 0x993fe2c6d07b7fac,
	0xe45c10c42a2b3b06, 0xaa242499697392d3,
	0xfd87b5f28300ca0e, 0xbce5086492111aeb,
	0x8cbccc096f5088cc, 0xd1b71758e219652c,
	0x9c40000000000000, 0xe8d4a51000000000,
	0xad78ebc5ac620000, 0x813f3978f8940984,
	0xc097ce7bc90715b3, 0x8f7e32ce7bea5c70,
	0xd5d238a4abe98068, 0x9f4f2726179a2245,
	0xed63a231d4c4fb27, 0xb0de65388cc8ada8,
	0x83c7088e1aab65db, 0xc45d1df942711d9a,
	0x924d692ca61be758, 0xda01ee641a708dea,
	0xa26da3999aef774a, 0xf209787bb47d6b85,
	0xb454e4a179dd1877, 0x865b86925b9bc5c2,
	0xc83553c5c8965d3d, 0x952ab45cfa97a0b3,
	0xde469fbd99a05fe3, 0xa59bc234db398c25,
	0xf6c69a72a3989f5c, 0xb7dcbf5354e9bece,
	0x88fcf317f22241e2, 0xcc20ce9bd35c78a5,
	0x98165af37b2153df, 0xe2a0b5dc971f303a,
	0xa8d9d1535ce3b396, 0xfb9b7cd9a4a7443c,
	0xbb764c4ca7a44410, 0x8bab8eefb6409c1a,
	0xd01fef10a657842c, 0x9b10a4e5e9913129,
	0xe7109bfba19c0c9d, 0xac2820d9623bf429,
	0x80444b5e7aa7cf85, 0xbf21e44003acdd2d,
	0x8e679c2f5e44ff8f, 0xd433179d9c8cb841,
	0x9e19db92b4e31ba9, 0xeb96bf6ebadf77d9,
	0xaf87023b9bf0ee6b,
}

var powersE64 = [87]int16{
	-1220, -1193, -1166, -1140, -1113, -1087, -1060, -1034, -1007, -980,
	-954, -927, -901, -874, -847, -821, -794, -768, -741, -715,
	-688, -661, -635, -608, -582, -555, -529, -502, -475, -449,
	-422, -396, -369, -343, -316, -289, -263, -236, -210, -183,
	-157, -130, -103, -77, -50, -24, 3, 30, 56, 83,
	109, 136, 162, 189, 216, 242, 269, 295, 322, 348,
	375, 402, 428, 455, 481, 508, 534, 561, 588, 614,
	641, 667, 694, 720, 747, 774, 800, 827, 853, 880,
	907, 933, 960, 986, 1013, 1039, 1066,
}

// 10^-36, 10^-28, ..., 10^52.
var powersF32 = [12]uint32{
	0xaa242499, 0xfd87b5f3, 0xbce50865, 0x8cbccc09,
	0xd1b71759, 0x9c400000, 0xe8d4a510, 0xad78ebc6,
	0x813f3979, 0xc097ce7c, 0x8f7e32ce, 0xd5d238a5,
}

var powersE32 = [12]int16{
	-151, -125, -98, -71, -45, -18, 8, 35, 62, 88, 115, 141,
}

const log10of2 = 0.30102999566398114

// cachedPower64 returns the power of ten whose product with a normalized
// extFloat64 of binary exponent e lands in the digit-generation window
// [-60, -32], together with its decimal exponent. The index is computed
// directly from e; no search.
func cachedPower64(e int) (extFloat64, int) {
	dk := float64(3-64-e)*log10of2 - float64(firstPower64+1)
	k := int(dk)
	if dk-float64(k) > 0 {
		k++
	}
	index := (k >> 3) + 1
	decExp := -(firstPower64 + index*powerStep)
	return extFloat64{f: powersF64[index], e: int(powersE64[index])}, decExp
}

// cachedPower32 is the single-precision variant over the smaller table.
func cachedPower32(e int) (extFloat32, int) {
	dk := float64(3-32-e)*log10of2 - float64(firstPower32+1)
	k := int(dk)
	if dk-float64(k) > 0 {
		k++
	}
	index := (k >> 3) + 1
	decExp := -(firstPower32 + index*powerStep)
	return extFloat32{f: powersF32[index], e: int(powersE32[index])}, decExp
}
