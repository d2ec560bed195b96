// SPDX-License-Identifier: Apache-2.0
//
// Copyright © 2025 The Happy Authors

package readable

import (
	"math"
	"testing"

	"github.com/happy-sdk/happy/pkg/devel/testutils"
)

func TestFloat(t *testing.T) {
	tests := []struct {
		in  float64
		exp string
	}{
		{0.0, "0.000"},
		{1.0, "1.000"},
		{-1.0, "-1.000"},
		{1234.571, "1,234.571"},
		{0.5, "0.500"},
		{1000000.0, "1,000,000.000"},
		// More digits than requested truncate, they do not round.
		{1234.5714, "1,234.571"},
		{1234.5719, "1,234.571"},
	}

	for _, tc := range tests {
		f := NewFloat(tc.in)
		testutils.Equal(t, tc.exp, f.String(), "NewFloat(%v)", tc.in)
		testutils.Equal(t, tc.in, f.Float64())
	}
}

func TestFloatN(t *testing.T) {
	tests := []struct {
		in       float64
		decimals int
		exp      string
	}{
		{1.5, 1, "1.5"},
		{1.5, 4, "1.5000"},
		{-1234.5, 2, "-1,234.50"},
		{3.0, 6, "3.000000"},
		{50.123, 0, "50"},
		{-50.123, 0, "-50"},
		{1234567.0, 0, "1,234,567"},
	}

	for _, tc := range tests {
		f := NewFloatN(tc.in, tc.decimals)
		testutils.Equal(t, tc.exp, f.String(), "NewFloatN(%v, %d)", tc.in, tc.decimals)
	}
}

func TestFloatNonFinite(t *testing.T) {
	testutils.Equal(t, "NaN", NewFloat(math.NaN()).String())
	testutils.Equal(t, "inf", NewFloat(math.Inf(1)).String())
	testutils.Equal(t, "-inf", NewFloat(math.Inf(-1)).String())
}

// Magnitudes past the fixed-point range keep their scientific form.
func TestFloatScientific(t *testing.T) {
	testutils.Equal(t, "1e21", NewFloat(1e21).String())
	testutils.Equal(t, "1.234e33", NewFloat(1.234e33).String())
}
