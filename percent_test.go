// SPDX-License-Identifier: Apache-2.0
//
// Copyright © 2025 The Happy Authors

package readable

import (
	"math"
	"testing"

	"github.com/happy-sdk/happy/pkg/devel/testutils"
)

func TestPercent(t *testing.T) {
	tests := []struct {
		in  float64
		exp string
	}{
		{0.0, "0.00%"},
		{0.001, "0.00%"},
		{-0.001, "0.00%"},
		{0.1, "0.10%"},
		{1.0, "1.00%"},
		{-1.0, "-1.00%"},
		{50.0, "50.00%"},
		{100.0, "100.00%"},
		{150.0, "150.00%"},
		{1000.0, "1,000.00%"},
		{250000.0, "250,000.00%"},
		{-1000000.0, "-1,000,000.00%"},
	}

	for _, tc := range tests {
		p := NewPercent(tc.in)
		testutils.Equal(t, tc.exp, p.String(), "NewPercent(%v)", tc.in)
		testutils.Equal(t, tc.in, p.Float64())
	}
}

func TestPercentN(t *testing.T) {
	tests := []struct {
		in       float64
		decimals int
		exp      string
	}{
		{0.0, 1, "0.0%"},
		{0.1, 1, "0.1%"},
		{1000.1234, 1, "1,000.1%"},
		{1000.1234, 3, "1,000.123%"},
		{1000.1234, 4, "1,000.1234%"},
		{1000000.1234, 4, "1,000,000.1234%"},
		{50.0, 0, "50%"},
	}

	for _, tc := range tests {
		p := NewPercentN(tc.in, tc.decimals)
		testutils.Equal(t, tc.exp, p.String(), "NewPercentN(%v, %d)", tc.in, tc.decimals)
	}
}

func TestPercentNonFinite(t *testing.T) {
	testutils.Equal(t, "NaN", NewPercent(math.NaN()).String())
	testutils.Equal(t, "inf", NewPercent(math.Inf(1)).String())
	testutils.Equal(t, "-inf", NewPercent(math.Inf(-1)).String())
}
