// SPDX-License-Identifier: Apache-2.0
//
// Copyright © 2025 The Happy Authors

package readable

import (
	"github.com/happy-sdk/happy/pkg/strings/readable/dtoa"
)

// DefaultPercentDecimals is the fractional digit count NewPercent pads
// or truncates to.
const DefaultPercentDecimals = 2

// Percent is a comma-grouped percentage, e.g. 250000.0 renders as
// "250,000.00%".
type Percent struct {
	f float64
	s string
}

// NewPercent formats f with two fractional digits and a trailing "%".
// Magnitudes below 0.01 clamp to "0.00%" so a near-zero value never
// shows up as "-0.00%".
func NewPercent(f float64) Percent {
	if s, ok := nonFinite(f); ok {
		return Percent{f: f, s: s}
	}
	if f < 0.01 && f > -0.01 {
		return Percent{f: f, s: "0.00%"}
	}
	return NewPercentN(f, DefaultPercentDecimals)
}

// NewPercentN formats f with exactly decimals fractional digits and a
// trailing "%". Truncates rather than rounds, like NewFloatN.
func NewPercentN(f float64, decimals int) Percent {
	if s, ok := nonFinite(f); ok {
		return Percent{f: f, s: s}
	}
	if decimals < 1 {
		return Percent{f: f, s: NewInt(int64(f)).String() + "%"}
	}
	return Percent{f: f, s: groupFloat(dtoa.Format64Decimals(f, decimals), decimals) + "%"}
}

func (p Percent) String() string { return p.s }

// Float64 returns the value the string was formatted from.
func (p Percent) Float64() float64 { return p.f }
