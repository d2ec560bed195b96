// SPDX-License-Identifier: Apache-2.0
//
// Copyright © 2025 The Happy Authors

// Package readable formats numbers, percentages, runtimes and dates as
// human-readable display strings. Integers are comma-grouped (1234567
// becomes "1,234,567"), floats are rendered through the dtoa shortest
// decimal converter, runtimes come out as "H:MM:SS" and dates as
// "YYYY-MM-DD".
//
// Every type pairs the original value with its rendered string, so the
// value survives formatting and can be read back without parsing.
package readable

import (
	"github.com/happy-sdk/happy/pkg/strings/readable/dtoa"
)

// Strings returned for non-finite float input, shared with the dtoa
// package so both layers agree on the spelling.
const (
	NaN    = dtoa.NaN
	Inf    = dtoa.Inf
	NegInf = dtoa.NegInf
)

// Unknown is the display string for values that are not known yet.
const Unknown = "???"
