// SPDX-License-Identifier: Apache-2.0
//
// Copyright © 2025 The Happy Authors

package readable

import (
	"fmt"
	"time"
)

// Runtime is an audio/video length in seconds rendered as "M:SS", or
// "H:MM:SS" once it reaches an hour. Seconds always carry a leading
// zero, minutes only when hours are shown, hours never.
//
//	0.0      "0:00"
//	1.0      "0:01"
//	11.9999  "0:11"
//	111.111  "1:51"
//	11111.1  "3:05:11"
type Runtime struct {
	secs float64
	s    string
}

// NewRuntime formats a length given in seconds. Fractions round down,
// except that a nonzero length below one second rounds up to "0:01" so
// it is not mistaken for no length at all. Negative input clamps to
// "0:00"; non-finite input renders as NaN, inf or -inf.
func NewRuntime(seconds float64) Runtime {
	if s, ok := nonFinite(seconds); ok {
		return Runtime{secs: seconds, s: s}
	}
	if seconds <= 0 {
		return Runtime{secs: seconds, s: "0:00"}
	}
	if seconds < 1 {
		return Runtime{secs: seconds, s: "0:01"}
	}

	total := uint64(seconds)
	secs := total % 60
	mins := (total / 60) % 60
	hours := total / 3600

	var str string
	if hours > 0 {
		str = fmt.Sprintf("%d:%02d:%02d", hours, mins, secs)
	} else {
		str = fmt.Sprintf("%d:%02d", mins, secs)
	}
	return Runtime{secs: seconds, s: str}
}

// NewRuntimeDuration formats a time.Duration the same way.
func NewRuntimeDuration(d time.Duration) Runtime {
	return NewRuntime(d.Seconds())
}

func (r Runtime) String() string { return r.s }

// Seconds returns the value the string was formatted from.
func (r Runtime) Seconds() float64 { return r.secs }
