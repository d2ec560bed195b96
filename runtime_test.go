// SPDX-License-Identifier: Apache-2.0
//
// Copyright © 2025 The Happy Authors

package readable

import (
	"math"
	"testing"
	"time"

	"github.com/happy-sdk/happy/pkg/devel/testutils"
)

func TestRuntime(t *testing.T) {
	tests := []struct {
		in  float64
		exp string
	}{
		{0.0, "0:00"},
		{-3.0, "0:00"},
		{0.5, "0:01"},
		{1.0, "0:01"},
		{1.9, "0:01"},
		{2.0, "0:02"},
		{11.1111, "0:11"},
		{11.9999, "0:11"},
		{59.0, "0:59"},
		{60.0, "1:00"},
		{111.111, "1:51"},
		{111.999, "1:51"},
		{3599.0, "59:59"},
		{3600.0, "1:00:00"},
		{11111.1, "3:05:11"},
		{11111.9, "3:05:11"},
		{360000.0, "100:00:00"},
	}

	for _, tc := range tests {
		r := NewRuntime(tc.in)
		testutils.Equal(t, tc.exp, r.String(), "NewRuntime(%v)", tc.in)
		testutils.Equal(t, tc.in, r.Seconds())
	}
}

func TestRuntimeDuration(t *testing.T) {
	testutils.Equal(t, "0:00", NewRuntimeDuration(0).String())
	testutils.Equal(t, "0:01", NewRuntimeDuration(time.Second).String())
	testutils.Equal(t, "1:01", NewRuntimeDuration(61*time.Second).String())
	testutils.Equal(t, "2:00:00", NewRuntimeDuration(2*time.Hour).String())
}

func TestRuntimeNonFinite(t *testing.T) {
	testutils.Equal(t, "NaN", NewRuntime(math.NaN()).String())
	testutils.Equal(t, "inf", NewRuntime(math.Inf(1)).String())
	testutils.Equal(t, "-inf", NewRuntime(math.Inf(-1)).String())
}
