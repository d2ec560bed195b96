// SPDX-License-Identifier: Apache-2.0
//
// Copyright © 2025 The Happy Authors

package readable

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrDate is returned when a date cannot be constructed or parsed.
var ErrDate = errors.New("invalid date")

// DateUnknown is the display string of the zero Date.
const DateUnknown = "????-??-??"

// Date is a calendar date rendered as "YYYY-MM-DD", truncating to
// "YYYY-MM" or "YYYY" when day or month are absent. Years run
// 1000-9999; a zero month or day means the component is not known.
//
// ParseDate accepts digit-only and single-byte-separated inputs in
// year-month-day, month-day-year and day-month-year order, preferring
// them in that order when a string is ambiguous:
//
//	"2022-12-31"  "2022-12-31"
//	"20221231"    "2022-12-31"
//	"12/31/2022"  "2022-12-31"
//	"31.12.2022"  "2022-12-31"
//	"2022"        "2022"
//	"11111111"    "1111-11-11"
type Date struct {
	year  int
	month int
	day   int
	s     string
}

// NewDate builds a Date from numeric components. Month and day may be
// zero to mark them absent, but a day without a month is rejected.
func NewDate(year, month, day int) (Date, error) {
	switch {
	case !okYear(year):
		return Date{}, fmt.Errorf("%w: year %d not in 1000-9999", ErrDate, year)
	case month == 0 && day == 0:
		return newDateY(year), nil
	case !okMonth(month):
		return Date{}, fmt.Errorf("%w: month %d not in 1-12", ErrDate, month)
	case day == 0:
		return newDateYM(year, month), nil
	case !okDay(day):
		return Date{}, fmt.Errorf("%w: day %d not in 1-31", ErrDate, day)
	}
	return newDateYMD(year, month, day), nil
}

func (d Date) String() string {
	if d.year == 0 {
		return DateUnknown
	}
	return d.s
}

func (d Date) Year() int  { return d.year }
func (d Date) Month() int { return d.month }
func (d Date) Day() int   { return d.day }

// IsZero reports whether the Date holds no components at all.
func (d Date) IsZero() bool { return d.year == 0 }

func okYear(y int) bool  { return y >= 1000 && y <= 9999 }
func okMonth(m int) bool { return m >= 1 && m <= 12 }
func okDay(d int) bool   { return d >= 1 && d <= 31 }

func newDateY(y int) Date {
	return Date{year: y, s: fmt.Sprintf("%04d", y)}
}

func newDateYM(y, m int) Date {
	return Date{year: y, month: m, s: fmt.Sprintf("%04d-%02d", y, m)}
}

func newDateYMD(y, m, d int) Date {
	return Date{year: y, month: m, day: d, s: fmt.Sprintf("%04d-%02d-%02d", y, m, d)}
}

// Input length decides which patterns can apply, so each pattern only
// anchors at the start and ignores whatever trails the match. Y is a
// 4-digit year 1000-9999, M/D single digits 1-9, MM/DD zero-padded
// two-digit months 01-12 and days 01-31.
var (
	// Digit-only inputs.
	reYMNum    = regexp.MustCompile(`^[1-9]\d{3}[1-9]`)
	reYMMNum   = regexp.MustCompile(`^[1-9]\d{3}(0[1-9]|1[012])`)
	reYMDNum   = regexp.MustCompile(`^[1-9]\d{3}[1-9][1-9]`)
	reYMMDNum  = regexp.MustCompile(`^[1-9]\d{3}(0[1-9]|1[012])[1-9]`)
	reYMDDNum  = regexp.MustCompile(`^[1-9]\d{3}[1-9](0[1-9]|[12]\d|30|31)`)
	reYMMDDNum = regexp.MustCompile(`^[1-9]\d{3}(0[1-9]|1[012])(0[1-9]|[12]\d|30|31)`)

	reMYNum    = regexp.MustCompile(`^[1-9][1-9]\d{3}`)
	reMDYNum   = regexp.MustCompile(`^[1-9][1-9][1-9]\d{3}`)
	reMMDYNum  = regexp.MustCompile(`^(0[1-9]|1[012])[1-9][1-9]\d{3}`)
	reMDDYNum  = regexp.MustCompile(`^[1-9](0[1-9]|[12]\d|30|31)[1-9]\d{3}`)
	reMMDDYNum = regexp.MustCompile(`^(0[1-9]|1[012])(0[1-9]|[12]\d|30|31)[1-9]\d{3}`)

	reDMMYNum  = regexp.MustCompile(`^[1-9](0[1-9]|1[012])[1-9]\d{3}`)
	reDDMYNum  = regexp.MustCompile(`^(0[1-9]|[12]\d|3[01])[1-9][1-9]\d{3}`)
	reDDMMYNum = regexp.MustCompile(`^(0[1-9]|[12]\d|30|31)(0[1-9]|1[012])[1-9]\d{3}`)

	// Inputs with a single-byte separator between components.
	reYear  = regexp.MustCompile(`^[1-9]\d{3}`)
	reYM    = regexp.MustCompile(`^[1-9]\d{3}\D[1-9]`)
	reYMM   = regexp.MustCompile(`^[1-9]\d{3}\D(0[1-9]|1[012])`)
	reYMD   = regexp.MustCompile(`^[1-9]\d{3}\D[1-9]\D[1-9]`)
	reYMMD  = regexp.MustCompile(`^[1-9]\d{3}\D(0[1-9]|1[012])\D[1-9]`)
	reYMDD  = regexp.MustCompile(`^[1-9]\d{3}\D[1-9]\D(0[1-9]|[12]\d|30|31)`)
	reYMMDD = regexp.MustCompile(`^[1-9]\d{3}\D(0[1-9]|1[012])\D(0[1-9]|[12]\d|30|31)`)

	reMY    = regexp.MustCompile(`^[1-9]\D[1-9]\d{3}`)
	reMMY   = regexp.MustCompile(`^(0[1-9]|1[012])\D[1-9]\d{3}`)
	reMDY   = regexp.MustCompile(`^[1-9]\D[1-9]\D[1-9]\d{3}`)
	reMMDY  = regexp.MustCompile(`^(0[1-9]|1[012])\D[1-9]\D[1-9]\d{3}`)
	reMDDY  = regexp.MustCompile(`^[1-9]\D(0[1-9]|[12]\d|30|31)\D[1-9]\d{3}`)
	reMMDDY = regexp.MustCompile(`^(0[1-9]|1[012])\D(0[1-9]|[12]\d|30|31)\D[1-9]\d{3}`)

	reDMMY  = regexp.MustCompile(`^[1-9]\D(0[1-9]|1[012])\D[1-9]\d{3}`)
	reDDMY  = regexp.MustCompile(`^(0[1-9]|[12]\d|3[01])\D[1-9]\D[1-9]\d{3}`)
	reDDMMY = regexp.MustCompile(`^(0[1-9]|[12]\d|30|31)\D(0[1-9]|1[012])\D[1-9]\d{3}`)
)

// ParseDate leniently parses an arbitrary string into a Date. Trailing
// bytes after a valid prefix are ignored, and when a full match is not
// possible it falls back to extracting year and month, or just the
// year. Returns ErrDate when not even a year can be found.
func ParseDate(s string) (Date, error) {
	if len(s) == 4 {
		if isDigits(s) {
			if y := digits(s); okYear(y) {
				return newDateY(y), nil
			}
		}
		return Date{}, fmt.Errorf("%w: %q", ErrDate, s)
	}
	if len(s) < 4 {
		return Date{}, fmt.Errorf("%w: %q", ErrDate, s)
	}

	if isDigits(s) {
		if d, ok := parseNumDate(s); ok {
			return d, nil
		}
		return Date{}, fmt.Errorf("%w: %q", ErrDate, s)
	}
	if d, ok := parseSepDate(s); ok {
		return d, nil
	}
	return Date{}, fmt.Errorf("%w: %q", ErrDate, s)
}

func parseNumDate(s string) (Date, bool) {
	switch len(s) {
	case 5: // YM or MY
		switch {
		case reYMNum.MatchString(s):
			return newDateYM(digits(s[:4]), digits(s[4:])), true
		case reMYNum.MatchString(s):
			return newDateYM(digits(s[1:]), digits(s[:1])), true
		}
	case 6: // YMM, YMD, MDY
		switch {
		case reYMMNum.MatchString(s):
			return newDateYM(digits(s[:4]), digits(s[4:])), true
		case reYMDNum.MatchString(s):
			return newDateYMD(digits(s[:4]), digits(s[4:5]), digits(s[5:])), true
		case reMDYNum.MatchString(s):
			return newDateYMD(digits(s[2:]), digits(s[:1]), digits(s[1:2])), true
		}
	case 7: // YMMD, YMDD, MMDY, MDDY, DMMY, DDMY
		switch {
		case reYMMDNum.MatchString(s):
			return newDateYMD(digits(s[:4]), digits(s[4:6]), digits(s[6:])), true
		case reYMDDNum.MatchString(s):
			return newDateYMD(digits(s[:4]), digits(s[4:5]), digits(s[5:])), true
		case reMMDYNum.MatchString(s):
			return newDateYMD(digits(s[3:]), digits(s[:2]), digits(s[2:3])), true
		case reMDDYNum.MatchString(s):
			return newDateYMD(digits(s[3:]), digits(s[:1]), digits(s[1:3])), true
		case reDMMYNum.MatchString(s):
			return newDateYMD(digits(s[3:]), digits(s[1:3]), digits(s[:1])), true
		case reDDMYNum.MatchString(s):
			return newDateYMD(digits(s[3:]), digits(s[2:3]), digits(s[:2])), true
		}
	default: // YMMDD, MMDDY, DDMMY
		switch {
		case reYMMDDNum.MatchString(s):
			return newDateYMD(digits(s[:4]), digits(s[4:6]), digits(s[6:8])), true
		case reMMDDYNum.MatchString(s):
			return newDateYMD(digits(s[4:8]), digits(s[:2]), digits(s[2:4])), true
		case reDDMMYNum.MatchString(s):
			return newDateYMD(digits(s[4:8]), digits(s[2:4]), digits(s[:2])), true
		}
	}
	if reYear.MatchString(s) {
		return newDateY(digits(s[:4])), true
	}
	return Date{}, false
}

func parseSepDate(s string) (Date, bool) {
	switch len(s) {
	case 6: // Y.M or M.Y
		switch {
		case reYM.MatchString(s):
			return newDateYM(digits(s[:4]), digits(s[5:])), true
		case reMY.MatchString(s):
			return newDateYM(digits(s[2:]), digits(s[:1])), true
		}
	case 7: // Y.MM or MM.Y
		switch {
		case reYMM.MatchString(s):
			return newDateYM(digits(s[:4]), digits(s[5:])), true
		case reMMY.MatchString(s):
			return newDateYM(digits(s[3:]), digits(s[:2])), true
		case reYM.MatchString(s):
			return newDateYM(digits(s[:4]), digits(s[5:6])), true
		}
	case 8: // Y.M.D, M.D.Y
		switch {
		case reYMD.MatchString(s):
			return newDateYMD(digits(s[:4]), digits(s[5:6]), digits(s[7:])), true
		case reMDY.MatchString(s):
			return newDateYMD(digits(s[4:]), digits(s[:1]), digits(s[2:3])), true
		case reYMM.MatchString(s):
			return newDateYM(digits(s[:4]), digits(s[5:7])), true
		case reYM.MatchString(s):
			return newDateYM(digits(s[:4]), digits(s[5:6])), true
		}
	case 9: // Y.MM.D, Y.M.DD, MM.D.Y, M.DD.Y, D.MM.Y, DD.M.Y
		switch {
		case reYMMD.MatchString(s):
			return newDateYM(digits(s[:4]), digits(s[5:7])), true
		case reYMDD.MatchString(s):
			return newDateYMD(digits(s[:4]), digits(s[5:6]), digits(s[7:])), true
		case reMMDY.MatchString(s):
			return newDateYMD(digits(s[5:]), digits(s[:2]), digits(s[3:4])), true
		case reMDDY.MatchString(s):
			return newDateYMD(digits(s[5:]), digits(s[:1]), digits(s[2:4])), true
		case reDMMY.MatchString(s):
			return newDateYMD(digits(s[5:]), digits(s[2:4]), digits(s[:1])), true
		case reDDMY.MatchString(s):
			return newDateYMD(digits(s[5:]), digits(s[3:4]), digits(s[:2])), true
		case reYMM.MatchString(s):
			return newDateYM(digits(s[:4]), digits(s[5:7])), true
		case reYM.MatchString(s):
			return newDateYM(digits(s[:4]), digits(s[5:6])), true
		}
	default: // Y.MM.DD, MM.DD.Y, DD.MM.Y
		switch {
		case reYMMDD.MatchString(s):
			return newDateYMD(digits(s[:4]), digits(s[5:7]), digits(s[8:10])), true
		case reMMDDY.MatchString(s):
			return newDateYMD(digits(s[6:10]), digits(s[:2]), digits(s[3:5])), true
		case reDDMMY.MatchString(s):
			return newDateYMD(digits(s[6:10]), digits(s[3:5]), digits(s[:2])), true
		case reYMM.MatchString(s):
			return newDateYM(digits(s[:4]), digits(s[5:7])), true
		case reYM.MatchString(s):
			return newDateYM(digits(s[:4]), digits(s[5:6])), true
		}
	}
	if reYear.MatchString(s) {
		return newDateY(digits(s[:4])), true
	}
	return Date{}, false
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// digits converts a run of ASCII digits already vetted by a pattern.
func digits(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		n = n*10 + int(s[i]-'0')
	}
	return n
}
