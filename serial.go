// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package xldt

import (
	"fmt"
	"math"
	"time"
)

// Serial is a spreadsheet date serial number: the number of days since
// 1899-12-31, with the additional, non-existent, 1900-02-29 at serial 60.
type Serial int

const (
	// MinYear and MaxYear bound the years supported by Date.
	MinYear = -9999
	MaxYear = 9999

	// MinSerial is the serial of MinYear-01-01.
	MinSerial Serial = -4346019
	// MaxSerial is the serial of MaxYear-12-31.
	MaxSerial Serial = 2958465

	// PhantomLeapDay is the serial of 1900-02-29.
	PhantomLeapDay Serial = 60
)

const (
	daysIn400Years = 146097

	// days from 0000-03-01, the start of the first 400 year era, to the
	// epoch 1899-12-31.
	epochOffset = 693900

	// generous bounds on the inputs to Date that keep all of the
	// intermediate arithmetic well within int64.
	maxYearInput  = 1 << 32
	maxMonthInput = 1 << 36
	maxDayInput   = 1 << 40
)

// floorDiv and floorMod implement Euclidean division for positive divisors.
func floorDiv(n, d int64) int64 {
	q := n / d
	if n%d < 0 {
		q--
	}
	return q
}

func floorMod(n, d int64) int64 {
	r := n % d
	if r < 0 {
		r += d
	}
	return r
}

// daysFromCivil returns the number of days from 1899-12-31 to the given
// proleptic Gregorian date. Month must be in 1-12, day may be any value.
func daysFromCivil(year, month, day int64) int64 {
	if month <= 2 {
		year--
	}
	era := floorDiv(year, 400)
	yoe := year - era*400
	// months and days of the year are counted from March 1.
	mp := (month + 9) % 12
	doy := (153*mp+2)/5 + day - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*daysIn400Years + doe - epochOffset
}

// civilFromDays is the inverse of daysFromCivil.
func civilFromDays(days int64) (year, month, day int64) {
	z := days + epochOffset
	era := floorDiv(z, daysIn400Years)
	doe := z - era*daysIn400Years
	yoe := (doe - doe/1460 + doe/36524 - doe/(daysIn400Years-1)) / 365
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153
	day = doy - (153*mp+2)/5 + 1
	month = mp + 3
	if month > 12 {
		month -= 12
	}
	year = yoe + era*400
	if month <= 2 {
		year++
	}
	return
}

// phantomAdjust converts a count of days since 1899-12-31 into a serial by
// inserting the phantom 1900-02-29 ahead of 1900-03-01. It is the only place,
// together with phantomRemove, that knows about the spreadsheet leap year bug.
func phantomAdjust(days int64) Serial {
	if days >= int64(PhantomLeapDay) {
		return Serial(days + 1)
	}
	return Serial(days)
}

// phantomRemove is the inverse of phantomAdjust for every serial other
// than PhantomLeapDay itself.
func phantomRemove(s Serial) int64 {
	if s > PhantomLeapDay {
		return int64(s) - 1
	}
	return int64(s)
}

func checkSerial(s Serial) error {
	if s < MinSerial || s > MaxSerial {
		return fmt.Errorf("serial %d: %w", s, ErrOutOfRange)
	}
	return nil
}

// Date returns the serial for the given year, month and day. Months
// outside of 1-12 roll over into the previous or following years and
// days outside of the month roll over into the previous or following
// months, as per the spreadsheet DATE function. The roll over is performed
// using the spreadsheet calendar, so Date(1900, 2, 29) is 60 and
// Date(1900, 2, 30) is 61, ie. 1900-03-01. ErrOutOfRange is returned if
// the resulting serial is outside of MinSerial to MaxSerial.
func Date(year, month, day int) (Serial, error) {
	y, m, d := int64(year), int64(month), int64(day)
	if y < -maxYearInput || y > maxYearInput ||
		m < -maxMonthInput || m > maxMonthInput ||
		d < -maxDayInput || d > maxDayInput {
		return 0, fmt.Errorf("%d-%d-%d: %w", year, month, day, ErrOutOfRange)
	}
	q := floorDiv(m-1, 12)
	y += q
	m -= q * 12
	first := phantomAdjust(daysFromCivil(y, m, 1))
	s := int64(first) + d - 1
	if s < int64(MinSerial) || s > int64(MaxSerial) {
		return 0, fmt.Errorf("%d-%d-%d: %w", year, month, day, ErrOutOfRange)
	}
	return Serial(s), nil
}

// CivilDate returns the year, month and day for the given serial.
// Serial 60 is returned as 1900-02-29.
func CivilDate(s Serial) (CalendarDate, error) {
	if err := checkSerial(s); err != nil {
		return CalendarDate{}, err
	}
	return civil(s), nil
}

// civil is CivilDate without the range check, it is used for
// intermediate values that may lie a few days outside of the range.
func civil(s Serial) CalendarDate {
	if s == PhantomLeapDay {
		return CalendarDate{Year: 1900, Month: time.February, Day: 29}
	}
	y, m, d := civilFromDays(phantomRemove(s))
	return CalendarDate{Year: int(y), Month: time.Month(m), Day: int(d)}
}

// newYear returns the serial of January 1 of the given year without
// any range check.
func newYear(year int) Serial {
	return phantomAdjust(daysFromCivil(int64(year), 1, 1))
}

// Year returns the year for the given serial.
func Year(s Serial) (int, error) {
	cd, err := CivilDate(s)
	return cd.Year, err
}

// Month returns the month, 1-12, for the given serial.
func Month(s Serial) (int, error) {
	cd, err := CivilDate(s)
	return int(cd.Month), err
}

// Day returns the day of the month, 1-31, for the given serial.
func Day(s Serial) (int, error) {
	cd, err := CivilDate(s)
	return cd.Day, err
}

// Split splits a date-time value into its serial and its time of day
// fraction in [0, 1). The serial is the largest integer not greater
// than the value, so -0.25 is serial -1 at 18:00.
func Split(v float64) (Serial, float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, 0, fmt.Errorf("%v: %w", v, ErrDomain)
	}
	f := math.Floor(v)
	if f < float64(MinSerial) || f > float64(MaxSerial) {
		return 0, 0, fmt.Errorf("%v: %w", v, ErrOutOfRange)
	}
	return Serial(f), v - f, nil
}

// SerialOf returns the serial of the date-time value v, see Split.
func SerialOf(v float64) (Serial, error) {
	s, _, err := Split(v)
	return s, err
}
