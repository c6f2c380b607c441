// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package xldt

import (
	"fmt"
	"math"
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 3600
	secondsPerDay    = 86400
	minutesPerDay    = 1440
	hoursPerDay      = 24
)

// TimeOfDay represents a time of day.
type TimeOfDay uint32

// NewTimeOfDay creates a new TimeOfDay from the specified hour, minute and second.
func NewTimeOfDay(hour, minute, second int) TimeOfDay {
	return TimeOfDay(hour<<16 | minute<<8 | second)
}

func (t TimeOfDay) Hour() int {
	return int(t >> 16)
}

func (t TimeOfDay) Minute() int {
	return int(t >> 8 & 0xff)
}

func (t TimeOfDay) Second() int {
	return int(t & 0xff)
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour(), t.Minute(), t.Second())
}

// Fraction returns the fraction of a day represented by the TimeOfDay.
func (t TimeOfDay) Fraction() float64 {
	return Time(t.Hour(), t.Minute(), t.Second())
}

// Time returns the fraction of a day, in [0, 1), for the given hour,
// minute and second. Values outside of their usual ranges carry into, or
// borrow from, the next larger unit as per the spreadsheet TIME function
// and whole days are discarded, so Time(0, 61, 0) is 01:01:00,
// Time(25, 0, 0) is 01:00:00 and Time(0, 0, -1) is 23:59:59.
func Time(hour, minute, second int) float64 {
	secs := floorMod(int64(hour), hoursPerDay)*secondsPerHour +
		floorMod(int64(minute), minutesPerDay)*secondsPerMinute +
		floorMod(int64(second), secondsPerDay)
	return float64(floorMod(secs, secondsPerDay)) / secondsPerDay
}

// TimeOfDayFromFraction returns the time of day for the fractional part of
// the date-time value v, rounded to the nearest second with ties going
// to the even second. A value that rounds up to midnight is returned
// as 00:00:00.
func TimeOfDayFromFraction(v float64) (TimeOfDay, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%v: %w", v, ErrDomain)
	}
	secs := int(math.RoundToEven((v-math.Floor(v))*secondsPerDay)) % secondsPerDay
	return NewTimeOfDay(secs/secondsPerHour, secs%secondsPerHour/secondsPerMinute, secs%secondsPerMinute), nil
}

// Hour returns the hour, 0-23, of the date-time value v.
func Hour(v float64) (int, error) {
	t, err := TimeOfDayFromFraction(v)
	return t.Hour(), err
}

// Minute returns the minute, 0-59, of the date-time value v.
func Minute(v float64) (int, error) {
	t, err := TimeOfDayFromFraction(v)
	return t.Minute(), err
}

// Second returns the second, 0-59, of the date-time value v.
func Second(v float64) (int, error) {
	t, err := TimeOfDayFromFraction(v)
	return t.Second(), err
}
