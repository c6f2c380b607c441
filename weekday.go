// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package xldt

import (
	"fmt"
	"time"
)

// ReturnType selects the numbering convention used by Weekday and Week.
// The values are those used by the spreadsheet WEEKDAY and WEEKNUM
// functions.
type ReturnType int

const (
	SundayOne       ReturnType = 1  // Sunday is 1, Saturday is 7.
	MondayOne       ReturnType = 2  // Monday is 1, Sunday is 7.
	MondayZero      ReturnType = 3  // Monday is 0, Sunday is 6, Weekday only.
	MondayOneExt    ReturnType = 11 // Monday is 1, Sunday is 7.
	TuesdayOneExt   ReturnType = 12 // Tuesday is 1, Monday is 7.
	WednesdayOneExt ReturnType = 13 // Wednesday is 1, Tuesday is 7.
	ThursdayOneExt  ReturnType = 14 // Thursday is 1, Wednesday is 7.
	FridayOneExt    ReturnType = 15 // Friday is 1, Thursday is 7.
	SaturdayOneExt  ReturnType = 16 // Saturday is 1, Friday is 7.
	SundayOneExt    ReturnType = 17 // Sunday is 1, Saturday is 7.
	ISO             ReturnType = 21 // ISO 8601 weeks, Week only.
)

type convention struct {
	first     time.Weekday
	base      int
	weekday   bool
	week      bool
	shortName string
}

var conventions = map[ReturnType]convention{
	SundayOne:       {time.Sunday, 1, true, true, "sun-1"},
	MondayOne:       {time.Monday, 1, true, true, "mon-1"},
	MondayZero:      {time.Monday, 0, true, false, "mon-0"},
	MondayOneExt:    {time.Monday, 1, true, true, "mon-1-ext"},
	TuesdayOneExt:   {time.Tuesday, 1, true, true, "tue-1-ext"},
	WednesdayOneExt: {time.Wednesday, 1, true, true, "wed-1-ext"},
	ThursdayOneExt:  {time.Thursday, 1, true, true, "thu-1-ext"},
	FridayOneExt:    {time.Friday, 1, true, true, "fri-1-ext"},
	SaturdayOneExt:  {time.Saturday, 1, true, true, "sat-1-ext"},
	SundayOneExt:    {time.Sunday, 1, true, true, "sun-1-ext"},
	ISO:             {time.Monday, 1, false, true, "iso"},
}

func (rt ReturnType) String() string {
	if c, ok := conventions[rt]; ok {
		return c.shortName
	}
	return fmt.Sprintf("ReturnType(%d)", int(rt))
}

// position returns the 0-based position of the serial's day within a
// week that starts on the convention's first day.
func (c convention) position(s Serial) int {
	return int(floorMod(int64(DayOfWeek(s)-c.first), 7))
}

// DayOfWeek returns the day of the week for the given serial. It is
// computed purely from the serial, as spreadsheets do, so that serial 1
// is a Sunday. This is the true day of the week for all serials from 61
// (1900-03-01) onwards, earlier dates are one day behind the calendar.
func DayOfWeek(s Serial) time.Weekday {
	return time.Weekday(floorMod(int64(s)-1, 7))
}

// Weekday returns the day of the week for the given serial numbered
// according to rt. ISO is not supported and, like any other unknown
// value, results in ErrInvalidReturnType.
func Weekday(s Serial, rt ReturnType) (int, error) {
	c, ok := conventions[rt]
	if !ok || !c.weekday {
		return 0, fmt.Errorf("weekday: %d: %w", int(rt), ErrInvalidReturnType)
	}
	if err := checkSerial(s); err != nil {
		return 0, err
	}
	return c.position(s) + c.base, nil
}

// Week returns the week number of the year, starting with 1, for the
// given serial. The week containing January 1 is the first week of the
// year, and weeks start on the day specified by rt. ISO selects the
// ISO 8601 week as per ISOWeek. MondayZero, like any other unknown value,
// results in ErrInvalidReturnType.
func Week(s Serial, rt ReturnType) (int, error) {
	c, ok := conventions[rt]
	if !ok || !c.week {
		return 0, fmt.Errorf("week: %d: %w", int(rt), ErrInvalidReturnType)
	}
	if rt == ISO {
		return ISOWeek(s)
	}
	if err := checkSerial(s); err != nil {
		return 0, err
	}
	jan1 := newYear(civil(s).Year)
	start := jan1 - Serial(c.position(jan1))
	return int(s-start)/7 + 1, nil
}

// ISOWeek returns the ISO 8601 week number, 1-53, for the given serial.
// Weeks start on Monday and the first week of a year is the one that
// contains its first Thursday, so dates at the start of January may belong
// to week 52 or 53 of the previous year and dates at the end of December
// to week 1 of the next year.
func ISOWeek(s Serial) (int, error) {
	if err := checkSerial(s); err != nil {
		return 0, err
	}
	thursday := s - Serial(conventions[MondayOne].position(s)) + 3
	return int(thursday-newYear(civil(thursday).Year))/7 + 1, nil
}
