// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package xldt

import (
	"fmt"
	"time"
)

var (
	daysInMonth     []int // days in each month
	daysInMonthLeap []int
	dayOfYear       []int // per month cumulative days in year so [0, 31, 59 etc]
	dayOfYearLeap   []int // per month cumulative days in leap year [0, 31, 60 etc]
)

func daysInMonthForYearInit(year int, month int) int {
	switch month {
	case 2:
		if IsLeap(year) {
			return 29
		}
		return 28
	case 4, 6, 9, 11:
		return 30
	default:
		return 31
	}
}

func init() {
	daysInMonth = make([]int, 12)
	daysInMonthLeap = make([]int, 12)
	dayOfYear = make([]int, 12)
	dayOfYearLeap = make([]int, 12)

	for i := 0; i < 12; i++ {
		daysInMonth[i] = daysInMonthForYearInit(2023, i+1)
		daysInMonthLeap[i] = daysInMonthForYearInit(2024, i+1)
	}
	for i := 0; i < 11; i++ {
		dayOfYear[i+1] += dayOfYear[i] + daysInMonth[i]
		dayOfYearLeap[i+1] += dayOfYearLeap[i] + daysInMonthLeap[i]
	}
}

// IsLeap returns true if the given year is a leap year in the proleptic
// Gregorian calendar. Note that 1900 is not a leap year, see
// IsSpreadsheetLeap.
func IsLeap(year int) bool {
	return year%4 == 0 && year%100 != 0 || year%400 == 0
}

// IsSpreadsheetLeap returns true if the given year has a February 29 in the
// spreadsheet calendar, that is, it is a leap year or it is 1900.
func IsSpreadsheetLeap(year int) bool {
	return year == 1900 || IsLeap(year)
}

// DaysInMonth returns the number of days in the given month of the given
// year in the spreadsheet calendar, so February 1900 has 29 days.
func DaysInMonth(year int, month time.Month) int {
	if IsSpreadsheetLeap(year) {
		return daysInMonthLeap[month-1]
	}
	return daysInMonth[month-1]
}

// DayOfYear returns the day of the year, 1-365 or 1-366, of the given
// date in the spreadsheet calendar. The date is assumed to be valid.
func DayOfYear(cd CalendarDate) int {
	if IsSpreadsheetLeap(cd.Year) {
		return dayOfYearLeap[cd.Month-1] + cd.Day
	}
	return dayOfYear[cd.Month-1] + cd.Day
}

// CalendarDate represents a date with a year, month and day.
type CalendarDate struct {
	Year  int
	Month time.Month
	Day   int
}

// Serial returns the serial for the CalendarDate as per Date.
func (cd CalendarDate) Serial() (Serial, error) {
	return Date(cd.Year, int(cd.Month), cd.Day)
}

func (cd CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", cd.Year, cd.Month, cd.Day)
}
