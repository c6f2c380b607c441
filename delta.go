// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package xldt

// Days returns the number of days from start to end, negative if end
// is before start.
func Days(start, end Serial) int {
	return int(end - start)
}

// Months returns the number of whole months from start to end as per the
// spreadsheet DATEDIF function with the "M" unit. A month has elapsed once
// end reaches the same day of the following month, or the last day of that
// month if it is shorter, so 01-31 to 02-28 is one month. If end is
// before start the result is the negative of Months(end, start).
func Months(start, end Serial) (int, error) {
	if end < start {
		n, err := Months(end, start)
		return -n, err
	}
	from, to, err := civilPair(start, end)
	if err != nil {
		return 0, err
	}
	n := (to.Year-from.Year)*12 + int(to.Month) - int(from.Month)
	if n > 0 && to.Day < anchorDay(from, to) {
		n--
	}
	return n, nil
}

// Years returns the number of whole years from start to end as per the
// spreadsheet DATEDIF function with the "Y" unit. Like Months, the
// anniversary of a February 29 is February 28 in years without one. If end
// is before start the result is the negative of Years(end, start).
func Years(start, end Serial) (int, error) {
	if end < start {
		n, err := Years(end, start)
		return -n, err
	}
	from, to, err := civilPair(start, end)
	if err != nil {
		return 0, err
	}
	n := to.Year - from.Year
	if n > 0 && (to.Month < from.Month ||
		(to.Month == from.Month && to.Day < anchorDay(from, to))) {
		n--
	}
	return n, nil
}

func civilPair(start, end Serial) (CalendarDate, CalendarDate, error) {
	from, err := CivilDate(start)
	if err != nil {
		return CalendarDate{}, CalendarDate{}, err
	}
	to, err := CivilDate(end)
	if err != nil {
		return CalendarDate{}, CalendarDate{}, err
	}
	return from, to, nil
}

// anchorDay returns the day of from, clipped to the length of the month
// of to.
func anchorDay(from, to CalendarDate) int {
	return min(from.Day, DaysInMonth(to.Year, to.Month))
}
