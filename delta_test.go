// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package xldt_test

import (
	"errors"
	"testing"

	"cloudeng.io/xldt"
)

func mustDate(t *testing.T, year, month, day int) xldt.Serial {
	t.Helper()
	s, err := xldt.Date(year, month, day)
	if err != nil {
		t.Fatalf("%v-%v-%v: %v", year, month, day, err)
	}
	return s
}

func TestDelta(t *testing.T) {
	d := func(y, m, dd int) xldt.Serial { return mustDate(t, y, m, dd) }
	for i, tc := range []struct {
		start, end          xldt.Serial
		years, months, days int
	}{
		{d(2021, 1, 31), d(2021, 2, 28), 0, 1, 28},
		{d(2021, 1, 31), d(2021, 2, 27), 0, 0, 27},
		{d(2021, 1, 31), d(2021, 3, 30), 0, 1, 58},
		{d(2020, 1, 31), d(2020, 2, 29), 0, 1, 29},
		{d(2020, 1, 31), d(2020, 2, 28), 0, 0, 28},
		{d(2020, 2, 29), d(2021, 2, 28), 1, 12, 365},
		{d(2020, 2, 29), d(2024, 2, 28), 3, 47, 1460},
		{d(2020, 2, 29), d(2024, 2, 29), 4, 48, 1461},
		{d(2021, 1, 15), d(2021, 1, 15), 0, 0, 0},
		{d(2021, 1, 15), d(2021, 2, 14), 0, 0, 30},
		{d(2021, 1, 15), d(2021, 2, 15), 0, 1, 31},
		{d(1999, 12, 31), d(2000, 12, 30), 0, 11, 365},
		{d(1999, 12, 31), d(2000, 12, 31), 1, 12, 366},
		// negative intervals are the negation of the reversed interval.
		{d(2021, 2, 28), d(2021, 1, 31), 0, -1, -28},
		{d(2021, 3, 31), d(2021, 2, 28), 0, -1, -31},
		{d(2024, 6, 1), d(2020, 6, 2), -3, -47, -1460},
		// the phantom 1900-02-29 is a real day of February 1900.
		{d(1900, 1, 31), 60, 0, 1, 29},
		{d(1900, 1, 31), 59, 0, 0, 28},
		{d(1900, 2, 28), d(1901, 2, 28), 1, 12, 366},
		{60, d(1901, 2, 28), 1, 12, 365},
		{xldt.MinSerial, xldt.MaxSerial, 19998, 239987, int(xldt.MaxSerial - xldt.MinSerial)},
	} {
		years, err := xldt.Years(tc.start, tc.end)
		if err != nil {
			t.Errorf("%v: %v", i, err)
			continue
		}
		months, err := xldt.Months(tc.start, tc.end)
		if err != nil {
			t.Errorf("%v: %v", i, err)
			continue
		}
		if got, want := years, tc.years; got != want {
			t.Errorf("%v: years: got %v, want %v", i, got, want)
		}
		if got, want := months, tc.months; got != want {
			t.Errorf("%v: months: got %v, want %v", i, got, want)
		}
		if got, want := xldt.Days(tc.start, tc.end), tc.days; got != want {
			t.Errorf("%v: days: got %v, want %v", i, got, want)
		}
	}

	if _, err := xldt.Months(1, xldt.MaxSerial+1); !errors.Is(err, xldt.ErrOutOfRange) {
		t.Errorf("unexpected or missing error: %v", err)
	}
	if _, err := xldt.Years(xldt.MinSerial-1, 1); !errors.Is(err, xldt.ErrOutOfRange) {
		t.Errorf("unexpected or missing error: %v", err)
	}
}

func TestDeltaMonotonic(t *testing.T) {
	start := mustDate(t, 2020, 1, 31)
	prevMonths, prevYears := 0, 0
	for end := start; end < start+3000; end++ {
		months, err := xldt.Months(start, end)
		if err != nil {
			t.Fatal(err)
		}
		years, err := xldt.Years(start, end)
		if err != nil {
			t.Fatal(err)
		}
		if months < prevMonths || months > prevMonths+1 {
			t.Fatalf("%v: months: %v after %v", end, months, prevMonths)
		}
		if years < prevYears || years > prevYears+1 {
			t.Fatalf("%v: years: %v after %v", end, years, prevYears)
		}
		if got, want := years, months/12; got != want {
			t.Fatalf("%v: got %v, want %v", end, got, want)
		}
		prevMonths, prevYears = months, years
	}
}
