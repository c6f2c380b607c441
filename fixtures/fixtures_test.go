// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package fixtures_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cloudeng.io/xldt"
	"cloudeng.io/xldt/fixtures"
)

const dateTable = `# comments are ignored.
DATE;VALUE;RETURN_TYPE;WEEKDAY
1900-03-01;61;1;5
2024-01-01;45292;2;1
2024-01-01;45292;3;1
2024-01-02;45292;3;2
`

func TestRead(t *testing.T) {
	rows, err := fixtures.Read[fixtures.DateRow](strings.NewReader(dateTable))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := len(rows), 4; got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
	if got, want := rows[1], (fixtures.DateRow{Date: "2024-01-01", Value: 45292, ReturnType: 2, Weekday: 1}); got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	err = fixtures.VerifyDates(rows)
	if err == nil {
		t.Fatal("expected an error")
	}
	var m interface{ Unwrap() []error }
	if !errors.As(err, &m) {
		t.Fatalf("unexpected error type: %T", err)
	}
	// Row 3 has the wrong weekday, row 4 the wrong serial and weekday.
	if got, want := len(m.Unwrap()), 3; got != want {
		t.Errorf("got %v, want %v: %v", got, want, err)
	}
	if got, want := err.Error(), "row 3: 2024-01-01: weekday: got 0, want 1"; !strings.Contains(got, want) {
		t.Errorf("%v does not contain %v", got, want)
	}
	if err := fixtures.VerifyDates(rows[:2]); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestVerifyOthers(t *testing.T) {
	weeks, err := fixtures.Read[fixtures.WeekRow](strings.NewReader(
		"DATE;RETURN_TYPE;WEEKNUM\n2024-12-31;1;53\n2024-12-31;21;1\n2024-12-31;3;1\n"))
	if err != nil {
		t.Fatal(err)
	}
	err = fixtures.VerifyWeeks(weeks)
	if !errors.Is(err, xldt.ErrInvalidReturnType) {
		t.Errorf("unexpected or missing error: %v", err)
	}
	if err := fixtures.VerifyWeeks(weeks[:2]); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	isoweeks, err := fixtures.Read[fixtures.ISOWeekRow](strings.NewReader(
		"DATE;ISOWEEKNUM\n2021-01-01;53\n-0001-01-01;52\n"))
	if err != nil {
		t.Fatal(err)
	}
	if err := fixtures.VerifyISOWeeks(isoweeks[:1]); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	deltas, err := fixtures.Read[fixtures.DeltaRow](strings.NewReader(
		"START_DATE;END_DATE;YEARS;MONTHS;DAYS\n2021-01-31;2021-02-28;0;1;28\n2021-02-28;2021-01-31;0;-1;-28\n"))
	if err != nil {
		t.Fatal(err)
	}
	if err := fixtures.VerifyDeltas(deltas); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	deltas[0].Days = 27
	if err := fixtures.VerifyDeltas(deltas); err == nil || !strings.Contains(err.Error(), "days: got 28, want 27") {
		t.Errorf("unexpected or missing error: %v", err)
	}
}

func TestParseDate(t *testing.T) {
	for _, tc := range []struct {
		val  string
		want xldt.Serial
	}{
		{"1900-01-01", 1},
		{"1900-02-29", 60},
		{"2024-01-01", 45292},
		{"0001-01-01", -693594},
		{"-9999-01-01", xldt.MinSerial},
	} {
		s, err := fixtures.ParseDate(tc.val)
		if err != nil {
			t.Errorf("%v: %v", tc.val, err)
			continue
		}
		if got, want := s, tc.want; got != want {
			t.Errorf("%v: got %v, want %v", tc.val, got, want)
		}
	}
	for _, val := range []string{"", "2024-01", "2024/01/01", "2024-xx-01", "-10000-01-01"} {
		if _, err := fixtures.ParseDate(val); err == nil {
			t.Errorf("%q: expected an error", val)
		}
	}
}

func TestVerifyFile(t *testing.T) {
	for _, tc := range []struct {
		name string
		kind fixtures.Kind
	}{
		{"date.csv", fixtures.Dates},
		{"testdata/week.csv", fixtures.Weeks},
		{"isoweek-2024.csv", fixtures.ISOWeeks},
		{"delta", fixtures.Deltas},
		{"weeks.csv", fixtures.Unknown},
	} {
		if got, want := fixtures.KindForFile(tc.name), tc.kind; got != want {
			t.Errorf("%v: got %v, want %v", tc.name, got, want)
		}
	}

	tmpDir := t.TempDir()
	good := filepath.Join(tmpDir, "date-good.csv")
	if err := os.WriteFile(good, []byte(dateTable), 0600); err != nil {
		t.Fatal(err)
	}
	n, err := fixtures.VerifyFile(good)
	if err == nil || !strings.Contains(err.Error(), good) {
		t.Errorf("unexpected or missing error: %v", err)
	}
	if got, want := n, 4; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if _, err := fixtures.VerifyFile(filepath.Join(tmpDir, "other.csv")); err == nil {
		t.Errorf("expected an error")
	}
	if _, err := fixtures.VerifyFile(filepath.Join(tmpDir, "date.csv")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("unexpected or missing error: %v", err)
	}
}
