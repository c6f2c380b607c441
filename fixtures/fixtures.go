// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package fixtures provides support for reading tables of expected
// results, in ';' separated form with a header row, and for verifying
// the xldt package against them.
package fixtures

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"cloudeng.io/errors"
	"cloudeng.io/xldt"
	"github.com/gocarina/gocsv"
)

// DateRow is a row of a date table, the serial and weekday of a date.
type DateRow struct {
	Date       string `csv:"DATE"`
	Value      int    `csv:"VALUE"`
	ReturnType int    `csv:"RETURN_TYPE"`
	Weekday    int    `csv:"WEEKDAY"`
}

// WeekRow is a row of a week table.
type WeekRow struct {
	Date       string `csv:"DATE"`
	ReturnType int    `csv:"RETURN_TYPE"`
	Week       int    `csv:"WEEKNUM"`
}

// ISOWeekRow is a row of an ISO week table.
type ISOWeekRow struct {
	Date string `csv:"DATE"`
	Week int    `csv:"ISOWEEKNUM"`
}

// DeltaRow is a row of a date difference table.
type DeltaRow struct {
	Start  string `csv:"START_DATE"`
	End    string `csv:"END_DATE"`
	Years  int    `csv:"YEARS"`
	Months int    `csv:"MONTHS"`
	Days   int    `csv:"DAYS"`
}

// NewReader returns a csv.Reader configured for fixture tables.
func NewReader(rd io.Reader) *csv.Reader {
	r := csv.NewReader(rd)
	r.Comma = ';'
	r.Comment = '#'
	r.TrimLeadingSpace = true
	return r
}

// Read reads all of the rows of a fixture table.
func Read[T any](rd io.Reader) ([]T, error) {
	var rows []T
	if err := gocsv.UnmarshalCSV(NewReader(rd), &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// ReadFile reads all of the rows of the named fixture file.
func ReadFile[T any](filename string) ([]T, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	rows, err := Read[T](f)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", filename, err)
	}
	return rows, nil
}

// ParseDate parses a YYYY-MM-DD date, the year may be negative, and
// returns its serial as per xldt.Date.
func ParseDate(val string) (xldt.Serial, error) {
	neg := strings.HasPrefix(val, "-")
	parts := strings.Split(strings.TrimPrefix(val, "-"), "-")
	if len(parts) != 3 {
		return 0, fmt.Errorf("invalid date: %q", val)
	}
	var ymd [3]int
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return 0, fmt.Errorf("invalid date: %q: %w", val, err)
		}
		ymd[i] = v
	}
	if neg {
		ymd[0] = -ymd[0]
	}
	return xldt.Date(ymd[0], ymd[1], ymd[2])
}

// rows are numbered from 1, excluding the header.
func mismatch(row int, date, what string, got, want any) error {
	return fmt.Errorf("row %d: %v: %v: got %v, want %v", row+1, date, what, got, want)
}

// VerifyDates verifies the serial and weekday of every row.
func VerifyDates(rows []DateRow) error {
	errs := &errors.M{}
	for i, r := range rows {
		s, err := ParseDate(r.Date)
		if err != nil {
			errs.Append(fmt.Errorf("row %d: %w", i+1, err))
			continue
		}
		if s != xldt.Serial(r.Value) {
			errs.Append(mismatch(i, r.Date, "serial", s, r.Value))
		}
		wd, err := xldt.Weekday(s, xldt.ReturnType(r.ReturnType))
		if err != nil {
			errs.Append(fmt.Errorf("row %d: %w", i+1, err))
			continue
		}
		if wd != r.Weekday {
			errs.Append(mismatch(i, r.Date, "weekday", wd, r.Weekday))
		}
	}
	return errs.Err()
}

// VerifyWeeks verifies the week number of every row.
func VerifyWeeks(rows []WeekRow) error {
	errs := &errors.M{}
	for i, r := range rows {
		s, err := ParseDate(r.Date)
		if err != nil {
			errs.Append(fmt.Errorf("row %d: %w", i+1, err))
			continue
		}
		w, err := xldt.Week(s, xldt.ReturnType(r.ReturnType))
		if err != nil {
			errs.Append(fmt.Errorf("row %d: %w", i+1, err))
			continue
		}
		if w != r.Week {
			errs.Append(mismatch(i, r.Date, "week "+xldt.ReturnType(r.ReturnType).String(), w, r.Week))
		}
	}
	return errs.Err()
}

// VerifyISOWeeks verifies the ISO week number of every row.
func VerifyISOWeeks(rows []ISOWeekRow) error {
	errs := &errors.M{}
	for i, r := range rows {
		s, err := ParseDate(r.Date)
		if err != nil {
			errs.Append(fmt.Errorf("row %d: %w", i+1, err))
			continue
		}
		w, err := xldt.ISOWeek(s)
		if err != nil {
			errs.Append(fmt.Errorf("row %d: %w", i+1, err))
			continue
		}
		if w != r.Week {
			errs.Append(mismatch(i, r.Date, "iso week", w, r.Week))
		}
	}
	return errs.Err()
}

// VerifyDeltas verifies the years, months and days between the start
// and end dates of every row.
func VerifyDeltas(rows []DeltaRow) error {
	errs := &errors.M{}
	for i, r := range rows {
		start, err := ParseDate(r.Start)
		if err != nil {
			errs.Append(fmt.Errorf("row %d: %w", i+1, err))
			continue
		}
		end, err := ParseDate(r.End)
		if err != nil {
			errs.Append(fmt.Errorf("row %d: %w", i+1, err))
			continue
		}
		interval := r.Start + ".." + r.End
		years, err := xldt.Years(start, end)
		if err != nil {
			errs.Append(fmt.Errorf("row %d: %w", i+1, err))
			continue
		}
		months, err := xldt.Months(start, end)
		if err != nil {
			errs.Append(fmt.Errorf("row %d: %w", i+1, err))
			continue
		}
		if years != r.Years {
			errs.Append(mismatch(i, interval, "years", years, r.Years))
		}
		if months != r.Months {
			errs.Append(mismatch(i, interval, "months", months, r.Months))
		}
		if days := xldt.Days(start, end); days != r.Days {
			errs.Append(mismatch(i, interval, "days", days, r.Days))
		}
	}
	return errs.Err()
}

// Kind identifies the type of a fixture table.
type Kind int

const (
	Unknown Kind = iota
	Dates
	Weeks
	ISOWeeks
	Deltas
)

func (k Kind) String() string {
	switch k {
	case Dates:
		return "date"
	case Weeks:
		return "week"
	case ISOWeeks:
		return "isoweek"
	case Deltas:
		return "delta"
	}
	return "unknown"
}

// KindForFile returns the Kind of a fixture file based on its name, eg.
// date.csv or isoweek-2024.csv.
func KindForFile(filename string) Kind {
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	base, _, _ = strings.Cut(base, "-")
	for _, k := range []Kind{Dates, Weeks, ISOWeeks, Deltas} {
		if base == k.String() {
			return k
		}
	}
	return Unknown
}

// VerifyFile reads the named fixture file and verifies it according to
// its Kind. It returns the number of rows verified.
func VerifyFile(filename string) (int, error) {
	switch KindForFile(filename) {
	case Dates:
		return verifyFile(filename, VerifyDates)
	case Weeks:
		return verifyFile(filename, VerifyWeeks)
	case ISOWeeks:
		return verifyFile(filename, VerifyISOWeeks)
	case Deltas:
		return verifyFile(filename, VerifyDeltas)
	}
	return 0, fmt.Errorf("%v: unrecognised fixture file name", filename)
}

func verifyFile[T any](filename string, verify func([]T) error) (int, error) {
	rows, err := ReadFile[T](filename)
	if err != nil {
		return 0, err
	}
	if err := verify(rows); err != nil {
		return len(rows), fmt.Errorf("%v: %w", filename, err)
	}
	return len(rows), nil
}
