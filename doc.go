// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package xldt provides spreadsheet compatible date and time serial numbers.
//
// A date is represented by a Serial, a count of days such that serial 1 is
// 1900-01-01, serial 0 is 1899-12-31 and serial 60 is the non-existent
// 1900-02-29 that spreadsheets inherited from Lotus 1-2-3. Serials from 61
// (1900-03-01) onwards are identical to those used by spreadsheets in the
// 1900 date system. A time of day is represented as a fraction of a 24 hour
// day in [0, 1), and a date-time value is the sum of the two.
//
// Dates use the proleptic Gregorian calendar with astronomical year
// numbering and are supported from MinYear-01-01 (MinSerial) to
// MaxYear-12-31 (MaxSerial).
//
// Weekday and week number queries accept the return type codes used by the
// WEEKDAY, WEEKNUM and ISOWEEKNUM spreadsheet functions, and the date
// difference queries follow DATEDIF, see Years, Months and Days.
//
// All functions are pure and safe for concurrent use.
package xldt
