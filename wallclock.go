// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package xldt

import "time"

// DateOf returns the serial for the date of t. The date is taken from
// t's own location, no time zone conversion is performed.
func DateOf(t time.Time) (Serial, error) {
	y, m, d := t.Date()
	return Date(y, int(m), d)
}

// FromTime returns the date-time value for t, the sum of DateOf(t) and
// the time of day of t truncated to the second. Callers wanting the
// current local time can pass time.Now().
func FromTime(t time.Time) (float64, error) {
	s, err := DateOf(t)
	if err != nil {
		return 0, err
	}
	return float64(s) + Time(t.Hour(), t.Minute(), t.Second()), nil
}
