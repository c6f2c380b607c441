// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package xldt

import "errors"

var (
	// ErrDomain is returned for date-time values that are not finite numbers.
	ErrDomain = errors.New("value is not a finite number")

	// ErrOutOfRange is returned when an input or a result falls outside
	// of MinSerial to MaxSerial.
	ErrOutOfRange = errors.New("outside of the supported date range")

	// ErrInvalidReturnType is returned for weekday and week number
	// return types that are not supported by the query.
	ErrInvalidReturnType = errors.New("invalid return type")

	// ErrInvalidWeekend is returned for unknown weekend codes and for
	// malformed weekend masks.
	ErrInvalidWeekend = errors.New("invalid weekend code or mask")
)
