// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package xldt

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// WeekendMask represents the days of the week that are considered to be
// the weekend. Bit 0 is Monday and bit 6 is Sunday, matching the order of
// the seven character weekend strings used by WORKDAY.INTL.
type WeekendMask uint8

func weekendBit(d time.Weekday) WeekendMask {
	return 1 << ((int(d) + 6) % 7)
}

var (
	monday    = weekendBit(time.Monday)
	tuesday   = weekendBit(time.Tuesday)
	wednesday = weekendBit(time.Wednesday)
	thursday  = weekendBit(time.Thursday)
	friday    = weekendBit(time.Friday)
	saturday  = weekendBit(time.Saturday)
	sunday    = weekendBit(time.Sunday)

	// weekend codes as used by WORKDAY.INTL and NETWORKDAYS.INTL.
	weekendCodes = map[int]WeekendMask{
		1:  saturday | sunday,
		2:  sunday | monday,
		3:  monday | tuesday,
		4:  tuesday | wednesday,
		5:  wednesday | thursday,
		6:  thursday | friday,
		7:  friday | saturday,
		11: sunday,
		12: monday,
		13: tuesday,
		14: wednesday,
		15: thursday,
		16: friday,
		17: saturday,
	}
)

// DefaultWeekend is Saturday and Sunday, weekend code 1.
const DefaultWeekend WeekendMask = 1<<5 | 1<<6

// WeekendCode returns the WeekendMask for one of the numeric weekend codes
// 1-7 (two day weekends starting with Saturday-Sunday) or 11-17 (single
// day weekends starting with Sunday).
func WeekendCode(code int) (WeekendMask, error) {
	m, ok := weekendCodes[code]
	if !ok {
		return 0, fmt.Errorf("weekend code %d: %w", code, ErrInvalidWeekend)
	}
	return m, nil
}

// ParseWeekendMask parses a seven character string of 0s and 1s, starting
// with Monday, where a 1 denotes a weekend day. For example, "0000011"
// is Saturday and Sunday.
func ParseWeekendMask(val string) (WeekendMask, error) {
	if len(val) != 7 {
		return 0, fmt.Errorf("weekend mask %q: must have 7 characters: %w", val, ErrInvalidWeekend)
	}
	var m WeekendMask
	for i := 0; i < len(val); i++ {
		switch val[i] {
		case '1':
			m |= 1 << i
		case '0':
		default:
			return 0, fmt.Errorf("weekend mask %q: %w", val, ErrInvalidWeekend)
		}
	}
	return m, nil
}

// ParseWeekend parses either a numeric weekend code, see WeekendCode, or
// a weekend mask, see ParseWeekendMask. An empty value is DefaultWeekend.
func ParseWeekend(val string) (WeekendMask, error) {
	val = strings.TrimSpace(val)
	if len(val) == 0 {
		return DefaultWeekend, nil
	}
	if len(val) != 7 {
		code, err := strconv.Atoi(val)
		if err != nil {
			return 0, fmt.Errorf("weekend %q: %w", val, ErrInvalidWeekend)
		}
		return WeekendCode(code)
	}
	return ParseWeekendMask(val)
}

// Contains returns true if the day of the week is part of the weekend.
func (m WeekendMask) Contains(d time.Weekday) bool {
	return m&weekendBit(d) != 0
}

func (m WeekendMask) String() string {
	var out strings.Builder
	for i := 0; i < 7; i++ {
		if m&(1<<i) != 0 {
			out.WriteByte('1')
		} else {
			out.WriteByte('0')
		}
	}
	return out.String()
}

// IsWeekend returns true if the date of the given serial falls on the
// weekend described by m. The day of the week is determined by DayOfWeek.
func IsWeekend(s Serial, m WeekendMask) bool {
	return m.Contains(DayOfWeek(s))
}
