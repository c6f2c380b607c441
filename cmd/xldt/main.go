// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command xldt provides access to spreadsheet compatible date and time
// serials from the command line and over HTTP.
package main

import (
	"context"
	"os"
	"time"

	"cloudeng.io/cmdutil/subcmd"
)

const cmdSpec = `name: xldt
summary: spreadsheet compatible date and time serials
commands:
  - name: date
    summary: print the serial for a year, month and day
    arguments:
      - <year>
      - <month>
      - <day>
  - name: parts
    summary: print the date, time of day and day of the week for a date-time value
    arguments:
      - <value>
  - name: time
    summary: print the fraction of a day for an hour, minute and second
    arguments:
      - <hour>
      - <minute>
      - <second>
  - name: clock
    summary: print the time of day, as hh:mm:ss, of a date-time value
    arguments:
      - <value>
  - name: weekday
    summary: print the day of the week of a date-time value
    arguments:
      - <value>
  - name: week
    summary: print the week number of a date-time value
    arguments:
      - <value>
  - name: isoweek
    summary: print the ISO 8601 week number of a date-time value
    arguments:
      - <value>
  - name: diff
    summary: print the whole years, months and days between two date-time values
    arguments:
      - <start>
      - <end>
  - name: weekend
    summary: print whether a date-time value falls on a weekend
    arguments:
      - <value>
  - name: now
    summary: print the date-time value for the current local time
  - name: today
    summary: print the serial for the current local date
  - name: verify
    summary: verify the date tables in the named files, the table type is determined by the file name, eg. date.csv, week.csv, isoweek.csv or delta.csv
    arguments:
      - <file>
      - ...
  - name: serve
    summary: serve the HTTP API
`

func newCommandSet(c *commands) *subcmd.CommandSetYAML {
	cmdSet := subcmd.MustFromYAML(cmdSpec)
	common := func() *subcmd.FlagSet {
		return subcmd.MustRegisteredFlagSet(&CommonFlags{})
	}
	cmdSet.Set("date").MustRunnerAndFlags(c.date, common())
	cmdSet.Set("parts").MustRunnerAndFlags(c.parts, common())
	cmdSet.Set("time").MustRunnerAndFlags(c.timeFraction, common())
	cmdSet.Set("clock").MustRunnerAndFlags(c.clock, common())
	cmdSet.Set("weekday").MustRunnerAndFlags(c.weekday,
		subcmd.MustRegisteredFlagSet(&returnTypeFlags{}))
	cmdSet.Set("week").MustRunnerAndFlags(c.week,
		subcmd.MustRegisteredFlagSet(&returnTypeFlags{}))
	cmdSet.Set("isoweek").MustRunnerAndFlags(c.isoweek, common())
	cmdSet.Set("diff").MustRunnerAndFlags(c.diff, common())
	cmdSet.Set("weekend").MustRunnerAndFlags(c.weekend,
		subcmd.MustRegisteredFlagSet(&weekendFlags{}))
	cmdSet.Set("now").MustRunnerAndFlags(c.nowCmd, common())
	cmdSet.Set("today").MustRunnerAndFlags(c.today, common())
	cmdSet.Set("verify").MustRunnerAndFlags(c.verify, common())
	cmdSet.Set("serve").MustRunnerAndFlags(c.serve,
		subcmd.MustRegisteredFlagSet(&serveFlags{}))
	return cmdSet
}

func main() {
	cli := newCommandSet(&commands{out: os.Stdout, now: time.Now})
	subcmd.Dispatch(context.Background(), cli)
}
