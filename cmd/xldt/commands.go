// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"net"
	"strconv"
	"time"

	"cloudeng.io/cmdutil/signals"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/xldt"
	"cloudeng.io/xldt/fixtures"
	"cloudeng.io/xldt/xlhttp"
)

type returnTypeFlags struct {
	CommonFlags
	ReturnType int `subcmd:"type,0,'return type, 0 to use the configured value'"`
}

type weekendFlags struct {
	CommonFlags
	Weekend string `subcmd:"weekend,,'weekend code or seven character mask, eg. 0000011 for Saturday and Sunday'"`
}

type serveFlags struct {
	CommonFlags
	Address string `subcmd:"address,,'address to listen on, overrides the configured value'"`
}

// commands implements the runners for all of the xldt commands.
type commands struct {
	out io.Writer
	now func() time.Time
}

func parseInts(names []string, args []string) ([]int, error) {
	vals := make([]int, len(args))
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("%v: %q is not an integer", names[i], a)
		}
		vals[i] = v
	}
	return vals, nil
}

func parseValue(arg string) (float64, error) {
	v, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", arg)
	}
	return v, nil
}

func parseSerial(arg string) (xldt.Serial, error) {
	v, err := parseValue(arg)
	if err != nil {
		return 0, err
	}
	return xldt.SerialOf(v)
}

func (c *commands) date(ctx context.Context, values interface{}, args []string) error {
	_, _, logger, err := setup(ctx, values.(*CommonFlags))
	if err != nil {
		return err
	}
	defer logger.Close()
	ymd, err := parseInts([]string{"year", "month", "day"}, args)
	if err != nil {
		return err
	}
	s, err := xldt.Date(ymd[0], ymd[1], ymd[2])
	if err != nil {
		return err
	}
	cd, err := xldt.CivilDate(s)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "%v\t%v\n", s, cd)
	return nil
}

func (c *commands) parts(ctx context.Context, values interface{}, args []string) error {
	_, _, logger, err := setup(ctx, values.(*CommonFlags))
	if err != nil {
		return err
	}
	defer logger.Close()
	v, err := parseValue(args[0])
	if err != nil {
		return err
	}
	s, frac, err := xldt.Split(v)
	if err != nil {
		return err
	}
	cd, err := xldt.CivilDate(s)
	if err != nil {
		return err
	}
	tod, err := xldt.TimeOfDayFromFraction(frac)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "%v %v %v\n", cd, tod, xldt.DayOfWeek(s))
	return nil
}

func (c *commands) timeFraction(ctx context.Context, values interface{}, args []string) error {
	_, _, logger, err := setup(ctx, values.(*CommonFlags))
	if err != nil {
		return err
	}
	defer logger.Close()
	hms, err := parseInts([]string{"hour", "minute", "second"}, args)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "%v\n", strconv.FormatFloat(xldt.Time(hms[0], hms[1], hms[2]), 'g', -1, 64))
	return nil
}

func (c *commands) clock(ctx context.Context, values interface{}, args []string) error {
	_, _, logger, err := setup(ctx, values.(*CommonFlags))
	if err != nil {
		return err
	}
	defer logger.Close()
	v, err := parseValue(args[0])
	if err != nil {
		return err
	}
	tod, err := xldt.TimeOfDayFromFraction(v)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "%v\n", tod)
	return nil
}

func (c *commands) weekday(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*returnTypeFlags)
	_, cfg, logger, err := setup(ctx, &fv.CommonFlags)
	if err != nil {
		return err
	}
	defer logger.Close()
	s, err := parseSerial(args[0])
	if err != nil {
		return err
	}
	wd, err := xldt.Weekday(s, cfg.weekdayType(fv.ReturnType))
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "%v\t%v\n", wd, xldt.DayOfWeek(s))
	return nil
}

func (c *commands) week(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*returnTypeFlags)
	_, cfg, logger, err := setup(ctx, &fv.CommonFlags)
	if err != nil {
		return err
	}
	defer logger.Close()
	s, err := parseSerial(args[0])
	if err != nil {
		return err
	}
	wk, err := xldt.Week(s, cfg.weekType(fv.ReturnType))
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "%v\n", wk)
	return nil
}

func (c *commands) isoweek(ctx context.Context, values interface{}, args []string) error {
	_, _, logger, err := setup(ctx, values.(*CommonFlags))
	if err != nil {
		return err
	}
	defer logger.Close()
	s, err := parseSerial(args[0])
	if err != nil {
		return err
	}
	wk, err := xldt.ISOWeek(s)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "%v\n", wk)
	return nil
}

func (c *commands) diff(ctx context.Context, values interface{}, args []string) error {
	_, _, logger, err := setup(ctx, values.(*CommonFlags))
	if err != nil {
		return err
	}
	defer logger.Close()
	start, err := parseSerial(args[0])
	if err != nil {
		return err
	}
	end, err := parseSerial(args[1])
	if err != nil {
		return err
	}
	years, err := xldt.Years(start, end)
	if err != nil {
		return err
	}
	months, err := xldt.Months(start, end)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "years: %v, months: %v, days: %v\n", years, months, xldt.Days(start, end))
	return nil
}

func (c *commands) weekend(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*weekendFlags)
	_, cfg, logger, err := setup(ctx, &fv.CommonFlags)
	if err != nil {
		return err
	}
	defer logger.Close()
	mask, err := cfg.weekend(fv.Weekend)
	if err != nil {
		return err
	}
	s, err := parseSerial(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "%v\t%v\t%v\n", xldt.IsWeekend(s, mask), xldt.DayOfWeek(s), mask)
	return nil
}

func (c *commands) nowCmd(ctx context.Context, values interface{}, _ []string) error {
	_, _, logger, err := setup(ctx, values.(*CommonFlags))
	if err != nil {
		return err
	}
	defer logger.Close()
	v, err := xldt.FromTime(c.now())
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "%v\n", strconv.FormatFloat(v, 'f', -1, 64))
	return nil
}

func (c *commands) today(ctx context.Context, values interface{}, _ []string) error {
	_, _, logger, err := setup(ctx, values.(*CommonFlags))
	if err != nil {
		return err
	}
	defer logger.Close()
	s, err := xldt.DateOf(c.now())
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "%v\n", s)
	return nil
}

func (c *commands) verify(ctx context.Context, values interface{}, args []string) error {
	ctx, _, logger, err := setup(ctx, values.(*CommonFlags))
	if err != nil {
		return err
	}
	defer logger.Close()
	errs := &errors.M{}
	total := 0
	for _, file := range args {
		n, err := fixtures.VerifyFile(file)
		ctxlog.Logger(ctx).Info("verified", "file", file, "rows", n, "ok", err == nil)
		total += n
		errs.Append(err)
	}
	if err := errs.Err(); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "verified %v rows in %v files\n", total, len(args))
	return nil
}

func (c *commands) serve(ctx context.Context, values interface{}, _ []string) error {
	fv := values.(*serveFlags)
	ctx, cfg, logger, err := setup(ctx, &fv.CommonFlags)
	if err != nil {
		return err
	}
	defer logger.Close()
	opts, err := cfg.routerOptions()
	if err != nil {
		return err
	}
	addr := cfg.Server.Address
	if len(fv.Address) > 0 {
		addr = fv.Address
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "listening on %v\n", ln.Addr())
	ctx, wait := signals.NotifyWithCancel(ctx, signals.Defaults()...)
	if err := xlhttp.Serve(ctx, ctxlog.Logger(ctx), ln, xlhttp.NewRouter(ctxlog.Logger(ctx), opts), cfg.Server.ShutdownGrace); err != nil {
		return err
	}
	ctxlog.Logger(ctx).Info("stopped", "signal", wait())
	return nil
}
