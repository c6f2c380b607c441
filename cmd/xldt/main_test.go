// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"cloudeng.io/xldt"
)

const testConfig = `weekday_type: 3
week_type: 21
weekend: "16"
server:
  address: localhost:0
  allowed_origins: [https://example.com]
  requests_per_second: 10
  shutdown_grace: 2s
logging:
  level: 1
  format: text
  file: %s
`

func writeConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "xldt.yaml")
	logFile := filepath.Join(dir, "xldt.log")
	contents := strings.Replace(testConfig, "%s", logFile, 1)
	if err := os.WriteFile(cfgFile, []byte(contents), 0600); err != nil {
		t.Fatal(err)
	}
	return cfgFile
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := cfg.weekdayType(0), xldt.SundayOne; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := cfg.Server.Address, "localhost:8080"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if cfg.Logging != nil {
		t.Errorf("unexpected logging config: %v", cfg.Logging)
	}
	weekend, err := cfg.weekend("")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := weekend, xldt.DefaultWeekend; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	cfg, err = LoadConfig(writeConfig(t))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := cfg.weekdayType(0), xldt.MondayZero; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := cfg.weekdayType(2), xldt.MondayOne; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := cfg.weekType(0), xldt.ISO; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := cfg.Server.ShutdownGrace, 2*time.Second; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if cfg.Logging == nil || cfg.Logging.Level != 1 || cfg.Logging.Format != "text" {
		t.Errorf("unexpected logging config: %v", cfg.Logging)
	}
	opts, err := cfg.routerOptions()
	if err != nil {
		t.Fatal(err)
	}
	if got, want := opts.Weekend.String(), "0000100"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := opts.RequestsPerSecond, 10; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("expected an error")
	}
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	now := func() time.Time {
		return time.Date(2024, 1, 1, 18, 0, 0, 0, time.Local)
	}
	cli := newCommandSet(&commands{out: out, now: now})
	err := cli.DispatchWithArgs(context.Background(), "xldt", args...)
	return out.String(), err
}

func TestCommands(t *testing.T) {
	cfgFile := writeConfig(t)
	for _, tc := range []struct {
		args []string
		want string
	}{
		{[]string{"date", "2024", "1", "1"}, "45292\t2024-01-01\n"},
		{[]string{"date", "1900", "2", "29"}, "60\t1900-02-29\n"},
		{[]string{"parts", "45292.75"}, "2024-01-01 18:00:00 Monday\n"},
		{[]string{"time", "12", "0", "0"}, "0.5\n"},
		{[]string{"clock", "0.75"}, "18:00:00\n"},
		{[]string{"weekday", "45292"}, "2\tMonday\n"},
		{[]string{"weekday", "--type=3", "45292"}, "0\tMonday\n"},
		{[]string{"weekday", "--config=" + cfgFile, "45292"}, "0\tMonday\n"},
		{[]string{"week", "45657"}, "53\n"},
		{[]string{"week", "--config=" + cfgFile, "45657"}, "1\n"},
		{[]string{"isoweek", "1"}, "52\n"},
		{[]string{"diff", "44227", "44255"}, "years: 0, months: 1, days: 28\n"},
		{[]string{"weekend", "45297"}, "true\tSaturday\t0000011\n"},
		{[]string{"weekend", "--weekend=0000100", "45297"}, "false\tSaturday\t0000100\n"},
		{[]string{"weekend", "--config=" + cfgFile, "45296"}, "true\tFriday\t0000100\n"},
		{[]string{"now"}, "45292.75\n"},
		{[]string{"today"}, "45292\n"},
	} {
		out, err := run(t, tc.args...)
		if err != nil {
			t.Errorf("%v: %v", tc.args, err)
			continue
		}
		if got, want := out, tc.want; got != want {
			t.Errorf("%v: got %q, want %q", tc.args, got, want)
		}
	}
}

func TestCommandErrors(t *testing.T) {
	for _, tc := range []struct {
		args []string
		msg  string
	}{
		{[]string{"date", "10000", "1", "1"}, xldt.ErrOutOfRange.Error()},
		{[]string{"date", "x", "1", "1"}, "year"},
		{[]string{"weekday", "--type=21", "1"}, xldt.ErrInvalidReturnType.Error()},
		{[]string{"week", "--type=3", "1"}, xldt.ErrInvalidReturnType.Error()},
		{[]string{"weekend", "--weekend=9", "1"}, xldt.ErrInvalidWeekend.Error()},
		{[]string{"parts", "x"}, "not a number"},
		{[]string{"verify", "unknown.csv"}, "unrecognised"},
	} {
		_, err := run(t, tc.args...)
		if err == nil || !strings.Contains(err.Error(), tc.msg) {
			t.Errorf("%v: unexpected or missing error: %v", tc.args, err)
		}
	}
}

func TestVerify(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("..", "..", "testdata", "*.csv"))
	if err != nil {
		t.Fatal(err)
	}
	if len(files) == 0 {
		t.Fatal("no fixture files found")
	}
	out, err := run(t, append([]string{"verify"}, files...)...)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "verified ") {
		t.Errorf("unexpected output: %v", out)
	}
}
