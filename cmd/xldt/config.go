// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"time"

	"cloudeng.io/cmdutil"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/xldt"
	"cloudeng.io/xldt/xlhttp"
)

// Config represents the optional yaml configuration file, for example:
//
//	weekday_type: 2
//	week_type: 21
//	weekend: "0000011"
//	server:
//	  address: localhost:8080
//	  allowed_origins: [https://example.com]
//	  requests_per_second: 100
//	  shutdown_grace: 5s
//	logging:
//	  level: 2
//	  format: json
type Config struct {
	WeekdayType int                    `yaml:"weekday_type"`
	WeekType    int                    `yaml:"week_type"`
	Weekend     string                 `yaml:"weekend"`
	Server      ServerConfig           `yaml:"server"`
	Logging     *cmdutil.LoggingConfig `yaml:"logging"`
}

// ServerConfig configures the serve command.
type ServerConfig struct {
	Address           string        `yaml:"address"`
	AllowedOrigins    []string      `yaml:"allowed_origins"`
	RequestsPerSecond int           `yaml:"requests_per_second"`
	ShutdownGrace     time.Duration `yaml:"shutdown_grace"`
}

func defaultConfig() Config {
	return Config{
		WeekdayType: int(xldt.SundayOne),
		WeekType:    int(xldt.SundayOne),
		Server: ServerConfig{
			Address:       "localhost:8080",
			ShutdownGrace: 5 * time.Second,
		},
	}
}

// LoadConfig returns the default configuration overridden by the contents
// of the named file, if any.
func LoadConfig(file string) (Config, error) {
	cfg := defaultConfig()
	if len(file) == 0 {
		return cfg, nil
	}
	if err := cmdutil.ParseYAMLConfigFile(file, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) weekdayType(flag int) xldt.ReturnType {
	if flag != 0 {
		return xldt.ReturnType(flag)
	}
	return xldt.ReturnType(c.WeekdayType)
}

func (c Config) weekType(flag int) xldt.ReturnType {
	if flag != 0 {
		return xldt.ReturnType(flag)
	}
	return xldt.ReturnType(c.WeekType)
}

func (c Config) weekend(flag string) (xldt.WeekendMask, error) {
	if len(flag) != 0 {
		return xldt.ParseWeekend(flag)
	}
	return xldt.ParseWeekend(c.Weekend)
}

func (c Config) routerOptions() (xlhttp.Options, error) {
	weekend, err := c.weekend("")
	if err != nil {
		return xlhttp.Options{}, err
	}
	return xlhttp.Options{
		WeekdayType:       c.weekdayType(0),
		WeekType:          c.weekType(0),
		Weekend:           weekend,
		AllowedOrigins:    c.Server.AllowedOrigins,
		RequestsPerSecond: c.Server.RequestsPerSecond,
	}, nil
}

// CommonFlags are accepted by all commands.
type CommonFlags struct {
	Config string `subcmd:"config,,'yaml configuration file'"`
	cmdutil.LoggingFlags
}

// setup loads the configuration and creates the logger, the logging
// section of the configuration file, if present, takes precedence over
// the logging flags. The returned context carries the logger.
func setup(ctx context.Context, fv *CommonFlags) (context.Context, Config, *cmdutil.Logger, error) {
	cfg, err := LoadConfig(fv.Config)
	if err != nil {
		return ctx, Config{}, nil, err
	}
	lc := fv.LoggingConfig()
	if cfg.Logging != nil {
		lc = *cfg.Logging
	}
	logger, err := lc.NewLogger()
	if err != nil {
		return ctx, Config{}, nil, fmt.Errorf("logging: %w", err)
	}
	logger.Debug("configuration", "file", fv.Config, "weekday_type", cfg.WeekdayType, "week_type", cfg.WeekType, "weekend", cfg.Weekend)
	return ctxlog.Context(ctx, logger.Logger), cfg, logger, nil
}
