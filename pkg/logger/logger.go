/*
 * Copyright 2025 Akina Networks.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package logger provides JSON structured logging using zerolog.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Config controls log output for a process.
type Config struct {
	Level      string `json:"level" yaml:"level"`
	Debug      bool   `json:"debug" yaml:"debug"`
	Output     string `json:"output" yaml:"output"`
	TimeFormat string `json:"time_format" yaml:"time_format"`
}

type zerologAdapter struct {
	logger zerolog.Logger
}

// NewLogger builds a Logger from config. A nil config yields an
// info-level logger on stdout.
func NewLogger(config *Config) (Logger, error) {
	if config == nil {
		config = &Config{}
	}

	var output io.Writer = os.Stdout

	if config.Output == "stderr" {
		output = os.Stderr
	}

	level := zerolog.InfoLevel

	if config.Debug {
		level = zerolog.DebugLevel
	} else if config.Level != "" {
		var err error

		level, err = zerolog.ParseLevel(config.Level)
		if err != nil {
			return nil, err
		}
	}

	if config.TimeFormat != "" {
		zerolog.TimeFieldFormat = config.TimeFormat
	} else {
		zerolog.TimeFieldFormat = time.RFC3339
	}

	zlog := zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Logger()

	return &zerologAdapter{logger: zlog}, nil
}

// FromZerolog wraps an existing zerolog.Logger, preserving whatever
// context fields it already carries. Used to hand a scoped logger
// (e.g. one tagged with a run ID) to components that take a Logger.
func FromZerolog(zlog zerolog.Logger) Logger {
	return &zerologAdapter{logger: zlog}
}

// NewTestLogger returns a debug-level logger writing to stderr, for tests.
func NewTestLogger() Logger {
	zlog := zerolog.New(os.Stderr).
		Level(zerolog.DebugLevel).
		With().
		Timestamp().
		Logger()

	return &zerologAdapter{logger: zlog}
}

func (z *zerologAdapter) Trace() *zerolog.Event {
	return z.logger.Trace()
}

func (z *zerologAdapter) Debug() *zerolog.Event {
	return z.logger.Debug()
}

func (z *zerologAdapter) Info() *zerolog.Event {
	return z.logger.Info()
}

func (z *zerologAdapter) Warn() *zerolog.Event {
	return z.logger.Warn()
}

func (z *zerologAdapter) Error() *zerolog.Event {
	return z.logger.Error()
}

func (z *zerologAdapter) Fatal() *zerolog.Event {
	return z.logger.Fatal()
}

func (z *zerologAdapter) Panic() *zerolog.Event {
	return z.logger.Panic()
}

func (z *zerologAdapter) With() zerolog.Context {
	return z.logger.With()
}

func (z *zerologAdapter) WithComponent(component string) zerolog.Logger {
	return z.logger.With().Str("component", component).Logger()
}

func (z *zerologAdapter) SetLevel(level zerolog.Level) {
	z.logger = z.logger.Level(level)
}

func (z *zerologAdapter) SetDebug(debug bool) {
	if debug {
		z.SetLevel(zerolog.DebugLevel)
	} else {
		z.SetLevel(zerolog.InfoLevel)
	}
}
