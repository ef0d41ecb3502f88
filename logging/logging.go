// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package logging builds the framework's structured loggers.
//
// Subsystems take a child of one root logger (logging.New followed by
// Named) so output shares one configuration: info-level JSON in
// production, debug-level console encoding in debug mode, with optional
// size-capped file rotation teed alongside stdout.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Option configures New.
type Option func(*config)

type config struct {
	debug        bool
	rotationFile string
	maxSizeMB    int
	maxBackups   int
	maxAgeDays   int
}

// WithDebug lowers the level to debug and switches to a development-style
// console encoding.
func WithDebug(debug bool) Option {
	return func(c *config) { c.debug = debug }
}

// WithRotation tees output into a size-rotated log file at path, next to
// stdout. Rotation caps: 100 MB per file, 3 backups, 28 days.
func WithRotation(path string) Option {
	return func(c *config) { c.rotationFile = path }
}

// New constructs the root logger. It never fails: a bad option simply
// yields a stdout-only logger.
func New(opts ...Option) *zap.Logger {
	cfg := &config{maxSizeMB: 100, maxBackups: 3, maxAgeDays: 28}
	for _, opt := range opts {
		opt(cfg)
	}

	level := zapcore.InfoLevel
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	var encoder zapcore.Encoder
	if cfg.debug {
		level = zapcore.DebugLevel
		devConfig := zap.NewDevelopmentEncoderConfig()
		devConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(devConfig)
	} else {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), level)
	if cfg.rotationFile != "" {
		fileCore := zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderConfig),
			zapcore.AddSync(&lumberjack.Logger{
				Filename:   cfg.rotationFile,
				MaxSize:    cfg.maxSizeMB,
				MaxBackups: cfg.maxBackups,
				MaxAge:     cfg.maxAgeDays,
				Compress:   true,
			}),
			level,
		)
		core = zapcore.NewTee(core, fileCore)
	}

	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
}

// ForSubsystem returns a named child of logger for one framework subsystem,
// e.g. "routing" or "app".
func ForSubsystem(logger *zap.Logger, subsystem string) *zap.Logger {
	return logger.Named("botroute." + subsystem)
}
