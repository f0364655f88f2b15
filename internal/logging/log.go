// Copyright (C) 2023 Gobalsky Labs Limited
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package logging

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var ErrUnsupportedLevel = errors.New("unsupported log level")

// Level mirrors the zap levels the bot exposes.
type Level int8

const (
	DebugLevel Level = Level(zapcore.DebugLevel)
	InfoLevel  Level = Level(zapcore.InfoLevel)
	WarnLevel  Level = Level(zapcore.WarnLevel)
	ErrorLevel Level = Level(zapcore.ErrorLevel)
)

// SupportedLevels lists the levels accepted by ParseLevel.
var SupportedLevels = []string{
	DebugLevel.String(),
	InfoLevel.String(),
	WarnLevel.String(),
	ErrorLevel.String(),
}

func (l Level) String() string {
	return zapcore.Level(l).String()
}

// ParseLevel parses the lower-case name of a level. An empty name is the
// info level.
func ParseLevel(l string) (Level, error) {
	switch strings.ToLower(l) {
	case "debug":
		return DebugLevel, nil
	case "info", "":
		return InfoLevel, nil
	case "warn", "warning":
		return WarnLevel, nil
	case "error":
		return ErrorLevel, nil
	default:
		return InfoLevel, fmt.Errorf("%w: %q", ErrUnsupportedLevel, l)
	}
}

// Logger is a zap logger whose level can be changed after it is built. The
// named and contextual loggers derived from it share that level.
type Logger struct {
	*zap.Logger
	level zap.AtomicLevel
	name  string
}

func newLogger(encoder zapcore.Encoder, level zap.AtomicLevel, opts ...zap.Option) *Logger {
	return &Logger{
		Logger: zap.New(zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), level), opts...),
		level:  level,
	}
}

func (log *Logger) GetLevel() Level {
	return Level(log.level.Level())
}

func (log *Logger) SetLevel(level Level) {
	log.level.SetLevel(zapcore.Level(level))
}

func (log *Logger) GetName() string {
	return log.name
}

func (log *Logger) Named(name string) *Logger {
	fullName := name
	if log.name != "" {
		fullName = log.name + "." + name
	}
	return &Logger{
		Logger: log.Logger.Named(name),
		level:  log.level,
		name:   fullName,
	}
}

func (log *Logger) With(fields ...zap.Field) *Logger {
	return &Logger{
		Logger: log.Logger.With(fields...),
		level:  log.level,
		name:   log.name,
	}
}

// AtExit flushes the buffered logs. It is meant to be deferred right after
// the logger is built.
func (log *Logger) AtExit() {
	if log.Logger != nil {
		_ = log.Logger.Sync()
	}
}

// NewLoggerFromEnv builds a console logger at debug level for the "dev"
// environment, and a JSON logger at info level for anything else. Both write
// on stderr, so they never mix with the results printed on stdout.
func NewLoggerFromEnv(env string) *Logger {
	if env == "dev" {
		return newLogger(zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
			TimeKey:        "T",
			LevelKey:       "L",
			NameKey:        "N",
			CallerKey:      "C",
			MessageKey:     "M",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.CapitalColorLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		}), zap.NewAtomicLevelAt(zapcore.DebugLevel), zap.AddCaller(), zap.Development())
	}

	return newLogger(zapcore.NewJSONEncoder(zapcore.EncoderConfig{
		TimeKey:        "@timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.MillisDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	}), zap.NewAtomicLevelAt(zapcore.InfoLevel), zap.AddCaller())
}

// NewTestLogger returns a logger that discards everything.
func NewTestLogger() *Logger {
	return &Logger{
		Logger: zap.NewNop(),
		level:  zap.NewAtomicLevelAt(zapcore.DebugLevel),
	}
}

func String(key, val string) zap.Field {
	return zap.String(key, val)
}

// Error stores err.Error() under the "error" key.
func Error(err error) zap.Field {
	return zap.Error(err)
}
