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

package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/term"
)

// HandlerType represents the type of logging handler.
type HandlerType string

const (
	// AutoHandler selects ConsoleHandler for terminals and JSONHandler otherwise.
	AutoHandler HandlerType = ""
	// JSONHandler outputs structured JSON logs.
	JSONHandler HandlerType = "json"
	// TextHandler outputs key=value text logs.
	TextHandler HandlerType = "text"
	// ConsoleHandler outputs human-readable colored logs.
	ConsoleHandler HandlerType = "console"
)

// Level represents log level.
type Level = slog.Level

const (
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

const redacted = "***REDACTED***"

// Logger is the application logger.
// All methods are safe for concurrent use.
type Logger struct {
	handlerType HandlerType
	output      io.Writer
	level       slog.LevelVar

	serviceName    string
	serviceVersion string
	environment    string

	addSource   bool
	replaceAttr func(groups []string, a slog.Attr) slog.Attr

	slogger *slog.Logger
}

// Option is a functional option for configuring the logger.
type Option func(*Logger)

// New creates a new Logger with the given options.
// The global slog default is left untouched; see [Logger.SetDefault].
func New(opts ...Option) (*Logger, error) {
	l := &Logger{
		handlerType: AutoHandler,
		output:      os.Stdout,
	}
	l.level.Set(LevelInfo)

	for _, opt := range opts {
		opt(l)
	}

	if err := l.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	handler, err := l.newHandler()
	if err != nil {
		return nil, err
	}

	var attrs []any
	if l.serviceName != "" {
		attrs = append(attrs, "service", l.serviceName)
	}
	if l.serviceVersion != "" {
		attrs = append(attrs, "version", l.serviceVersion)
	}
	if l.environment != "" {
		attrs = append(attrs, "env", l.environment)
	}
	l.slogger = slog.New(handler).With(attrs...)

	return l, nil
}

// MustNew creates a new Logger or panics on error.
func MustNew(opts ...Option) *Logger {
	l, err := New(opts...)
	if err != nil {
		panic("logging initialization failed: " + err.Error())
	}

	return l
}

// Validate checks if the configuration is valid.
func (l *Logger) Validate() error {
	if l.output == nil {
		return ErrNilOutput
	}
	switch l.handlerType {
	case AutoHandler, JSONHandler, TextHandler, ConsoleHandler:
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrInvalidHandler, l.handlerType)
	}
}

func (l *Logger) newHandler() (slog.Handler, error) {
	opts := &slog.HandlerOptions{
		Level:       &l.level,
		AddSource:   l.addSource,
		ReplaceAttr: l.buildReplaceAttr(),
	}

	switch l.resolveHandlerType() {
	case JSONHandler:
		return slog.NewJSONHandler(l.output, opts), nil
	case TextHandler:
		return slog.NewTextHandler(l.output, opts), nil
	case ConsoleHandler:
		return newConsoleHandler(l.output, opts), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidHandler, l.handlerType)
	}
}

// resolveHandlerType turns AutoHandler into a concrete handler type.
func (l *Logger) resolveHandlerType() HandlerType {
	if l.handlerType != AutoHandler {
		return l.handlerType
	}
	if f, ok := l.output.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return ConsoleHandler
	}

	return JSONHandler
}

func (l *Logger) buildReplaceAttr() func(groups []string, a slog.Attr) slog.Attr {
	return func(groups []string, a slog.Attr) slog.Attr {
		switch strings.ToLower(a.Key) {
		case "password", "token", "secret", "api_key", "authorization":
			a = slog.String(a.Key, redacted)
		}
		if l.replaceAttr != nil {
			return l.replaceAttr(groups, a)
		}

		return a
	}
}

// Logger returns the underlying [slog.Logger].
func (l *Logger) Logger() *slog.Logger {
	return l.slogger
}

// With returns a [slog.Logger] with the given attributes.
func (l *Logger) With(args ...any) *slog.Logger {
	return l.slogger.With(args...)
}

// SetLevel changes the minimum level at runtime.
func (l *Logger) SetLevel(level Level) {
	l.level.Set(level)
}

// Level returns the current minimum level.
func (l *Logger) Level() Level {
	return l.level.Level()
}

// SetDefault registers the logger as the process-wide slog default.
func (l *Logger) SetDefault() {
	slog.SetDefault(l.slogger)
}

// Debug logs at debug level.
func (l *Logger) Debug(msg string, args ...any) {
	l.slogger.Debug(msg, args...)
}

// Info logs at info level.
func (l *Logger) Info(msg string, args ...any) {
	l.slogger.Info(msg, args...)
}

// Warn logs at warn level.
func (l *Logger) Warn(msg string, args ...any) {
	l.slogger.Warn(msg, args...)
}

// Error logs at error level.
func (l *Logger) Error(msg string, args ...any) {
	l.slogger.Error(msg, args...)
}

// ParseLevel converts a level name (debug, info, warn, warning, error) to a [Level].
// Names are case-insensitive.
func ParseLevel(name string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("%w: %q", ErrInvalidLevel, name)
	}
}
