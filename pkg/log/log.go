// Copyright 2025 walteh LLC
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

// Package log provides the console logger for user-facing output.
//
// The two success lines ("Copying ... to ..." and the byte count) are part of
// the tool's scripting contract and are written to stdout undecorated.
// Everything else (errors, diagnostics) goes to stderr; diagnostics flow
// through zerolog and only appear at debug level.
package log

import (
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

// 🎯 Logger handles user-facing console output plus zerolog diagnostics.
type Logger struct {
	zlog   zerolog.Logger
	stdout io.Writer
	stderr io.Writer
	mu     sync.Mutex
}

// 🏭 New creates a new logger. Contract lines go to stdout, errors and
// diagnostics to stderr.
func New(stdout, stderr io.Writer, level zerolog.Level) *Logger {
	zlog := zerolog.New(zerolog.ConsoleWriter{Out: stderr}).With().Timestamp().Logger().Level(level)
	return &Logger{
		zlog:   zlog,
		stdout: stdout,
		stderr: stderr,
	}
}

// 🎯 Zerolog returns the diagnostics logger, for attaching to a context.
func (l *Logger) Zerolog() *zerolog.Logger {
	return &l.zlog
}

// 📝 CopyStart announces the copy about to happen. Exact format is part of
// the CLI contract.
func (l *Logger) CopyStart(src, dst string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintf(l.stdout, "Copying %s to %s\n", src, dst)

	l.zlog.Debug().
		Str("source", src).
		Str("destination", dst).
		Msg("copy started")
}

// 📝 CopyDone reports the number of bytes copied. Exact format is part of
// the CLI contract.
func (l *Logger) CopyDone(bytes int64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintf(l.stdout, "Copied %d bytes\n", bytes)

	l.zlog.Debug().
		Int64("bytes", bytes).
		Msg("copy complete")
}

// 📝 Error writes an error message to the error stream.
func (l *Logger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintln(l.stderr, color.New(color.FgRed).Sprint(msg))
	l.zlog.Debug().Msg(msg)
}

// 📝 Errorf writes a formatted error message to the error stream.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Error(fmt.Sprintf(format, args...))
}
