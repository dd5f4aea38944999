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

// Package operation runs the uniqopy pipeline: hash the source, take a
// timestamp, build the destination name, copy the bytes. The pipeline is
// strictly linear and fully synchronous; any stage failure aborts the whole
// operation.
package operation

import (
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/uniqopy/pkg/log"
)

// 📊 Stage identifies the pipeline stage that produced a failure. Each stage
// maps to its own process exit status so scripts can react to specific
// failure classes.
type Stage int

const (
	StageUnknown Stage = iota
	StageRead          // source could not be opened or read while hashing
	StageName          // destination name could not be constructed
	StageCopy          // destination could not be written
)

// String returns a string representation of Stage
func (s Stage) String() string {
	switch s {
	case StageRead:
		return "read"
	case StageName:
		return "name"
	case StageCopy:
		return "copy"
	default:
		return "unknown"
	}
}

// 🏷️ StageError tags an error with the pipeline stage that produced it.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return e.Err.Error()
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// 📋 Result describes a completed copy.
type Result struct {
	Source      string // path the caller supplied
	Destination string // constructed filename, bare, in the working directory
	Fingerprint string // MD5 hex digest of the source content
	Timestamp   string // local wall-clock time at invocation
	BytesCopied int64
}

// 🔧 Options contains configuration for a copy operation
type Options struct {
	// Source is the path of the file to copy
	Source string
	// Console is the user-facing logger for the contractual output lines
	Console *log.Logger
}

// 🏭 New creates a new copy operation with the given options. An empty or
// bogus Source is not rejected here; it surfaces as a read failure when the
// pipeline first touches it.
func New(opts Options) (*CopyOperation, error) {
	if opts.Console == nil {
		return nil, errors.Errorf("console logger is required")
	}
	return &CopyOperation{opts: opts}, nil
}

// 🎮 CopyOperation implements the pipeline; see Execute in copy.go.
type CopyOperation struct {
	opts Options
}
