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

package operation

import (
	"context"
	"io"
	"os"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/uniqopy/pkg/fingerprint"
	"github.com/walteh/uniqopy/pkg/name"
	"github.com/walteh/uniqopy/pkg/timestamp"
)

// 🏃 Execute runs the copy operation: hash, timestamp, name, copy. Stage
// failures come back as *StageError so the caller can map them to exit
// statuses.
//
// The source is read twice, once for hashing and once for the copy. Nothing
// locks the file in between, so a source modified concurrently can yield a
// destination whose content does not match the fingerprint in its name. That
// race is accepted, not handled.
func (op *CopyOperation) Execute(ctx context.Context) (*Result, error) {
	logger := zerolog.Ctx(ctx)

	fp, err := fingerprint.File(op.opts.Source)
	if err != nil {
		return nil, &StageError{Stage: StageRead, Err: err}
	}
	logger.Debug().Str("source", op.opts.Source).Str("fingerprint", fp).Msg("hashed source")

	ts := timestamp.Now()

	dst, err := name.New(op.opts.Source, ts, fp)
	if err != nil {
		return nil, &StageError{Stage: StageName, Err: err}
	}

	op.opts.Console.CopyStart(op.opts.Source, dst)

	n, err := Copy(op.opts.Source, dst)
	if err != nil {
		return nil, &StageError{Stage: StageCopy, Err: err}
	}

	op.opts.Console.CopyDone(n)

	return &Result{
		Source:      op.opts.Source,
		Destination: dst,
		Fingerprint: fp,
		Timestamp:   ts,
		BytesCopied: n,
	}, nil
}

// 📄 Copy copies the full content of src to dst and returns the number of
// bytes written. dst is created, or truncated if it already exists; there is
// no overwrite guard. On failure a partially written dst is left in place.
func Copy(src, dst string) (int64, error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, errors.Errorf("opening %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return 0, errors.Errorf("creating %s: %w", dst, err)
	}

	n, err := io.Copy(out, in)
	if err != nil {
		out.Close()
		return 0, errors.Errorf("copying to %s: %w", dst, err)
	}

	if err := out.Close(); err != nil {
		return 0, errors.Errorf("closing %s: %w", dst, err)
	}
	return n, nil
}
