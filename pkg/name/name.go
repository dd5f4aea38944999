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

// Package name constructs destination filenames.
//
// The destination name keeps the original stem and extension and inserts the
// timestamp and fingerprint between them:
//
//   - foo.jpg becomes foo.<timestamp>.<fingerprint>.jpg
//   - bar becomes bar.<timestamp>.<fingerprint>
package name

import (
	"os"
	"path/filepath"
	"strings"

	"gitlab.com/tozd/go/errors"
)

var (
	// ErrNotFile means the operand path does not denote an existing regular file.
	ErrNotFile = errors.New("operand is not a file")

	// ErrNoName means the operand path has no final filename component.
	ErrNoName = errors.New("no filename")
)

// 📛 New builds the destination filename for path, given the timestamp and
// fingerprint to embed. The path must denote an existing regular file; the
// returned name is a bare filename with no directory component.
func New(path, ts, fp string) (string, error) {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return "", ErrNotFile
	}

	stem, ext, ok := splitBase(path)
	if !ok {
		return "", ErrNoName
	}

	if ext == "" {
		return stem + "." + ts + "." + fp, nil
	}
	return stem + "." + ts + "." + fp + "." + ext, nil
}

// splitBase splits the final path component into stem and extension. The
// extension is the part after the last dot, except that a leading dot (a
// hidden file like .bashrc) never starts an extension on its own. ok is false
// when the path has no usable filename component at all.
func splitBase(path string) (stem, ext string, ok bool) {
	base := filepath.Base(path)
	if base == "." || base == ".." || base == string(filepath.Separator) {
		return "", "", false
	}

	idx := strings.LastIndex(base, ".")
	if idx <= 0 {
		return base, "", true
	}
	return base[:idx], base[idx+1:], true
}
