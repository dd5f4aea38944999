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

// Package fingerprint computes content fingerprints for files.
//
// A fingerprint is the MD5 digest of a file's full byte content, rendered as a
// 32-character lowercase hex string. MD5 is not cryptographically secure, so a
// fingerprint must not be treated as tamper-proof; it exists to give each
// input a reasonably unique signature, nothing more.
package fingerprint

import (
	"crypto/md5"
	"encoding/hex"
	"io"
	"os"

	"gitlab.com/tozd/go/errors"
)

// chunkSize bounds memory while hashing: the file is streamed through the
// digest in chunks of this size rather than loaded whole.
const chunkSize = 10 * 1024 * 1024 // 10MB

// 🔍 File computes the fingerprint of the file at path. The file is read
// sequentially in fixed-size chunks, so arbitrarily large files are fine.
func File(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", errors.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	sum, err := Reader(f)
	if err != nil {
		return "", errors.Errorf("reading %s: %w", path, err)
	}
	return sum, nil
}

// 🔍 Reader computes the fingerprint of everything readable from r.
func Reader(r io.Reader) (string, error) {
	h := md5.New()
	buf := make([]byte, chunkSize)
	if _, err := io.CopyBuffer(h, r, buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
