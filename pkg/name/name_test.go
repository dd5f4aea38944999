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

package name_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/uniqopy/pkg/name"
)

const (
	testTS = "2022-02-02-22:22:22"
	testFP = "d41d8cd98f00b204e9800998ecf8427e"
)

// writeTestFile creates an empty file with the given name and returns its path.
func writeTestFile(t *testing.T, filename string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), filename)
	require.NoError(t, os.WriteFile(path, nil, 0644))
	return path
}

// 🧪 TestNew_Construction checks stem/extension handling.
func TestNew_Construction(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     string
	}{
		{
			name:     "with_extension",
			filename: "foo.jpg",
			want:     "foo." + testTS + "." + testFP + ".jpg",
		},
		{
			name:     "without_extension",
			filename: "bar",
			want:     "bar." + testTS + "." + testFP,
		},
		{
			name:     "multiple_dots_keep_only_last_extension",
			filename: "archive.tar.gz",
			want:     "archive.tar." + testTS + "." + testFP + ".gz",
		},
		{
			name:     "hidden_file_has_no_extension",
			filename: ".bashrc",
			want:     ".bashrc." + testTS + "." + testFP,
		},
		{
			name:     "hidden_file_with_extension",
			filename: ".config.yml",
			want:     ".config." + testTS + "." + testFP + ".yml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTestFile(t, tt.filename)

			got, err := name.New(path, testTS, testFP)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// 🧪 TestNew_RejectsNonFiles checks the regular-file precondition.
func TestNew_RejectsNonFiles(t *testing.T) {
	t.Run("directory", func(t *testing.T) {
		got, err := name.New(t.TempDir(), testTS, testFP)
		assert.ErrorIs(t, err, name.ErrNotFile)
		assert.Empty(t, got)
	})

	t.Run("missing_path", func(t *testing.T) {
		got, err := name.New(filepath.Join(t.TempDir(), "nope"), testTS, testFP)
		assert.ErrorIs(t, err, name.ErrNotFile)
		assert.Empty(t, got)
	})
}

// 🧪 TestNew_ResultIsBareFilename checks directory components are dropped.
func TestNew_ResultIsBareFilename(t *testing.T) {
	path := writeTestFile(t, "nested.txt")

	got, err := name.New(path, testTS, testFP)
	require.NoError(t, err)
	assert.NotContains(t, got, string(filepath.Separator),
		"destination should land in the working directory, not beside the source")
	assert.Equal(t, "nested."+testTS+"."+testFP+".txt", got)
}
