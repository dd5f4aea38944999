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

package timestamp_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/walteh/uniqopy/pkg/timestamp"
)

// 🧪 TestFormat_ZeroPadding checks single-digit fields are zero-padded.
func TestFormat_ZeroPadding(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{
			name: "single_digit_fields",
			in:   time.Date(2022, time.February, 2, 2, 2, 2, 0, time.UTC),
			want: "2022-02-02-02:02:02",
		},
		{
			name: "double_digit_fields",
			in:   time.Date(2023, time.December, 31, 23, 59, 58, 0, time.UTC),
			want: "2023-12-31-23:59:58",
		},
		{
			name: "midnight_is_24_hour_clock",
			in:   time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
			want: "2024-06-01-00:00:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, timestamp.Format(tt.in))
		})
	}
}

// 🧪 TestFormat_UsesGivenLocation checks the offset of t is respected as-is.
func TestFormat_UsesGivenLocation(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*60*60)
	in := time.Date(2022, time.February, 2, 22, 22, 22, 0, loc)

	assert.Equal(t, "2022-02-02-22:22:22", timestamp.Format(in),
		"rendered time should be the wall-clock value in t's own zone")
}

// 🧪 TestNow_MatchesLayout checks Now produces the documented shape.
func TestNow_MatchesLayout(t *testing.T) {
	got := timestamp.Now()
	assert.Regexp(t, regexp.MustCompile(`^\d{4}-\d{2}-\d{2}-\d{2}:\d{2}:\d{2}$`), got)

	// Round-tripping through the layout in local time should parse cleanly.
	parsed, err := time.ParseInLocation(timestamp.Layout, got, time.Local)
	assert.NoError(t, err)
	assert.WithinDuration(t, time.Now(), parsed, 2*time.Second)
}
