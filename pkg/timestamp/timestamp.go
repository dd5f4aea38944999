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

// Package timestamp renders the wall-clock instant embedded in destination
// filenames. The rendered value uses the process's local timezone offset,
// never UTC, so it matches what the user's clock shows at invocation time.
package timestamp

import "time"

// Layout is the filename-safe date-time layout: zero-padded
// year-month-day-hour:minute:second on a 24-hour clock.
const Layout = "2006-01-02-15:04:05"

// 🕐 Now returns the current local time rendered with Layout.
func Now() string {
	return Format(time.Now())
}

// 🕐 Format renders t with Layout, in t's own location.
func Format(t time.Time) string {
	return t.Format(Layout)
}
