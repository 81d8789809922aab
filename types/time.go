// Copyright © 2025 Attestant Limited.
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

package types

import "time"

// RelativeTime is a duration measured from the system start.  Slot 0
// starts at relative time 0.
type RelativeTime time.Duration

// Duration returns the relative time as a duration.
func (t RelativeTime) Duration() time.Duration {
	return time.Duration(t)
}

// SystemStart is the wall-clock instant from which all relative times
// are measured.
type SystemStart time.Time

// Add converts a relative time to an absolute wall-clock time.
func (s SystemStart) Add(t RelativeTime) time.Time {
	return time.Time(s).Add(time.Duration(t))
}

// Time returns the system start as an absolute time.
func (s SystemStart) Time() time.Time {
	return time.Time(s)
}
