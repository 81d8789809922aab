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

// Package types defines the scalar values used when partitioning chain
// time into epochs and slots.
package types

// Epoch is an epoch ordinal.  The first epoch of a chain is epoch 0.
type Epoch uint64

// EpochSize is the number of slots in a single epoch.
// An epoch always contains at least one slot.
type EpochSize uint64

// Valid returns true if the epoch size is usable.
func (s EpochSize) Valid() bool {
	return s >= 1
}
