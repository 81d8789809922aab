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

// Slot is a slot ordinal.  Slots start at 0 and increase monotonically
// across the whole history of the chain; they do not reset at epoch
// boundaries.
type Slot uint64

// SlotRange is a contiguous range of slots, inclusive at both ends.
type SlotRange struct {
	First Slot
	Last  Slot
}

// Contains returns true if the slot falls within the range.
func (r SlotRange) Contains(slot Slot) bool {
	return slot >= r.First && slot <= r.Last
}

// Len returns the number of slots in the range.
func (r SlotRange) Len() uint64 {
	return uint64(r.Last-r.First) + 1
}
