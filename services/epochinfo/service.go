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

// Package epochinfo provides information about how chain time is
// partitioned into epochs and slots, and the timing derived from that
// partitioning.
package epochinfo

import (
	"context"

	"github.com/attestantio/go-epochtime/types"
)

// Service provides epoch and slot information for a chain.
//
// Implementations may answer from a constant schedule or from
// dynamically-observed chain state, so every query carries a context
// and may fail.  Failures are reported through the returned error;
// implementations must not return partial results.
type Service interface {
	// EpochSize provides the number of slots in the given epoch.
	// Epoch sizes may change across the life of a chain, so this is
	// not a constant function of the epoch.
	EpochSize(ctx context.Context, epoch types.Epoch) (types.EpochSize, error)
	// FirstSlotOfEpoch provides the slot at which the given epoch starts.
	FirstSlotOfEpoch(ctx context.Context, epoch types.Epoch) (types.Slot, error)
	// SlotToEpoch provides the epoch containing the given slot.
	SlotToEpoch(ctx context.Context, slot types.Slot) (types.Epoch, error)
	// StartOfSlot provides the time at which the given slot starts,
	// relative to the system start.  Slot durations may differ between
	// epochs, so this is not a constant multiple of the slot.
	StartOfSlot(ctx context.Context, slot types.Slot) (types.RelativeTime, error)
}

// PureService provides epoch and slot information that does not depend
// on external state.  Queries cannot fail and do not block.
//
// A pure service can be used wherever a Service is required by lifting
// it with Generalize.
type PureService interface {
	// EpochSize provides the number of slots in the given epoch.
	EpochSize(epoch types.Epoch) types.EpochSize
	// FirstSlotOfEpoch provides the slot at which the given epoch starts.
	FirstSlotOfEpoch(epoch types.Epoch) types.Slot
	// SlotToEpoch provides the epoch containing the given slot.
	SlotToEpoch(slot types.Slot) types.Epoch
	// StartOfSlot provides the time at which the given slot starts,
	// relative to the system start.
	StartOfSlot(slot types.Slot) types.RelativeTime
}
