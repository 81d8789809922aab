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

package schedule

import (
	"context"
	"time"

	"github.com/attestantio/go-epochtime/types"
	"github.com/pkg/errors"
)

// Era is a span of epochs that share an epoch size and a slot duration.
// Eras are contiguous: each era starts at the slot, epoch and time at
// which its predecessor ends.
type Era struct {
	// FirstSlot is the first slot of the era.
	FirstSlot types.Slot
	// FirstEpoch is the first epoch of the era.
	FirstEpoch types.Epoch
	// Start is the start of the era relative to the system start.
	Start types.RelativeTime
	// EpochSize is the number of slots in each epoch of the era.
	EpochSize types.EpochSize
	// SlotDuration is the duration of each slot of the era.
	SlotDuration time.Duration
	// Epochs is the number of epochs the era is known to span.
	// 0 means the era is open-ended; only the final era may be
	// open-ended.
	Epochs uint64
}

// bounded returns true if the era has a known end.
func (e Era) bounded() bool {
	return e.Epochs > 0
}

// lastEpoch provides the last epoch of a bounded era.
func (e Era) lastEpoch() types.Epoch {
	return e.FirstEpoch + types.Epoch(e.Epochs) - 1
}

// lastSlot provides the last slot of a bounded era.
func (e Era) lastSlot() types.Slot {
	return e.FirstSlot + types.Slot(e.Epochs*uint64(e.EpochSize)) - 1
}

// containsEpoch returns true if the epoch falls within the era.
func (e Era) containsEpoch(epoch types.Epoch) bool {
	return epoch >= e.FirstEpoch && (!e.bounded() || epoch <= e.lastEpoch())
}

// containsSlot returns true if the slot falls within the era.
func (e Era) containsSlot(slot types.Slot) bool {
	return slot >= e.FirstSlot && (!e.bounded() || slot <= e.lastSlot())
}

// EraProvider supplies the era schedule of a chain, for example from a
// ledger state or a chain database.  The returned eras must be ordered
// and may only ever extend those returned by earlier calls.
type EraProvider interface {
	// Eras provides the current era schedule.
	Eras(ctx context.Context) ([]Era, error)
}

// validateEras confirms that an era schedule is internally consistent.
func validateEras(eras []Era) error {
	if len(eras) == 0 {
		return errors.New("era schedule is empty")
	}
	if eras[0].FirstSlot != 0 || eras[0].FirstEpoch != 0 || eras[0].Start != 0 {
		return errors.New("era schedule does not start at genesis")
	}

	for i, era := range eras {
		if !era.EpochSize.Valid() {
			return errors.Errorf("era %d has no epoch size", i)
		}
		if era.SlotDuration <= 0 {
			return errors.Errorf("era %d has no slot duration", i)
		}
		if era.bounded() {
			continue
		}
		if i != len(eras)-1 {
			return errors.Errorf("era %d is open-ended but not final", i)
		}
	}

	for i := 0; i < len(eras)-1; i++ {
		era := eras[i]
		next := eras[i+1]
		slots := era.Epochs * uint64(era.EpochSize)
		if next.FirstEpoch != era.FirstEpoch+types.Epoch(era.Epochs) {
			return errors.Errorf("era %d does not start at the epoch after era %d", i+1, i)
		}
		if next.FirstSlot != era.FirstSlot+types.Slot(slots) {
			return errors.Errorf("era %d does not start at the slot after era %d", i+1, i)
		}
		if next.Start != era.Start+types.RelativeTime(time.Duration(slots)*era.SlotDuration) {
			return errors.Errorf("era %d does not start at the time era %d ends", i+1, i)
		}
	}

	return nil
}

// extends confirms that next is a monotonic extension of cur: every
// era already observed keeps its parameters, and a known bound never
// retracts.
func extends(cur []Era, next []Era) bool {
	if len(next) < len(cur) {
		return false
	}

	for i := range cur {
		if next[i].FirstSlot != cur[i].FirstSlot ||
			next[i].FirstEpoch != cur[i].FirstEpoch ||
			next[i].Start != cur[i].Start ||
			next[i].EpochSize != cur[i].EpochSize ||
			next[i].SlotDuration != cur[i].SlotDuration {
			return false
		}

		if i < len(cur)-1 {
			if next[i].Epochs != cur[i].Epochs {
				return false
			}
			continue
		}

		// Final observed era.  Its bound may extend or disappear, but
		// sizes already observed must never retract.
		switch {
		case cur[i].Epochs == 0:
			if next[i].Epochs != 0 {
				return false
			}
		case next[i].Epochs != 0 && next[i].Epochs < cur[i].Epochs:
			return false
		}
	}

	return true
}
