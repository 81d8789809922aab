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

// Package fixed provides epoch information for a chain whose epoch size
// and slot duration never change.
package fixed

import (
	"context"
	"fmt"
	"time"

	"github.com/attestantio/go-epochtime/types"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	zerologger "github.com/rs/zerolog/log"
)

// Service provides epoch information from a fixed schedule.
// It is pure: queries cannot fail and do not touch external state.
type Service struct {
	log          zerolog.Logger
	epochSize    types.EpochSize
	slotDuration time.Duration
}

// New creates a new fixed epoch information provider.
func New(_ context.Context, params ...Parameter) (*Service, error) {
	parameters, err := parseAndCheckParameters(params...)
	if err != nil {
		return nil, errors.Wrap(err, "problem with parameters")
	}

	// Set logging.
	log := zerologger.With().Str("service", "epochinfo").Str("impl", "fixed").Logger()
	if parameters.logLevel != log.GetLevel() {
		log = log.Level(parameters.logLevel)
	}

	s := &Service{
		log:          log,
		epochSize:    parameters.epochSize,
		slotDuration: parameters.slotDuration,
	}
	log.Trace().
		Uint64("epoch_size", uint64(s.epochSize)).
		Dur("slot_duration", s.slotDuration).
		Msg("Created fixed schedule")

	return s, nil
}

// EpochSize provides the number of slots in the given epoch.
func (s *Service) EpochSize(_ types.Epoch) types.EpochSize {
	return s.epochSize
}

// FirstSlotOfEpoch provides the slot at which the given epoch starts.
func (s *Service) FirstSlotOfEpoch(epoch types.Epoch) types.Slot {
	return types.Slot(uint64(epoch) * uint64(s.epochSize))
}

// SlotToEpoch provides the epoch containing the given slot.
func (s *Service) SlotToEpoch(slot types.Slot) types.Epoch {
	return types.Epoch(uint64(slot) / uint64(s.epochSize))
}

// StartOfSlot provides the time at which the given slot starts,
// relative to the system start.  Slot 0 starts at relative time 0.
func (s *Service) StartOfSlot(slot types.Slot) types.RelativeTime {
	return types.RelativeTime(time.Duration(slot) * s.slotDuration)
}

// String implements fmt.Stringer.  This is a debug aid only; it must
// not be used for equality or serialization.
func (s *Service) String() string {
	return fmt.Sprintf("fixed-size epoch info of size %d", s.epochSize)
}
