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

// Package mock provides a mock epoch information service, for testing
// consumers of the interface.
package mock

import (
	"context"
	"time"

	"github.com/attestantio/go-epochtime/types"
)

// Service is a mock epoch information service.  Queries answer from a
// fixed 32-slot, 12-second schedule unless the matching function field
// is set.
type Service struct {
	EpochSizeFunc        func(ctx context.Context, epoch types.Epoch) (types.EpochSize, error)
	FirstSlotOfEpochFunc func(ctx context.Context, epoch types.Epoch) (types.Slot, error)
	SlotToEpochFunc      func(ctx context.Context, slot types.Slot) (types.Epoch, error)
	StartOfSlotFunc      func(ctx context.Context, slot types.Slot) (types.RelativeTime, error)
}

// New creates a new mock epoch information service.
func New() *Service {
	return &Service{}
}

// EpochSize provides the number of slots in the given epoch.
func (s *Service) EpochSize(ctx context.Context, epoch types.Epoch) (types.EpochSize, error) {
	if s.EpochSizeFunc != nil {
		return s.EpochSizeFunc(ctx, epoch)
	}
	return 32, nil
}

// FirstSlotOfEpoch provides the slot at which the given epoch starts.
func (s *Service) FirstSlotOfEpoch(ctx context.Context, epoch types.Epoch) (types.Slot, error) {
	if s.FirstSlotOfEpochFunc != nil {
		return s.FirstSlotOfEpochFunc(ctx, epoch)
	}
	return types.Slot(uint64(epoch) * 32), nil
}

// SlotToEpoch provides the epoch containing the given slot.
func (s *Service) SlotToEpoch(ctx context.Context, slot types.Slot) (types.Epoch, error) {
	if s.SlotToEpochFunc != nil {
		return s.SlotToEpochFunc(ctx, slot)
	}
	return types.Epoch(uint64(slot) / 32), nil
}

// StartOfSlot provides the time at which the given slot starts,
// relative to the system start.
func (s *Service) StartOfSlot(ctx context.Context, slot types.Slot) (types.RelativeTime, error) {
	if s.StartOfSlotFunc != nil {
		return s.StartOfSlotFunc(ctx, slot)
	}
	return types.RelativeTime(time.Duration(slot) * 12 * time.Second), nil
}
