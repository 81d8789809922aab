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

package epochinfo

import (
	"context"

	"github.com/attestantio/go-epochtime/types"
)

// Lift transforms a single query against a service from one execution
// discipline to another, for example adding retries, deadlines or
// tracing around every query of an existing service.
//
// op names the query being made, for diagnostics.  call carries out the
// underlying query, storing its result out of band; the lift decides
// when and with which context call runs, and what its error becomes.
// A lift must pass a context derived from ctx to call so that existing
// cancellation behavior is preserved, and must not report success if
// call has not run.
type Lift func(ctx context.Context, op string, call func(ctx context.Context) error) error

// IdentityLift runs the query as-is.  Transforming a service with the
// identity lift yields a service that behaves identically to the
// original.
func IdentityLift(ctx context.Context, _ string, call func(ctx context.Context) error) error {
	return call(ctx)
}

// Transform provides a service whose every query is the corresponding
// query of svc run through the given lift.
func Transform(svc Service, lift Lift) Service {
	return &liftedService{
		svc:  svc,
		lift: lift,
	}
}

type liftedService struct {
	svc  Service
	lift Lift
}

// EpochSize provides the number of slots in the given epoch.
func (s *liftedService) EpochSize(ctx context.Context, epoch types.Epoch) (types.EpochSize, error) {
	var size types.EpochSize
	err := s.lift(ctx, "EpochSize", func(ctx context.Context) error {
		var err error
		size, err = s.svc.EpochSize(ctx, epoch)
		return err
	})
	if err != nil {
		return 0, err
	}

	return size, nil
}

// FirstSlotOfEpoch provides the slot at which the given epoch starts.
func (s *liftedService) FirstSlotOfEpoch(ctx context.Context, epoch types.Epoch) (types.Slot, error) {
	var slot types.Slot
	err := s.lift(ctx, "FirstSlotOfEpoch", func(ctx context.Context) error {
		var err error
		slot, err = s.svc.FirstSlotOfEpoch(ctx, epoch)
		return err
	})
	if err != nil {
		return 0, err
	}

	return slot, nil
}

// SlotToEpoch provides the epoch containing the given slot.
func (s *liftedService) SlotToEpoch(ctx context.Context, slot types.Slot) (types.Epoch, error) {
	var epoch types.Epoch
	err := s.lift(ctx, "SlotToEpoch", func(ctx context.Context) error {
		var err error
		epoch, err = s.svc.SlotToEpoch(ctx, slot)
		return err
	})
	if err != nil {
		return 0, err
	}

	return epoch, nil
}

// StartOfSlot provides the time at which the given slot starts,
// relative to the system start.
func (s *liftedService) StartOfSlot(ctx context.Context, slot types.Slot) (types.RelativeTime, error) {
	var relative types.RelativeTime
	err := s.lift(ctx, "StartOfSlot", func(ctx context.Context) error {
		var err error
		relative, err = s.svc.StartOfSlot(ctx, slot)
		return err
	})
	if err != nil {
		return 0, err
	}

	return relative, nil
}

// Generalize provides a service backed by a pure service.  Queries
// never fail and ignore the context beyond what the pure service can
// observe, which is nothing.
func Generalize(pure PureService) Service {
	return &generalizedService{pure: pure}
}

type generalizedService struct {
	pure PureService
}

// EpochSize provides the number of slots in the given epoch.
func (s *generalizedService) EpochSize(_ context.Context, epoch types.Epoch) (types.EpochSize, error) {
	return s.pure.EpochSize(epoch), nil
}

// FirstSlotOfEpoch provides the slot at which the given epoch starts.
func (s *generalizedService) FirstSlotOfEpoch(_ context.Context, epoch types.Epoch) (types.Slot, error) {
	return s.pure.FirstSlotOfEpoch(epoch), nil
}

// SlotToEpoch provides the epoch containing the given slot.
func (s *generalizedService) SlotToEpoch(_ context.Context, slot types.Slot) (types.Epoch, error) {
	return s.pure.SlotToEpoch(slot), nil
}

// StartOfSlot provides the time at which the given slot starts,
// relative to the system start.
func (s *generalizedService) StartOfSlot(_ context.Context, slot types.Slot) (types.RelativeTime, error) {
	return s.pure.StartOfSlot(slot), nil
}
