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
	"time"

	"github.com/attestantio/go-epochtime/types"
	"github.com/pkg/errors"
)

// EpochRange provides the slots of the given epoch, inclusive at both
// ends: the last slot of an epoch is its first slot plus its size minus
// one.
//
// The two underlying queries are independent of each other; if either
// fails the range fails with that error as its cause.
func EpochRange(ctx context.Context, svc Service, epoch types.Epoch) (types.SlotRange, error) {
	first, err := svc.FirstSlotOfEpoch(ctx, epoch)
	if err != nil {
		return types.SlotRange{}, errors.Wrap(err, "failed to obtain first slot of epoch")
	}
	size, err := svc.EpochSize(ctx, epoch)
	if err != nil {
		return types.SlotRange{}, errors.Wrap(err, "failed to obtain epoch size")
	}

	return types.SlotRange{
		First: first,
		Last:  first + types.Slot(size) - 1,
	}, nil
}

// AbsoluteStartOfSlot provides the wall-clock time at which the given
// slot starts, anchoring the slot's relative start time at the system
// start.
func AbsoluteStartOfSlot(ctx context.Context,
	svc Service,
	start types.SystemStart,
	slot types.Slot,
) (
	time.Time,
	error,
) {
	relative, err := svc.StartOfSlot(ctx, slot)
	if err != nil {
		return time.Time{}, errors.Wrap(err, "failed to obtain start of slot")
	}

	return start.Add(relative), nil
}
