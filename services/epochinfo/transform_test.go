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

package epochinfo_test

import (
	"context"
	"testing"
	"time"

	"github.com/attestantio/go-epochtime/services/epochinfo"
	"github.com/attestantio/go-epochtime/services/epochinfo/fixed"
	"github.com/attestantio/go-epochtime/services/epochinfo/mock"
	"github.com/attestantio/go-epochtime/types"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestTransformIdentity(t *testing.T) {
	ctx := context.Background()
	svc := mock.New()
	lifted := epochinfo.Transform(svc, epochinfo.IdentityLift)

	for _, epoch := range []types.Epoch{0, 1, 17, 1024} {
		size, err := svc.EpochSize(ctx, epoch)
		require.NoError(t, err)
		liftedSize, err := lifted.EpochSize(ctx, epoch)
		require.NoError(t, err)
		require.Equal(t, size, liftedSize)

		first, err := svc.FirstSlotOfEpoch(ctx, epoch)
		require.NoError(t, err)
		liftedFirst, err := lifted.FirstSlotOfEpoch(ctx, epoch)
		require.NoError(t, err)
		require.Equal(t, first, liftedFirst)
	}

	for _, slot := range []types.Slot{0, 31, 32, 100000} {
		epoch, err := svc.SlotToEpoch(ctx, slot)
		require.NoError(t, err)
		liftedEpoch, err := lifted.SlotToEpoch(ctx, slot)
		require.NoError(t, err)
		require.Equal(t, epoch, liftedEpoch)

		relative, err := svc.StartOfSlot(ctx, slot)
		require.NoError(t, err)
		liftedRelative, err := lifted.StartOfSlot(ctx, slot)
		require.NoError(t, err)
		require.Equal(t, relative, liftedRelative)
	}

	// Derived queries are also unchanged.
	slotRange, err := epochinfo.EpochRange(ctx, svc, 3)
	require.NoError(t, err)
	liftedRange, err := epochinfo.EpochRange(ctx, lifted, 3)
	require.NoError(t, err)
	require.Equal(t, slotRange, liftedRange)
}

func TestTransformPropagatesFailures(t *testing.T) {
	ctx := context.Background()
	errTest := errors.New("no schedule")
	svc := mock.New()
	svc.EpochSizeFunc = func(_ context.Context, _ types.Epoch) (types.EpochSize, error) {
		return 0, errTest
	}

	lifted := epochinfo.Transform(svc, epochinfo.IdentityLift)
	_, err := lifted.EpochSize(ctx, 1)
	require.ErrorIs(t, err, errTest)
}

func TestTransformLiftObservesQueries(t *testing.T) {
	ctx := context.Background()
	svc := mock.New()

	ops := make([]string, 0)
	lifted := epochinfo.Transform(svc, func(ctx context.Context, op string, call func(ctx context.Context) error) error {
		ops = append(ops, op)
		return call(ctx)
	})

	_, err := lifted.EpochSize(ctx, 0)
	require.NoError(t, err)
	_, err = lifted.FirstSlotOfEpoch(ctx, 0)
	require.NoError(t, err)
	_, err = lifted.SlotToEpoch(ctx, 0)
	require.NoError(t, err)
	_, err = lifted.StartOfSlot(ctx, 0)
	require.NoError(t, err)

	require.Equal(t, []string{"EpochSize", "FirstSlotOfEpoch", "SlotToEpoch", "StartOfSlot"}, ops)
}

func TestTransformPreservesCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := mock.New()
	svc.EpochSizeFunc = func(ctx context.Context, _ types.Epoch) (types.EpochSize, error) {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		return 32, nil
	}

	lifted := epochinfo.Transform(svc, epochinfo.IdentityLift)
	_, err := lifted.EpochSize(ctx, 0)
	require.ErrorIs(t, err, context.Canceled)
}

func TestGeneralize(t *testing.T) {
	ctx := context.Background()

	pure, err := fixed.New(ctx,
		fixed.WithLogLevel(zerolog.Disabled),
		fixed.WithEpochSize(10),
		fixed.WithSlotDuration(time.Second),
	)
	require.NoError(t, err)

	svc := epochinfo.Generalize(pure)

	for _, epoch := range []types.Epoch{0, 1, 2, 500} {
		size, err := svc.EpochSize(ctx, epoch)
		require.NoError(t, err)
		require.Equal(t, pure.EpochSize(epoch), size)
		require.Equal(t, types.EpochSize(10), size)

		first, err := svc.FirstSlotOfEpoch(ctx, epoch)
		require.NoError(t, err)
		require.Equal(t, pure.FirstSlotOfEpoch(epoch), first)
	}

	start := types.SystemStart(time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC))
	for _, slot := range []types.Slot{0, 9, 10, 25} {
		absolute, err := epochinfo.AbsoluteStartOfSlot(ctx, svc, start, slot)
		require.NoError(t, err)
		require.Equal(t, start.Time().Add(time.Duration(slot)*time.Second), absolute)
	}
}
