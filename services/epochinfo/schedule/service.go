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

// Package schedule provides epoch information for a chain whose epoch
// sizes and slot durations change across eras, observed dynamically
// from an era provider.
package schedule

import (
	"context"
	"sort"
	"time"

	"github.com/attestantio/go-epochtime/types"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	zerologger "github.com/rs/zerolog/log"
	"github.com/sasha-s/go-deadlock"
	"go.opentelemetry.io/otel"
	"golang.org/x/sync/singleflight"
)

// ErrBeyondHorizon is returned when a slot or epoch is beyond the eras
// known to the provider.  The query may succeed later, once the
// provider has observed more of the chain.
var ErrBeyondHorizon = errors.New("beyond known era horizon")

// Service provides epoch information from a dynamically-observed era
// schedule.
//
// The era schedule is cached, and refreshed from the provider when a
// query reaches beyond the cached horizon.  The cache only ever
// extends: concurrent queries observe a consistent, monotonically
// growing view of the schedule.
type Service struct {
	log         zerolog.Logger
	eraProvider EraProvider

	erasMu deadlock.RWMutex
	eras   []Era

	refresh singleflight.Group
}

// New creates a new era schedule epoch information provider.
func New(ctx context.Context, params ...Parameter) (*Service, error) {
	parameters, err := parseAndCheckParameters(params...)
	if err != nil {
		return nil, errors.Wrap(err, "problem with parameters")
	}

	// Set logging.
	log := zerologger.With().Str("service", "epochinfo").Str("impl", "schedule").Logger()
	if parameters.logLevel != log.GetLevel() {
		log = log.Level(parameters.logLevel)
	}

	if err := registerMetrics(ctx, parameters.monitor); err != nil {
		return nil, errors.New("failed to register metrics")
	}

	s := &Service{
		log:         log,
		eraProvider: parameters.eraProvider,
	}

	if err := s.refreshEras(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to obtain initial era schedule")
	}

	return s, nil
}

// EpochSize provides the number of slots in the given epoch.
func (s *Service) EpochSize(ctx context.Context, epoch types.Epoch) (types.EpochSize, error) {
	ctx, span := otel.Tracer("attestantio.go-epochtime.services.epochinfo.schedule").Start(ctx, "EpochSize")
	defer span.End()

	era, err := s.eraForEpoch(ctx, epoch)
	if err != nil {
		return 0, err
	}

	return era.EpochSize, nil
}

// FirstSlotOfEpoch provides the slot at which the given epoch starts.
func (s *Service) FirstSlotOfEpoch(ctx context.Context, epoch types.Epoch) (types.Slot, error) {
	ctx, span := otel.Tracer("attestantio.go-epochtime.services.epochinfo.schedule").Start(ctx, "FirstSlotOfEpoch")
	defer span.End()

	era, err := s.eraForEpoch(ctx, epoch)
	if err != nil {
		return 0, err
	}

	return era.FirstSlot + types.Slot(uint64(epoch-era.FirstEpoch)*uint64(era.EpochSize)), nil
}

// SlotToEpoch provides the epoch containing the given slot.
func (s *Service) SlotToEpoch(ctx context.Context, slot types.Slot) (types.Epoch, error) {
	ctx, span := otel.Tracer("attestantio.go-epochtime.services.epochinfo.schedule").Start(ctx, "SlotToEpoch")
	defer span.End()

	era, err := s.eraForSlot(ctx, slot)
	if err != nil {
		return 0, err
	}

	return era.FirstEpoch + types.Epoch(uint64(slot-era.FirstSlot)/uint64(era.EpochSize)), nil
}

// StartOfSlot provides the time at which the given slot starts,
// relative to the system start.  Eras may have different slot
// durations, so the start is anchored at the slot's own era.
func (s *Service) StartOfSlot(ctx context.Context, slot types.Slot) (types.RelativeTime, error) {
	ctx, span := otel.Tracer("attestantio.go-epochtime.services.epochinfo.schedule").Start(ctx, "StartOfSlot")
	defer span.End()

	era, err := s.eraForSlot(ctx, slot)
	if err != nil {
		return 0, err
	}

	return era.Start + types.RelativeTime(time.Duration(slot-era.FirstSlot)*era.SlotDuration), nil
}

// eraForEpoch provides the era containing the given epoch, refreshing
// the cached schedule if the epoch is beyond the cached horizon.
func (s *Service) eraForEpoch(ctx context.Context, epoch types.Epoch) (Era, error) {
	era, found := s.findEra(func(e Era) bool { return e.FirstEpoch > epoch }, func(e Era) bool { return e.containsEpoch(epoch) })
	if found {
		monitorEraLookup("hit")
		return era, nil
	}

	if err := s.refreshEras(ctx); err != nil {
		monitorEraLookup("failed")
		return Era{}, err
	}

	era, found = s.findEra(func(e Era) bool { return e.FirstEpoch > epoch }, func(e Era) bool { return e.containsEpoch(epoch) })
	if !found {
		monitorEraLookup("beyond_horizon")
		return Era{}, errors.Wrapf(ErrBeyondHorizon, "epoch %d", epoch)
	}

	monitorEraLookup("refresh")
	return era, nil
}

// eraForSlot provides the era containing the given slot, refreshing
// the cached schedule if the slot is beyond the cached horizon.
func (s *Service) eraForSlot(ctx context.Context, slot types.Slot) (Era, error) {
	era, found := s.findEra(func(e Era) bool { return e.FirstSlot > slot }, func(e Era) bool { return e.containsSlot(slot) })
	if found {
		monitorEraLookup("hit")
		return era, nil
	}

	if err := s.refreshEras(ctx); err != nil {
		monitorEraLookup("failed")
		return Era{}, err
	}

	era, found = s.findEra(func(e Era) bool { return e.FirstSlot > slot }, func(e Era) bool { return e.containsSlot(slot) })
	if !found {
		monitorEraLookup("beyond_horizon")
		return Era{}, errors.Wrapf(ErrBeyondHorizon, "slot %d", slot)
	}

	monitorEraLookup("refresh")
	return era, nil
}

// findEra binary searches the cached eras for the last era before the
// given boundary and confirms it contains the sought epoch or slot.
func (s *Service) findEra(after func(Era) bool, contains func(Era) bool) (Era, bool) {
	s.erasMu.RLock()
	defer s.erasMu.RUnlock()

	idx := sort.Search(len(s.eras), func(i int) bool { return after(s.eras[i]) }) - 1
	if idx < 0 {
		return Era{}, false
	}
	if !contains(s.eras[idx]) {
		return Era{}, false
	}

	return s.eras[idx], true
}

// refreshEras obtains the latest era schedule from the provider and
// installs it if it extends the cached one.  Concurrent refreshes are
// deduplicated.
func (s *Service) refreshEras(ctx context.Context) error {
	_, err, _ := s.refresh.Do("eras", func() (interface{}, error) {
		eras, err := s.eraProvider.Eras(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to obtain era schedule")
		}
		if err := validateEras(eras); err != nil {
			return nil, errors.Wrap(err, "invalid era schedule")
		}

		s.erasMu.Lock()
		defer s.erasMu.Unlock()
		if s.eras != nil && !extends(s.eras, eras) {
			s.log.Warn().Int("eras", len(eras)).Msg("Provider returned a regressive era schedule; keeping current schedule")
			return nil, errors.New("era schedule does not extend the observed schedule")
		}
		s.eras = eras
		monitorErasHeld(len(eras))
		s.log.Trace().Int("eras", len(eras)).Msg("Installed era schedule")

		return nil, nil
	})

	return err
}
