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

package fixed

import (
	"time"

	"github.com/attestantio/go-epochtime/types"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

type parameters struct {
	logLevel     zerolog.Level
	epochSize    types.EpochSize
	slotDuration time.Duration
}

// Parameter is the interface for service parameters.
type Parameter interface {
	apply(*parameters)
}

type parameterFunc func(*parameters)

func (f parameterFunc) apply(p *parameters) {
	f(p)
}

// WithLogLevel sets the log level for the module.
func WithLogLevel(logLevel zerolog.Level) Parameter {
	return parameterFunc(func(p *parameters) {
		p.logLevel = logLevel
	})
}

// WithEpochSize sets the number of slots in each epoch.
func WithEpochSize(epochSize types.EpochSize) Parameter {
	return parameterFunc(func(p *parameters) {
		p.epochSize = epochSize
	})
}

// WithSlotDuration sets the duration of each slot.
func WithSlotDuration(slotDuration time.Duration) Parameter {
	return parameterFunc(func(p *parameters) {
		p.slotDuration = slotDuration
	})
}

// parseAndCheckParameters parses and checks parameters to ensure that mandatory parameters are present and correct.
func parseAndCheckParameters(params ...Parameter) (*parameters, error) {
	parameters := parameters{
		logLevel: zerolog.GlobalLevel(),
	}
	for _, p := range params {
		if params != nil {
			p.apply(&parameters)
		}
	}

	if !parameters.epochSize.Valid() {
		return nil, errors.New("no epoch size specified")
	}
	if parameters.slotDuration <= 0 {
		return nil, errors.New("no slot duration specified")
	}

	return &parameters, nil
}
