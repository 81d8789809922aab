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

	"github.com/attestantio/go-epochtime/services/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	eraLookups *prometheus.CounterVec
	erasHeld   prometheus.Gauge
)

func registerMetrics(ctx context.Context, monitor metrics.Service) error {
	if eraLookups != nil {
		// Already registered.
		return nil
	}
	if monitor == nil {
		// No monitor.
		return nil
	}
	if monitor.Presenter() == "prometheus" {
		return registerPrometheusMetrics(ctx)
	}
	return nil
}

func registerPrometheusMetrics(_ context.Context) error {
	eraLookups = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "epochtime",
		Subsystem: "schedule",
		Name:      "era_lookups",
		Help:      "The number of era lookups.",
	}, []string{"result"})
	if err := prometheus.Register(eraLookups); err != nil {
		return err
	}

	erasHeld = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "epochtime",
		Subsystem: "schedule",
		Name:      "eras_held",
		Help:      "The number of eras held in the schedule cache.",
	})
	return prometheus.Register(erasHeld)
}

func monitorEraLookup(result string) {
	if eraLookups != nil {
		eraLookups.WithLabelValues(result).Inc()
	}
}

func monitorErasHeld(eras int) {
	if erasHeld != nil {
		erasHeld.Set(float64(eras))
	}
}
