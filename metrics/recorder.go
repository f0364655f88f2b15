// Copyright (C) 2023 Gobalsky Labs Limited
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "keybot"

// Outcomes of an API call.
const (
	OutcomeSuccess = "success"
	OutcomeEmpty   = "empty"
	OutcomeError   = "error"
)

// Recorder holds the instruments of a bot. Each recorder owns its registry,
// so several bots can live in the same process.
type Recorder struct {
	registry *prometheus.Registry

	apiCallCounter   *prometheus.CounterVec
	apiCallDuration  *prometheus.HistogramVec
	openSessionGauge prometheus.Gauge
}

func NewRecorder() (*Recorder, error) {
	registry := prometheus.NewRegistry()

	h, err := AddInstrument(
		registry,
		Counter,
		"api_calls_total",
		Namespace(namespace),
		Vectors("api", "method", "outcome"),
		Help("Count of local API calls"),
	)
	if err != nil {
		return nil, err
	}
	apiCallCounter, err := h.CounterVec()
	if err != nil {
		return nil, err
	}

	h, err = AddInstrument(
		registry,
		Histogram,
		"api_call_seconds",
		Namespace(namespace),
		Vectors("api", "method"),
		Buckets([]float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}),
		Help("Time spent in each local API call"),
	)
	if err != nil {
		return nil, err
	}
	apiCallDuration, err := h.HistogramVec()
	if err != nil {
		return nil, err
	}

	h, err = AddInstrument(
		registry,
		Gauge,
		"open_sessions",
		Namespace(namespace),
		Help("Number of initialized bots"),
	)
	if err != nil {
		return nil, err
	}
	openSessionGauge, err := h.Gauge()
	if err != nil {
		return nil, err
	}

	return &Recorder{
		registry:         registry,
		apiCallCounter:   apiCallCounter,
		apiCallDuration:  apiCallDuration,
		openSessionGauge: openSessionGauge,
	}, nil
}

// ObserveAPICall records a call of the local API. A nil recorder records
// nothing.
func (r *Recorder) ObserveAPICall(api, method, outcome string, duration time.Duration) {
	if r == nil {
		return
	}
	r.apiCallCounter.WithLabelValues(api, method, outcome).Inc()
	r.apiCallDuration.WithLabelValues(api, method).Observe(duration.Seconds())
}

func (r *Recorder) SessionOpened() {
	if r == nil {
		return
	}
	r.openSessionGauge.Inc()
}

func (r *Recorder) SessionClosed() {
	if r == nil {
		return
	}
	r.openSessionGauge.Dec()
}

// Gatherer exposes the collected metrics.
func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.registry
}
