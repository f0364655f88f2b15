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
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

type InstrumentKind int

const (
	Gauge InstrumentKind = iota
	Counter
	Histogram
)

var (
	ErrInstrumentNotSupported = errors.New("instrument type unsupported")
	ErrInstrumentTypeMismatch = errors.New("instrument is not of the expected type")
)

type instrumentOpts struct {
	namespace string
	help      string
	buckets   []float64
	labels    []string
}

// InstrumentOption customises an instrument built by AddInstrument.
type InstrumentOption func(o *instrumentOpts)

// Vectors turns the instrument into a vector partitioned by the given labels.
func Vectors(labels ...string) InstrumentOption {
	return func(o *instrumentOpts) {
		o.labels = labels
	}
}

func Help(help string) InstrumentOption {
	return func(o *instrumentOpts) {
		o.help = help
	}
}

func Namespace(ns string) InstrumentOption {
	return func(o *instrumentOpts) {
		o.namespace = ns
	}
}

// Buckets only applies to histograms.
func Buckets(b []float64) InstrumentOption {
	return func(o *instrumentOpts) {
		o.buckets = b
	}
}

// Instrument is a registered collector, retrieved with the getter matching
// its kind.
type Instrument struct {
	kind      InstrumentKind
	collector prometheus.Collector
}

// AddInstrument builds an instrument of the given kind and registers it on
// reg. Registering the same name twice fails.
func AddInstrument(reg prometheus.Registerer, kind InstrumentKind, name string, opts ...InstrumentOption) (*Instrument, error) {
	o := instrumentOpts{}
	for _, opt := range opts {
		opt(&o)
	}

	collector, err := o.build(kind, name)
	if err != nil {
		return nil, err
	}

	if err := reg.Register(collector); err != nil {
		return nil, fmt.Errorf("could not register the instrument %q: %w", name, err)
	}

	return &Instrument{
		kind:      kind,
		collector: collector,
	}, nil
}

func (o instrumentOpts) build(kind InstrumentKind, name string) (prometheus.Collector, error) {
	switch kind {
	case Gauge:
		gaugeOpts := prometheus.GaugeOpts{Namespace: o.namespace, Name: name, Help: o.help}
		if len(o.labels) == 0 {
			return prometheus.NewGauge(gaugeOpts), nil
		}
		return prometheus.NewGaugeVec(gaugeOpts, o.labels), nil
	case Counter:
		counterOpts := prometheus.CounterOpts{Namespace: o.namespace, Name: name, Help: o.help}
		if len(o.labels) == 0 {
			return prometheus.NewCounter(counterOpts), nil
		}
		return prometheus.NewCounterVec(counterOpts, o.labels), nil
	case Histogram:
		histogramOpts := prometheus.HistogramOpts{Namespace: o.namespace, Name: name, Help: o.help, Buckets: o.buckets}
		if len(o.labels) == 0 {
			return prometheus.NewHistogram(histogramOpts), nil
		}
		return prometheus.NewHistogramVec(histogramOpts, o.labels), nil
	default:
		return nil, ErrInstrumentNotSupported
	}
}

func (i *Instrument) Gauge() (prometheus.Gauge, error) {
	return collectorAs[prometheus.Gauge](i, Gauge)
}

func (i *Instrument) GaugeVec() (*prometheus.GaugeVec, error) {
	return collectorAs[*prometheus.GaugeVec](i, Gauge)
}

func (i *Instrument) Counter() (prometheus.Counter, error) {
	return collectorAs[prometheus.Counter](i, Counter)
}

func (i *Instrument) CounterVec() (*prometheus.CounterVec, error) {
	return collectorAs[*prometheus.CounterVec](i, Counter)
}

func (i *Instrument) Histogram() (prometheus.Histogram, error) {
	return collectorAs[prometheus.Histogram](i, Histogram)
}

func (i *Instrument) HistogramVec() (*prometheus.HistogramVec, error) {
	return collectorAs[*prometheus.HistogramVec](i, Histogram)
}

// collectorAs checks the kind first: a gauge also satisfies the Counter
// interface.
func collectorAs[T any](i *Instrument, kind InstrumentKind) (T, error) {
	var zero T
	if i.kind != kind {
		return zero, ErrInstrumentTypeMismatch
	}
	c, ok := i.collector.(T)
	if !ok {
		return zero, ErrInstrumentTypeMismatch
	}
	return c, nil
}
