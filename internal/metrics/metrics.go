// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics exposes resolution counters and value service latencies
// as Prometheus collectors.
package metrics

import (
	"fmt"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

const namespace = "soulkey"

// Recorder collects resolution metrics into a Prometheus registry.
type Recorder struct {
	resolutions *prom.CounterVec
	fetches     *prom.HistogramVec
}

// NewRecorder creates the collectors and registers them with reg.
func NewRecorder(reg prom.Registerer) (*Recorder, error) {
	r := &Recorder{
		resolutions: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "resolutions_total",
			Help:      "Reference token entries by terminal outcome.",
		}, []string{"outcome"}),
		fetches: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "remote_fetch_duration_seconds",
			Help:      "Value service lookup latency by result.",
			Buckets:   prom.DefBuckets,
		}, []string{"result"}),
	}

	for _, c := range []prom.Collector{r.resolutions, r.fetches} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("register metrics collector: %w", err)
		}
	}

	return r, nil
}

// ObserveFetch records one value service call.
func (r *Recorder) ObserveFetch(result string, elapsed time.Duration) {
	r.fetches.WithLabelValues(result).Observe(elapsed.Seconds())
}

// CountResolution increments the counter of outcome.
func (r *Recorder) CountResolution(outcome string) {
	r.resolutions.WithLabelValues(outcome).Inc()
}

// WriteTextfile writes everything g gathers to path in the text exposition
// format, for the node exporter textfile collector.
func WriteTextfile(path string, g prom.Gatherer) error {
	if err := prom.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}

	return nil
}
