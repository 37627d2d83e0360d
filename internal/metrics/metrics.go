// Toolscout - SaaS Tool Discovery and Recommendation Engine
// Copyright 2026 Toolscout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/toolscout/toolscout

// Package metrics defines the Prometheus collectors for the HTTP surface and
// the recommendation engine. Collectors register themselves via promauto at
// package load and are exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts API requests by method, route, and status.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "toolscout",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests processed, by method, route, and status code.",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDuration observes API request latency by route.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "toolscout",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency in seconds, by route.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"route"},
	)

	// RecommendationsTotal counts engine invocations by intent and outcome.
	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "toolscout",
			Subsystem: "recommend",
			Name:      "requests_total",
			Help:      "Total recommendation requests, by intent and outcome.",
		},
		[]string{"intent", "outcome"},
	)

	// RecommendationLatency observes end-to-end engine latency.
	RecommendationLatency = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "toolscout",
			Subsystem: "recommend",
			Name:      "latency_seconds",
			Help:      "Recommendation generation latency in seconds.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
	)

	// RecommendationCandidates observes how many eligible tools were scored.
	RecommendationCandidates = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "toolscout",
			Subsystem: "recommend",
			Name:      "candidates",
			Help:      "Eligible catalog tools scored per request.",
			Buckets:   []float64{10, 50, 100, 250, 500, 1000, 5000},
		},
	)

	// CatalogSize tracks the number of tools currently in the catalog.
	CatalogSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "toolscout",
			Subsystem: "catalog",
			Name:      "tools",
			Help:      "Number of tools in the in-memory catalog.",
		},
	)

	// CatalogSkippedRecords counts malformed records dropped during loads.
	CatalogSkippedRecords = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "toolscout",
			Subsystem: "catalog",
			Name:      "skipped_records_total",
			Help:      "Catalog records dropped for missing identity fields.",
		},
	)
)
