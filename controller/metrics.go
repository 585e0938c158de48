package controller

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	reportBuilds = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fantasy_report_builds_total",
		Help: "Total number of report builds by result",
	}, []string{"result"})

	buildDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "fantasy_report_build_duration_seconds",
		Help:    "Duration of a full report build",
		Buckets: prometheus.DefBuckets,
	})

	skippedWeeks = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "fantasy_report_skipped_weeks",
		Help: "Number of malformed weeks skipped by the last successful build",
	})
)
