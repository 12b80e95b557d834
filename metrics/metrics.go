package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RecordsProcessed tracks records entering the pipeline per collection
	RecordsProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_records_processed_total",
		Help: "Total number of records entering the pipeline",
	}, []string{"collection"})

	// RecordsFiltered tracks records dropped by mode predicates
	RecordsFiltered = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_records_filtered_total",
		Help: "Total number of records dropped by processing mode filters",
	}, []string{"mode"})

	// RecordsDeduplicated tracks records dropped by the dedup pass
	RecordsDeduplicated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_records_deduplicated_total",
		Help: "Total number of duplicate records dropped",
	}, []string{"reason"})

	// MatchupsExtracted tracks successful sports matchup extractions
	MatchupsExtracted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "catalog_matchups_extracted_total",
		Help: "Total number of sports matchups extracted from channel names",
	})

	// MatchupsRejected tracks extractions discarded by the generic-label blacklist
	MatchupsRejected = promauto.NewCounter(prometheus.CounterOpts{
		Name: "catalog_matchups_rejected_total",
		Help: "Total number of matchup extractions discarded as generic labels",
	})

	// CacheHits tracks classification cache hits
	CacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "catalog_classify_cache_hits_total",
		Help: "Total number of classification cache hits",
	})

	// CacheMisses tracks classification cache misses
	CacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "catalog_classify_cache_misses_total",
		Help: "Total number of classification cache misses",
	})

	// PipelineDuration tracks wall time per pipeline run
	PipelineDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "catalog_pipeline_duration_seconds",
		Help:    "Duration of full pipeline runs",
		Buckets: prometheus.DefBuckets,
	})
)

// RecordProcessed adds to the processed counter for a collection
func RecordProcessed(collection string, count int) {
	RecordsProcessed.WithLabelValues(collection).Add(float64(count))
}

// RecordFiltered increments the filter-drop counter for a mode
func RecordFiltered(mode string) {
	RecordsFiltered.WithLabelValues(mode).Inc()
}

// RecordDeduplicated increments the dedup-drop counter for a reason ("id" or "name")
func RecordDeduplicated(reason string) {
	RecordsDeduplicated.WithLabelValues(reason).Inc()
}

// RecordMatchupExtracted increments the matchup extraction counter
func RecordMatchupExtracted() {
	MatchupsExtracted.Inc()
}

// RecordMatchupRejected increments the generic-label rejection counter
func RecordMatchupRejected() {
	MatchupsRejected.Inc()
}

// RecordCacheHit increments the classification cache hit counter
func RecordCacheHit() {
	CacheHits.Inc()
}

// RecordCacheMiss increments the classification cache miss counter
func RecordCacheMiss() {
	CacheMisses.Inc()
}

// ObservePipelineDuration records the wall time of a pipeline run in seconds
func ObservePipelineDuration(seconds float64) {
	PipelineDuration.Observe(seconds)
}
