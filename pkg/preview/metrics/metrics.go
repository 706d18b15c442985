package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Pipeline metrics
	ProcessingDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "preview_processing_duration_seconds",
			Help: "Time spent converting documents to plain text",
		},
		[]string{"content_type"},
	)

	DocumentsProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "preview_documents_processed_total",
			Help: "Total number of documents processed",
		},
		[]string{"content_type", "status"},
	)

	PipelineQueueLength = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "preview_pipeline_queue_length",
		Help: "Number of documents waiting to be processed",
	})

	// Slate metrics
	SlateParseErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "slate_parse_errors_total",
		Help: "Number of Slate payloads that could not be decoded",
	})

	SlateUnknownNodeTypes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "slate_unknown_node_types_total",
			Help: "Node types serialized with the default rule",
		},
		[]string{"node_type"},
	)
)
