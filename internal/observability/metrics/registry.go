// Package metrics provides centralized Prometheus metrics for the application.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics track HTTP request patterns and performance
var (
	// HTTPRequestsTotal counts total HTTP requests by method, path, and status
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration measures HTTP request duration in seconds
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)

// Business metrics track the content-engagement pipeline
var (
	// ArticleHitsRecordedTotal counts hits absorbed by the aggregator
	ArticleHitsRecordedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "article_hits_recorded_total",
			Help: "Total number of article hits recorded in memory",
		},
	)

	// ArticleHitFlushesTotal counts flushes of pending hit counts by result
	ArticleHitFlushesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "article_hit_flushes_total",
			Help: "Total number of pending hit count flushes to storage",
		},
		[]string{"result"}, // result: success, failure
	)

	// ArticleHitsPending tracks hits accumulated in memory but not yet persisted
	ArticleHitsPending = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "article_hits_pending",
			Help: "Hit increments held in memory awaiting flush",
		},
	)

	// CommentsCreatedTotal counts successfully persisted comments
	CommentsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "comments_created_total",
			Help: "Total number of comments created",
		},
	)

	// CommentAssessmentsTotal counts agree/disagree votes by kind
	CommentAssessmentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "comment_assessments_total",
			Help: "Total number of comment assessments",
		},
		[]string{"kind"}, // kind: agree, disagree
	)

	// NotificationsTotal counts notification deliveries by recipient type and result
	NotificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifications_total",
			Help: "Total number of comment notification deliveries",
		},
		[]string{"recipient", "result"}, // recipient: admin, parent_author; result: success, failure
	)

	// NotificationsDroppedTotal counts notifications dropped before delivery
	NotificationsDroppedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifications_dropped_total",
			Help: "Total number of notifications dropped before delivery",
		},
		[]string{"reason"}, // reason: pool_full, shutdown
	)

	// NotificationDuration measures end-to-end delivery time per notification
	NotificationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "notification_duration_seconds",
			Help:    "Time taken to deliver a comment notification",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 10),
		},
	)
)

// Database metrics track database performance
var (
	// DBQueryDuration measures database query duration
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 10),
		},
		[]string{"operation"},
	)
)

// RecordHTTPRequest records an HTTP request with its metadata
func RecordHTTPRequest(method, path, status string, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}
