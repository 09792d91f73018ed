package metrics

import "time"

// RecordHit records one in-memory hit increment.
func RecordHit() {
	ArticleHitsRecordedTotal.Inc()
	ArticleHitsPending.Inc()
}

// RecordHitFlush records the outcome of a pending-hit flush.
// On success the flushed increments leave the pending gauge.
func RecordHitFlush(success bool, flushed int64) {
	if success {
		ArticleHitFlushesTotal.WithLabelValues("success").Inc()
		ArticleHitsPending.Sub(float64(flushed))
		return
	}
	ArticleHitFlushesTotal.WithLabelValues("failure").Inc()
}

// RecordCommentCreated records a successfully persisted comment.
func RecordCommentCreated() {
	CommentsCreatedTotal.Inc()
}

// RecordAssessment records an agree/disagree vote.
func RecordAssessment(kind string) {
	CommentAssessmentsTotal.WithLabelValues(kind).Inc()
}

// RecordNotification records a notification delivery attempt outcome.
// Recipient is "admin" or "parent_author".
func RecordNotification(recipient string, success bool, duration time.Duration) {
	result := "success"
	if !success {
		result = "failure"
	}
	NotificationsTotal.WithLabelValues(recipient, result).Inc()
	NotificationDuration.Observe(duration.Seconds())
}

// RecordNotificationDropped records a notification dropped before delivery.
func RecordNotificationDropped(reason string) {
	NotificationsDroppedTotal.WithLabelValues(reason).Inc()
}

// RecordQueryDuration records the duration of a named database operation.
func RecordQueryDuration(operation string, duration time.Duration) {
	DBQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}
