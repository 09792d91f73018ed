// Package hits provides the write-back hit aggregator for articles.
// Frequent, low-value view events are absorbed into memory and merged
// into persistent storage once per flush threshold, amortizing writes.
package hits

import (
	"context"
	"log/slog"
	"sync"

	"inkpress/internal/observability/metrics"
	"inkpress/pkg/config"
)

// DefaultFlushThreshold is the number of pending hits per article that
// triggers a flush to persistent storage.
const DefaultFlushThreshold = 10

// HitsWriter is the slice of the article store the aggregator needs:
// a single absolute update of the persisted hit count.
type HitsWriter interface {
	UpdateHits(ctx context.Context, id int64, hits int64) error
}

// counter tracks the not-yet-persisted hits of one article. persisted
// remembers the authoritative count last seen on the read path, so a
// background flush can compute the absolute value to write.
type counter struct {
	mu        sync.Mutex
	pending   int64
	persisted int64
}

// Aggregator owns a mapping from article ID to pending hit count.
// It is constructed explicitly at service start and injected where
// needed; there is no ambient global cache.
//
// Increment-and-maybe-flush runs under a per-article lock, so two
// concurrent hits on the same article always accumulate and a flush
// never races with an increment. Different articles are independent.
type Aggregator struct {
	store     HitsWriter
	threshold int64
	logger    *slog.Logger

	mu       sync.Mutex // guards the counters map, not the counts
	counters map[int64]*counter
}

// NewAggregator creates an Aggregator flushing every threshold hits.
// A threshold below 1 falls back to DefaultFlushThreshold.
func NewAggregator(store HitsWriter, threshold int64, logger *slog.Logger) *Aggregator {
	if threshold < 1 {
		threshold = DefaultFlushThreshold
	}
	return &Aggregator{
		store:     store,
		threshold: threshold,
		logger:    logger,
		counters:  make(map[int64]*counter),
	}
}

// ThresholdFromEnv reads the flush threshold from HITS_FLUSH_THRESHOLD.
func ThresholdFromEnv() int64 {
	return int64(config.GetEnvInt("HITS_FLUSH_THRESHOLD", DefaultFlushThreshold))
}

// RecordHit absorbs one view of an article. persistedHits is the
// authoritative count the caller just read from storage. When the
// pending count reaches the flush threshold, the aggregator writes
// persistedHits + pending back to storage and resets the pending count.
//
// A failed write is recoverable: the pending count is kept and retried
// on the next qualifying hit. RecordHit therefore never returns an
// error; hit accounting must not fail the read path.
func (a *Aggregator) RecordHit(ctx context.Context, articleID, persistedHits int64) {
	c := a.counter(articleID)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.pending++
	c.persisted = persistedHits
	metrics.RecordHit()

	if c.pending < a.threshold {
		return
	}
	a.flushLocked(ctx, articleID, c)
}

// Pending returns the in-memory pending count for an article.
func (a *Aggregator) Pending(articleID int64) int64 {
	c := a.counter(articleID)
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending
}

// FlushAll drains every non-zero pending count to storage. It is run
// by the periodic sweeper and on shutdown, so counts accumulated below
// the threshold are not lost across restarts. Failed keys keep their
// pending counts; the last error is returned.
func (a *Aggregator) FlushAll(ctx context.Context) error {
	a.mu.Lock()
	ids := make([]int64, 0, len(a.counters))
	for id := range a.counters {
		ids = append(ids, id)
	}
	a.mu.Unlock()

	var lastErr error
	for _, id := range ids {
		c := a.counter(id)
		c.mu.Lock()
		if c.pending > 0 {
			if err := a.flushLocked(ctx, id, c); err != nil {
				lastErr = err
			}
		}
		c.mu.Unlock()
	}
	return lastErr
}

// flushLocked writes persisted+pending for one article and resets the
// pending count. The caller holds c.mu.
func (a *Aggregator) flushLocked(ctx context.Context, articleID int64, c *counter) error {
	total := c.persisted + c.pending
	if err := a.store.UpdateHits(ctx, articleID, total); err != nil {
		// Pending count kept; retried on the next qualifying hit.
		metrics.RecordHitFlush(false, c.pending)
		a.logger.Warn("hit flush failed, keeping pending count",
			slog.Int64("article_id", articleID),
			slog.Int64("pending", c.pending),
			slog.Any("error", err))
		return err
	}

	metrics.RecordHitFlush(true, c.pending)
	a.logger.Debug("hit count flushed",
		slog.Int64("article_id", articleID),
		slog.Int64("flushed", c.pending),
		slog.Int64("total", total))
	c.persisted = total
	c.pending = 0
	return nil
}

// counter returns the counter for an article, creating it on first sight.
func (a *Aggregator) counter(articleID int64) *counter {
	a.mu.Lock()
	defer a.mu.Unlock()
	c, ok := a.counters[articleID]
	if !ok {
		c = &counter{}
		a.counters[articleID] = c
	}
	return c
}
