package hits_test

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkpress/internal/usecase/hits"
)

/* ───────── スタブ実装 ───────── */

// 最小限のインメモリ HitsWriter
type stubWriter struct {
	mu      sync.Mutex
	hits    map[int64]int64
	writes  int
	err     error // 強制的にエラーを返したいとき用
}

func newStubWriter() *stubWriter {
	return &stubWriter{hits: map[int64]int64{}}
}

func (s *stubWriter) UpdateHits(_ context.Context, id int64, hits int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.hits[id] = hits
	s.writes++
	return nil
}

func (s *stubWriter) stored(id int64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits[id]
}

func discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

/* ───────── テストケース ───────── */

func TestRecordHit_AccumulatesBelowThreshold(t *testing.T) {
	store := newStubWriter()
	agg := hits.NewAggregator(store, 10, discard())

	for i := 0; i < 9; i++ {
		agg.RecordHit(context.Background(), 1, 100)
	}

	assert.EqualValues(t, 9, agg.Pending(1))
	assert.Equal(t, 0, store.writes, "no write below threshold")
}

func TestRecordHit_FlushAtThreshold(t *testing.T) {
	store := newStubWriter()
	agg := hits.NewAggregator(store, 10, discard())

	for i := 0; i < 10; i++ {
		agg.RecordHit(context.Background(), 1, 100)
	}

	assert.EqualValues(t, 110, store.stored(1), "persisted = prior + pending, exactly once")
	assert.Equal(t, 1, store.writes)
	assert.EqualValues(t, 0, agg.Pending(1), "pending reset after flush")
}

func TestRecordHit_FailedFlushKeepsPending(t *testing.T) {
	store := newStubWriter()
	store.err = errors.New("db down")
	agg := hits.NewAggregator(store, 3, discard())

	for i := 0; i < 3; i++ {
		agg.RecordHit(context.Background(), 7, 50)
	}
	assert.EqualValues(t, 3, agg.Pending(7), "pending retained on failure")

	// Storage recovers; the next qualifying hit flushes everything.
	store.mu.Lock()
	store.err = nil
	store.mu.Unlock()

	for i := 0; i < 3; i++ {
		agg.RecordHit(context.Background(), 7, 50)
	}
	assert.EqualValues(t, 56, store.stored(7), "no hit lost across the failure")
	assert.EqualValues(t, 0, agg.Pending(7))
}

func TestRecordHit_IndependentArticles(t *testing.T) {
	store := newStubWriter()
	agg := hits.NewAggregator(store, 5, discard())

	agg.RecordHit(context.Background(), 1, 0)
	agg.RecordHit(context.Background(), 2, 0)
	agg.RecordHit(context.Background(), 2, 0)

	assert.EqualValues(t, 1, agg.Pending(1))
	assert.EqualValues(t, 2, agg.Pending(2))
}

func TestRecordHit_Concurrent(t *testing.T) {
	store := newStubWriter()
	// 閾値を大きくしてフラッシュさせず、純粋な加算だけを見る
	agg := hits.NewAggregator(store, 1<<30, discard())

	const goroutines = 32
	const perGoroutine = 100

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				agg.RecordHit(context.Background(), 42, 0)
			}
		}()
	}
	wg.Wait()

	assert.EqualValues(t, goroutines*perGoroutine, agg.Pending(42),
		"concurrent increments must accumulate, never overwrite")
}

func TestFlushAll_DrainsEveryKey(t *testing.T) {
	store := newStubWriter()
	agg := hits.NewAggregator(store, 100, discard())

	agg.RecordHit(context.Background(), 1, 10)
	agg.RecordHit(context.Background(), 1, 10)
	agg.RecordHit(context.Background(), 2, 5)

	require.NoError(t, agg.FlushAll(context.Background()))

	assert.EqualValues(t, 12, store.stored(1))
	assert.EqualValues(t, 6, store.stored(2))
	assert.EqualValues(t, 0, agg.Pending(1))
	assert.EqualValues(t, 0, agg.Pending(2))

	// Nothing left: a second sweep writes nothing.
	writes := store.writes
	require.NoError(t, agg.FlushAll(context.Background()))
	assert.Equal(t, writes, store.writes)
}

func TestFlushAll_ReportsFailure(t *testing.T) {
	store := newStubWriter()
	store.err = errors.New("db down")
	agg := hits.NewAggregator(store, 100, discard())

	agg.RecordHit(context.Background(), 9, 1)

	err := agg.FlushAll(context.Background())
	require.Error(t, err)
	assert.EqualValues(t, 1, agg.Pending(9), "failed sweep keeps pending count")
}
