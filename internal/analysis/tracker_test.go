package analysis

import (
	"sync"
	"testing"
	"time"

	"github.com/argumentor/analysis-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entryWithTotal(total float64) SessionEntry {
	return SessionEntry{
		Timestamp: time.Now(),
		Analysis:  models.Analysis{Overall: models.OverallScores{Total: total}},
	}
}

func TestSessionStore_AppendAndHistory(t *testing.T) {
	store := NewSessionStore()

	store.Append("s1", entryWithTotal(0.3))
	store.Append("s1", entryWithTotal(0.5))
	store.Append("s2", entryWithTotal(0.9))

	h := store.History("s1")
	require.Len(t, h, 2)
	assert.Equal(t, 0.3, h[0].Analysis.Overall.Total)
	assert.Equal(t, 0.5, h[1].Analysis.Overall.Total)
	assert.Equal(t, 1, store.Len("s2"))
	assert.Equal(t, 0, store.Len("unknown"))
}

func TestSessionStore_RecentWindow(t *testing.T) {
	store := NewSessionStore()
	for _, total := range []float64{0.1, 0.2, 0.3, 0.4} {
		store.Append("s1", entryWithTotal(total))
	}

	recent := store.RecentWindow("s1", 2)
	require.Len(t, recent, 2)
	assert.Equal(t, 0.3, recent[0].Analysis.Overall.Total)
	assert.Equal(t, 0.4, recent[1].Analysis.Overall.Total)

	all := store.RecentWindow("s1", 10)
	assert.Len(t, all, 4)
}

func TestCalculateProgress(t *testing.T) {
	t.Run("EmptySession", func(t *testing.T) {
		store := NewSessionStore()
		report := store.CalculateProgress("nope")
		assert.Equal(t, TrendInsufficientData, report.Trend)
		assert.Zero(t, report.Improvement)
	})

	t.Run("SingleEntry", func(t *testing.T) {
		store := NewSessionStore()
		store.Append("s1", entryWithTotal(0.5))
		assert.Equal(t, TrendInsufficientData, store.CalculateProgress("s1").Trend)
	})

	t.Run("Improving", func(t *testing.T) {
		store := NewSessionStore()
		for _, total := range []float64{0.2, 0.2, 0.2, 0.8, 0.8, 0.8} {
			store.Append("s1", entryWithTotal(total))
		}

		report := store.CalculateProgress("s1")
		assert.Equal(t, TrendImproving, report.Trend)
		assert.InDelta(t, 0.6, report.Improvement, 1e-9)
		assert.InDelta(t, 0.8, report.CurrentScore, 1e-9)
		assert.InDelta(t, 0.2, report.PreviousScore, 1e-9)
	})

	t.Run("Declining", func(t *testing.T) {
		store := NewSessionStore()
		for _, total := range []float64{0.9, 0.9, 0.9, 0.3, 0.3, 0.3} {
			store.Append("s1", entryWithTotal(total))
		}
		report := store.CalculateProgress("s1")
		assert.Equal(t, TrendDeclining, report.Trend)
		assert.InDelta(t, -0.6, report.Improvement, 1e-9)
	})

	t.Run("StableInsideBand", func(t *testing.T) {
		store := NewSessionStore()
		for _, total := range []float64{0.5, 0.5, 0.5, 0.55, 0.55, 0.55} {
			store.Append("s1", entryWithTotal(total))
		}
		assert.Equal(t, TrendStable, store.CalculateProgress("s1").Trend)
	})

	t.Run("TwoEntriesOlderGroupEmpty", func(t *testing.T) {
		store := NewSessionStore()
		store.Append("s1", entryWithTotal(0.2))
		store.Append("s1", entryWithTotal(0.2))
		// Both entries fall into the recent window; the older group is
		// empty, so the trend is still insufficient_data.
		assert.Equal(t, TrendInsufficientData, store.CalculateProgress("s1").Trend)
	})

	t.Run("FourEntries", func(t *testing.T) {
		store := NewSessionStore()
		for _, total := range []float64{0.1, 0.6, 0.6, 0.6} {
			store.Append("s1", entryWithTotal(total))
		}
		report := store.CalculateProgress("s1")
		assert.Equal(t, TrendImproving, report.Trend)
		assert.InDelta(t, 0.5, report.Improvement, 1e-9)
	})
}

func TestSessionStore_ConcurrentAppendsAreNotLost(t *testing.T) {
	store := NewSessionStore()

	var wg sync.WaitGroup
	const writers = 8
	const perWriter = 50
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWriter; j++ {
				store.Append("shared", entryWithTotal(0.5))
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, writers*perWriter, store.Len("shared"))
}

func TestSessionStore_SessionsAreIndependent(t *testing.T) {
	store := NewSessionStore()
	store.Append("a", entryWithTotal(0.9))
	store.Append("b", entryWithTotal(0.1))

	assert.Equal(t, 1, store.Len("a"))
	assert.Equal(t, 1, store.Len("b"))
	assert.Equal(t, 0.9, store.History("a")[0].Analysis.Overall.Total)
}
