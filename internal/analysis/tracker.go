package analysis

import (
	"sync"
	"time"

	"github.com/argumentor/analysis-service/internal/models"
)

// Trend descriptors returned by CalculateProgress.
const (
	TrendImproving        = "improving"
	TrendStable           = "stable"
	TrendDeclining        = "declining"
	TrendInsufficientData = "insufficient_data"
)

// trendBand is the improvement magnitude that separates "stable" from
// a real trend in either direction.
const trendBand = 0.1

// progressWindow is how many recent entries form each comparison group.
const progressWindow = 3

// SessionEntry is one recorded analysis with its generated feedback.
type SessionEntry struct {
	Timestamp time.Time             `json:"timestamp"`
	Analysis  models.Analysis       `json:"analysis"`
	Feedback  []models.FeedbackItem `json:"feedback"`
}

// ProgressReport describes the score trend of a session.
type ProgressReport struct {
	Trend         string  `json:"trend"`
	Improvement   float64 `json:"improvement"`
	CurrentScore  float64 `json:"current_score"`
	PreviousScore float64 `json:"previous_score"`
	EntryCount    int     `json:"entry_count"`
}

// SessionStore owns the per-session analysis histories. Histories are
// append-only and ordered by insertion; the store is the sole mutator.
// It is caller-owned state, passed into whatever needs it — there is
// no package-level instance.
//
// One lock serializes appends, so concurrent submissions for the same
// session cannot lose or duplicate entries, and the trend windows stay
// well-defined. Reads take the shared lock.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string][]SessionEntry
}

// NewSessionStore creates an empty store.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string][]SessionEntry),
	}
}

// Append records one analysis+feedback pair for the session.
func (s *SessionStore) Append(sessionID string, entry SessionEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = append(s.sessions[sessionID], entry)
}

// History returns a copy of the session's full history, oldest first.
func (s *SessionStore) History(sessionID string) []SessionEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entries := s.sessions[sessionID]
	out := make([]SessionEntry, len(entries))
	copy(out, entries)
	return out
}

// RecentWindow returns a copy of the last n entries, oldest first.
func (s *SessionStore) RecentWindow(sessionID string, n int) []SessionEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entries := s.sessions[sessionID]
	if n > len(entries) {
		n = len(entries)
	}
	out := make([]SessionEntry, n)
	copy(out, entries[len(entries)-n:])
	return out
}

// Len returns how many entries the session has.
func (s *SessionStore) Len(sessionID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions[sessionID])
}

// CalculateProgress compares the mean Overall.Total of the last three
// entries against the three before them. Fewer than two entries, or an
// empty "older" group, yields insufficient_data. Improvement beyond
// ±0.1 classifies as improving/declining; anything inside the band is
// stable.
func (s *SessionStore) CalculateProgress(sessionID string) ProgressReport {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := s.sessions[sessionID]
	if len(entries) < 2 {
		return ProgressReport{
			Trend:      TrendInsufficientData,
			EntryCount: len(entries),
		}
	}

	recentStart := len(entries) - progressWindow
	if recentStart < 0 {
		recentStart = 0
	}
	recent := entries[recentStart:]

	olderStart := recentStart - progressWindow
	if olderStart < 0 {
		olderStart = 0
	}
	older := entries[olderStart:recentStart]
	if len(older) == 0 {
		return ProgressReport{
			Trend:      TrendInsufficientData,
			EntryCount: len(entries),
		}
	}

	current := meanTotal(recent)
	previous := meanTotal(older)
	improvement := current - previous

	trend := TrendStable
	if improvement > trendBand {
		trend = TrendImproving
	} else if improvement < -trendBand {
		trend = TrendDeclining
	}

	return ProgressReport{
		Trend:         trend,
		Improvement:   improvement,
		CurrentScore:  current,
		PreviousScore: previous,
		EntryCount:    len(entries),
	}
}

func meanTotal(entries []SessionEntry) float64 {
	if len(entries) == 0 {
		return 0
	}
	sum := 0.0
	for _, e := range entries {
		sum += e.Analysis.Overall.Total
	}
	return sum / float64(len(entries))
}
