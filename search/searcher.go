package search

import (
	"time"
)

const (
	valueInfinite = 1 << 30
	nodeCheckMask = 1023 // check the clock every 1024 nodes
)

// Searcher owns the mutable state a search run consults and updates:
// the transposition table and history table persist across calls; the
// killer table and per-call bookkeeping (node count, clock, stop flag)
// are reset at the start of each Search. Concurrent Search
// calls on the same Searcher are undefined behavior — callers must
// serialize.
type Searcher struct {
	tt      *TranspositionTable
	killers *killerTable
	history *historyTable

	nodes     int64
	startTime time.Time
	budget    time.Duration
	stop      bool
}

// NewSearcher creates a Searcher with a transposition table sized for
// ttMegabytes MB. The history table starts empty and accumulates
// across every subsequent Search call on this instance.
func NewSearcher(ttMegabytes int) *Searcher {
	return &Searcher{
		tt:      NewTranspositionTable(ttMegabytes),
		killers: newKillerTable(),
		history: newHistoryTable(),
	}
}

// TranspositionTable exposes the underlying table, mainly so callers
// can report hit/miss/collision statistics.
func (s *Searcher) TranspositionTable() *TranspositionTable {
	return s.tt
}

func (s *Searcher) checkTime() {
	if s.nodes&nodeCheckMask != 0 {
		return
	}
	if s.budget > 0 && time.Since(s.startTime) > s.budget {
		s.stop = true
	}
}

func (s *Searcher) incNode() {
	s.nodes++
	s.checkTime()
}
