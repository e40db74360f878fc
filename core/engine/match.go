// Package engine implements exact, linear-time DNA pattern matching: a
// single-pattern automaton built from a KMP-style failure function and a
// multi-pattern Aho-Corasick automaton. Both are immutable once built and
// safe to share between concurrent scans.
package engine

import (
	"errors"
	"sort"
)

// Match is one exact occurrence of a pattern in a scanned text. Pos is the
// 0-based start offset; Score is fixed at 1.0 for exact matches.
type Match struct {
	Pos       int
	Length    int
	Pattern   string
	PatternID int
	Score     float64
}

var (
	// ErrEmptyPattern is returned when a single-pattern automaton is built
	// from a zero-length pattern.
	ErrEmptyPattern = errors.New("engine: empty pattern")

	// ErrEmptyPatternSet is returned when a multi-pattern automaton is
	// built from an empty pattern list.
	ErrEmptyPatternSet = errors.New("engine: empty pattern set")
)

// sortMatches orders matches ascending by start position, then pattern id.
func sortMatches(ms []Match) {
	sort.Slice(ms, func(i, j int) bool {
		if ms[i].Pos != ms[j].Pos {
			return ms[i].Pos < ms[j].Pos
		}
		return ms[i].PatternID < ms[j].PatternID
	})
}
