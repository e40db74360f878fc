package engine

import (
	"motifscan-core/dna"
)

/*
Single-pattern automaton.

States are 0..m where m = len(pattern); state m accepts. The transition
table is total: every state has a next state for every alphabet symbol, so
the scan is one table lookup per byte. A text-side N always advances (the
wildcard rule); mismatches fold through the failure function. Pattern-side
N is not special beyond literal equality.
*/

// DFA matches one pattern against arbitrarily many texts.
type DFA struct {
	pattern string
	failure []int
	next    [][dna.AlphabetSize]int
}

// NewDFA builds the automaton for pattern. The pattern is normalized to
// uppercase first; a pattern that is empty after normalization yields
// ErrEmptyPattern.
func NewDFA(pattern string, opts ...Option) (*DFA, error) {
	o := buildOptions(opts)
	p := dna.Normalize(pattern)
	if len(p) == 0 {
		return nil, ErrEmptyPattern
	}
	d := &DFA{pattern: p}
	d.buildFailure()
	d.buildTransitions()
	o.built("dfa built", "pattern", p, "states", len(p)+1)
	return d, nil
}

// Pattern returns the normalized pattern the automaton was built from.
func (d *DFA) Pattern() string { return d.pattern }

// buildFailure fills the classical prefix function: failure[i] is the
// length of the longest proper prefix of pattern[:i+1] that is also its
// suffix.
func (d *DFA) buildFailure() {
	p := d.pattern
	d.failure = make([]int, len(p))
	j := 0
	for i := 1; i < len(p); i++ {
		for j > 0 && p[i] != p[j] {
			j = d.failure[j-1]
		}
		if p[i] == p[j] {
			j++
		}
		d.failure[i] = j
	}
}

// buildTransitions materializes next[state][symbol] for every state and
// symbol. The accepting row is anchored at failure[m-1] so the scan can
// pick up overlapping occurrences without restarting from 0.
func (d *DFA) buildTransitions() {
	p := d.pattern
	m := len(p)
	d.next = make([][dna.AlphabetSize]int, m+1)
	for state := 0; state < m; state++ {
		for c := 0; c < dna.AlphabetSize; c++ {
			b := dna.Symbol(c)
			if b == dna.Wildcard || b == p[state] {
				d.next[state][c] = state + 1
				continue
			}
			d.next[state][c] = d.fold(state, b)
		}
	}
	d.next[m] = d.next[d.failure[m-1]]
}

// fold computes the next state on a mismatch at state by sliding the
// pattern along its failure function.
func (d *DFA) fold(state int, b byte) int {
	p := d.pattern
	j := 0
	if state > 0 {
		j = d.failure[state-1]
	}
	for j > 0 && p[j] != b {
		j = d.failure[j-1]
	}
	if p[j] == b {
		return j + 1
	}
	return 0
}

// Match scans text once, left to right, and returns every occurrence in
// ascending position order. Overlapping occurrences are all reported. A
// byte outside the alphabet resets the scan instead of failing.
func (d *DFA) Match(text []byte) []Match {
	m := len(d.pattern)
	var out []Match
	state := 0
	for i := 0; i < len(text); i++ {
		c := dna.Code(text[i])
		if c < 0 {
			state = 0
			continue
		}
		state = d.next[state][c]
		if state == m {
			out = append(out, Match{
				Pos:     i - m + 1,
				Length:  m,
				Pattern: d.pattern,
				Score:   1.0,
			})
			state = d.failure[m-1]
		}
	}
	return out
}
