package engine

import (
	"motifscan-core/dna"
)

/*
Aho–Corasick multi-pattern automaton.

- the trie lives in a node arena addressed by integer index; children are
  fixed 5-wide arrays indexed by symbol code (0 => absent, root = state 0)
- failure links are plain indices set by BFS; each node's output set is
  extended with its failure target's set at build time, so one lookup per
  text position yields every pattern ending there
*/

// acNode is one state in the automaton.
type acNode struct {
	next [dna.AlphabetSize]int32 // 0 => absent (root is state 0)
	fail int32
	out  []int32 // pattern indexes whose occurrence ends at this state
}

// AhoCorasick matches a fixed set of patterns in one pass over the text.
type AhoCorasick struct {
	patterns []string
	nodes    []acNode
}

// NewAhoCorasick builds the automaton for patterns. The list must be
// non-empty; individual patterns that are empty (or carry bytes outside
// the alphabet, which no scanned text can ever present) contribute no trie
// path and simply never match.
func NewAhoCorasick(patterns []string, opts ...Option) (*AhoCorasick, error) {
	o := buildOptions(opts)
	if len(patterns) == 0 {
		return nil, ErrEmptyPatternSet
	}
	a := &AhoCorasick{
		patterns: make([]string, len(patterns)),
		nodes:    make([]acNode, 1), // state 0 = root
	}
	for i, p := range patterns {
		a.patterns[i] = dna.Normalize(p)
	}
	a.buildTrie()
	a.buildFailureLinks()
	o.built("aho-corasick built", "patterns", len(a.patterns), "states", len(a.nodes))
	return a, nil
}

// Patterns returns the normalized pattern list, indexed by PatternID.
func (a *AhoCorasick) Patterns() []string { return a.patterns }

// insertable reports whether p is non-empty and fully on the alphabet.
func insertable(p string) bool {
	if p == "" {
		return false
	}
	for k := 0; k < len(p); k++ {
		if dna.Code(p[k]) < 0 {
			return false
		}
	}
	return true
}

func (a *AhoCorasick) buildTrie() {
	for i, p := range a.patterns {
		if !insertable(p) {
			continue
		}
		cur := int32(0)
		for k := 0; k < len(p); k++ {
			c := dna.Code(p[k])
			if a.nodes[cur].next[c] == 0 {
				a.nodes = append(a.nodes, acNode{})
				a.nodes[cur].next[c] = int32(len(a.nodes) - 1)
			}
			cur = a.nodes[cur].next[c]
		}
		a.nodes[cur].out = append(a.nodes[cur].out, int32(i))
	}
}

// buildFailureLinks runs the standard BFS: the root fails to itself,
// depth-1 nodes fail to the root, and a deeper node reached on symbol c
// fails to its parent's failure chain's child on c (or the root).
func (a *AhoCorasick) buildFailureLinks() {
	queue := make([]int32, 0, len(a.nodes))
	for c := 0; c < dna.AlphabetSize; c++ {
		if child := a.nodes[0].next[c]; child != 0 {
			a.nodes[child].fail = 0
			queue = append(queue, child)
		}
	}
	for len(queue) > 0 {
		r := queue[0]
		queue = queue[1:]
		for c := 0; c < dna.AlphabetSize; c++ {
			s := a.nodes[r].next[c]
			if s == 0 {
				continue
			}
			queue = append(queue, s)
			f := a.nodes[r].fail
			for f > 0 && a.nodes[f].next[c] == 0 {
				f = a.nodes[f].fail
			}
			if a.nodes[f].next[c] != 0 {
				f = a.nodes[f].next[c]
			}
			a.nodes[s].fail = f
			if out := a.nodes[f].out; len(out) > 0 {
				a.nodes[s].out = append(a.nodes[s].out, out...)
			}
		}
	}
}

// Match scans text once and returns every occurrence of every pattern,
// ascending by position then pattern id. Multiple patterns may end at the
// same offset (a pattern that is a suffix of another, for instance); all
// are reported. A byte outside the alphabet resets the scan to the root
// and continues.
func (a *AhoCorasick) Match(text []byte) []Match {
	state := int32(0)
	var out []Match
	for i := 0; i < len(text); i++ {
		c := dna.Code(text[i])
		if c < 0 {
			state = 0
			continue
		}
		for state > 0 && a.nodes[state].next[c] == 0 {
			state = a.nodes[state].fail
		}
		if next := a.nodes[state].next[c]; next != 0 {
			state = next
		}
		for _, id := range a.nodes[state].out {
			p := a.patterns[id]
			out = append(out, Match{
				Pos:       i - len(p) + 1,
				Length:    len(p),
				Pattern:   p,
				PatternID: int(id),
				Score:     1.0,
			})
		}
	}
	sortMatches(out)
	return out
}
