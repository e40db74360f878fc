// Package bench measures engine scan throughput on synthetic DNA and
// checks the linear-scaling contract of the automata. It is a collaborator
// of the matching core, not part of it: nothing here is asserted inside
// the engines themselves.
package bench

import (
	"math/rand"
	"time"

	"motifscan-core/engine"
)

// Result summarizes repeated scans of one automaton over one text.
type Result struct {
	Algorithm  string
	TextSize   int
	Patterns   int
	Iterations int
	Matches    int
	Min        time.Duration
	Max        time.Duration
	Avg        time.Duration
	Total      time.Duration
}

// RandomDNA returns an n-base sequence with approximately gcPercent
// percent G+C, shuffled with rng.
func RandomDNA(n int, gcPercent float64, rng *rand.Rand) []byte {
	if n <= 0 {
		return nil
	}
	gc := int(float64(n)*gcPercent/100 + 0.5)
	if gc > n {
		gc = n
	}
	seq := make([]byte, n)
	for i := 0; i < gc; i++ {
		seq[i] = "GC"[rng.Intn(2)]
	}
	for i := gc; i < n; i++ {
		seq[i] = "AT"[rng.Intn(2)]
	}
	rng.Shuffle(n, func(i, j int) { seq[i], seq[j] = seq[j], seq[i] })
	return seq
}

// MeasureDFA times iterations scans of pattern over text with the
// single-pattern automaton. Construction cost is excluded.
func MeasureDFA(pattern string, text []byte, iterations int) (Result, error) {
	d, err := engine.NewDFA(pattern)
	if err != nil {
		return Result{}, err
	}
	r := Result{Algorithm: "dfa", TextSize: len(text), Patterns: 1}
	return measure(r, iterations, func() int { return len(d.Match(text)) }), nil
}

// MeasureAC times iterations scans of the pattern set over text with the
// multi-pattern automaton. Construction cost is excluded.
func MeasureAC(patterns []string, text []byte, iterations int) (Result, error) {
	a, err := engine.NewAhoCorasick(patterns)
	if err != nil {
		return Result{}, err
	}
	r := Result{Algorithm: "aho-corasick", TextSize: len(text), Patterns: len(patterns)}
	return measure(r, iterations, func() int { return len(a.Match(text)) }), nil
}

func measure(r Result, iterations int, scan func() int) Result {
	if iterations < 1 {
		iterations = 1
	}
	r.Iterations = iterations
	for i := 0; i < iterations; i++ {
		start := time.Now()
		n := scan()
		elapsed := time.Since(start)
		r.Matches = n
		r.Total += elapsed
		if i == 0 || elapsed < r.Min {
			r.Min = elapsed
		}
		if elapsed > r.Max {
			r.Max = elapsed
		}
	}
	r.Avg = r.Total / time.Duration(iterations)
	return r
}

// Comparison holds a single-pattern and a multi-pattern run over the same
// text.
type Comparison struct {
	DFA     Result
	AC      Result
	Speedup float64 // AC avg / DFA avg
	Faster  string
}

// Compare benchmarks both engines on the same text: pattern through the
// DFA, patterns through Aho-Corasick.
func Compare(pattern string, patterns []string, text []byte, iterations int) (Comparison, error) {
	dr, err := MeasureDFA(pattern, text, iterations)
	if err != nil {
		return Comparison{}, err
	}
	ar, err := MeasureAC(patterns, text, iterations)
	if err != nil {
		return Comparison{}, err
	}
	c := Comparison{DFA: dr, AC: ar}
	if dr.Avg > 0 {
		c.Speedup = float64(ar.Avg) / float64(dr.Avg)
	}
	c.Faster = "dfa"
	if ar.Avg < dr.Avg {
		c.Faster = "aho-corasick"
	}
	return c, nil
}
