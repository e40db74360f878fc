package engine

import (
	"math/rand"
	"testing"
)

func benchText(n int) []byte {
	rng := rand.New(rand.NewSource(1))
	const bases = "ACGT"
	b := make([]byte, n)
	for i := range b {
		b[i] = bases[rng.Intn(4)]
	}
	return b
}

func BenchmarkDFAMatch(b *testing.B) {
	d, err := NewDFA("TATAAA")
	if err != nil {
		b.Fatal(err)
	}
	text := benchText(1 << 20)
	b.SetBytes(int64(len(text)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = d.Match(text)
	}
}

func BenchmarkAhoCorasickMatch(b *testing.B) {
	a, err := NewAhoCorasick([]string{"TATAAA", "GAATTC", "GGATCC", "AAGCTT", "GATATC", "CTGCAG"})
	if err != nil {
		b.Fatal(err)
	}
	text := benchText(1 << 20)
	b.SetBytes(int64(len(text)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = a.Match(text)
	}
}

func BenchmarkDFABuild(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := NewDFA("GCCGCCATGG"); err != nil {
			b.Fatal(err)
		}
	}
}
