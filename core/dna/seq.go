package dna

import (
	"fmt"
	"unicode"
)

// Normalize strips whitespace and quote characters and uppercases bases.
func Normalize(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if unicode.IsSpace(rune(c)) || c == '\'' || c == '"' {
			continue
		}
		if 'a' <= c && c <= 'z' {
			c -= 'a' - 'A'
		}
		out = append(out, c)
	}
	return string(out)
}

// Validate returns the normalized sequence or an error naming the first
// offending byte. Empty input is rejected.
func Validate(raw string) (string, error) {
	s := Normalize(raw)
	if s == "" {
		return "", fmt.Errorf("empty sequence")
	}
	for i := 0; i < len(s); i++ {
		if Code(s[i]) < 0 {
			return "", fmt.Errorf("invalid base %q at %d; allowed: A C G T N", s[i], i+1)
		}
	}
	return s, nil
}

// Clean uppercases s and drops every byte outside the alphabet.
func Clean(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if 'a' <= c && c <= 'z' {
			c -= 'a' - 'A'
		}
		if Code(c) >= 0 {
			out = append(out, c)
		}
	}
	return string(out)
}

// GCContent returns the percentage of G and C bases in seq (0..100).
func GCContent(seq []byte) float64 {
	if len(seq) == 0 {
		return 0
	}
	gc := 0
	for _, b := range seq {
		switch b {
		case 'G', 'C', 'g', 'c':
			gc++
		}
	}
	return float64(gc) / float64(len(seq)) * 100
}

// Split cuts seq into consecutive chunks of at most chunkSize bytes. The
// chunks alias seq; callers must not mutate them.
func Split(seq []byte, chunkSize int) [][]byte {
	if chunkSize <= 0 || len(seq) == 0 {
		if len(seq) == 0 {
			return nil
		}
		return [][]byte{seq}
	}
	out := make([][]byte, 0, (len(seq)+chunkSize-1)/chunkSize)
	for off := 0; off < len(seq); off += chunkSize {
		end := off + chunkSize
		if end > len(seq) {
			end = len(seq)
		}
		out = append(out, seq[off:end])
	}
	return out
}
