// Package dna defines the five-symbol DNA alphabet {A,C,G,T,N} and the
// small sequence utilities shared by the matching engines and the CLI glue.
package dna

const (
	// AlphabetSize is the number of symbols the engines index on.
	AlphabetSize = 5
	// Wildcard is the symbol that matches anything when read from text.
	Wildcard = 'N'
)

// alphabet lists the canonical symbols in code order.
var alphabet = [AlphabetSize]byte{'A', 'C', 'G', 'T', 'N'}

// codes maps a byte to its symbol code (0..4), or -1 when the byte is
// outside the alphabet. Both cases are accepted.
var codes [256]int8

func init() {
	for i := range codes {
		codes[i] = -1
	}
	for c, b := range alphabet {
		codes[b] = int8(c)
		codes[b+'a'-'A'] = int8(c)
	}
}

// Code returns the symbol code for b, or -1 if b is not A/C/G/T/N.
func Code(b byte) int { return int(codes[b]) }

// Symbol returns the canonical (uppercase) byte for a symbol code.
func Symbol(code int) byte { return alphabet[code] }
