package dna

// complement maps each base to its Watson-Crick partner; N stays N and
// bytes outside the alphabet pass through unchanged.
var complement [256]byte

func init() {
	for i := range complement {
		complement[i] = byte(i)
	}
	pairs := [...][2]byte{{'A', 'T'}, {'C', 'G'}, {'G', 'C'}, {'T', 'A'}, {'N', 'N'}}
	for _, p := range pairs {
		complement[p[0]] = p[1]
		complement[p[0]+'a'-'A'] = p[1] + 'a' - 'A'
	}
}

// RevComp returns the reverse complement of seq in a fresh slice.
func RevComp(seq []byte) []byte {
	out := make([]byte, len(seq))
	for i, j := 0, len(seq)-1; j >= 0; i, j = i+1, j-1 {
		out[i] = complement[seq[j]]
	}
	return out
}
