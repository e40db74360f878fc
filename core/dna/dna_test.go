package dna

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCode(t *testing.T) {
	assert.Equal(t, 0, Code('A'))
	assert.Equal(t, 1, Code('c'))
	assert.Equal(t, 2, Code('G'))
	assert.Equal(t, 3, Code('t'))
	assert.Equal(t, 4, Code('N'))
	assert.Equal(t, -1, Code('X'))
	assert.Equal(t, -1, Code('>'))
}

func TestSymbolRoundTrip(t *testing.T) {
	for c := 0; c < AlphabetSize; c++ {
		assert.Equal(t, c, Code(Symbol(c)))
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "ACGT", Normalize(" ac g\tT "))
	assert.Equal(t, "ACGN", Normalize(`"acgn"`))
	assert.Equal(t, "", Normalize("  "))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{"clean", "ACGT", "ACGT", false},
		{"lowercase", "acgtn", "ACGTN", false},
		{"spaced", "AC GT", "ACGT", false},
		{"empty", "", "", true},
		{"whitespace only", " \t", "", true},
		{"bad base", "ACXGT", "", true},
		{"iupac beyond N", "ACRGT", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Validate(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClean(t *testing.T) {
	assert.Equal(t, "ACGTN", Clean("ac-gt*n!"))
	assert.Equal(t, "", Clean("xyz123"))
}

func TestGCContent(t *testing.T) {
	assert.InDelta(t, 50.0, GCContent([]byte("ATGC")), 1e-9)
	assert.InDelta(t, 0.0, GCContent([]byte("AAAA")), 1e-9)
	assert.InDelta(t, 100.0, GCContent([]byte("gcgc")), 1e-9)
	assert.InDelta(t, 0.0, GCContent(nil), 1e-9)
}

func TestRevComp(t *testing.T) {
	assert.Equal(t, []byte("GCAT"), RevComp([]byte("ATGC")))
	assert.Equal(t, []byte("NACGT"), RevComp([]byte("ACGTN")))
	assert.Empty(t, RevComp(nil))

	// Round trip is the identity.
	seq := []byte("GATTACANNT")
	assert.Equal(t, seq, RevComp(RevComp(seq)))
}

func TestSplit(t *testing.T) {
	chunks := Split([]byte("ACGTACGTA"), 4)
	require.Len(t, chunks, 3)
	assert.Equal(t, []byte("ACGT"), chunks[0])
	assert.Equal(t, []byte("ACGT"), chunks[1])
	assert.Equal(t, []byte("A"), chunks[2])

	assert.Len(t, Split([]byte("ACGT"), 0), 1)
	assert.Nil(t, Split(nil, 4))
}
