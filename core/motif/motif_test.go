package motif

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"motifscan-core/dna"
)

func TestGetKnownMotifs(t *testing.T) {
	tata, ok := Get("TATA_BOX")
	require.True(t, ok)
	assert.Equal(t, "TATAAA", tata.Sequence)
	assert.Equal(t, "promoter", tata.Category)

	ecori, ok := Get("EcoRI")
	require.True(t, ok)
	assert.Equal(t, "GAATTC", ecori.Sequence)
	assert.Equal(t, 1, ecori.CutPosition)
	assert.Equal(t, "sticky", ecori.Overhang)
}

func TestGetUnknown(t *testing.T) {
	_, ok := Get("NO_SUCH_MOTIF")
	assert.False(t, ok)

	_, ok = Sequence("NO_SUCH_MOTIF")
	assert.False(t, ok)
}

func TestSequence(t *testing.T) {
	seq, ok := Sequence("PRIBNOW_BOX")
	require.True(t, ok)
	assert.Equal(t, "TATAAT", seq)
}

func TestNamesCoverAllCategories(t *testing.T) {
	names := Names()
	assert.Len(t, names, 9)
	assert.Contains(t, names, "BamHI")
	assert.Contains(t, names, "CpG_DINUCLEOTIDE")
	assert.IsIncreasing(t, names)
}

func TestByCategory(t *testing.T) {
	res := ByCategory("restriction")
	require.Len(t, res, 5)
	for _, m := range res {
		assert.Equal(t, "restriction", m.Category)
	}
	assert.Empty(t, ByCategory("unknown"))
}

func TestCategories(t *testing.T) {
	assert.Equal(t, []string{"promoter", "restriction", "cpg"}, Categories())
}

// Every entry ships a name, a sequence, and a category; all sequences are
// IUPAC uppercase (the Kozak consensus legitimately uses R).
func TestTableIntegrity(t *testing.T) {
	all := All()
	require.Len(t, all, 9)
	for _, m := range all {
		assert.NotEmpty(t, m.Name)
		assert.NotEmpty(t, m.Category)
		assert.NotEmpty(t, m.Sequence)
		if m.Name == "KOZAK_SEQUENCE" {
			continue
		}
		_, err := dna.Validate(m.Sequence)
		assert.NoError(t, err, "motif %s", m.Name)
	}
}
