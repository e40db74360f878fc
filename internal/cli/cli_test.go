package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	// Flag values are package globals; clear carryover between runs.
	searchPattern, searchMotif, searchSeq = "", "", ""
	scanPatterns, scanMotifs = nil, nil
	scanFile, scanCategory, scanSeq = "", "", ""
	motifsCategory = ""
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestResolvePattern(t *testing.T) {
	tests := []struct {
		name      string
		pattern   string
		motifName string
		want      string
		wantErr   bool
	}{
		{"explicit pattern", "acgt", "", "ACGT", false},
		{"named motif", "", "TATA_BOX", "TATAAA", false},
		{"both given", "ACG", "TATA_BOX", "", true},
		{"neither given", "", "", "", true},
		{"unknown motif", "", "NOPE", "", true},
		{"invalid pattern", "ACXG", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolvePattern(tt.pattern, tt.motifName)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "motifscan version")
}

func TestMotifsCommandList(t *testing.T) {
	out, err := execute(t, "motifs")
	require.NoError(t, err)
	assert.Contains(t, out, "TATA_BOX")
	assert.Contains(t, out, "GAATTC")
}

func TestMotifsCommandSingle(t *testing.T) {
	out, err := execute(t, "motifs", "EcoRI")
	require.NoError(t, err)
	assert.Contains(t, out, "GAATTC")
	assert.Contains(t, out, "sticky")
}

func TestMotifsCommandUnknown(t *testing.T) {
	_, err := execute(t, "motifs", "NO_SUCH")
	require.Error(t, err)
}

func TestSearchLiteralSequence(t *testing.T) {
	out, err := execute(t, "search", "-p", "ACG", "--seq", "AACGTACG")
	require.NoError(t, err)
	assert.Contains(t, out, "input\tACG\t\t1\t4\t3\t1.0\t")
	assert.Contains(t, out, "input\tACG\t\t5\t8\t3\t1.0\t")
}

func TestSearchNoMatchesExitPath(t *testing.T) {
	_, err := execute(t, "search", "-p", "GGGGGG", "--seq", "AAAA")
	require.ErrorIs(t, err, errNoMatches)
}

func TestSearchOnFasta(t *testing.T) {
	path := filepath.Join(t.TempDir(), "g.fasta")
	require.NoError(t, os.WriteFile(path, []byte(">chr1\nTTGAATTCAA\n"), 0o644))

	out, err := execute(t, "search", "-m", "EcoRI", path)
	require.NoError(t, err)
	assert.Contains(t, out, "chr1\tGAATTC\t\t2\t8\t6\t1.0\t"+path)
}

func TestScanCategoryOnLiteral(t *testing.T) {
	out, err := execute(t, "scan", "--category", "restriction", "--seq", "TTGAATTCAAGGATCC")
	require.NoError(t, err)
	assert.Contains(t, out, "GAATTC")
	assert.Contains(t, out, "EcoRI")
	assert.Contains(t, out, "GGATCC")
	assert.Contains(t, out, "BamHI")
}
