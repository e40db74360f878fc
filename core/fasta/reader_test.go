package fasta

import (
	"bytes"
	"compress/gzip"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Multi-record input with wrapped lines, blank lines, and mixed case.
func TestStreamCtxParsesRecords(t *testing.T) {
	in := strings.NewReader(">seq1 sample description\nACGT\nacgt\n\n>seq2\nTTTT\n")

	var recs []Record
	err := StreamCtx(context.Background(), in, func(r Record) error {
		recs = append(recs, r)
		return nil
	})
	require.NoError(t, err)
	require.Len(t, recs, 2)

	assert.Equal(t, "seq1", recs[0].ID)
	assert.Equal(t, "sample description", recs[0].Description)
	assert.Equal(t, []byte("ACGTACGT"), recs[0].Seq)

	assert.Equal(t, "seq2", recs[1].ID)
	assert.Empty(t, recs[1].Description)
	assert.Equal(t, []byte("TTTT"), recs[1].Seq)
}

// Sequence data before any header still comes through, under a synthetic id.
func TestStreamCtxHeaderlessInput(t *testing.T) {
	var recs []Record
	err := StreamCtx(context.Background(), strings.NewReader("ACGT\nACGT\n"), func(r Record) error {
		recs = append(recs, r)
		return nil
	})
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "unnamed", recs[0].ID)
	assert.Equal(t, []byte("ACGTACGT"), recs[0].Seq)
}

// A canceled context stops the parse promptly with ctx.Err().
func TestStreamCtxCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := StreamCtx(ctx, strings.NewReader(">a\nACGT\n>b\nACGT\n"), func(Record) error {
		t.Fatal("emit after cancel")
		return nil
	})
	require.ErrorIs(t, err, context.Canceled)
}

func TestReadAllPlainFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.fasta")
	require.NoError(t, os.WriteFile(path, []byte(">chr1\nACGTACGT\n"), 0o644))

	recs, err := ReadAll(path)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "chr1", recs[0].ID)
	assert.Equal(t, []byte("ACGTACGT"), recs[0].Seq)
}

// Gzip input is detected by magic bytes regardless of file extension.
func TestReadAllGzip(t *testing.T) {
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	_, err := gw.Write([]byte(">gz\nACGT\n"))
	require.NoError(t, err)
	require.NoError(t, gw.Close())

	dir := t.TempDir()
	path := filepath.Join(dir, "in.fasta") // deliberately no .gz suffix
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	recs, err := ReadAll(path)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "gz", recs[0].ID)
	assert.Equal(t, []byte("ACGT"), recs[0].Seq)
}

func TestReadAllMissingFile(t *testing.T) {
	_, err := ReadAll(filepath.Join(t.TempDir(), "nope.fasta"))
	require.Error(t, err)
}

// emit errors propagate to the caller unchanged.
func TestStreamCtxEmitError(t *testing.T) {
	boom := assert.AnError
	err := StreamCtx(context.Background(), strings.NewReader(">a\nACGT\n"), func(Record) error {
		return boom
	})
	require.ErrorIs(t, err, boom)
}
