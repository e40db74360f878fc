package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/viper"

	"motifscan-core/dna"
	"motifscan-core/motif"
	"motifscan/internal/output"
	"motifscan/internal/pipeline"
	"motifscan/pkg/api"
)

// resolvePattern turns the --pattern/--motif pair into one validated
// pattern sequence.
func resolvePattern(pattern, motifName string) (string, error) {
	switch {
	case pattern != "" && motifName != "":
		return "", fmt.Errorf("--pattern and --motif are mutually exclusive")
	case pattern != "":
		return dna.Validate(pattern)
	case motifName != "":
		seq, ok := motif.Sequence(motifName)
		if !ok {
			return "", fmt.Errorf("unknown motif %q (see 'motifscan motifs')", motifName)
		}
		return seq, nil
	default:
		return "", fmt.Errorf("one of --pattern or --motif is required")
	}
}

// collectRows scans either a literal sequence or the FASTA inputs and
// returns deterministic, sorted wire rows.
func collectRows(ctx context.Context, s pipeline.Scanner, literal string, files []string, workers int) ([]api.MatchV1, error) {
	if literal != "" {
		seq, err := dna.Validate(literal)
		if err != nil {
			return nil, fmt.Errorf("--seq: %w", err)
		}
		return output.FromEngine("input", "", s.Match([]byte(seq))), nil
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no input: pass FASTA files (or '-' for stdin), or --seq")
	}

	var rows []api.MatchV1
	err := pipeline.ForEachRecord(ctx, pipeline.Config{Workers: workers}, files, s,
		func(rm pipeline.RecordMatches) error {
			rows = append(rows, output.FromEngine(rm.SequenceID, rm.SourceFile, rm.Matches)...)
			return nil
		})
	if err != nil {
		return nil, err
	}
	output.SortRows(rows)
	return rows, nil
}

// writeRows renders rows in the configured format. A broken pipe from a
// downstream consumer is not an error.
func writeRows(w io.Writer, rows []api.MatchV1) error {
	err := output.Write(viper.GetString("output"), w, rows, !viper.GetBool("no-header"))
	if output.IsBrokenPipe(err) {
		return nil
	}
	return err
}
