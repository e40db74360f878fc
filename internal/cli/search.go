package cli

import (
	"github.com/spf13/cobra"

	"motifscan-core/engine"
	"motifscan/internal/logger"
)

var (
	searchPattern string
	searchMotif   string
	searchSeq     string
	searchThreads int
)

var searchCmd = &cobra.Command{
	Use:   "search [fasta...]",
	Short: "Find one pattern with the single-pattern automaton",
	Long: `Search builds a deterministic automaton for one pattern and scans the
given FASTA files (or a literal sequence) in a single linear pass.
Overlapping occurrences are all reported; an N in the scanned text
matches any base.`,
	Example: `  motifscan search -p ATA genome.fasta
  motifscan search -m TATA_BOX -o json genome.fasta.gz
  motifscan search -p ACG --seq AACGTACG`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVarP(&searchPattern, "pattern", "p", "", "DNA pattern (A/C/G/T/N)")
	searchCmd.Flags().StringVarP(&searchMotif, "motif", "m", "", "named motif from the reference table")
	searchCmd.Flags().StringVar(&searchSeq, "seq", "", "scan this literal sequence instead of FASTA input")
	searchCmd.Flags().IntVarP(&searchThreads, "threads", "t", 0, "worker threads (0=all CPUs)")
}

func runSearch(cmd *cobra.Command, args []string) error {
	pattern, err := resolvePattern(searchPattern, searchMotif)
	if err != nil {
		return err
	}

	dfa, err := engine.NewDFA(pattern, engine.WithLogger(logger.Get()))
	if err != nil {
		return err
	}

	rows, err := collectRows(cmd.Context(), dfa, searchSeq, args, searchThreads)
	if err != nil {
		return err
	}
	if err := writeRows(cmd.OutOrStdout(), rows); err != nil {
		return err
	}
	if len(rows) == 0 {
		return errNoMatches
	}
	return nil
}
