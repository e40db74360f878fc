package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"motifscan-core/dna"
	"motifscan-core/engine"
	"motifscan-core/motif"
	"motifscan/internal/logger"
	"motifscan/internal/output"
	"motifscan/internal/patterns"
)

var (
	scanPatterns []string
	scanMotifs   []string
	scanFile     string
	scanCategory string
	scanSeq      string
	scanThreads  int
)

var scanCmd = &cobra.Command{
	Use:   "scan [fasta...]",
	Short: "Find many patterns at once with the Aho-Corasick automaton",
	Long: `Scan builds one multi-pattern automaton over every requested pattern
and reports all occurrences of all of them in a single pass per
sequence, including patterns that overlap or end at the same position.`,
	Example: `  motifscan scan -p GAATTC -p GGATCC genome.fasta
  motifscan scan --category restriction genome.fasta
  motifscan scan --patterns-file probes.tsv -o table genome.fasta`,
	RunE: runScan,
}

func init() {
	scanCmd.Flags().StringArrayVarP(&scanPatterns, "pattern", "p", nil, "DNA pattern (repeatable)")
	scanCmd.Flags().StringArrayVarP(&scanMotifs, "motif", "m", nil, "named motif from the reference table (repeatable)")
	scanCmd.Flags().StringVar(&scanFile, "patterns-file", "", "TSV file of patterns: 'id<TAB>sequence' per line")
	scanCmd.Flags().StringVar(&scanCategory, "category", "", "add every motif in a reference category")
	scanCmd.Flags().StringVar(&scanSeq, "seq", "", "scan this literal sequence instead of FASTA input")
	scanCmd.Flags().IntVarP(&scanThreads, "threads", "t", 0, "worker threads (0=all CPUs)")
}

// gatherPatterns merges the four pattern sources into parallel name and
// sequence lists, in a stable order: -p flags, -m flags, file, category.
func gatherPatterns() (names, seqs []string, err error) {
	add := func(name, seq string) {
		names = append(names, name)
		seqs = append(seqs, seq)
	}
	for _, p := range scanPatterns {
		seq, err := dna.Validate(p)
		if err != nil {
			return nil, nil, err
		}
		add("", seq)
	}
	for _, name := range scanMotifs {
		seq, ok := motif.Sequence(name)
		if !ok {
			return nil, nil, fmt.Errorf("unknown motif %q (see 'motifscan motifs')", name)
		}
		add(name, seq)
	}
	if scanFile != "" {
		entries, err := patterns.LoadTSV(scanFile)
		if err != nil {
			return nil, nil, err
		}
		for _, e := range entries {
			add(e.ID, e.Seq)
		}
	}
	if scanCategory != "" {
		ms := motif.ByCategory(scanCategory)
		if len(ms) == 0 {
			return nil, nil, fmt.Errorf("unknown category %q (have: %v)", scanCategory, motif.Categories())
		}
		for _, m := range ms {
			add(m.Name, m.Sequence)
		}
	}
	if len(seqs) == 0 {
		return nil, nil, fmt.Errorf("no patterns: use --pattern, --motif, --patterns-file, or --category")
	}
	return names, seqs, nil
}

func runScan(cmd *cobra.Command, args []string) error {
	names, seqs, err := gatherPatterns()
	if err != nil {
		return err
	}

	ac, err := engine.NewAhoCorasick(seqs, engine.WithLogger(logger.Get()))
	if err != nil {
		return err
	}

	rows, err := collectRows(cmd.Context(), ac, scanSeq, args, scanThreads)
	if err != nil {
		return err
	}
	output.ApplyNames(rows, names)
	if err := writeRows(cmd.OutOrStdout(), rows); err != nil {
		return err
	}
	if len(rows) == 0 {
		return errNoMatches
	}
	return nil
}
