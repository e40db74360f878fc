package cli

import (
	"fmt"
	"math/rand"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"motifscan-core/bench"
	"motifscan-core/motif"
)

var (
	benchPattern    string
	benchSizes      []int
	benchGC         float64
	benchIterations int
	benchSeed       int64
	benchTolerance  float64
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Benchmark the engines on synthetic DNA",
	Long: `Bench scans random sequences of increasing length, checks that scan
time grows linearly with text size, and compares the single-pattern
automaton against Aho-Corasick on the largest text.`,
	Args: cobra.NoArgs,
	RunE: runBench,
}

func init() {
	benchCmd.Flags().StringVarP(&benchPattern, "pattern", "p", "TATAAA", "pattern for the scaling ladder")
	benchCmd.Flags().IntSliceVar(&benchSizes, "sizes", nil, "text sizes in bp (default 1000,10000,100000,1000000)")
	benchCmd.Flags().Float64Var(&benchGC, "gc", 50, "GC percentage of the generated texts")
	benchCmd.Flags().IntVar(&benchIterations, "iterations", 3, "scans per measurement")
	benchCmd.Flags().Int64Var(&benchSeed, "seed", 0, "RNG seed (0 = time-based)")
	benchCmd.Flags().Float64Var(&benchTolerance, "tolerance", 2.0, "allowed time-vs-size growth factor")
}

func runBench(cmd *cobra.Command, _ []string) error {
	w := cmd.OutOrStdout()

	seed := benchSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	points, err := bench.Scalability(benchPattern, benchSizes, benchGC, benchIterations, rng)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "scaling ladder for %q (%d iterations, seed %d)\n", benchPattern, benchIterations, seed)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SIZE (bp)\tAVG TIME\tMATCHES")
	for _, p := range points {
		fmt.Fprintf(tw, "%d\t%s\t%d\n", p.TextSize, p.Avg, p.Matches)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	verdict := bench.CheckLinear(points, benchTolerance)
	for i, s := range verdict.Steps {
		status := "ok"
		if !s.Linear {
			status = "EXCEEDED"
		}
		fmt.Fprintf(w, "step %d: size x%.1f, time x%.2f [%s]\n", i+1, s.SizeRatio, s.TimeRatio, status)
	}
	if verdict.Linear {
		fmt.Fprintf(w, "scaling: linear within tolerance %.1fx\n", verdict.Tolerance)
	} else {
		fmt.Fprintf(w, "scaling: NOT linear within tolerance %.1fx\n", verdict.Tolerance)
	}

	// Head-to-head on the largest ladder text, with the restriction sites
	// as the multi-pattern set.
	if len(points) == 0 {
		return nil
	}
	size := points[len(points)-1].TextSize
	text := bench.RandomDNA(size, benchGC, rng)
	var set []string
	for _, m := range motif.ByCategory("restriction") {
		set = append(set, m.Sequence)
	}
	cmp, err := bench.Compare(benchPattern, set, text, benchIterations)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "\ncomparison on %d bp:\n", size)
	fmt.Fprintf(w, "  dfa          avg %s (%d matches)\n", cmp.DFA.Avg, cmp.DFA.Matches)
	fmt.Fprintf(w, "  aho-corasick avg %s (%d patterns, %d matches)\n", cmp.AC.Avg, cmp.AC.Patterns, cmp.AC.Matches)
	fmt.Fprintf(w, "  faster: %s (ac/dfa = %.2fx)\n", cmp.Faster, cmp.Speedup)
	return nil
}
