package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"motifscan-core/motif"
)

var motifsCategory string

var motifsCmd = &cobra.Command{
	Use:   "motifs [name]",
	Short: "Show the motif reference table",
	Long: `Without arguments, motifs lists every entry in the built-in reference
table. With a name, it prints that motif's full metadata.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMotifs,
}

func init() {
	motifsCmd.Flags().StringVar(&motifsCategory, "category", "", "only list motifs in this category")
}

func runMotifs(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()

	if len(args) == 1 {
		m, ok := motif.Get(args[0])
		if !ok {
			return fmt.Errorf("unknown motif %q (have: %v)", args[0], motif.Names())
		}
		fmt.Fprintf(w, "Name:        %s\n", m.Name)
		fmt.Fprintf(w, "Category:    %s\n", m.Category)
		fmt.Fprintf(w, "Sequence:    %s\n", m.Sequence)
		fmt.Fprintf(w, "Organism:    %s\n", m.Organism)
		fmt.Fprintf(w, "Function:    %s\n", m.Function)
		if m.Position != "" {
			fmt.Fprintf(w, "Position:    %s\n", m.Position)
		}
		if m.GCContent > 0 {
			fmt.Fprintf(w, "GC content:  %.2f%%\n", m.GCContent)
		}
		if m.Overhang != "" {
			fmt.Fprintf(w, "Cut:         position %d, %s overhang\n", m.CutPosition, m.Overhang)
		}
		fmt.Fprintf(w, "Description: %s\n", m.Description)
		return nil
	}

	list := motif.All()
	if motifsCategory != "" {
		list = motif.ByCategory(motifsCategory)
		if len(list) == 0 {
			return fmt.Errorf("unknown category %q (have: %v)", motifsCategory, motif.Categories())
		}
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tCATEGORY\tSEQUENCE\tORGANISM\tFUNCTION")
	for _, m := range list {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", m.Name, m.Category, m.Sequence, m.Organism, m.Function)
	}
	return tw.Flush()
}
