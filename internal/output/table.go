package output

import (
	"fmt"
	"io"
	"text/tabwriter"

	"motifscan/pkg/api"
)

func init() {
	Register("table", writeTable)
}

// writeTable renders an aligned, human-readable table.
func writeTable(w io.Writer, rows []api.MatchV1, header bool) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if header {
		if _, err := fmt.Fprintln(tw, "SEQUENCE\tPATTERN\tNAME\tSTART\tEND\tLEN\tSCORE"); err != nil {
			return err
		}
	}
	for _, r := range rows {
		_, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%d\t%.1f\n",
			r.SequenceID, r.Pattern, r.Name, r.Start, r.End, r.Length, r.Score)
		if err != nil {
			return err
		}
	}
	return tw.Flush()
}
