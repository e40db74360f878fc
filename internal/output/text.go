package output

import (
	"fmt"
	"io"

	"motifscan/pkg/api"
)

// TSVHeader is the canonical header row for text/TSV output. Keep it the
// single source of truth for column order.
const TSVHeader = "sequence_id\tpattern\tname\tstart\tend\tlength\tscore\tsource_file"

func init() {
	Register("text", WriteTSV)
}

// WriteTSV prints one tab-separated line per match.
func WriteTSV(w io.Writer, rows []api.MatchV1, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for _, r := range rows {
		_, err := fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\t%.1f\t%s\n",
			r.SequenceID, r.Pattern, r.Name, r.Start, r.End, r.Length, r.Score, r.SourceFile)
		if err != nil {
			return err
		}
	}
	return nil
}
