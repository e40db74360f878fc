package output

import (
	"encoding/json"
	"io"

	"motifscan/pkg/api"
)

func init() {
	Register("json", writeJSON)
}

// writeJSON emits the whole report as one indented JSON array. An empty
// report is an empty array, never null.
func writeJSON(w io.Writer, rows []api.MatchV1, _ bool) error {
	if rows == nil {
		rows = []api.MatchV1{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}
