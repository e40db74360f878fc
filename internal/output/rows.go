package output

import (
	"sort"

	"motifscan-core/engine"
	"motifscan/pkg/api"
)

// FromEngine converts one record's matches to wire rows.
func FromEngine(sequenceID, sourceFile string, ms []engine.Match) []api.MatchV1 {
	rows := make([]api.MatchV1, 0, len(ms))
	for _, m := range ms {
		rows = append(rows, api.MatchV1{
			SequenceID: sequenceID,
			Pattern:    m.Pattern,
			PatternID:  m.PatternID,
			Start:      m.Pos,
			End:        m.Pos + m.Length,
			Length:     m.Length,
			Score:      m.Score,
			SourceFile: sourceFile,
		})
	}
	return rows
}

// ApplyNames fills each row's Name from a PatternID-indexed name list.
func ApplyNames(rows []api.MatchV1, names []string) {
	for i := range rows {
		if id := rows[i].PatternID; id >= 0 && id < len(names) {
			rows[i].Name = names[id]
		}
	}
}

// SortRows orders rows deterministically: by source file, sequence id,
// start position, then pattern id.
func SortRows(rows []api.MatchV1) {
	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.SourceFile != b.SourceFile {
			return a.SourceFile < b.SourceFile
		}
		if a.SequenceID != b.SequenceID {
			return a.SequenceID < b.SequenceID
		}
		if a.Start != b.Start {
			return a.Start < b.Start
		}
		return a.PatternID < b.PatternID
	})
}
