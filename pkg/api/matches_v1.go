// Package api defines the stable JSON schema emitted by motifscan.
// Fields are versioned: additions are fine, renames and removals are not.
package api

// MatchV1 is the v1 wire form of one reported occurrence.
type MatchV1 struct {
	SequenceID string  `json:"sequence_id"`
	Pattern    string  `json:"pattern"`
	Name       string  `json:"name,omitempty"`
	PatternID  int     `json:"pattern_id"`
	Start      int     `json:"start"`
	End        int     `json:"end"`
	Length     int     `json:"length"`
	Score      float64 `json:"score"`
	SourceFile string  `json:"source_file,omitempty"`
}
