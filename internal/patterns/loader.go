// Package patterns loads named pattern lists from TSV files.
package patterns

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Entry is one named pattern.
type Entry struct {
	ID  string
	Seq string
}

// LoadTSV reads whitespace-separated lines of either "id sequence" or a
// bare sequence (id auto-assigned as pN). Blank lines and '#' comments
// are skipped.
func LoadTSV(path string) ([]Entry, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()

	var list []Entry
	sc := bufio.NewScanner(fh)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		f := strings.Fields(line)
		switch len(f) {
		case 1:
			list = append(list, Entry{
				ID:  fmt.Sprintf("p%d", len(list)+1),
				Seq: strings.ToUpper(f[0]),
			})
		case 2:
			list = append(list, Entry{ID: f[0], Seq: strings.ToUpper(f[1])})
		default:
			return nil, fmt.Errorf("%s:%d bad field count %d", path, ln, len(f))
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return list, nil
}
