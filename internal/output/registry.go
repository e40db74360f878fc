// Package output renders match reports. Writers register themselves by
// format name in init(); dispatch goes through the registry so commands
// never switch on format strings.
package output

import (
	"fmt"
	"io"
	"sort"

	"motifscan/pkg/api"
)

// Writer renders a match report to w. header controls the leading header
// row for tabular formats; structured formats ignore it.
type Writer func(w io.Writer, rows []api.MatchV1, header bool) error

var writers = map[string]Writer{}

// Register installs a writer for format (last registration wins).
func Register(format string, fn Writer) { writers[format] = fn }

// Write dispatches to the writer registered for format.
func Write(format string, w io.Writer, rows []api.MatchV1, header bool) error {
	fn, ok := writers[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (have: %v)", format, Formats())
	}
	return fn(w, rows, header)
}

// Formats returns the registered format names, sorted.
func Formats() []string {
	names := make([]string, 0, len(writers))
	for name := range writers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
