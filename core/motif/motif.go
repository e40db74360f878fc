// Package motif holds the static reference table of well-known DNA motifs
// (promoter elements, restriction sites, CpG sites). The table is external
// configuration data, not part of the matching core: it is embedded at
// build time, parsed once, and immutable afterwards.
package motif

import (
	_ "embed"
	"fmt"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed motifs.yaml
var rawTable []byte

// Motif is one named reference pattern with its biological metadata.
type Motif struct {
	Name        string  `yaml:"name"`
	Category    string  `yaml:"category"`
	Sequence    string  `yaml:"sequence"`
	Organism    string  `yaml:"organism"`
	Function    string  `yaml:"function"`
	Position    string  `yaml:"position,omitempty"`
	GCContent   float64 `yaml:"gc_content,omitempty"`
	CutPosition int     `yaml:"cut_position,omitempty"`
	Overhang    string  `yaml:"overhang,omitempty"`
	Description string  `yaml:"description"`
}

var (
	once    sync.Once
	ordered []Motif
	byName  map[string]Motif
)

func load() {
	once.Do(func() {
		if err := yaml.Unmarshal(rawTable, &ordered); err != nil {
			// The table ships inside the binary; failing to parse it is a
			// build defect, not a runtime condition.
			panic(fmt.Sprintf("motif: embedded table: %v", err))
		}
		byName = make(map[string]Motif, len(ordered))
		for _, m := range ordered {
			byName[m.Name] = m
		}
	})
}

// Get returns the motif registered under name.
func Get(name string) (Motif, bool) {
	load()
	m, ok := byName[name]
	return m, ok
}

// Sequence returns just the pattern sequence for name.
func Sequence(name string) (string, bool) {
	m, ok := Get(name)
	return m.Sequence, ok
}

// All returns the whole table in declaration order.
func All() []Motif {
	load()
	out := make([]Motif, len(ordered))
	copy(out, ordered)
	return out
}

// Names returns every motif name, sorted.
func Names() []string {
	load()
	names := make([]string, 0, len(ordered))
	for _, m := range ordered {
		names = append(names, m.Name)
	}
	sort.Strings(names)
	return names
}

// ByCategory returns the motifs in category, in declaration order.
func ByCategory(category string) []Motif {
	load()
	var out []Motif
	for _, m := range ordered {
		if m.Category == category {
			out = append(out, m)
		}
	}
	return out
}

// Categories returns the distinct categories in declaration order.
func Categories() []string {
	load()
	seen := make(map[string]struct{}, 4)
	var out []string
	for _, m := range ordered {
		if _, dup := seen[m.Category]; dup {
			continue
		}
		seen[m.Category] = struct{}{}
		out = append(out, m.Category)
	}
	return out
}
