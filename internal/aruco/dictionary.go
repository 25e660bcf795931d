// Package aruco renders square fiducial marker bitmaps from a predefined
// dictionary. A marker is a GridSize x GridSize payload of black/white
// modules wrapped in a one-module black border; the payload bit pattern
// uniquely identifies the marker to a detector.
package aruco

import (
	"fmt"
	"strings"
)

// Dictionary is a fixed family of marker bit patterns. Markers within a
// dictionary are chosen for mutual decoding distance, so patterns are
// immutable lookup data, never generated at runtime.
type Dictionary struct {
	Name     string
	GridSize int      // payload modules per side
	patterns []uint16 // row-major payload bits, MSB first
}

// Size returns the number of markers in the dictionary.
func (d *Dictionary) Size() int { return len(d.patterns) }

// bit reports whether the payload module at (row, col) of marker id is
// white. Callers must check id against Size first; out-of-range lookups
// are a programming error.
func (d *Dictionary) bit(id, row, col int) bool {
	pattern := d.patterns[id]
	shift := uint(d.GridSize*d.GridSize - 1 - row*d.GridSize - col)
	return pattern&(1<<shift) != 0
}

// Lookup resolves a dictionary by its conventional name, e.g.
// "DICT_4X4_50". Names must carry the DICT_ prefix so that typos are
// caught early instead of silently matching nothing.
func Lookup(name string) (*Dictionary, error) {
	if !strings.HasPrefix(name, "DICT_") {
		return nil, fmt.Errorf("dictionary name %q not recognized: expected a name like DICT_4X4_50", name)
	}
	d, ok := dictionaries[name]
	if !ok {
		return nil, fmt.Errorf("dictionary %q is not supported", name)
	}
	return d, nil
}

// Names returns the supported dictionary names in a stable order.
func Names() []string {
	return []string{"DICT_4X4_50", "DICT_4X4_100"}
}

var dictionaries = map[string]*Dictionary{
	"DICT_4X4_50":  {Name: "DICT_4X4_50", GridSize: 4, patterns: dict4x4[:50]},
	"DICT_4X4_100": {Name: "DICT_4X4_100", GridSize: 4, patterns: dict4x4[:100]},
}
