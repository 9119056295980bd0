// Package formation holds the static catalog of formation layouts and
// the slot assignment algorithm that remaps an existing lineup onto a
// new formation using positional affinity scoring.
package formation

import "sort"

// DefaultName is the canonical fallback formation returned by Lookup
// when the requested name is unknown.
const DefaultName = "4-3-3"

// SlotsPerFormation is the fixed layout size.
const SlotsPerFormation = 11

// Slot is one addressable position within a formation layout.
type Slot struct {
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Label string `json:"label"`
}

// Lookup returns the slot layout for a formation name, falling back to
// the default formation when the name is unknown. The returned slice
// is shared catalog data and must not be mutated.
func Lookup(name string) []Slot {
	if slots, ok := catalog[name]; ok {
		return slots
	}
	return catalog[DefaultName]
}

// Known reports whether name exists in the catalog.
func Known(name string) bool {
	_, ok := catalog[name]
	return ok
}

// Names lists every formation name in the catalog, sorted.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
