package internals

import "sort"

// Classification is the delta between a current and a stored Snapshot.
// The three lists are sorted and pairwise disjoint.
// Paths with equal fingerprints in both snapshots occur in none of them.
type Classification struct {
	Modified []string `json:"modified"`
	New      []string `json:"new"`
	Missing  []string `json:"missing"`
}

// Intact determines whether no path changed at all
func (c Classification) Intact() bool {
	return len(c.Modified) == 0 && len(c.New) == 0 && len(c.Missing) == 0
}

// Diff classifies every path of current and stored. It neither performs I/O nor modifies its arguments.
func Diff(current, stored Snapshot) Classification {
	c := Classification{
		Modified: make([]string, 0),
		New:      make([]string, 0),
		Missing:  make([]string, 0),
	}

	for path, fp := range current {
		storedFP, ok := stored[path]
		switch {
		case !ok:
			c.New = append(c.New, path)
		case storedFP != fp:
			c.Modified = append(c.Modified, path)
		}
	}

	for path := range stored {
		if _, ok := current[path]; !ok {
			c.Missing = append(c.Missing, path)
		}
	}

	sort.Strings(c.Modified)
	sort.Strings(c.New)
	sort.Strings(c.Missing)
	return c
}
