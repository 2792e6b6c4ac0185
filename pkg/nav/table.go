package nav

import "sort"

// Record is one valid, data-backed combination of axis values with the
// identifier the host selects by.
type Record struct {
	H   int
	V   int
	Rot int
	ID  string
}

// Table holds every valid position for the current data load. It is built
// wholesale on each refresh and read-only afterwards; lookups are exact
// integer matches on the (H, V, Rot) key.
type Table struct {
	records []Record
	index   map[Pose]Record
}

// NewTable builds a table from records. If the same (H, V, Rot) combination
// appears more than once, the first record wins.
func NewTable(records []Record) *Table {
	t := &Table{
		records: records,
		index:   make(map[Pose]Record, len(records)),
	}
	for _, r := range records {
		key := Pose{H: r.H, V: r.V, Rot: r.Rot}
		if _, ok := t.index[key]; !ok {
			t.index[key] = r
		}
	}
	return t
}

// Lookup returns the record matching the pose exactly.
func (t *Table) Lookup(p Pose) (Record, bool) {
	r, ok := t.index[p]
	return r, ok
}

// Len returns the number of distinct positions in the table.
func (t *Table) Len() int {
	return len(t.index)
}

// Horizontals returns the distinct horizontal values in ascending order.
// Used for display counts and configuration, not for movement.
func (t *Table) Horizontals() []int {
	return t.distinct(func(r Record) int { return r.H })
}

// Verticals returns the distinct vertical values in ascending order.
func (t *Table) Verticals() []int {
	return t.distinct(func(r Record) int { return r.V })
}

// Rotations returns the distinct rotation values in ascending order.
func (t *Table) Rotations() []int {
	return t.distinct(func(r Record) int { return r.Rot })
}

func (t *Table) distinct(key func(Record) int) []int {
	seen := make(map[int]bool)
	var vals []int
	for _, r := range t.records {
		k := key(r)
		if !seen[k] {
			seen[k] = true
			vals = append(vals, k)
		}
	}
	sort.Ints(vals)
	return vals
}
