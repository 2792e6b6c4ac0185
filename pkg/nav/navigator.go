package nav

import "sync"

// Navigator owns the pad's current pose and applies movement commands
// against the table of valid positions. The mutex serializes moves against
// table reloads; the host otherwise delivers input events one at a time.
type Navigator struct {
	mu    sync.Mutex
	pose  Pose
	table *Table
}

// New returns a navigator at the default pose with an empty table.
// Every move is a no-op until a table is loaded.
func New() *Navigator {
	return &Navigator{
		pose:  DefaultPose(),
		table: NewTable(nil),
	}
}

// Reload swaps in a freshly built table. The current pose is kept even if
// it no longer has a matching record; moves simply commit nothing until a
// valid target is reachable again.
func (n *Navigator) Reload(t *Table) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.table = t
}

// Pose returns the current pose.
func (n *Navigator) Pose() Pose {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.pose
}

// Table returns the currently loaded table.
func (n *Navigator) Table() *Table {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.table
}

// Move applies one movement command. Translate advances step cells along
// the current facing; Rotate turns step increments of RotStep degrees.
// The move commits only if the computed target exists in the table: the
// committed record is returned and the pose updated. Otherwise the pose is
// unchanged and ok is false; the pad will not move past the edge of the
// defined grid.
func (n *Navigator) Move(axis Axis, step int) (rec Record, ok bool) {
	n.mu.Lock()
	defer n.mu.Unlock()

	target := n.pose
	switch axis {
	case Translate:
		target = target.Translated(step)
	case Rotate:
		target = target.Rotated(step)
	default:
		return Record{}, false
	}

	rec, ok = n.table.Lookup(target)
	if !ok {
		return Record{}, false
	}
	n.pose = target
	return rec, true
}
