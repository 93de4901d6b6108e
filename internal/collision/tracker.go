// Package collision tracks names by their 64-bit hash and tells genuine
// repeats apart from hash collisions between distinct names.
package collision

import (
	"fmt"

	"github.com/ornl-ndav/ISAW-sub008/errs"
	"github.com/ornl-ndav/ISAW-sub008/internal/hash"
)

// Tracker records names in the order they are tracked. Lookups go through
// the name hash; names whose hash collides with an earlier, different name
// are kept in a side set so later repeats of either are still caught.
//
// A Tracker is not safe for concurrent use.
type Tracker struct {
	id         func(string) uint64
	ids        map[uint64]string
	collided   map[string]struct{}
	names      []string
	collisions int
}

// NewTracker returns a tracker sized for about n names.
func NewTracker(n int) *Tracker {
	return &Tracker{
		id:    hash.ID,
		ids:   make(map[uint64]string, n),
		names: make([]string, 0, n),
	}
}

// Track records name. It fails with errs.ErrDuplicateName when name was
// tracked before.
func (t *Tracker) Track(name string) error {
	id := t.id(name)

	existing, ok := t.ids[id]
	switch {
	case !ok:
		t.ids[id] = name
	case existing == name:
		return fmt.Errorf("%w: %q", errs.ErrDuplicateName, name)
	default:
		if _, dup := t.collided[name]; dup {
			return fmt.Errorf("%w: %q", errs.ErrDuplicateName, name)
		}
		if t.collided == nil {
			t.collided = make(map[string]struct{})
		}
		t.collided[name] = struct{}{}
		t.collisions++
	}

	t.names = append(t.names, name)

	return nil
}

// Has reports whether name has been tracked.
func (t *Tracker) Has(name string) bool {
	if existing, ok := t.ids[t.id(name)]; ok && existing == name {
		return true
	}
	_, ok := t.collided[name]

	return ok
}

// HasCollision reports whether two distinct names shared a hash.
func (t *Tracker) HasCollision() bool {
	return t.collisions > 0
}

// Names returns the tracked names in order. The slice must not be modified.
func (t *Tracker) Names() []string {
	return t.names
}

// Count returns the number of tracked names.
func (t *Tracker) Count() int {
	return len(t.names)
}

// Reset forgets every name, keeping allocated capacity.
func (t *Tracker) Reset() {
	clear(t.ids)
	clear(t.collided)
	t.names = t.names[:0]
	t.collisions = 0
}
