package canopy

// changeKind tags a pendingChange.
type changeKind uint8

const (
	changeAdd changeKind = iota
	changeRemove
)

// pendingChange is a structural mutation requested while the registry was
// locked.
type pendingChange struct {
	kind    changeKind
	surface *Surface
}

// surfaceRegistry is the ordered surface stack of a document. Index 0 is
// drawn first (bottom). While lock > 0 the surfaces slice is never
// structurally mutated; adds and removes go to pending and are committed by
// apply, in FIFO order, once the last traversal has unlocked.
type surfaceRegistry struct {
	surfaces []*Surface
	pending  []pendingChange
	lock     int

	// onRemove runs for every surface leaving the committed slice.
	onRemove func(*Surface)
}

// acquire enters a traversal. Every acquire must be paired with release,
// typically via defer.
func (r *surfaceRegistry) acquire() {
	r.lock++
}

func (r *surfaceRegistry) release() {
	if r.lock == 0 {
		panic("canopy: surface registry released more times than acquired")
	}
	r.lock--
}

func (r *surfaceRegistry) locked() bool {
	return r.lock > 0
}

// add inserts s at the back of the stack, or queues the insert while locked.
func (r *surfaceRegistry) add(s *Surface) {
	if r.locked() {
		r.pending = append(r.pending, pendingChange{kind: changeAdd, surface: s})
		return
	}
	r.apply()
	r.surfaces = append(r.surfaces, s)
}

// remove erases s from the stack, or queues the removal while locked.
// Removing a surface that is not present is a no-op.
func (r *surfaceRegistry) remove(s *Surface) {
	if r.locked() {
		r.pending = append(r.pending, pendingChange{kind: changeRemove, surface: s})
		return
	}
	r.apply()
	r.erase(s)
}

func (r *surfaceRegistry) erase(s *Surface) {
	for i, c := range r.surfaces {
		if c == s {
			copy(r.surfaces[i:], r.surfaces[i+1:])
			r.surfaces[len(r.surfaces)-1] = nil
			r.surfaces = r.surfaces[:len(r.surfaces)-1]
			if r.onRemove != nil {
				r.onRemove(s)
			}
			return
		}
	}
}

// apply commits queued changes in FIFO order. It does nothing while locked
// or when the queue is empty. Returns the number of changes committed.
func (r *surfaceRegistry) apply() int {
	if r.locked() || len(r.pending) == 0 {
		return 0
	}
	batch := r.pending
	r.pending = nil
	for _, ch := range batch {
		switch ch.kind {
		case changeAdd:
			r.surfaces = append(r.surfaces, ch.surface)
		case changeRemove:
			r.erase(ch.surface)
		}
	}
	return len(batch)
}

// byName returns the last committed surface called name; failing that, the
// last pending Add called name; failing that, nil.
func (r *surfaceRegistry) byName(name string) *Surface {
	var found *Surface
	for _, s := range r.surfaces {
		if s.name == name {
			found = s
		}
	}
	if found != nil {
		return found
	}
	for _, ch := range r.pending {
		if ch.kind == changeAdd && ch.surface.name == name {
			found = ch.surface
		}
	}
	return found
}
