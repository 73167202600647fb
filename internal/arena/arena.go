// Package arena provides stable-address, generation-checked storage for the
// cyclic Enemy <-> Game <-> AnmRunner object graph. Game is the sole owner of
// enemies and animation runners; every cross-reference back into Game's
// storage goes through a Handle rather than a pointer, so a stale reference
// resolves to "absent" instead of a dangling pointer or a use-after-free.
package arena

// Handle identifies a slot in an Arena. Slot ids are 1-based so the zero
// Handle never resolves to a live entry.
type Handle struct {
	id         int
	generation uint32
}

// Valid reports whether h was ever issued by an Insert; it does not imply
// the referenced slot is still alive.
func (h Handle) Valid() bool {
	return h.id > 0
}

type slot[T any] struct {
	value      T
	generation uint32
	occupied   bool
}

// Arena is a stable-address, generation-checked store of T. Slots are never
// relocated, so a Handle captured before a later Insert/Remove stays valid
// (or correctly reports absence) across mutations. Iteration order is
// insertion order, independent of slot reuse: an entry inserted into a
// recycled slot still comes after every entry inserted before it.
type Arena[T any] struct {
	slots []slot[T]
	free  []int
	order []int
}

// New returns an empty arena.
func New[T any]() *Arena[T] {
	return &Arena[T]{}
}

// Insert stores value and returns a Handle to it. The new entry is appended
// to the iteration order even when its slot is recycled.
func (a *Arena[T]) Insert(value T) Handle {
	if n := len(a.free); n > 0 {
		idx := a.free[n-1]
		a.free = a.free[:n-1]
		a.slots[idx].value = value
		a.slots[idx].occupied = true
		a.order = append(a.order, idx)
		return Handle{id: idx + 1, generation: a.slots[idx].generation}
	}
	a.slots = append(a.slots, slot[T]{value: value, occupied: true})
	a.order = append(a.order, len(a.slots)-1)
	return Handle{id: len(a.slots), generation: 0}
}

// Get resolves h to its value. ok is false if h is stale or was removed.
func (a *Arena[T]) Get(h Handle) (T, bool) {
	var zero T
	idx := h.id - 1
	if idx < 0 || idx >= len(a.slots) {
		return zero, false
	}
	s := &a.slots[idx]
	if !s.occupied || s.generation != h.generation {
		return zero, false
	}
	return s.value, true
}

// GetPtr resolves h to a pointer into the arena's backing storage, valid
// until the next Insert/Remove grows or recycles the slot. ok is false if h
// is stale or was removed.
func (a *Arena[T]) GetPtr(h Handle) (*T, bool) {
	idx := h.id - 1
	if idx < 0 || idx >= len(a.slots) {
		return nil, false
	}
	s := &a.slots[idx]
	if !s.occupied || s.generation != h.generation {
		return nil, false
	}
	return &s.value, true
}

// Remove drops the entry at h, bumping its generation so outstanding Handles
// resolve to absent from this point on. ok is false if h was already stale.
func (a *Arena[T]) Remove(h Handle) bool {
	idx := h.id - 1
	if idx < 0 || idx >= len(a.slots) {
		return false
	}
	s := &a.slots[idx]
	if !s.occupied || s.generation != h.generation {
		return false
	}
	var zero T
	s.value = zero
	s.occupied = false
	s.generation++
	a.free = append(a.free, idx)
	for i, o := range a.order {
		if o == idx {
			a.order = append(a.order[:i], a.order[i+1:]...)
			break
		}
	}
	return true
}

// Len reports the number of live entries.
func (a *Arena[T]) Len() int {
	return len(a.order)
}

// Each calls fn for every live entry in insertion order, regardless of which
// slots the entries occupy. fn must not Insert or Remove.
func (a *Arena[T]) Each(fn func(Handle, *T)) {
	for _, i := range a.order {
		if a.slots[i].occupied {
			fn(Handle{id: i + 1, generation: a.slots[i].generation}, &a.slots[i].value)
		}
	}
}
