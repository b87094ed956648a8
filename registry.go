package dlxcc

import "fmt"

// Registry maps user-supplied item identifiers to small integer indices,
// remembering which are primary and which are secondary. It mirrors
// spec.md §4.1's ItemRegistry: registrations accumulate in one ordered
// list, and Finalize assigns the combined indexing in which primaries
// occupy [1..P] and secondaries occupy [P+1..P+S], each group keeping its
// registration order.
type Registry[I comparable] struct {
	order      []I
	kindByItem map[I]Kind
	index      map[I]int // final 1-based combined index, populated by Finalize
	finalized  bool
	primary    int
	secondary  int
}

// NewRegistry returns an empty registry.
func NewRegistry[I comparable]() *Registry[I] {
	return &Registry[I]{kindByItem: make(map[I]Kind)}
}

// Register records id as an item of the given kind. It is an error to
// register the same identifier twice, under any kind.
func (r *Registry[I]) Register(id I, kind Kind) error {
	if r.finalized {
		invariantViolation("Register called after Finalize")
	}
	if _, ok := r.kindByItem[id]; ok {
		return fmt.Errorf("%w: %v", ErrDuplicateItem, id)
	}
	r.kindByItem[id] = kind
	r.order = append(r.order, id)
	return nil
}

// Finalize partitions the registered items into primary and secondary
// groups, preserving each group's registration order, and fixes the
// combined index every item will be addressed by from then on. It returns
// the primary and secondary counts. Finalize is idempotent.
func (r *Registry[I]) Finalize() (primaryCount, secondaryCount int) {
	if r.finalized {
		return r.primary, r.secondary
	}

	r.index = make(map[I]int, len(r.order))
	next := 1
	for _, id := range r.order {
		if r.kindByItem[id] == Primary {
			r.index[id] = next
			next++
			r.primary++
		}
	}
	for _, id := range r.order {
		if r.kindByItem[id] == Secondary {
			r.index[id] = next
			next++
			r.secondary++
		}
	}
	r.finalized = true
	return r.primary, r.secondary
}

// Lookup returns the final combined index of id, valid only after
// Finalize. ok is false if id was never registered.
func (r *Registry[I]) Lookup(id I) (index int, ok bool) {
	if !r.finalized {
		invariantViolation("Lookup called before Finalize")
	}
	index, ok = r.index[id]
	return index, ok
}

// Kind reports the registered kind of id, or false if it was never
// registered.
func (r *Registry[I]) Kind(id I) (Kind, bool) {
	k, ok := r.kindByItem[id]
	return k, ok
}

// Len returns the total number of distinct registered items.
func (r *Registry[I]) Len() int { return len(r.order) }
