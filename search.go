package dlxcc

import "iter"

// FindOne returns the first solution Algorithm C finds: the subset names
// chosen to cover every primary item. ok is false if the problem is
// unsatisfiable. An empty, satisfiable problem (no primary items) returns
// an empty solution and true.
func (m *Matrix[I, N]) FindOne() ([]N, bool) {
	for solution := range m.FindAll() {
		return solution, true
	}
	return nil, false
}

// FindAll lazily enumerates every solution as an ordered list of subset
// names. Breaking out of the range early unwinds the search back to an
// empty trail before control returns to the caller, leaving m reusable.
func (m *Matrix[I, N]) FindAll() iter.Seq[[]N] {
	return func(yield func([]N) bool) {
		var trail []bodyIdx
		m.search(0, &trail, nil, yield)
	}
}

// FindAllWithColors is FindAll, additionally reporting the color each
// solution settled on for every secondary item it actually constrains.
func (m *Matrix[I, N]) FindAllWithColors() iter.Seq2[[]N, map[I]int] {
	return func(yield func([]N, map[I]int) bool) {
		var trail []bodyIdx
		m.search(0, &trail, map[I]int{}, func(names []N) bool {
			return yield(names, m.collectColors(trail))
		})
	}
}

// search is Algorithm C's recursive core: choose a live primary item with
// the fewest remaining options (MRV), try each of its rows in turn,
// recursing after committing the row's remaining constraints. It returns
// false to propagate a cancellation (the consumer's yield returned false)
// up through every enclosing frame, each of which undoes its own cover
// before passing the signal further up.
//
// withColors is non-nil only for FindAllWithColors, purely to select which
// collectColors gets consulted by the caller; search itself never reads it.
func (m *Matrix[I, N]) search(level int, trail *[]bodyIdx, withColors map[I]int, yield func([]N) bool) bool {
	m.stats.enterLevel(level)
	if m.stats.progressDue() {
		m.logProgress(level, *trail)
	}

	i, ok := m.chooseItem()
	if !ok {
		names := make([]N, len(*trail))
		for idx, p := range *trail {
			names[idx] = m.subsetName(p)
		}
		m.stats.solutionFound()
		return yield(names)
	}

	m.cover(i)
	h := m.columnHead(i)
	for p := m.nodes[h].dlink; p != h; p = m.nodes[p].dlink {
		m.coverRemaining(p)
		*trail = append(*trail, p)

		if !m.search(level+1, trail, withColors, yield) {
			*trail = (*trail)[:len(*trail)-1]
			m.uncoverRemaining(p)
			m.uncover(i)
			return false
		}

		*trail = (*trail)[:len(*trail)-1]
		m.uncoverRemaining(p)
	}
	m.uncover(i)
	return true
}

// collectColors walks every row in trail and reads off the declared color
// of each secondary constraint it carries.
func (m *Matrix[I, N]) collectColors(trail []bodyIdx) map[I]int {
	colors := make(map[I]int)
	for _, p := range trail {
		start, end := m.rowBounds(p)
		for q := start; q <= end; q++ {
			h := m.nodes[q].top
			if m.headers[h].kind == Secondary {
				colors[m.headers[h].id] = m.origColor[q]
			}
		}
	}
	return colors
}
