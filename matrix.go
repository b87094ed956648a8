package dlxcc

import (
	"fmt"
	"strings"
)

// headerIdx and bodyIdx are distinct index types into the two arenas that
// make up a Matrix, per spec.md §9's design note: keeping them as separate
// named types stops a header index from being passed where a body index is
// expected, or vice versa, even though (for the [1..P+S] column range) the
// two numberings coincide by construction.
type headerIdx int
type bodyIdx int

// cleared marks a secondary option-node's color as temporarily removed by
// purify: the item it names has already been satisfied by an ancestor's
// matching-color choice. It is distinct from any legal color, which must
// be non-negative.
const cleared = -1

// header is one entry of the horizontal item list: spec.md §3's "[HEADER
// ROW]". Primary headers occupy [1..n1], secondary headers [n1+1..n1+n2];
// index 0 is the primary-list root and index n1+n2+1 is the secondary-list
// root.
type header[I comparable] struct {
	id         I
	kind       Kind
	prev, next headerIdx
}

// node is one entry of the body arena: spec.md §3's "[BODY]". Depending on
// its index range it plays one of three roles (ColumnHead, OptionNode, or
// Boundary/spacer); see Matrix.classify.
//
//   - ColumnHead (body index == some header index i in [1..n]): ulink/dlink
//     are the vertical circular list's tail/head pointers, size is the live
//     option count.
//   - OptionNode: top is the owning column's body index, ulink/dlink are
//     the vertical circular list's neighbors, color is this node's color
//     (meaningless for primary-item nodes).
//   - Boundary (top <= 0): ulink is first_for_prev (first node of the
//     subset this boundary trails), dlink is last_for_next (last node of
//     the following subset, filled in once that subset is built).
type node struct {
	top          bodyIdx
	ulink, dlink bodyIdx
	size         int
	color        int
}

// Matrix is the linked-data-structure representation of the sparse
// item/subset matrix: spec.md §3's CoverMatrix. Build constructs one;
// FindOne/FindAll/FindAllWithColors (search.go) consume it.
type Matrix[I comparable, N comparable] struct {
	n1, n2, n int
	headers   []header[I]
	nodes     []node
	names     []N   // subset name, set only at boundary (spacer) indices
	origColor []int // declared color per option-node, fixed at Build time;
	// node.color is the live, mutable field purify/unpurify clear and
	// restore, so recovering "what color did this branch settle on" once
	// a solution is found has to read this immutable copy instead.

	reg   *Registry[I]
	stats *Stats
}

func (m *Matrix[I, N]) columnHead(i headerIdx) bodyIdx { return bodyIdx(i) }

// Build constructs a Matrix from an ordered list of items and an ordered
// list of named subsets, per spec.md §4.2. Every constraint must reference
// a registered item, primary items may only appear via Prim and secondary
// items only via Sec, and subset names must be unique.
func Build[I comparable, N comparable](items []Item[I], subsets []Subset[I, N]) (*Matrix[I, N], error) {
	reg := NewRegistry[I]()
	for _, it := range items {
		if err := reg.Register(it.ID, it.Kind); err != nil {
			return nil, err
		}
	}
	n1, n2 := reg.Finalize()
	n := n1 + n2

	seenSubset := make(map[N]bool, len(subsets))
	for _, s := range subsets {
		if seenSubset[s.Name] {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateSubset, s.Name)
		}
		seenSubset[s.Name] = true
	}

	m := &Matrix[I, N]{n1: n1, n2: n2, n: n, reg: reg}

	// Header row: sentinel 0, primaries [1..n1], secondaries [n1+1..n],
	// sentinel n+1. Two disjoint circular rings share this one array,
	// exactly as the teacher's llink/rlink construction does.
	m.headers = make([]header[I], n+2)
	for _, id := range reg.order {
		idx, _ := reg.Lookup(id)
		kind, _ := reg.Kind(id)
		m.headers[idx] = header[I]{id: id, kind: kind}
	}
	for i := headerIdx(1); i <= headerIdx(n); i++ {
		m.headers[i].prev = i - 1
		m.headers[i-1].next = i
	}
	m.headers[n+1].prev = headerIdx(n)
	m.headers[n].next = headerIdx(n + 1)
	m.headers[n1+1].prev = headerIdx(n + 1)
	m.headers[n+1].next = headerIdx(n1 + 1)
	m.headers[0].prev = headerIdx(n1)
	m.headers[n1].next = 0

	// Body arena: column heads [0..n] (0 unused), a leading spacer, then
	// per-subset option nodes followed by a trailing spacer.
	totalConstraints := 0
	for _, s := range subsets {
		totalConstraints += len(s.Constraints)
	}
	size := (n + 1) + (len(subsets) + 1) + totalConstraints
	m.nodes = make([]node, size)
	m.names = make([]N, size)
	m.origColor = make([]int, size)

	for i := bodyIdx(1); i <= bodyIdx(n); i++ {
		m.nodes[i] = node{ulink: i, dlink: i}
	}

	x := bodyIdx(n + 1)
	spacerAt := x // leading spacer; top left at zero

	for _, s := range subsets {
		if len(s.Constraints) == 0 {
			return nil, fmt.Errorf("%w: %v", ErrEmptySubset, s.Name)
		}
		for _, c := range s.Constraints {
			x++
			idx, ok := reg.Lookup(c.Item())
			if !ok {
				return nil, fmt.Errorf("%w: %v", ErrUnknownItem, c.Item())
			}
			kind, _ := reg.Kind(c.Item())
			_, colored := c.Color()
			if kind == Primary && colored {
				return nil, fmt.Errorf("%w: primary item %v used with Sec", ErrKindMismatch, c.Item())
			}
			if kind == Secondary && !colored {
				return nil, fmt.Errorf("%w: secondary item %v used with Prim", ErrKindMismatch, c.Item())
			}

			hi := headerIdx(idx)
			col := m.columnHead(hi)
			clr, _ := c.Color()
			m.nodes[x].top = col
			m.nodes[x].color = clr
			m.origColor[x] = clr

			// O(1) circular append: dlink(head) is the first node,
			// ulink(head) is the current tail.
			tail := m.nodes[col].ulink
			m.nodes[x].ulink = tail
			m.nodes[x].dlink = col
			m.nodes[tail].dlink = x
			m.nodes[col].ulink = x
			m.nodes[col].size++
		}

		m.nodes[spacerAt].dlink = x // last_for_next of the previous boundary
		x++
		m.nodes[x].ulink = spacerAt + 1 // first_for_prev of this boundary
		m.nodes[x].top = bodyIdx(m.nodes[spacerAt].top) - 1
		m.names[x] = s.Name
		spacerAt = x
	}

	return m, nil
}

// dump renders the header and node arenas plus the current search trail as
// one multi-line string, mirroring the teacher's dump(): a raw table dump
// followed by the options selected so far. trail may be nil (as it is right
// after Build, before any search has begun).
func (m *Matrix[I, N]) dump(trail []bodyIdx) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\nn1=%d n2=%d n=%d\n", m.n1, m.n2, m.n)

	fmt.Fprint(&b, "headers:")
	for i := range m.headers {
		fmt.Fprintf(&b, " %d:{id=%v kind=%v prev=%d next=%d}", i, m.headers[i].id, m.headers[i].kind, m.headers[i].prev, m.headers[i].next)
	}
	fmt.Fprint(&b, "\nnodes:")
	for i := range m.nodes {
		fmt.Fprintf(&b, " %d:{top=%d ulink=%d dlink=%d size=%d color=%d}", i, m.nodes[i].top, m.nodes[i].ulink, m.nodes[i].dlink, m.nodes[i].size, m.nodes[i].color)
	}

	fmt.Fprint(&b, "\nitems:")
	for i := m.headers[0].next; i != 0; i = m.headers[i].next {
		fmt.Fprintf(&b, " %v", m.headers[i].id)
	}
	fmt.Fprintln(&b)

	for level, p := range trail {
		fmt.Fprintf(&b, "  option: level=%d p=%d name=%v (", level, p, m.subsetName(p))
		start, end := m.rowBounds(p)
		for q := start; q <= end; q++ {
			fmt.Fprintf(&b, " %v", m.headers[m.nodes[q].top].id)
		}
		fmt.Fprint(&b, " )\n")
	}

	return b.String()
}

// logProgress reports an estimate of how far along the search is, the same
// way the teacher's showProgress() does: each level of the trail narrows
// the estimate by the selected option's position within its column's live
// list, weighted by the product of every ancestor column's live-list size.
func (m *Matrix[I, N]) logProgress(level int, trail []bodyIdx) {
	if m.stats == nil {
		return
	}
	est := 0.0
	tcum := 1
	for _, p := range trail {
		i := m.nodes[p].top
		h := m.columnHead(headerIdx(i))
		k := 1
		for q := m.nodes[h].dlink; q != p; q = m.nodes[q].dlink {
			k++
		}
		size := m.nodes[h].size
		tcum *= size
		est += float64(k-1) / float64(tcum)
	}
	est += 1.0 / float64(2*tcum)

	m.stats.progressf("level=%d maxLevel=%d nodes=%d solutions=%d est=%.4f",
		level, m.stats.MaxLevel, m.stats.Nodes, m.stats.Solutions, est)
	if m.stats.Verbosity > 0 && m.stats.Debug {
		m.stats.dumpf(m.dump(trail))
	}
}

// hide removes the subset reached through option-node p from every column
// except top[p]'s own, per spec.md §4.3. Unconditional: a node whose color
// has been cleared by a prior purify is unlinked exactly like any other —
// see SPEC_FULL.md §4.3 for why this diverges from the teacher's
// color-gated hide.
func (m *Matrix[I, N]) hide(p bodyIdx) {
	m.stats.debugf("hide(p=%d)", p)
	for q := p + 1; q != p; {
		x := m.nodes[q].top
		if x <= 0 {
			q = m.nodes[q].ulink // boundary: jump to first_for_prev
			continue
		}
		u, d := m.nodes[q].ulink, m.nodes[q].dlink
		m.nodes[d].ulink = u
		m.nodes[u].dlink = d
		m.nodes[x].size--
		q++
	}
}

// unhide is hide's exact inverse: it must be called with the nodes visited
// in precisely the reverse order hide visited them.
func (m *Matrix[I, N]) unhide(p bodyIdx) {
	m.stats.debugf("unhide(p=%d)", p)
	for q := p - 1; q != p; {
		x := m.nodes[q].top
		if x <= 0 {
			q = m.nodes[q].dlink // boundary: jump to last_for_next
			continue
		}
		u, d := m.nodes[q].ulink, m.nodes[q].dlink
		m.nodes[d].ulink = q
		m.nodes[u].dlink = q
		m.nodes[x].size++
		q--
	}
}

// cover removes primary item i from further consideration: hides every
// option containing it, then unlinks its header from the horizontal list.
func (m *Matrix[I, N]) cover(i headerIdx) {
	m.stats.debugf("cover(i=%d)", i)
	h := m.columnHead(i)
	for p := m.nodes[h].dlink; p != h; p = m.nodes[p].dlink {
		m.hide(p)
	}
	l, r := m.headers[i].prev, m.headers[i].next
	m.headers[r].prev = l
	m.headers[l].next = r
}

// uncover is cover's exact inverse.
func (m *Matrix[I, N]) uncover(i headerIdx) {
	m.stats.debugf("uncover(i=%d)", i)
	l, r := m.headers[i].prev, m.headers[i].next
	m.headers[r].prev = i
	m.headers[l].next = i
	h := m.columnHead(i)
	for p := m.nodes[h].ulink; p != h; p = m.nodes[p].ulink {
		m.unhide(p)
	}
}

// purify commits secondary option-node p's color: every live node in its
// column that disagrees is hidden, and every live node that agrees has its
// color marked cleared, meaning "already satisfied by this committed
// color". p itself is not in the live column (the cover of its option's
// primary item already hid it), so it keeps its color, which unpurify
// reads back.
func (m *Matrix[I, N]) purify(p bodyIdx) {
	m.stats.debugf("purify(p=%d)", p)
	c := m.nodes[p].color
	h := m.nodes[p].top
	m.nodes[h].color = c // informational only, for debug dumps
	for q := m.nodes[h].dlink; q != h; {
		next := m.nodes[q].dlink
		if m.nodes[q].color == c {
			m.nodes[q].color = cleared
		} else {
			m.hide(q)
		}
		q = next
	}
}

// unpurify is purify's exact inverse.
func (m *Matrix[I, N]) unpurify(p bodyIdx) {
	m.stats.debugf("unpurify(p=%d)", p)
	c := m.nodes[p].color
	h := m.nodes[p].top
	for q := m.nodes[h].ulink; q != h; {
		prev := m.nodes[q].ulink
		if m.nodes[q].color == cleared {
			m.nodes[q].color = c
		} else {
			m.unhide(q)
		}
		q = prev
	}
	m.nodes[p].color = c
}

// commit applies option-node p's constraint on header h: cover it if h is
// primary, purify it if h is secondary and p still carries a live
// (uncleared) color, or do nothing if an ancestor's purify already cleared
// it. See SPEC_FULL.md §4.3 for why this departs from the teacher's
// color-is-zero convention.
func (m *Matrix[I, N]) commit(p bodyIdx, h headerIdx) {
	m.stats.debugf("commit(p=%d, h=%d)", p, h)
	if m.headers[h].kind == Primary {
		m.cover(h)
		return
	}
	if m.nodes[p].color != cleared {
		m.purify(p)
	}
}

// uncommit is commit's exact inverse.
func (m *Matrix[I, N]) uncommit(p bodyIdx, h headerIdx) {
	m.stats.debugf("uncommit(p=%d, h=%d)", p, h)
	if m.headers[h].kind == Primary {
		m.uncover(h)
		return
	}
	if m.nodes[p].color != cleared {
		m.unpurify(p)
	}
}

// coverRemaining commits every option-node in p's subset other than p
// itself, walking forward from p (wrapping over the trailing boundary back
// to the subset's start).
func (m *Matrix[I, N]) coverRemaining(p bodyIdx) {
	for q := p + 1; q != p; {
		j := m.nodes[q].top
		if j <= 0 {
			q = m.nodes[q].ulink
			continue
		}
		m.commit(q, headerIdx(j))
		q++
	}
}

// uncoverRemaining is coverRemaining's exact inverse: it must walk the same
// nodes in reverse order.
func (m *Matrix[I, N]) uncoverRemaining(p bodyIdx) {
	for q := p - 1; q != p; {
		j := m.nodes[q].top
		if j <= 0 {
			q = m.nodes[q].dlink
			continue
		}
		m.uncommit(q, headerIdx(j))
		q--
	}
}

// chooseItem implements MRV (spec.md §4.4): the active primary item with
// the smallest live option count, ties broken by horizontal order. It
// returns ok=false once every primary item has been covered (success).
func (m *Matrix[I, N]) chooseItem() (i headerIdx, ok bool) {
	best := headerIdx(0)
	bestSize := -1
	for p := m.headers[0].next; p != 0; p = m.headers[p].next {
		size := m.nodes[m.columnHead(p)].size
		if bestSize == -1 || size < bestSize {
			best, bestSize = p, size
			if bestSize == 0 {
				break
			}
		}
	}
	return best, bestSize != -1
}

// subsetName returns the name carried by the trailing boundary of p's
// subset.
func (m *Matrix[I, N]) subsetName(p bodyIdx) N {
	q := p
	for m.nodes[q].top > 0 {
		q++
	}
	return m.names[q]
}

// rowBounds returns the first and last option-node index of p's subset.
func (m *Matrix[I, N]) rowBounds(p bodyIdx) (start, end bodyIdx) {
	start, end = p, p
	for m.nodes[start-1].top > 0 {
		start--
	}
	for m.nodes[end+1].top > 0 {
		end++
	}
	return start, end
}

// WithStats attaches a Stats recorder to m, returning m for chaining. Pass
// nil (the default) to run without any bookkeeping overhead beyond a
// branchless nil check. If s.Debug is set, this immediately logs one full
// arena dump, the same as the teacher's C1 "if debug { dump() }" right
// after initialize().
func (m *Matrix[I, N]) WithStats(s *Stats) *Matrix[I, N] {
	m.stats = s
	if s != nil && s.Debug {
		s.dumpf(m.dump(nil))
	}
	return m
}

// Stats returns the Stats recorder attached to m, or nil if none was
// attached via WithStats.
func (m *Matrix[I, N]) Stats() *Stats { return m.stats }

// DebugValidate checks the arena invariants spec.md §8 calls for: every
// column's recorded size matches the length of its live vertical list, and
// every live link is mutually consistent (q's predecessor's successor is q,
// and vice versa) in both the horizontal header ring and every vertical
// column list currently reachable from the header ring. It is meant to be
// called from tests after a sequence of mutations, not from the hot search
// path — see DESIGN.md.
func (m *Matrix[I, N]) DebugValidate() error {
	for i := m.headers[0].next; i != 0; i = m.headers[i].next {
		if m.headers[m.headers[i].prev].next != i {
			return fmt.Errorf("dlxcc: header %d: prev/next mismatch", i)
		}
		h := m.columnHead(i)
		count := 0
		for p := m.nodes[h].dlink; p != h; p = m.nodes[p].dlink {
			if m.nodes[m.nodes[p].dlink].ulink != p {
				return fmt.Errorf("dlxcc: column %d: node %d ulink/dlink mismatch", i, p)
			}
			count++
		}
		if count != m.nodes[h].size {
			return fmt.Errorf("dlxcc: column %d: size %d, live list has %d", i, m.nodes[h].size, count)
		}
	}
	secondaryRoot := headerIdx(m.n + 1)
	for i := m.headers[secondaryRoot].next; i != secondaryRoot; i = m.headers[i].next {
		if m.headers[m.headers[i].prev].next != i {
			return fmt.Errorf("dlxcc: secondary header %d: prev/next mismatch", i)
		}
	}
	return nil
}
