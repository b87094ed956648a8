// Package sudoku adapts dlxcc to solve standard 9x9 Sudoku: a reference
// consumer of the solver's public interface, grounded in
// kpitt-sudoku/internal/solver/dancing_links.go's Cell/Row/Col/Box item
// layout and original_source/src/sudoku.rs, with the Box index bug
// spec.md §9 calls out (idx = row) fixed to the real 3x3 block index.
package sudoku

import (
	"fmt"

	"github.com/wallberg/dlxcc"
)

const size = 9

// ItemKind distinguishes the four Sudoku constraint families, all primary.
type ItemKind int

const (
	KindCell ItemKind = iota
	KindRow
	KindCol
	KindBox
)

// ItemID is the dlxcc item-identifier type for this adapter.
type ItemID struct {
	Kind    ItemKind
	A, B, D int // meaning depends on Kind: Cell(r,c), Row(c,d), Col(r,d), Box(b,d)
}

// Placement is the subset name: "put digit D at (R,C)".
type Placement struct {
	R, C, D int
}

// Board is a 9x9 grid; 0 means unsolved, 1..9 a fixed or solved digit.
type Board [size][size]int

func box(r, c int) int { return (r/3)*3 + c/3 }

// Build compiles a Board into the item/subset universe for dlxcc.Build:
// pre-filled cells remove their four items from the registry and are
// omitted from the candidate placements entirely, exactly as spec.md §4.8
// describes.
func Build(b Board) ([]dlxcc.Item[ItemID], []dlxcc.Subset[ItemID, Placement], error) {
	fixed := make(map[[2]int]int)
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			if b[r][c] != 0 {
				if b[r][c] < 1 || b[r][c] > 9 {
					return nil, nil, fmt.Errorf("sudoku: cell (%d,%d) has out-of-range digit %d", r, c, b[r][c])
				}
				fixed[[2]int{r, c}] = b[r][c]
			}
		}
	}

	excluded := make(map[ItemID]bool)
	for rc, d := range fixed {
		r, c := rc[0], rc[1]
		excluded[ItemID{Kind: KindCell, A: r, B: c}] = true
		excluded[ItemID{Kind: KindRow, A: c, D: d}] = true
		excluded[ItemID{Kind: KindCol, A: r, D: d}] = true
		excluded[ItemID{Kind: KindBox, A: box(r, c), D: d}] = true
	}

	var items []dlxcc.Item[ItemID]
	add := func(id ItemID) {
		if !excluded[id] {
			items = append(items, dlxcc.Item[ItemID]{ID: id, Kind: dlxcc.Primary})
		}
	}
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			add(ItemID{Kind: KindCell, A: r, B: c})
		}
	}
	for c := 0; c < size; c++ {
		for d := 1; d <= size; d++ {
			add(ItemID{Kind: KindRow, A: c, D: d})
		}
	}
	for r := 0; r < size; r++ {
		for d := 1; d <= size; d++ {
			add(ItemID{Kind: KindCol, A: r, D: d})
		}
	}
	for bx := 0; bx < size; bx++ {
		for d := 1; d <= size; d++ {
			add(ItemID{Kind: KindBox, A: bx, D: d})
		}
	}

	var subsets []dlxcc.Subset[ItemID, Placement]
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			if fixed[[2]int{r, c}] != 0 {
				continue
			}
			for d := 1; d <= size; d++ {
				subsets = append(subsets, dlxcc.Subset[ItemID, Placement]{
					Name: Placement{R: r, C: c, D: d},
					Constraints: []dlxcc.Constraint[ItemID]{
						dlxcc.Prim(ItemID{Kind: KindCell, A: r, B: c}),
						dlxcc.Prim(ItemID{Kind: KindRow, A: c, D: d}),
						dlxcc.Prim(ItemID{Kind: KindCol, A: r, D: d}),
						dlxcc.Prim(ItemID{Kind: KindBox, A: box(r, c), D: d}),
					},
				})
			}
		}
	}

	return items, subsets, nil
}

// Solve finds the unique completion of b, returning the fully solved
// board. ok is false if b has no solution.
func Solve(b Board) (Board, bool, error) {
	items, subsets, err := Build(b)
	if err != nil {
		return Board{}, false, err
	}
	m, err := dlxcc.Build(items, subsets)
	if err != nil {
		return Board{}, false, err
	}
	placements, ok := m.FindOne()
	if !ok {
		return Board{}, false, nil
	}
	out := b
	for _, p := range placements {
		out[p.R][p.C] = p.D
	}
	return out, true, nil
}
