package kakuro

import (
	"github.com/wallberg/dlxcc"
	"github.com/wallberg/dlxcc/combin"
)

// Choice records what one compiled subset actually assigns: the cells of
// its line, in order, and the digit each one receives. Subset names handed
// to the solver are plain indices into the Choices slice Compile returns,
// since dlxcc.Subset's name type must be comparable and a slice of digits
// is not.
type Choice struct {
	Cells []CellPos
	Digit []int
}

// Compile turns a parsed Grid into the item/subset universe spec.md §4.7
// describes: one Sum item per clue/direction, one Tile item per blank
// cell, one Letter item per distinct letter, and the ten LetterValue
// items, wired together one subset per feasible (line combination ×
// permutation × clue-letter-digit) choice that doesn't contradict the
// letters↔digits bijection.
func Compile(g *Grid) ([]dlxcc.Item[ItemID], []dlxcc.Subset[ItemID, int], []Choice, error) {
	ls, err := lines(g)
	if err != nil {
		return nil, nil, nil, err
	}

	letters := usedLetters(g)

	var items []dlxcc.Item[ItemID]
	for _, l := range ls {
		items = append(items, dlxcc.Item[ItemID]{ID: sumID(l.row, l.col, l.vertical), Kind: dlxcc.Primary})
	}
	for row := 0; row < g.N; row++ {
		for col := 0; col < g.N; col++ {
			if g.At(row, col).Kind == Blank {
				items = append(items, dlxcc.Item[ItemID]{ID: tileID(row, col), Kind: dlxcc.Secondary})
			}
		}
	}
	for l := range letters {
		items = append(items, dlxcc.Item[ItemID]{ID: letterID(l), Kind: dlxcc.Secondary})
	}
	for v := 0; v <= 9; v++ {
		items = append(items, dlxcc.Item[ItemID]{ID: letterValueID(v), Kind: dlxcc.Secondary})
	}

	var subsets []dlxcc.Subset[ItemID, int]
	var choices []Choice
	for _, l := range ls {
		for _, cd := range clueDigits(l.sumLetters) {
			k := len(l.cells)
			if cd.sum < 0 || cd.sum > 45 || k < 1 || k > 9 {
				continue
			}
			for combo := range combin.Enumerate(cd.sum, cd.sum, k) {
				for _, perm := range permutations(combo) {
					sub, choice, ok := buildSubset(g, l, cd, perm, len(choices))
					if !ok {
						continue
					}
					subsets = append(subsets, sub)
					choices = append(choices, choice)
				}
			}
		}
	}

	return items, subsets, choices, nil
}

// clueDigit is one candidate digit assignment for a clue's 1- or 2-letter
// sum string, together with the resulting numeric sum.
type clueDigit struct {
	letters []byte
	digits  []int
	sum     int
}

func clueDigits(sumLetters string) []clueDigit {
	var out []clueDigit
	switch len(sumLetters) {
	case 1:
		l := sumLetters[0]
		for d := 0; d <= 9; d++ {
			out = append(out, clueDigit{letters: []byte{l}, digits: []int{d}, sum: d})
		}
	case 2:
		l0, l1 := sumLetters[0], sumLetters[1]
		for tens := 1; tens <= 9; tens++ {
			for ones := 0; ones <= 9; ones++ {
				out = append(out, clueDigit{
					letters: []byte{l0, l1},
					digits:  []int{tens, ones},
					sum:     10*tens + ones,
				})
			}
		}
	}
	return out
}

// buildSubset attempts to build one subset from a line, a candidate clue
// digit assignment, and one permutation of a digit combination onto the
// line's cells. ok is false if the letters↔digits bijection would be
// violated within this single subset (spec.md §4.7's consistency filter).
func buildSubset(g *Grid, l line, cd clueDigit, perm []int, index int) (dlxcc.Subset[ItemID, int], Choice, bool) {
	letterDigit := map[byte]int{}
	digitLetter := map[int]byte{}

	assign := func(letter byte, digit int) bool {
		if existing, ok := letterDigit[letter]; ok {
			if existing != digit {
				return false
			}
		} else {
			letterDigit[letter] = digit
		}
		if existing, ok := digitLetter[digit]; ok {
			if existing != letter {
				return false
			}
		} else {
			digitLetter[digit] = letter
		}
		return true
	}

	for i, letter := range cd.letters {
		if !assign(letter, cd.digits[i]) {
			return dlxcc.Subset[ItemID, int]{}, Choice{}, false
		}
	}
	for i, pos := range l.cells {
		if g.At(pos.Row, pos.Col).Kind == Prefilled {
			if !assign(g.At(pos.Row, pos.Col).Hint, perm[i]) {
				return dlxcc.Subset[ItemID, int]{}, Choice{}, false
			}
		}
	}

	constraints := []dlxcc.Constraint[ItemID]{dlxcc.Prim(sumID(l.row, l.col, l.vertical))}
	for i, pos := range l.cells {
		if g.At(pos.Row, pos.Col).Kind == Blank {
			constraints = append(constraints, dlxcc.Sec(tileID(pos.Row, pos.Col), perm[i]))
		}
	}
	for letter, digit := range letterDigit {
		constraints = append(constraints,
			dlxcc.Sec(letterID(letter), digit),
			dlxcc.Sec(letterValueID(digit), letterIndex(letter)),
		)
	}

	return dlxcc.Subset[ItemID, int]{Name: index, Constraints: constraints},
		Choice{Cells: l.cells, Digit: perm}, true
}

func usedLetters(g *Grid) map[byte]bool {
	letters := map[byte]bool{}
	for _, t := range g.Tiles {
		if t.Kind == Prefilled {
			letters[t.Hint] = true
		}
		if t.Kind == ClueTile {
			for i := 0; i < len(t.Horizontal); i++ {
				letters[t.Horizontal[i]] = true
			}
			for i := 0; i < len(t.Vertical); i++ {
				letters[t.Vertical[i]] = true
			}
		}
	}
	return letters
}

func permutations(xs []int) [][]int {
	var out [][]int
	n := len(xs)
	buf := append([]int(nil), xs...)
	c := make([]int, n)
	out = append(out, append([]int(nil), buf...))
	i := 0
	for i < n {
		if c[i] < i {
			if i%2 == 0 {
				buf[0], buf[i] = buf[i], buf[0]
			} else {
				buf[c[i]], buf[i] = buf[i], buf[c[i]]
			}
			out = append(out, append([]int(nil), buf...))
			c[i]++
			i = 0
		} else {
			c[i] = 0
			i++
		}
	}
	return out
}
