// Package render prints a solved Sudoku board to a terminal, grounded in
// kpitt-sudoku/internal/puzzle/printer.go's box-drawing layout and use of
// fatih/color for the given/solved distinction.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/wallberg/dlxcc/internal/sudoku"
)

var (
	givenStyle  = color.New(color.Bold, color.FgHiWhite)
	solvedStyle = color.New(color.FgCyan)
)

// Board writes the 9x9 grid to w with box-drawing separators every three
// rows/columns. Cells present in given are bolded to mark them as clues;
// every other cell is printed in the solved style.
func Board(w io.Writer, solved, given sudoku.Board) {
	const rule = "------+-------+------"
	for r := 0; r < 9; r++ {
		if r != 0 && r%3 == 0 {
			fmt.Fprintln(w, rule)
		}
		var cells []string
		for c := 0; c < 9; c++ {
			sep := " "
			if c%3 == 0 && c != 0 {
				sep = "| "
			}
			cells = append(cells, sep+cellText(solved[r][c], given[r][c] != 0))
		}
		fmt.Fprintln(w, strings.TrimPrefix(strings.Join(cells, ""), " "))
	}
}

func cellText(digit int, isGiven bool) string {
	text := "."
	if digit != 0 {
		text = fmt.Sprintf("%d", digit)
	}
	if isGiven {
		return givenStyle.Sprint(text)
	}
	return solvedStyle.Sprint(text)
}
