// Command sudoku reads a 9-line board from stdin and prints its solution,
// mirroring kpitt-sudoku/cmd/sudoku/main.go's TTY-aware prompt and
// box-drawing output.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/wallberg/dlxcc"
	"github.com/wallberg/dlxcc/internal/render"
	"github.com/wallberg/dlxcc/internal/sudoku"
)

func main() {
	var debug bool

	root := &cobra.Command{
		Use:   "sudoku",
		Short: "Solve a 9x9 Sudoku board read from stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, debug)
		},
	}
	root.Flags().BoolVar(&debug, "debug", false, "trace every cover/hide/purify primitive and dump the arena")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string, debug bool) error {
	if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		fmt.Fprintln(cmd.OutOrStdout(), "Enter 9 rows of 9 digits (0 or . for blank):")
	}

	given, err := readBoard(os.Stdin)
	if err != nil {
		return err
	}

	items, subsets, err := sudoku.Build(given)
	if err != nil {
		return err
	}
	m, err := dlxcc.Build(items, subsets)
	if err != nil {
		return err
	}
	if debug {
		m.WithStats(&dlxcc.Stats{
			Debug:  true,
			Logger: zerolog.New(cmd.ErrOrStderr()).With().Timestamp().Logger(),
		})
	}

	names, ok := m.FindOne()
	if !ok {
		fmt.Fprintln(cmd.OutOrStdout(), "no solution")
		return nil
	}

	solved := given
	for _, placement := range names {
		solved[placement.R][placement.C] = placement.D
	}

	render.Board(cmd.OutOrStdout(), solved, given)
	return nil
}

func readBoard(r *os.File) (sudoku.Board, error) {
	var b sudoku.Board
	scanner := bufio.NewScanner(r)
	for row := 0; row < 9; row++ {
		if !scanner.Scan() {
			return b, fmt.Errorf("expected 9 rows, got %d", row)
		}
		line := strings.TrimSpace(scanner.Text())
		if len(line) != 9 {
			return b, fmt.Errorf("row %d: expected 9 characters, got %q", row, line)
		}
		for col, ch := range line {
			if ch == '.' || ch == '0' {
				continue
			}
			if ch < '1' || ch > '9' {
				return b, fmt.Errorf("row %d: invalid character %q", row, ch)
			}
			b[row][col] = int(ch - '0')
		}
	}
	return b, nil
}
