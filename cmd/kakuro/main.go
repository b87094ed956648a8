// Command kakuro reads a cryptarithm Kakuro grid and prints the digit the
// solution assigns to each letter hinted in a grid cell; letters that
// appear only in clues are not printed. It mirrors the teacher's thin cmd/ entry
// points (kpitt-sudoku/cmd/sudoku/main.go) built on cobra.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/wallberg/dlxcc"
	"github.com/wallberg/dlxcc/internal/kakuro"
)

func main() {
	var debug, progress bool
	var verbosity int

	root := &cobra.Command{
		Use:   "kakuro [grid-file]",
		Short: "Solve a cryptarithm Kakuro grid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, debug, progress, verbosity)
		},
	}
	root.Flags().BoolVar(&debug, "debug", false, "trace every cover/hide/purify primitive and dump the arena")
	root.Flags().BoolVar(&progress, "progress", false, "log periodic search progress estimates")
	root.Flags().IntVar(&verbosity, "verbosity", 0, "include a full arena dump with each progress log when > 0 (requires --debug)")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string, debug, progress bool, verbosity int) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading grid file: %w", err)
	}

	grid, err := kakuro.ParseString(string(data))
	if err != nil {
		return fmt.Errorf("parsing grid: %w", err)
	}

	items, subsets, choices, err := kakuro.Compile(grid)
	if err != nil {
		return fmt.Errorf("compiling clues: %w", err)
	}

	m, err := dlxcc.Build(items, subsets)
	if err != nil {
		return fmt.Errorf("building solver: %w", err)
	}

	if debug || progress {
		logger := zerolog.New(cmd.ErrOrStderr()).With().Timestamp().Logger()
		m.WithStats(&dlxcc.Stats{
			Debug:     debug,
			Progress:  progress,
			Verbosity: verbosity,
			Delta:     1000,
			Logger:    logger,
		})
	}

	solution, ok := m.FindOne()
	if !ok {
		fmt.Fprintln(cmd.OutOrStdout(), "no solution")
		return nil
	}

	letters := map[byte]int{}
	for _, name := range solution {
		choice := choices[name]
		for i, cell := range choice.Cells {
			if grid.At(cell.Row, cell.Col).Kind == kakuro.Prefilled {
				letters[grid.At(cell.Row, cell.Col).Hint] = choice.Digit[i]
			}
		}
	}

	for letter := byte('A'); letter <= 'J'; letter++ {
		if digit, ok := letters[letter]; ok {
			fmt.Fprintf(cmd.OutOrStdout(), "%c = %d\n", letter, digit)
		}
	}
	if m.Stats() != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "nodes=%d solutions=%d maxLevel=%d\n",
			m.Stats().Nodes, m.Stats().Solutions, m.Stats().MaxLevel)
	}
	return nil
}
