// apps/go-server/cmd/ladder/main.go
//
// Command-line access to the word ladder solver, sharing the server's word
// lists:
//   ladder neighbors <word>
//   ladder path <from> <to> [--max-steps n]
//   ladder pick [--length n] [--max-steps n] [--attempts n] [--seed n]
//   ladder lengths
//
// The dictionary comes from --words, then WORDS_FILE, then the embedded list.

package main

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordgames/apps/go-server/internal/ladder"
	"github.com/robalobadob/wordgames/apps/go-server/internal/words"
)

// Exit codes.
const (
	exitOK       = 0
	exitError    = 1
	exitNotFound = 2
)

func main() {
	_ = godotenv.Load()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.WarnLevel)

	if err := newRootCmd().Execute(); err != nil {
		if errors.Is(err, ladder.ErrNoPathWithinBound) || errors.Is(err, ladder.ErrNoSolvablePair) {
			os.Exit(exitNotFound)
		}
		os.Exit(exitError)
	}
	os.Exit(exitOK)
}

type rootFlags struct {
	wordsFile string
}

func newRootCmd() *cobra.Command {
	f := &rootFlags{}
	root := &cobra.Command{
		Use:          "ladder",
		Short:        "Explore the word ladder graph",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&f.wordsFile, "words", os.Getenv("WORDS_FILE"), "word list file (one word per line)")

	root.AddCommand(
		newNeighborsCmd(f),
		newPathCmd(f),
		newPickCmd(f),
		newLengthsCmd(f),
	)
	return root
}

// dictionary loads only the ladder list; hangman words are irrelevant here.
func (f *rootFlags) dictionary() (*ladder.Dictionary, error) {
	lex, err := words.LoadFiles(f.wordsFile, "")
	if err != nil {
		return nil, err
	}
	return lex.Ladder, nil
}

func newNeighborsCmd(f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "neighbors <word>",
		Short: "List dictionary words one letter away",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := f.dictionary()
			if err != nil {
				return err
			}
			for _, w := range ladder.Neighbors(d, args[0]) {
				fmt.Fprintln(cmd.OutOrStdout(), w)
			}
			return nil
		},
	}
}

func newPathCmd(f *rootFlags) *cobra.Command {
	var maxSteps int
	cmd := &cobra.Command{
		Use:   "path <from> <to>",
		Short: "Print a shortest ladder between two words",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := f.dictionary()
			if err != nil {
				return err
			}
			p, err := ladder.ShortestPath(d, args[0], args[1], maxSteps)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%d steps)\n", strings.Join(p, " -> "), p.Steps())
			return nil
		},
	}
	cmd.Flags().IntVar(&maxSteps, "max-steps", ladder.DefaultMaxSteps, "longest ladder to search for")
	return cmd
}

func newPickCmd(f *rootFlags) *cobra.Command {
	var (
		length, maxSteps, attempts int
		seed                       uint64
	)
	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Pick a random solvable start/target pair",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := f.dictionary()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("seed") {
				seed = rand.Uint64()
			}
			rng := rand.New(rand.NewPCG(seed, seed))
			pair, err := ladder.PickSolvablePair(d, rng, length, maxSteps, attempts)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s -> %s\n", pair.Start, pair.Target)
			fmt.Fprintf(out, "solution: %s (%d steps)\n", strings.Join(pair.Path, " -> "), pair.Path.Steps())
			log.Debug().Uint64("seed", seed).Msg("pair picked")
			return nil
		},
	}
	cmd.Flags().IntVar(&length, "length", ladder.DefaultWordLength, "word length")
	cmd.Flags().IntVar(&maxSteps, "max-steps", ladder.DefaultMaxSteps, "longest acceptable solution")
	cmd.Flags().IntVar(&attempts, "attempts", ladder.DefaultMaxAttempts, "random pairs to try before giving up")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "seed for reproducible picks")
	return cmd
}

func newLengthsCmd(f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "lengths",
		Short: "Show word counts per length",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := f.dictionary()
			if err != nil {
				return err
			}
			for _, n := range d.Lengths() {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%d\n", n, len(d.Words(n)))
			}
			return nil
		},
	}
}
