package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vokabulatr/vokabulatr/internal/deckfile"
	"github.com/vokabulatr/vokabulatr/internal/quiz"
)

func newValidateCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "validate <deck>...",
		Short: "Check that deck files can be loaded",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := validateDecks(cmd.OutOrStdout(), args)
			if failed > 0 {
				return fmt.Errorf("validation failed with %d error(s)", failed)
			}
			return nil
		},
	}

	return command
}

// validateDecks prints one line per deck and returns how many could not be loaded
func validateDecks(output io.Writer, deckPaths []string) int {
	failed := 0
	for _, deckPath := range deckPaths {
		count, err := validateDeck(deckPath)
		if err != nil {
			failed++
			_, _ = fmt.Fprintf(output, "✗ %s: %v\n", deckPath, err)
			continue
		}
		_, _ = fmt.Fprintf(output, "✓ %s: %d cards\n", deckPath, count)
	}
	return failed
}

func validateDeck(deckPath string) (int, error) {
	pairs, err := deckfile.Load(deckPath)
	if err != nil {
		return 0, err
	}
	deck, err := quiz.NewDeck(pairs)
	if err != nil {
		if errors.Is(err, quiz.ErrEmptyDeck) {
			return 0, errors.New("the deck has no cards")
		}
		return 0, fmt.Errorf("quiz.NewDeck() > %w", err)
	}
	return deck.Len(), nil
}
