package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/vokabulatr/vokabulatr/internal/cli"
)

type quizOptions struct {
	shuffle bool
	flip    bool
	report  string
}

func addQuizFlags(flags *pflag.FlagSet, opts *quizOptions) {
	flags.BoolVar(&opts.shuffle, "shuffle", false, "Shuffle the cards before the first question (overrides session.shuffle)")
	flags.BoolVar(&opts.flip, "flip", false, "Ask for the front side of each card (overrides session.flip)")
	flags.StringVar(&opts.report, "report", "", "Write a session report when the session ends (.md, .html or .pdf)")
}

func newQuizCommand() *cobra.Command {
	var opts quizOptions

	command := &cobra.Command{
		Use:   "quiz <deck>",
		Short: "Drill a deck of flashcards (CSV or YAML)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("shuffle") {
				cfg.Session.Shuffle = opts.shuffle
			}
			if flags.Changed("flip") {
				cfg.Session.Flip = opts.flip
			}

			deckPath := args[0]
			drill, err := cli.NewDrillCLI(deckPath, cfg, cmd.InOrStdin(), cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if cfg.Session.Flip {
				drill.FlipCards()
			}
			if cfg.Session.Shuffle {
				drill.ShuffleCards()
			}
			if reportPath := resolveReportPath(cfg, opts.report); reportPath != "" {
				if err := drill.WriteReportOnFinish(reportPath); err != nil {
					return err
				}
			}

			slog.Debug("starting drill session",
				slog.String("session_id", drill.SessionID().String()),
				slog.String("deck", deckPath),
				slog.Bool("shuffle", cfg.Session.Shuffle),
				slog.Bool("flip", cfg.Session.Flip),
			)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Starting drill session with %d cards\n", drill.GetCardCount())
			return drill.Run(cmd.Context(), drill)
		},
	}
	addQuizFlags(command.Flags(), &opts)

	return command
}
