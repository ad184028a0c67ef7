package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var errNoMatch = errors.New("the answer does not match")

func newMatchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "match <reference> <candidate>",
		Short: "Show how an answer is compared with the expected one",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			policy := cfg.MatchPolicy()
			reference, candidate := args[0], args[1]
			output := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(output, "reference: %q\n", policy.Normalize(reference))
			_, _ = fmt.Fprintf(output, "candidate: %q\n", policy.Normalize(candidate))
			if !policy.Matches(reference, candidate) {
				_, _ = fmt.Fprintln(output, "result:    no match")
				return errNoMatch
			}
			_, _ = fmt.Fprintln(output, "result:    match")
			return nil
		},
	}
}
