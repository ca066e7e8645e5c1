package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

func newHintCmd() *cobra.Command {
	var (
		found      string
		hintNumber int
	)
	cmd := &cobra.Command{
		Use:   "hint <puzzle-id>",
		Short: "Reveal an unfound quartile word with its definition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := buildService(cfg)
			if err != nil {
				return err
			}
			ctx, cancel := contextWithTimeout(cmd.Context(), 10*time.Second)
			defer cancel()

			p, err := svc.Load(ctx, args[0])
			if err != nil {
				return fmt.Errorf("load puzzle: %w", err)
			}
			foundSet := make(map[string]struct{})
			for _, w := range strings.Split(found, ",") {
				if w = strings.ToUpper(strings.TrimSpace(w)); w != "" {
					foundSet[w] = struct{}{}
				}
			}

			h, ok, err := svc.Hint(ctx, p, foundSet, hintNumber)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "all quartiles found, no hint available")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (penalty %dms)\n", h.Word, h.Definition, h.PenaltyMS)
			return nil
		},
	}
	cmd.Flags().StringVar(&found, "found", "", "comma-separated words already found")
	cmd.Flags().IntVar(&hintNumber, "number", 1, "1-indexed hint number for the penalty schedule")
	return cmd
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored puzzles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := buildService(cfg)
			if err != nil {
				return err
			}
			metas, err := svc.List(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, m := range metas {
				fmt.Fprintf(out, "%s  %-10s  %3d pts  %s\n", m.ID, m.Date, m.TotalPoints, m.Name)
			}
			fmt.Fprintf(out, "%d puzzles\n", len(metas))
			return nil
		},
	}
}
