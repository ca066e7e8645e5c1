package main

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

func newSolveCmd() *cobra.Command {
	var timeout time.Duration
	cmd := &cobra.Command{
		Use:   "solve <puzzle-id>",
		Short: "Enumerate every valid word in a stored puzzle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := buildService(cfg)
			if err != nil {
				return err
			}
			ctx, cancel := contextWithTimeout(cmd.Context(), timeout)
			defer cancel()

			p, err := svc.Load(ctx, args[0])
			if err != nil {
				return fmt.Errorf("load puzzle: %w", err)
			}
			if ok, violations, err := svc.Validate(ctx, p); err != nil {
				return err
			} else if !ok {
				logger.Warn("stored puzzle fails validation", "violations", strings.Join(violations, "; "))
			}

			words, st, err := svc.Solve(ctx, p.Tiles)
			if err != nil {
				return err
			}
			logger.Info("solved", "words", len(words), "nodes", st.Nodes, "dur", st.Duration.Round(time.Millisecond))

			texts := make([]string, 0, len(words))
			for t := range words {
				texts = append(texts, t)
			}
			sort.Strings(texts)
			total := 0
			out := cmd.OutOrStdout()
			for _, t := range texts {
				w := words[t]
				marker := ""
				if p.IsQuartile(t) {
					marker = "  *quartile"
				}
				fmt.Fprintf(out, "%-18s %d tiles  %2d pts%s\n", t, w.TileCount(), w.Points, marker)
				total += w.Points
			}
			fmt.Fprintf(out, "%d words, %d points total\n", len(texts), total)
			return nil
		},
	}
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "solve deadline")
	return cmd
}
