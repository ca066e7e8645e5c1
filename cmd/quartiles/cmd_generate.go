package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newGenerateCmd() *cobra.Command {
	var (
		seed        int64
		date        string
		name        string
		excludeFile string
		timeout     time.Duration
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate and store one puzzle",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := buildService(cfg)
			if err != nil {
				return err
			}
			excluded, err := loadExclusions(excludeFile)
			if err != nil {
				return err
			}

			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			ctx, cancel := contextWithTimeout(cmd.Context(), timeout)
			defer cancel()

			p, st, err := svc.Generate(ctx, seed, excluded)
			if err != nil {
				return fmt.Errorf("generate: %w", err)
			}
			logger.Info("puzzle generated",
				"attempts", st.Attempts,
				"nodes", st.Nodes,
				"dur", st.Duration.Round(time.Millisecond),
				"totalPoints", p.TotalPoints,
				"validWords", len(p.ValidWords),
			)

			if ok, violations, err := svc.Validate(ctx, p); err != nil {
				return err
			} else if !ok {
				return fmt.Errorf("generated puzzle failed validation: %s", strings.Join(violations, "; "))
			}

			p.ID = uuid.NewString()
			p.Name = name
			if date == "" {
				date = time.Now().Format("2006-01-02")
			}
			p.Date = date
			if err := svc.Save(ctx, p); err != nil {
				return fmt.Errorf("save: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "puzzle %s (%s): %d tiles, %d valid words, %d points\n",
				p.ID, p.Date, len(p.Tiles), len(p.ValidWords), p.TotalPoints)
			return nil
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = time-based)")
	cmd.Flags().StringVar(&date, "date", "", "puzzle date YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&name, "name", "", "optional puzzle name")
	cmd.Flags().StringVar(&excludeFile, "exclude", "", "file of cooldown quartile words, one per line")
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "generation deadline")
	return cmd
}

// loadExclusions reads the cooldown list: quartile words barred from
// reuse, maintained by the host application's scheduler.
func loadExclusions(path string) (map[string]struct{}, error) {
	out := make(map[string]struct{})
	if path == "" {
		return out, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if w := strings.ToUpper(strings.TrimSpace(sc.Text())); w != "" {
			out[w] = struct{}{}
		}
	}
	return out, sc.Err()
}
