package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/codecade/internal/api"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print your progress without launching the TUI",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		client := newClient(cfg)

		timeframe, _ := cmd.Flags().GetString("timeframe")

		ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Timeout)
		defer cancel()

		report, err := client.Stats(ctx, timeframe)
		if err != nil {
			return err
		}

		fmt.Printf("Challenges solved: %d\n", report.TotalChallenges)
		for _, d := range api.Difficulties {
			if n, ok := report.ByDifficulty[d]; ok {
				fmt.Printf("  %-8s %d\n", d, n)
			}
		}
		fmt.Printf("Streak: %d days\n", report.Streak)

		if len(report.FavoriteTopics) > 0 {
			var parts []string
			for _, t := range report.FavoriteTopics {
				parts = append(parts, fmt.Sprintf("%s (%d)", t.Name, t.Count))
			}
			fmt.Println("Favorite topics:", strings.Join(parts, ", "))
		}

		unlocked := 0
		for _, a := range report.Achievements {
			if a.Unlocked {
				unlocked++
			}
		}
		fmt.Printf("Achievements: %d/%d unlocked\n", unlocked, len(report.Achievements))
		return nil
	},
}

func init() {
	statsCmd.Flags().String("timeframe", api.TimeframeAll, "Timeframe: all, month, or week")
}
