package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var quotaCmd = &cobra.Command{
	Use:   "quota",
	Short: "Show today's remaining generation quota",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		client := newClient(cfg)

		ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Timeout)
		defer cancel()

		state, err := client.Quota(ctx)
		if err != nil {
			return err
		}

		fmt.Printf("Quota: %d/%d challenges remaining today\n", state.Remaining, state.Total)
		if state.Exhausted() && !state.NextReset.IsZero() {
			fmt.Printf("Resets %s\n", state.NextReset.Format("Jan 2 15:04 MST"))
		}
		return nil
	},
}
