package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/codecade/internal/api"
	"github.com/abhisek/codecade/internal/app"
	"github.com/abhisek/codecade/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "codecade",
	Short: "AI coding challenges in your terminal",
	Long:  "Practice AI-generated multiple-choice coding challenges, keep a daily streak, and review your history without leaving the terminal.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		client := newClient(cfg)
		return app.Run(app.Options{Config: cfg, Client: client})
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("api-url", "", "Platform API root (overrides CODECADE_API_URL)")
	rootCmd.PersistentFlags().String("token", "", "Bearer token (overrides CODECADE_TOKEN)")
	rootCmd.PersistentFlags().String("theme", "", "Color scheme: dark or light (overrides CODECADE_THEME)")

	rootCmd.AddCommand(quotaCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveConfig layers flags over the environment config and validates the
// result.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Load()
	if u, _ := cmd.Flags().GetString("api-url"); u != "" {
		cfg.BaseURL = u
	}
	if t, _ := cmd.Flags().GetString("token"); t != "" {
		cfg.Token = t
	}
	if th, _ := cmd.Flags().GetString("theme"); th != "" {
		cfg.Theme = th
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func newClient(cfg config.Config) *api.Client {
	return api.New(cfg.BaseURL, api.StaticToken(cfg.Token), api.WithTimeout(cfg.Timeout))
}
