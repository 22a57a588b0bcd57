package cli

import (
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	cfg    *Config
	client *Client
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	var waitToken time.Duration

	rootCmd := &cobra.Command{
		Use:   "tradectl",
		Short: "CLI tool for the trade evaluator API",
		Long: `tradectl is a CLI tool for interacting with the fantasy football trade
evaluator JSON API.

It supports account management, submitting trades for grading, and browsing
trade history.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load token from file if not provided via flag/env
			if waitToken > 0 {
				if err := WaitForCredential(cmd.Context(), cfg, WaitOptions{Timeout: waitToken}); err != nil {
					return err
				}
			} else if err := cfg.LoadToken(); err != nil {
				return err
			}

			// Create HTTP client
			client = NewClient(cfg.ServerURL, cfg.Token)
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL (env: TRADEEVAL_SERVER)")
	rootCmd.PersistentFlags().StringVar(&cfg.Token, "token", cfg.Token, "Session token (env: TRADEEVAL_TOKEN)")
	rootCmd.PersistentFlags().StringVar(&cfg.TokenFile, "token-file", cfg.TokenFile, "Token file path (env: TRADEEVAL_TOKEN_FILE)")
	rootCmd.PersistentFlags().DurationVar(&waitToken, "wait-token", 0, "Wait up to this long for a session token to become available")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")

	// Add subcommands
	rootCmd.AddCommand(newAuthCmd())
	rootCmd.AddCommand(newTradeCmd())
	rootCmd.AddCommand(newHistoryCmd())
	rootCmd.AddCommand(newHealthCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
