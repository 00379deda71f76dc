package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfg    *Config
	client *Client
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "kdfca",
		Short: "CLI tool for the football academy API",
		Long: `kdfca is a CLI tool for the football academy JSON API.

It submits player registrations, coach applications and sign-ups, reviews
submissions, and drives the todo list and counter.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cfg.Output != FormatText && cfg.Output != FormatJSON {
				return fmt.Errorf("--output must be %q or %q", FormatText, FormatJSON)
			}
			client = NewClient(cfg.ServerURL)
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL (env: KDFCA_SERVER)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")

	// Add subcommands
	rootCmd.AddCommand(newHealthCmd())
	rootCmd.AddCommand(newPlayerCmd())
	rootCmd.AddCommand(newCoachCmd())
	rootCmd.AddCommand(newUserCmd())
	rootCmd.AddCommand(newMembersCmd())
	rootCmd.AddCommand(newTodoCmd())
	rootCmd.AddCommand(newCounterCmd())
	rootCmd.AddCommand(newPasswordCmd())
	rootCmd.AddCommand(newPurgeCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// output returns a formatter writing to the command's stdout
func output(cmd *cobra.Command) *Output {
	return NewOutput(cmd.OutOrStdout(), cfg.Output)
}
