package cmd

import (
	"github.com/spf13/cobra"
)

const (
	app = "jobboard"
)

// Execute executes the root command.
func Execute() error {
	return newRootCmd().Execute()
}

// newRootCmd wires every subcommand. Commands are built fresh on each call so
// tests can run them without sharing flag state.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           app,
		Short:         "jobboard scores candidates against job requirements and serves the results over HTTP",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.PersistentFlags().String("config", ".", "directory containing app.env")

	rootCmd.AddCommand(
		newServeCmd(),
		newMatchCmd(),
		newTokenCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

// configPath returns the --config flag value.
func configPath(cmd *cobra.Command) string {
	path, err := cmd.Flags().GetString("config")
	if err != nil || path == "" {
		return "."
	}
	return path
}
