// Package cli wires configuration, storage and the HTTP server behind the
// cupcake-api commands.
package cli

import (
	"github.com/spf13/cobra"
)

// rootOptions holds flags shared by every command.
type rootOptions struct {
	envFile string
}

// NewRootCommand builds the cupcake-api command tree. Running it without a
// subcommand starts the server.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "cupcake-api",
		Short:         "Cupcake catalogue JSON API",
		Long:          "cupcake-api serves a small cupcake catalogue over a JSON API with a single-page front end",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, opts)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "dotenv file loaded before reading the environment")

	rootCmd.AddCommand(
		newServeCommand(opts),
		newMigrateCommand(opts),
		newSeedCommand(opts),
	)

	return rootCmd
}

// Execute runs the CLI
func Execute() error {
	return NewRootCommand().Execute()
}
