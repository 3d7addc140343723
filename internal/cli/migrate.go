package cli

import (
	"github.com/spf13/cobra"
)

func newMigrateCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the cupcakes table",
		Long:  "Creates the cupcakes table in the configured database if it does not exist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), opts, true)
			if err != nil {
				return err
			}
			defer a.close()

			a.logger.Info().Str("driver", a.cfg.Database.Driver).Msg("migration completed")
			return nil
		},
	}
}
