package cli

import (
	"errors"

	"cupcake-api/internal/seed"
	"cupcake-api/internal/service"

	"github.com/spf13/cobra"
)

func newSeedCommand(opts *rootOptions) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "seed [file]",
		Short: "Load cupcakes from a seed file",
		Long:  "Loads cupcakes from a JSON or YAML seed file (optionally gzipped). Defaults to SEED_FILE.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			a, err := newApp(ctx, opts, false)
			if err != nil {
				return err
			}
			defer a.close()

			path := a.cfg.Seed.File
			if len(args) == 1 {
				path = args[0]
			}
			if path == "" {
				return errors.New("no seed file given: pass a path or set SEED_FILE")
			}

			seeder := seed.NewSeeder(
				newSeedLoader(ctx, a.cfg, a.logger),
				service.NewCupcakeService(a.repo, a.logger),
				a.repo,
				a.logger,
			)

			_, err = seeder.Run(ctx, path, force)
			return err
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "seed even when cupcakes already exist")

	return cmd
}
