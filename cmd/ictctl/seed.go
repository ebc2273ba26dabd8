package main

import (
	"github.com/spf13/cobra"

	"github.com/skavtech/ict-platform/internal/catalog/seed"
)

func newSeedCmd(d deps) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert the reference catalog into the catalog database",
		Long:  "Connects with the DB_* environment variables. An already populated catalog is skipped unless --force is given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			repo, closeFn, err := d.openCatalog(ctx)
			if err != nil {
				return err
			}
			defer closeFn()

			res, err := seed.Run(ctx, repo, force)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), res)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "seed even when products already exist")
	return cmd
}
