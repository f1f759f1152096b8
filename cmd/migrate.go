package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	var databaseURL string
	c := &cobra.Command{
		Use:   "migrate",
		Short: "Apply schema migrations without seeding",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(databaseURL)
			if err != nil {
				return err
			}
			defer e.close()

			if err := e.open(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "schema up to date (%s)\n", e.db.Dialect())
			return nil
		},
	}
	c.Flags().StringVar(&databaseURL, "database-url", "", "database URL (overrides DATABASE_URL)")
	return c
}
