package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/adisyon/internal/auth"
)

// newPasswordCmd prints a fresh random password and its bcrypt hash, for
// operators resetting a seeded account by hand.
func newPasswordCmd() *cobra.Command {
	var cost int
	c := &cobra.Command{
		Use:   "password",
		Short: "Generate a random account password and its bcrypt hash",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pw, err := auth.GeneratePassword()
			if err != nil {
				return err
			}
			hash, err := auth.HashPassword(pw, cost)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "password=%s\nbcrypt=%s\n", pw, hash)
			return nil
		},
	}
	c.Flags().IntVar(&cost, "cost", auth.DefaultCost, "bcrypt cost")
	return c
}
