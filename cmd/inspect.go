package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/adisyon/internal/store"
)

func newInspectCmd() *cobra.Command {
	var databaseURL string
	c := &cobra.Command{
		Use:   "inspect <username>",
		Short: "Show a staff account's role, section and granted categories",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(databaseURL)
			if err != nil {
				return err
			}
			defer e.close()

			if err := e.open(cmd.Context()); err != nil {
				return err
			}

			st := store.New(e.db)
			u, err := st.UserByUsername(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("user %q: %w", args[0], err)
			}
			cats, err := st.ChefCategories(cmd.Context(), u.ID)
			if err != nil {
				return err
			}

			section := u.SectionName
			if section == "" {
				section = "-"
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "username:   %s\n", u.Username)
			fmt.Fprintf(out, "full name:  %s\n", u.FullName)
			fmt.Fprintf(out, "role:       %s\n", u.Role)
			fmt.Fprintf(out, "section:    %s\n", section)
			if u.IsChef() {
				fmt.Fprintf(out, "categories: %s\n", strings.Join(cats, ", "))
			}
			return nil
		},
	}
	c.Flags().StringVar(&databaseURL, "database-url", "", "database URL (overrides DATABASE_URL)")
	return c
}
