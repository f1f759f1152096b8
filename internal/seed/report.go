package seed

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// Tally counts the rows a phase created versus found already present.
type Tally struct {
	Created  int
	Existing int
}

func (t *Tally) add(created bool) {
	if created {
		t.Created++
	} else {
		t.Existing++
	}
}

func (t Tally) Total() int { return t.Created + t.Existing }

// Skip records a dependent row that was not provisioned because a parent
// reference could not be resolved.
type Skip struct {
	Entity string
	Key    string
	Reason string
}

// Credential is a login line for the summary. Password is empty when the
// account already existed and so kept its stored hash.
type Credential struct {
	Username string
	FullName string
	Role     string
	Section  string
	Password string
}

type Report struct {
	Sections        Tally
	Tables          Tally
	Users           Tally
	Categories      Tally
	Products        Tally
	ChefPermissions Tally

	Skipped     []Skip
	Credentials []Credential
}

func (r *Report) skip(entity, key, reason string) {
	r.Skipped = append(r.Skipped, Skip{Entity: entity, Key: key, Reason: reason})
}

// WriteSummary prints the per-entity tallies, skipped rows and the login
// credentials of the seeded accounts.
func (r *Report) WriteSummary(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ENTITY\tCREATED\tEXISTING")
	for _, row := range []struct {
		name string
		t    Tally
	}{
		{"sections", r.Sections},
		{"tables", r.Tables},
		{"users", r.Users},
		{"categories", r.Categories},
		{"products", r.Products},
		{"chef permissions", r.ChefPermissions},
	} {
		fmt.Fprintf(tw, "%s\t%d\t%d\n", row.name, row.t.Created, row.t.Existing)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(r.Skipped) > 0 {
		fmt.Fprintf(w, "\n%d row(s) skipped:\n", len(r.Skipped))
		for _, s := range r.Skipped {
			fmt.Fprintf(w, "  %s %q: %s\n", s.Entity, s.Key, s.Reason)
		}
	}

	fmt.Fprintln(w, "\nLogin credentials:")
	tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "  USERNAME\tPASSWORD\tROLE\tSECTION\tNAME")
	for _, c := range r.Credentials {
		pw := c.Password
		if pw == "" {
			pw = "(unchanged)"
		}
		section := c.Section
		if section == "" {
			section = "-"
		}
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\t%s\n", c.Username, pw, c.Role, section, c.FullName)
	}
	return tw.Flush()
}
