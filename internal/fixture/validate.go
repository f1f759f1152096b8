package fixture

import (
	"errors"
	"fmt"
	"strings"

	"github.com/example/adisyon/internal/domain/menu"
	"github.com/example/adisyon/internal/domain/staff"
)

var ErrInvalid = errors.New("invalid fixture")

// Validate checks identity keys, enums, prices and table capacities.
// Cross references (product categories, user sections, grant targets) are
// left to the seeder, which skips rows whose parent cannot be resolved.
func (fx *Fixture) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	seen := map[string]bool{}
	for i, s := range fx.Sections {
		switch {
		case strings.TrimSpace(s.Name) == "":
			bad("sections[%d]: name is required", i)
		case seen[s.Name]:
			bad("sections[%d]: duplicate name %q", i, s.Name)
		}
		seen[s.Name] = true
		if s.Tables <= 0 {
			bad("section %q: table count must be positive, got %d", s.Name, s.Tables)
		}
		for _, r := range s.Capacity {
			if r.Seats <= 0 {
				bad("section %q: capacity rule upto=%d has %d seats", s.Name, r.UpTo, r.Seats)
			}
		}
		for n := 1; n <= s.Tables; n++ {
			if _, ok := s.CapacityFor(n); !ok {
				bad("section %q: no capacity rule covers table %d", s.Name, n)
				break
			}
		}
	}

	seen = map[string]bool{}
	for i, u := range fx.Users {
		switch {
		case strings.TrimSpace(u.Username) == "":
			bad("users[%d]: username is required", i)
		case seen[u.Username]:
			bad("users[%d]: duplicate username %q", i, u.Username)
		}
		seen[u.Username] = true
		role, err := staff.ParseRole(u.Role)
		if err != nil {
			bad("user %q: %v", u.Username, err)
			continue
		}
		if u.Section != "" && role != staff.RoleChef {
			bad("user %q: only chefs are pinned to a section", u.Username)
		}
	}

	seen = map[string]bool{}
	for i, c := range fx.Categories {
		switch {
		case strings.TrimSpace(c) == "":
			bad("categories[%d]: name is required", i)
		case seen[c]:
			bad("categories[%d]: duplicate name %q", i, c)
		}
		seen[c] = true
	}

	seen = map[string]bool{}
	for i, p := range fx.Products {
		switch {
		case strings.TrimSpace(p.Name) == "":
			bad("products[%d]: name is required", i)
		case seen[p.Name]:
			bad("products[%d]: duplicate name %q", i, p.Name)
		}
		seen[p.Name] = true
		if _, err := menu.ParsePrice(p.Price); err != nil {
			bad("product %q: %v", p.Name, err)
		}
		if _, err := menu.ParseKitchen(p.Kitchen); err != nil {
			bad("product %q: %v", p.Name, err)
		}
	}

	for i, g := range fx.Grants {
		if strings.TrimSpace(g.User) == "" {
			bad("grants[%d]: user is required", i)
		}
	}

	return errors.Join(errs...)
}
