package seed

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/example/adisyon/internal/domain/menu"
	"github.com/example/adisyon/internal/domain/staff"
	"github.com/example/adisyon/internal/domain/venue"
	"github.com/example/adisyon/internal/fixture"
)

// Store is the create-if-absent persistence the seeder needs.
type Store interface {
	EnsureSection(ctx context.Context, s venue.Section) (venue.Section, bool, error)
	EnsureTable(ctx context.Context, t venue.Table) (venue.Table, bool, error)
	EnsureUser(ctx context.Context, u staff.User) (staff.User, bool, error)
	EnsureCategory(ctx context.Context, c menu.Category) (menu.Category, bool, error)
	EnsureProduct(ctx context.Context, p menu.Product) (menu.Product, bool, error)
	EnsureChefPermission(ctx context.Context, p menu.ChefPermission) (menu.ChefPermission, bool, error)
}

type Options struct {
	Passwords PasswordPolicy
	Logger    *zap.Logger
}

type Seeder struct {
	store Store
	pw    PasswordPolicy
	log   *zap.Logger
}

func New(s Store, opts Options) *Seeder {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Seeder{store: s, pw: opts.Passwords, log: log}
}

// run holds the rows ensured so far; later phases resolve names against it.
type run struct {
	fx         *fixture.Fixture
	report     *Report
	sections   map[string]venue.Section
	users      map[string]staff.User
	categories map[string]menu.Category
}

// Run provisions the fixture in six ordered phases. An invalid fixture is
// rejected before any write. The first store error aborts the run; rows
// committed before it stay in place and a re-run converges.
func (s *Seeder) Run(ctx context.Context, fx *fixture.Fixture) (*Report, error) {
	if err := fx.Validate(); err != nil {
		return nil, err
	}
	plan, err := planPasswords(fx.Users, s.pw)
	if err != nil {
		return nil, err
	}

	r := &run{
		fx:         fx,
		report:     &Report{},
		sections:   map[string]venue.Section{},
		users:      map[string]staff.User{},
		categories: map[string]menu.Category{},
	}

	phases := []struct {
		name string
		fn   func(context.Context, *run) error
	}{
		{"sections", s.sections},
		{"tables", s.tables},
		{"users", func(ctx context.Context, r *run) error { return s.users(ctx, r, plan) }},
		{"categories", s.categories},
		{"products", s.products},
		{"chef permissions", s.permissions},
	}
	for _, p := range phases {
		start := time.Now()
		if err := p.fn(ctx, r); err != nil {
			s.log.Error("phase failed", zap.String("phase", p.name), zap.Error(err))
			return r.report, err
		}
		s.log.Info("phase done", zap.String("phase", p.name), zap.Duration("took", time.Since(start)))
	}

	for _, sk := range r.report.Skipped {
		s.log.Warn("row skipped", zap.String("entity", sk.Entity), zap.String("key", sk.Key), zap.String("reason", sk.Reason))
	}
	return r.report, nil
}

func (s *Seeder) sections(ctx context.Context, r *run) error {
	for _, fs := range r.fx.Sections {
		sec, created, err := s.store.EnsureSection(ctx, venue.Section{Name: fs.Name, Description: fs.Description})
		if err != nil {
			return err
		}
		r.report.Sections.add(created)
		r.sections[fs.Name] = sec
		s.log.Debug("section", zap.String("name", sec.Name), zap.Bool("created", created))
	}
	return nil
}

func (s *Seeder) tables(ctx context.Context, r *run) error {
	for _, fs := range r.fx.Sections {
		sec := r.sections[fs.Name]
		for n := 1; n <= fs.Tables; n++ {
			capacity, ok := fs.CapacityFor(n)
			if !ok {
				return fmt.Errorf("section %q: no capacity rule covers table %d", fs.Name, n)
			}
			_, created, err := s.store.EnsureTable(ctx, venue.Table{SectionID: sec.ID, Number: n, Capacity: capacity})
			if err != nil {
				return err
			}
			r.report.Tables.add(created)
		}
		s.log.Debug("tables", zap.String("section", fs.Name), zap.Int("count", fs.Tables))
	}
	return nil
}

func (s *Seeder) users(ctx context.Context, r *run, plan passwordPlan) error {
	h := &hasher{cost: s.pw.Cost}
	for _, fu := range r.fx.Users {
		u := staff.User{Username: fu.Username, FullName: fu.FullName, Role: staff.Role(fu.Role)}
		if fu.Section != "" {
			sec, ok := r.sections[fu.Section]
			if !ok {
				r.report.skip("user", fu.Username, "unknown section "+fu.Section)
				continue
			}
			u.SectionID = &sec.ID
		}

		hash, err := h.hash(plan, fu.Username)
		if err != nil {
			return err
		}
		u.PasswordHash = hash

		got, created, err := s.store.EnsureUser(ctx, u)
		if err != nil {
			return err
		}
		r.report.Users.add(created)
		r.users[fu.Username] = got

		cred := Credential{Username: got.Username, FullName: got.FullName, Role: string(got.Role), Section: got.SectionName}
		if created {
			cred.Password = plan.plain[fu.Username]
		}
		r.report.Credentials = append(r.report.Credentials, cred)
		s.log.Debug("user", zap.String("username", got.Username), zap.String("role", string(got.Role)), zap.Bool("created", created))
	}
	return nil
}

func (s *Seeder) categories(ctx context.Context, r *run) error {
	for _, name := range r.fx.Categories {
		c, created, err := s.store.EnsureCategory(ctx, menu.Category{Name: name})
		if err != nil {
			return err
		}
		r.report.Categories.add(created)
		r.categories[name] = c
	}
	return nil
}

func (s *Seeder) products(ctx context.Context, r *run) error {
	for _, fp := range r.fx.Products {
		cat, ok := r.categories[fp.Category]
		if !ok {
			r.report.skip("product", fp.Name, "unknown category "+fp.Category)
			continue
		}
		price, err := menu.ParsePrice(fp.Price)
		if err != nil {
			return err
		}
		p, created, err := s.store.EnsureProduct(ctx, menu.Product{
			Name:       fp.Name,
			Price:      price,
			CategoryID: cat.ID,
			Kitchen:    menu.Kitchen(fp.Kitchen),
		})
		if err != nil {
			return err
		}
		r.report.Products.add(created)
		s.log.Debug("product", zap.String("name", p.Name), zap.Stringer("price", p.Price), zap.Bool("created", created))
	}
	return nil
}

// permissions only ever adds grants; removing a category from the fixture
// does not revoke a grant seeded by an earlier run.
func (s *Seeder) permissions(ctx context.Context, r *run) error {
	for _, g := range r.fx.Grants {
		u, ok := r.users[g.User]
		for _, name := range g.Categories {
			key := g.User + "/" + name
			if !ok {
				r.report.skip("chef permission", key, "unknown user "+g.User)
				continue
			}
			if !u.IsChef() {
				r.report.skip("chef permission", key, "user "+g.User+" is not a chef")
				continue
			}
			cat, found := r.categories[name]
			if !found {
				r.report.skip("chef permission", key, "unknown category "+name)
				continue
			}
			_, created, err := s.store.EnsureChefPermission(ctx, menu.ChefPermission{UserID: u.ID, CategoryID: cat.ID})
			if err != nil {
				return err
			}
			r.report.ChefPermissions.add(created)
		}
	}
	return nil
}
