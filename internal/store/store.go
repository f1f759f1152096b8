package store

import (
	"context"
	"fmt"

	"github.com/example/adisyon/internal/db"
	"github.com/example/adisyon/internal/domain/menu"
	"github.com/example/adisyon/internal/domain/staff"
	"github.com/example/adisyon/internal/domain/venue"
)

var ErrNotFound = db.ErrNotFound

// Store provisions and reads the POS reference data. Every Ensure method is
// create-if-absent: an existing row is returned untouched and the bool
// result reports whether this call created it.
type Store struct{ db *db.DB }

func New(d *db.DB) *Store { return &Store{db: d} }

// ensure inserts with ON CONFLICT DO NOTHING and then loads the row by its
// identity key, so the caller never has to check for existence first.
func (s *Store) ensure(ctx context.Context, insert string, insertArgs []any, load func() error) (bool, error) {
	n, err := s.db.Exec(ctx, insert, insertArgs...)
	if err != nil {
		return false, err
	}
	if err := load(); err != nil {
		if db.IsNotFound(err) {
			return false, ErrNotFound
		}
		return false, err
	}
	return n > 0, nil
}

func (s *Store) EnsureSection(ctx context.Context, sec venue.Section) (venue.Section, bool, error) {
	var out venue.Section
	created, err := s.ensure(ctx,
		`INSERT INTO sections (name, description) VALUES ($1,$2) ON CONFLICT (name) DO NOTHING`,
		[]any{sec.Name, sec.Description},
		func() error {
			return s.db.QueryRow(ctx, `SELECT id, name, description FROM sections WHERE name=$1`, sec.Name).
				Scan(&out.ID, &out.Name, &out.Description)
		})
	if err != nil {
		return venue.Section{}, false, fmt.Errorf("ensure section %q: %w", sec.Name, err)
	}
	return out, created, nil
}

func (s *Store) EnsureTable(ctx context.Context, t venue.Table) (venue.Table, bool, error) {
	var out venue.Table
	created, err := s.ensure(ctx, `
		INSERT INTO tables (section_id, number, capacity) VALUES ($1,$2,$3)
		ON CONFLICT (section_id, number) DO NOTHING
	`, []any{t.SectionID, t.Number, t.Capacity},
		func() error {
			return s.db.QueryRow(ctx, `SELECT id, section_id, number, capacity FROM tables WHERE section_id=$1 AND number=$2`, t.SectionID, t.Number).
				Scan(&out.ID, &out.SectionID, &out.Number, &out.Capacity)
		})
	if err != nil {
		return venue.Table{}, false, fmt.Errorf("ensure table %d/%d: %w", t.SectionID, t.Number, err)
	}
	return out, created, nil
}

func (s *Store) EnsureUser(ctx context.Context, u staff.User) (staff.User, bool, error) {
	var out staff.User
	created, err := s.ensure(ctx, `
		INSERT INTO users (username, password, full_name, role, section_id) VALUES ($1,$2,$3,$4,$5)
		ON CONFLICT (username) DO NOTHING
	`, []any{u.Username, u.PasswordHash, u.FullName, string(u.Role), u.SectionID},
		func() error {
			var err error
			out, err = s.UserByUsername(ctx, u.Username)
			return err
		})
	if err != nil {
		return staff.User{}, false, fmt.Errorf("ensure user %q: %w", u.Username, err)
	}
	return out, created, nil
}

func (s *Store) EnsureCategory(ctx context.Context, c menu.Category) (menu.Category, bool, error) {
	var out menu.Category
	created, err := s.ensure(ctx,
		`INSERT INTO categories (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`,
		[]any{c.Name},
		func() error {
			return s.db.QueryRow(ctx, `SELECT id, name FROM categories WHERE name=$1`, c.Name).Scan(&out.ID, &out.Name)
		})
	if err != nil {
		return menu.Category{}, false, fmt.Errorf("ensure category %q: %w", c.Name, err)
	}
	return out, created, nil
}

func (s *Store) EnsureProduct(ctx context.Context, p menu.Product) (menu.Product, bool, error) {
	var out menu.Product
	created, err := s.ensure(ctx, `
		INSERT INTO products (name, price, category_id, kitchen_assignment) VALUES ($1,$2,$3,$4)
		ON CONFLICT (name) DO NOTHING
	`, []any{p.Name, p.Price.String(), p.CategoryID, string(p.Kitchen)},
		func() error {
			var err error
			out, err = s.ProductByName(ctx, p.Name)
			return err
		})
	if err != nil {
		return menu.Product{}, false, fmt.Errorf("ensure product %q: %w", p.Name, err)
	}
	return out, created, nil
}

func (s *Store) EnsureChefPermission(ctx context.Context, perm menu.ChefPermission) (menu.ChefPermission, bool, error) {
	var out menu.ChefPermission
	created, err := s.ensure(ctx, `
		INSERT INTO chef_category_permissions (user_id, category_id) VALUES ($1,$2)
		ON CONFLICT (user_id, category_id) DO NOTHING
	`, []any{perm.UserID, perm.CategoryID},
		func() error {
			return s.db.QueryRow(ctx, `SELECT id, user_id, category_id FROM chef_category_permissions WHERE user_id=$1 AND category_id=$2`, perm.UserID, perm.CategoryID).
				Scan(&out.ID, &out.UserID, &out.CategoryID)
		})
	if err != nil {
		return menu.ChefPermission{}, false, fmt.Errorf("ensure permission %d/%d: %w", perm.UserID, perm.CategoryID, err)
	}
	return out, created, nil
}
