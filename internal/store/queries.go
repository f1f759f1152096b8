package store

import (
	"context"
	"fmt"

	"github.com/example/adisyon/internal/db"
	"github.com/example/adisyon/internal/domain/menu"
	"github.com/example/adisyon/internal/domain/staff"
	"github.com/example/adisyon/internal/domain/venue"
)

func (s *Store) UserByUsername(ctx context.Context, username string) (staff.User, error) {
	row := s.db.QueryRow(ctx, `
		SELECT u.id, u.username, u.password, u.full_name, u.role, u.section_id, COALESCE(s.name, '')
		FROM users u LEFT JOIN sections s ON s.id = u.section_id
		WHERE u.username=$1
	`, username)
	var (
		u    staff.User
		role string
	)
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.FullName, &role, &u.SectionID, &u.SectionName); err != nil {
		return staff.User{}, db.WrapNotFound(err)
	}
	u.Role = staff.Role(role)
	return u, nil
}

func (s *Store) SectionByName(ctx context.Context, name string) (venue.Section, error) {
	var sec venue.Section
	err := s.db.QueryRow(ctx, `SELECT id, name, description FROM sections WHERE name=$1`, name).
		Scan(&sec.ID, &sec.Name, &sec.Description)
	if err != nil {
		return venue.Section{}, db.WrapNotFound(err)
	}
	return sec, nil
}

func (s *Store) ProductByName(ctx context.Context, name string) (menu.Product, error) {
	var (
		p              menu.Product
		price, kitchen string
	)
	err := s.db.QueryRow(ctx, `
		SELECT id, name, CAST(price AS TEXT), category_id, kitchen_assignment
		FROM products WHERE name=$1
	`, name).Scan(&p.ID, &p.Name, &price, &p.CategoryID, &kitchen)
	if err != nil {
		return menu.Product{}, db.WrapNotFound(err)
	}
	if p.Price, err = menu.ParsePrice(price); err != nil {
		return menu.Product{}, fmt.Errorf("product %q: %w", name, err)
	}
	p.Kitchen = menu.Kitchen(kitchen)
	return p, nil
}

func (s *Store) TablesBySection(ctx context.Context, sectionID int64) ([]venue.Table, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, section_id, number, capacity FROM tables
		WHERE section_id=$1 ORDER BY number
	`, sectionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []venue.Table
	for rows.Next() {
		var t venue.Table
		if err := rows.Scan(&t.ID, &t.SectionID, &t.Number, &t.Capacity); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// ChefCategories lists the names of the categories granted to a user, sorted.
func (s *Store) ChefCategories(ctx context.Context, userID int64) ([]string, error) {
	rows, err := s.db.Query(ctx, `
		SELECT c.name FROM chef_category_permissions p
		JOIN categories c ON c.id = p.category_id
		WHERE p.user_id=$1 ORDER BY c.name
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		out = append(out, name)
	}
	return out, rows.Err()
}

type Counts struct {
	Sections        int
	Tables          int
	Users           int
	Categories      int
	Products        int
	ChefPermissions int
}

func (s *Store) Counts(ctx context.Context) (Counts, error) {
	var c Counts
	targets := []struct {
		table string
		dst   *int
	}{
		{"sections", &c.Sections},
		{"tables", &c.Tables},
		{"users", &c.Users},
		{"categories", &c.Categories},
		{"products", &c.Products},
		{"chef_category_permissions", &c.ChefPermissions},
	}
	for _, t := range targets {
		if err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM `+t.table).Scan(t.dst); err != nil {
			return Counts{}, fmt.Errorf("count %s: %w", t.table, err)
		}
	}
	return c, nil
}
