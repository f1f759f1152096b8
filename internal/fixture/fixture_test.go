package fixture

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultFixture(t *testing.T) {
	fx, err := Default()
	require.NoError(t, err)

	assert.Len(t, fx.Sections, 3)
	assert.Len(t, fx.Users, 9)
	assert.Len(t, fx.Categories, 8)
	assert.Len(t, fx.Products, 29)
	assert.Len(t, fx.Grants, 3)

	tables := 0
	for _, s := range fx.Sections {
		tables += s.Tables
	}
	assert.Equal(t, 33, tables)

	grants := 0
	for _, g := range fx.Grants {
		grants += len(g.Categories)
	}
	assert.Equal(t, 8, grants)
}

func TestCapacityFor(t *testing.T) {
	restoran := Section{Name: "RESTORAN", Tables: 15, Capacity: []CapacityRule{{UpTo: 8, Seats: 4}, {Seats: 6}}}
	for n := 1; n <= 15; n++ {
		got, ok := restoran.CapacityFor(n)
		require.True(t, ok)
		if n <= 8 {
			assert.Equal(t, 4, got, "table %d", n)
		} else {
			assert.Equal(t, 6, got, "table %d", n)
		}
	}

	partial := Section{Capacity: []CapacityRule{{UpTo: 2, Seats: 2}}}
	_, ok := partial.CapacityFor(3)
	assert.False(t, ok)
}

func TestValidateRejects(t *testing.T) {
	cases := map[string]string{
		"duplicate section": `
sections:
  - {name: CAFE, tables: 1, capacity: [{seats: 2}]}
  - {name: CAFE, tables: 1, capacity: [{seats: 2}]}
`,
		"uncovered table": `
sections:
  - {name: CAFE, tables: 3, capacity: [{upto: 2, seats: 2}]}
`,
		"no tables": `
sections:
  - {name: CAFE, tables: 0, capacity: [{seats: 2}]}
`,
		"price above column range": `
products:
  - {name: Çay, price: "100000000000000000", category: İçecekler, kitchen: KITCHEN2}
`,
		"zero seats": `
sections:
  - {name: CAFE, tables: 1, capacity: [{seats: 0}]}
`,
		"unknown role": `
users:
  - {username: garson, full_name: Garson, role: WAITER}
`,
		"section on non chef": `
users:
  - {username: kasa, full_name: Kasa, role: CASHIER, section: CAFE}
`,
		"duplicate username": `
users:
  - {username: kasa, full_name: Kasa, role: CASHIER}
  - {username: kasa, full_name: Kasa 2, role: CASHIER}
`,
		"bad price": `
products:
  - {name: Çay, price: "8.005", category: İçecekler, kitchen: KITCHEN2}
`,
		"unknown kitchen": `
products:
  - {name: Çay, price: "8.00", category: İçecekler, kitchen: BAR}
`,
		"duplicate category": `
categories: [Kahveler, Kahveler]
`,
		"grant without user": `
grants:
  - {categories: [Kahveler]}
`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestUnknownReferencesAreNotValidationErrors(t *testing.T) {
	fx, err := Parse([]byte(`
categories: [Kahveler]
products:
  - {name: Latte, price: "32", category: Kahvelr, kitchen: KITCHEN2}
grants:
  - {user: ghost, categories: [Nothing]}
`))
	require.NoError(t, err)
	assert.Equal(t, "Kahvelr", fx.Products[0].Category)
}

func TestUnquotedPrice(t *testing.T) {
	fx, err := Parse([]byte(`
products:
  - {name: Su, price: 5.00, category: İçecekler, kitchen: KITCHEN2}
`))
	require.NoError(t, err)
	assert.Equal(t, "5.00", fx.Products[0].Price)
}

func TestLoad(t *testing.T) {
	fx, err := Load("")
	require.NoError(t, err)
	assert.Len(t, fx.Sections, 3)

	path := filepath.Join(t.TempDir(), "mini.yaml")
	require.NoError(t, os.WriteFile(path, []byte("categories: [Mezeler]\n"), 0o600))
	fx, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Mezeler"}, fx.Categories)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte("sections: {"), 0o600))
	_, err = Load(path)
	assert.Error(t, err)
}
