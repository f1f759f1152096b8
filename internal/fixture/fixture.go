package fixture

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// Fixture declares what to seed. How it is seeded lives in package seed.
type Fixture struct {
	Sections   []Section `yaml:"sections"`
	Users      []User    `yaml:"users"`
	Categories []string  `yaml:"categories"`
	Products   []Product `yaml:"products"`
	Grants     []Grant   `yaml:"grants"`
}

type Section struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Tables      int            `yaml:"tables"`
	Capacity    []CapacityRule `yaml:"capacity"`
}

// CapacityRule gives Seats to every table numbered at most UpTo. UpTo 0
// matches any number.
type CapacityRule struct {
	UpTo  int `yaml:"upto"`
	Seats int `yaml:"seats"`
}

// CapacityFor applies the first matching rule to a table number.
func (s Section) CapacityFor(number int) (int, bool) {
	for _, r := range s.Capacity {
		if r.UpTo == 0 || number <= r.UpTo {
			return r.Seats, true
		}
	}
	return 0, false
}

type User struct {
	Username string `yaml:"username"`
	FullName string `yaml:"full_name"`
	Role     string `yaml:"role"`
	Section  string `yaml:"section,omitempty"`
	// Password overrides the run's password policy for this account.
	Password string `yaml:"password,omitempty"`
}

type Product struct {
	Name     string `yaml:"name"`
	Price    string `yaml:"price"`
	Category string `yaml:"category"`
	Kitchen  string `yaml:"kitchen"`
}

type Grant struct {
	User       string   `yaml:"user"`
	Categories []string `yaml:"categories"`
}

// Default returns the fixture compiled into the binary.
func Default() (*Fixture, error) {
	fx, err := Parse(defaultYAML)
	if err != nil {
		return nil, fmt.Errorf("default fixture: %w", err)
	}
	return fx, nil
}

// Load reads a fixture file, or the default fixture when path is empty.
func Load(path string) (*Fixture, error) {
	if path == "" {
		return Default()
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture: %w", err)
	}
	fx, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return fx, nil
}

// Parse decodes and validates a fixture document.
func Parse(b []byte) (*Fixture, error) {
	var fx Fixture
	if err := yaml.Unmarshal(b, &fx); err != nil {
		return nil, fmt.Errorf("failed to parse fixture: %w", err)
	}
	if err := fx.Validate(); err != nil {
		return nil, err
	}
	return &fx, nil
}
