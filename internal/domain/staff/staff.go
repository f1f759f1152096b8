package staff

import "fmt"

type Role string

const (
	RolePatron   Role = "PATRON"
	RoleManager  Role = "MANAGER"
	RoleAdmin    Role = "ADMIN"
	RoleChef     Role = "CHEF"
	RoleKitchen1 Role = "KITCHEN1"
	RoleKitchen2 Role = "KITCHEN2"
	RoleCashier  Role = "CASHIER"
)

var roles = []Role{RolePatron, RoleManager, RoleAdmin, RoleChef, RoleKitchen1, RoleKitchen2, RoleCashier}

func Roles() []Role { return append([]Role(nil), roles...) }

func ParseRole(s string) (Role, error) {
	for _, r := range roles {
		if string(r) == s {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// User is a staff account. Only chefs carry a section.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	FullName     string
	Role         Role
	SectionID    *int64

	// SectionName is filled by read queries only.
	SectionName string
}

func (u User) IsChef() bool { return u.Role == RoleChef }
