package menu

import "fmt"

// Kitchen is the preparation station a product's orders are routed to.
type Kitchen string

const (
	Kitchen1 Kitchen = "KITCHEN1"
	Kitchen2 Kitchen = "KITCHEN2"
)

func ParseKitchen(s string) (Kitchen, error) {
	switch Kitchen(s) {
	case Kitchen1, Kitchen2:
		return Kitchen(s), nil
	}
	return "", fmt.Errorf("unknown kitchen %q", s)
}

type Category struct {
	ID   int64
	Name string
}

type Product struct {
	ID         int64
	Name       string
	Price      Price
	CategoryID int64
	Kitchen    Kitchen
}

// ChefPermission grants a chef account the right to act on one category.
type ChefPermission struct {
	ID         int64
	UserID     int64
	CategoryID int64
}
