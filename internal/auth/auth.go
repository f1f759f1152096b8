package auth

import (
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/gorilla/securecookie"
	"golang.org/x/crypto/bcrypt"
)

const DefaultCost = 10

func HashPassword(pw string, cost int) (string, error) {
	if cost == 0 {
		cost = DefaultCost
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return "", fmt.Errorf("bcrypt cost %d out of range [%d,%d]", cost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	b, err := bcrypt.GenerateFromPassword([]byte(pw), cost)
	return string(b), err
}

func CheckPassword(hash, pw string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(pw))
	return err == nil
}

var errNoEntropy = errors.New("auth: random source unavailable")

// GeneratePassword returns a random URL-safe password of 16 characters.
func GeneratePassword() (string, error) {
	key := securecookie.GenerateRandomKey(12)
	if key == nil {
		return "", errNoEntropy
	}
	return base64.RawURLEncoding.EncodeToString(key), nil
}
