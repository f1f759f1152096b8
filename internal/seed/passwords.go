package seed

import (
	"errors"
	"fmt"

	"github.com/example/adisyon/internal/auth"
	"github.com/example/adisyon/internal/fixture"
)

// ErrSharedCredential is returned when accounts would fall back to the
// shared default password outside demo mode.
var ErrSharedCredential = errors.New("shared default password is only allowed in demo mode")

type PasswordPolicy struct {
	// Default is the shared demo password.
	Default string
	// Generate gives every account without a fixture password its own
	// random password.
	Generate bool
	// Demo permits the shared default.
	Demo bool
	Cost int
}

// passwordPlan maps each username to its plaintext password. Accounts in
// shared use the policy default and share one hash.
type passwordPlan struct {
	plain  map[string]string
	shared map[string]bool
}

func planPasswords(users []fixture.User, p PasswordPolicy) (passwordPlan, error) {
	plan := passwordPlan{plain: map[string]string{}, shared: map[string]bool{}}
	for _, u := range users {
		switch {
		case u.Password != "":
			plan.plain[u.Username] = u.Password
		case p.Generate:
			pw, err := auth.GeneratePassword()
			if err != nil {
				return passwordPlan{}, err
			}
			plan.plain[u.Username] = pw
		case !p.Demo:
			return passwordPlan{}, fmt.Errorf("user %q: %w", u.Username, ErrSharedCredential)
		case p.Default == "":
			return passwordPlan{}, fmt.Errorf("user %q: no default password configured", u.Username)
		default:
			plan.plain[u.Username] = p.Default
			plan.shared[u.Username] = true
		}
	}
	return plan, nil
}

// hasher hashes the shared default at most once.
type hasher struct {
	cost       int
	sharedHash string
}

func (h *hasher) hash(plan passwordPlan, username string) (string, error) {
	pw := plan.plain[username]
	if !plan.shared[username] {
		return auth.HashPassword(pw, h.cost)
	}
	if h.sharedHash == "" {
		hash, err := auth.HashPassword(pw, h.cost)
		if err != nil {
			return "", err
		}
		h.sharedHash = hash
	}
	return h.sharedHash, nil
}
