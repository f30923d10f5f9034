package domain

import (
	"fmt"
	"strings"
	"time"
)

// IdentitySource says which boundary vouched for an identity.
type IdentitySource string

const (
	SourceCloudflare IdentitySource = "cloudflare"
	SourceLocal      IdentitySource = "local"
)

func AsIdentitySource(s string) (IdentitySource, error) {
	switch IdentitySource(s) {
	case SourceCloudflare, SourceLocal:
		return IdentitySource(s), nil
	default:
		return IdentitySource(s), fmt.Errorf("%w: unknown identity source: %s", ErrInvalid, s)
	}
}

// Identity is the caller identity resolved at the HTTP boundary.
type Identity struct {
	Email  string
	Name   *string
	Source IdentitySource
}

func (i Identity) Validate() error {
	if !strings.Contains(i.Email, "@") {
		return fmt.Errorf("%w: identity email is malformed: %q", ErrInvalid, i.Email)
	}
	if _, err := AsIdentitySource(string(i.Source)); err != nil {
		return err
	}
	return nil
}

// User is a users row, keyed by email. Rows are upserted on each
// authenticated request: name and source follow the latest sighting.
type User struct {
	Email      string
	Name       *string
	Source     IdentitySource
	LastSeenAt time.Time
	CreatedAt  time.Time
}
