// Package users holds the wire types of the platform user API.
package users

import (
	"time"

	"github.com/lumendata/govcat/pkg/domain"
)

type User struct {
	Email      string    `json:"email"`
	Name       *string   `json:"name,omitempty"`
	Source     string    `json:"source"`
	LastSeenAt time.Time `json:"lastSeenAt"`
	CreatedAt  time.Time `json:"createdAt"`
}

func Compose(u domain.User) User {
	return User{
		Email:      u.Email,
		Name:       u.Name,
		Source:     string(u.Source),
		LastSeenAt: u.LastSeenAt,
		CreatedAt:  u.CreatedAt,
	}
}

// Identity is the whoami response: who the API thinks the caller is.
type Identity struct {
	Email  string  `json:"email"`
	Name   *string `json:"name,omitempty"`
	Source string  `json:"source"`
}

func ComposeIdentity(i domain.Identity) Identity {
	return Identity{
		Email:  i.Email,
		Name:   i.Name,
		Source: string(i.Source),
	}
}
