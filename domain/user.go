package domain

import (
	"errors"
	"time"
)

type User struct {
	ID        int64
	Username  string
	Email     *string
	CreatedAt time.Time
}

func (u User) ValidateEmail() error {
	if u.Email != nil && len(*u.Email) < 3 {
		return errors.New("email is too short")
	}
	return nil
}

// Actor is the authenticated identity behind a request.
type Actor struct {
	UserID   int64
	Username string
}

// Owns reports whether the actor authored p.
func (a *Actor) Owns(p Post) bool {
	return a != nil && a.UserID == p.Author.ID
}
