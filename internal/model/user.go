// Package model defines domain entities for the application.
package model

import (
	"strconv"
	"time"
)

// User represents an identity record in the usuarios table.
// The wire format keeps the legacy Portuguese field names.
type User struct {
	ID           int64     `json:"id"`
	FirstName    string    `json:"nome"`
	LastName     string    `json:"sobrenome"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"criado_em"`
}

// Identity is the minimal public identity embedded in issued tokens
// and carried in the request context after the auth gate. It
// deliberately excludes the password hash and profile fields.
type Identity struct {
	UserID int64  `json:"id"`
	Email  string `json:"email"`
}

// Identity derives the token payload for a user.
func (u *User) Identity() Identity {
	return Identity{
		UserID: u.ID,
		Email:  u.Email,
	}
}

// Subject renders the user ID as a JWT subject claim.
func (i Identity) Subject() string {
	return strconv.FormatInt(i.UserID, 10)
}
