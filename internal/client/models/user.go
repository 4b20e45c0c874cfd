// Package models defines the wire and domain types shared by the minired
// client packages.
package models

import "github.com/dmitrijs2005/minired/internal/timex"

// User is the identity returned by the backend. It is replaced wholesale on
// every update and never partially mutated.
type User struct {
	ID         int64      `json:"id"`
	Username   string     `json:"username"`
	Email      string     `json:"email"`
	Bio        string     `json:"bio"`
	ProfilePic string     `json:"profile_pic"`
	CreatedAt  timex.Time `json:"created_at"`
}

// Clone returns a copy of u, or nil when u is nil.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}

// DisplayName is the username prefixed with '@'.
func (u *User) DisplayName() string {
	if u == nil {
		return ""
	}
	return "@" + u.Username
}
