// Package models defines server-side data models persisted in the database.
package models

import "time"

type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	Bio          string
	ProfilePic   string
	CreatedAt    time.Time
}
