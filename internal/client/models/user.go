package models

import "time"

// User is the authenticated user's profile as returned by /api/auth/me.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	CreatedAt time.Time `json:"created_at,omitzero"`
}
