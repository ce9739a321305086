package models

import "time"

// User is the single application login. The password is stored as a bcrypt
// hash and never serialized.
type User struct {
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
