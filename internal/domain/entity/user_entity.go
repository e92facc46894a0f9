package entity

import (
	"time"
)

// User is the aggregate root for the account domain. Passwords are stored
// as bcrypt hashes in PasswordHash; the plaintext never leaves the register
// and login handlers.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// UserWithTasks is the read-only projection returned by the list/get user
// endpoints.
type UserWithTasks struct {
	User  User
	Tasks []Task
}
