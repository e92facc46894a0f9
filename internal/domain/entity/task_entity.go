package entity

import (
	"time"
)

// Task belongs to exactly one user. The owner is checked to exist at
// creation time; afterwards the row is removed with the user via the
// database cascade.
type Task struct {
	ID          int64
	UserID      int64
	Title       string
	Description string
	DueDate     time.Time // stored UTC; rendered as dd-MM-yyyy HH:mm:ss at the boundary
	Status      Status
}
