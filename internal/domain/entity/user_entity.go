package entity

import (
	"time"
)

// User is the aggregate root for the account domain.
// Passwords are stored verbatim and compared per request; the field is
// excluded from every JSON response.
type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
