package model

import "time"

// Account is a local login identity. Accounts exist only to scope stored
// collections per email — isolation is a key-prefixing convention, not a
// security boundary.
type Account struct {
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}
