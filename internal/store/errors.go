package store

import "errors"

var (
	// ErrNotFound means the targeted record id does not exist in the collection.
	ErrNotFound = errors.New("record not found")

	// ErrInsufficientStock rejects an OUT movement whose quantity exceeds the
	// product's derived balance.
	ErrInsufficientStock = errors.New("insufficient stock")
)
