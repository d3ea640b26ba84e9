package util

import "github.com/google/uuid"

// NewID returns a random unique identifier. Catalog, order, and user IDs
// all come from here so rapid successive calls cannot collide.
func NewID() string {
	return uuid.NewString()
}
