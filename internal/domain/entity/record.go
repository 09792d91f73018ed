// Package entity defines the core domain entities and validation logic for the
// application. It contains the fundamental business objects such as Article and
// Comment, along with their validation rules and domain-specific errors.
package entity

import "time"

// Record holds the metadata shared by every persisted entity.
// It is embedded by composition; there is no entity inheritance.
type Record struct {
	ID         int64
	CreatedAt  time.Time
	ModifiedAt time.Time
}
