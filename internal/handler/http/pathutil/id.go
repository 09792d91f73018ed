// Package pathutil provides helpers for working with URL paths:
// parsing path-value IDs and normalizing dynamic paths for metrics.
package pathutil

import (
	"errors"
	"strconv"
)

// ErrInvalidID is returned when the ID in the URL path is invalid.
var ErrInvalidID = errors.New("invalid id")

// ParseID parses a path value as a positive int64 ID.
// Returns ErrInvalidID if the value is not a positive integer.
//
// Example:
//
//	id, err := pathutil.ParseID(r.PathValue("id"))
func ParseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}
