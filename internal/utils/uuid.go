package utils

import "github.com/google/uuid"

// NewClientSideID returns a UUIDv7 string for a freshly created vault item.
// V7 keeps ids roughly time-ordered; if the monotonic source fails we fall
// back to a random v4.
func NewClientSideID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return v7.String()
}
