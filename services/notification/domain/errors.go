package domain

import "errors"

// Sentinel errors for the notification domain. Use errors.Is() to check these.
var (
	// ErrNotificationNotFound indicates the requested notification does not exist.
	ErrNotificationNotFound = errors.New("notification not found")
)
