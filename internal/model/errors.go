package model

import "errors"

// Common errors used across the application
var (
	// Persistence errors
	ErrSnapshotNotFound = errors.New("snapshot not found")

	// Store errors
	ErrUnknownCollection = errors.New("unknown collection")
	ErrInvalidStatus     = errors.New("invalid record status")
	ErrStoreClosed       = errors.New("store is closed")
)
