package storage

import "errors"

// Common local storage errors
var (
	// ErrSnapshotNotFound indicates that entity snapshot was not found
	ErrSnapshotNotFound = errors.New("entity snapshot not found")

	// ErrLockNotFound indicates that edit lock was not found
	ErrLockNotFound = errors.New("edit lock not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
