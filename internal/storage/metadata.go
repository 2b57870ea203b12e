package storage

import "context"

//go:generate moq -out metadata_mock.go . MetadataStorage

// MetadataStorage defines interface for storing sync metadata
type MetadataStorage interface {
	// SaveLastSyncTimestamp saves the logical timestamp of the last successful sync
	SaveLastSyncTimestamp(ctx context.Context, timestamp int64) error

	// GetLastSyncTimestamp retrieves the logical timestamp of the last successful sync
	// Returns 0 if no sync has been performed yet
	GetLastSyncTimestamp(ctx context.Context) (int64, error)

	// SaveClockState persists the hybrid logical clock state
	// so the clock survives process restarts
	SaveClockState(ctx context.Context, timestamp int64) error

	// GetClockState retrieves the persisted clock state
	// Returns 0 if no state has been saved yet
	GetClockState(ctx context.Context) (int64, error)
}
