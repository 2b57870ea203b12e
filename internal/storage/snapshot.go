package storage

import (
	"context"

	"github.com/iudanet/chartsync/internal/models"
)

//go:generate moq -out snapshot_mock.go . SnapshotStorage

// SnapshotStorage defines interface for storing entity snapshots locally.
// Хранится только последний снимок каждой сущности; снимки неизменяемы,
// новая мутация записывает новый снимок поверх старого.
type SnapshotStorage interface {
	// SaveSnapshot stores or replaces the latest snapshot of an entity
	SaveSnapshot(ctx context.Context, snapshot *models.EntitySnapshot) error

	// GetSnapshot retrieves the latest snapshot of an entity
	// Returns ErrSnapshotNotFound if no snapshot exists
	GetSnapshot(ctx context.Context, entityType models.EntityType, entityID string) (*models.EntitySnapshot, error)

	// GetSnapshotsAfter returns snapshots with logical time greater
	// than the given timestamp. Used for incremental sync.
	GetSnapshotsAfter(ctx context.Context, timestamp int64) ([]*models.EntitySnapshot, error)

	// Clear removes all snapshots from storage
	// Used for testing and full re-sync
	Clear(ctx context.Context) error
}
