package storage

import (
	"context"

	"github.com/iudanet/chartsync/internal/models"
)

// LockStorage defines interface for persisting edit locks locally.
// Менеджер аренд держит актуальное состояние в памяти и пишет сюда
// сквозным образом, чтобы аренды переживали перезапуск процесса.
type LockStorage interface {
	// SaveLock stores or replaces the lock for an entity
	SaveLock(ctx context.Context, lock *models.EditLock) error

	// GetLock retrieves the lock for an entity
	// Returns ErrLockNotFound if no lock exists
	GetLock(ctx context.Context, entityType models.EntityType, entityID string) (*models.EditLock, error)

	// GetAllLocks returns all stored locks (active and inactive)
	GetAllLocks(ctx context.Context) ([]*models.EditLock, error)

	// DeleteLock removes the lock for an entity
	DeleteLock(ctx context.Context, entityType models.EntityType, entityID string) error
}
