// Package remote определяет интерфейс внешнего удаленного хранилища
// (replication transport). Сам протокол репликации реализуется вне этого
// слоя; здесь только контракт, через который слой согласованности
// обменивается снимками, разрешениями, арендами и присутствием.
package remote

import (
	"context"

	"github.com/iudanet/chartsync/internal/models"
)

//go:generate moq -out remote_mock.go . Store

// Store defines interface for the external remote store collaborator.
// Все методы сетевые: отменяемы через контекст и должны вызываться
// с таймаутом.
type Store interface {
	// PushResolution replicates a locally committed conflict resolution.
	// Разрешение сначала фиксируется локально; неудачный push не
	// откатывает локальное состояние (local-first durability).
	PushResolution(ctx context.Context, record *models.ConflictRecord) error

	// PullSnapshot retrieves the latest remote snapshot of an entity
	PullSnapshot(ctx context.Context, entityType models.EntityType, entityID string) (*models.EntitySnapshot, error)

	// PullChanges retrieves remote snapshots with logical time greater
	// than the given timestamp. Снимки могут приходить не по порядку
	// и повторно; обнаружение конфликтов обязано быть идемпотентным.
	PullChanges(ctx context.Context, since int64) ([]*models.EntitySnapshot, error)

	// PushLock replicates a local edit lock state
	PushLock(ctx context.Context, lock *models.EditLock) error

	// PullLocks retrieves remote edit locks
	PullLocks(ctx context.Context) ([]*models.EditLock, error)

	// PushPresence replicates a local presence record
	PushPresence(ctx context.Context, record *models.PresenceRecord) error

	// SubscribePresence subscribes to remote presence updates for an entity.
	// Канал закрывается при отмене контекста.
	SubscribePresence(ctx context.Context, entityID string) (<-chan *models.PresenceRecord, error)
}
