// Package ledger определяет журнал конфликтов: долговременную,
// преимущественно append-only запись всех обнаруженных конфликтов и исходов
// их разрешения. Журнал используется для идемпотентности обнаружения
// и для аудита; разрешенные записи хранятся бессрочно.
package ledger

import (
	"context"
	"errors"
	"time"

	"github.com/iudanet/chartsync/internal/models"
)

// Ошибки журнала конфликтов
var (
	// ErrConflictNotFound indicates that conflict record was not found
	ErrConflictNotFound = errors.New("conflict record not found")

	// ErrConflictResolved indicates an attempt to mutate a terminally
	// resolved conflict record
	ErrConflictResolved = errors.New("conflict record already resolved")

	// ErrLedgerClosed indicates that ledger is closed
	ErrLedgerClosed = errors.New("ledger is closed")
)

//go:generate moq -out ledger_mock.go . Ledger

// Ledger defines interface for the durable conflict ledger
type Ledger interface {
	// Append stores a newly detected conflict record
	Append(ctx context.Context, record *models.ConflictRecord) error

	// Update replaces an open conflict record (merged remote snapshot,
	// reclassified type). Returns ErrConflictResolved if the stored
	// record is already terminally resolved.
	Update(ctx context.Context, record *models.ConflictRecord) error

	// Get retrieves a conflict record by ID
	// Returns ErrConflictNotFound if record doesn't exist
	Get(ctx context.Context, id string) (*models.ConflictRecord, error)

	// OpenByEntity retrieves the open (unresolved) conflict record for
	// an entity, if one exists. Used for idempotent detection.
	// Returns ErrConflictNotFound if no open record exists.
	OpenByEntity(ctx context.Context, entityType models.EntityType, entityID string) (*models.ConflictRecord, error)

	// RecordResolution marks a conflict as resolved with the given
	// outcome. A terminal outcome freezes the record; skip-for-now
	// keeps it open and revisitable.
	// Returns ErrConflictResolved if already terminally resolved.
	RecordResolution(ctx context.Context, id string, outcome models.ResolutionOutcome, resolvedAt time.Time) error

	// ListPending returns all open (unresolved or skipped) conflict records
	ListPending(ctx context.Context) ([]*models.ConflictRecord, error)

	// ListByEntity returns the full conflict history for an entity,
	// resolved records included. Used for audit.
	ListByEntity(ctx context.Context, entityType models.EntityType, entityID string) ([]*models.ConflictRecord, error)

	// AutoResolvableCount returns the number of open conflicts eligible
	// for automatic last-write-wins resolution
	AutoResolvableCount(ctx context.Context) (int, error)

	// Close closes the ledger
	Close() error
}
