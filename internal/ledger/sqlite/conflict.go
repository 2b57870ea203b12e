package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/chartsync/internal/ledger"
	"github.com/iudanet/chartsync/internal/models"
	"github.com/iudanet/chartsync/pkg/api"
)

// Проверка реализации интерфейса на этапе компиляции
var _ ledger.Ledger = (*Ledger)(nil)

// Append stores a newly detected conflict record
func (l *Ledger) Append(ctx context.Context, record *models.ConflictRecord) error {
	localJSON, remoteJSON, err := marshalSnapshots(record)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO conflicts (
			id, conflict_type, entity_type, entity_id,
			local_snapshot, remote_snapshot,
			requires_user_input, resolution, detected_at, resolved_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = l.db.ExecContext(ctx, query,
		record.ID,
		string(record.Type),
		string(record.EntityType),
		record.EntityID,
		localJSON,
		remoteJSON,
		boolToInt(record.RequiresUserInput),
		string(record.Resolution),
		record.DetectedAt.Unix(),
		nullableUnix(record.ResolvedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to insert conflict: %w", err)
	}

	return nil
}

// Update replaces an open conflict record.
// Отказывает с ErrConflictResolved, если сохраненная запись уже
// терминально разрешена: разрешенные конфликты неизменяемы.
func (l *Ledger) Update(ctx context.Context, record *models.ConflictRecord) error {
	existing, err := l.Get(ctx, record.ID)
	if err != nil {
		return err
	}
	if existing.IsResolved() {
		return ledger.ErrConflictResolved
	}

	localJSON, remoteJSON, err := marshalSnapshots(record)
	if err != nil {
		return err
	}

	query := `
		UPDATE conflicts
		SET conflict_type = ?, local_snapshot = ?, remote_snapshot = ?,
		    requires_user_input = ?, resolution = ?, resolved_at = ?
		WHERE id = ?
	`

	_, err = l.db.ExecContext(ctx, query,
		string(record.Type),
		localJSON,
		remoteJSON,
		boolToInt(record.RequiresUserInput),
		string(record.Resolution),
		nullableUnix(record.ResolvedAt),
		record.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update conflict: %w", err)
	}

	return nil
}

// Get retrieves a conflict record by ID
func (l *Ledger) Get(ctx context.Context, id string) (*models.ConflictRecord, error) {
	query := selectConflict + ` WHERE id = ?`

	record, err := l.scanConflict(l.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ledger.ErrConflictNotFound
		}
		return nil, fmt.Errorf("failed to get conflict: %w", err)
	}

	return record, nil
}

// OpenByEntity retrieves the open conflict record for an entity
func (l *Ledger) OpenByEntity(ctx context.Context, entityType models.EntityType, entityID string) (*models.ConflictRecord, error) {
	// Открытая запись: не разрешена или отложена (skip-for-now)
	query := selectConflict + `
		WHERE entity_type = ? AND entity_id = ?
		  AND resolution IN ('', 'skip-for-now')
		ORDER BY detected_at DESC
		LIMIT 1
	`

	record, err := l.scanConflict(l.db.QueryRowContext(ctx, query, string(entityType), entityID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ledger.ErrConflictNotFound
		}
		return nil, fmt.Errorf("failed to get open conflict: %w", err)
	}

	return record, nil
}

// RecordResolution marks a conflict as resolved with the given outcome
func (l *Ledger) RecordResolution(ctx context.Context, id string, outcome models.ResolutionOutcome, resolvedAt time.Time) error {
	existing, err := l.Get(ctx, id)
	if err != nil {
		return err
	}
	if existing.IsResolved() {
		return ledger.ErrConflictResolved
	}

	// skip-for-now оставляет запись открытой: resolved_at не выставляется
	var resolvedAtValue interface{}
	if outcome.IsTerminal() {
		resolvedAtValue = resolvedAt.Unix()
	}

	query := `
		UPDATE conflicts
		SET resolution = ?, resolved_at = ?
		WHERE id = ?
	`

	_, err = l.db.ExecContext(ctx, query, string(outcome), resolvedAtValue, id)
	if err != nil {
		return fmt.Errorf("failed to record resolution: %w", err)
	}

	return nil
}

// ListPending returns all open (unresolved or skipped) conflict records
func (l *Ledger) ListPending(ctx context.Context) ([]*models.ConflictRecord, error) {
	query := selectConflict + `
		WHERE resolution IN ('', 'skip-for-now')
		ORDER BY detected_at ASC
	`

	rows, err := l.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending conflicts: %w", err)
	}
	defer rows.Close()

	return l.collectConflicts(rows)
}

// ListByEntity returns the full conflict history for an entity
func (l *Ledger) ListByEntity(ctx context.Context, entityType models.EntityType, entityID string) ([]*models.ConflictRecord, error) {
	query := selectConflict + `
		WHERE entity_type = ? AND entity_id = ?
		ORDER BY detected_at ASC
	`

	rows, err := l.db.QueryContext(ctx, query, string(entityType), entityID)
	if err != nil {
		return nil, fmt.Errorf("failed to list conflicts by entity: %w", err)
	}
	defer rows.Close()

	return l.collectConflicts(rows)
}

// AutoResolvableCount returns the number of open conflicts eligible
// for automatic last-write-wins resolution
func (l *Ledger) AutoResolvableCount(ctx context.Context) (int, error) {
	pending, err := l.ListPending(ctx)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, record := range pending {
		if record.IsAutoResolvable() {
			count++
		}
	}

	return count, nil
}

// selectConflict общий SELECT для чтения записей конфликтов
const selectConflict = `
	SELECT id, conflict_type, entity_type, entity_id,
	       local_snapshot, remote_snapshot,
	       requires_user_input, resolution, detected_at, resolved_at
	FROM conflicts
`

// rowScanner абстрагирует sql.Row и sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanConflict читает одну запись конфликта из строки результата
func (l *Ledger) scanConflict(row rowScanner) (*models.ConflictRecord, error) {
	var (
		id, conflictType, entityType, entityID string
		localJSON, remoteJSON                  string
		requiresUserInput                      int
		resolution                             string
		detectedAt                             int64
		resolvedAt                             sql.NullInt64
	)

	err := row.Scan(&id, &conflictType, &entityType, &entityID,
		&localJSON, &remoteJSON, &requiresUserInput, &resolution,
		&detectedAt, &resolvedAt)
	if err != nil {
		return nil, err
	}

	var localWire, remoteWire api.Snapshot
	if err := json.Unmarshal([]byte(localJSON), &localWire); err != nil {
		return nil, fmt.Errorf("failed to unmarshal local snapshot: %w", err)
	}
	if err := json.Unmarshal([]byte(remoteJSON), &remoteWire); err != nil {
		return nil, fmt.Errorf("failed to unmarshal remote snapshot: %w", err)
	}

	record := &models.ConflictRecord{
		ID:                id,
		Type:              models.ConflictType(conflictType),
		EntityType:        models.EntityType(entityType),
		EntityID:          entityID,
		Local:             localWire.ToSnapshot(),
		Remote:            remoteWire.ToSnapshot(),
		RequiresUserInput: requiresUserInput != 0,
		Resolution:        models.ResolutionOutcome(resolution),
		DetectedAt:        time.Unix(detectedAt, 0),
	}

	if resolvedAt.Valid {
		t := time.Unix(resolvedAt.Int64, 0)
		record.ResolvedAt = &t
	}

	return record, nil
}

// collectConflicts читает все записи из результата запроса
func (l *Ledger) collectConflicts(rows *sql.Rows) ([]*models.ConflictRecord, error) {
	var records []*models.ConflictRecord

	for rows.Next() {
		record, err := l.scanConflict(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan conflict: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration failed: %w", err)
	}

	return records, nil
}

// marshalSnapshots сериализует оба снимка записи в wire-формат JSON
func marshalSnapshots(record *models.ConflictRecord) (local, remote string, err error) {
	localBytes, err := json.Marshal(api.FromSnapshot(record.Local))
	if err != nil {
		return "", "", fmt.Errorf("failed to marshal local snapshot: %w", err)
	}

	remoteBytes, err := json.Marshal(api.FromSnapshot(record.Remote))
	if err != nil {
		return "", "", fmt.Errorf("failed to marshal remote snapshot: %w", err)
	}

	return string(localBytes), string(remoteBytes), nil
}

// boolToInt конвертирует bool в int для хранения в SQLite
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// nullableUnix конвертирует опциональную метку времени в Unix-секунды
// или NULL для хранения в SQLite
func nullableUnix(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return t.Unix()
}
