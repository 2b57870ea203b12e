package conflict

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/chartsync/internal/digest"
	"github.com/iudanet/chartsync/internal/hlc"
	"github.com/iudanet/chartsync/internal/ledger"
	"github.com/iudanet/chartsync/internal/models"
	"github.com/iudanet/chartsync/internal/storage"
)

// Resolver применяет исходы разрешения к обнаруженным конфликтам.
// Машина состояний записи: detected -> {auto-resolved | pending-user} -> resolved.
// Разрешение сначала фиксируется локально (снимки, затем журнал);
// репликация исхода выполняется вызывающей стороной.
type Resolver struct {
	ledger    ledger.Ledger
	snapshots storage.SnapshotStorage
	clock     *hlc.Clock
	logger    *slog.Logger
	now       func() time.Time
}

// NewResolver creates a new resolution engine
func NewResolver(l ledger.Ledger, snapshots storage.SnapshotStorage, clock *hlc.Clock, logger *slog.Logger) *Resolver {
	return &Resolver{
		ledger:    l,
		snapshots: snapshots,
		clock:     clock,
		logger:    logger,
		now:       time.Now,
	}
}

// Resolve применяет исход к конфликту. Идемпотентен: повторный вызов
// с тем же исходом после терминального разрешения является no-op;
// вызов с другим исходом возвращает ErrConflictAlreadyResolved,
// разрешенная запись никогда молча не перезаписывается.
// mergedSnapshot обязателен только для исхода merge.
func (r *Resolver) Resolve(ctx context.Context, conflictID string, outcome models.ResolutionOutcome, mergedSnapshot *models.EntitySnapshot) (*models.ConflictRecord, error) {
	if !outcome.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidOutcome, outcome)
	}

	record, err := r.ledger.Get(ctx, conflictID)
	if err != nil {
		return nil, fmt.Errorf("failed to load conflict: %w", err)
	}

	if record.IsResolved() {
		// Тот же исход - идемпотентный no-op
		if record.Resolution == outcome {
			return record, nil
		}
		return nil, fmt.Errorf("%w: resolved as %q, requested %q",
			ErrConflictAlreadyResolved, record.Resolution, outcome)
	}

	// Сначала материализуем снимки локально (local-first),
	// затем фиксируем исход в журнале
	if outcome.IsTerminal() {
		if err := r.applyOutcome(ctx, record, outcome, mergedSnapshot); err != nil {
			return nil, err
		}
	}

	resolvedAt := r.now()
	if err := r.ledger.RecordResolution(ctx, conflictID, outcome, resolvedAt); err != nil {
		return nil, fmt.Errorf("failed to record resolution: %w", err)
	}

	r.logger.Info("Conflict resolved",
		"conflict_id", conflictID,
		"outcome", outcome,
		"entity_type", record.EntityType,
		"entity_id", record.EntityID)

	return r.ledger.Get(ctx, conflictID)
}

// AutoResolve автоматически разрешает конфликт по правилу last-write-wins.
// Применимо только к property/attachment конфликтам, где ни один снимок
// не удален и не требуется участие пользователя. Побеждает снимок
// с большей логической меткой; при равенстве меток выбор детерминирован
// лексикографическим сравнением идентификаторов устройств.
func (r *Resolver) AutoResolve(ctx context.Context, record *models.ConflictRecord) (*models.ConflictRecord, error) {
	if !record.IsAutoResolvable() {
		return nil, fmt.Errorf("%w: type %q", ErrNotAutoResolvable, record.Type)
	}

	outcome := models.ResolutionKeepLocal
	if record.Remote.IsNewerThan(record.Local) {
		outcome = models.ResolutionKeepRemote
	}

	r.logger.Debug("Auto-resolving conflict (last-write-wins)",
		"conflict_id", record.ID,
		"outcome", outcome,
		"local_time", record.Local.LogicalTime,
		"remote_time", record.Remote.LogicalTime)

	return r.Resolve(ctx, record.ID, outcome, nil)
}

// applyOutcome материализует результат терминального исхода
// в локальном хранилище снимков.
func (r *Resolver) applyOutcome(ctx context.Context, record *models.ConflictRecord, outcome models.ResolutionOutcome, mergedSnapshot *models.EntitySnapshot) error {
	switch outcome {
	case models.ResolutionKeepLocal:
		return r.saveSnapshot(ctx, record.Local)

	case models.ResolutionKeepRemote:
		return r.saveSnapshot(ctx, record.Remote)

	case models.ResolutionKeepBoth:
		return r.keepBoth(ctx, record)

	case models.ResolutionMerge:
		if mergedSnapshot == nil {
			return ErrMergedSnapshotRequired
		}
		if mergedSnapshot.EntityType != record.EntityType || mergedSnapshot.EntityID != record.EntityID {
			return ErrMergedSnapshotMismatch
		}

		merged := mergedSnapshot.Clone()
		merged.LogicalTime = r.clock.Tick()
		merged.WallTime = r.now()
		merged.DeviceID = r.clock.DeviceID()
		if err := digest.Fill(merged); err != nil {
			return err
		}
		return r.saveSnapshot(ctx, merged)

	default:
		return fmt.Errorf("%w: %q", ErrInvalidOutcome, outcome)
	}
}

// keepBoth оставляет LWW-победителя под исходным идентификатором сущности,
// а проигравший снимок материализует как новую сущность с обратной ссылкой
// на оригинал. Проигравшая версия никогда не отбрасывается. Выбор победителя
// детерминирован, поэтому устройства сходятся к одному результату.
func (r *Resolver) keepBoth(ctx context.Context, record *models.ConflictRecord) error {
	winner, loser := record.Local, record.Remote
	if record.Remote.IsNewerThan(record.Local) {
		winner, loser = record.Remote, record.Local
	}

	fork := loser.Clone()
	fork.EntityID = uuid.New().String()
	fork.Fields[models.OriginEntityField] = record.EntityID
	fork.Deleted = false
	fork.LogicalTime = r.clock.Tick()
	fork.WallTime = r.now()
	fork.DeviceID = r.clock.DeviceID()
	if err := digest.Fill(fork); err != nil {
		return err
	}

	if err := r.saveSnapshot(ctx, winner); err != nil {
		return err
	}

	if err := r.saveSnapshot(ctx, fork); err != nil {
		return err
	}

	r.logger.Info("Forked losing snapshot into new entity",
		"origin_entity_id", record.EntityID,
		"fork_entity_id", fork.EntityID)

	return nil
}

// saveSnapshot сохраняет снимок в локальное хранилище
func (r *Resolver) saveSnapshot(ctx context.Context, snapshot *models.EntitySnapshot) error {
	if err := r.snapshots.SaveSnapshot(ctx, snapshot); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}
