// Package syncer оркестрирует цикл синхронизации устройства: pull удаленных
// снимков, обнаружение и автоматическое разрешение конфликтов, репликация
// исходов и обмен арендами. Разрешения фиксируются локально до репликации
// (local-first): неудачный или отмененный push не откатывает локальное
// состояние.
package syncer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/iudanet/chartsync/internal/conflict"
	"github.com/iudanet/chartsync/internal/digest"
	"github.com/iudanet/chartsync/internal/hlc"
	"github.com/iudanet/chartsync/internal/ledger"
	"github.com/iudanet/chartsync/internal/lock"
	"github.com/iudanet/chartsync/internal/models"
	"github.com/iudanet/chartsync/internal/presence"
	"github.com/iudanet/chartsync/internal/remote"
	"github.com/iudanet/chartsync/internal/storage"
)

// ErrNeedsManualResync indicates that the local snapshot for a diverging
// entity is unrecoverable (e.g., store wiped mid-conflict).
// Такая сущность требует ручного resync; слой никогда не угадывает.
var ErrNeedsManualResync = errors.New("entity needs manual resync")

// Параметры повторов репликации разрешений
const (
	pushBackoffBase = 500 * time.Millisecond
	pushMaxRetries  = 5
)

//go:generate moq -out service_mock.go . Service

// Service определяет интерфейс сервиса синхронизации
type Service interface {
	// Sync выполняет полный цикл синхронизации с удаленным хранилищем
	Sync(ctx context.Context) (*SyncResult, error)

	// PendingChangesCount возвращает количество локальных снимков,
	// ожидающих синхронизации
	PendingChangesCount(ctx context.Context) (int, error)

	// SharePresence реплицирует локальную запись присутствия
	SharePresence(ctx context.Context, record *models.PresenceRecord) error

	// WatchPresence транслирует удаленные обновления присутствия по сущности
	// в локальный трекер. Блокируется до отмены контекста.
	WatchPresence(ctx context.Context, entityID string, tracker *presence.Tracker) error
}

// service orchestrates synchronization between the local device and remote store
type service struct {
	remote      remote.Store
	snapshots   storage.SnapshotStorage
	metadata    storage.MetadataStorage
	conflicts   *conflict.Service
	ledger      ledger.Ledger
	locks       *lock.Manager
	clock       *hlc.Clock
	logger      *slog.Logger
	backoffBase time.Duration
}

// SyncResult contains sync operation results
type SyncResult struct {
	ManualResync    []string // ключи сущностей, требующих ручного resync
	PulledSnapshots int      // количество полученных удаленных снимков
	CleanApplied    int      // количество снимков, примененных без конфликта
	Conflicts       int      // количество обнаруженных конфликтов
	AutoResolved    int      // количество автоматически разрешенных конфликтов
	PendingUser     int      // количество конфликтов, ожидающих пользователя
	PushedLocks     int      // количество реплицированных аренд
}

// NewService creates a new sync service
func NewService(
	remoteStore remote.Store,
	snapshots storage.SnapshotStorage,
	metadata storage.MetadataStorage,
	conflicts *conflict.Service,
	conflictLedger ledger.Ledger,
	locks *lock.Manager,
	clock *hlc.Clock,
	logger *slog.Logger,
) Service {
	return &service{
		remote:      remoteStore,
		snapshots:   snapshots,
		metadata:    metadata,
		conflicts:   conflicts,
		ledger:      conflictLedger,
		locks:       locks,
		clock:       clock,
		logger:      logger,
		backoffBase: pushBackoffBase,
	}
}

// Sync performs a full synchronization cycle
// 1. Pulls remote snapshots changed since the last sync
// 2. Detects and auto-resolves conflicts entity by entity
// 3. Replicates locally committed resolutions with backoff
// 4. Exchanges advisory edit locks
func (s *service) Sync(ctx context.Context) (*SyncResult, error) {
	result := &SyncResult{}

	// Получаем метку последней синхронизации
	lastSync, err := s.metadata.GetLastSyncTimestamp(ctx)
	if err != nil {
		s.logger.Warn("Failed to get last sync timestamp, using 0", "error", err)
		lastSync = 0
	}

	remoteSnapshots, err := s.remote.PullChanges(ctx, lastSync)
	if err != nil {
		return nil, fmt.Errorf("failed to pull remote changes: %w", err)
	}

	s.logger.Info("Pulled remote changes",
		"count", len(remoteSnapshots),
		"since", lastSync)
	result.PulledSnapshots = len(remoteSnapshots)

	for _, remoteSnapshot := range remoteSnapshots {
		// Продвигаем часы по каждой наблюдаемой удаленной метке
		s.clock.Update(remoteSnapshot.LogicalTime)

		if err := s.applyRemote(ctx, remoteSnapshot, result); err != nil {
			if errors.Is(err, ErrNeedsManualResync) {
				key := string(remoteSnapshot.EntityType) + "/" + remoteSnapshot.EntityID
				result.ManualResync = append(result.ManualResync, key)
				continue
			}
			return nil, err
		}
	}

	if err := s.exchangeLocks(ctx, result); err != nil {
		// Обмен арендами рекомендательный - ошибка не прерывает синхронизацию
		s.logger.Warn("Failed to exchange locks", "error", err)
	}

	// Сохраняем состояние часов и метку синхронизации
	current := s.clock.Current()
	if err := s.metadata.SaveLastSyncTimestamp(ctx, current); err != nil {
		s.logger.Warn("Failed to save last sync timestamp", "error", err)
	}
	if err := s.metadata.SaveClockState(ctx, current); err != nil {
		s.logger.Warn("Failed to save clock state", "error", err)
	}

	s.logger.Info("Synchronization completed",
		"pulled", result.PulledSnapshots,
		"clean", result.CleanApplied,
		"conflicts", result.Conflicts,
		"auto_resolved", result.AutoResolved,
		"pending_user", result.PendingUser,
		"manual_resync", len(result.ManualResync))

	return result, nil
}

// applyRemote применяет один удаленный снимок к локальному состоянию
func (s *service) applyRemote(ctx context.Context, remoteSnapshot *models.EntitySnapshot, result *SyncResult) error {
	local, err := s.snapshots.GetSnapshot(ctx, remoteSnapshot.EntityType, remoteSnapshot.EntityID)
	if err != nil {
		if !errors.Is(err, storage.ErrSnapshotNotFound) {
			return fmt.Errorf("failed to get local snapshot: %w", err)
		}
		return s.adoptRemote(ctx, remoteSnapshot, result)
	}

	record, err := s.conflicts.ProcessRemote(ctx, local, remoteSnapshot)
	if err != nil {
		return err
	}

	if record == nil {
		// Конфликта нет: содержимое совпадает. Если удаленный снимок
		// причинно новее, обновляем локальные метаданные версии.
		if remoteSnapshot.IsNewerThan(local) {
			if err := s.snapshots.SaveSnapshot(ctx, remoteSnapshot); err != nil {
				return fmt.Errorf("failed to save snapshot: %w", err)
			}
		}
		result.CleanApplied++
		return nil
	}

	result.Conflicts++

	if record.IsResolved() {
		result.AutoResolved++
		// Разрешение уже зафиксировано локально - реплицируем.
		// Неудачный push не влияет на локальное состояние (local-first).
		if err := s.pushResolution(ctx, record); err != nil {
			s.logger.Warn("Failed to push resolution, will retry next sync",
				"conflict_id", record.ID,
				"error", err)
		}
		return nil
	}

	result.PendingUser++
	return nil
}

// adoptRemote применяет удаленный снимок сущности, не известной локально.
// Если по сущности есть открытый конфликт, локальный снимок невосстановим
// (хранилище очищено в середине конфликта) - требуется ручной resync.
func (s *service) adoptRemote(ctx context.Context, remoteSnapshot *models.EntitySnapshot, result *SyncResult) error {
	_, err := s.ledger.OpenByEntity(ctx, remoteSnapshot.EntityType, remoteSnapshot.EntityID)
	if err == nil {
		s.logger.Error("Open conflict references a missing local snapshot",
			"entity_type", remoteSnapshot.EntityType,
			"entity_id", remoteSnapshot.EntityID)
		return ErrNeedsManualResync
	}
	if !errors.Is(err, ledger.ErrConflictNotFound) {
		return fmt.Errorf("failed to check open conflict: %w", err)
	}

	// Новая для этого устройства сущность - проверяем и принимаем
	if err := digest.Verify(remoteSnapshot); err != nil {
		s.logger.Warn("Skipping corrupt remote snapshot for unknown entity",
			"entity_type", remoteSnapshot.EntityType,
			"entity_id", remoteSnapshot.EntityID,
			"error", err)
		return nil
	}

	if err := s.snapshots.SaveSnapshot(ctx, remoteSnapshot); err != nil {
		return fmt.Errorf("failed to adopt remote snapshot: %w", err)
	}

	result.CleanApplied++
	return nil
}

// pushResolution реплицирует разрешение с экспоненциальным backoff.
// Отмена контекста прекращает повторы; локальная запись остается
// в уже зафиксированном состоянии.
func (s *service) pushResolution(ctx context.Context, record *models.ConflictRecord) error {
	backoff := retry.WithMaxRetries(pushMaxRetries, retry.NewExponential(s.backoffBase))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := s.remote.PushResolution(ctx, record); err != nil {
			// Сетевые ошибки считаем временными
			return retry.RetryableError(err)
		}
		return nil
	})
}

// exchangeLocks реплицирует локальные активные аренды и принимает удаленные
func (s *service) exchangeLocks(ctx context.Context, result *SyncResult) error {
	remoteLocks, err := s.remote.PullLocks(ctx)
	if err != nil {
		return fmt.Errorf("failed to pull locks: %w", err)
	}

	for _, remoteLock := range remoteLocks {
		if err := s.locks.Import(ctx, remoteLock); err != nil {
			s.logger.Warn("Failed to import remote lock",
				"entity_id", remoteLock.EntityID,
				"error", err)
		}
	}

	for _, localLock := range s.locks.ActiveLocks() {
		if err := s.remote.PushLock(ctx, localLock); err != nil {
			return fmt.Errorf("failed to push lock: %w", err)
		}
		result.PushedLocks++
	}

	return nil
}

// PendingChangesCount возвращает количество локальных снимков,
// измененных после последней синхронизации
func (s *service) PendingChangesCount(ctx context.Context) (int, error) {
	lastSync, err := s.metadata.GetLastSyncTimestamp(ctx)
	if err != nil {
		s.logger.Debug("No last sync timestamp found, using 0", "error", err)
		lastSync = 0
	}

	pending, err := s.snapshots.GetSnapshotsAfter(ctx, lastSync)
	if err != nil {
		return 0, fmt.Errorf("failed to get pending snapshots: %w", err)
	}

	return len(pending), nil
}

// SharePresence replicates a local presence record to the remote store
func (s *service) SharePresence(ctx context.Context, record *models.PresenceRecord) error {
	if err := s.remote.PushPresence(ctx, record); err != nil {
		return fmt.Errorf("failed to push presence: %w", err)
	}
	return nil
}

// WatchPresence feeds remote presence updates for an entity into the local tracker.
// Возвращается при отмене контекста или закрытии удаленного потока.
func (s *service) WatchPresence(ctx context.Context, entityID string, tracker *presence.Tracker) error {
	updates, err := s.remote.SubscribePresence(ctx, entityID)
	if err != nil {
		return fmt.Errorf("failed to subscribe to presence: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case record, ok := <-updates:
			if !ok {
				return nil
			}
			if record == nil {
				continue
			}
			tracker.Heartbeat(presence.Heartbeat{
				UserID:      record.UserID,
				DeviceID:    record.DeviceID,
				DisplayName: record.DisplayName,
				DeviceType:  record.DeviceType,
				Activity:    record.Activity,
				EntityID:    record.EntityID,
			})
		}
	}
}
