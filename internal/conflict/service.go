package conflict

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/iudanet/chartsync/internal/ledger"
	"github.com/iudanet/chartsync/internal/models"
)

// Service внешний Conflict API слоя согласованности.
// Все операции над одной сущностью сериализуются локально (мьютекс
// на сущность), чтобы два локальных потока не гонялись за одной записью
// конфликта; операции над разными сущностями выполняются параллельно.
type Service struct {
	detector *Detector
	resolver *Resolver
	ledger   ledger.Ledger
	logger   *slog.Logger
	entityMu keyedMutex
}

// NewService creates the conflict service facade
func NewService(detector *Detector, resolver *Resolver, l ledger.Ledger, logger *slog.Logger) *Service {
	return &Service{
		detector: detector,
		resolver: resolver,
		ledger:   l,
		logger:   logger,
	}
}

// ProcessRemote обрабатывает входящий удаленный снимок: обнаруживает
// расхождение с локальным снимком и, если конфликт подходит для
// автоматического разрешения, сразу разрешает его по LWW.
// Возвращает nil, если конфликта нет.
func (s *Service) ProcessRemote(ctx context.Context, local, remote *models.EntitySnapshot) (*models.ConflictRecord, error) {
	unlock := s.entityMu.lock(entityKey(local.EntityType, local.EntityID))
	defer unlock()

	record, err := s.detector.Detect(ctx, local, remote)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, nil
	}

	if record.IsAutoResolvable() {
		resolved, err := s.resolver.AutoResolve(ctx, record)
		if err != nil {
			// Автоматическое разрешение не удалось - конфликт остается
			// открытым и уходит на ручное рассмотрение
			s.logger.Warn("Auto-resolution failed, conflict stays pending",
				"conflict_id", record.ID,
				"error", err)
			return record, nil
		}
		return resolved, nil
	}

	return record, nil
}

// ListPending возвращает все открытые конфликты, ожидающие разрешения
func (s *Service) ListPending(ctx context.Context) ([]*models.ConflictRecord, error) {
	return s.ledger.ListPending(ctx)
}

// Resolve применяет исход к конфликту по его идентификатору.
// См. Resolver.Resolve для семантики идемпотентности.
func (s *Service) Resolve(ctx context.Context, conflictID string, outcome models.ResolutionOutcome, mergedSnapshot *models.EntitySnapshot) (*models.ConflictRecord, error) {
	// Запись нужна заранее, чтобы сериализовать по ключу сущности
	record, err := s.ledger.Get(ctx, conflictID)
	if err != nil {
		return nil, fmt.Errorf("failed to load conflict: %w", err)
	}

	unlock := s.entityMu.lock(entityKey(record.EntityType, record.EntityID))
	defer unlock()

	return s.resolver.Resolve(ctx, conflictID, outcome, mergedSnapshot)
}

// AutoResolvableCount возвращает количество открытых конфликтов,
// пригодных для автоматического разрешения
func (s *Service) AutoResolvableCount(ctx context.Context) (int, error) {
	return s.ledger.AutoResolvableCount(ctx)
}

// History возвращает полную историю конфликтов сущности для аудита
func (s *Service) History(ctx context.Context, entityType models.EntityType, entityID string) ([]*models.ConflictRecord, error) {
	return s.ledger.ListByEntity(ctx, entityType, entityID)
}

// entityKey формирует ключ сериализации операций по сущности
func entityKey(entityType models.EntityType, entityID string) string {
	return string(entityType) + "/" + entityID
}

// keyedMutex выдает мьютекс на ключ сущности.
// Мьютексы создаются лениво и не освобождаются: число сущностей
// с конфликтами на одном устройстве ограничено.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// lock блокирует мьютекс ключа и возвращает функцию разблокировки
func (k *keyedMutex) lock(key string) func() {
	k.mu.Lock()
	if k.locks == nil {
		k.locks = make(map[string]*sync.Mutex)
	}
	m, ok := k.locks[key]
	if !ok {
		m = &sync.Mutex{}
		k.locks[key] = m
	}
	k.mu.Unlock()

	m.Lock()
	return m.Unlock
}
