// Package lock реализует менеджер рекомендательных аренд на редактирование.
// Аренда снижает вероятность параллельного редактирования при наличии
// связности, но не гарантирует его отсутствие: два устройства, работающие
// полностью офлайн, могут разойтись несмотря на аренды. Корректность
// обеспечивает обнаружение конфликтов, аренда - только оптимизация.
package lock

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/iudanet/chartsync/internal/models"
	"github.com/iudanet/chartsync/internal/storage"
)

// ErrNotHolder indicates that device tried to release a lock held by another device
var ErrNotHolder = errors.New("device does not hold the lock")

// PresenceHints источник подсказок присутствия. Менеджер использует его
// только как рекомендательный сигнал: предупредить о втором редакторе
// перед выдачей аренды, никогда как условие корректности.
type PresenceHints interface {
	// ActiveEditors returns device IDs actively editing the entity
	ActiveEditors(entityID string) []string
}

// AcquireResult результат попытки получить аренду.
// Отказ в аренде - нормальный ожидаемый исход, а не ошибка:
// вызывающая сторона получает держателя как полезную информацию.
type AcquireResult struct {
	Lock           *models.EditLock // выданная аренда (nil при отказе)
	HolderDeviceID string           // текущий держатель при отказе
	ActiveEditors  []string         // другие устройства, редактирующие сущность (подсказка присутствия)
	Granted        bool             // выдана ли аренда
}

// RenewStatus исход продления аренды.
type RenewStatus string

// Исходы продления
const (
	RenewStatusRenewed   RenewStatus = "renewed"    // аренда продлена
	RenewStatusExpired   RenewStatus = "expired"    // аренда истекла или отсутствует
	RenewStatusNotHolder RenewStatus = "not-holder" // аренду держит другое устройство
)

// Manager выдает, продлевает и снимает аренды на редактирование.
// Инвариант: не более одной активной неистекшей аренды на сущность.
// Истечение оценивается лениво при обращении; периодический sweep
// опционален и нужен только для своевременных подсказок присутствия.
type Manager struct {
	now    func() time.Time
	locks  map[string]*models.EditLock
	store  storage.LockStorage // опциональная сквозная персистентность
	hints  PresenceHints       // опциональные подсказки присутствия
	logger *slog.Logger
	mu     sync.Mutex
}

// NewManager creates a new edit lock manager.
// store и hints могут быть nil: без персистентности и без подсказок.
func NewManager(store storage.LockStorage, hints PresenceHints, logger *slog.Logger) *Manager {
	return &Manager{
		locks:  make(map[string]*models.EditLock),
		store:  store,
		hints:  hints,
		logger: logger,
		now:    time.Now,
	}
}

// Load восстанавливает аренды из локального хранилища после перезапуска
func (m *Manager) Load(ctx context.Context) error {
	if m.store == nil {
		return nil
	}

	locks, err := m.store.GetAllLocks(ctx)
	if err != nil {
		return fmt.Errorf("failed to load locks: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, l := range locks {
		m.locks[lockKey(l.EntityType, l.EntityID)] = l
	}

	return nil
}

// TryAcquire пытается получить аренду на сущность.
// Повторный вызов держателем продлевает его же аренду с новым ttl.
func (m *Manager) TryAcquire(ctx context.Context, entityType models.EntityType, entityID, deviceID string, ttl time.Duration) (AcquireResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	key := lockKey(entityType, entityID)

	existing := m.locks[key]
	if existing != nil && existing.IsHeld(now) {
		if existing.DeviceID != deviceID {
			// Отказ: аренду держит другое устройство
			return AcquireResult{
				Granted:        false,
				HolderDeviceID: existing.DeviceID,
				ActiveEditors:  m.otherEditors(entityID, deviceID),
			}, nil
		}

		// Держатель повторно запрашивает свою аренду - продлеваем
		existing.TTL = ttl
		existing.ExpiresAt = now.Add(ttl)
		if err := m.persist(ctx, existing); err != nil {
			return AcquireResult{}, err
		}
		return AcquireResult{Granted: true, Lock: existing.Clone()}, nil
	}

	granted := &models.EditLock{
		EntityType: entityType,
		EntityID:   entityID,
		DeviceID:   deviceID,
		AcquiredAt: now,
		ExpiresAt:  now.Add(ttl),
		TTL:        ttl,
		Active:     true,
	}
	m.locks[key] = granted

	if err := m.persist(ctx, granted); err != nil {
		return AcquireResult{}, err
	}

	m.logger.Debug("Edit lock granted",
		"entity_type", entityType,
		"entity_id", entityID,
		"device_id", deviceID,
		"ttl", ttl)

	return AcquireResult{
		Granted:       true,
		Lock:          granted.Clone(),
		ActiveEditors: m.otherEditors(entityID, deviceID),
	}, nil
}

// Renew продлевает аренду держателя на ее исходный ttl.
// Аренда не продлевается неявно: без вызова Renew она истекает.
func (m *Manager) Renew(ctx context.Context, entityType models.EntityType, entityID, deviceID string) (RenewStatus, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	existing := m.locks[lockKey(entityType, entityID)]

	if existing == nil || !existing.Active {
		return RenewStatusExpired, nil
	}
	if existing.DeviceID != deviceID {
		return RenewStatusNotHolder, nil
	}
	if existing.IsExpired(now) {
		// Ленивое истечение при обращении
		existing.Active = false
		if err := m.persist(ctx, existing); err != nil {
			return RenewStatusExpired, err
		}
		return RenewStatusExpired, nil
	}

	existing.ExpiresAt = now.Add(existing.TTL)
	if err := m.persist(ctx, existing); err != nil {
		return RenewStatusRenewed, err
	}

	return RenewStatusRenewed, nil
}

// Release снимает аренду держателя.
// Возвращает ErrNotHolder, если аренду держит другое устройство;
// снятие отсутствующей аренды является no-op.
func (m *Manager) Release(ctx context.Context, entityType models.EntityType, entityID, deviceID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing := m.locks[lockKey(entityType, entityID)]
	if existing == nil || !existing.IsHeld(m.now()) {
		return nil
	}
	if existing.DeviceID != deviceID {
		return fmt.Errorf("%w: held by %s", ErrNotHolder, existing.DeviceID)
	}

	existing.Active = false
	if err := m.persist(ctx, existing); err != nil {
		return err
	}

	m.logger.Debug("Edit lock released",
		"entity_type", entityType,
		"entity_id", entityID,
		"device_id", deviceID)

	return nil
}

// CurrentHolder возвращает устройство, держащее активную неистекшую аренду
func (m *Manager) CurrentHolder(entityType models.EntityType, entityID string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing := m.locks[lockKey(entityType, entityID)]
	if existing == nil || !existing.IsHeld(m.now()) {
		return "", false
	}

	return existing.DeviceID, true
}

// ActiveLocks возвращает все активные неистекшие аренды
// (например, для репликации в удаленное хранилище)
func (m *Manager) ActiveLocks() []*models.EditLock {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	var active []*models.EditLock
	for _, l := range m.locks {
		if l.IsHeld(now) {
			active = append(active, l.Clone())
		}
	}

	return active
}

// Import принимает аренду, полученную из удаленного хранилища.
// Удаленная аренда принимается, только если по сущности нет локальной
// активной аренды: аренды рекомендательные, двусмысленность разрешает
// обнаружение конфликтов, а не менеджер.
func (m *Manager) Import(ctx context.Context, remote *models.EditLock) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := lockKey(remote.EntityType, remote.EntityID)
	existing := m.locks[key]
	if existing != nil && existing.IsHeld(m.now()) {
		return nil
	}

	imported := remote.Clone()
	m.locks[key] = imported
	return m.persist(ctx, imported)
}

// Sweep деактивирует истекшие аренды. Возвращает число снятых аренд.
// Не обязателен для корректности (истечение лениво), но полезен,
// чтобы подсказки присутствия не видели мертвые аренды.
func (m *Manager) Sweep(ctx context.Context) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	swept := 0
	for _, l := range m.locks {
		if l.Active && l.IsExpired(now) {
			l.Active = false
			if err := m.persist(ctx, l); err != nil {
				m.logger.Warn("Failed to persist swept lock",
					"entity_id", l.EntityID,
					"error", err)
			}
			swept++
		}
	}

	return swept
}

// StartSweeper запускает периодический sweep до отмены контекста.
// Таймер останавливается вместе с сессией редактирования.
func (m *Manager) StartSweeper(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.Sweep(ctx)
			}
		}
	}()
}

// SetNowFunc подменяет источник времени. Только для тестов.
func (m *Manager) SetNowFunc(now func() time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.now = now
}

// otherEditors возвращает другие устройства, активно редактирующие сущность.
// Вызывается под m.mu; подсказки опциональны.
func (m *Manager) otherEditors(entityID, deviceID string) []string {
	if m.hints == nil {
		return nil
	}

	var others []string
	for _, editor := range m.hints.ActiveEditors(entityID) {
		if editor != deviceID {
			others = append(others, editor)
		}
	}

	return others
}

// persist пишет аренду в локальное хранилище, если оно настроено
func (m *Manager) persist(ctx context.Context, l *models.EditLock) error {
	if m.store == nil {
		return nil
	}
	if err := m.store.SaveLock(ctx, l); err != nil {
		return fmt.Errorf("failed to persist lock: %w", err)
	}
	return nil
}

// lockKey формирует ключ аренды по типу и идентификатору сущности
func lockKey(entityType models.EntityType, entityID string) string {
	return string(entityType) + "/" + entityID
}
