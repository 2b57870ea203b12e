// Package presence отслеживает, какой пользователь и устройство просматривает
// или редактирует какую сущность, с liveness на основе heartbeat.
// Присутствие - рекомендательный сигнал для снижения частоты конфликтов;
// корректность слоя от него не зависит.
package presence

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/iudanet/chartsync/internal/models"
)

// EventType тип события присутствия.
type EventType string

// События присутствия
const (
	EventUserJoined     EventType = "userJoined"
	EventStartedEditing EventType = "startedEditing"
	EventStoppedEditing EventType = "stoppedEditing"
	EventChangedEntity  EventType = "changedEntity"
	EventWentOffline    EventType = "wentOffline"
)

// Event типизированное событие присутствия.
// Заменяет слабо типизированную широковещательную шину: имена событий
// и полезная нагрузка фиксированы на уровне типов.
type Event struct {
	At       time.Time             `json:"at"`        // At время события
	Record   models.PresenceRecord `json:"record"`    // Record состояние присутствия на момент события
	Type     EventType             `json:"type"`      // Type тип события
	EntityID string                `json:"entity_id"` // EntityID сущность, к которой относится событие
}

// Heartbeat входные данные одного heartbeat
type Heartbeat struct {
	UserID      string                  // идентификатор пользователя
	DeviceID    string                  // идентификатор устройства
	DisplayName string                  // отображаемое имя
	DeviceType  string                  // тип устройства
	Activity    models.PresenceActivity // текущая активность
	EntityID    string                  // открытая сущность ("" = нет)
}

// subscriber один подписчик на события сущности
type subscriber struct {
	ch       chan Event
	entityID string // "" = все сущности
}

// Tracker отслеживает присутствие пар (пользователь, устройство).
// Записи перезаписываются при каждом heartbeat; производный статус
// вычисляется по возрасту heartbeat при чтении и периодическим sweep.
type Tracker struct {
	now     func() time.Time
	records map[string]*models.PresenceRecord
	subs    map[int]*subscriber
	logger  *slog.Logger
	nextSub int
	mu      sync.RWMutex
}

// NewTracker creates a new presence tracker
func NewTracker(logger *slog.Logger) *Tracker {
	return &Tracker{
		records: make(map[string]*models.PresenceRecord),
		subs:    make(map[int]*subscriber),
		logger:  logger,
		now:     time.Now,
	}
}

// Heartbeat обновляет присутствие пары (пользователь, устройство).
// Вызывается с ограниченным интервалом, пока открыт просмотр.
// Порождает дискретные события по переходам состояния.
func (t *Tracker) Heartbeat(hb Heartbeat) {
	t.mu.Lock()

	now := t.now()
	key := presenceKey(hb.UserID, hb.DeviceID)
	prev := t.records[key]

	record := &models.PresenceRecord{
		UserID:        hb.UserID,
		DisplayName:   hb.DisplayName,
		DeviceID:      hb.DeviceID,
		DeviceType:    hb.DeviceType,
		Status:        models.StatusOnline,
		Activity:      hb.Activity,
		EntityID:      hb.EntityID,
		LastHeartbeat: now,
	}

	// do-not-disturb выставляется явно и переживает heartbeat
	if prev != nil && prev.Status == models.StatusDoNotDisturb {
		record.Status = models.StatusDoNotDisturb
	}

	t.records[key] = record

	events := diffEvents(prev, record, now)
	t.mu.Unlock()

	for _, ev := range events {
		t.publish(ev)
	}
}

// MarkOffline явно переводит пару (пользователь, устройство) в offline
func (t *Tracker) MarkOffline(userID, deviceID string) {
	t.mu.Lock()

	key := presenceKey(userID, deviceID)
	record := t.records[key]
	if record == nil {
		t.mu.Unlock()
		return
	}

	now := t.now()
	record.Status = models.StatusOffline
	record.Activity = models.ActivityOffline
	entityID := record.EntityID
	record.EntityID = ""
	snapshot := *record
	t.mu.Unlock()

	t.publish(Event{Type: EventWentOffline, Record: snapshot, EntityID: entityID, At: now})
}

// SetStatus явно выставляет статус (do-not-disturb и обратно)
func (t *Tracker) SetStatus(userID, deviceID string, status models.PresenceStatus) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if record := t.records[presenceKey(userID, deviceID)]; record != nil {
		record.Status = status
	}
}

// Get возвращает запись присутствия с производным статусом
func (t *Tracker) Get(userID, deviceID string) (*models.PresenceRecord, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	record, ok := t.records[presenceKey(userID, deviceID)]
	if !ok {
		return nil, false
	}

	derived := record.Clone()
	derived.Status = derived.DeriveStatus(t.now())
	return derived, true
}

// List возвращает записи присутствия, открытые на сущности
func (t *Tracker) List(entityID string) []*models.PresenceRecord {
	t.mu.RLock()
	defer t.mu.RUnlock()

	now := t.now()
	var result []*models.PresenceRecord
	for _, record := range t.records {
		if record.EntityID != entityID {
			continue
		}
		derived := record.Clone()
		derived.Status = derived.DeriveStatus(now)
		result = append(result, derived)
	}

	return result
}

// ActiveEditors возвращает устройства, активно редактирующие сущность.
// Реализует рекомендательный контракт менеджера аренд.
func (t *Tracker) ActiveEditors(entityID string) []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	now := t.now()
	var editors []string
	for _, record := range t.records {
		if record.EntityID == entityID &&
			record.Activity == models.ActivityEditing &&
			record.IsActive(now) {
			editors = append(editors, record.DeviceID)
		}
	}

	return editors
}

// Subscribe подписывает на события присутствия сущности.
// entityID == "" подписывает на события всех сущностей.
// Возвращает канал событий и функцию отписки; при переполнении
// буфера подписчика события отбрасываются, heartbeat не блокируется.
func (t *Tracker) Subscribe(entityID string) (<-chan Event, func()) {
	t.mu.Lock()
	defer t.mu.Unlock()

	id := t.nextSub
	t.nextSub++

	sub := &subscriber{
		entityID: entityID,
		ch:       make(chan Event, 16),
	}
	t.subs[id] = sub

	cancel := func() {
		t.mu.Lock()
		defer t.mu.Unlock()

		if s, ok := t.subs[id]; ok {
			delete(t.subs, id)
			close(s.ch)
		}
	}

	return sub.ch, cancel
}

// Sweep помечает устаревшие записи offline и порождает wentOffline.
// Возвращает число переведенных в offline записей.
func (t *Tracker) Sweep() int {
	t.mu.Lock()

	now := t.now()
	swept := 0
	var events []Event

	for _, record := range t.records {
		if record.Status == models.StatusOffline {
			continue
		}
		if record.DeriveStatus(now) != models.StatusOffline {
			continue
		}

		record.Status = models.StatusOffline
		record.Activity = models.ActivityOffline
		entityID := record.EntityID
		record.EntityID = ""
		events = append(events, Event{
			Type:     EventWentOffline,
			Record:   *record,
			EntityID: entityID,
			At:       now,
		})
		swept++
	}
	t.mu.Unlock()

	for _, ev := range events {
		t.publish(ev)
	}

	return swept
}

// StartSweeper запускает периодический sweep до отмены контекста
func (t *Tracker) StartSweeper(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				t.Sweep()
			}
		}
	}()
}

// SetNowFunc подменяет источник времени. Только для тестов.
func (t *Tracker) SetNowFunc(now func() time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.now = now
}

// publish рассылает событие подписчикам сущности и глобальным подписчикам.
// Отправка неблокирующая: медленный подписчик теряет события.
func (t *Tracker) publish(ev Event) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for _, sub := range t.subs {
		if sub.entityID != "" && sub.entityID != ev.EntityID {
			continue
		}
		select {
		case sub.ch <- ev:
		default:
			t.logger.Warn("Presence subscriber buffer full, dropping event",
				"event_type", ev.Type,
				"entity_id", ev.EntityID)
		}
	}
}

// diffEvents вычисляет дискретные события по переходу состояния
func diffEvents(prev, curr *models.PresenceRecord, now time.Time) []Event {
	var events []Event

	if prev == nil {
		events = append(events, Event{
			Type: EventUserJoined, Record: *curr, EntityID: curr.EntityID, At: now,
		})
		if curr.Activity == models.ActivityEditing {
			events = append(events, Event{
				Type: EventStartedEditing, Record: *curr, EntityID: curr.EntityID, At: now,
			})
		}
		return events
	}

	if prev.EntityID != curr.EntityID {
		// Переход на другую сущность виден подписчикам обеих сущностей
		events = append(events, Event{
			Type: EventChangedEntity, Record: *curr, EntityID: prev.EntityID, At: now,
		})
		if curr.EntityID != "" {
			events = append(events, Event{
				Type: EventChangedEntity, Record: *curr, EntityID: curr.EntityID, At: now,
			})
		}
	}

	wasEditing := prev.Activity == models.ActivityEditing
	isEditing := curr.Activity == models.ActivityEditing
	switch {
	case !wasEditing && isEditing:
		events = append(events, Event{
			Type: EventStartedEditing, Record: *curr, EntityID: curr.EntityID, At: now,
		})
	case wasEditing && !isEditing:
		events = append(events, Event{
			Type: EventStoppedEditing, Record: *curr, EntityID: prev.EntityID, At: now,
		})
	}

	return events
}

// presenceKey формирует ключ записи по паре (пользователь, устройство)
func presenceKey(userID, deviceID string) string {
	return userID + "/" + deviceID
}
