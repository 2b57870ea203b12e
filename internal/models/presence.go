package models

import "time"

// PresenceStatus статус присутствия пользователя.
type PresenceStatus string

// Статусы присутствия
const (
	StatusOnline       PresenceStatus = "online"
	StatusAway         PresenceStatus = "away"
	StatusOffline      PresenceStatus = "offline"
	StatusDoNotDisturb PresenceStatus = "do-not-disturb"
)

// PresenceActivity текущая активность пользователя.
type PresenceActivity string

// Виды активности
const (
	ActivityViewing PresenceActivity = "viewing"
	ActivityEditing PresenceActivity = "editing"
	ActivityIdle    PresenceActivity = "idle"
	ActivityOffline PresenceActivity = "offline"
)

// Пороги производных статусов присутствия
const (
	// ActiveThreshold максимальный возраст heartbeat для статуса online
	ActiveThreshold = 30 * time.Second
	// RecentThreshold максимальный возраст heartbeat для "recently active"
	RecentThreshold = 5 * time.Minute
)

// PresenceRecord эфемерное состояние присутствия пары (пользователь, устройство).
// Создается при первом heartbeat и далее перезаписывается (не накапливается);
// после длительного отсутствия heartbeat помечается offline.
type PresenceRecord struct {
	LastHeartbeat time.Time        `json:"last_heartbeat"` // LastHeartbeat время последнего heartbeat
	UserID        string           `json:"user_id"`        // UserID идентификатор пользователя
	DisplayName   string           `json:"display_name"`   // DisplayName отображаемое имя
	DeviceID      string           `json:"device_id"`      // DeviceID идентификатор устройства
	DeviceType    string           `json:"device_type"`    // DeviceType тип устройства (ios, macos, web, ...)
	Status        PresenceStatus   `json:"status"`         // Status текущий статус присутствия
	Activity      PresenceActivity `json:"activity"`       // Activity текущая активность
	EntityID      string           `json:"entity_id"`      // EntityID открытая сейчас сущность ("" = нет)
}

// IsActive возвращает true, если heartbeat моложе 30 секунд
// и статус online.
func (p *PresenceRecord) IsActive(now time.Time) bool {
	return p.Status == StatusOnline && now.Sub(p.LastHeartbeat) < ActiveThreshold
}

// IsRecentlyActive возвращает true, если heartbeat моложе 5 минут.
func (p *PresenceRecord) IsRecentlyActive(now time.Time) bool {
	return now.Sub(p.LastHeartbeat) < RecentThreshold
}

// DeriveStatus вычисляет статус по возрасту heartbeat.
// Переходы: online пока heartbeat моложе 30с; away от 30с до 5 минут;
// offline после 5 минут. Статусы do-not-disturb и offline выставляются
// явно и не выводятся из heartbeat; следующий heartbeat снимает offline.
func (p *PresenceRecord) DeriveStatus(now time.Time) PresenceStatus {
	if p.Status == StatusDoNotDisturb || p.Status == StatusOffline {
		return p.Status
	}
	age := now.Sub(p.LastHeartbeat)
	switch {
	case age < ActiveThreshold:
		return StatusOnline
	case age < RecentThreshold:
		return StatusAway
	default:
		return StatusOffline
	}
}

// Clone создает копию записи присутствия
func (p *PresenceRecord) Clone() *PresenceRecord {
	clone := *p
	return &clone
}
