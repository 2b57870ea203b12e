// Package api содержит wire-типы слоя согласованности: записи конфликтов,
// снимки сущностей, аренды и присутствие в том виде, в котором они
// сериализуются для любого backing store или транспорта.
package api

import (
	"time"

	"github.com/iudanet/chartsync/internal/models"
)

// Snapshot представляет один снимок сущности для передачи/хранения
type Snapshot struct {
	WallTime    time.Time         `json:"wall_time"`
	Fields      map[string]string `json:"fields"`
	EntityType  string            `json:"entity_type"`
	EntityID    string            `json:"entity_id"`
	DeviceID    string            `json:"device_id"`
	Digest      string            `json:"digest"`
	LogicalTime int64             `json:"logical_time"`
	Deleted     bool              `json:"deleted"`
}

// Conflict представляет запись конфликта для передачи/хранения
type Conflict struct {
	DetectedAt        time.Time  `json:"detected_at"`
	ResolvedAt        *time.Time `json:"resolved_at,omitempty"`
	Local             Snapshot   `json:"local"`
	Remote            Snapshot   `json:"remote"`
	ID                string     `json:"id"`
	ConflictType      string     `json:"conflict_type"`
	EntityType        string     `json:"entity_type"`
	EntityID          string     `json:"entity_id"`
	Resolution        string     `json:"resolution,omitempty"`
	RequiresUserInput bool       `json:"requires_user_input"`
}

// Lock представляет аренду редактирования для передачи/хранения
type Lock struct {
	AcquiredAt time.Time `json:"acquired_at"`
	ExpiresAt  time.Time `json:"expires_at"`
	EntityType string    `json:"entity_type"`
	EntityID   string    `json:"entity_id"`
	DeviceID   string    `json:"device_id"`
	TTLSeconds int64     `json:"ttl_seconds"`
	Active     bool      `json:"active"`
}

// Presence представляет запись присутствия для передачи
type Presence struct {
	LastHeartbeat time.Time `json:"last_heartbeat"`
	UserID        string    `json:"user_id"`
	DisplayName   string    `json:"display_name"`
	DeviceID      string    `json:"device_id"`
	DeviceType    string    `json:"device_type"`
	Status        string    `json:"status"`
	Activity      string    `json:"activity"`
	EntityID      string    `json:"entity_id,omitempty"`
}

// FromSnapshot конвертирует внутреннюю модель снимка в wire-формат
func FromSnapshot(s *models.EntitySnapshot) Snapshot {
	return Snapshot{
		EntityType:  string(s.EntityType),
		EntityID:    s.EntityID,
		Fields:      s.Fields,
		Deleted:     s.Deleted,
		LogicalTime: s.LogicalTime,
		WallTime:    s.WallTime,
		DeviceID:    s.DeviceID,
		Digest:      s.Digest,
	}
}

// ToSnapshot конвертирует wire-формат снимка во внутреннюю модель
func (s Snapshot) ToSnapshot() *models.EntitySnapshot {
	return &models.EntitySnapshot{
		EntityType:  models.EntityType(s.EntityType),
		EntityID:    s.EntityID,
		Fields:      s.Fields,
		Deleted:     s.Deleted,
		LogicalTime: s.LogicalTime,
		WallTime:    s.WallTime,
		DeviceID:    s.DeviceID,
		Digest:      s.Digest,
	}
}

// FromConflict конвертирует внутреннюю запись конфликта в wire-формат
func FromConflict(c *models.ConflictRecord) Conflict {
	return Conflict{
		ID:                c.ID,
		ConflictType:      string(c.Type),
		EntityType:        string(c.EntityType),
		EntityID:          c.EntityID,
		Local:             FromSnapshot(c.Local),
		Remote:            FromSnapshot(c.Remote),
		DetectedAt:        c.DetectedAt,
		ResolvedAt:        c.ResolvedAt,
		Resolution:        string(c.Resolution),
		RequiresUserInput: c.RequiresUserInput,
	}
}

// ToConflict конвертирует wire-формат во внутреннюю запись конфликта
func (c Conflict) ToConflict() *models.ConflictRecord {
	return &models.ConflictRecord{
		ID:                c.ID,
		Type:              models.ConflictType(c.ConflictType),
		EntityType:        models.EntityType(c.EntityType),
		EntityID:          c.EntityID,
		Local:             c.Local.ToSnapshot(),
		Remote:            c.Remote.ToSnapshot(),
		DetectedAt:        c.DetectedAt,
		ResolvedAt:        c.ResolvedAt,
		Resolution:        models.ResolutionOutcome(c.Resolution),
		RequiresUserInput: c.RequiresUserInput,
	}
}

// FromLock конвертирует внутреннюю модель аренды в wire-формат
func FromLock(l *models.EditLock) Lock {
	return Lock{
		EntityType: string(l.EntityType),
		EntityID:   l.EntityID,
		DeviceID:   l.DeviceID,
		AcquiredAt: l.AcquiredAt,
		ExpiresAt:  l.ExpiresAt,
		TTLSeconds: int64(l.TTL / time.Second),
		Active:     l.Active,
	}
}

// ToLock конвертирует wire-формат аренды во внутреннюю модель
func (l Lock) ToLock() *models.EditLock {
	return &models.EditLock{
		EntityType: models.EntityType(l.EntityType),
		EntityID:   l.EntityID,
		DeviceID:   l.DeviceID,
		AcquiredAt: l.AcquiredAt,
		ExpiresAt:  l.ExpiresAt,
		TTL:        time.Duration(l.TTLSeconds) * time.Second,
		Active:     l.Active,
	}
}

// FromPresence конвертирует внутреннюю запись присутствия в wire-формат
func FromPresence(p *models.PresenceRecord) Presence {
	return Presence{
		UserID:        p.UserID,
		DisplayName:   p.DisplayName,
		DeviceID:      p.DeviceID,
		DeviceType:    p.DeviceType,
		Status:        string(p.Status),
		Activity:      string(p.Activity),
		EntityID:      p.EntityID,
		LastHeartbeat: p.LastHeartbeat,
	}
}

// ToPresence конвертирует wire-формат во внутреннюю запись присутствия
func (p Presence) ToPresence() *models.PresenceRecord {
	return &models.PresenceRecord{
		UserID:        p.UserID,
		DisplayName:   p.DisplayName,
		DeviceID:      p.DeviceID,
		DeviceType:    p.DeviceType,
		Status:        models.PresenceStatus(p.Status),
		Activity:      models.PresenceActivity(p.Activity),
		EntityID:      p.EntityID,
		LastHeartbeat: p.LastHeartbeat,
	}
}
