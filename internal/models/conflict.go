package models

import "time"

// ConflictType тип обнаруженного расхождения между снимками.
type ConflictType string

// Типы конфликтов в порядке убывания приоритета
const (
	ConflictTypeDeletion   ConflictType = "deletion"             // одна сторона удалила сущность, другая изменила
	ConflictTypeContent    ConflictType = "content-modification" // обе стороны изменили критичные поля
	ConflictTypeProperty   ConflictType = "property-conflict"    // расхождение в некритичных свойствах
	ConflictTypeAttachment ConflictType = "attachment-conflict"  // расхождение только в attachment/version метаданных
)

// Priority возвращает числовой приоритет конфликта.
// Большее значение означает более высокий приоритет;
// deletion всегда имеет наивысший.
func (t ConflictType) Priority() int {
	switch t {
	case ConflictTypeDeletion:
		return 4
	case ConflictTypeContent:
		return 3
	case ConflictTypeProperty:
		return 2
	case ConflictTypeAttachment:
		return 1
	default:
		return 0
	}
}

// ResolutionOutcome исход разрешения конфликта.
type ResolutionOutcome string

// Возможные исходы разрешения
const (
	ResolutionKeepLocal  ResolutionOutcome = "keep-local"   // локальный snapshot побеждает
	ResolutionKeepRemote ResolutionOutcome = "keep-remote"  // удаленный snapshot побеждает
	ResolutionKeepBoth   ResolutionOutcome = "keep-both"    // проигравший snapshot форкается в новую сущность
	ResolutionMerge      ResolutionOutcome = "merge"        // вызывающая сторона предоставила слитый snapshot
	ResolutionSkip       ResolutionOutcome = "skip-for-now" // отложено; конфликт остается открытым
)

// IsTerminal возвращает true, если исход закрывает конфликт навсегда.
// skip-for-now не является терминальным: конфликт можно пересмотреть.
func (o ResolutionOutcome) IsTerminal() bool {
	switch o {
	case ResolutionKeepLocal, ResolutionKeepRemote, ResolutionKeepBoth, ResolutionMerge:
		return true
	default:
		return false
	}
}

// Valid проверяет, что исход входит в список допустимых.
func (o ResolutionOutcome) Valid() bool {
	return o.IsTerminal() || o == ResolutionSkip
}

// ConflictRecord представляет одно обнаруженное расхождение между локальным
// и удаленным снимком одной сущности.
//
// Инвариант: после терминального разрешения запись неизменяема. Повторное
// расхождение по той же сущности порождает новую запись; пока запись открыта,
// новые удаленные снимки идемпотентно сливаются в нее вместо создания дубликата.
type ConflictRecord struct {
	DetectedAt        time.Time         `json:"detected_at"`         // DetectedAt время обнаружения конфликта
	ResolvedAt        *time.Time        `json:"resolved_at"`         // ResolvedAt время разрешения (nil = не разрешен)
	Local             *EntitySnapshot   `json:"local"`               // Local локальный снимок
	Remote            *EntitySnapshot   `json:"remote"`              // Remote удаленный снимок
	ID                string            `json:"id"`                  // ID уникальный идентификатор записи (UUID)
	Type              ConflictType      `json:"type"`                // Type классификация расхождения
	EntityType        EntityType        `json:"entity_type"`         // EntityType тип сущности
	EntityID          string            `json:"entity_id"`           // EntityID идентификатор сущности
	Resolution        ResolutionOutcome `json:"resolution"`          // Resolution исход разрешения ("" = не разрешен)
	RequiresUserInput bool              `json:"requires_user_input"` // RequiresUserInput требуется ли участие пользователя
}

// IsResolved возвращает true, если конфликт терминально разрешен.
// skip-for-now оставляет конфликт открытым.
func (c *ConflictRecord) IsResolved() bool {
	return c.Resolution.IsTerminal()
}

// IsAutoResolvable возвращает true, если конфликт подходит для
// автоматического разрешения по правилу last-write-wins:
// только property/attachment конфликты, ни один снимок не удален,
// участие пользователя не требуется.
func (c *ConflictRecord) IsAutoResolvable() bool {
	if c.IsResolved() || c.RequiresUserInput {
		return false
	}
	if c.Local.Deleted || c.Remote.Deleted {
		return false
	}
	return c.Type == ConflictTypeProperty || c.Type == ConflictTypeAttachment
}

// Clone создает глубокую копию записи конфликта
func (c *ConflictRecord) Clone() *ConflictRecord {
	clone := *c
	if c.ResolvedAt != nil {
		resolvedAt := *c.ResolvedAt
		clone.ResolvedAt = &resolvedAt
	}
	if c.Local != nil {
		clone.Local = c.Local.Clone()
	}
	if c.Remote != nil {
		clone.Remote = c.Remote.Clone()
	}
	return &clone
}
