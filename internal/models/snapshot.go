package models

import (
	"sort"
	"strings"
	"time"
)

// EntityType тип логической сущности, участвующей в синхронизации.
type EntityType string

// Типы сущностей библиотеки аккордов
const (
	EntityTypeSong       EntityType = "song"
	EntityTypeBook       EntityType = "book"
	EntityTypeSet        EntityType = "set"
	EntityTypeAnnotation EntityType = "annotation"
	EntityTypeAttachment EntityType = "attachment"
)

// OriginEntityField имя поля со ссылкой на исходную сущность.
// Заполняется при разрешении конфликта стратегией keep-both:
// проигравший snapshot материализуется как новая сущность
// с обратной ссылкой на оригинал.
const OriginEntityField = "origin_entity_id"

// Префиксы полей attachment/version метаданных.
// Расхождение только в таких полях классифицируется как attachment-conflict.
const (
	attachmentFieldPrefix = "attachment."
	versionFieldPrefix    = "version."
)

// criticalFields определяет для каждого типа сущности поля,
// расхождение в которых всегда требует участия пользователя
// (content-modification).
var criticalFields = map[EntityType]map[string]bool{
	EntityTypeSong:       {"title": true, "body": true, "key": true},
	EntityTypeBook:       {"title": true, "items": true},
	EntityTypeSet:        {"title": true, "items": true},
	EntityTypeAnnotation: {"body": true},
	EntityTypeAttachment: {},
}

// criticalProperties список некритичных свойств, пересечение с которыми
// переводит property-conflict в режим ручного разрешения.
var criticalProperties = map[string]bool{
	"capo":   true,
	"tempo":  true,
	"tuning": true,
}

// EntitySnapshot представляет версионированный снимок одной логической
// сущности (песня, сборник, сет, аннотация, вложение).
// Снимок неизменяем: каждая мутация сущности порождает новый snapshot,
// существующий никогда не редактируется на месте.
type EntitySnapshot struct {
	WallTime    time.Time         `json:"wall_time"`    // WallTime физическое время последнего изменения (информационно)
	Fields      map[string]string `json:"fields"`       // Fields поля, участвующие в сравнении конфликтов
	EntityType  EntityType        `json:"entity_type"`  // EntityType тип сущности
	EntityID    string            `json:"entity_id"`    // EntityID уникальный идентификатор сущности (UUID)
	DeviceID    string            `json:"device_id"`    // DeviceID идентификатор устройства, создавшего эту версию
	Digest      string            `json:"digest"`       // Digest стабильный SHA-256 отпечаток сравниваемых полей (hex)
	LogicalTime int64             `json:"logical_time"` // LogicalTime гибридная логическая метка времени для упорядочивания
	Deleted     bool              `json:"deleted"`      // Deleted флаг soft delete (true = сущность удалена)
}

// IsNewerThan сравнивает два снимка и определяет, какой из них новее.
// Согласно алгоритму LWW (Last-Write-Wins):
// 1. Сначала сравнивается LogicalTime (больший выигрывает)
// 2. При равных LogicalTime сравнивается DeviceID (лексикографически)
// Возвращает true, если текущий снимок новее, чем other.
func (s *EntitySnapshot) IsNewerThan(other *EntitySnapshot) bool {
	if s.LogicalTime > other.LogicalTime {
		return true
	}
	if s.LogicalTime < other.LogicalTime {
		return false
	}
	// LogicalTime равны - сравниваем DeviceID для детерминизма
	return s.DeviceID > other.DeviceID
}

// Clone создает глубокую копию снимка
func (s *EntitySnapshot) Clone() *EntitySnapshot {
	fields := make(map[string]string, len(s.Fields))
	for k, v := range s.Fields {
		fields[k] = v
	}

	return &EntitySnapshot{
		EntityType:  s.EntityType,
		EntityID:    s.EntityID,
		Fields:      fields,
		Deleted:     s.Deleted,
		LogicalTime: s.LogicalTime,
		WallTime:    s.WallTime,
		DeviceID:    s.DeviceID,
		Digest:      s.Digest,
	}
}

// DivergentFields возвращает отсортированный список полей, значения которых
// различаются между двумя снимками одной сущности.
// Учитываются поля, присутствующие хотя бы в одном из снимков.
func (s *EntitySnapshot) DivergentFields(other *EntitySnapshot) []string {
	seen := make(map[string]bool, len(s.Fields))
	var diverged []string

	for name, value := range s.Fields {
		seen[name] = true
		if otherValue, ok := other.Fields[name]; !ok || otherValue != value {
			diverged = append(diverged, name)
		}
	}

	for name := range other.Fields {
		if !seen[name] {
			diverged = append(diverged, name)
		}
	}

	sort.Strings(diverged)
	return diverged
}

// IsCriticalField проверяет, является ли поле критичным для данного типа
// сущности (заголовок, тело и равнозначные структурные поля).
func IsCriticalField(entityType EntityType, field string) bool {
	return criticalFields[entityType][field]
}

// IsCriticalProperty проверяет, входит ли некритичное свойство в список
// свойств, требующих ручного разрешения при пересечении изменений.
func IsCriticalProperty(field string) bool {
	return criticalProperties[field]
}

// IsMetadataField проверяет, относится ли поле к attachment/version
// метаданным.
func IsMetadataField(field string) bool {
	return strings.HasPrefix(field, attachmentFieldPrefix) || strings.HasPrefix(field, versionFieldPrefix)
}
