package validation

import (
	"fmt"
	"regexp"

	"github.com/iudanet/chartsync/internal/models"
)

// EntityIDPattern определяет допустимый формат идентификатора сущности
// Латинские буквы, цифры, точка, дефис, нижнее подчеркивание (UUID и slug)
// Длина: 1-64 символа
var EntityIDPattern = regexp.MustCompile(`^[a-zA-Z0-9._-]{1,64}$`)

// DeviceIDPattern определяет допустимый формат идентификатора устройства
// Тот же алфавит, что и у сущностей; устройство обычно имеет UUID
var DeviceIDPattern = regexp.MustCompile(`^[a-zA-Z0-9._-]{1,64}$`)

// MaxEntityIDLen максимальная длина идентификатора сущности
const MaxEntityIDLen = 64

// entityTypes перечисляет допустимые типы сущностей
var entityTypes = map[models.EntityType]bool{
	models.EntityTypeSong:       true,
	models.EntityTypeBook:       true,
	models.EntityTypeSet:        true,
	models.EntityTypeAnnotation: true,
	models.EntityTypeAttachment: true,
}

// ValidateEntityType проверяет, что тип сущности известен слою
func ValidateEntityType(entityType string) error {
	if entityType == "" {
		return fmt.Errorf("entity type cannot be empty")
	}

	if !entityTypes[models.EntityType(entityType)] {
		return fmt.Errorf("unknown entity type: %s (expected song, book, set, annotation, or attachment)", entityType)
	}

	return nil
}

// ValidateEntityID проверяет, что идентификатор сущности соответствует требованиям
// Формат: латинские буквы, цифры, точка, дефис, нижнее подчеркивание
// Длина: 1-64 символа
func ValidateEntityID(entityID string) error {
	if entityID == "" {
		return fmt.Errorf("entity id cannot be empty")
	}

	if len(entityID) > MaxEntityIDLen {
		return fmt.Errorf("entity id must not exceed %d characters", MaxEntityIDLen)
	}

	if !EntityIDPattern.MatchString(entityID) {
		return fmt.Errorf("entity id can only contain letters, numbers, dots, dashes, and underscores")
	}

	return nil
}

// ValidateDeviceID проверяет, что идентификатор устройства соответствует требованиям
func ValidateDeviceID(deviceID string) error {
	if deviceID == "" {
		return fmt.Errorf("device id cannot be empty")
	}

	if !DeviceIDPattern.MatchString(deviceID) {
		return fmt.Errorf("device id can only contain letters, numbers, dots, dashes, and underscores")
	}

	return nil
}
