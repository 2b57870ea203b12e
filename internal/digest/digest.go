// Package digest вычисляет стабильный контентный отпечаток снимка сущности.
// Отпечаток детерминирован между устройствами, платформами и перезапусками
// процесса: используется SHA-256 поверх канонической кодировки сравниваемых
// полей, а не runtime-хеш языка. Отпечаток меняется тогда и только тогда,
// когда меняется сравниваемое поле.
package digest

import (
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"hash"
	"sort"

	"github.com/iudanet/chartsync/internal/models"
)

// ErrCorruptSnapshot indicates that snapshot cannot be digested or parsed.
// Такой снимок исключается из автоматического разрешения конфликтов
// и всегда требует участия пользователя.
var ErrCorruptSnapshot = errors.New("corrupt snapshot")

// Compute вычисляет отпечаток снимка.
// Каноническая кодировка: тип и идентификатор сущности, флаг удаления,
// затем поля в отсортированном по имени порядке, каждое значение
// с length-prefix, чтобы границы полей были однозначны.
func Compute(snapshot *models.EntitySnapshot) (string, error) {
	if snapshot == nil {
		return "", fmt.Errorf("%w: snapshot is nil", ErrCorruptSnapshot)
	}
	if snapshot.EntityType == "" || snapshot.EntityID == "" {
		return "", fmt.Errorf("%w: missing entity type or id", ErrCorruptSnapshot)
	}
	if snapshot.Fields == nil {
		return "", fmt.Errorf("%w: missing field map", ErrCorruptSnapshot)
	}

	h := sha256.New()

	writeString(h, string(snapshot.EntityType))
	writeString(h, snapshot.EntityID)
	if snapshot.Deleted {
		h.Write([]byte{1})
	} else {
		h.Write([]byte{0})
	}

	// Сортируем имена полей для детерминизма
	names := make([]string, 0, len(snapshot.Fields))
	for name := range snapshot.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		writeString(h, name)
		writeString(h, snapshot.Fields[name])
	}

	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

// Fill вычисляет отпечаток и записывает его в снимок.
func Fill(snapshot *models.EntitySnapshot) error {
	d, err := Compute(snapshot)
	if err != nil {
		return err
	}
	snapshot.Digest = d
	return nil
}

// Verify проверяет, что заявленный в снимке отпечаток соответствует его
// содержимому. Возвращает ErrCorruptSnapshot при расхождении: такой снимок
// нельзя сравнивать и разрешать автоматически.
func Verify(snapshot *models.EntitySnapshot) error {
	computed, err := Compute(snapshot)
	if err != nil {
		return err
	}
	if snapshot.Digest == "" {
		return fmt.Errorf("%w: snapshot has no digest", ErrCorruptSnapshot)
	}
	if computed != snapshot.Digest {
		return fmt.Errorf("%w: digest mismatch", ErrCorruptSnapshot)
	}
	return nil
}

// Equal сообщает, совпадает ли содержимое двух снимков по отпечатку.
// Равные отпечатки при различающихся метках времени означают отсутствие
// реального конфликта (например, повторный resync).
func Equal(a, b *models.EntitySnapshot) bool {
	return a != nil && b != nil && a.Digest != "" && a.Digest == b.Digest
}

// writeString записывает строку с 4-байтным length-prefix (big-endian)
func writeString(h hash.Hash, s string) {
	var length [4]byte
	binary.BigEndian.PutUint32(length[:], uint32(len(s)))
	h.Write(length[:])
	h.Write([]byte(s))
}
