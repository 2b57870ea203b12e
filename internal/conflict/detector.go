// Package conflict реализует обнаружение и разрешение расхождений между
// локальными и удаленными снимками сущностей. Обнаружение идемпотентно
// и коммутативно относительно повторной и неупорядоченной доставки
// удаленных снимков; корректность не зависит от аренд и присутствия.
package conflict

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/chartsync/internal/digest"
	"github.com/iudanet/chartsync/internal/ledger"
	"github.com/iudanet/chartsync/internal/models"
)

// Detector сравнивает локальный снимок с входящим удаленным снимком
// той же сущности и классифицирует расхождение.
type Detector struct {
	ledger ledger.Ledger
	logger *slog.Logger
	now    func() time.Time
}

// NewDetector creates a new conflict detector
func NewDetector(l ledger.Ledger, logger *slog.Logger) *Detector {
	return &Detector{
		ledger: l,
		logger: logger,
		now:    time.Now,
	}
}

// Detect сравнивает два снимка одной сущности.
// Возвращает nil, если конфликта нет (равные отпечатки).
// Если по сущности уже есть открытая запись конфликта, новый удаленный
// снимок идемпотентно сливается в нее вместо создания дубликата.
func (d *Detector) Detect(ctx context.Context, local, remote *models.EntitySnapshot) (*models.ConflictRecord, error) {
	if local == nil || remote == nil {
		return nil, fmt.Errorf("%w: nil snapshot", digest.ErrCorruptSnapshot)
	}

	// Локальный снимок создается этим же слоем: отпечаток дополняем при необходимости
	if local.Digest == "" {
		if err := digest.Fill(local); err != nil {
			return nil, err
		}
	}

	// Удаленный снимок пришел извне - проверяем заявленный отпечаток.
	// Поврежденный снимок исключается из автоматического разрешения
	// и всегда уходит на ручное рассмотрение.
	corrupt := false
	if err := digest.Verify(remote); err != nil {
		if !errors.Is(err, digest.ErrCorruptSnapshot) {
			return nil, err
		}
		corrupt = true
		d.logger.Warn("Remote snapshot failed digest verification",
			"entity_type", remote.EntityType,
			"entity_id", remote.EntityID,
			"error", err)
	}

	// Шаг 1: равные отпечатки - реального конфликта нет
	// (например, повторный resync с другой меткой времени)
	if !corrupt && digest.Equal(local, remote) {
		return nil, nil
	}

	conflictType, requiresUserInput := classify(local, remote)
	if corrupt {
		requiresUserInput = true
	}

	// Идемпотентность: сливаем в открытую запись, если она есть
	open, err := d.ledger.OpenByEntity(ctx, local.EntityType, local.EntityID)
	if err != nil && !errors.Is(err, ledger.ErrConflictNotFound) {
		return nil, fmt.Errorf("failed to look up open conflict: %w", err)
	}

	if open != nil {
		return d.mergeIntoOpen(ctx, open, local, remote, corrupt)
	}

	record := &models.ConflictRecord{
		ID:                uuid.New().String(),
		Type:              conflictType,
		EntityType:        local.EntityType,
		EntityID:          local.EntityID,
		Local:             local.Clone(),
		Remote:            remote.Clone(),
		DetectedAt:        d.now(),
		RequiresUserInput: requiresUserInput,
	}

	if err := d.ledger.Append(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to append conflict: %w", err)
	}

	d.logger.Info("Conflict detected",
		"conflict_id", record.ID,
		"type", record.Type,
		"entity_type", record.EntityType,
		"entity_id", record.EntityID,
		"requires_user_input", record.RequiresUserInput)

	return record, nil
}

// mergeIntoOpen сливает новую пару снимков в открытую запись конфликта.
// Слияние детерминировано (LWW по каждой стороне), поэтому повторная
// и неупорядоченная доставка удаленных снимков сходится к одному состоянию.
func (d *Detector) mergeIntoOpen(ctx context.Context, open *models.ConflictRecord, local, remote *models.EntitySnapshot, corrupt bool) (*models.ConflictRecord, error) {
	merged := open.Clone()
	changed := false

	if remote.IsNewerThan(merged.Remote) {
		merged.Remote = remote.Clone()
		changed = true
	}
	if local.IsNewerThan(merged.Local) {
		merged.Local = local.Clone()
		changed = true
	}

	if !changed {
		// Повторная доставка уже учтенного снимка - состояние не меняется
		return open, nil
	}

	// Переклассифицируем по слитой паре
	if !digest.Equal(merged.Local, merged.Remote) {
		merged.Type, merged.RequiresUserInput = classify(merged.Local, merged.Remote)
	}
	if corrupt {
		merged.RequiresUserInput = true
	}

	if err := d.ledger.Update(ctx, merged); err != nil {
		return nil, fmt.Errorf("failed to merge conflict: %w", err)
	}

	d.logger.Debug("Merged remote snapshot into open conflict",
		"conflict_id", merged.ID,
		"type", merged.Type)

	return merged, nil
}

// classify определяет тип конфликта и необходимость участия пользователя.
// Порядок проверок соответствует приоритету типов:
// 1. Расхождение флага удаления - deletion (наивысший приоритет, всегда вручную)
// 2. Расхождение критичных полей - content-modification (всегда вручную)
// 3. Расхождение только в attachment/version метаданных - attachment-conflict
// 4. Иначе property-conflict; вручную только если затронуты критичные свойства
func classify(local, remote *models.EntitySnapshot) (models.ConflictType, bool) {
	if local.Deleted != remote.Deleted {
		return models.ConflictTypeDeletion, true
	}

	diverged := local.DivergentFields(remote)

	metadataOnly := len(diverged) > 0
	for _, field := range diverged {
		if models.IsCriticalField(local.EntityType, field) {
			return models.ConflictTypeContent, true
		}
		if !models.IsMetadataField(field) {
			metadataOnly = false
		}
	}

	if metadataOnly {
		return models.ConflictTypeAttachment, false
	}

	for _, field := range diverged {
		if models.IsCriticalProperty(field) {
			return models.ConflictTypeProperty, true
		}
	}

	return models.ConflictTypeProperty, false
}
