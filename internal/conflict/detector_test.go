package conflict

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/chartsync/internal/digest"
	"github.com/iudanet/chartsync/internal/ledger"
	"github.com/iudanet/chartsync/internal/models"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newMemoryLedger собирает LedgerMock поверх карты в памяти,
// воспроизводя семантику журнала конфликтов
func newMemoryLedger() *ledger.LedgerMock {
	var mu sync.Mutex
	records := make(map[string]*models.ConflictRecord)
	var order []string

	isOpen := func(r *models.ConflictRecord) bool {
		return r.Resolution == "" || r.Resolution == models.ResolutionSkip
	}

	return &ledger.LedgerMock{
		AppendFunc: func(ctx context.Context, record *models.ConflictRecord) error {
			mu.Lock()
			defer mu.Unlock()
			records[record.ID] = record.Clone()
			order = append(order, record.ID)
			return nil
		},
		UpdateFunc: func(ctx context.Context, record *models.ConflictRecord) error {
			mu.Lock()
			defer mu.Unlock()
			existing, ok := records[record.ID]
			if !ok {
				return ledger.ErrConflictNotFound
			}
			if existing.IsResolved() {
				return ledger.ErrConflictResolved
			}
			records[record.ID] = record.Clone()
			return nil
		},
		GetFunc: func(ctx context.Context, id string) (*models.ConflictRecord, error) {
			mu.Lock()
			defer mu.Unlock()
			record, ok := records[id]
			if !ok {
				return nil, ledger.ErrConflictNotFound
			}
			return record.Clone(), nil
		},
		OpenByEntityFunc: func(ctx context.Context, entityType models.EntityType, entityID string) (*models.ConflictRecord, error) {
			mu.Lock()
			defer mu.Unlock()
			for i := len(order) - 1; i >= 0; i-- {
				record := records[order[i]]
				if record.EntityType == entityType && record.EntityID == entityID && isOpen(record) {
					return record.Clone(), nil
				}
			}
			return nil, ledger.ErrConflictNotFound
		},
		RecordResolutionFunc: func(ctx context.Context, id string, outcome models.ResolutionOutcome, resolvedAt time.Time) error {
			mu.Lock()
			defer mu.Unlock()
			record, ok := records[id]
			if !ok {
				return ledger.ErrConflictNotFound
			}
			if record.IsResolved() {
				return ledger.ErrConflictResolved
			}
			record.Resolution = outcome
			if outcome.IsTerminal() {
				record.ResolvedAt = &resolvedAt
			}
			return nil
		},
		ListPendingFunc: func(ctx context.Context) ([]*models.ConflictRecord, error) {
			mu.Lock()
			defer mu.Unlock()
			var pending []*models.ConflictRecord
			for _, id := range order {
				if record := records[id]; isOpen(record) {
					pending = append(pending, record.Clone())
				}
			}
			return pending, nil
		},
		ListByEntityFunc: func(ctx context.Context, entityType models.EntityType, entityID string) ([]*models.ConflictRecord, error) {
			mu.Lock()
			defer mu.Unlock()
			var result []*models.ConflictRecord
			for _, id := range order {
				record := records[id]
				if record.EntityType == entityType && record.EntityID == entityID {
					result = append(result, record.Clone())
				}
			}
			return result, nil
		},
		AutoResolvableCountFunc: func(ctx context.Context) (int, error) {
			mu.Lock()
			defer mu.Unlock()
			count := 0
			for _, record := range records {
				if isOpen(record) && record.IsAutoResolvable() {
					count++
				}
			}
			return count, nil
		},
		CloseFunc: func() error { return nil },
	}
}

// newSongSnapshot создает снимок песни с заполненным отпечатком
func newSongSnapshot(t *testing.T, logicalTime int64, deviceID string, overrides map[string]string) *models.EntitySnapshot {
	t.Helper()

	fields := map[string]string{
		"title": "Wonderwall",
		"body":  "[Em7]Today is [G]gonna be the day",
		"key":   "F#m",
		"capo":  "2",
	}
	for k, v := range overrides {
		fields[k] = v
	}

	snapshot := &models.EntitySnapshot{
		EntityType:  models.EntityTypeSong,
		EntityID:    "song-1",
		Fields:      fields,
		LogicalTime: logicalTime,
		WallTime:    time.UnixMilli(1756200000000),
		DeviceID:    deviceID,
	}
	require.NoError(t, digest.Fill(snapshot))
	return snapshot
}

func TestDetector_Detect_NoConflictOnEqualDigests(t *testing.T) {
	detector := NewDetector(newMemoryLedger(), testLogger())
	ctx := context.Background()

	local := newSongSnapshot(t, 10, "device-a", nil)
	remote := newSongSnapshot(t, 25, "device-b", nil)

	// Содержимое идентично, различаются только метки - это повторный
	// resync, а не конфликт
	record, err := detector.Detect(ctx, local, remote)
	require.NoError(t, err)
	assert.Nil(t, record)
}

func TestDetector_Detect_ContentModification(t *testing.T) {
	l := newMemoryLedger()
	detector := NewDetector(l, testLogger())
	ctx := context.Background()

	// Два устройства по-разному изменили название одной песни
	local := newSongSnapshot(t, 10, "device-a", map[string]string{"title": "Wonderwall (acoustic)"})
	remote := newSongSnapshot(t, 12, "device-b", map[string]string{"title": "Wonderwall (live)"})

	record, err := detector.Detect(ctx, local, remote)
	require.NoError(t, err)
	require.NotNil(t, record)

	assert.Equal(t, models.ConflictTypeContent, record.Type)
	assert.True(t, record.RequiresUserInput, "Content conflicts always need the user")
	assert.False(t, record.IsResolved())
	assert.Equal(t, models.EntityTypeSong, record.EntityType)
	assert.Equal(t, "song-1", record.EntityID)
	assert.Len(t, l.AppendCalls(), 1)
}

func TestDetector_Detect_DeletionConflict(t *testing.T) {
	detector := NewDetector(newMemoryLedger(), testLogger())
	ctx := context.Background()

	// Одна сторона удалила песню, другая изменила текст
	local := newSongSnapshot(t, 10, "device-a", nil)
	local.Deleted = true
	require.NoError(t, digest.Fill(local))

	remote := newSongSnapshot(t, 12, "device-b", map[string]string{"body": "[Em7]Today is the day"})

	record, err := detector.Detect(ctx, local, remote)
	require.NoError(t, err)
	require.NotNil(t, record)

	assert.Equal(t, models.ConflictTypeDeletion, record.Type)
	assert.True(t, record.RequiresUserInput, "Deletion conflicts always need the user")
	assert.False(t, record.IsAutoResolvable())
}

func TestDetector_Detect_PropertyConflict(t *testing.T) {
	tests := []struct {
		localFields       map[string]string
		remoteFields      map[string]string
		name              string
		requiresUserInput bool
	}{
		{
			name:              "non-critical properties auto-resolve",
			localFields:       map[string]string{"tags": "rock"},
			remoteFields:      map[string]string{"notes": "play softly"},
			requiresUserInput: false,
		},
		{
			name:              "critical property needs the user",
			localFields:       map[string]string{"capo": "4"},
			remoteFields:      map[string]string{"capo": "5"},
			requiresUserInput: true,
		},
		{
			name:              "tempo is a critical property",
			localFields:       map[string]string{"tempo": "87"},
			remoteFields:      map[string]string{"tempo": "92"},
			requiresUserInput: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			detector := NewDetector(newMemoryLedger(), testLogger())

			local := newSongSnapshot(t, 10, "device-a", tt.localFields)
			remote := newSongSnapshot(t, 12, "device-b", tt.remoteFields)

			record, err := detector.Detect(context.Background(), local, remote)
			require.NoError(t, err)
			require.NotNil(t, record)

			assert.Equal(t, models.ConflictTypeProperty, record.Type)
			assert.Equal(t, tt.requiresUserInput, record.RequiresUserInput)
		})
	}
}

func TestDetector_Detect_AttachmentConflict(t *testing.T) {
	detector := NewDetector(newMemoryLedger(), testLogger())

	// Расходятся только attachment/version метаданные
	local := newSongSnapshot(t, 10, "device-a", map[string]string{"attachment.pdf.checksum": "aaa"})
	remote := newSongSnapshot(t, 12, "device-b", map[string]string{"attachment.pdf.checksum": "bbb", "version.label": "v2"})

	record, err := detector.Detect(context.Background(), local, remote)
	require.NoError(t, err)
	require.NotNil(t, record)

	assert.Equal(t, models.ConflictTypeAttachment, record.Type)
	assert.False(t, record.RequiresUserInput)
	assert.True(t, record.IsAutoResolvable())
}

func TestDetector_Detect_CorruptRemoteNeedsUser(t *testing.T) {
	detector := NewDetector(newMemoryLedger(), testLogger())

	local := newSongSnapshot(t, 10, "device-a", map[string]string{"tags": "rock"})
	remote := newSongSnapshot(t, 12, "device-b", map[string]string{"tags": "indie"})

	// Подменяем содержимое после вычисления отпечатка
	remote.Fields["tags"] = "tampered"

	record, err := detector.Detect(context.Background(), local, remote)
	require.NoError(t, err)
	require.NotNil(t, record)

	// Поврежденный снимок исключается из автоматического разрешения
	assert.True(t, record.RequiresUserInput)
	assert.False(t, record.IsAutoResolvable())
}

func TestDetector_Detect_IdempotentRedelivery(t *testing.T) {
	l := newMemoryLedger()
	detector := NewDetector(l, testLogger())
	ctx := context.Background()

	local := newSongSnapshot(t, 10, "device-a", map[string]string{"title": "Version A"})
	remote := newSongSnapshot(t, 12, "device-b", map[string]string{"title": "Version B"})

	first, err := detector.Detect(ctx, local, remote)
	require.NoError(t, err)
	require.NotNil(t, first)

	// Повторная доставка того же снимка не создает вторую запись
	second, err := detector.Detect(ctx, local, remote)
	require.NoError(t, err)
	require.NotNil(t, second)

	assert.Equal(t, first.ID, second.ID, "Redelivery must merge into the open record")
	assert.Len(t, l.AppendCalls(), 1, "Only one record should ever be appended")
}

func TestDetector_Detect_MergesNewerRemoteIntoOpen(t *testing.T) {
	l := newMemoryLedger()
	detector := NewDetector(l, testLogger())
	ctx := context.Background()

	local := newSongSnapshot(t, 10, "device-a", map[string]string{"title": "Version A"})
	remoteOld := newSongSnapshot(t, 12, "device-b", map[string]string{"title": "Version B"})
	remoteNew := newSongSnapshot(t, 15, "device-b", map[string]string{"title": "Version C"})

	first, err := detector.Detect(ctx, local, remoteOld)
	require.NoError(t, err)

	merged, err := detector.Detect(ctx, local, remoteNew)
	require.NoError(t, err)

	assert.Equal(t, first.ID, merged.ID)
	assert.Equal(t, "Version C", merged.Remote.Fields["title"], "Newer remote side should replace the stored one")
	assert.Equal(t, int64(15), merged.Remote.LogicalTime)
}

func TestDetector_Detect_OutOfOrderDeliveryConverges(t *testing.T) {
	// Коммутативность: порядок доставки удаленных снимков не влияет
	// на итоговое состояние записи конфликта
	local := newSongSnapshot(t, 10, "device-a", map[string]string{"title": "Version A"})
	older := newSongSnapshot(t, 12, "device-b", map[string]string{"title": "Version B"})
	newer := newSongSnapshot(t, 15, "device-b", map[string]string{"title": "Version C"})

	ctx := context.Background()

	detectorA := NewDetector(newMemoryLedger(), testLogger())
	_, err := detectorA.Detect(ctx, local, older)
	require.NoError(t, err)
	inOrder, err := detectorA.Detect(ctx, local, newer)
	require.NoError(t, err)

	detectorB := NewDetector(newMemoryLedger(), testLogger())
	_, err = detectorB.Detect(ctx, local, newer)
	require.NoError(t, err)
	outOfOrder, err := detectorB.Detect(ctx, local, older)
	require.NoError(t, err)

	assert.Equal(t, inOrder.Remote.Digest, outOfOrder.Remote.Digest)
	assert.Equal(t, inOrder.Remote.LogicalTime, outOfOrder.Remote.LogicalTime)
	assert.Equal(t, inOrder.Type, outOfOrder.Type)
}

func TestDetector_Detect_NilSnapshots(t *testing.T) {
	detector := NewDetector(newMemoryLedger(), testLogger())

	local := newSongSnapshot(t, 10, "device-a", nil)

	_, err := detector.Detect(context.Background(), nil, local)
	assert.ErrorIs(t, err, digest.ErrCorruptSnapshot)

	_, err = detector.Detect(context.Background(), local, nil)
	assert.ErrorIs(t, err, digest.ErrCorruptSnapshot)
}

func TestDetector_Detect_FillsLocalDigest(t *testing.T) {
	detector := NewDetector(newMemoryLedger(), testLogger())

	local := newSongSnapshot(t, 10, "device-a", nil)
	local.Digest = ""
	remote := newSongSnapshot(t, 12, "device-b", nil)

	record, err := detector.Detect(context.Background(), local, remote)
	require.NoError(t, err)

	assert.Nil(t, record, "Equal content should short-circuit after the digest is filled")
	assert.NotEmpty(t, local.Digest)
}
