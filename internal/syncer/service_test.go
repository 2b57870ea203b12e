package syncer

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/chartsync/internal/conflict"
	"github.com/iudanet/chartsync/internal/digest"
	"github.com/iudanet/chartsync/internal/hlc"
	"github.com/iudanet/chartsync/internal/ledger/sqlite"
	"github.com/iudanet/chartsync/internal/lock"
	"github.com/iudanet/chartsync/internal/models"
	"github.com/iudanet/chartsync/internal/presence"
	"github.com/iudanet/chartsync/internal/remote"
	"github.com/iudanet/chartsync/internal/storage/boltdb"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// testEnv собирает сервис синхронизации поверх реальных локальных хранилищ
// и mock удаленного хранилища
type testEnv struct {
	service Service
	remote  *remote.StoreMock
	local   *boltdb.Storage
	ledger  *sqlite.Ledger
	locks   *lock.Manager
	clock   *hlc.Clock
}

func setupEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()
	logger := testLogger()

	local, err := boltdb.New(ctx, filepath.Join(t.TempDir(), "sync-test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { local.Close() })

	conflictLedger, err := sqlite.New(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { conflictLedger.Close() })

	clock := hlc.NewWithDeviceID("device-local")

	detector := conflict.NewDetector(conflictLedger, logger)
	resolver := conflict.NewResolver(conflictLedger, local, clock, logger)
	conflicts := conflict.NewService(detector, resolver, conflictLedger, logger)

	locks := lock.NewManager(local, nil, logger)

	// Пустые заглушки по умолчанию: pull ничего не возвращает
	remoteStore := &remote.StoreMock{
		PullChangesFunc: func(ctx context.Context, since int64) ([]*models.EntitySnapshot, error) {
			return nil, nil
		},
		PullLocksFunc: func(ctx context.Context) ([]*models.EditLock, error) {
			return nil, nil
		},
		PushResolutionFunc: func(ctx context.Context, record *models.ConflictRecord) error {
			return nil
		},
		PushLockFunc: func(ctx context.Context, l *models.EditLock) error {
			return nil
		},
	}

	svc := NewService(remoteStore, local, local, conflicts, conflictLedger, locks, clock, logger)
	// Ускоряем backoff репликации, чтобы тесты отказов не ждали реальных пауз
	svc.(*service).backoffBase = time.Millisecond

	return &testEnv{
		service: svc,
		remote:  remoteStore,
		local:   local,
		ledger:  conflictLedger,
		locks:   locks,
		clock:   clock,
	}
}

func newSnapshot(t *testing.T, entityID string, logicalTime int64, deviceID string, fields map[string]string) *models.EntitySnapshot {
	t.Helper()

	snapshot := &models.EntitySnapshot{
		EntityType:  models.EntityTypeSong,
		EntityID:    entityID,
		Fields:      fields,
		LogicalTime: logicalTime,
		WallTime:    time.UnixMilli(1756200000000).UTC(),
		DeviceID:    deviceID,
	}
	require.NoError(t, digest.Fill(snapshot))
	return snapshot
}

func TestService_Sync_AdoptsUnknownEntities(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	incoming := newSnapshot(t, "song-1", 100, "device-remote", map[string]string{"title": "Blackbird"})
	env.remote.PullChangesFunc = func(ctx context.Context, since int64) ([]*models.EntitySnapshot, error) {
		return []*models.EntitySnapshot{incoming}, nil
	}

	result, err := env.service.Sync(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, result.PulledSnapshots)
	assert.Equal(t, 1, result.CleanApplied)
	assert.Equal(t, 0, result.Conflicts)

	// Неизвестная сущность принята локально
	saved, err := env.local.GetSnapshot(ctx, models.EntityTypeSong, "song-1")
	require.NoError(t, err)
	assert.Equal(t, "Blackbird", saved.Fields["title"])

	// Часы продвинуты мимо удаленной метки, метка синхронизации сохранена
	assert.Greater(t, env.clock.Current(), int64(100))
	lastSync, err := env.local.GetLastSyncTimestamp(ctx)
	require.NoError(t, err)
	assert.Positive(t, lastSync)
}

func TestService_Sync_SkipsCorruptUnknownSnapshot(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	incoming := newSnapshot(t, "song-1", 100, "device-remote", map[string]string{"title": "Blackbird"})
	incoming.Fields["title"] = "tampered"
	env.remote.PullChangesFunc = func(ctx context.Context, since int64) ([]*models.EntitySnapshot, error) {
		return []*models.EntitySnapshot{incoming}, nil
	}

	result, err := env.service.Sync(ctx)
	require.NoError(t, err)

	assert.Equal(t, 0, result.CleanApplied)
	_, err = env.local.GetSnapshot(ctx, models.EntityTypeSong, "song-1")
	assert.Error(t, err, "Corrupt snapshot must not be adopted")
}

func TestService_Sync_NoConflictOnEqualContent(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	existing := newSnapshot(t, "song-1", 50, "device-local", map[string]string{"title": "Blackbird"})
	require.NoError(t, env.local.SaveSnapshot(ctx, existing))

	// То же содержимое с большей меткой - обновляются только метаданные версии
	incoming := newSnapshot(t, "song-1", 100, "device-remote", map[string]string{"title": "Blackbird"})
	env.remote.PullChangesFunc = func(ctx context.Context, since int64) ([]*models.EntitySnapshot, error) {
		return []*models.EntitySnapshot{incoming}, nil
	}

	result, err := env.service.Sync(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, result.CleanApplied)
	assert.Equal(t, 0, result.Conflicts)

	saved, err := env.local.GetSnapshot(ctx, models.EntityTypeSong, "song-1")
	require.NoError(t, err)
	assert.Equal(t, int64(100), saved.LogicalTime)
}

func TestService_Sync_AutoResolvesAndPushes(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	// Расхождение в некритичных свойствах - разрешается по LWW
	local := newSnapshot(t, "song-1", 50, "device-local", map[string]string{"title": "Blackbird", "tags": "rock"})
	require.NoError(t, env.local.SaveSnapshot(ctx, local))

	incoming := newSnapshot(t, "song-1", 100, "device-remote", map[string]string{"title": "Blackbird", "tags": "indie"})
	env.remote.PullChangesFunc = func(ctx context.Context, since int64) ([]*models.EntitySnapshot, error) {
		return []*models.EntitySnapshot{incoming}, nil
	}

	result, err := env.service.Sync(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Conflicts)
	assert.Equal(t, 1, result.AutoResolved)
	assert.Equal(t, 0, result.PendingUser)

	// Победил удаленный снимок (большая метка)
	saved, err := env.local.GetSnapshot(ctx, models.EntityTypeSong, "song-1")
	require.NoError(t, err)
	assert.Equal(t, "indie", saved.Fields["tags"])

	// Разрешение реплицировано
	calls := env.remote.PushResolutionCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, models.ResolutionKeepRemote, calls[0].Record.Resolution)
}

func TestService_Sync_PushFailureKeepsLocalResolution(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	local := newSnapshot(t, "song-1", 50, "device-local", map[string]string{"title": "Blackbird", "tags": "rock"})
	require.NoError(t, env.local.SaveSnapshot(ctx, local))

	incoming := newSnapshot(t, "song-1", 100, "device-remote", map[string]string{"title": "Blackbird", "tags": "indie"})
	env.remote.PullChangesFunc = func(ctx context.Context, since int64) ([]*models.EntitySnapshot, error) {
		return []*models.EntitySnapshot{incoming}, nil
	}
	env.remote.PushResolutionFunc = func(ctx context.Context, record *models.ConflictRecord) error {
		return errors.New("network unreachable")
	}

	// Неудачная репликация не срывает синхронизацию (local-first)
	result, err := env.service.Sync(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.AutoResolved)

	// Локальное разрешение зафиксировано несмотря на провал push
	saved, err := env.local.GetSnapshot(ctx, models.EntityTypeSong, "song-1")
	require.NoError(t, err)
	assert.Equal(t, "indie", saved.Fields["tags"])

	// Push повторялся с backoff
	assert.Greater(t, len(env.remote.PushResolutionCalls()), 1)
}

func TestService_Sync_ContentConflictStaysPending(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	local := newSnapshot(t, "song-1", 50, "device-local", map[string]string{"title": "Version A"})
	require.NoError(t, env.local.SaveSnapshot(ctx, local))

	incoming := newSnapshot(t, "song-1", 100, "device-remote", map[string]string{"title": "Version B"})
	env.remote.PullChangesFunc = func(ctx context.Context, since int64) ([]*models.EntitySnapshot, error) {
		return []*models.EntitySnapshot{incoming}, nil
	}

	result, err := env.service.Sync(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Conflicts)
	assert.Equal(t, 0, result.AutoResolved)
	assert.Equal(t, 1, result.PendingUser)
	assert.Empty(t, env.remote.PushResolutionCalls(), "Pending conflicts are not replicated as resolutions")

	// Локальный снимок не тронут до решения пользователя
	saved, err := env.local.GetSnapshot(ctx, models.EntityTypeSong, "song-1")
	require.NoError(t, err)
	assert.Equal(t, "Version A", saved.Fields["title"])
}

func TestService_Sync_ManualResync(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	// Открытый конфликт ссылается на локальный снимок,
	// которого больше нет (хранилище очищено)
	local := newSnapshot(t, "song-1", 50, "device-local", map[string]string{"title": "Version A"})
	incoming := newSnapshot(t, "song-1", 100, "device-remote", map[string]string{"title": "Version B"})

	record := &models.ConflictRecord{
		ID:                "conflict-1",
		Type:              models.ConflictTypeContent,
		EntityType:        models.EntityTypeSong,
		EntityID:          "song-1",
		Local:             local,
		Remote:            incoming,
		RequiresUserInput: true,
		DetectedAt:        time.Now(),
	}
	require.NoError(t, env.ledger.Append(ctx, record))

	env.remote.PullChangesFunc = func(ctx context.Context, since int64) ([]*models.EntitySnapshot, error) {
		return []*models.EntitySnapshot{incoming}, nil
	}

	result, err := env.service.Sync(ctx)
	require.NoError(t, err)

	// Сущность помечена для ручного resync, состояние не угадывается
	assert.Equal(t, []string{"song/song-1"}, result.ManualResync)
	assert.Equal(t, 0, result.CleanApplied)

	_, err = env.local.GetSnapshot(ctx, models.EntityTypeSong, "song-1")
	assert.Error(t, err, "Nothing may be adopted for a manual-resync entity")
}

func TestService_Sync_ExchangesLocks(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	// Локальная активная аренда
	_, err := env.locks.TryAcquire(ctx, models.EntityTypeSong, "song-1", "device-local", 5*time.Minute)
	require.NoError(t, err)

	// Удаленная аренда на другую сущность
	now := time.Now()
	remoteLock := &models.EditLock{
		EntityType: models.EntityTypeSet,
		EntityID:   "set-1",
		DeviceID:   "device-remote",
		AcquiredAt: now,
		ExpiresAt:  now.Add(5 * time.Minute),
		TTL:        5 * time.Minute,
		Active:     true,
	}
	env.remote.PullLocksFunc = func(ctx context.Context) ([]*models.EditLock, error) {
		return []*models.EditLock{remoteLock}, nil
	}

	result, err := env.service.Sync(ctx)
	require.NoError(t, err)

	// Удаленная аренда принята
	holder, found := env.locks.CurrentHolder(models.EntityTypeSet, "set-1")
	assert.True(t, found)
	assert.Equal(t, "device-remote", holder)

	// Локальные активные аренды реплицированы (включая принятую удаленную)
	assert.Equal(t, 2, result.PushedLocks)
	assert.Len(t, env.remote.PushLockCalls(), 2)
}

func TestService_Sync_PullFailure(t *testing.T) {
	env := setupEnv(t)

	env.remote.PullChangesFunc = func(ctx context.Context, since int64) ([]*models.EntitySnapshot, error) {
		return nil, errors.New("server unavailable")
	}

	_, err := env.service.Sync(context.Background())
	require.Error(t, err)
}

func TestService_PendingChangesCount(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	count, err := env.service.PendingChangesCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	require.NoError(t, env.local.SaveSnapshot(ctx, newSnapshot(t, "song-1", 10, "device-local", map[string]string{"title": "A"})))
	require.NoError(t, env.local.SaveSnapshot(ctx, newSnapshot(t, "song-2", 20, "device-local", map[string]string{"title": "B"})))

	count, err = env.service.PendingChangesCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	// После синхронизации изменения считаются доставленными
	require.NoError(t, env.local.SaveLastSyncTimestamp(ctx, 100))
	count, err = env.service.PendingChangesCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestService_SharePresence(t *testing.T) {
	env := setupEnv(t)

	var pushed *models.PresenceRecord
	env.remote.PushPresenceFunc = func(ctx context.Context, record *models.PresenceRecord) error {
		pushed = record
		return nil
	}

	record := &models.PresenceRecord{
		UserID:   "user-1",
		DeviceID: "device-local",
		Status:   models.StatusOnline,
		Activity: models.ActivityEditing,
		EntityID: "song-1",
	}

	require.NoError(t, env.service.SharePresence(context.Background(), record))
	assert.Equal(t, record, pushed)
}

func TestService_WatchPresence(t *testing.T) {
	env := setupEnv(t)

	updates := make(chan *models.PresenceRecord, 1)
	env.remote.SubscribePresenceFunc = func(ctx context.Context, entityID string) (<-chan *models.PresenceRecord, error) {
		return updates, nil
	}

	tracker := presence.NewTracker(testLogger())

	done := make(chan error, 1)
	go func() {
		done <- env.service.WatchPresence(context.Background(), "song-1", tracker)
	}()

	updates <- &models.PresenceRecord{
		UserID:        "user-remote",
		DeviceID:      "device-remote",
		Status:        models.StatusOnline,
		Activity:      models.ActivityEditing,
		EntityID:      "song-1",
		LastHeartbeat: time.Now(),
	}

	// Удаленное присутствие транслируется в локальный трекер
	require.Eventually(t, func() bool {
		_, ok := tracker.Get("user-remote", "device-remote")
		return ok
	}, time.Second, 10*time.Millisecond)

	// Закрытие удаленного потока завершает наблюдение
	close(updates)
	require.NoError(t, <-done)
}
