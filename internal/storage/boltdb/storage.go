package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/chartsync/internal/models"
)

var (
	// BoltDB bucket names
	bucketSnapshots = []byte("snapshots")
	bucketLocks     = []byte("locks")
	bucketMetadata  = []byte("metadata")
)

// Storage represents BoltDB storage implementation for the local device
type Storage struct {
	db *bbolt.DB
}

// New creates a new BoltDB storage instance
// dbPath is the path to the BoltDB database file
func New(ctx context.Context, dbPath string) (*Storage, error) {
	// Открываем BoltDB
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	storage := &Storage{db: db}

	// Инициализируем buckets
	if err := storage.initBuckets(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return storage, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// initBuckets создает необходимые buckets если они не существуют
func (s *Storage) initBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		// Создаем bucket для снимков сущностей
		if _, err := tx.CreateBucketIfNotExists(bucketSnapshots); err != nil {
			return fmt.Errorf("failed to create snapshots bucket: %w", err)
		}

		// Создаем bucket для аренд редактирования
		if _, err := tx.CreateBucketIfNotExists(bucketLocks); err != nil {
			return fmt.Errorf("failed to create locks bucket: %w", err)
		}

		// Создаем bucket для метаданных синхронизации
		if _, err := tx.CreateBucketIfNotExists(bucketMetadata); err != nil {
			return fmt.Errorf("failed to create metadata bucket: %w", err)
		}

		return nil
	})
}

// entityKey формирует ключ записи по типу и идентификатору сущности
func entityKey(entityType models.EntityType, entityID string) []byte {
	return []byte(string(entityType) + "/" + entityID)
}
