package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/chartsync/internal/models"
	"github.com/iudanet/chartsync/internal/storage"
)

// SaveSnapshot stores or replaces the latest snapshot of an entity
func (s *Storage) SaveSnapshot(ctx context.Context, snapshot *models.EntitySnapshot) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	// Сериализуем snapshot в JSON
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSnapshots)
		if bucket == nil {
			return fmt.Errorf("snapshots bucket not found")
		}

		// Сохраняем по составному ключу тип/идентификатор
		if err := bucket.Put(entityKey(snapshot.EntityType, snapshot.EntityID), data); err != nil {
			return fmt.Errorf("failed to save snapshot: %w", err)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

// GetSnapshot retrieves the latest snapshot of an entity
func (s *Storage) GetSnapshot(ctx context.Context, entityType models.EntityType, entityID string) (*models.EntitySnapshot, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var snapshot *models.EntitySnapshot

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSnapshots)
		if bucket == nil {
			return storage.ErrSnapshotNotFound
		}

		data := bucket.Get(entityKey(entityType, entityID))
		if data == nil {
			return storage.ErrSnapshotNotFound
		}

		// Десериализуем
		snapshot = &models.EntitySnapshot{}
		if err := json.Unmarshal(data, snapshot); err != nil {
			return fmt.Errorf("failed to unmarshal snapshot: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return snapshot, nil
}

// GetSnapshotsAfter returns snapshots with logical time greater than timestamp
func (s *Storage) GetSnapshotsAfter(ctx context.Context, timestamp int64) ([]*models.EntitySnapshot, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var snapshots []*models.EntitySnapshot

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSnapshots)
		if bucket == nil {
			return nil
		}

		return bucket.ForEach(func(k, v []byte) error {
			var snapshot models.EntitySnapshot
			if err := json.Unmarshal(v, &snapshot); err != nil {
				return fmt.Errorf("failed to unmarshal snapshot: %w", err)
			}

			// Фильтруем по логической метке времени
			if snapshot.LogicalTime > timestamp {
				snapshots = append(snapshots, &snapshot)
			}

			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get snapshots after timestamp: %w", err)
	}

	return snapshots, nil
}

// Clear removes all snapshots from storage
func (s *Storage) Clear(ctx context.Context) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		// Удаляем bucket полностью
		if err := tx.DeleteBucket(bucketSnapshots); err != nil && err != bbolt.ErrBucketNotFound {
			return fmt.Errorf("failed to delete bucket: %w", err)
		}

		// Создаем заново пустой bucket
		if _, err := tx.CreateBucket(bucketSnapshots); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("clear transaction failed: %w", err)
	}

	return nil
}
