package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/chartsync/internal/models"
	"github.com/iudanet/chartsync/internal/storage"
)

// SaveLock stores or replaces the lock for an entity
func (s *Storage) SaveLock(ctx context.Context, lock *models.EditLock) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	data, err := json.Marshal(lock)
	if err != nil {
		return fmt.Errorf("failed to marshal lock: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketLocks)
		if bucket == nil {
			return fmt.Errorf("locks bucket not found")
		}

		if err := bucket.Put(entityKey(lock.EntityType, lock.EntityID), data); err != nil {
			return fmt.Errorf("failed to save lock: %w", err)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

// GetLock retrieves the lock for an entity
func (s *Storage) GetLock(ctx context.Context, entityType models.EntityType, entityID string) (*models.EditLock, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var lock *models.EditLock

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketLocks)
		if bucket == nil {
			return storage.ErrLockNotFound
		}

		data := bucket.Get(entityKey(entityType, entityID))
		if data == nil {
			return storage.ErrLockNotFound
		}

		lock = &models.EditLock{}
		if err := json.Unmarshal(data, lock); err != nil {
			return fmt.Errorf("failed to unmarshal lock: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return lock, nil
}

// GetAllLocks returns all stored locks (active and inactive)
func (s *Storage) GetAllLocks(ctx context.Context) ([]*models.EditLock, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var locks []*models.EditLock

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketLocks)
		if bucket == nil {
			return nil
		}

		return bucket.ForEach(func(k, v []byte) error {
			var lock models.EditLock
			if err := json.Unmarshal(v, &lock); err != nil {
				return fmt.Errorf("failed to unmarshal lock: %w", err)
			}
			locks = append(locks, &lock)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get all locks: %w", err)
	}

	return locks, nil
}

// DeleteLock removes the lock for an entity
func (s *Storage) DeleteLock(ctx context.Context, entityType models.EntityType, entityID string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketLocks)
		if bucket == nil {
			return storage.ErrLockNotFound
		}

		if err := bucket.Delete(entityKey(entityType, entityID)); err != nil {
			return fmt.Errorf("failed to delete lock: %w", err)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("delete transaction failed: %w", err)
	}

	return nil
}
