package boltdb

import (
	"context"
	"encoding/binary"
	"fmt"

	"go.etcd.io/bbolt"
)

const (
	keyLastSyncTimestamp = "last_sync_timestamp"
	keyClockState        = "clock_state"
)

// SaveLastSyncTimestamp saves the logical timestamp of the last successful sync
func (s *Storage) SaveLastSyncTimestamp(ctx context.Context, timestamp int64) error {
	return s.putInt64(keyLastSyncTimestamp, timestamp)
}

// GetLastSyncTimestamp retrieves the logical timestamp of the last successful sync
// Returns 0 if no sync has been performed yet
func (s *Storage) GetLastSyncTimestamp(ctx context.Context) (int64, error) {
	return s.getInt64(keyLastSyncTimestamp)
}

// SaveClockState persists the hybrid logical clock state
func (s *Storage) SaveClockState(ctx context.Context, timestamp int64) error {
	return s.putInt64(keyClockState, timestamp)
}

// GetClockState retrieves the persisted clock state
// Returns 0 if no state has been saved yet
func (s *Storage) GetClockState(ctx context.Context) (int64, error) {
	return s.getInt64(keyClockState)
}

// putInt64 сохраняет int64 значение в metadata bucket
func (s *Storage) putInt64(key string, value int64) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		// Конвертируем int64 в bytes
		valueBytes := make([]byte, 8)
		binary.BigEndian.PutUint64(valueBytes, uint64(value))

		if err := bucket.Put([]byte(key), valueBytes); err != nil {
			return fmt.Errorf("failed to save %s: %w", key, err)
		}

		return nil
	})
}

// getInt64 читает int64 значение из metadata bucket
// Возвращает 0, если значение не найдено
func (s *Storage) getInt64(key string) (int64, error) {
	var value int64

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		valueBytes := bucket.Get([]byte(key))
		if valueBytes == nil {
			// Значение не найдено - возвращаем 0
			value = 0
			return nil
		}

		// Конвертируем bytes в int64
		value = int64(binary.BigEndian.Uint64(valueBytes))
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to get %s: %w", key, err)
	}

	return value, nil
}
