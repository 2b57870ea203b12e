package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/iudanet/chartsync/internal/lock"
)

// defaultLockTTL применяется, когда ttl не указан в команде
const defaultLockTTL = 300 * time.Second

func (c *Cli) runLocks(_ context.Context) error {
	fmt.Println("=== Active Edit Locks ===")
	fmt.Println()

	locks := c.locks.ActiveLocks()
	if len(locks) == 0 {
		fmt.Println("No active locks.")
		return nil
	}

	for _, l := range locks {
		holder := l.DeviceID
		if holder == c.deviceID {
			holder += " (this device)"
		}
		fmt.Printf("%s/%s\n", l.EntityType, l.EntityID)
		fmt.Printf("  Holder:   %s\n", holder)
		fmt.Printf("  Expires:  %s\n", formatTime(l.ExpiresAt))
		fmt.Println()
	}

	return nil
}

func (c *Cli) runLock(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: chartsync lock <song|book|set|annotation|attachment> <entity-id> [ttl-seconds]")
	}

	entityType, entityID, err := parseEntity(args)
	if err != nil {
		return err
	}

	ttl := defaultLockTTL
	if len(args) > 2 {
		seconds, err := strconv.Atoi(args[2])
		if err != nil || seconds <= 0 {
			return fmt.Errorf("invalid ttl: %s", args[2])
		}
		ttl = time.Duration(seconds) * time.Second
	}

	result, err := c.locks.TryAcquire(ctx, entityType, entityID, c.deviceID, ttl)
	if err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}

	if !result.Granted {
		fmt.Printf("Lock denied: %s/%s is held by %s\n", entityType, entityID, result.HolderDeviceID)
		if len(result.ActiveEditors) > 0 {
			fmt.Printf("Currently editing: %s\n", strings.Join(result.ActiveEditors, ", "))
		}
		return nil
	}

	fmt.Printf("✓ Lock acquired: %s/%s until %s\n", entityType, entityID, formatTime(result.Lock.ExpiresAt))
	return nil
}

func (c *Cli) runUnlock(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: chartsync unlock <song|book|set|annotation|attachment> <entity-id>")
	}

	entityType, entityID, err := parseEntity(args)
	if err != nil {
		return err
	}

	if err := c.locks.Release(ctx, entityType, entityID, c.deviceID); err != nil {
		if errors.Is(err, lock.ErrNotHolder) {
			return fmt.Errorf("lock on %s/%s is held by another device", entityType, entityID)
		}
		return fmt.Errorf("failed to release lock: %w", err)
	}

	fmt.Printf("✓ Lock released: %s/%s\n", entityType, entityID)
	return nil
}
