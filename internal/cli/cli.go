// Package cli реализует консольные команды работы с локальным слоем
// согласованности: просмотр и разрешение конфликтов, аренды редактирования.
package cli

import (
	"fmt"
	"time"

	"github.com/iudanet/chartsync/internal/conflict"
	"github.com/iudanet/chartsync/internal/lock"
	"github.com/iudanet/chartsync/internal/models"
	"github.com/iudanet/chartsync/internal/validation"
)

type Cli struct {
	conflicts *conflict.Service
	locks     *lock.Manager
	deviceID  string
}

func New(conflicts *conflict.Service, locks *lock.Manager, deviceID string) *Cli {
	return &Cli{
		conflicts: conflicts,
		locks:     locks,
		deviceID:  deviceID,
	}
}

func PrintUsage() {
	fmt.Println("ChartSync")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  chartsync [OPTIONS] COMMAND")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version        Show version information")
	fmt.Println("  --db PATH        Path to local database (default: chartsync.db)")
	fmt.Println("  --ledger PATH    Path to conflict ledger database (default: chartsync-ledger.db)")
	fmt.Println("  --device ID      Device identifier (default: generated)")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  status                        Show pending and auto-resolvable conflict counts")
	fmt.Println("  pending                       List conflicts waiting for user input")
	fmt.Println("  resolve <id> <outcome>        Resolve a conflict")
	fmt.Println("                                (keep-local, keep-remote, keep-both, skip-for-now)")
	fmt.Println("  history <type> <entity-id>    Show conflict history for an entity")
	fmt.Println("  locks                         List active edit locks")
	fmt.Println("  lock <type> <entity-id> [ttl] Acquire an edit lock (ttl in seconds, default 300)")
	fmt.Println("  unlock <type> <entity-id>     Release an edit lock")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  chartsync pending")
	fmt.Println("  chartsync resolve b692f5c0-2d88-4aa1-a9e1-13aa6e4976d5 keep-both")
	fmt.Println("  chartsync history song 42")
	fmt.Println("  chartsync --device tablet-1 lock song 42 120")
}

// parseEntity валидирует и разбирает пару <type> <entity-id> из аргументов команды
func parseEntity(args []string) (models.EntityType, string, error) {
	if err := validation.ValidateEntityType(args[0]); err != nil {
		return "", "", err
	}
	if err := validation.ValidateEntityID(args[1]); err != nil {
		return "", "", err
	}
	return models.EntityType(args[0]), args[1], nil
}

// formatTime форматирует метку времени для вывода
func formatTime(t time.Time) string {
	return t.Local().Format("2006-01-02 15:04:05")
}
