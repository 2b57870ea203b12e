package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/iudanet/chartsync/internal/cli"
	"github.com/iudanet/chartsync/internal/conflict"
	"github.com/iudanet/chartsync/internal/hlc"
	"github.com/iudanet/chartsync/internal/ledger/sqlite"
	"github.com/iudanet/chartsync/internal/lock"
	"github.com/iudanet/chartsync/internal/presence"
	"github.com/iudanet/chartsync/internal/storage/boltdb"
	"github.com/iudanet/chartsync/internal/validation"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	dbPath := flag.String("db", "chartsync.db", "Path to local database")
	ledgerPath := flag.String("ledger", "chartsync-ledger.db", "Path to conflict ledger database")
	deviceID := flag.String("device", "", "Device identifier (default: generated)")

	flag.Parse()

	// Show version and exit if requested
	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	// Получаем команду
	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}

	command := args[0]

	// Создаем контекст
	ctx := context.Background()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	// Открываем BoltDB storage
	boltStorage, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	// Открываем журнал конфликтов
	conflictLedger, err := sqlite.New(ctx, *ledgerPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open conflict ledger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := conflictLedger.Close(); err != nil {
			logger.Error("failed to close conflict ledger", "error", err)
		}
	}()

	device := *deviceID
	if device == "" {
		device = uuid.New().String()
	} else if err := validation.ValidateDeviceID(device); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid device id: %v\n", err)
		os.Exit(1)
	}

	// Восстанавливаем гибридные часы из сохраненного состояния
	clock := hlc.NewWithDeviceID(device)
	if state, err := boltStorage.GetClockState(ctx); err != nil {
		logger.Warn("failed to restore clock state", "error", err)
	} else if state > 0 {
		clock.Restore(state)
	}

	detector := conflict.NewDetector(conflictLedger, logger)
	resolver := conflict.NewResolver(conflictLedger, boltStorage, clock, logger)
	conflicts := conflict.NewService(detector, resolver, conflictLedger, logger)

	tracker := presence.NewTracker(logger)

	locks := lock.NewManager(boltStorage, tracker, logger)
	if err := locks.Load(ctx); err != nil {
		logger.Warn("failed to load persisted locks", "error", err)
	}

	// Выполняем команду
	c := cli.New(conflicts, locks, device)
	c.Run(ctx, command, args[1:])
}

func printVersion() {
	fmt.Printf("ChartSync\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
