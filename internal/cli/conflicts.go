package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/chartsync/internal/models"
)

func (c *Cli) runStatus(ctx context.Context) error {
	fmt.Println("=== Conflict Status ===")
	fmt.Println()

	pending, err := c.conflicts.ListPending(ctx)
	if err != nil {
		return fmt.Errorf("failed to list pending conflicts: %w", err)
	}

	autoCount, err := c.conflicts.AutoResolvableCount(ctx)
	if err != nil {
		return fmt.Errorf("failed to count auto-resolvable conflicts: %w", err)
	}

	fmt.Printf("Pending conflicts:  %d\n", len(pending))
	fmt.Printf("Auto-resolvable:    %d\n", autoCount)

	if len(pending) > 0 {
		fmt.Println()
		fmt.Println("Use 'chartsync pending' to see the details.")
	}

	return nil
}

func (c *Cli) runPending(ctx context.Context) error {
	fmt.Println("=== Pending Conflicts ===")
	fmt.Println()

	pending, err := c.conflicts.ListPending(ctx)
	if err != nil {
		return fmt.Errorf("failed to list pending conflicts: %w", err)
	}

	if len(pending) == 0 {
		fmt.Println("No pending conflicts.")
		return nil
	}

	fmt.Printf("Found %d conflict(s):\n", len(pending))
	fmt.Println()

	for _, record := range pending {
		printConflict(record)
		fmt.Println()
	}

	fmt.Println("Use 'chartsync resolve <id> <outcome>' to resolve a conflict.")
	return nil
}

func (c *Cli) runResolve(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: chartsync resolve <id> <keep-local|keep-remote|keep-both|skip-for-now>")
	}

	conflictID := args[0]
	outcome := models.ResolutionOutcome(args[1])

	// merge требует готового объединенного снимка и выполняется только
	// через программный API, не из консоли
	if outcome == models.ResolutionMerge {
		return fmt.Errorf("'merge' requires a merged snapshot and is not available from the command line")
	}
	if !outcome.Valid() {
		return fmt.Errorf("unknown outcome: %s. Use: keep-local, keep-remote, keep-both, or skip-for-now", args[1])
	}

	record, err := c.conflicts.Resolve(ctx, conflictID, outcome, nil)
	if err != nil {
		return fmt.Errorf("failed to resolve conflict: %w", err)
	}

	if record.IsResolved() {
		fmt.Printf("✓ Conflict %s resolved: %s\n", record.ID, record.Resolution)
	} else {
		fmt.Printf("Conflict %s deferred, it will stay in the pending list.\n", record.ID)
	}

	return nil
}

func (c *Cli) runHistory(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: chartsync history <song|book|set|annotation|attachment> <entity-id>")
	}

	entityType, entityID, err := parseEntity(args)
	if err != nil {
		return err
	}

	records, err := c.conflicts.History(ctx, entityType, entityID)
	if err != nil {
		return fmt.Errorf("failed to get conflict history: %w", err)
	}

	fmt.Printf("=== Conflict History: %s/%s ===\n", entityType, entityID)
	fmt.Println()

	if len(records) == 0 {
		fmt.Println("No conflicts recorded for this entity.")
		return nil
	}

	for _, record := range records {
		printConflict(record)
		fmt.Println()
	}

	return nil
}

// printConflict выводит одну запись конфликта
func printConflict(record *models.ConflictRecord) {
	fmt.Printf("ID:          %s\n", record.ID)
	fmt.Printf("Entity:      %s/%s\n", record.EntityType, record.EntityID)
	fmt.Printf("Type:        %s\n", record.Type)
	fmt.Printf("Detected:    %s\n", formatTime(record.DetectedAt))

	if record.IsResolved() {
		fmt.Printf("Resolution:  %s\n", record.Resolution)
		if record.ResolvedAt != nil {
			fmt.Printf("Resolved:    %s\n", formatTime(*record.ResolvedAt))
		}
	} else if record.Resolution == models.ResolutionSkip {
		fmt.Printf("Resolution:  %s (still open)\n", record.Resolution)
	} else {
		fmt.Printf("Resolution:  pending\n")
	}

	if record.Local != nil && record.Remote != nil {
		fields := record.Local.DivergentFields(record.Remote)
		if len(fields) > 0 {
			fmt.Printf("Divergent:   %v\n", fields)
		}
	}
}
