package conflict

import "errors"

// Ошибки разрешения конфликтов
var (
	// ErrConflictAlreadyResolved indicates an attempt to re-resolve a
	// terminally resolved conflict with a different outcome.
	// Повторный вызов с тем же исходом является no-op, а не ошибкой.
	ErrConflictAlreadyResolved = errors.New("conflict already resolved")

	// ErrInvalidOutcome indicates an unknown resolution outcome
	ErrInvalidOutcome = errors.New("invalid resolution outcome")

	// ErrMergedSnapshotRequired indicates that merge outcome was requested
	// without a caller-supplied merged snapshot
	ErrMergedSnapshotRequired = errors.New("merge outcome requires a merged snapshot")

	// ErrMergedSnapshotMismatch indicates that the merged snapshot refers
	// to a different entity than the conflict record
	ErrMergedSnapshotMismatch = errors.New("merged snapshot refers to a different entity")

	// ErrNotAutoResolvable indicates that automatic resolution was requested
	// for a conflict that requires user input
	ErrNotAutoResolvable = errors.New("conflict is not auto-resolvable")
)
