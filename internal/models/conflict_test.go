package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createConflictRecord(conflictType ConflictType, requiresUserInput bool) *ConflictRecord {
	return &ConflictRecord{
		ID:                "conflict-1",
		Type:              conflictType,
		EntityType:        EntityTypeSong,
		EntityID:          "song-1",
		Local:             createSnapshot(10, "device-a"),
		Remote:            createSnapshot(20, "device-b"),
		RequiresUserInput: requiresUserInput,
		DetectedAt:        time.Now(),
	}
}

func TestConflictType_Priority(t *testing.T) {
	// deletion имеет наивысший приоритет, далее по убыванию
	assert.Greater(t, ConflictTypeDeletion.Priority(), ConflictTypeContent.Priority())
	assert.Greater(t, ConflictTypeContent.Priority(), ConflictTypeProperty.Priority())
	assert.Greater(t, ConflictTypeProperty.Priority(), ConflictTypeAttachment.Priority())
	assert.Equal(t, 0, ConflictType("unknown").Priority())
}

func TestResolutionOutcome_IsTerminal(t *testing.T) {
	assert.True(t, ResolutionKeepLocal.IsTerminal())
	assert.True(t, ResolutionKeepRemote.IsTerminal())
	assert.True(t, ResolutionKeepBoth.IsTerminal())
	assert.True(t, ResolutionMerge.IsTerminal())
	assert.False(t, ResolutionSkip.IsTerminal(), "skip-for-now keeps the conflict open")
	assert.False(t, ResolutionOutcome("").IsTerminal())
}

func TestResolutionOutcome_Valid(t *testing.T) {
	assert.True(t, ResolutionSkip.Valid())
	assert.True(t, ResolutionKeepBoth.Valid())
	assert.False(t, ResolutionOutcome("").Valid())
	assert.False(t, ResolutionOutcome("discard").Valid())
}

func TestConflictRecord_IsResolved(t *testing.T) {
	record := createConflictRecord(ConflictTypeProperty, false)
	assert.False(t, record.IsResolved())

	// Отложенный конфликт остается открытым
	record.Resolution = ResolutionSkip
	assert.False(t, record.IsResolved())

	record.Resolution = ResolutionKeepLocal
	assert.True(t, record.IsResolved())
}

func TestConflictRecord_IsAutoResolvable(t *testing.T) {
	tests := []struct {
		mutate   func(r *ConflictRecord)
		name     string
		expected bool
	}{
		{
			name:     "property conflict",
			mutate:   func(r *ConflictRecord) {},
			expected: true,
		},
		{
			name:     "attachment conflict",
			mutate:   func(r *ConflictRecord) { r.Type = ConflictTypeAttachment },
			expected: true,
		},
		{
			name:     "content conflict never auto-resolves",
			mutate:   func(r *ConflictRecord) { r.Type = ConflictTypeContent },
			expected: false,
		},
		{
			name:     "deletion conflict never auto-resolves",
			mutate:   func(r *ConflictRecord) { r.Type = ConflictTypeDeletion },
			expected: false,
		},
		{
			name:     "user input required",
			mutate:   func(r *ConflictRecord) { r.RequiresUserInput = true },
			expected: false,
		},
		{
			name:     "local snapshot deleted",
			mutate:   func(r *ConflictRecord) { r.Local.Deleted = true },
			expected: false,
		},
		{
			name:     "remote snapshot deleted",
			mutate:   func(r *ConflictRecord) { r.Remote.Deleted = true },
			expected: false,
		},
		{
			name:     "already resolved",
			mutate:   func(r *ConflictRecord) { r.Resolution = ResolutionKeepRemote },
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := createConflictRecord(ConflictTypeProperty, false)
			tt.mutate(record)
			assert.Equal(t, tt.expected, record.IsAutoResolvable())
		})
	}
}

func TestConflictRecord_Clone(t *testing.T) {
	record := createConflictRecord(ConflictTypeContent, true)
	resolvedAt := time.Now()
	record.ResolvedAt = &resolvedAt

	clone := record.Clone()
	require.Equal(t, record, clone)

	// Глубокая копия: мутации клона не видны оригиналу
	clone.Local.Fields["title"] = "changed"
	*clone.ResolvedAt = resolvedAt.Add(time.Hour)

	assert.Equal(t, "Hallelujah", record.Local.Fields["title"])
	assert.Equal(t, resolvedAt, *record.ResolvedAt)
}
