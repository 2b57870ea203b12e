package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createSnapshot(logicalTime int64, deviceID string) *EntitySnapshot {
	return &EntitySnapshot{
		EntityType:  EntityTypeSong,
		EntityID:    "song-1",
		Fields:      map[string]string{"title": "Hallelujah", "body": "[C]I heard there was"},
		LogicalTime: logicalTime,
		DeviceID:    deviceID,
	}
}

func TestEntitySnapshot_IsNewerThan(t *testing.T) {
	tests := []struct {
		name     string
		a        *EntitySnapshot
		b        *EntitySnapshot
		expected bool
	}{
		{
			name:     "higher logical time wins",
			a:        createSnapshot(20, "device-a"),
			b:        createSnapshot(10, "device-z"),
			expected: true,
		},
		{
			name:     "lower logical time loses",
			a:        createSnapshot(10, "device-z"),
			b:        createSnapshot(20, "device-a"),
			expected: false,
		},
		{
			name:     "equal time breaks tie by device id",
			a:        createSnapshot(10, "device-b"),
			b:        createSnapshot(10, "device-a"),
			expected: true,
		},
		{
			name:     "equal time and lower device id loses",
			a:        createSnapshot(10, "device-a"),
			b:        createSnapshot(10, "device-b"),
			expected: false,
		},
		{
			name:     "identical snapshots are not newer",
			a:        createSnapshot(10, "device-a"),
			b:        createSnapshot(10, "device-a"),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.a.IsNewerThan(tt.b))
		})
	}
}

func TestEntitySnapshot_IsNewerThan_Deterministic(t *testing.T) {
	// Тай-брейк детерминирован: обе стороны приходят
	// к одному победителю независимо от порядка сравнения
	a := createSnapshot(10, "device-a")
	b := createSnapshot(10, "device-b")

	assert.True(t, b.IsNewerThan(a))
	assert.False(t, a.IsNewerThan(b))
}

func TestEntitySnapshot_Clone(t *testing.T) {
	original := createSnapshot(10, "device-a")
	clone := original.Clone()

	require.Equal(t, original, clone)

	// Мутация клона не затрагивает оригинал
	clone.Fields["title"] = "changed"
	assert.Equal(t, "Hallelujah", original.Fields["title"])
}

func TestEntitySnapshot_DivergentFields(t *testing.T) {
	a := &EntitySnapshot{
		EntityType: EntityTypeSong,
		EntityID:   "song-1",
		Fields: map[string]string{
			"title": "Hallelujah",
			"body":  "verse one",
			"capo":  "2",
		},
	}
	b := &EntitySnapshot{
		EntityType: EntityTypeSong,
		EntityID:   "song-1",
		Fields: map[string]string{
			"title": "Hallelujah",
			"body":  "verse two",
			"tempo": "72",
		},
	}

	diverged := a.DivergentFields(b)
	assert.Equal(t, []string{"body", "capo", "tempo"}, diverged, "Result should be the sorted union of differences")

	// Симметричность
	assert.Equal(t, diverged, b.DivergentFields(a))

	// Идентичные снимки не расходятся
	assert.Empty(t, a.DivergentFields(a.Clone()))
}

func TestIsCriticalField(t *testing.T) {
	tests := []struct {
		name       string
		entityType EntityType
		field      string
		expected   bool
	}{
		{name: "song title", entityType: EntityTypeSong, field: "title", expected: true},
		{name: "song body", entityType: EntityTypeSong, field: "body", expected: true},
		{name: "song key", entityType: EntityTypeSong, field: "key", expected: true},
		{name: "song capo is a property", entityType: EntityTypeSong, field: "capo", expected: false},
		{name: "book items", entityType: EntityTypeBook, field: "items", expected: true},
		{name: "set items", entityType: EntityTypeSet, field: "items", expected: true},
		{name: "annotation body", entityType: EntityTypeAnnotation, field: "body", expected: true},
		{name: "attachment has no critical fields", entityType: EntityTypeAttachment, field: "title", expected: false},
		{name: "unknown entity type", entityType: EntityType("playlist"), field: "title", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsCriticalField(tt.entityType, tt.field))
		})
	}
}

func TestIsCriticalProperty(t *testing.T) {
	assert.True(t, IsCriticalProperty("capo"))
	assert.True(t, IsCriticalProperty("tempo"))
	assert.True(t, IsCriticalProperty("tuning"))
	assert.False(t, IsCriticalProperty("tags"))
	assert.False(t, IsCriticalProperty("notes"))
}

func TestIsMetadataField(t *testing.T) {
	assert.True(t, IsMetadataField("attachment.checksum"))
	assert.True(t, IsMetadataField("version.label"))
	assert.False(t, IsMetadataField("title"))
	assert.False(t, IsMetadataField("attachments"))
}
