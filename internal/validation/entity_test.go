package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEntityType(t *testing.T) {
	tests := []struct {
		name       string
		entityType string
		wantErr    bool
		errMsg     string
	}{
		{
			name:       "valid - song",
			entityType: "song",
			wantErr:    false,
		},
		{
			name:       "valid - book",
			entityType: "book",
			wantErr:    false,
		},
		{
			name:       "valid - set",
			entityType: "set",
			wantErr:    false,
		},
		{
			name:       "valid - annotation",
			entityType: "annotation",
			wantErr:    false,
		},
		{
			name:       "valid - attachment",
			entityType: "attachment",
			wantErr:    false,
		},
		{
			name:       "invalid - empty",
			entityType: "",
			wantErr:    true,
			errMsg:     "entity type cannot be empty",
		},
		{
			name:       "invalid - unknown type",
			entityType: "playlist",
			wantErr:    true,
			errMsg:     "unknown entity type",
		},
		{
			name:       "invalid - wrong case",
			entityType: "Song",
			wantErr:    true,
			errMsg:     "unknown entity type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEntityType(tt.entityType)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateEntityID(t *testing.T) {
	tests := []struct {
		name     string
		entityID string
		wantErr  bool
		errMsg   string
	}{
		{
			name:     "valid - slug",
			entityID: "blackbird",
			wantErr:  false,
		},
		{
			name:     "valid - uuid",
			entityID: "7f9c24e5-3011-4a2c-8d6f-1a2b3c4d5e6f",
			wantErr:  false,
		},
		{
			name:     "valid - with dots and underscores",
			entityID: "set_2026.08",
			wantErr:  false,
		},
		{
			name:     "valid - max length",
			entityID: strings.Repeat("a", 64),
			wantErr:  false,
		},
		{
			name:     "invalid - empty",
			entityID: "",
			wantErr:  true,
			errMsg:   "entity id cannot be empty",
		},
		{
			name:     "invalid - too long (65 chars)",
			entityID: strings.Repeat("a", 65),
			wantErr:  true,
			errMsg:   "must not exceed 64 characters",
		},
		{
			name:     "invalid - with slash",
			entityID: "song/1",
			wantErr:  true,
			errMsg:   "can only contain letters",
		},
		{
			name:     "invalid - with space",
			entityID: "my song",
			wantErr:  true,
			errMsg:   "can only contain letters",
		},
		{
			name:     "invalid - cyrillic characters",
			entityID: "песня",
			wantErr:  true,
			errMsg:   "can only contain letters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEntityID(tt.entityID)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateDeviceID(t *testing.T) {
	tests := []struct {
		name     string
		deviceID string
		wantErr  bool
		errMsg   string
	}{
		{
			name:     "valid - uuid",
			deviceID: "5f3b1c2d-0a9e-4b8c-9d7f-6e5d4c3b2a1f",
			wantErr:  false,
		},
		{
			name:     "valid - readable name",
			deviceID: "alex-macbook",
			wantErr:  false,
		},
		{
			name:     "invalid - empty",
			deviceID: "",
			wantErr:  true,
			errMsg:   "device id cannot be empty",
		},
		{
			name:     "invalid - with space",
			deviceID: "alex macbook",
			wantErr:  true,
			errMsg:   "can only contain letters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDeviceID(tt.deviceID)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
