package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{
				"-s", "sheet", "-b", "bucket", "-r", "/srv/res", "-u", "https://c.example.com",
				"-l", "debug", "-m", "7", "-i", "250ms", "-sms",
			},
			expected: &Config{
				SpreadsheetID:  "sheet",
				S3Bucket:       "bucket",
				ResourcesDir:   "/srv/res",
				CardBaseURL:    "https://c.example.com",
				LogLevel:       "debug",
				MaxUpdates:     7,
				PacingInterval: 250 * time.Millisecond,
				SMSEnabled:     true,
			},
		},
		{
			name:     "foreign flags are ignored",
			args:     []string{"-c", "cfg.json", "-env", ".env", "-b", "bucket"},
			expected: &Config{S3Bucket: "bucket"},
		},
		{
			name:     "sms with separate bool value",
			args:     []string{"-sms", "false", "-m", "3"},
			expected: &Config{MaxUpdates: 3},
		},
		{
			name:        "bad duration",
			args:        []string{"-i", "soon"},
			expectPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setArgs(t, tt.args...)
			config := &Config{}

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(config) })
				return
			}
			require.NotPanics(t, func() { parseFlags(config) })
			assert.Empty(t, cmp.Diff(tt.expected, config))
		})
	}
}

func TestParseFlags_SMSCanBeTurnedOff(t *testing.T) {
	setArgs(t, "-sms", "false")
	config := &Config{SMSEnabled: true}

	parseFlags(config)

	assert.False(t, config.SMSEnabled)
}
