package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Zero(t, cfg.SRS.MinEaseFactor, "SRS overrides default to the algorithm's values")
	assert.Zero(t, cfg.SRS.PassThreshold)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PROGRESSION_SERVER_PORT", "9090")
	t.Setenv("PROGRESSION_SERVER_LOG_LEVEL", "debug")
	t.Setenv("PROGRESSION_SRS_PASS_THRESHOLD", "4")
	t.Setenv("PROGRESSION_SRS_FIRST_INTERVAL", "2")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, 4, cfg.SRS.PassThreshold)
	assert.Equal(t, 2, cfg.SRS.FirstInterval)
}

func TestLoadValidation(t *testing.T) {
	testCases := []struct {
		name  string
		key   string
		value string
	}{
		{name: "port out of range", key: "PROGRESSION_SERVER_PORT", value: "70000"},
		{name: "unknown log level", key: "PROGRESSION_SERVER_LOG_LEVEL", value: "verbose"},
		{name: "pass threshold above range", key: "PROGRESSION_SRS_PASS_THRESHOLD", value: "6"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}
