package config

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeConfigDefaults(t *testing.T) {
	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.False(t, cfg.AI.Enabled)
	assert.Equal(t, "gemini-2.0-flash", cfg.AI.Model)
	assert.Equal(t, 30, cfg.AI.TimeoutSeconds)
	assert.Equal(t, "insurance_issuers.yaml", cfg.Reference.IssuersFile)
	assert.Equal(t, ",", cfg.Batch.Delimiter)
}

func TestInitializeConfigEnvOverrides(t *testing.T) {
	t.Setenv("SMS_LOG_LEVEL", "debug")
	t.Setenv("SMS_AI_MODEL", "gemini-1.5-pro")

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "gemini-1.5-pro", cfg.AI.Model)
}

func TestInitializeConfigGeminiKeyUnprefixed(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key-123")
	t.Setenv("SMS_AI_ENABLED", "true")

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.True(t, cfg.AI.Enabled)
	assert.Equal(t, "test-key-123", cfg.AI.APIKey)
}

func TestInitializeConfigAIEnabledWithoutKey(t *testing.T) {
	t.Setenv("SMS_AI_ENABLED", "true")
	t.Setenv("GEMINI_API_KEY", "")

	_, err := InitializeConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}

func TestInitializeConfigInvalidLogLevel(t *testing.T) {
	t.Setenv("SMS_LOG_LEVEL", "shout")

	_, err := InitializeConfig()
	assert.Error(t, err)
}

func TestInitializeConfigInvalidDelimiter(t *testing.T) {
	t.Setenv("SMS_BATCH_DELIMITER", ",,")

	_, err := InitializeConfig()
	assert.Error(t, err)
}

func TestConfigureLoggingFromConfig(t *testing.T) {
	var cfg Config
	cfg.Log.Level = "debug"
	cfg.Log.Format = "json"

	logger := ConfigureLoggingFromConfig(&cfg)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	_, isJSON := logger.Formatter.(*logrus.JSONFormatter)
	assert.True(t, isJSON)
}

func TestGetEnv(t *testing.T) {
	t.Setenv("SOME_TEST_VARIABLE", "value")
	assert.Equal(t, "value", GetEnv("SOME_TEST_VARIABLE", "fallback"))
	assert.Equal(t, "fallback", GetEnv("SOME_MISSING_VARIABLE", "fallback"))
}
