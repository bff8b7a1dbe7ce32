package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupEnv sets environment variables for the duration of the test.
// An empty value unsets the variable.
func setupEnv(t *testing.T, envVars map[string]string) {
	t.Helper()
	for name, value := range envVars {
		t.Setenv(name, value)
		if value == "" {
			require.NoError(t, os.Unsetenv(name))
		}
	}
}

// noFiles keeps tests independent of any .env or config.yaml in the working directory.
var noFiles = Options{}

// TestLoadDefaults verifies that the Load function sets the expected default values
// when no environment variables are set.
func TestLoadDefaults(t *testing.T) {
	setupEnv(t, map[string]string{
		"EXCUSE_SERVER_PORT":          "",
		"EXCUSE_SERVER_LOG_LEVEL":     "",
		"EXCUSE_REPOSITORY_BACKEND":   "",
		"EXCUSE_REPOSITORY_EXCUSES":   "",
		"EXCUSE_LLM_GEMINI_API_KEY":   "",
		"EXCUSE_LLM_MODEL_NAME":       "",
		"EXCUSE_TRACING_ENABLED":      "",
		"EXCUSE_METRICS_ENABLED":      "",
		"EXCUSE_TRACING_SERVICE_NAME": "",
	})

	cfg, err := LoadWithOptions(noFiles)

	require.NoError(t, err, "LoadWithOptions() should not return an error with default values")
	require.NotNil(t, cfg)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, BackendPrepopulated, cfg.Repository.Backend)
	assert.Equal(t, DefaultExcuses, cfg.Repository.Excuses)
	assert.Len(t, cfg.Repository.Excuses, 10)
	assert.Equal(t, "gemini-2.0-flash", cfg.LLM.ModelName)
	assert.Empty(t, cfg.LLM.GeminiAPIKey)
	assert.False(t, cfg.Tracing.Enabled)
	assert.Equal(t, "excuse-api", cfg.Tracing.ServiceName)
	assert.True(t, cfg.Metrics.Enabled)
}

// TestLoadFromEnv verifies that the Load function correctly reads values from environment variables.
func TestLoadFromEnv(t *testing.T) {
	setupEnv(t, map[string]string{
		"EXCUSE_SERVER_PORT":        "9090",
		"EXCUSE_SERVER_LOG_LEVEL":   "debug",
		"EXCUSE_REPOSITORY_BACKEND": "agent",
		"EXCUSE_REPOSITORY_EXCUSES": "Sorry, busy | Can't, deploying|",
		"EXCUSE_LLM_GEMINI_API_KEY": "test-api-key",
		"EXCUSE_LLM_MODEL_NAME":     "gemini-test",
		"EXCUSE_METRICS_ENABLED":    "false",
	})

	cfg, err := LoadWithOptions(noFiles)

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, BackendAgent, cfg.Repository.Backend)
	assert.Equal(t, []string{"Sorry, busy", "Can't, deploying"}, cfg.Repository.Excuses,
		"excuses are split on pipes only, commas are kept")
	assert.Equal(t, "test-api-key", cfg.LLM.GeminiAPIKey)
	assert.Equal(t, "gemini-test", cfg.LLM.ModelName)
	assert.False(t, cfg.Metrics.Enabled)
}

// TestLoadFromFiles verifies dotenv and YAML sources, and that the environment wins.
func TestLoadFromFiles(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	configFile := filepath.Join(dir, "config.yaml")

	require.NoError(t, os.WriteFile(envFile, []byte("EXCUSE_LLM_GEMINI_API_KEY=from-dotenv\n"), 0o600))
	require.NoError(t, os.WriteFile(configFile, []byte(`
server:
  port: 7070
repository:
  backend: prepopulated
  excuses:
    - "X"
    - "Y"
    - "Z"
`), 0o600))

	setupEnv(t, map[string]string{
		"EXCUSE_SERVER_PORT":        "",
		"EXCUSE_REPOSITORY_EXCUSES": "",
		"EXCUSE_REPOSITORY_BACKEND": "",
		"EXCUSE_LLM_GEMINI_API_KEY": "",
		"EXCUSE_SERVER_LOG_LEVEL":   "warn",
	})
	t.Cleanup(func() { _ = os.Unsetenv("EXCUSE_LLM_GEMINI_API_KEY") })

	cfg, err := LoadWithOptions(Options{EnvFile: envFile, ConfigFile: configFile})

	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Server.LogLevel, "environment overrides the config file")
	assert.Equal(t, []string{"X", "Y", "Z"}, cfg.Repository.Excuses)
	assert.Equal(t, "from-dotenv", cfg.LLM.GeminiAPIKey)
}

// TestLoadMissingFilesIgnored verifies that absent .env and config files are not errors.
func TestLoadMissingFilesIgnored(t *testing.T) {
	dir := t.TempDir()
	setupEnv(t, map[string]string{"EXCUSE_SERVER_PORT": ""})

	cfg, err := LoadWithOptions(Options{
		EnvFile:    filepath.Join(dir, "missing.env"),
		ConfigFile: filepath.Join(dir, "missing.yaml"),
	})

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
}

// TestLoadValidationErrors verifies that the Load function correctly validates the configuration.
func TestLoadValidationErrors(t *testing.T) {
	testCases := []struct {
		name    string
		envVars map[string]string
	}{
		{
			name:    "Invalid port number",
			envVars: map[string]string{"EXCUSE_SERVER_PORT": "999999"},
		},
		{
			name:    "Invalid log level",
			envVars: map[string]string{"EXCUSE_SERVER_LOG_LEVEL": "invalid-level"},
		},
		{
			name:    "Unknown backend",
			envVars: map[string]string{"EXCUSE_REPOSITORY_BACKEND": "oracle"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			setupEnv(t, tc.envVars)

			cfg, err := LoadWithOptions(noFiles)

			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), "validation failed")
		})
	}
}

func TestValidateTracingEndpoint(t *testing.T) {
	cfg := &Config{
		Server:     ServerConfig{Port: 8080, LogLevel: "info"},
		Repository: RepositoryConfig{Backend: BackendPrepopulated},
		LLM:        LLMConfig{ModelName: "gemini-2.0-flash"},
		Tracing:    TracingConfig{Enabled: true},
	}
	assert.Error(t, Validate(cfg), "enabled tracing needs an endpoint")

	cfg.Tracing.OTLPEndpoint = "localhost:4317"
	assert.NoError(t, Validate(cfg))
}
