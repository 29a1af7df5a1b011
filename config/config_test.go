package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetEnv clears key for the duration of the test.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func writeEnvFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("reads credentials from the process environment", func(t *testing.T) {
		t.Setenv(URLEnvVar, "https://demo.supabase.co")
		t.Setenv(ServiceRoleKeyEnvVar, "service-key")

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "https://demo.supabase.co", cfg.SupabaseURL)
		assert.Equal(t, "service-key", cfg.ServiceRoleKey)
		assert.NoError(t, cfg.Validate())
	})

	t.Run("reads credentials from the env file", func(t *testing.T) {
		unsetEnv(t, URLEnvVar)
		unsetEnv(t, ServiceRoleKeyEnvVar)
		path := writeEnvFile(t, "SUPABASE_URL=https://file.supabase.co\nSUPABASE_SERVICE_ROLE_KEY=file-key\n")

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "https://file.supabase.co", cfg.SupabaseURL)
		assert.Equal(t, "file-key", cfg.ServiceRoleKey)
	})

	t.Run("process environment wins over the env file", func(t *testing.T) {
		t.Setenv(URLEnvVar, "https://env.supabase.co")
		unsetEnv(t, ServiceRoleKeyEnvVar)
		path := writeEnvFile(t, "SUPABASE_URL=https://file.supabase.co\nSUPABASE_SERVICE_ROLE_KEY=file-key\n")

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "https://env.supabase.co", cfg.SupabaseURL)
		assert.Equal(t, "file-key", cfg.ServiceRoleKey)
	})

	t.Run("missing env file is ignored", func(t *testing.T) {
		unsetEnv(t, URLEnvVar)
		unsetEnv(t, ServiceRoleKeyEnvVar)

		cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.env"))
		require.NoError(t, err)
		assert.Empty(t, cfg.SupabaseURL)
		assert.ErrorIs(t, cfg.Validate(), ErrMissingCredentials)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  *Config
		ok   bool
	}{
		{"complete", &Config{SupabaseURL: "https://x.supabase.co", ServiceRoleKey: "k"}, true},
		{"missing url", &Config{ServiceRoleKey: "k"}, false},
		{"missing key", &Config{SupabaseURL: "https://x.supabase.co"}, false},
		{"nil config", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrMissingCredentials)
		})
	}
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger("debug")
	require.NoError(t, err)
	assert.NotNil(t, logger)

	_, err = NewLogger("loud")
	assert.Error(t, err)
}
