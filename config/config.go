package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	URLEnvVar            = "SUPABASE_URL"
	ServiceRoleKeyEnvVar = "SUPABASE_SERVICE_ROLE_KEY" //nolint:gosec
	DefaultEnvFile       = ".env"
)

var ErrMissingCredentials = errors.New("missing " + URLEnvVar + " or " + ServiceRoleKeyEnvVar)

// Config holds the credentials shared by the seeding tools.
type Config struct {
	SupabaseURL    string
	ServiceRoleKey string
}

// Load reads envFile into the process environment (values already set in
// the environment win) and resolves the Supabase credentials. A missing
// envFile is not an error.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	v := viper.New()
	if err := v.BindEnv("url", URLEnvVar); err != nil {
		return nil, err
	}
	if err := v.BindEnv("service_role_key", ServiceRoleKeyEnvVar); err != nil {
		return nil, err
	}

	return &Config{
		SupabaseURL:    v.GetString("url"),
		ServiceRoleKey: v.GetString("service_role_key"),
	}, nil
}

// Validate returns ErrMissingCredentials when either credential is empty.
func (c *Config) Validate() error {
	if c == nil || c.SupabaseURL == "" || c.ServiceRoleKey == "" {
		return ErrMissingCredentials
	}
	return nil
}
