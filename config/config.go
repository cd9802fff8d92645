package config

import (
	"encoding/json"
	"os"
)

type Config struct {
	Server  ServerConfig  `json:"server"`
	JWT     JWTConfig     `json:"jwt"`
	Source  SourceConfig  `json:"source"`
	Auth    AuthConfig    `json:"auth"`
	Refresh RefreshConfig `json:"refresh"`
}

type ServerConfig struct {
	Port string `json:"port"`
}

type JWTConfig struct {
	Secret          string `json:"secret"`
	ExpirationHours int    `json:"expiration_hours"`
}

// SourceConfig selects the upstream data source. Mode "mock" serves
// seeded fixtures with a simulated delay and failure rate; mode "http"
// talks to a real backend at BaseURL.
type SourceConfig struct {
	Mode            string  `json:"mode"`
	BaseURL         string  `json:"base_url"`
	TimeoutSeconds  int     `json:"timeout_seconds"`
	MockDelayMillis int     `json:"mock_delay_millis"`
	MockFailureRate float64 `json:"mock_failure_rate"`
}

// AuthConfig controls the mocked login flow and where the session
// snapshot is persisted.
type AuthConfig struct {
	StorageDir       string `json:"storage_dir"`
	StorageKey       string `json:"storage_key"`
	LoginDelayMillis int    `json:"login_delay_millis"`
}

type RefreshConfig struct {
	Enabled  bool   `json:"enabled"`
	Schedule string `json:"schedule"` // cron spec, e.g. "@every 5m"
}

func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var config Config
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&config); err != nil {
		return nil, err
	}

	config.applyEnvOverrides()
	return &config, nil
}

// applyEnvOverrides lets deployment environments override the file values
// without editing it. A .env file loaded at startup feeds these too.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("PORT"); v != "" {
		c.Server.Port = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		c.JWT.Secret = v
	}
	if v := os.Getenv("SOURCE_MODE"); v != "" {
		c.Source.Mode = v
	}
	if v := os.Getenv("UPSTREAM_BASE_URL"); v != "" {
		c.Source.BaseURL = v
	}
	if v := os.Getenv("AUTH_STORAGE_DIR"); v != "" {
		c.Auth.StorageDir = v
	}
}
