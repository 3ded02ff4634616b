package env

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"mathmcp/internal/utils"
)

type Config struct {
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
	Audit  AuditConfig  `yaml:"audit"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type AuditConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// DefaultConfig mirrors the deployment contract: bind 0.0.0.0:8000.
func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{Host: "0.0.0.0", Port: 8000},
		Log:    LogConfig{Level: "info"},
		Audit:  AuditConfig{Enabled: true, Path: utils.AuditLogPath},
	}
}

// LoadConfig reads the YAML config and applies environment overrides. A
// missing file is not an error; defaults apply.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	b, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return cfg, err
		}
	} else if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("config yaml broken: %w", err)
	}

	applyEnvOverrides(&cfg)

	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return cfg, fmt.Errorf("invalid server port: %d", cfg.Server.Port)
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("MATHMCP_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("MATHMCP_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("MATHMCP_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("MATHMCP_AUDIT_PATH"); v != "" {
		cfg.Audit.Path = v
	}
}
