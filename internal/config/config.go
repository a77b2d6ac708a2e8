package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config defines server configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	DB     DBConfig     `yaml:"db"`
	Auth   AuthConfig   `yaml:"auth"`
	MCP    MCPConfig    `yaml:"mcp"`
	Log    LogConfig    `yaml:"log"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type DBConfig struct {
	Path string `yaml:"path"`
}

type AuthConfig struct {
	Secret string `yaml:"secret"`
}

type MCPConfig struct {
	// Transport selects how the MCP server is exposed: "http" mounts
	// it on the API server, "stdio" serves a single local client and
	// disables the HTTP listener.
	Transport     string `yaml:"transport"`
	AuthEnabled   bool   `yaml:"auth_enabled"`
	DefaultUserID string `yaml:"default_user_id"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Load reads configuration from an optional YAML file and environment
// variables. Environment variables win.
func Load() (Config, error) {
	cfg := Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		DB: DBConfig{
			Path: "inkprov.db",
		},
		Auth: AuthConfig{
			Secret: "dev-secret-change-me",
		},
		MCP: MCPConfig{
			Transport:   "http",
			AuthEnabled: true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}

	if path := os.Getenv("INKPROV_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if host := os.Getenv("INKPROV_SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if portStr := os.Getenv("INKPROV_SERVER_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid INKPROV_SERVER_PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if dbPath := os.Getenv("INKPROV_DB_PATH"); dbPath != "" {
		cfg.DB.Path = dbPath
	}
	if secret := os.Getenv("INKPROV_AUTH_SECRET"); secret != "" {
		cfg.Auth.Secret = secret
	}
	if transport := os.Getenv("INKPROV_MCP_TRANSPORT"); transport != "" {
		cfg.MCP.Transport = transport
	}
	if enabled := os.Getenv("INKPROV_MCP_AUTH_ENABLED"); enabled != "" {
		parsed, err := strconv.ParseBool(enabled)
		if err != nil {
			return Config{}, fmt.Errorf("invalid INKPROV_MCP_AUTH_ENABLED: %w", err)
		}
		cfg.MCP.AuthEnabled = parsed
	}
	if userID := os.Getenv("INKPROV_MCP_DEFAULT_USER_ID"); userID != "" {
		cfg.MCP.DefaultUserID = userID
	}
	if level := os.Getenv("INKPROV_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}

	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
