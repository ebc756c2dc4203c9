// Package config loads the YAML configuration shared by the web server,
// the terminal UI and the SSH server.
package config

import (
    "fmt"
    "time"

    "github.com/charmbracelet/log"
)

// Config is the full application configuration.
type Config struct {
    HTTP    HTTPConfig    `yaml:"http"`
    SSH     SSHConfig     `yaml:"ssh"`
    Storage StorageConfig `yaml:"storage"`
    Log     LogConfig     `yaml:"log"`
}

// HTTPConfig configures the web server.
type HTTPConfig struct {
    Addr       string        `yaml:"addr"`
    Heartbeat  time.Duration `yaml:"heartbeat"`
    SessionTTL time.Duration `yaml:"session_ttl"`
}

// SSHConfig configures the SSH server.
type SSHConfig struct {
    Addr        string        `yaml:"addr"`
    HostKey     string        `yaml:"host_key"`
    IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// StorageConfig configures the results archive.
type StorageConfig struct {
    Enabled bool   `yaml:"enabled"`
    Path    string `yaml:"path"`
}

// LogConfig configures logging.
type LogConfig struct {
    Level string `yaml:"level"`
}

// Default returns the built-in configuration.
func Default() Config {
    return Config{
        HTTP: HTTPConfig{
            Addr:       ":8080",
            Heartbeat:  15 * time.Second,
            SessionTTL: 2 * time.Hour,
        },
        SSH: SSHConfig{
            Addr:        ":23235",
            IdleTimeout: 30 * time.Minute,
        },
        Storage: StorageConfig{
            Enabled: true,
            Path:    "~/.tictactoe/results.db",
        },
        Log: LogConfig{Level: "info"},
    }
}

// Validate reports settings that cannot work.
func (c Config) Validate() error {
    if c.HTTP.Addr == "" {
        return fmt.Errorf("config: http.addr is required")
    }
    if c.HTTP.Heartbeat <= 0 {
        return fmt.Errorf("config: http.heartbeat must be positive, got %s", c.HTTP.Heartbeat)
    }
    if c.HTTP.SessionTTL <= 0 {
        return fmt.Errorf("config: http.session_ttl must be positive, got %s", c.HTTP.SessionTTL)
    }
    if c.SSH.Addr == "" {
        return fmt.Errorf("config: ssh.addr is required")
    }
    if c.Storage.Enabled && c.Storage.Path == "" {
        return fmt.Errorf("config: storage.path is required when storage is enabled")
    }
    if _, err := log.ParseLevel(c.Log.Level); err != nil {
        return fmt.Errorf("config: log.level: %w", err)
    }
    return nil
}

// LogLevel returns the parsed log level, info when unset or invalid.
func (c Config) LogLevel() log.Level {
    lvl, err := log.ParseLevel(c.Log.Level)
    if err != nil {
        return log.InfoLevel
    }
    return lvl
}
