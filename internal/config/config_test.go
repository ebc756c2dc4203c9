package config

import (
    "os"
    "path/filepath"
    "strings"
    "testing"
    "time"

    "github.com/charmbracelet/log"
    "gopkg.in/yaml.v3"
)

func TestDefaultIsValid(t *testing.T) {
    if err := Default().Validate(); err != nil {
        t.Fatalf("default config invalid: %v", err)
    }
}

func TestEmbeddedDefaultsMatchBuiltins(t *testing.T) {
    var cfg Config
    if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
        t.Fatalf("embedded defaults do not parse: %v", err)
    }
    if cfg != Default() {
        t.Fatalf("embedded defaults %+v differ from Default() %+v", cfg, Default())
    }
}

func TestLoadCustomPathOverridesSomeKeys(t *testing.T) {
    path := filepath.Join(t.TempDir(), "custom.yaml")
    data := "http:\n  addr: \":9999\"\n  heartbeat: 5s\nlog:\n  level: debug\n"
    if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
        t.Fatalf("write config: %v", err)
    }
    cfg, err := Load(path)
    if err != nil {
        t.Fatalf("Load() failed: %v", err)
    }
    if cfg.HTTP.Addr != ":9999" || cfg.HTTP.Heartbeat != 5*time.Second {
        t.Errorf("http overrides not applied: %+v", cfg.HTTP)
    }
    // untouched keys keep defaults
    if cfg.HTTP.SessionTTL != 2*time.Hour || cfg.SSH.Addr != ":23235" {
        t.Errorf("defaults lost: %+v %+v", cfg.HTTP, cfg.SSH)
    }
    if cfg.LogLevel() != log.DebugLevel {
        t.Errorf("expected debug level, got %v", cfg.LogLevel())
    }
}

func TestLoadMissingCustomPath(t *testing.T) {
    if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
        t.Fatalf("expected error for missing config file")
    }
}

func TestLoadRejectsInvalidValues(t *testing.T) {
    path := filepath.Join(t.TempDir(), "bad.yaml")
    if err := os.WriteFile(path, []byte("log:\n  level: chatty\n"), 0o600); err != nil {
        t.Fatalf("write config: %v", err)
    }
    _, err := Load(path)
    if err == nil || !strings.Contains(err.Error(), "log.level") {
        t.Fatalf("expected log.level error, got %v", err)
    }
}

func TestValidate(t *testing.T) {
    cases := map[string]func(*Config){
        "http.addr":    func(c *Config) { c.HTTP.Addr = "" },
        "heartbeat":    func(c *Config) { c.HTTP.Heartbeat = 0 },
        "session_ttl":  func(c *Config) { c.HTTP.SessionTTL = -time.Second },
        "ssh.addr":     func(c *Config) { c.SSH.Addr = "" },
        "storage.path": func(c *Config) { c.Storage.Path = "" },
    }
    for name, mutate := range cases {
        cfg := Default()
        mutate(&cfg)
        if err := cfg.Validate(); err == nil {
            t.Errorf("%s: expected validation error", name)
        }
    }
    cfg := Default()
    cfg.Storage.Enabled = false
    cfg.Storage.Path = ""
    if err := cfg.Validate(); err != nil {
        t.Errorf("disabled storage needs no path: %v", err)
    }
}

func TestLogLevelFallback(t *testing.T) {
    cfg := Default()
    cfg.Log.Level = "nonsense"
    if cfg.LogLevel() != log.InfoLevel {
        t.Errorf("expected info fallback, got %v", cfg.LogLevel())
    }
}
