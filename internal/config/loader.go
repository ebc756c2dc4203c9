package config

import (
    _ "embed"
    "fmt"
    "os"
    "path/filepath"

    "gopkg.in/yaml.v3"
)

//go:embed defaults/tictactoe.yaml
var defaultYAML []byte

// Load reads the configuration.
// Search order: customPath -> ~/.tictactoe/config.yaml -> ./configs/tictactoe.yaml -> embedded default.
// Keys missing from a file keep their default values.
func Load(customPath string) (Config, error) {
    cfg := Default()

    // Try custom path first
    if customPath != "" {
        data, err := os.ReadFile(customPath)
        if err != nil {
            return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
        }
        if err := yaml.Unmarshal(data, &cfg); err != nil {
            return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
        }
        return cfg, cfg.Validate()
    }

    // Try user config directory
    if p := userConfigPath("config.yaml"); p != "" {
        if data, err := os.ReadFile(p); err == nil {
            if err := yaml.Unmarshal(data, &cfg); err == nil {
                return cfg, cfg.Validate()
            }
            cfg = Default()
        }
    }

    // Try local configs directory
    if data, err := os.ReadFile(filepath.Join("configs", "tictactoe.yaml")); err == nil {
        if err := yaml.Unmarshal(data, &cfg); err == nil {
            return cfg, cfg.Validate()
        }
        cfg = Default()
    }

    // Use embedded default YAML
    if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
        return Default(), nil // Fallback to hardcoded if embed fails
    }
    return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
    home, err := os.UserHomeDir()
    if err != nil {
        return ""
    }
    return filepath.Join(home, ".tictactoe", filename)
}
