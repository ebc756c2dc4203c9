// tictactoe plays tic-tac-toe with a browsable move history.
//
// Usage:
//
//	tictactoe serve      - Host games in the browser (htmx, SSE, websocket)
//	tictactoe play       - Play in this terminal
//	tictactoe ssh        - Serve the terminal game over SSH
//	tictactoe results    - Show archived results
//
// Global flags:
//
//	--config <path>      - Config file (default: search ~/.tictactoe, ./configs, built-in)
//	--db <path>          - Results database, overrides storage.path
//	--log-level <level>  - debug, info, warn or error, overrides log.level
package main

import (
    "fmt"
    "os"

    "github.com/charmbracelet/log"
    "github.com/spf13/cobra"

    "github.com/jaminalder/tictactoe-history/internal/config"
    "github.com/jaminalder/tictactoe-history/internal/storage"
)

var (
    // Global flags
    flagConfig   string
    flagDBPath   string
    flagLogLevel string
    flagNoStore  bool
)

func main() {
    if err := rootCmd.Execute(); err != nil {
        fmt.Fprintln(os.Stderr, err)
        os.Exit(1)
    }
}

var rootCmd = &cobra.Command{
    Use:   "tictactoe",
    Short: "Tic-tac-toe with time travel",
    Long: `Tic-tac-toe for two players at one board. Every move is kept, so you
can jump back to any earlier position and play on from there.

Available commands:
  serve    - Host games in the browser
  play     - Play in this terminal
  ssh      - Serve the terminal game over SSH
  results  - Show archived results

Examples:
  tictactoe serve --addr :9000
  tictactoe play
  tictactoe ssh --host-key ./host_key
  tictactoe results --limit 20`,
    SilenceUsage: true,
}

func init() {
    rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
    rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to results database")
    rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (debug, info, warn, error)")
    rootCmd.PersistentFlags().BoolVar(&flagNoStore, "no-store", false, "Do not archive finished games")

    rootCmd.AddCommand(serveCmd)
    rootCmd.AddCommand(playCmd)
    rootCmd.AddCommand(sshCmd)
    rootCmd.AddCommand(resultsCmd)
}

// loadConfig reads the config and applies the global flag overrides.
func loadConfig() (config.Config, error) {
    cfg, err := config.Load(flagConfig)
    if err != nil {
        return cfg, err
    }
    if flagDBPath != "" {
        cfg.Storage.Path = flagDBPath
    }
    if flagNoStore {
        cfg.Storage.Enabled = false
    }
    if flagLogLevel != "" {
        cfg.Log.Level = flagLogLevel
    }
    return cfg, cfg.Validate()
}

func newLogger(cfg config.Config, prefix string) *log.Logger {
    return log.NewWithOptions(os.Stderr, log.Options{
        ReportTimestamp: true,
        Prefix:          prefix,
        Level:           cfg.LogLevel(),
    })
}

// openStore opens the results archive. A store that cannot be opened is
// logged and the caller continues without one.
func openStore(cfg config.Config, logger *log.Logger) *storage.Store {
    if !cfg.Storage.Enabled {
        return nil
    }
    store, err := storage.Open(cfg.Storage.Path)
    if err != nil {
        logger.Warn("could not open results database", "path", cfg.Storage.Path, "error", err)
        return nil
    }
    return store
}
