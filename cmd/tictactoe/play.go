package main

import (
    "errors"
    "fmt"

    "github.com/spf13/cobra"

    "github.com/jaminalder/tictactoe-history/internal/tui"
)

var playCmd = &cobra.Command{
    Use:   "play",
    Short: "Play in this terminal",
    Long: `Start a two-player game in this terminal.

Controls:
  Arrows/hjkl      - Move the cursor
  Enter/Space      - Play the cell under the cursor
  1-9              - Play a cell directly
  [ / ]            - Previous / next move
  g / G            - Game start / latest move
  s                - Sort the move list
  n                - New game
  ?                - Show all keys
  q/Ctrl+C         - Quit

Finished games are archived unless --no-store is given.`,
    RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
    cfg, err := loadConfig()
    if err != nil {
        return err
    }
    logger := newLogger(cfg, "tictactoe")

    opts := tui.Options{Logger: logger}
    if store := openStore(cfg, logger); store != nil {
        defer store.Close()
        opts.Archive = store
    }

    if err := tui.Run(opts); err != nil {
        if errors.Is(err, tui.ErrNotATerminal) {
            return fmt.Errorf("play needs an interactive terminal; try 'tictactoe serve' instead")
        }
        return err
    }
    return nil
}
