package main

import (
    "fmt"
    "strings"

    "github.com/spf13/cobra"

    "github.com/jaminalder/tictactoe-history/internal/storage"
)

var flagLimit int

var resultsCmd = &cobra.Command{
    Use:   "results",
    Short: "Show archived results",
    Long: `Display the most recent finished games and the win/draw totals.

Examples:
  tictactoe results
  tictactoe results --limit 25 --db ./results.db`,
    RunE: runResults,
}

func init() {
    resultsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of games to show")
}

func runResults(cmd *cobra.Command, _ []string) error {
    cfg, err := loadConfig()
    if err != nil {
        return err
    }
    store, err := storage.Open(cfg.Storage.Path)
    if err != nil {
        return fmt.Errorf("opening results database: %w", err)
    }
    defer store.Close()

    results, err := store.RecentResults(flagLimit)
    if err != nil {
        return fmt.Errorf("retrieving results: %w", err)
    }
    stats, err := store.Stats()
    if err != nil {
        return fmt.Errorf("retrieving stats: %w", err)
    }

    out := cmd.OutOrStdout()
    if len(results) == 0 {
        fmt.Fprintln(out, "No games recorded yet.")
        fmt.Fprintln(out)
        fmt.Fprintln(out, "Play 'tictactoe play' to finish the first one!")
        return nil
    }

    fmt.Fprintf(out, "  %-16s  %-6s  %-5s  %-9s  %s\n", "Date", "Result", "Moves", "Line", "Board")
    fmt.Fprintf(out, "  %-16s  %-6s  %-5s  %-9s  %s\n", "----", "------", "-----", "----", "-----")
    for _, r := range results {
        outcome := "draw"
        if r.Outcome == "won" {
            outcome = r.Winner + " won"
        }
        fmt.Fprintf(out, "  %-16s  %-6s  %-5d  %-9s  %s\n",
            r.CreatedAt.Format("2006-01-02 15:04"), outcome, r.Moves, formatLine(r.Line), r.Board)
    }

    fmt.Fprintln(out)
    fmt.Fprintf(out, "Games: %d  X wins: %d  O wins: %d  Draws: %d\n", stats.Games, stats.XWins, stats.OWins, stats.Draws)
    return nil
}

func formatLine(line []int) string {
    if len(line) == 0 {
        return "-"
    }
    parts := make([]string, len(line))
    for i, c := range line {
        parts[i] = fmt.Sprint(c)
    }
    return strings.Join(parts, ",")
}
