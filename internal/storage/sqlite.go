// Package storage keeps an archive of finished games in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
    "database/sql"
    "fmt"
    "os"
    "path/filepath"
    "strconv"
    "strings"
    "time"

    _ "modernc.org/sqlite" // Pure Go SQLite driver

    "github.com/jaminalder/tictactoe-history/internal/app"
)

// Store manages the SQLite database connection.
type Store struct {
    db *sql.DB
}

// Result is one archived game.
type Result struct {
    ID        int64
    GameID    string
    Outcome   string // "won" or "draw"
    Winner    string // "X", "O" or empty on draw
    Line      []int
    Moves     int
    Board     string
    CreatedAt time.Time
}

// Stats aggregates archived outcomes.
type Stats struct {
    Games int
    XWins int
    OWins int
    Draws int
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
    if dbPath != "" && dbPath[0] == '~' {
        home, err := os.UserHomeDir()
        if err != nil {
            return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
        }
        dbPath = filepath.Join(home, dbPath[1:])
    }

    dir := filepath.Dir(dbPath)
    if err := os.MkdirAll(dir, 0o755); err != nil {
        return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
    }

    db, err := sql.Open("sqlite", dbPath)
    if err != nil {
        return nil, fmt.Errorf("storage: cannot open database: %w", err)
    }
    if err := db.Ping(); err != nil {
        db.Close()
        return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
    }

    store := &Store{db: db}
    if err := store.migrate(); err != nil {
        db.Close()
        return nil, fmt.Errorf("storage: migration failed: %w", err)
    }
    return store, nil
}

func (s *Store) migrate() error {
    schema := `
        CREATE TABLE IF NOT EXISTS results (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            game_id TEXT NOT NULL,
            outcome TEXT NOT NULL,
            winner TEXT NOT NULL DEFAULT '',
            line TEXT NOT NULL DEFAULT '',
            moves INTEGER NOT NULL,
            board TEXT NOT NULL,
            created_at DATETIME DEFAULT CURRENT_TIMESTAMP
        );
        CREATE INDEX IF NOT EXISTS idx_results_game_id ON results(game_id);
        CREATE INDEX IF NOT EXISTS idx_results_created ON results(created_at DESC);
    `
    _, err := s.db.Exec(schema)
    return err
}

// Close closes the database connection.
func (s *Store) Close() error {
    if s.db != nil {
        return s.db.Close()
    }
    return nil
}

// SaveResult records a finished game and returns its row ID.
func (s *Store) SaveResult(r Result) (int64, error) {
    res, err := s.db.Exec(
        `INSERT INTO results (game_id, outcome, winner, line, moves, board)
         VALUES (?, ?, ?, ?, ?, ?)`,
        r.GameID, r.Outcome, r.Winner, encodeLine(r.Line), r.Moves, r.Board,
    )
    if err != nil {
        return 0, fmt.Errorf("storage: cannot save result: %w", err)
    }
    id, err := res.LastInsertId()
    if err != nil {
        return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
    }
    return id, nil
}

// SaveFinishedGame implements app.Archive.
func (s *Store) SaveFinishedGame(g app.FinishedGame) error {
    _, err := s.SaveResult(Result{
        GameID:  g.GameID,
        Outcome: g.Outcome,
        Winner:  g.Winner,
        Line:    g.Line,
        Moves:   g.Moves,
        Board:   g.Board,
    })
    return err
}

var _ app.Archive = (*Store)(nil)

// RecentResults returns the newest results first.
func (s *Store) RecentResults(limit int) ([]Result, error) {
    if limit <= 0 {
        limit = 20
    }
    rows, err := s.db.Query(
        `SELECT id, game_id, outcome, winner, line, moves, board, created_at
         FROM results
         ORDER BY created_at DESC, id DESC
         LIMIT ?`,
        limit,
    )
    if err != nil {
        return nil, fmt.Errorf("storage: cannot query results: %w", err)
    }
    defer rows.Close()

    var out []Result
    for rows.Next() {
        var r Result
        var line string
        var createdAt any
        if err := rows.Scan(&r.ID, &r.GameID, &r.Outcome, &r.Winner, &line, &r.Moves, &r.Board, &createdAt); err != nil {
            return nil, fmt.Errorf("storage: cannot scan row: %w", err)
        }
        r.Line = decodeLine(line)
        r.CreatedAt = parseTime(createdAt)
        out = append(out, r)
    }
    if err := rows.Err(); err != nil {
        return nil, fmt.Errorf("storage: row iteration error: %w", err)
    }
    return out, nil
}

// Stats counts archived outcomes.
func (s *Store) Stats() (Stats, error) {
    var st Stats
    err := s.db.QueryRow(
        `SELECT COUNT(*),
                COALESCE(SUM(CASE WHEN winner = 'X' THEN 1 ELSE 0 END), 0),
                COALESCE(SUM(CASE WHEN winner = 'O' THEN 1 ELSE 0 END), 0),
                COALESCE(SUM(CASE WHEN outcome = 'draw' THEN 1 ELSE 0 END), 0)
         FROM results`,
    ).Scan(&st.Games, &st.XWins, &st.OWins, &st.Draws)
    if err != nil {
        return Stats{}, fmt.Errorf("storage: cannot query stats: %w", err)
    }
    return st, nil
}

// the datetime comes back as time.Time or string depending on the driver path
func parseTime(v any) time.Time {
    switch t := v.(type) {
    case time.Time:
        return t
    case string:
        if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
            return parsed
        }
    }
    return time.Time{}
}

func encodeLine(line []int) string {
    parts := make([]string, len(line))
    for i, n := range line {
        parts[i] = strconv.Itoa(n)
    }
    return strings.Join(parts, ",")
}

func decodeLine(s string) []int {
    if s == "" {
        return nil
    }
    var out []int
    for _, p := range strings.Split(s, ",") {
        n, err := strconv.Atoi(p)
        if err != nil {
            return nil
        }
        out = append(out, n)
    }
    return out
}
