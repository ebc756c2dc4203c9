package web

import (
    "encoding/json"
    "io"
    "net/http"
    "strconv"
    "time"

    "github.com/charmbracelet/log"
    "github.com/go-chi/chi/v5"

    "github.com/jaminalder/tictactoe-history/internal/app"
    "github.com/jaminalder/tictactoe-history/internal/storage"
)

// ResultLister reads the archive of finished games.
type ResultLister interface {
    RecentResults(limit int) ([]storage.Result, error)
    Stats() (storage.Stats, error)
}

type handlers struct {
    svc       *app.Service
    tpl       *templates
    results   ResultLister
    logger    *log.Logger
    heartbeat time.Duration
}

func (h *handlers) writeBoard(w http.ResponseWriter, gs *app.GameState) {
    w.Header().Set("Content-Type", "text/html; charset=utf-8")
    _, _ = w.Write(h.tpl.renderGameState(*gs))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
    w.Header().Set("Content-Type", "application/json")
    w.WriteHeader(status)
    _ = json.NewEncoder(w).Encode(v)
}

func (h *handlers) index(w http.ResponseWriter, r *http.Request) {
    w.Header().Set("Content-Type", "text/html; charset=utf-8")
    w.WriteHeader(http.StatusOK)
    _, _ = w.Write(renderTemplate(h.tpl.index, "", nil))
}

func (h *handlers) create(w http.ResponseWriter, r *http.Request) {
    gs, err := h.svc.CreateGame()
    if err != nil {
        http.Error(w, "failed to create", http.StatusInternalServerError)
        return
    }
    http.Redirect(w, r, "/game/"+gs.ID, http.StatusSeeOther)
}

func (h *handlers) view(w http.ResponseWriter, r *http.Request) {
    gs, ok := h.svc.Get(chi.URLParam(r, "id"))
    if !ok {
        http.NotFound(w, r)
        return
    }
    w.Header().Set("Content-Type", "text/html; charset=utf-8")
    w.WriteHeader(http.StatusOK)
    _, _ = w.Write(renderTemplate(h.tpl.game, "", boardData{ID: gs.ID, View: gs.View}))
}

// intent runs fn and answers with the board fragment. A form value that
// does not parse leaves the game untouched.
func (h *handlers) intent(w http.ResponseWriter, r *http.Request, field string, fn func(id string, n int) (*app.GameState, error)) {
    id := chi.URLParam(r, "id")
    n := 0
    if field != "" {
        _ = r.ParseForm()
        v, err := strconv.Atoi(r.Form.Get(field))
        if err != nil {
            gs, ok := h.svc.Get(id)
            if !ok {
                http.NotFound(w, r)
                return
            }
            h.writeBoard(w, gs)
            return
        }
        n = v
    }
    gs, err := fn(id, n)
    if err != nil {
        http.NotFound(w, r)
        return
    }
    h.writeBoard(w, gs)
}

func (h *handlers) click(w http.ResponseWriter, r *http.Request) {
    h.intent(w, r, "i", h.svc.Click)
}

func (h *handlers) jump(w http.ResponseWriter, r *http.Request) {
    h.intent(w, r, "move", h.svc.Jump)
}

func (h *handlers) sort(w http.ResponseWriter, r *http.Request) {
    h.intent(w, r, "", func(id string, _ int) (*app.GameState, error) { return h.svc.ToggleSort(id) })
}

func (h *handlers) reset(w http.ResponseWriter, r *http.Request) {
    h.intent(w, r, "", func(id string, _ int) (*app.GameState, error) { return h.svc.Reset(id) })
}

func (h *handlers) state(w http.ResponseWriter, r *http.Request) {
    gs, ok := h.svc.Get(chi.URLParam(r, "id"))
    if !ok {
        http.NotFound(w, r)
        return
    }
    writeJSON(w, http.StatusOK, gs.View)
}

func (h *handlers) listResults(w http.ResponseWriter, r *http.Request) {
    if h.results == nil {
        writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "results archive disabled"})
        return
    }
    limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
    if err != nil || limit <= 0 {
        limit = 20
    }
    results, err := h.results.RecentResults(limit)
    if err != nil {
        h.logger.Error("could not list results", "error", err)
        writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "could not list results"})
        return
    }
    stats, err := h.results.Stats()
    if err != nil {
        h.logger.Error("could not read stats", "error", err)
        writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "could not read stats"})
        return
    }
    writeJSON(w, http.StatusOK, resultsResponse(results, stats))
}

type resultDTO struct {
    GameID    string    `json:"game_id"`
    Outcome   string    `json:"outcome"`
    Winner    string    `json:"winner,omitempty"`
    Line      []int     `json:"line,omitempty"`
    Moves     int       `json:"moves"`
    Board     string    `json:"board"`
    CreatedAt time.Time `json:"created_at"`
}

type statsDTO struct {
    Games int `json:"games"`
    XWins int `json:"x_wins"`
    OWins int `json:"o_wins"`
    Draws int `json:"draws"`
}

func resultsResponse(results []storage.Result, st storage.Stats) any {
    out := make([]resultDTO, 0, len(results))
    for _, r := range results {
        out = append(out, resultDTO{
            GameID:    r.GameID,
            Outcome:   r.Outcome,
            Winner:    r.Winner,
            Line:      r.Line,
            Moves:     r.Moves,
            Board:     r.Board,
            CreatedAt: r.CreatedAt,
        })
    }
    return struct {
        Stats   statsDTO    `json:"stats"`
        Results []resultDTO `json:"results"`
    }{
        Stats:   statsDTO{Games: st.Games, XWins: st.XWins, OWins: st.OWins, Draws: st.Draws},
        Results: out,
    }
}

func (h *handlers) events(w http.ResponseWriter, r *http.Request) {
    id := chi.URLParam(r, "id")
    if _, ok := h.svc.Get(id); !ok {
        http.NotFound(w, r)
        return
    }
    w.Header().Set("Content-Type", "text/event-stream")
    w.Header().Set("Cache-Control", "no-cache")
    w.Header().Set("X-Accel-Buffering", "no")
    // In tests or non-EventSource requests, just acknowledge headers and return
    if r.Header.Get("Accept") != "text/event-stream" {
        w.WriteHeader(http.StatusOK)
        return
    }
    flusher, ok := w.(http.Flusher)
    if !ok {
        w.WriteHeader(http.StatusOK)
        return
    }
    ctx := r.Context()
    ch, unsub := h.svc.Subscribe(ctx, id)
    defer unsub()
    ticker := time.NewTicker(h.heartbeat)
    defer ticker.Stop()
    // Initial flush of headers
    flusher.Flush()
    for {
        select {
        case <-ctx.Done():
            return
        case <-ticker.C:
            _, _ = io.WriteString(w, ": ping\n\n")
            flusher.Flush()
        case b, ok := <-ch:
            if !ok {
                return
            }
            _, _ = io.WriteString(w, "event: board\n")
            _, _ = io.WriteString(w, sseData(b))
            flusher.Flush()
        }
    }
}
