package app

import (
    "context"
    "errors"
    "sync"
    "time"

    "github.com/charmbracelet/log"
    "github.com/google/uuid"
)

// Errors exposed by the service layer.
var (
    ErrNotFound = errors.New("game not found")
)

// GameState is a point-in-time copy of one hosted game.
type GameState struct {
    ID      string
    View    View
    Created time.Time
    Updated time.Time
}

// FinishedGame describes a game that just reached a win or a draw.
type FinishedGame struct {
    GameID  string
    Outcome string
    Winner  string
    Line    []int
    Moves   int
    Board   string
}

// Archive records finished games.
type Archive interface {
    SaveFinishedGame(FinishedGame) error
}

type session struct {
    id      string
    ctrl    *Controller
    created time.Time
    updated time.Time
}

func (ss *session) state() GameState {
    return GameState{ID: ss.id, View: ss.ctrl.View(), Created: ss.created, Updated: ss.updated}
}

type subscriber struct {
    ch        chan []byte
    closeOnce sync.Once
}

func (s *subscriber) close() { s.closeOnce.Do(func() { close(s.ch) }) }

// Service hosts games, serializes intents per game and fans updates out
// to subscribers.
type Service struct {
    mu      sync.Mutex
    games   map[string]*session
    subs    map[string]map[*subscriber]struct{}
    render  func(GameState) []byte
    archive Archive
    logger  *log.Logger
}

func noRender(GameState) []byte { return nil }

// NewService creates a service with a default renderer (encodes nothing useful).
func NewService() *Service { return NewServiceWithRenderer(noRender) }

// NewServiceWithRenderer allows injecting a renderer for broadcast payloads.
func NewServiceWithRenderer(renderer func(GameState) []byte) *Service {
    if renderer == nil {
        renderer = noRender
    }
    return &Service{
        games:  make(map[string]*session),
        subs:   make(map[string]map[*subscriber]struct{}),
        render: renderer,
        logger: log.Default(),
    }
}

// SetRenderer replaces the broadcast renderer function.
func (s *Service) SetRenderer(renderer func(GameState) []byte) {
    s.mu.Lock()
    defer s.mu.Unlock()
    if renderer == nil {
        s.render = noRender
        return
    }
    s.render = renderer
}

// SetArchive installs the store finished games are recorded in. nil disables it.
func (s *Service) SetArchive(a Archive) {
    s.mu.Lock()
    defer s.mu.Unlock()
    s.archive = a
}

// SetLogger replaces the service logger.
func (s *Service) SetLogger(l *log.Logger) {
    if l == nil {
        return
    }
    s.mu.Lock()
    defer s.mu.Unlock()
    s.logger = l
}

// CreateGame creates and registers a new game.
func (s *Service) CreateGame() (*GameState, error) {
    s.mu.Lock()
    defer s.mu.Unlock()
    now := time.Now()
    ss := &session{id: uuid.NewString(), ctrl: NewController(), created: now, updated: now}
    s.games[ss.id] = ss
    s.logger.Debug("game created", "game", ss.id)
    st := ss.state()
    return &st, nil
}

// Get returns a copy of the game state if present.
func (s *Service) Get(id string) (*GameState, bool) {
    s.mu.Lock()
    defer s.mu.Unlock()
    ss, ok := s.games[id]
    if !ok {
        return nil, false
    }
    st := ss.state()
    return &st, true
}

// Sessions returns the number of hosted games.
func (s *Service) Sessions() int {
    s.mu.Lock()
    defer s.mu.Unlock()
    return len(s.games)
}

// Click plays the next symbol at cell index.
func (s *Service) Click(id string, index int) (*GameState, error) {
    return s.apply(id, "click", func(c *Controller) bool { return c.ClickCell(index) })
}

// Jump shows the board after move.
func (s *Service) Jump(id string, move int) (*GameState, error) {
    return s.apply(id, "jump", func(c *Controller) bool { return c.JumpTo(move) })
}

// ToggleSort flips the move list order.
func (s *Service) ToggleSort(id string) (*GameState, error) {
    return s.apply(id, "sort", func(c *Controller) bool { c.ToggleSort(); return true })
}

// Reset restarts the game from an empty board.
func (s *Service) Reset(id string) (*GameState, error) {
    return s.apply(id, "reset", func(c *Controller) bool { c.Reset(); return true })
}

// apply runs one intent under the lock. Ignored intents return the
// unchanged state without broadcasting.
func (s *Service) apply(id, intent string, fn func(*Controller) bool) (*GameState, error) {
    var payload []byte
    var finished *FinishedGame

    s.mu.Lock()
    ss, ok := s.games[id]
    if !ok {
        s.mu.Unlock()
        return nil, ErrNotFound
    }
    wasOver := ss.ctrl.Result().Over()
    if !fn(ss.ctrl) {
        st := ss.state()
        s.logger.Debug("intent ignored", "game", id, "intent", intent)
        s.mu.Unlock()
        return &st, nil
    }
    ss.updated = time.Now()
    if !wasOver && intent == "click" {
        if fg, ok := ss.ctrl.Finished(id); ok {
            finished = &fg
        }
    }

    // Fan out under the lock: unsub and Prune close channels only while
    // holding it. Sends never block.
    st := ss.state()
    payload = s.render(st)
    dropped := 0
    for sub := range s.subs[id] {
        select {
        case sub.ch <- payload:
        default:
            sub.close()
            delete(s.subs[id], sub)
            dropped++
        }
    }
    archive := s.archive
    logger := s.logger
    s.mu.Unlock()

    if dropped > 0 {
        logger.Debug("dropped slow subscribers", "game", id, "count", dropped)
    }
    if finished != nil {
        logger.Info("game finished", "game", id, "outcome", finished.Outcome, "winner", finished.Winner, "moves", finished.Moves)
        if archive != nil {
            if err := archive.SaveFinishedGame(*finished); err != nil {
                logger.Warn("could not archive game", "game", id, "error", err)
            }
        }
    }
    return &st, nil
}

// Subscribe registers a subscriber for a game. Returns a channel and an unsubscribe func.
// Unknown games yield a closed channel.
func (s *Service) Subscribe(ctx context.Context, id string) (<-chan []byte, func()) {
    s.mu.Lock()
    defer s.mu.Unlock()
    sub := &subscriber{ch: make(chan []byte, 1)}
    if _, ok := s.games[id]; !ok {
        sub.close()
        return sub.ch, func() {}
    }
    set := s.subs[id]
    if set == nil {
        set = make(map[*subscriber]struct{})
        s.subs[id] = set
    }
    set[sub] = struct{}{}

    unsubOnce := &sync.Once{}
    unsub := func() {
        unsubOnce.Do(func() {
            s.mu.Lock()
            if set, ok := s.subs[id]; ok {
                delete(set, sub)
            }
            s.mu.Unlock()
            sub.close()
        })
    }
    go func() {
        <-ctx.Done()
        unsub()
    }()
    return sub.ch, unsub
}

// Prune removes games idle for longer than ttl and closes their subscribers.
func (s *Service) Prune(ttl time.Duration) int {
    cutoff := time.Now().Add(-ttl)
    s.mu.Lock()
    defer s.mu.Unlock()
    n := 0
    for id, ss := range s.games {
        if ss.updated.After(cutoff) {
            continue
        }
        for sub := range s.subs[id] {
            sub.close()
        }
        delete(s.subs, id)
        delete(s.games, id)
        n++
    }
    if n > 0 {
        s.logger.Info("pruned idle games", "count", n)
    }
    return n
}
