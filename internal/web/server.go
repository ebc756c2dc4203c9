package web

import (
    "net/http"
    "time"

    "github.com/charmbracelet/log"
    "github.com/go-chi/chi/v5"
    "github.com/go-chi/chi/v5/middleware"

    "github.com/jaminalder/tictactoe-history/internal/app"
)

// Options tunes the server. Zero values pick defaults.
type Options struct {
    Results   ResultLister
    Logger    *log.Logger
    Heartbeat time.Duration
}

// NewServer wires routes and returns an http.Handler.
func NewServer(s *app.Service) http.Handler { return NewServerWithOptions(s, Options{}) }

// NewServerWithOptions wires routes and installs the board fragment as the
// service's broadcast renderer.
func NewServerWithOptions(s *app.Service, opts Options) http.Handler {
    if opts.Logger == nil {
        opts.Logger = log.Default()
    }
    if opts.Heartbeat <= 0 {
        opts.Heartbeat = 15 * time.Second
    }
    h := &handlers{
        svc:       s,
        tpl:       loadTemplates(),
        results:   opts.Results,
        logger:    opts.Logger,
        heartbeat: opts.Heartbeat,
    }
    s.SetRenderer(h.tpl.renderGameState)

    r := chi.NewRouter()
    r.Use(middleware.RequestID)
    r.Use(middleware.RealIP)
    r.Use(requestLogger(opts.Logger))
    r.Use(middleware.Recoverer)

    r.Get("/", h.index)
    r.Get("/results", h.listResults)
    r.Post("/game", h.create)
    r.Route("/game/{id}", func(r chi.Router) {
        r.Get("/", h.view)
        r.Get("/state", h.state)
        r.Post("/click", h.click)
        r.Post("/jump", h.jump)
        r.Post("/sort", h.sort)
        r.Post("/reset", h.reset)
        r.Get("/events", h.events)
        r.Get("/ws", h.ws)
    })
    return r
}

// requestLogger logs one line per request.
func requestLogger(logger *log.Logger) func(http.Handler) http.Handler {
    return func(next http.Handler) http.Handler {
        return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
            ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
            start := time.Now()
            next.ServeHTTP(ww, r)
            logger.Debug("request",
                "method", r.Method,
                "path", r.URL.Path,
                "status", ww.Status(),
                "bytes", ww.BytesWritten(),
                "duration", time.Since(start),
                "request_id", middleware.GetReqID(r.Context()),
            )
        })
    }
}
