package main

import (
    "context"
    "errors"
    "fmt"
    "net/http"
    "os"
    "os/signal"
    "syscall"
    "time"

    "github.com/spf13/cobra"

    "github.com/jaminalder/tictactoe-history/internal/app"
    "github.com/jaminalder/tictactoe-history/internal/web"
)

var flagHTTPAddr string

var serveCmd = &cobra.Command{
    Use:   "serve",
    Short: "Host games in the browser",
    Long: `Start the web server. Every game gets its own URL; everyone who opens
it sees the same board, kept in sync over server-sent events or a
websocket.

Idle games are dropped after http.session_ttl.

Examples:
  tictactoe serve
  tictactoe serve --addr :9000
  tictactoe serve --no-store`,
    RunE: runServe,
}

func init() {
    serveCmd.Flags().StringVar(&flagHTTPAddr, "addr", "", "HTTP listen address, overrides http.addr")
}

func runServe(cmd *cobra.Command, _ []string) error {
    cfg, err := loadConfig()
    if err != nil {
        return err
    }
    if flagHTTPAddr != "" {
        cfg.HTTP.Addr = flagHTTPAddr
    }
    logger := newLogger(cfg, "tictactoe")

    svc := app.NewService()
    svc.SetLogger(logger)
    opts := web.Options{Logger: logger, Heartbeat: cfg.HTTP.Heartbeat}
    if store := openStore(cfg, logger); store != nil {
        defer store.Close()
        svc.SetArchive(store)
        opts.Results = store
    }

    srv := &http.Server{
        Addr:              cfg.HTTP.Addr,
        Handler:           web.NewServerWithOptions(svc, opts),
        ReadHeaderTimeout: 10 * time.Second,
    }

    ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
    defer stop()
    go pruneLoop(ctx, svc, cfg.HTTP.SessionTTL)

    errCh := make(chan error, 1)
    go func() {
        logger.Info("listening", "addr", cfg.HTTP.Addr)
        if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
            errCh <- err
        }
        close(errCh)
    }()

    select {
    case err := <-errCh:
        if err != nil {
            return fmt.Errorf("http server: %w", err)
        }
        return nil
    case <-ctx.Done():
    }

    logger.Info("shutting down...")
    shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
    defer cancel()
    return srv.Shutdown(shutdownCtx)
}

// pruneLoop drops idle games every quarter of ttl until ctx is done.
func pruneLoop(ctx context.Context, svc *app.Service, ttl time.Duration) {
    interval := ttl / 4
    if interval < time.Minute {
        interval = time.Minute
    }
    t := time.NewTicker(interval)
    defer t.Stop()
    for {
        select {
        case <-ctx.Done():
            return
        case <-t.C:
            svc.Prune(ttl)
        }
    }
}
