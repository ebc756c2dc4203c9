package tui

import (
    "context"
    "errors"
    "fmt"
    "os"
    "path/filepath"
    "time"

    tea "github.com/charmbracelet/bubbletea"
    "github.com/charmbracelet/log"
    "github.com/charmbracelet/ssh"
    "github.com/charmbracelet/wish"
    "github.com/charmbracelet/wish/bubbletea"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
    // Address is the host:port to listen on (e.g., ":23235").
    Address string

    // HostKeyPath is the path to the host key file.
    // If empty, a key will be auto-generated at ~/.tictactoe/host_key.
    HostKeyPath string

    // IdleTimeout is how long to wait before closing idle connections.
    IdleTimeout time.Duration
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
    return SSHServerConfig{
        Address:     ":23235",
        IdleTimeout: 30 * time.Minute,
    }
}

// SSHServer serves one independent game per SSH session.
type SSHServer struct {
    config SSHServerConfig
    server *ssh.Server
    opts   Options
    logger *log.Logger
}

// NewSSHServer creates a new SSH server. Finished games go to opts.Archive.
func NewSSHServer(cfg SSHServerConfig, opts Options) (*SSHServer, error) {
    if opts.Logger == nil {
        opts.Logger = log.Default()
    }
    logger := opts.Logger.WithPrefix("ssh")

    srv := &SSHServer{
        config: cfg,
        opts:   opts,
        logger: logger,
    }

    hostKeyPath, err := resolveHostKeyPath(cfg.HostKeyPath)
    if err != nil {
        return nil, err
    }

    server, err := wish.NewServer(
        wish.WithAddress(cfg.Address),
        wish.WithHostKeyPath(hostKeyPath),
        wish.WithIdleTimeout(cfg.IdleTimeout),
        wish.WithMiddleware(
            bubbletea.Middleware(srv.teaHandler),
            srv.loggingMiddleware,
        ),
    )
    if err != nil {
        return nil, fmt.Errorf("cannot create SSH server: %w", err)
    }
    srv.server = server
    return srv, nil
}

// resolveHostKeyPath defaults to ~/.tictactoe/host_key and makes sure the
// key's directory exists.
func resolveHostKeyPath(path string) (string, error) {
    if path == "" {
        home, err := os.UserHomeDir()
        if err != nil {
            return "", fmt.Errorf("cannot get home directory: %w", err)
        }
        path = filepath.Join(home, ".tictactoe", "host_key")
    }
    if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
        return "", fmt.Errorf("cannot create host key directory: %w", err)
    }
    return path, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
    pty, _, ok := sess.Pty()
    if !ok {
        s.logger.Warn("no PTY requested", "user", sess.User())
        return nil, nil
    }
    m := NewModel(Options{
        Archive: s.opts.Archive,
        Logger:  s.logger.With("user", sess.User()),
    })
    m.width = pty.Window.Width
    m.help.Width = pty.Window.Width
    return m, []tea.ProgramOption{tea.WithAltScreen()}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
    return func(sess ssh.Session) {
        s.logger.Info("session started",
            "user", sess.User(),
            "remote", sess.RemoteAddr().String(),
        )
        next(sess)
        s.logger.Info("session ended",
            "user", sess.User(),
            "remote", sess.RemoteAddr().String(),
        )
    }
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *SSHServer) ListenAndServe(ctx context.Context) error {
    s.logger.Info("starting SSH server", "address", s.config.Address)

    errCh := make(chan error, 1)
    go func() {
        if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
            errCh <- err
        }
        close(errCh)
    }()

    select {
    case err := <-errCh:
        if err != nil {
            return fmt.Errorf("ssh server: %w", err)
        }
        return nil
    case <-ctx.Done():
    }
    s.logger.Info("shutting down...")
    return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
    ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
    defer cancel()
    return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
    return s.config.Address
}
