package main

import (
    "fmt"
    "net"
    "os"
    "os/signal"
    "syscall"

    "github.com/spf13/cobra"

    "github.com/jaminalder/tictactoe-history/internal/tui"
)

var (
    flagSSHAddr string
    flagHostKey string
)

var sshCmd = &cobra.Command{
    Use:   "ssh",
    Short: "Serve the terminal game over SSH",
    Long: `Start an SSH server. Each connection plays its own game; finished
games land in the shared results archive.

Host key handling:
  - If --host-key or ssh.host_key is set, uses that key file
  - Otherwise, auto-generates a key at ~/.tictactoe/host_key

Examples:
  tictactoe ssh
  tictactoe ssh --addr :2222

Users can connect with:
  ssh localhost -p 23235`,
    RunE: runSSH,
}

func init() {
    sshCmd.Flags().StringVar(&flagSSHAddr, "addr", "", "SSH listen address, overrides ssh.addr")
    sshCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file, overrides ssh.host_key")
}

func runSSH(cmd *cobra.Command, _ []string) error {
    cfg, err := loadConfig()
    if err != nil {
        return err
    }
    if flagSSHAddr != "" {
        cfg.SSH.Addr = flagSSHAddr
    }
    if flagHostKey != "" {
        cfg.SSH.HostKey = flagHostKey
    }
    logger := newLogger(cfg, "tictactoe")

    opts := tui.Options{Logger: logger}
    if store := openStore(cfg, logger); store != nil {
        defer store.Close()
        opts.Archive = store
    }

    server, err := tui.NewSSHServer(tui.SSHServerConfig{
        Address:     cfg.SSH.Addr,
        HostKeyPath: cfg.SSH.HostKey,
        IdleTimeout: cfg.SSH.IdleTimeout,
    }, opts)
    if err != nil {
        return err
    }

    ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
    defer stop()
    fmt.Fprintf(cmd.OutOrStdout(), "Connect with: ssh localhost -p %s\n", sshPort(server.Addr()))
    return server.ListenAndServe(ctx)
}

// sshPort extracts the port from a listen address such as ":23235".
func sshPort(addr string) string {
    if _, port, err := net.SplitHostPort(addr); err == nil && port != "" {
        return port
    }
    return "22"
}
