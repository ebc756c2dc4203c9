// Package tui plays tic-tac-toe in the terminal, locally or over SSH.
package tui

import (
    "errors"
    "fmt"
    "os"

    "github.com/charmbracelet/bubbles/help"
    "github.com/charmbracelet/bubbles/key"
    tea "github.com/charmbracelet/bubbletea"
    "github.com/charmbracelet/lipgloss"
    "github.com/charmbracelet/log"
    "github.com/google/uuid"
    "golang.org/x/term"

    "github.com/jaminalder/tictactoe-history/internal/app"
    "github.com/jaminalder/tictactoe-history/internal/domain"
)

// ErrNotATerminal is returned by Run when stdout is not a terminal.
var ErrNotATerminal = errors.New("tui: stdout is not a terminal")

// Options configures a game model.
type Options struct {
    // Archive records finished games. Optional.
    Archive app.Archive
    Logger  *log.Logger
}

// Model is the Bubble Tea model for one game.
type Model struct {
    ctrl     *app.Controller
    archive  app.Archive
    logger   *log.Logger
    gameID   string
    keys     KeyMap
    help     help.Model
    styles   Styles
    cursor   int
    notice   string
    width    int
    quitting bool
}

// NewModel starts a game on an empty board with the cursor in the centre.
func NewModel(opts Options) Model {
    if opts.Logger == nil {
        opts.Logger = log.Default()
    }
    return Model{
        ctrl:    app.NewController(),
        archive: opts.Archive,
        logger:  opts.Logger,
        gameID:  uuid.NewString(),
        keys:    DefaultKeyMap(),
        help:    help.New(),
        styles:  DefaultStyles(),
        cursor:  4,
    }
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
    return nil
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
    switch msg := msg.(type) {
    case tea.WindowSizeMsg:
        m.width = msg.Width
        m.help.Width = msg.Width
        return m, nil
    case tea.KeyMsg:
        return m.handleKey(msg)
    }
    return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
    h := m.ctrl.History()
    switch {
    case key.Matches(msg, m.keys.Quit):
        m.quitting = true
        return m, tea.Quit
    case key.Matches(msg, m.keys.Up):
        if m.cursor >= domain.Size {
            m.cursor -= domain.Size
        }
    case key.Matches(msg, m.keys.Down):
        if m.cursor < domain.Size*(domain.Size-1) {
            m.cursor += domain.Size
        }
    case key.Matches(msg, m.keys.Left):
        if m.cursor%domain.Size > 0 {
            m.cursor--
        }
    case key.Matches(msg, m.keys.Right):
        if m.cursor%domain.Size < domain.Size-1 {
            m.cursor++
        }
    case key.Matches(msg, m.keys.Play):
        m.click(m.cursor)
    case key.Matches(msg, m.keys.Cell):
        m.cursor = int(msg.String()[0] - '1')
        m.click(m.cursor)
    case key.Matches(msg, m.keys.Back):
        m.ctrl.JumpTo(h.CurrentMove() - 1)
    case key.Matches(msg, m.keys.Forward):
        m.ctrl.JumpTo(h.CurrentMove() + 1)
    case key.Matches(msg, m.keys.First):
        m.ctrl.JumpTo(0)
    case key.Matches(msg, m.keys.Latest):
        m.ctrl.JumpTo(h.Len() - 1)
    case key.Matches(msg, m.keys.Sort):
        m.ctrl.ToggleSort()
    case key.Matches(msg, m.keys.Reset):
        m.ctrl.Reset()
        m.gameID = uuid.NewString()
        m.notice = ""
    case key.Matches(msg, m.keys.Help):
        m.help.ShowAll = !m.help.ShowAll
    }
    return m, nil
}

// click plays at index and archives the game when that move ends it.
func (m *Model) click(index int) {
    if !m.ctrl.ClickCell(index) {
        return
    }
    m.notice = ""
    fg, over := m.ctrl.Finished(m.gameID)
    if !over || m.archive == nil {
        return
    }
    if err := m.archive.SaveFinishedGame(fg); err != nil {
        m.logger.Warn("could not archive game", "game", m.gameID, "error", err)
        m.notice = "result not saved"
        return
    }
    m.notice = "result saved"
}

// View renders the game screen.
func (m Model) View() string {
    if m.quitting {
        return ""
    }
    v := m.ctrl.View()
    s := m.styles

    board := lipgloss.JoinVertical(lipgloss.Left,
        s.Title.Render("Tic-Tac-Toe"),
        "",
        s.renderBoard(v, m.cursor),
        "",
        s.Status.Render(v.Status),
    )
    if m.notice != "" {
        board = lipgloss.JoinVertical(lipgloss.Left, board, s.Notice.Render(m.notice))
    }
    body := lipgloss.JoinHorizontal(lipgloss.Top,
        s.BoardBox.Render(board),
        s.MovesBox.Render(s.renderMoves(v)),
    )
    return body + "\n\n" + m.help.View(m.keys) + "\n"
}

// Cursor returns the index of the cell under the cursor.
func (m Model) Cursor() int { return m.cursor }

// Controller exposes the game being played.
func (m Model) Controller() *app.Controller { return m.ctrl }

// IsQuitting returns true if the user asked to quit.
func (m Model) IsQuitting() bool { return m.quitting }

// Run plays one game on the local terminal until the user quits.
func Run(opts Options) error {
    if !term.IsTerminal(int(os.Stdout.Fd())) {
        return ErrNotATerminal
    }
    p := tea.NewProgram(NewModel(opts), tea.WithAltScreen())
    if _, err := p.Run(); err != nil {
        return fmt.Errorf("tui: %w", err)
    }
    return nil
}
