package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the game screen.
type KeyMap struct {
    Up      key.Binding
    Down    key.Binding
    Left    key.Binding
    Right   key.Binding
    Play    key.Binding
    Cell    key.Binding
    Back    key.Binding
    Forward key.Binding
    First   key.Binding
    Latest  key.Binding
    Sort    key.Binding
    Reset   key.Binding
    Help    key.Binding
    Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
    return []key.Binding{k.Play, k.Cell, k.Back, k.Forward, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
    return [][]key.Binding{
        {k.Up, k.Down, k.Left, k.Right},
        {k.Play, k.Cell, k.Reset},
        {k.Back, k.Forward, k.First, k.Latest, k.Sort},
        {k.Help, k.Quit},
    }
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
    return KeyMap{
        Up: key.NewBinding(
            key.WithKeys("up", "k"),
            key.WithHelp("↑/k", "up"),
        ),
        Down: key.NewBinding(
            key.WithKeys("down", "j"),
            key.WithHelp("↓/j", "down"),
        ),
        Left: key.NewBinding(
            key.WithKeys("left", "h"),
            key.WithHelp("←/h", "left"),
        ),
        Right: key.NewBinding(
            key.WithKeys("right", "l"),
            key.WithHelp("→/l", "right"),
        ),
        Play: key.NewBinding(
            key.WithKeys("enter", " "),
            key.WithHelp("enter/space", "play"),
        ),
        Cell: key.NewBinding(
            key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
            key.WithHelp("1-9", "play cell"),
        ),
        Back: key.NewBinding(
            key.WithKeys("["),
            key.WithHelp("[", "previous move"),
        ),
        Forward: key.NewBinding(
            key.WithKeys("]"),
            key.WithHelp("]", "next move"),
        ),
        First: key.NewBinding(
            key.WithKeys("g", "home"),
            key.WithHelp("g", "game start"),
        ),
        Latest: key.NewBinding(
            key.WithKeys("G", "end"),
            key.WithHelp("G", "latest move"),
        ),
        Sort: key.NewBinding(
            key.WithKeys("s"),
            key.WithHelp("s", "sort moves"),
        ),
        Reset: key.NewBinding(
            key.WithKeys("n"),
            key.WithHelp("n", "new game"),
        ),
        Help: key.NewBinding(
            key.WithKeys("?"),
            key.WithHelp("?", "more keys"),
        ),
        Quit: key.NewBinding(
            key.WithKeys("q", "ctrl+c"),
            key.WithHelp("q", "quit"),
        ),
    }
}
