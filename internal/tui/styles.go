package tui

import (
    "strings"

    "github.com/charmbracelet/lipgloss"

    "github.com/jaminalder/tictactoe-history/internal/app"
)

// Styles holds the lipgloss styles used by the game screen.
type Styles struct {
    Title    lipgloss.Style
    Status   lipgloss.Style
    Cell     lipgloss.Style
    Empty    lipgloss.Style
    Cursor   lipgloss.Style
    WinCell  lipgloss.Style
    Grid     lipgloss.Style
    Move     lipgloss.Style
    Current  lipgloss.Style
    Heading  lipgloss.Style
    Notice   lipgloss.Style
    BoardBox lipgloss.Style
    MovesBox lipgloss.Style
}

// DefaultStyles returns the built-in color scheme.
func DefaultStyles() Styles {
    return Styles{
        Title:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
        Status:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
        Cell:     lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
        Empty:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
        Cursor:   lipgloss.NewStyle().Reverse(true),
        WinCell:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
        Grid:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
        Move:     lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
        Current:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
        Heading:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Underline(true),
        Notice:   lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
        BoardBox: lipgloss.NewStyle().Padding(0, 2, 0, 0),
        MovesBox: lipgloss.NewStyle().PaddingLeft(2).BorderStyle(lipgloss.NormalBorder()).BorderLeft(true).BorderForeground(lipgloss.Color("240")),
    }
}

// renderBoard draws the grid. Empty cells show their 1-9 shortcut.
func (s Styles) renderBoard(v app.View, cursor int) string {
    var b strings.Builder
    sep := s.Grid.Render("───┼───┼───")
    bar := s.Grid.Render("│")
    for r, row := range v.Rows() {
        if r > 0 {
            b.WriteString("\n" + sep + "\n")
        }
        for c, cell := range row {
            if c > 0 {
                b.WriteString(bar)
            }
            b.WriteString(s.renderCell(cell, cell.Index == cursor))
        }
    }
    return b.String()
}

func (s Styles) renderCell(cell app.CellView, underCursor bool) string {
    text := " " + cell.Symbol + " "
    style := s.Cell
    switch {
    case cell.Symbol == "":
        text = " " + string(rune('1'+cell.Index)) + " "
        style = s.Empty
    case cell.Highlighted:
        style = s.WinCell
    }
    if underCursor {
        style = s.Cursor.Inherit(style)
    }
    return style.Render(text)
}

// renderMoves draws the move list in its current sort order.
func (s Styles) renderMoves(v app.View) string {
    lines := make([]string, 0, len(v.Moves)+1)
    lines = append(lines, s.Heading.Render("Moves")+"  "+s.Empty.Render("("+v.SortLabel+": s)"))
    for _, mv := range v.Moves {
        if mv.Current {
            lines = append(lines, s.Current.Render("▸ "+mv.Text()))
            continue
        }
        lines = append(lines, s.Move.Render("  "+mv.Text()))
    }
    return strings.Join(lines, "\n")
}
