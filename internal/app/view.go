package app

import "fmt"

// View is everything a renderer needs to draw one game.
type View struct {
    Cells       [9]CellView `json:"cells"`
    Status      string      `json:"status"`
    Outcome     string      `json:"outcome"`
    Winner      string      `json:"winner,omitempty"`
    Moves       []MoveView  `json:"moves"`
    CurrentMove int         `json:"current_move"`
    Ascending   bool        `json:"ascending"`
    SortLabel   string      `json:"sort_label"`
    Size        int         `json:"size"`
}

// CellView is one board cell as displayed.
type CellView struct {
    Index       int    `json:"index"`
    Symbol      string `json:"symbol"`
    Highlighted bool   `json:"highlighted"`
}

// MoveView is one entry of the move list.
type MoveView struct {
    Move    int    `json:"move"`
    Label   string `json:"label"`
    Current bool   `json:"current"`
}

// Text is the entry as shown in the move list.
func (m MoveView) Text() string {
    switch {
    case m.Current:
        return fmt.Sprintf("You are at move #%d", m.Move)
    case m.Move == 0:
        return "Go to game start"
    default:
        return "Go to " + m.Label
    }
}

// Rows splits the cells into rows of Size cells.
func (v View) Rows() [][]CellView {
    size := v.Size
    if size <= 0 {
        size = 3
    }
    rows := make([][]CellView, 0, len(v.Cells)/size)
    for i := 0; i < len(v.Cells); i += size {
        rows = append(rows, v.Cells[i:i+size])
    }
    return rows
}

// Highlighted returns the indexes of highlighted cells.
func (v View) Highlighted() []int {
    var out []int
    for _, c := range v.Cells {
        if c.Highlighted {
            out = append(out, c.Index)
        }
    }
    return out
}
