package domain

// Cell represents a board cell state.
type Cell uint8

const (
    Empty Cell = iota
    X
    O
)

// String returns the symbol shown for the cell, empty for Empty.
func (c Cell) String() string {
    switch c {
    case X:
        return "X"
    case O:
        return "O"
    default:
        return ""
    }
}

// Size is the edge length of the grid.
const Size = 3

// Board is a fixed 3x3 board stored row-major.
// It is a value type; assigning a Board copies every cell.
type Board [Size * Size]Cell

// With returns a copy of b with cell i set to c.
func (b Board) With(i int, c Cell) Board {
    b[i] = c
    return b
}

// Full reports whether no cell is empty.
func (b Board) Full() bool {
    for _, c := range b {
        if c == Empty {
            return false
        }
    }
    return true
}

// String encodes the board as nine characters, '.' for empty cells.
func (b Board) String() string {
    out := make([]byte, len(b))
    for i, c := range b {
        switch c {
        case X:
            out[i] = 'X'
        case O:
            out[i] = 'O'
        default:
            out[i] = '.'
        }
    }
    return string(out)
}

// InBounds reports whether i addresses a cell.
func InBounds(i int) bool { return i >= 0 && i < len(Board{}) }

// RowCol returns the 1-indexed row and column of cell i.
func RowCol(i int) (row, col int) {
    return i/Size + 1, i%Size + 1
}

// Line is one winning index triple.
type Line [3]int

// Lines holds every winning line in the order they are checked.
var Lines = [8]Line{
    // rows
    {0, 1, 2}, {3, 4, 5}, {6, 7, 8},
    // cols
    {0, 3, 6}, {1, 4, 7}, {2, 5, 8},
    // diags
    {0, 4, 8}, {2, 4, 6},
}

// Outcome classifies a board.
type Outcome uint8

const (
    NoWinner Outcome = iota
    Draw
    Winner
)

// String returns "playing", "draw" or "won".
func (o Outcome) String() string {
    switch o {
    case Winner:
        return "won"
    case Draw:
        return "draw"
    default:
        return "playing"
    }
}

// WinResult is the evaluation of a board. Line is only set for Winner.
type WinResult struct {
    Outcome Outcome
    Line    Line
}

// Over reports whether the board admits no further moves.
func (r WinResult) Over() bool { return r.Outcome != NoWinner }

// Winner returns the symbol owning the winning line, or Empty.
func (r WinResult) Winner(b Board) Cell {
    if r.Outcome != Winner {
        return Empty
    }
    return b[r.Line[0]]
}

// Contains reports whether cell i is part of the winning line.
func (r WinResult) Contains(i int) bool {
    if r.Outcome != Winner {
        return false
    }
    return r.Line[0] == i || r.Line[1] == i || r.Line[2] == i
}

// Evaluate checks the lines in declaration order and returns the first
// complete one. Without a line a full board is a Draw.
func Evaluate(b Board) WinResult {
    for _, ln := range Lines {
        c := b[ln[0]]
        if c != Empty && b[ln[1]] == c && b[ln[2]] == c {
            return WinResult{Outcome: Winner, Line: ln}
        }
    }
    if b.Full() {
        return WinResult{Outcome: Draw}
    }
    return WinResult{Outcome: NoWinner}
}

// Diff returns the lowest index that is empty in prev and filled in next.
func Diff(prev, next Board) (int, bool) {
    for i := range next {
        if prev[i] == Empty && next[i] != Empty {
            return i, true
        }
    }
    return -1, false
}
