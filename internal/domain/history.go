package domain

// Snapshot pairs a board with its move index.
type Snapshot struct {
    Move  int
    Board Board
}

// History is the log of boards played in one game together with the
// move currently shown and the display order of the move list.
// The zero value is not usable; call NewHistory.
type History struct {
    boards    []Board
    current   int
    ascending bool
}

// NewHistory returns a history holding only the empty board.
func NewHistory() *History {
    return &History{boards: []Board{{}}, ascending: true}
}

// Play drops every board after the current move, appends next and makes
// it current.
func (h *History) Play(next Board) {
    kept := make([]Board, h.current+1, h.current+2)
    copy(kept, h.boards[:h.current+1])
    h.boards = append(kept, next)
    h.current = len(h.boards) - 1
}

// JumpTo selects move as the current board. Out of range moves are ignored.
func (h *History) JumpTo(move int) bool {
    if move < 0 || move >= len(h.boards) {
        return false
    }
    h.current = move
    return true
}

// ToggleSort flips the move list order.
func (h *History) ToggleSort() { h.ascending = !h.ascending }

// Reset returns to the empty starting board. Sort order is kept.
func (h *History) Reset() {
    h.boards = []Board{{}}
    h.current = 0
}

// Current returns the board being shown.
func (h *History) Current() Board { return h.boards[h.current] }

// CurrentMove returns the move number of the board being shown.
func (h *History) CurrentMove() int { return h.current }

// Len returns the number of snapshots, the empty board included.
func (h *History) Len() int { return len(h.boards) }

// Ascending reports whether the move list runs oldest first.
func (h *History) Ascending() bool { return h.ascending }

// XIsNext reports whether X plays on the current board.
func (h *History) XIsNext() bool { return h.current%2 == 0 }

// At returns the board after move.
func (h *History) At(move int) (Board, bool) {
    if move < 0 || move >= len(h.boards) {
        return Board{}, false
    }
    return h.boards[move], true
}

// Snapshots returns every board in move order.
func (h *History) Snapshots() []Snapshot {
    out := make([]Snapshot, len(h.boards))
    for i, b := range h.boards {
        out[i] = Snapshot{Move: i, Board: b}
    }
    return out
}
