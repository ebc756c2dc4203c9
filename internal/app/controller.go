package app

import (
    "fmt"

    "github.com/jaminalder/tictactoe-history/internal/domain"
)

// Controller applies player intents to one game and derives its view.
// It is not safe for concurrent use; Service serializes access.
type Controller struct {
    history *domain.History
}

// NewController starts a game on an empty board.
func NewController() *Controller {
    return &Controller{history: domain.NewHistory()}
}

// History exposes the underlying move log for read access.
func (c *Controller) History() *domain.History { return c.history }

// Result evaluates the board currently shown.
func (c *Controller) Result() domain.WinResult {
    return domain.Evaluate(c.history.Current())
}

// ClickCell plays the next symbol at index. Clicks out of range, on a
// filled cell or on a finished board are ignored. Reports whether a move
// was played.
func (c *Controller) ClickCell(index int) bool {
    if !domain.InBounds(index) {
        return false
    }
    cur := c.history.Current()
    if c.Result().Over() || cur[index] != domain.Empty {
        return false
    }
    side := domain.O
    if c.history.XIsNext() {
        side = domain.X
    }
    c.history.Play(cur.With(index, side))
    return true
}

// JumpTo shows the board after move.
func (c *Controller) JumpTo(move int) bool { return c.history.JumpTo(move) }

// ToggleSort flips the move list order.
func (c *Controller) ToggleSort() { c.history.ToggleSort() }

// Reset starts over from an empty board.
func (c *Controller) Reset() { c.history.Reset() }

func (c *Controller) nextSymbol() string {
    if c.history.XIsNext() {
        return "X"
    }
    return "O"
}

// DescribeStatus returns the status line for the current board.
func (c *Controller) DescribeStatus() string {
    r := c.Result()
    switch r.Outcome {
    case domain.Winner:
        return "Winner: " + r.Winner(c.history.Current()).String()
    case domain.Draw:
        return "Draw"
    default:
        return "Next player: " + c.nextSymbol()
    }
}

// DescribeMove labels a history entry with the cell its move filled.
func (c *Controller) DescribeMove(move int) string {
    if move == 0 {
        return "start of game"
    }
    prev, ok1 := c.history.At(move - 1)
    next, ok2 := c.history.At(move)
    if !ok1 || !ok2 {
        return fmt.Sprintf("move #%d", move)
    }
    i, ok := domain.Diff(prev, next)
    if !ok {
        return fmt.Sprintf("move #%d", move)
    }
    row, col := domain.RowCol(i)
    return fmt.Sprintf("move #%d - position: (%d, %d)", move, row, col)
}

// Finished describes the current board when it is won or drawn.
func (c *Controller) Finished(gameID string) (FinishedGame, bool) {
    board := c.history.Current()
    r := domain.Evaluate(board)
    if !r.Over() {
        return FinishedGame{}, false
    }
    fg := FinishedGame{
        GameID:  gameID,
        Outcome: r.Outcome.String(),
        Winner:  r.Winner(board).String(),
        Moves:   c.history.CurrentMove(),
        Board:   board.String(),
    }
    if r.Outcome == domain.Winner {
        fg.Line = []int{r.Line[0], r.Line[1], r.Line[2]}
    }
    return fg, true
}

// View recomputes the view model from the current state.
func (c *Controller) View() View {
    cur := c.history.Current()
    r := domain.Evaluate(cur)
    v := View{
        Status:      c.DescribeStatus(),
        Outcome:     r.Outcome.String(),
        Winner:      r.Winner(cur).String(),
        CurrentMove: c.history.CurrentMove(),
        Ascending:   c.history.Ascending(),
        Size:        domain.Size,
        SortLabel:   "Sort Ascending",
    }
    if v.Ascending {
        v.SortLabel = "Sort Descending"
    }
    for i, cell := range cur {
        v.Cells[i] = CellView{Index: i, Symbol: cell.String(), Highlighted: r.Contains(i)}
    }
    n := c.history.Len()
    v.Moves = make([]MoveView, 0, n)
    for k := 0; k < n; k++ {
        move := k
        if !v.Ascending {
            move = n - 1 - k
        }
        v.Moves = append(v.Moves, MoveView{
            Move:    move,
            Label:   c.DescribeMove(move),
            Current: move == v.CurrentMove,
        })
    }
    return v
}
