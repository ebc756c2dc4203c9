package app

import (
    "testing"

    "github.com/jaminalder/tictactoe-history/internal/domain"
)

// helper to click a sequence of cells, each of which must be accepted
func clickAll(t *testing.T, c *Controller, cells ...int) {
    t.Helper()
    for n, i := range cells {
        if !c.ClickCell(i) {
            t.Fatalf("click %d at cell %d was ignored", n, i)
        }
    }
}

func TestNewControllerView(t *testing.T) {
    c := NewController()
    v := c.View()
    if v.Status != "Next player: X" {
        t.Fatalf("unexpected status %q", v.Status)
    }
    if v.SortLabel != "Sort Descending" {
        t.Fatalf("unexpected sort label %q", v.SortLabel)
    }
    if len(v.Moves) != 1 || !v.Moves[0].Current || v.Moves[0].Label != "start of game" {
        t.Fatalf("unexpected move list %+v", v.Moves)
    }
    for _, cell := range v.Cells {
        if cell.Symbol != "" || cell.Highlighted {
            t.Fatalf("expected empty board, got %+v", cell)
        }
    }
}

func TestClickAlternatesPlayers(t *testing.T) {
    c := NewController()
    clickAll(t, c, 4)
    if got := c.DescribeStatus(); got != "Next player: O" {
        t.Fatalf("unexpected status %q", got)
    }
    clickAll(t, c, 0)
    b := c.History().Current()
    if b[4] != domain.X || b[0] != domain.O {
        t.Fatalf("unexpected board %s", b)
    }
}

func TestClickOccupiedIsNoop(t *testing.T) {
    c := NewController()
    clickAll(t, c, 4)
    before := c.History().Current()
    if c.ClickCell(4) {
        t.Fatalf("click on occupied cell should be ignored")
    }
    if c.History().Len() != 2 || c.History().CurrentMove() != 1 || c.History().Current() != before {
        t.Fatalf("state changed on ignored click")
    }
}

func TestClickOutOfRangeIsNoop(t *testing.T) {
    c := NewController()
    for _, i := range []int{-1, 9, 100} {
        if c.ClickCell(i) {
            t.Fatalf("click at %d should be ignored", i)
        }
    }
    if c.History().Len() != 1 {
        t.Fatalf("history grew on ignored clicks")
    }
}

func TestTopRowWinScenario(t *testing.T) {
    c := NewController()
    clickAll(t, c, 0, 4, 1, 3, 2)
    r := c.Result()
    if r.Outcome != domain.Winner || r.Line != (domain.Line{0, 1, 2}) {
        t.Fatalf("expected top row win, got %v %v", r.Outcome, r.Line)
    }
    v := c.View()
    if v.Status != "Winner: X" {
        t.Fatalf("unexpected status %q", v.Status)
    }
    if v.Outcome != "won" || v.Winner != "X" {
        t.Fatalf("unexpected outcome %q winner %q", v.Outcome, v.Winner)
    }
    hl := v.Highlighted()
    if len(hl) != 3 || hl[0] != 0 || hl[1] != 1 || hl[2] != 2 {
        t.Fatalf("expected cells 0,1,2 highlighted, got %v", hl)
    }
    // board is finished; further clicks are ignored
    before := c.History().Current()
    if c.ClickCell(8) {
        t.Fatalf("click after win should be ignored")
    }
    h := c.History()
    if h.Len() != 6 || h.CurrentMove() != 5 || h.Current() != before {
        t.Fatalf("click after win changed state: len=%d current=%d board=%s", h.Len(), h.CurrentMove(), h.Current())
    }
}

func TestDrawScenario(t *testing.T) {
    c := NewController()
    // X O X / X O O / O X X
    clickAll(t, c, 0, 1, 2, 4, 3, 5, 7, 6, 8)
    v := c.View()
    if v.Status != "Draw" || v.Outcome != "draw" {
        t.Fatalf("expected draw, got status %q outcome %q", v.Status, v.Outcome)
    }
    if hl := v.Highlighted(); len(hl) != 0 {
        t.Fatalf("draw must not highlight cells, got %v", hl)
    }
    before := c.History().Current()
    for i := 0; i < 9; i++ {
        if c.ClickCell(i) {
            t.Fatalf("click %d after draw should be ignored", i)
        }
    }
    h := c.History()
    if h.Len() != 10 || h.CurrentMove() != 9 || h.Current() != before {
        t.Fatalf("click after draw changed state: len=%d current=%d board=%s", h.Len(), h.CurrentMove(), h.Current())
    }
}

func TestDescribeMovePositions(t *testing.T) {
    c := NewController()
    clickAll(t, c, 4, 0)
    if got := c.DescribeMove(0); got != "start of game" {
        t.Fatalf("move 0 label %q", got)
    }
    if got := c.DescribeMove(1); got != "move #1 - position: (2, 2)" {
        t.Fatalf("move 1 label %q", got)
    }
    if got := c.DescribeMove(2); got != "move #2 - position: (1, 1)" {
        t.Fatalf("move 2 label %q", got)
    }
    if got := c.DescribeMove(7); got != "move #7" {
        t.Fatalf("unknown move label %q", got)
    }
}

func TestJumpBackShowsEarlierBoard(t *testing.T) {
    c := NewController()
    clickAll(t, c, 0, 4, 1, 3, 2)
    if !c.JumpTo(2) {
        t.Fatalf("jump should succeed")
    }
    v := c.View()
    if v.Status != "Next player: X" {
        t.Fatalf("unexpected status after jump %q", v.Status)
    }
    if len(v.Moves) != 6 || !v.Moves[2].Current {
        t.Fatalf("expected move 2 current in list of 6, got %+v", v.Moves)
    }
    // playing from the past discards the old future
    clickAll(t, c, 8)
    if c.History().Len() != 4 {
        t.Fatalf("expected 4 boards after branch, got %d", c.History().Len())
    }
    if got := c.DescribeMove(3); got != "move #3 - position: (3, 3)" {
        t.Fatalf("unexpected branched label %q", got)
    }
}

func TestJumpOutOfRangeIsNoop(t *testing.T) {
    c := NewController()
    clickAll(t, c, 0)
    if c.JumpTo(5) || c.JumpTo(-1) {
        t.Fatalf("invalid jump should be ignored")
    }
    if c.History().CurrentMove() != 1 {
        t.Fatalf("current moved on invalid jump")
    }
}

func TestToggleSortReversesMoveList(t *testing.T) {
    c := NewController()
    clickAll(t, c, 0, 4, 8)
    c.ToggleSort()
    v := c.View()
    if v.SortLabel != "Sort Ascending" || v.Ascending {
        t.Fatalf("unexpected sort state %q asc=%v", v.SortLabel, v.Ascending)
    }
    for k, m := range v.Moves {
        if m.Move != 3-k {
            t.Fatalf("expected descending moves, got %+v", v.Moves)
        }
    }
    if !v.Moves[0].Current || v.CurrentMove != 3 {
        t.Fatalf("latest move should be current and first")
    }
}

func TestMoveViewText(t *testing.T) {
    c := NewController()
    clickAll(t, c, 4)
    v := c.View()
    if got := v.Moves[0].Text(); got != "Go to game start" {
        t.Fatalf("unexpected start text %q", got)
    }
    if got := v.Moves[1].Text(); got != "You are at move #1" {
        t.Fatalf("unexpected current text %q", got)
    }
    c.JumpTo(0)
    v = c.View()
    if got := v.Moves[1].Text(); got != "Go to move #1 - position: (2, 2)" {
        t.Fatalf("unexpected move text %q", got)
    }
}

func TestResetStartsOver(t *testing.T) {
    c := NewController()
    clickAll(t, c, 0, 4, 1, 3, 2)
    c.Reset()
    v := c.View()
    if v.Status != "Next player: X" || len(v.Moves) != 1 {
        t.Fatalf("reset did not restore start: %q %d", v.Status, len(v.Moves))
    }
    clickAll(t, c, 4)
}

func TestViewRows(t *testing.T) {
    c := NewController()
    clickAll(t, c, 5)
    rows := c.View().Rows()
    if len(rows) != 3 || len(rows[1]) != 3 {
        t.Fatalf("expected 3x3 rows, got %d", len(rows))
    }
    if rows[1][2].Symbol != "X" || rows[1][2].Index != 5 {
        t.Fatalf("unexpected cell %+v", rows[1][2])
    }
}

func TestFinishedDescribesEndedGames(t *testing.T) {
    c := NewController()
    clickAll(t, c, 0, 4, 1, 3)
    if _, ok := c.Finished("g1"); ok {
        t.Fatalf("game in progress reported as finished")
    }
    clickAll(t, c, 2)
    fg, ok := c.Finished("g1")
    if !ok {
        t.Fatalf("won game not reported as finished")
    }
    if fg.GameID != "g1" || fg.Outcome != "won" || fg.Winner != "X" || fg.Moves != 5 || fg.Board != "XXXOO...." {
        t.Fatalf("unexpected record %+v", fg)
    }
    if len(fg.Line) != 3 || fg.Line[0] != 0 || fg.Line[1] != 1 || fg.Line[2] != 2 {
        t.Fatalf("unexpected line %v", fg.Line)
    }

    d := NewController()
    clickAll(t, d, 0, 1, 2, 4, 3, 5, 7, 6, 8)
    fg, ok = d.Finished("g2")
    if !ok || fg.Outcome != "draw" || fg.Winner != "" || fg.Line != nil || fg.Moves != 9 {
        t.Fatalf("unexpected draw record %+v", fg)
    }
}
