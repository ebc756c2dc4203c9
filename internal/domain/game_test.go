package domain

import (
    "testing"
)

// helper to build a board from a 9-char pattern
func boardOf(t *testing.T, s string) Board {
    t.Helper()
    if len(s) != 9 {
        t.Fatalf("pattern %q must have 9 cells", s)
    }
    var b Board
    for i, ch := range s {
        switch ch {
        case 'X':
            b[i] = X
        case 'O':
            b[i] = O
        case '.':
        default:
            t.Fatalf("bad cell %q in %q", ch, s)
        }
    }
    return b
}

func TestEvaluateEmptyBoard(t *testing.T) {
    r := Evaluate(Board{})
    if r.Outcome != NoWinner || r.Over() {
        t.Fatalf("expected NoWinner on empty board, got %v", r.Outcome)
    }
}

func TestEvaluateEveryLine(t *testing.T) {
    for _, side := range []Cell{X, O} {
        for _, ln := range Lines {
            var b Board
            for _, i := range ln {
                b[i] = side
            }
            r := Evaluate(b)
            if r.Outcome != Winner || r.Line != ln {
                t.Fatalf("expected %v to win on %v, got %v %v", side, ln, r.Outcome, r.Line)
            }
            if r.Winner(b) != side {
                t.Fatalf("expected winner %v, got %v", side, r.Winner(b))
            }
        }
    }
}

func TestEvaluateFirstMatchingLineWins(t *testing.T) {
    cases := []struct {
        board string
        want  Line
    }{
        // top row and left column both complete
        {"XXXX..X..", Line{0, 1, 2}},
        // middle row beats middle column
        {".X.XXX.X.", Line{3, 4, 5}},
        // left column beats main diagonal
        {"X..XX.X.X", Line{0, 3, 6}},
        // both diagonals: main diagonal first
        {"O.O.O.O.O", Line{0, 4, 8}},
    }
    for _, tc := range cases {
        r := Evaluate(boardOf(t, tc.board))
        if r.Outcome != Winner || r.Line != tc.want {
            t.Fatalf("board %s: expected line %v, got %v %v", tc.board, tc.want, r.Outcome, r.Line)
        }
    }
}

func TestEvaluateDraw(t *testing.T) {
    b := boardOf(t, "XOXXOOOXX")
    r := Evaluate(b)
    if r.Outcome != Draw {
        t.Fatalf("expected Draw, got %v", r.Outcome)
    }
    for i := range b {
        if r.Contains(i) {
            t.Fatalf("draw must not contain cell %d", i)
        }
    }
    if r.Winner(b) != Empty {
        t.Fatalf("draw has no winner, got %v", r.Winner(b))
    }
}

func TestEvaluateFullBoardWithLineIsWin(t *testing.T) {
    r := Evaluate(boardOf(t, "XXXOOXXOO"))
    if r.Outcome != Winner || r.Line != (Line{0, 1, 2}) {
        t.Fatalf("expected top row win on full board, got %v %v", r.Outcome, r.Line)
    }
}

func TestEvaluateNoWinnerWithEmptyCell(t *testing.T) {
    r := Evaluate(boardOf(t, "XOXXOOOX."))
    if r.Outcome != NoWinner {
        t.Fatalf("expected NoWinner, got %v", r.Outcome)
    }
}

func TestBoardWithLeavesOriginal(t *testing.T) {
    var b Board
    next := b.With(4, X)
    if b[4] != Empty {
        t.Fatalf("original board mutated")
    }
    if next[4] != X {
        t.Fatalf("expected X at 4, got %v", next[4])
    }
    if got := next.String(); got != "....X...." {
        t.Fatalf("unexpected board string %q", got)
    }
}

func TestRowCol(t *testing.T) {
    cases := map[int][2]int{0: {1, 1}, 2: {1, 3}, 4: {2, 2}, 6: {3, 1}, 8: {3, 3}}
    for i, want := range cases {
        r, c := RowCol(i)
        if r != want[0] || c != want[1] {
            t.Fatalf("RowCol(%d) = (%d, %d), want %v", i, r, c, want)
        }
    }
}

func TestDiff(t *testing.T) {
    prev := boardOf(t, "....X....")
    next := boardOf(t, "O...X....")
    i, ok := Diff(prev, next)
    if !ok || i != 0 {
        t.Fatalf("expected diff at 0, got %d ok=%v", i, ok)
    }
    // several new cells: lowest index reported
    i, ok = Diff(Board{}, boardOf(t, "..X.O...X"))
    if !ok || i != 2 {
        t.Fatalf("expected lowest diff at 2, got %d ok=%v", i, ok)
    }
    if _, ok := Diff(prev, prev); ok {
        t.Fatalf("identical boards must not report a diff")
    }
}

func TestOutcomeString(t *testing.T) {
    for o, want := range map[Outcome]string{NoWinner: "playing", Draw: "draw", Winner: "won"} {
        if got := o.String(); got != want {
            t.Fatalf("Outcome(%d).String() = %q, want %q", o, got, want)
        }
    }
}
