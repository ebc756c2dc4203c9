package web

import (
    "bytes"
    "html/template"
    "strings"

    "github.com/jaminalder/tictactoe-history/internal/app"
)

type templates struct {
    game  *template.Template
    board *template.Template
    index *template.Template
}

// boardData is what the board fragment renders.
type boardData struct {
    ID   string
    View app.View
}

func loadTemplates() *templates {
    base := template.Must(template.New("base").Parse(`<!doctype html><html><head>
<meta charset="utf-8"/>
<title>Tic-Tac-Toe</title>
<script src="https://unpkg.com/htmx.org@1.9.12"></script>
<script src="https://unpkg.com/htmx.org@1.9.12/dist/ext/sse.js"></script>
<style>
.board-row{display:flex}
.board-row form{margin:0}
.square{width:3em;height:3em;font-size:1.4em;font-weight:bold}
.square.highlight{background:#ffe066}
</style>
</head><body>{{template "content" .}}</body></html>`))
    // Define the board template within the same set so game can include it
    template.Must(base.New("board").Parse(boardTemplate))
    index := template.Must(template.Must(base.Clone()).New("content").Parse(`<h1>Tic-Tac-Toe</h1><form action="/game" method="post"><button>New game</button></form>`))
    game := template.Must(template.Must(base.Clone()).New("content").Parse(`
<div hx-ext="sse" hx-sse="connect:/game/{{.ID}}/events">
  <div hx-sse="swap:board">{{template "board" .}}</div>
</div>`))
    // Standalone board template used for fragment rendering
    board := template.Must(template.New("board_only").Parse(boardTemplate))
    return &templates{game: game, board: board, index: index}
}

func renderTemplate(t *template.Template, name string, data any) []byte {
    var buf bytes.Buffer
    if name == "" {
        _ = t.Execute(&buf, data)
    } else {
        _ = t.ExecuteTemplate(&buf, name, data)
    }
    return buf.Bytes()
}

// renderGameState renders the board fragment broadcast to SSE subscribers.
func (t *templates) renderGameState(gs app.GameState) []byte {
    return renderTemplate(t.board, "", boardData{ID: gs.ID, View: gs.View})
}

// sseData prefixes every line of payload so multi-line fragments survive
// the event-stream framing.
func sseData(payload []byte) string {
    lines := strings.Split(strings.TrimRight(string(payload), "\n"), "\n")
    var sb strings.Builder
    for _, ln := range lines {
        sb.WriteString("data: ")
        sb.WriteString(ln)
        sb.WriteByte('\n')
    }
    sb.WriteByte('\n')
    return sb.String()
}

const boardTemplate = `
<div id="board">
  <div class="status">{{.View.Status}}</div>
  {{range .View.Rows}}
  <div class="board-row">
    {{range .}}
    <form hx-post="/game/{{$.ID}}/click" hx-target="#board" hx-swap="outerHTML" action="/game/{{$.ID}}/click" method="post">
      <input type="hidden" name="i" value="{{.Index}}">
      <button type="submit" class="square{{if .Highlighted}} highlight{{end}}">{{.Symbol}}</button>
    </form>
    {{end}}
  </div>
  {{end}}
  <ol class="moves">
    {{range .View.Moves}}
    <li>{{if .Current}}<span>{{.Text}}</span>{{else}}
      <form hx-post="/game/{{$.ID}}/jump" hx-target="#board" hx-swap="outerHTML" action="/game/{{$.ID}}/jump" method="post">
        <input type="hidden" name="move" value="{{.Move}}">
        <button type="submit">{{.Text}}</button>
      </form>{{end}}
    </li>
    {{end}}
  </ol>
  <form hx-post="/game/{{.ID}}/sort" hx-target="#board" hx-swap="outerHTML" action="/game/{{.ID}}/sort" method="post">
    <button type="submit">{{.View.SortLabel}}</button>
  </form>
  <form hx-post="/game/{{.ID}}/reset" hx-target="#board" hx-swap="outerHTML" action="/game/{{.ID}}/reset" method="post">
    <button type="submit">Restart</button>
  </form>
</div>
`
