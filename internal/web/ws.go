package web

import (
    "context"
    "encoding/json"
    "net/http"
    "time"

    "github.com/go-chi/chi/v5"
    "github.com/gorilla/websocket"

    "github.com/jaminalder/tictactoe-history/internal/app"
)

type wsMessage struct {
    Type    string          `json:"type"`
    Payload json.RawMessage `json:"payload,omitempty"`
}

// wsIntent is what clients send. Index is read for "click", Move for "jump";
// either one missing makes its intent a no-op.
type wsIntent struct {
    Type  string `json:"type"`
    Index *int   `json:"index,omitempty"`
    Move  *int   `json:"move,omitempty"`
}

func mustMarshal(v any) json.RawMessage {
    b, err := json.Marshal(v)
    if err != nil {
        return json.RawMessage("null")
    }
    return b
}

func viewMessage(v app.View) []byte {
    b, _ := json.Marshal(wsMessage{Type: "view", Payload: mustMarshal(v)})
    return b
}

// enqueue drops the message when the client is not keeping up.
func enqueue(send chan<- []byte, msg []byte) {
    select {
    case send <- msg:
    default:
    }
}

// ws pushes the view of one game on every change and applies intents
// read from the client.
func (h *handlers) ws(w http.ResponseWriter, r *http.Request) {
    id := chi.URLParam(r, "id")
    gs, ok := h.svc.Get(id)
    if !ok {
        http.NotFound(w, r)
        return
    }
    upgrader := websocket.Upgrader{}
    conn, err := upgrader.Upgrade(w, r, nil)
    if err != nil {
        return
    }
    ctx, cancel := context.WithCancel(context.Background())
    defer cancel()
    h.logger.Debug("websocket connected", "game", id, "remote", r.RemoteAddr)

    send := make(chan []byte, 16)
    go func() {
        defer cancel()
        defer conn.Close()
        if err := writeWSWithHeartbeat(ctx, conn, send, h.heartbeat); err != nil {
            h.logger.Debug("websocket write failed", "game", id, "error", err)
        }
    }()

    updates, unsub := h.svc.Subscribe(ctx, id)
    defer unsub()
    go func() {
        for range updates {
            if st, ok := h.svc.Get(id); ok {
                enqueue(send, viewMessage(st.View))
            }
        }
    }()
    enqueue(send, viewMessage(gs.View))

    for {
        _, message, err := conn.ReadMessage()
        if err != nil {
            h.logger.Debug("websocket closed", "game", id)
            return
        }
        var in wsIntent
        if err := json.Unmarshal(message, &in); err != nil {
            continue
        }
        switch in.Type {
        case "click":
            if in.Index != nil {
                _, err = h.svc.Click(id, *in.Index)
            }
        case "jump":
            if in.Move != nil {
                _, err = h.svc.Jump(id, *in.Move)
            }
        case "sort":
            _, err = h.svc.ToggleSort(id)
        case "reset":
            _, err = h.svc.Reset(id)
        case "request_view":
            if st, ok := h.svc.Get(id); ok {
                enqueue(send, viewMessage(st.View))
            }
        }
        if err != nil {
            // game was pruned while connected
            return
        }
    }
}

func writeWSWithHeartbeat(ctx context.Context, conn *websocket.Conn, send <-chan []byte, interval time.Duration) error {
    ticker := time.NewTicker(interval)
    defer ticker.Stop()
    lastWrite := time.Now()
    pingPayload := mustMarshal(wsMessage{Type: "ping"})

    for {
        select {
        case <-ctx.Done():
            _ = conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(time.Second))
            return nil
        case msg := <-send:
            if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
                return err
            }
            lastWrite = time.Now()
        case <-ticker.C:
            if time.Since(lastWrite) < interval {
                continue
            }
            if err := conn.WriteMessage(websocket.TextMessage, pingPayload); err != nil {
                return err
            }
            lastWrite = time.Now()
        }
    }
}
