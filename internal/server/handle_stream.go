package server

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"nhooyr.io/websocket"
)

// handleStream is the websocket flavor of the snapshot feed, for clients
// that cannot hold an SSE connection. Same frames, same drop-and-resync
// semantics; a failed write tears down only this observer.
func handleStream(logger *slog.Logger, broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			InsecureSkipVerify: true,
		})
		if err != nil {
			logger.Error("websocket accept failed", "error", err)
			return
		}
		defer conn.CloseNow()

		ctx := r.Context()
		room := roomFrom(r)
		ch := broker.Subscribe(room.ID())
		defer broker.Unsubscribe(room.ID(), ch)

		if data, err := json.Marshal(room.Snapshot()); err == nil {
			if err := conn.Write(ctx, websocket.MessageText, data); err != nil {
				return
			}
		}

		for {
			select {
			case <-ctx.Done():
				return
			case data := <-ch:
				if err := conn.Write(ctx, websocket.MessageText, data); err != nil {
					logger.Debug("websocket write failed", "error", err)
					return
				}
			}
		}
	}
}
