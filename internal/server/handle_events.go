package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const ssePingInterval = 30 * time.Second

// handleEvents streams room snapshots over SSE. Subscribers get the
// current snapshot immediately, then one frame per mutation, with
// periodic pings to keep idle proxies from closing the stream.
func handleEvents(broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flusher, ok := w.(http.Flusher)
		if !ok {
			writeError(w, http.StatusInternalServerError, "streaming not supported")
			return
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.Header().Set("X-Accel-Buffering", "no")
		flusher.Flush()

		room := roomFrom(r)
		ch := broker.Subscribe(room.ID())
		defer broker.Unsubscribe(room.ID(), ch)

		// Initial frame so a reconnecting client re-syncs without waiting
		// for the next mutation.
		if data, err := json.Marshal(room.Snapshot()); err == nil {
			fmt.Fprintf(w, "event: state\ndata: %s\n\n", data)
			flusher.Flush()
		}

		ping := time.NewTicker(ssePingInterval)
		defer ping.Stop()

		for {
			select {
			case <-r.Context().Done():
				return
			case data := <-ch:
				fmt.Fprintf(w, "event: state\ndata: %s\n\n", data)
				flusher.Flush()
			case <-ping.C:
				fmt.Fprintf(w, ": ping\n\n")
				flusher.Flush()
			}
		}
	}
}
