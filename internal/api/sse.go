package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"opsdesk/internal/bus"
)

// handleEvents bridges the change bus to a server-sent-events stream. One
// subscription is opened per requested table and all are torn down when the
// client disconnects, so an abandoned view never leaks a subscription.
func (a *API) handleEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		respondError(w, http.StatusInternalServerError, errors.New("streaming unsupported"))
		return
	}

	merged := make(chan bus.Change, 64)
	var closers []io.Closer
	for _, table := range parseTables(r.URL.Query().Get("tables")) {
		changes, closer, err := a.bus.Subscribe(table)
		if err != nil {
			for _, c := range closers {
				_ = c.Close()
			}
			respondError(w, http.StatusServiceUnavailable, err)
			return
		}
		closers = append(closers, closer)

		go func(changes <-chan bus.Change) {
			for ch := range changes {
				select {
				case merged <- ch:
				default:
					// Slow consumer; drop rather than block the pump.
				}
			}
		}(changes)
	}
	defer func() {
		for _, c := range closers {
			_ = c.Close()
		}
	}()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	keepalive := time.NewTicker(25 * time.Second)
	defer keepalive.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-keepalive.C:
			if _, err := fmt.Fprint(w, ": keepalive\n\n"); err != nil {
				return
			}
			flusher.Flush()
		case ch := <-merged:
			data, err := json.Marshal(ch)
			if err != nil {
				continue
			}
			if _, err := fmt.Fprintf(w, "event: change\ndata: %s\n\n", data); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}

// parseTables splits the comma-separated tables parameter. No usable names
// means the wildcard subscription covering every table.
func parseTables(raw string) []string {
	var tables []string
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tables = append(tables, t)
		}
	}
	if len(tables) == 0 {
		return []string{"*"}
	}
	return tables
}
