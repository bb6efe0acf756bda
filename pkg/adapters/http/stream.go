package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/aretw0/chempath/pkg/domain"
)

// TracePath handles the GET /paths/trace request (SSE).
// Each expansion and novel product is sent as it happens, followed by a
// final "result" or "error" event.
func (s *Server) TracePath(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		s.Logger.Error("TracePath: Streaming not supported")
		return
	}

	q, err := queryFromURL(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	// Validate before switching to the event stream so bad input is a 400.
	if _, _, err := q.Resolve(); err != nil {
		s.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	fmt.Fprintf(w, "event: ping\ndata: connected\n\n")
	flusher.Flush()

	send := func(event string, v any) {
		if r.Context().Err() != nil {
			return
		}
		data, err := json.Marshal(v)
		if err != nil {
			s.Logger.Warn("SSE: encode failed", "event", event, "error", err)
			return
		}
		fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data)
		flusher.Flush()
	}

	hooks := domain.SearchHooks{
		OnExpand: func(_ context.Context, e *domain.ExpandEvent) {
			send(string(e.Type), e)
		},
		OnReaction: func(_ context.Context, e *domain.ReactionEvent) {
			if e.Novel {
				send(string(e.Type), e)
			}
		},
	}

	res, err := s.Planner.Trace(r.Context(), q, hooks)
	if err != nil {
		send("error", errorResponse{Error: err.Error()})
		return
	}
	send("result", res)
}
