package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/ponabinanth/inventory-service/pkg/logger"
)

// streamEvents serves the live event feed over Server-Sent Events. The
// subscription lives exactly as long as the request context; the hub removes
// the subscriber when the client disconnects or falls behind.
func (h *handlers) streamEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		respondErrorCode(w, http.StatusInternalServerError, "internal_error", "streaming unsupported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	// Open the stream immediately so clients see headers before the first
	// event.
	fmt.Fprint(w, ": connected\n\n")
	flusher.Flush()

	sub := h.hub.Subscribe(r.Context())
	for event := range sub.Events() {
		if event.IsKeepalive() {
			fmt.Fprint(w, ": keepalive\n\n")
			flusher.Flush()
			continue
		}

		data, err := json.Marshal(event)
		if err != nil {
			h.log.ErrorContext(r.Context(), "event encode failed",
				logger.EventType(event.Type),
				logger.Error(err),
			)
			continue
		}

		fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Type, data)
		flusher.Flush()
	}
}
