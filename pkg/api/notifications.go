package api

import (
	"net/http"
	"strconv"

	"github.com/ponabinanth/inventory-service/pkg/binder"
	"github.com/ponabinanth/inventory-service/pkg/notifier"
)

func (h *handlers) listNotifications(w http.ResponseWriter, r *http.Request) {
	// Absent or unparsable limits fall back to the history default; the
	// history clamps anything out of range.
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	records := h.history.List(r.Context(), limit)
	respond(w, http.StatusOK, Envelope{
		Data: records,
		Meta: map[string]any{"count": len(records)},
	})
}

type dispatchRequest struct {
	Channel   string `json:"channel"`
	Recipient string `json:"recipient"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
}

func (h *handlers) dispatchNotification(w http.ResponseWriter, r *http.Request) {
	var req dispatchRequest
	if err := binder.JSON(r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}

	record, err := h.dispatcher.Dispatch(r.Context(),
		notifier.Channel(req.Channel), req.Recipient, req.Subject, req.Message)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	// Accepted covers both outcomes: the dispatch succeeded even when the
	// delivery attempt did not.
	respondData(w, http.StatusAccepted, record)
}
