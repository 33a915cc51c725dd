package api

import (
	"net/http"

	"github.com/ponabinanth/inventory-service/pkg/alerts"
)

func (h *handlers) getAlerts(w http.ResponseWriter, r *http.Request) {
	summary := alerts.Evaluate(h.store.List(r.Context()))
	respondData(w, http.StatusOK, summary)
}
