package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ponabinanth/inventory-service/pkg/binder"
	"github.com/ponabinanth/inventory-service/pkg/broadcast"
	"github.com/ponabinanth/inventory-service/pkg/inventory"
)

func (h *handlers) listProducts(w http.ResponseWriter, r *http.Request) {
	products := h.store.List(r.Context())
	respond(w, http.StatusOK, Envelope{
		Data: products,
		Meta: map[string]any{
			"revision": h.hub.Revision(),
			"count":    len(products),
		},
	})
}

func (h *handlers) getProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := h.productID(w, r)
	if !ok {
		return
	}

	product, err := h.store.Get(r.Context(), id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, product)
}

func (h *handlers) createProduct(w http.ResponseWriter, r *http.Request) {
	var in inventory.Input
	if err := binder.JSON(r, &in); err != nil {
		h.respondError(w, r, err)
		return
	}

	product, err := h.store.Create(r.Context(), in)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.hub.Publish(r.Context(), broadcast.EventProductCreated, map[string]any{
		"id":   product.ID.String(),
		"sku":  product.SKU,
		"name": product.Name,
	})
	respondData(w, http.StatusCreated, product)
}

func (h *handlers) updateProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := h.productID(w, r)
	if !ok {
		return
	}

	var in inventory.Input
	if err := binder.JSON(r, &in); err != nil {
		h.respondError(w, r, err)
		return
	}

	product, err := h.store.Update(r.Context(), id, in)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.hub.Publish(r.Context(), broadcast.EventProductUpdated, map[string]any{
		"id":   product.ID.String(),
		"sku":  product.SKU,
		"name": product.Name,
	})
	respondData(w, http.StatusOK, product)
}

func (h *handlers) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := h.productID(w, r)
	if !ok {
		return
	}

	removed, err := h.store.Delete(r.Context(), id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.hub.Publish(r.Context(), broadcast.EventProductDeleted, map[string]any{
		"id":  removed.ID.String(),
		"sku": removed.SKU,
	})
	w.WriteHeader(http.StatusNoContent)
}

type restockRequest struct {
	Quantity int `json:"quantity"`
}

func (h *handlers) restockProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := h.productID(w, r)
	if !ok {
		return
	}

	var req restockRequest
	if err := binder.JSON(r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}

	product, err := h.store.Restock(r.Context(), id, req.Quantity)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.hub.Publish(r.Context(), broadcast.EventProductRestocked, map[string]any{
		"id":       product.ID.String(),
		"sku":      product.SKU,
		"name":     product.Name,
		"quantity": product.Quantity,
	})
	respondData(w, http.StatusOK, product)
}

// productID parses the {id} route parameter. A malformed ID is reported as an
// invalid payload before any store lookup happens.
func (h *handlers) productID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondErrorCode(w, http.StatusBadRequest, "invalid_payload", "invalid product id")
		return uuid.Nil, false
	}
	return id, true
}
