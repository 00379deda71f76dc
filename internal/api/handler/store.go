package handler

import (
	"net/http"

	"github.com/kdfca/academy/internal/api/response"
	"github.com/kdfca/academy/internal/store"
)

// StoreHandler handles operations on the store as a whole
type StoreHandler struct {
	store *store.Store
}

// NewStoreHandler creates a new store handler
func NewStoreHandler(st *store.Store) *StoreHandler {
	return &StoreHandler{
		store: st,
	}
}

// Purge handles DELETE /api/v1/store
func (h *StoreHandler) Purge(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Purge(r.Context()); err != nil {
		WriteError(w, err)
		return
	}
	response.NoContent(w)
}
