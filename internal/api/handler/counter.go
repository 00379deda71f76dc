package handler

import (
	"net/http"

	"github.com/kdfca/academy/internal/api/response"
	"github.com/kdfca/academy/internal/store"
)

// CounterHandler handles the counter endpoints
type CounterHandler struct {
	store *store.Store
}

// NewCounterHandler creates a new counter handler
func NewCounterHandler(st *store.Store) *CounterHandler {
	return &CounterHandler{
		store: st,
	}
}

// Get handles GET /api/v1/counter
func (h *CounterHandler) Get(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.Counter{Value: h.store.Counter()})
}

// Increment handles POST /api/v1/counter/increment
func (h *CounterHandler) Increment(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.Counter{Value: h.store.Increment()})
}

// Decrement handles POST /api/v1/counter/decrement
func (h *CounterHandler) Decrement(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.Counter{Value: h.store.Decrement()})
}

// Reset handles POST /api/v1/counter/reset
func (h *CounterHandler) Reset(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.Counter{Value: h.store.Reset()})
}
