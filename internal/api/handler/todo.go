package handler

import (
	"net/http"

	"github.com/kdfca/academy/internal/api/request"
	"github.com/kdfca/academy/internal/api/response"
	"github.com/kdfca/academy/internal/store"
)

// TodoHandler handles the todo list endpoints
type TodoHandler struct {
	store *store.Store
}

// NewTodoHandler creates a new todo handler
func NewTodoHandler(st *store.Store) *TodoHandler {
	return &TodoHandler{
		store: st,
	}
}

// List handles GET /api/v1/todos
func (h *TodoHandler) List(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.CollectionFromModel(h.store.Todos(), response.TodoFromModel))
}

// Add handles POST /api/v1/todos
func (h *TodoHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req request.AddTodoRequest
	if err := decodeBody(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	item, ok := h.store.AddTodo(req.Text)
	if !ok {
		WriteError(w, NewInvalidRequestError("text must not be blank"))
		return
	}

	response.JSON(w, http.StatusCreated, response.TodoFromModel(item))
}

// Toggle handles POST /api/v1/todos/{id}/toggle
func (h *TodoHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	id, err := recordID(r)
	if err != nil {
		WriteError(w, err)
		return
	}
	h.store.ToggleTodo(id)
	response.NoContent(w)
}

// Remove handles DELETE /api/v1/todos/{id}
func (h *TodoHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id, err := recordID(r)
	if err != nil {
		WriteError(w, err)
		return
	}
	h.store.RemoveTodo(id)
	response.NoContent(w)
}

// Clear handles DELETE /api/v1/todos
func (h *TodoHandler) Clear(w http.ResponseWriter, r *http.Request) {
	h.store.ClearTodos()
	response.NoContent(w)
}
