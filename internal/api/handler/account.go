package handler

import (
	"net/http"

	"github.com/kdfca/academy/internal/api/request"
	"github.com/kdfca/academy/internal/api/response"
	"github.com/kdfca/academy/internal/services/account"
	"github.com/kdfca/academy/internal/validation"
)

// AccountHandler handles sign-up endpoints
type AccountHandler struct {
	service *account.Service
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(service *account.Service) *AccountHandler {
	return &AccountHandler{
		service: service,
	}
}

// List handles GET /api/v1/users
func (h *AccountHandler) List(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.CollectionFromModel(h.service.Users(), response.UserFromModel))
}

// SignUp handles POST /api/v1/users
func (h *AccountHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req request.SignUpRequest
	if err := decodeBody(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	user, err := h.service.SignUp(r.Context(), req)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.UserFromModel(user))
}

// ClearError handles DELETE /api/v1/users/error
func (h *AccountHandler) ClearError(w http.ResponseWriter, r *http.Request) {
	if err := h.service.ClearError(); err != nil {
		WriteError(w, err)
		return
	}
	response.NoContent(w)
}

// PasswordStrength handles POST /api/v1/password/strength
func (h *AccountHandler) PasswordStrength(w http.ResponseWriter, r *http.Request) {
	var req request.PasswordStrengthRequest
	if err := decodeBody(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	score, ok := h.service.Strength(req.Password)
	response.JSON(w, http.StatusOK, response.PasswordStrength{
		Score:         score,
		Max:           validation.MaxPasswordStrength,
		SubmitEnabled: ok,
	})
}
