package handler

import (
	"net/http"

	"github.com/kdfca/academy/internal/api/request"
	"github.com/kdfca/academy/internal/api/response"
	"github.com/kdfca/academy/internal/model"
	"github.com/kdfca/academy/internal/services/registration"
)

// RegistrationHandler handles player registration and coach application endpoints
type RegistrationHandler struct {
	service *registration.Service
}

// NewRegistrationHandler creates a new registration handler
func NewRegistrationHandler(service *registration.Service) *RegistrationHandler {
	return &RegistrationHandler{
		service: service,
	}
}

// ListPlayers handles GET /api/v1/registrations
func (h *RegistrationHandler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.CollectionFromModel(h.service.Players(), response.PlayerFromModel))
}

// RegisterPlayer handles POST /api/v1/registrations
func (h *RegistrationHandler) RegisterPlayer(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterPlayerRequest
	if err := decodeBody(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	rec, err := h.service.RegisterPlayer(req)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.PlayerFromModel(rec))
}

// SetPlayerStatus handles PATCH /api/v1/registrations/{id}/status
func (h *RegistrationHandler) SetPlayerStatus(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, h.service.SetPlayerStatus)
}

// ListCoaches handles GET /api/v1/coaches
func (h *RegistrationHandler) ListCoaches(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.CollectionFromModel(h.service.Coaches(), response.CoachFromModel))
}

// ApplyCoach handles POST /api/v1/coaches
func (h *RegistrationHandler) ApplyCoach(w http.ResponseWriter, r *http.Request) {
	var req request.ApplyCoachRequest
	if err := decodeBody(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	rec, err := h.service.ApplyCoach(req)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.CoachFromModel(rec))
}

// SetCoachStatus handles PATCH /api/v1/coaches/{id}/status
func (h *RegistrationHandler) SetCoachStatus(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, h.service.SetCoachStatus)
}

// Members handles GET /api/v1/members
func (h *RegistrationHandler) Members(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.MembersFromService(h.service.Members()))
}

// setStatus answers 204 whether or not the id exists
func (h *RegistrationHandler) setStatus(w http.ResponseWriter, r *http.Request, set func(model.RecordID, string) error) {
	id, err := recordID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	var req request.SetStatusRequest
	if err := decodeBody(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	if err := set(id, req.Status); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}
