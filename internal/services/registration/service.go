package registration

import (
	"fmt"
	"log/slog"

	"github.com/kdfca/academy/internal/model"
	"github.com/kdfca/academy/internal/store"
	"github.com/kdfca/academy/internal/validation"
)

// Service runs the player and coach submission flows: validate, assign an id, append
type Service struct {
	store     *store.Store
	validator *validation.Validator
	logger    *slog.Logger
}

// Members is the combined roster of players and coaches, each in submission order
type Members struct {
	Players []model.PlayerRegistration `json:"players"`
	Coaches []model.CoachApplication   `json:"coaches"`
}

// New creates a registration Service
func New(st *store.Store, v *validation.Validator, logger *slog.Logger) *Service {
	return &Service{store: st, validator: v, logger: logger}
}

// RegisterPlayer validates a player form and appends the accepted registration.
// A rejected form returns validation.Errors and leaves the store untouched.
func (s *Service) RegisterPlayer(in validation.PlayerInput) (model.PlayerRegistration, error) {
	rec, errs := s.validator.ValidatePlayer(in)
	if len(errs) > 0 {
		return model.PlayerRegistration{}, errs
	}

	rec.ID = s.store.NextID()
	s.store.AddRegistration(rec)

	s.logger.Info("player registered", "id", rec.ID, "position", rec.Position)
	return rec, nil
}

// ApplyCoach validates a coach form and appends the accepted application
func (s *Service) ApplyCoach(in validation.CoachInput) (model.CoachApplication, error) {
	rec, errs := s.validator.ValidateCoach(in)
	if len(errs) > 0 {
		return model.CoachApplication{}, errs
	}

	rec.ID = s.store.NextID()
	s.store.AddCoach(rec)

	s.logger.Info("coach application received", "id", rec.ID, "specialization", rec.Specialization)
	return rec, nil
}

// SetPlayerStatus reviews a player registration. An unknown id is a no-op.
func (s *Service) SetPlayerStatus(id model.RecordID, raw string) error {
	return s.setStatus(model.KindRegistrations, id, raw)
}

// SetCoachStatus reviews a coach application. An unknown id is a no-op.
func (s *Service) SetCoachStatus(id model.RecordID, raw string) error {
	return s.setStatus(model.KindCoaches, id, raw)
}

func (s *Service) setStatus(kind model.CollectionKind, id model.RecordID, raw string) error {
	status, err := model.ParseRecordStatus(raw)
	if err != nil {
		return err
	}
	if err := s.store.UpdateStatus(kind, id, status); err != nil {
		return fmt.Errorf("update %s %d: %w", kind, id, err)
	}
	s.logger.Info("status updated", "collection", kind, "id", id, "status", status)
	return nil
}

// Players returns the registrations collection
func (s *Service) Players() model.Collection[model.PlayerRegistration] {
	return s.store.Registrations()
}

// Coaches returns the coach applications collection
func (s *Service) Coaches() model.Collection[model.CoachApplication] {
	return s.store.Coaches()
}

// Members returns players and coaches together
func (s *Service) Members() Members {
	return Members{
		Players: s.store.Registrations().Items,
		Coaches: s.store.Coaches().Items,
	}
}
