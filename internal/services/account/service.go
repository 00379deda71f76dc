package account

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/kdfca/academy/internal/model"
	"github.com/kdfca/academy/internal/store"
	"github.com/kdfca/academy/internal/validation"
)

// Config holds configuration for the account service
type Config struct {
	// BcryptCost is the work factor for password digests
	BcryptCost int
	// SubmitDelay is an artificial pause before the account is stored
	SubmitDelay time.Duration
}

// DefaultConfig returns default account configuration
func DefaultConfig() Config {
	return Config{
		BcryptCost: bcrypt.DefaultCost,
	}
}

// Service runs the sign-up flow. While a sign-up is in flight the auth
// collection reports loading; it settles to idle on success or error on failure.
type Service struct {
	store     *store.Store
	validator *validation.Validator
	logger    *slog.Logger
	cfg       Config
}

// New creates an account Service
func New(st *store.Store, v *validation.Validator, cfg Config, logger *slog.Logger) *Service {
	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = DefaultConfig().BcryptCost
	}
	return &Service{store: st, validator: v, cfg: cfg, logger: logger}
}

// SignUp validates the form, digests the password and stores the account.
// A rejected form returns validation.Errors without touching the auth collection.
func (s *Service) SignUp(ctx context.Context, in validation.UserInput) (model.UserAccount, error) {
	rec, errs := s.validator.ValidateUser(in)
	if len(errs) > 0 {
		return model.UserAccount{}, errs
	}

	if err := s.store.SetLoading(model.KindAuth, true); err != nil {
		return model.UserAccount{}, err
	}

	hash, err := s.digest(ctx, in.Password)
	if err != nil {
		s.logger.Warn("sign-up failed", "email", rec.Email, "error", err)
		if serr := s.store.SetError(model.KindAuth, "Sign-up failed: "+err.Error()); serr != nil {
			return model.UserAccount{}, serr
		}
		return model.UserAccount{}, err
	}

	rec.ID = s.store.NextID()
	rec.PasswordHash = string(hash)
	s.store.AddUser(rec)

	s.logger.Info("user signed up", "id", rec.ID, "strength", rec.PasswordStrength)
	return rec, nil
}

// Users returns the auth collection
func (s *Service) Users() model.Collection[model.UserAccount] {
	return s.store.Users()
}

// ClearError dismisses the last sign-up error
func (s *Service) ClearError() error {
	return s.store.ClearError(model.KindAuth)
}

// Strength scores a candidate password and reports whether it satisfies the submit gate
func (s *Service) Strength(password string) (score int, submitEnabled bool) {
	return validation.PasswordStrength(password), s.validator.SubmitEnabled(password)
}
