package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/kdfca/academy/internal/api/apierr"
	"github.com/kdfca/academy/internal/api/handler"
	"github.com/kdfca/academy/internal/api/middleware"
	"github.com/kdfca/academy/internal/api/response"
	sharedmw "github.com/kdfca/academy/internal/middleware"
	"github.com/kdfca/academy/internal/services/account"
	"github.com/kdfca/academy/internal/services/registration"
	"github.com/kdfca/academy/internal/store"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger              *slog.Logger
	Store               *store.Store
	RegistrationService *registration.Service
	AccountService      *account.Service
	// MaxBodyBytes caps request bodies. 0 uses middleware.DefaultMaxBodyBytes.
	MaxBodyBytes int64
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	registrationHandler := handler.NewRegistrationHandler(cfg.RegistrationService)
	accountHandler := handler.NewAccountHandler(cfg.AccountService)
	todoHandler := handler.NewTodoHandler(cfg.Store)
	counterHandler := handler.NewCounterHandler(cfg.Store)
	storeHandler := handler.NewStoreHandler(cfg.Store)

	maxBody := cfg.MaxBodyBytes
	if maxBody == 0 {
		maxBody = middleware.DefaultMaxBodyBytes
	}

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(sharedmw.RequestID())
	api.Use(middleware.Recovery(cfg.Logger))
	api.Use(sharedmw.Logging(cfg.Logger))
	api.Use(middleware.BodyLimit(maxBody))

	// Player registrations
	api.HandleFunc("/registrations", registrationHandler.ListPlayers).Methods(http.MethodGet)
	api.HandleFunc("/registrations", registrationHandler.RegisterPlayer).Methods(http.MethodPost)
	api.HandleFunc("/registrations/{id}/status", registrationHandler.SetPlayerStatus).Methods(http.MethodPatch)

	// Coach applications
	api.HandleFunc("/coaches", registrationHandler.ListCoaches).Methods(http.MethodGet)
	api.HandleFunc("/coaches", registrationHandler.ApplyCoach).Methods(http.MethodPost)
	api.HandleFunc("/coaches/{id}/status", registrationHandler.SetCoachStatus).Methods(http.MethodPatch)

	api.HandleFunc("/members", registrationHandler.Members).Methods(http.MethodGet)

	// Accounts
	api.HandleFunc("/users", accountHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/users", accountHandler.SignUp).Methods(http.MethodPost)
	api.HandleFunc("/users/error", accountHandler.ClearError).Methods(http.MethodDelete)
	api.HandleFunc("/password/strength", accountHandler.PasswordStrength).Methods(http.MethodPost)

	// Todo list
	api.HandleFunc("/todos", todoHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/todos", todoHandler.Add).Methods(http.MethodPost)
	api.HandleFunc("/todos", todoHandler.Clear).Methods(http.MethodDelete)
	api.HandleFunc("/todos/{id}/toggle", todoHandler.Toggle).Methods(http.MethodPost)
	api.HandleFunc("/todos/{id}", todoHandler.Remove).Methods(http.MethodDelete)

	// Counter
	api.HandleFunc("/counter", counterHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/counter/increment", counterHandler.Increment).Methods(http.MethodPost)
	api.HandleFunc("/counter/decrement", counterHandler.Decrement).Methods(http.MethodPost)
	api.HandleFunc("/counter/reset", counterHandler.Reset).Methods(http.MethodPost)

	// Whole store
	api.HandleFunc("/store", storeHandler.Purge).Methods(http.MethodDelete)

	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	// Unknown paths and method mismatches under the subrouter both answer 404
	r.NotFoundHandler = http.HandlerFunc(notFoundHandler)

	return r
}

func notFoundHandler(w http.ResponseWriter, r *http.Request) {
	apierr.WriteError(w, apierr.NewNotFoundError("no route for "+r.Method+" "+r.URL.Path))
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.Health{Status: "ok"})
}
