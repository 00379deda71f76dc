package middleware

import (
	"log/slog"
	"net/http"

	"github.com/kdfca/academy/internal/api/apierr"
	"github.com/kdfca/academy/internal/middleware"
)

// Recovery creates panic recovery middleware for the API
// and answers with a JSON internal error
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Recovery(logger, writePanicResponse)
}

func writePanicResponse(w http.ResponseWriter, _ *http.Request, _ any) {
	apierr.WriteError(w, apierr.NewInternalError())
}
