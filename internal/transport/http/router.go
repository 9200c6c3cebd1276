package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"natid/internal/nationalid/handler"
	"natid/pkg/platform/httputil"
	"natid/pkg/platform/middleware/metadata"
	"natid/pkg/platform/middleware/request"
	"natid/pkg/platform/middleware/requesttime"
	dErrors "natid/pkg/domain-errors"
)

// Deps are the collaborators the router mounts.
type Deps struct {
	Logger         *slog.Logger
	NationalIDs    *handler.Handler
	MetricsHandler http.Handler // nil disables /metrics
}

// NewRouter wires all public endpoints behind the shared middleware chain.
// The handler stays thin: routes delegate straight to the national ID handler.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(request.RequestID)
	r.Use(requesttime.Middleware)
	r.Use(metadata.ClientMetadata)
	r.Use(accessLog(deps.Logger))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "route not found"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteJSON(w, http.StatusMethodNotAllowed, map[string]string{
			"error":             "method_not_allowed",
			"error_description": "method not allowed for this route",
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if deps.MetricsHandler != nil {
		r.Handle("/metrics", deps.MetricsHandler)
	}
	deps.NationalIDs.Register(r)
	return r
}
