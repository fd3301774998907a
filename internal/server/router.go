package server

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/userreport/userreport/internal/handler"
	"github.com/userreport/userreport/internal/middleware"
)

// Routes holds the handlers mounted by NewRouter.
type Routes struct {
	Info   *handler.Handler
	Health *handler.HealthHandler
	Users  *handler.UserHandler
	Report *handler.ReportHandler

	Logger        *slog.Logger
	IsDevelopment bool
}

// NewRouter builds the route table:
//
//	GET /                  service info
//	GET /healthz           liveness
//	GET /readyz            readiness
//	GET /users/{id}        user record
//	GET /users/{id}/report user report
//
// {id} must be an integer; other values are rejected with 400 before the
// handler runs.
func NewRouter(rt Routes) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(rt.Logger))
	r.Use(middleware.Recoverer(rt.Logger))
	r.Use(middleware.Security(middleware.SecurityConfig{IsDevelopment: rt.IsDevelopment}))

	r.Get("/", rt.Info.Info)
	r.Get("/healthz", rt.Health.Healthz)
	r.Get("/readyz", rt.Health.Readyz)

	userID := middleware.IntParam("id")
	r.With(userID).Get("/users/{id}", rt.Users.Get)
	r.With(userID).Get("/users/{id}/report", rt.Report.Get)

	r.NotFound(rt.Info.NotFound)
	r.MethodNotAllowed(rt.Info.MethodNotAllowed)

	return r
}
