// Package handler implements the HTTP handlers for the trip planner API.
// All handlers are methods on Server. Methods are split into resource files
// (trip.go, activity.go, health.go) but all share the same Server struct so
// they can access its dependencies.
//
// Route shape and method semantics: every resource route accepts exactly the
// methods listed below; any other method returns 403 with a plain-text
// "<METHOD> operation not supported on <path>" body, without touching
// storage.
package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/voyagekit/trip-planner/internal/domain"
	"github.com/voyagekit/trip-planner/internal/service"
	"github.com/voyagekit/trip-planner/spec"
)

// TripServicer defines the business operations the trip handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type TripServicer interface {
	List(ctx context.Context, callerID uuid.UUID) ([]domain.Trip, error)
	Create(ctx context.Context, callerID uuid.UUID, tripName, departureDate string) (domain.Trip, error)
	Update(ctx context.Context, callerID, tripID uuid.UUID, upd service.TripUpdate) (domain.Trip, error)
	Delete(ctx context.Context, callerID, tripID uuid.UUID) (domain.Trip, error)
}

// ActivityServicer defines the business operations the activity handlers
// depend on.
type ActivityServicer interface {
	ListByTrip(ctx context.Context, callerID, tripID uuid.UUID) ([]domain.Activity, error)
	Create(ctx context.Context, callerID, tripID uuid.UUID, fields service.ActivityFields) (domain.Activity, error)
	Update(ctx context.Context, callerID, activityID uuid.UUID, fields service.ActivityFields) (domain.Activity, error)
	Delete(ctx context.Context, callerID, activityID uuid.UUID) (domain.Activity, error)
}

// Server holds the handler dependencies. Routes() builds the router.
type Server struct {
	trips      TripServicer
	activities ActivityServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(trips TripServicer, activities ActivityServicer) *Server {
	return &Server{trips: trips, activities: activities}
}

// Routes builds the API route tree. The auth middleware guards every
// resource route; /healthz and /openapi.yaml stay open so probes and docs
// work without a session. The custom MethodNotAllowed handler is set on the
// root mux before the sub-routers are created so chi propagates it to them.
func (s *Server) Routes(auth func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.MethodNotAllowed(methodNotSupported)

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)

	r.Group(func(r chi.Router) {
		r.Use(auth)

		r.Route("/trips", func(r chi.Router) {
			r.Get("/", s.ListTrips)
			r.Post("/add", s.CreateTrip)
			r.Put("/{tripID}", s.UpdateTrip)
			r.Delete("/{tripID}", s.DeleteTrip)
		})

		r.Route("/activities", func(r chi.Router) {
			r.Get("/", s.ListActivities)
			r.Post("/add", s.CreateActivity)
			r.Put("/{activityID}", s.UpdateActivity)
			r.Delete("/{activityID}", s.DeleteActivity)
		})
	})

	return r
}

// GetOpenAPI handles GET /openapi.yaml, serving the embedded API description.
func (s *Server) GetOpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(spec.OpenAPI)
}

// methodNotSupported answers any route/method combination outside the
// supported surface with 403, mirroring the API's long-standing contract.
func methodNotSupported(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusForbidden)
	fmt.Fprintf(w, "%s operation not supported on %s", r.Method, r.URL.Path)
}
