// Package handler implements the HTTP handlers for the trip registration API.
// All handlers are methods on Server. Methods are split into resource files
// (health.go, trip.go, client.go) but share the same Server struct so they can
// access its dependencies.
package handler

import (
	"context"
	"log/slog"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/trip-registry/internal/domain"
)

// TripServicer defines the trip operations the handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type TripServicer interface {
	List(ctx context.Context) ([]domain.Trip, error)
}

// ClientServicer defines the client and registration operations the handlers depend on.
type ClientServicer interface {
	Create(ctx context.Context, in domain.ClientInput) (domain.Client, error)
	GetByID(ctx context.Context, id int) (domain.Client, error)
	ListTrips(ctx context.Context, clientID int) ([]domain.RegisteredTrip, error)
	Register(ctx context.Context, clientID, tripID int) error
	Unregister(ctx context.Context, clientID, tripID int) error
}

// Server holds the dependencies shared by every handler.
type Server struct {
	trips   TripServicer
	clients ClientServicer
	log     *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
// A nil log falls back to slog.Default().
func NewServer(trips TripServicer, clients ClientServicer, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{trips: trips, clients: clients, log: log}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(nil, nil, nil)
}

// Routes returns a chi router with every API endpoint registered.
// Cross-cutting middleware (request id, logging, CORS) is applied by the caller.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)

	r.Get("/trips", s.ListTrips)

	r.Route("/clients", func(r chi.Router) {
		r.Post("/", s.CreateClient)
		r.Get("/{clientId}", s.GetClient)
		r.Get("/{clientId}/trips", s.ListClientTrips)
		r.Put("/{clientId}/trips/{tripId}", s.RegisterClient)
		r.Delete("/{clientId}/trips/{tripId}", s.UnregisterClient)
	})

	return r
}
