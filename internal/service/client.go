package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"github.com/pkordes/trip-registry/internal/domain"
	"github.com/pkordes/trip-registry/internal/metrics"
	"github.com/pkordes/trip-registry/internal/repo"
)

// ClientService implements business logic for Clients and their trip registrations.
// It holds both the client and registration repos because a client's trips
// are read through one and changed through the other.
type ClientService struct {
	clients       repo.ClientRepo
	registrations repo.RegistrationRepo
	metrics       *metrics.Metrics
	log           *slog.Logger
	validate      *validator.Validate
}

// NewClientService constructs a ClientService. m may be nil; a nil log falls
// back to slog.Default().
func NewClientService(clients repo.ClientRepo, registrations repo.RegistrationRepo, m *metrics.Metrics, log *slog.Logger) *ClientService {
	if log == nil {
		log = slog.Default()
	}
	return &ClientService{
		clients:       clients,
		registrations: registrations,
		metrics:       m,
		log:           log,
		validate:      newValidator(),
	}
}

// Create validates the input and persists a new client.
// Returns domain.ErrValidation if any field is malformed.
func (s *ClientService) Create(ctx context.Context, in domain.ClientInput) (domain.Client, error) {
	if err := validateStruct(s.validate, in); err != nil {
		return domain.Client{}, err
	}
	client, err := s.clients.Create(ctx, in)
	if err != nil {
		return domain.Client{}, fmt.Errorf("service.ClientService.Create: %w", err)
	}
	s.metrics.IncClientsCreated()
	s.log.InfoContext(ctx, "client created", "client_id", client.ID)
	return client, nil
}

// GetByID returns a single client.
// Returns domain.ErrNotFound if the client does not exist.
func (s *ClientService) GetByID(ctx context.Context, id int) (domain.Client, error) {
	client, err := s.clients.GetByID(ctx, id)
	if err != nil {
		return domain.Client{}, fmt.Errorf("service.ClientService.GetByID: %w", err)
	}
	return client, nil
}

// ListTrips returns the trips a client is registered on.
// Returns domain.ErrNotFound when the client is missing or has no registrations.
func (s *ClientService) ListTrips(ctx context.Context, clientID int) ([]domain.RegisteredTrip, error) {
	trips, err := s.clients.ListRegisteredTrips(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("service.ClientService.ListTrips: %w", err)
	}
	return trips, nil
}

// Register puts the client on the trip.
// See repo.RegistrationRepo.Register for the failure order.
func (s *ClientService) Register(ctx context.Context, clientID, tripID int) error {
	err := s.registrations.Register(ctx, clientID, tripID)
	result := registrationResult(err)
	s.metrics.ObserveRegistration(result)

	if err != nil {
		level := slog.LevelInfo
		if result == metrics.ResultError {
			level = slog.LevelError
		}
		s.log.Log(ctx, level, "registration rejected",
			"client_id", clientID, "trip_id", tripID, "result", result, "error", err)
		return fmt.Errorf("service.ClientService.Register: %w", err)
	}

	s.log.InfoContext(ctx, "client registered", "client_id", clientID, "trip_id", tripID)
	return nil
}

// Unregister removes the client from the trip.
// Returns domain.ErrNotFound when the client, trip, or registration is missing.
func (s *ClientService) Unregister(ctx context.Context, clientID, tripID int) error {
	if err := s.registrations.Unregister(ctx, clientID, tripID); err != nil {
		return fmt.Errorf("service.ClientService.Unregister: %w", err)
	}
	s.log.InfoContext(ctx, "client unregistered", "client_id", clientID, "trip_id", tripID)
	return nil
}

func registrationResult(err error) string {
	switch {
	case err == nil:
		return metrics.ResultOK
	case errors.Is(err, domain.ErrNotFound):
		return metrics.ResultNotFound
	case errors.Is(err, domain.ErrCapacityExceeded):
		return metrics.ResultTripFull
	case errors.Is(err, domain.ErrDuplicateRegistration):
		return metrics.ResultDuplicate
	default:
		return metrics.ResultError
	}
}
