package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/pkordes/trip-registry/internal/domain"
)

// CreateClient handles POST /clients.
// Responds 201 with the created client and a Location header.
func (s *Server) CreateClient(w http.ResponseWriter, r *http.Request) {
	var in domain.ClientInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "request_too_large", "request body too large")
			return
		}
		writeError(w, http.StatusBadRequest, "validation_error", "request body must be a JSON client object")
		return
	}

	client, err := s.clients.Create(r.Context(), in)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	w.Header().Set("Location", "/clients/"+strconv.Itoa(client.ID))
	writeJSON(w, http.StatusCreated, client)
}

// GetClient handles GET /clients/{clientId}.
func (s *Server) GetClient(w http.ResponseWriter, r *http.Request) {
	ids, ok := bindIDs(w, r, "clientId")
	if !ok {
		return
	}

	client, err := s.clients.GetByID(r.Context(), ids[0])
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, client)
}

// ListClientTrips handles GET /clients/{clientId}/trips.
// A client with no registrations is a 404, same as a missing client.
func (s *Server) ListClientTrips(w http.ResponseWriter, r *http.Request) {
	ids, ok := bindIDs(w, r, "clientId")
	if !ok {
		return
	}

	trips, err := s.clients.ListTrips(r.Context(), ids[0])
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, trips)
}

// RegisterClient handles PUT /clients/{clientId}/trips/{tripId}.
func (s *Server) RegisterClient(w http.ResponseWriter, r *http.Request) {
	ids, ok := bindIDs(w, r, "clientId", "tripId")
	if !ok {
		return
	}

	if err := s.clients.Register(r.Context(), ids[0], ids[1]); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// UnregisterClient handles DELETE /clients/{clientId}/trips/{tripId}.
func (s *Server) UnregisterClient(w http.ResponseWriter, r *http.Request) {
	ids, ok := bindIDs(w, r, "clientId", "tripId")
	if !ok {
		return
	}

	if err := s.clients.Unregister(r.Context(), ids[0], ids[1]); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
