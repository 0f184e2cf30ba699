package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"

	"github.com/pkordes/trip-registry/internal/domain"
)

// Messages for the two registration rejections. Both map to 400; the code
// field tells them apart.
const (
	msgAlreadyRegistered = "Client is already registered on the trip"
	msgTripFull          = "Maximum of trip members has been reached"
)

// ErrorDetail is the body of every error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps ErrorDetail as {"error": {...}}.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status string `json:"status"`
}

// writeJSON encodes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Error: ErrorDetail{Code: code, Message: message}})
}

// writeServiceError maps a service error onto a status code and envelope.
// Anything unclassified is logged and reported as a bare 500.
func (s *Server) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", notFoundMessage(err))
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, "validation_error", unwrapMessage(err))
	case errors.Is(err, domain.ErrCapacityExceeded):
		writeError(w, http.StatusBadRequest, "trip_full", msgTripFull)
	case errors.Is(err, domain.ErrDuplicateRegistration):
		writeError(w, http.StatusBadRequest, "already_registered", msgAlreadyRegistered)
	default:
		s.log.ErrorContext(r.Context(), "request failed",
			"method", r.Method, "path", r.URL.Path, "error", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

// notFoundMessage returns the message carried by a *domain.NotFoundError.
func notFoundMessage(err error) string {
	var nf *domain.NotFoundError
	if errors.As(err, &nf) {
		return nf.Message
	}
	return "not found"
}

// unwrapMessage extracts the human-readable part from a wrapped validation error.
// e.g. "service.X.Create: validation error: pesel must be exactly 11 digits" → "pesel must be exactly 11 digits"
func unwrapMessage(err error) string {
	msg := err.Error()
	if _, after, ok := strings.Cut(msg, domain.ErrValidation.Error()+": "); ok {
		return after
	}
	return msg
}

// bindID parses the named chi path parameter as an integer id.
// Ids are bound as int32 to match the int4 key columns; anything wider is rejected here.
func bindID(r *http.Request, name string) (int, error) {
	var id int32
	err := runtime.BindStyledParameterWithOptions("simple", name, chi.URLParam(r, name), &id,
		runtime.BindStyledParameterOptions{
			ParamLocation: runtime.ParamLocationPath,
			Explode:       false,
			Required:      true,
		})
	return int(id), err
}

// bindIDs parses every named path parameter, writing a 400 and returning
// false on the first one that isn't an integer.
func bindIDs(w http.ResponseWriter, r *http.Request, names ...string) ([]int, bool) {
	ids := make([]int, len(names))
	for i, name := range names {
		id, err := bindID(r, name)
		if err != nil {
			writeError(w, http.StatusBadRequest, "validation_error", name+" must be an integer")
			return nil, false
		}
		ids[i] = id
	}
	return ids, true
}
