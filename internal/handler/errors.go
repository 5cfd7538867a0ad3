package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/voyagekit/trip-planner/internal/domain"
)

// messageBody is the JSON error envelope: {"message": "..."}.
type messageBody struct {
	Message string `json:"message"`
}

// writeJSON encodes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeMessage writes a {"message": ...} body with the given status.
func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, messageBody{Message: msg})
}

// writeError maps a service error onto the wire contract:
//   - Unauthenticated and NotFound both become 404. The response
//     deliberately does not distinguish "not yours" from "doesn't exist",
//     so ids cannot be probed for existence.
//   - Validation failures become 422 with the rule that was violated.
//   - Anything else is a persistence failure: logged with the request
//     context and surfaced as a generic 500, never retried.
//
// resource names what was being looked up ("Trip", "Activity") — the handler
// is the layer that knows.
func writeError(w http.ResponseWriter, r *http.Request, err error, resource string) {
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		writeMessage(w, http.StatusNotFound, "Unauthorized: User not found")
	case errors.Is(err, domain.ErrNotFound):
		writeMessage(w, http.StatusNotFound, resource+" not found")
	case errors.Is(err, domain.ErrValidation):
		writeMessage(w, http.StatusUnprocessableEntity, validationMessage(err))
	default:
		slog.ErrorContext(r.Context(), "request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
		writeMessage(w, http.StatusInternalServerError, "An internal server error has occurred.")
	}
}

// validationMessage extracts the human-readable part from a wrapped
// domain.ErrValidation, e.g.
// "service.ActivityService.Create: validation error: tripId is required"
// → "tripId is required".
func validationMessage(err error) string {
	msg := err.Error()
	const marker = "validation error: "
	if i := strings.LastIndex(msg, marker); i >= 0 {
		return msg[i+len(marker):]
	}
	return msg
}
