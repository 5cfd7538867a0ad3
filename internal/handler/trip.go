package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/voyagekit/trip-planner/internal/middleware"
	"github.com/voyagekit/trip-planner/internal/service"
)

// tripRequest is the JSON body for trip create and update. Pointer fields
// distinguish "omitted" from "set to empty": update only writes fields the
// client actually supplied.
type tripRequest struct {
	TripName      *string `json:"tripName"`
	DepartureDate *string `json:"departureDate"`
}

// ListTrips handles GET /trips.
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.CallerID(r.Context())
	if !ok {
		writeMessage(w, http.StatusNotFound, "Unauthorized: User not found")
		return
	}

	trips, err := s.trips.List(r.Context(), caller)
	if err != nil {
		writeError(w, r, err, "Trip")
		return
	}
	writeJSON(w, http.StatusOK, trips)
}

// CreateTrip handles POST /trips/add.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.CallerID(r.Context())
	if !ok {
		writeMessage(w, http.StatusNotFound, "Unauthorized: User not found")
		return
	}

	var body tripRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeMessage(w, http.StatusUnprocessableEntity, "request body must be valid JSON")
		return
	}

	var name, departure string
	if body.TripName != nil {
		name = *body.TripName
	}
	if body.DepartureDate != nil {
		departure = *body.DepartureDate
	}

	trip, err := s.trips.Create(r.Context(), caller, name, departure)
	if err != nil {
		writeError(w, r, err, "Trip")
		return
	}
	writeJSON(w, http.StatusCreated, trip)
}

// UpdateTrip handles PUT /trips/{tripID}.
func (s *Server) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.CallerID(r.Context())
	if !ok {
		writeMessage(w, http.StatusNotFound, "Unauthorized: User not found")
		return
	}

	tripID, err := uuid.Parse(chi.URLParam(r, "tripID"))
	if err != nil {
		writeMessage(w, http.StatusNotFound, "Trip not found")
		return
	}

	var body tripRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeMessage(w, http.StatusUnprocessableEntity, "request body must be valid JSON")
		return
	}

	trip, err := s.trips.Update(r.Context(), caller, tripID, service.TripUpdate{
		TripName:      body.TripName,
		DepartureDate: body.DepartureDate,
	})
	if err != nil {
		writeError(w, r, err, "Trip")
		return
	}
	writeJSON(w, http.StatusOK, trip)
}

// DeleteTrip handles DELETE /trips/{tripID}. The response carries the
// deleted trip's prior value.
func (s *Server) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.CallerID(r.Context())
	if !ok {
		writeMessage(w, http.StatusNotFound, "Unauthorized: User not found")
		return
	}

	tripID, err := uuid.Parse(chi.URLParam(r, "tripID"))
	if err != nil {
		writeMessage(w, http.StatusNotFound, "Trip not found")
		return
	}

	trip, err := s.trips.Delete(r.Context(), caller, tripID)
	if err != nil {
		writeError(w, r, err, "Trip")
		return
	}
	writeJSON(w, http.StatusOK, trip)
}
