package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/voyagekit/trip-planner/internal/domain"
	"github.com/voyagekit/trip-planner/internal/middleware"
	"github.com/voyagekit/trip-planner/internal/service"
)

// activityRequest is the JSON body for activity create and update. Create
// additionally requires tripId; update takes the activity id from the path.
// Update replaces name/startDate/startTime/location/addOns wholesale, so no
// pointer fields are needed here.
type activityRequest struct {
	TripID    string        `json:"tripId,omitempty"`
	Name      string        `json:"name"`
	StartDate string        `json:"startDate"`
	StartTime string        `json:"startTime"`
	Location  string        `json:"location"`
	AddOns    domain.AddOns `json:"addOns"`
}

func (b activityRequest) fields() service.ActivityFields {
	return service.ActivityFields{
		Name:      b.Name,
		StartDate: b.StartDate,
		StartTime: b.StartTime,
		Location:  b.Location,
		AddOns:    b.AddOns,
	}
}

// ListActivities handles GET /activities. Activities are trip-based, not
// user-based: the trip must be named explicitly via ?tripId= — there is no
// global activity listing.
func (s *Server) ListActivities(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.CallerID(r.Context())
	if !ok {
		writeMessage(w, http.StatusNotFound, "Unauthorized: User not found")
		return
	}

	tripID, err := uuid.Parse(r.URL.Query().Get("tripId"))
	if err != nil {
		writeMessage(w, http.StatusUnprocessableEntity, "tripId query parameter is required")
		return
	}

	activities, err := s.activities.ListByTrip(r.Context(), caller, tripID)
	if err != nil {
		writeError(w, r, err, "Trip")
		return
	}
	writeJSON(w, http.StatusOK, activities)
}

// CreateActivity handles POST /activities/add. The body carries the id of
// the trip the activity is added to.
func (s *Server) CreateActivity(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.CallerID(r.Context())
	if !ok {
		writeMessage(w, http.StatusNotFound, "Unauthorized: User not found")
		return
	}

	var body activityRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeMessage(w, http.StatusUnprocessableEntity, "request body must be valid JSON")
		return
	}

	// An absent or malformed tripId is a validation failure, not a lookup
	// miss — the service re-checks for uuid.Nil.
	tripID := uuid.Nil
	if body.TripID != "" {
		parsed, err := uuid.Parse(body.TripID)
		if err != nil {
			writeMessage(w, http.StatusUnprocessableEntity, "tripId is required")
			return
		}
		tripID = parsed
	}

	activity, err := s.activities.Create(r.Context(), caller, tripID, body.fields())
	if err != nil {
		writeError(w, r, err, "Trip")
		return
	}
	writeJSON(w, http.StatusCreated, activity)
}

// UpdateActivity handles PUT /activities/{activityID}. The owning trip is
// resolved from the activity id within the caller's own trips; the body does
// not carry a tripId.
func (s *Server) UpdateActivity(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.CallerID(r.Context())
	if !ok {
		writeMessage(w, http.StatusNotFound, "Unauthorized: User not found")
		return
	}

	activityID, err := uuid.Parse(chi.URLParam(r, "activityID"))
	if err != nil {
		writeMessage(w, http.StatusNotFound, "Activity not found")
		return
	}

	var body activityRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeMessage(w, http.StatusUnprocessableEntity, "request body must be valid JSON")
		return
	}

	activity, err := s.activities.Update(r.Context(), caller, activityID, body.fields())
	if err != nil {
		writeError(w, r, err, "Activity")
		return
	}
	writeJSON(w, http.StatusOK, activity)
}

// DeleteActivity handles DELETE /activities/{activityID}. The response
// carries the deleted activity's prior value.
func (s *Server) DeleteActivity(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.CallerID(r.Context())
	if !ok {
		writeMessage(w, http.StatusNotFound, "Unauthorized: User not found")
		return
	}

	activityID, err := uuid.Parse(chi.URLParam(r, "activityID"))
	if err != nil {
		writeMessage(w, http.StatusNotFound, "Activity not found")
		return
	}

	activity, err := s.activities.Delete(r.Context(), caller, activityID)
	if err != nil {
		writeError(w, r, err, "Activity")
		return
	}
	writeJSON(w, http.StatusOK, activity)
}
