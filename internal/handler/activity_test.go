package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voyagekit/trip-planner/internal/domain"
	"github.com/voyagekit/trip-planner/internal/handler"
	"github.com/voyagekit/trip-planner/internal/service"
)

// mockActivityService is a hand-written test double for handler.ActivityServicer.
type mockActivityService struct {
	listByTrip func(ctx context.Context, callerID, tripID uuid.UUID) ([]domain.Activity, error)
	create     func(ctx context.Context, callerID, tripID uuid.UUID, fields service.ActivityFields) (domain.Activity, error)
	update     func(ctx context.Context, callerID, activityID uuid.UUID, fields service.ActivityFields) (domain.Activity, error)
	delete     func(ctx context.Context, callerID, activityID uuid.UUID) (domain.Activity, error)
}

func (m *mockActivityService) ListByTrip(ctx context.Context, callerID, tripID uuid.UUID) ([]domain.Activity, error) {
	return m.listByTrip(ctx, callerID, tripID)
}
func (m *mockActivityService) Create(ctx context.Context, callerID, tripID uuid.UUID, fields service.ActivityFields) (domain.Activity, error) {
	return m.create(ctx, callerID, tripID, fields)
}
func (m *mockActivityService) Update(ctx context.Context, callerID, activityID uuid.UUID, fields service.ActivityFields) (domain.Activity, error) {
	return m.update(ctx, callerID, activityID, fields)
}
func (m *mockActivityService) Delete(ctx context.Context, callerID, activityID uuid.UUID) (domain.Activity, error) {
	return m.delete(ctx, callerID, activityID)
}

var _ handler.ActivityServicer = (*mockActivityService)(nil)

// ---- GET /activities -------------------------------------------------------

func TestListActivities(t *testing.T) {
	caller := uuid.New()
	tripID := uuid.New()
	acts := &mockActivityService{
		listByTrip: func(_ context.Context, callerID, id uuid.UUID) ([]domain.Activity, error) {
			assert.Equal(t, caller, callerID)
			assert.Equal(t, tripID, id)
			return []domain.Activity{{ID: uuid.New(), Name: "Snorkeling"}}, nil
		},
	}
	h := newRouter(caller, nil, acts)

	rec := do(t, h, http.MethodGet, "/activities?tripId="+tripID.String(), "")

	require.Equal(t, http.StatusOK, rec.Code)
	var got []domain.Activity
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	require.Len(t, got, 1)
	assert.Equal(t, "Snorkeling", got[0].Name)
}

func TestListActivities_MissingTripID(t *testing.T) {
	h := newRouter(uuid.New(), nil, &mockActivityService{})

	// No tripId query parameter: rejected before the service is consulted.
	rec := do(t, h, http.MethodGet, "/activities", "")

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestListActivities_TripNotFound(t *testing.T) {
	acts := &mockActivityService{
		listByTrip: func(_ context.Context, _, _ uuid.UUID) ([]domain.Activity, error) {
			return nil, domain.ErrNotFound
		},
	}
	h := newRouter(uuid.New(), nil, acts)

	rec := do(t, h, http.MethodGet, "/activities?tripId="+uuid.NewString(), "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListActivities_PutNotSupported(t *testing.T) {
	h := newRouter(uuid.New(), nil, &mockActivityService{})

	rec := do(t, h, http.MethodPut, "/activities", "")

	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "PUT operation not supported on /activities", rec.Body.String())
}

// ---- POST /activities/add --------------------------------------------------

func TestCreateActivity(t *testing.T) {
	caller := uuid.New()
	tripID := uuid.New()
	created := domain.Activity{
		ID:        uuid.New(),
		Name:      "Snorkeling",
		StartDate: "2024-05-01",
		StartTime: "09:00",
		Location:  "Reef",
		AddOns:    domain.AddOns{TicketUploads: []string{}},
	}
	acts := &mockActivityService{
		create: func(_ context.Context, callerID, id uuid.UUID, fields service.ActivityFields) (domain.Activity, error) {
			assert.Equal(t, caller, callerID)
			assert.Equal(t, tripID, id)
			assert.Equal(t, "Snorkeling", fields.Name)
			assert.Equal(t, "Reef", fields.Location)
			assert.Equal(t, []string{}, fields.AddOns.TicketUploads)
			return created, nil
		},
	}
	h := newRouter(caller, nil, acts)

	body := `{"tripId":"` + tripID.String() + `","name":"Snorkeling","startDate":"2024-05-01","startTime":"09:00","location":"Reef","addOns":{"comments":"","ticketNo":"","ticketUploads":[]}}`
	rec := do(t, h, http.MethodPost, "/activities/add", body)

	require.Equal(t, http.StatusCreated, rec.Code)
	var got domain.Activity
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Snorkeling", got.Name)
}

func TestCreateActivity_MalformedTripID(t *testing.T) {
	h := newRouter(uuid.New(), nil, &mockActivityService{})

	rec := do(t, h, http.MethodPost, "/activities/add", `{"tripId":"nope","name":"x"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestCreateActivity_MissingTripID(t *testing.T) {
	acts := &mockActivityService{
		create: func(_ context.Context, _, tripID uuid.UUID, _ service.ActivityFields) (domain.Activity, error) {
			// The handler passes uuid.Nil through; the service owns the rule.
			assert.Equal(t, uuid.Nil, tripID)
			return domain.Activity{}, domain.ErrValidation
		},
	}
	h := newRouter(uuid.New(), nil, acts)

	rec := do(t, h, http.MethodPost, "/activities/add", `{"name":"Snorkeling"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestCreateActivity_ForeignTrip(t *testing.T) {
	acts := &mockActivityService{
		create: func(_ context.Context, _, _ uuid.UUID, _ service.ActivityFields) (domain.Activity, error) {
			return domain.Activity{}, domain.ErrNotFound
		},
	}
	h := newRouter(uuid.New(), nil, acts)

	body := `{"tripId":"` + uuid.NewString() + `","name":"Snorkeling"}`
	rec := do(t, h, http.MethodPost, "/activities/add", body)

	// A trip owned by someone else reads as missing.
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ---- PUT /activities/{activityID} ------------------------------------------

func TestUpdateActivity(t *testing.T) {
	caller := uuid.New()
	activityID := uuid.New()
	acts := &mockActivityService{
		update: func(_ context.Context, callerID, id uuid.UUID, fields service.ActivityFields) (domain.Activity, error) {
			assert.Equal(t, caller, callerID)
			assert.Equal(t, activityID, id)
			assert.Equal(t, "Gallery", fields.Name)
			assert.Equal(t, "", fields.StartTime, "omitted field arrives as zero value")
			return domain.Activity{ID: id, Name: "Gallery"}, nil
		},
	}
	h := newRouter(caller, nil, acts)

	rec := do(t, h, http.MethodPut, "/activities/"+activityID.String(), `{"name":"Gallery","location":"New Town"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var got domain.Activity
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, activityID, got.ID)
}

func TestUpdateActivity_NotFound(t *testing.T) {
	acts := &mockActivityService{
		update: func(_ context.Context, _, _ uuid.UUID, _ service.ActivityFields) (domain.Activity, error) {
			return domain.Activity{}, domain.ErrNotFound
		},
	}
	h := newRouter(uuid.New(), nil, acts)

	rec := do(t, h, http.MethodPut, "/activities/"+uuid.NewString(), `{"name":"x"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateActivity_PostNotSupported(t *testing.T) {
	h := newRouter(uuid.New(), nil, &mockActivityService{})
	id := uuid.NewString()

	rec := do(t, h, http.MethodPost, "/activities/"+id, "")

	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "POST operation not supported on /activities/"+id, rec.Body.String())
}

// ---- DELETE /activities/{activityID} ---------------------------------------

func TestDeleteActivity_ReturnsPriorValue(t *testing.T) {
	caller := uuid.New()
	removed := domain.Activity{ID: uuid.New(), Name: "Snorkeling", Location: "Reef"}
	acts := &mockActivityService{
		delete: func(_ context.Context, callerID, id uuid.UUID) (domain.Activity, error) {
			assert.Equal(t, caller, callerID)
			assert.Equal(t, removed.ID, id)
			return removed, nil
		},
	}
	h := newRouter(caller, nil, acts)

	rec := do(t, h, http.MethodDelete, "/activities/"+removed.ID.String(), "")

	require.Equal(t, http.StatusOK, rec.Code)
	var got domain.Activity
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, removed, got)
}

func TestDeleteActivity_UnknownID(t *testing.T) {
	acts := &mockActivityService{
		delete: func(_ context.Context, _, _ uuid.UUID) (domain.Activity, error) {
			return domain.Activity{}, domain.ErrNotFound
		},
	}
	h := newRouter(uuid.New(), nil, acts)

	rec := do(t, h, http.MethodDelete, "/activities/"+uuid.NewString(), "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
