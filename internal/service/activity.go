package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/voyagekit/trip-planner/internal/domain"
	"github.com/voyagekit/trip-planner/internal/repo"
)

// ActivityService implements business logic for Activity operations.
// Activities are trip-based: creating and listing require the owning trip's
// id, while update and delete resolve the owning trip from the activity id —
// always within the caller's own aggregate.
type ActivityService struct {
	users repo.UserRepo
}

// NewActivityService constructs an ActivityService backed by the provided UserRepo.
func NewActivityService(users repo.UserRepo) *ActivityService {
	return &ActivityService{users: users}
}

// ActivityFields carries the client-supplied activity fields for Create and
// Update. Update replaces all of these wholesale; an omitted field becomes
// its zero value by intent.
type ActivityFields struct {
	Name      string
	StartDate string
	StartTime string
	Location  string
	AddOns    domain.AddOns
}

// ListByTrip returns the activities of the caller's trip in stored order.
// The trip id must be supplied explicitly — there is no global listing.
// Always returns a non-nil slice so callers can safely range over it.
func (s *ActivityService) ListByTrip(ctx context.Context, callerID, tripID uuid.UUID) ([]domain.Activity, error) {
	user, err := loadCaller(ctx, s.users, callerID)
	if err != nil {
		return nil, fmt.Errorf("service.ActivityService.ListByTrip: %w", err)
	}

	trip := user.Trip(tripID)
	if trip == nil {
		return nil, fmt.Errorf("service.ActivityService.ListByTrip: trip %s: %w", tripID, domain.ErrNotFound)
	}
	if trip.Activities == nil {
		return []domain.Activity{}, nil
	}
	return trip.Activities, nil
}

// Create appends a new activity to the caller's trip under a fresh id, saves
// the aggregate, and returns the activity as persisted.
// Returns domain.ErrValidation if tripID or name is missing, and
// domain.ErrNotFound if the caller owns no trip with that id — including
// when the id belongs to another user's trip.
func (s *ActivityService) Create(ctx context.Context, callerID, tripID uuid.UUID, fields ActivityFields) (domain.Activity, error) {
	if tripID == uuid.Nil {
		return domain.Activity{}, fmt.Errorf("%w: tripId is required", domain.ErrValidation)
	}
	if strings.TrimSpace(fields.Name) == "" {
		return domain.Activity{}, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}

	user, err := loadCaller(ctx, s.users, callerID)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: %w", err)
	}

	trip := user.Trip(tripID)
	if trip == nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: trip %s: %w", tripID, domain.ErrNotFound)
	}

	activity := domain.Activity{
		ID:        uuid.New(),
		Name:      fields.Name,
		StartDate: fields.StartDate,
		StartTime: fields.StartTime,
		Location:  fields.Location,
		AddOns:    fields.AddOns,
	}
	trip.AppendActivity(activity)

	saved, err := s.users.Save(ctx, user)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: %w", err)
	}

	return extractActivity(saved, activity.ID, "service.ActivityService.Create")
}

// Update replaces the activity's fields wholesale and returns the activity
// as persisted. Resolution is two-level (owning trip, then activity) within
// the caller's aggregate; a miss at either level is domain.ErrNotFound.
func (s *ActivityService) Update(ctx context.Context, callerID, activityID uuid.UUID, fields ActivityFields) (domain.Activity, error) {
	user, err := loadCaller(ctx, s.users, callerID)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Update: %w", err)
	}

	_, activity := user.FindActivity(activityID)
	if activity == nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Update: activity %s: %w", activityID, domain.ErrNotFound)
	}
	activity.Name = fields.Name
	activity.StartDate = fields.StartDate
	activity.StartTime = fields.StartTime
	activity.Location = fields.Location
	activity.AddOns = fields.AddOns

	saved, err := s.users.Save(ctx, user)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Update: %w", err)
	}

	return extractActivity(saved, activityID, "service.ActivityService.Update")
}

// Delete removes the activity from its owning trip and returns its prior
// value. Exactly one element leaves the sequence; siblings keep their ids
// and relative order.
func (s *ActivityService) Delete(ctx context.Context, callerID, activityID uuid.UUID) (domain.Activity, error) {
	user, err := loadCaller(ctx, s.users, callerID)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Delete: %w", err)
	}

	trip, activity := user.FindActivity(activityID)
	if activity == nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Delete: activity %s: %w", activityID, domain.ErrNotFound)
	}
	removed, _ := trip.RemoveActivity(activityID)

	if _, err := s.users.Save(ctx, user); err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Delete: %w", err)
	}
	return removed, nil
}

// extractActivity re-scans the post-save aggregate's trips for the activity
// id (first match wins). The persisted state is authoritative for the
// response payload.
func extractActivity(saved domain.User, activityID uuid.UUID, op string) (domain.Activity, error) {
	_, activity := saved.FindActivity(activityID)
	if activity == nil {
		return domain.Activity{}, fmt.Errorf("%s: activity %s missing after save: %w", op, activityID, domain.ErrNotFound)
	}
	return *activity, nil
}
