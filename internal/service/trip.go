package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/voyagekit/trip-planner/internal/domain"
	"github.com/voyagekit/trip-planner/internal/repo"
)

// TripService implements business logic for Trip operations. All operations
// are scoped to the authenticated caller's own aggregate.
type TripService struct {
	users repo.UserRepo
}

// NewTripService constructs a TripService backed by the provided UserRepo.
func NewTripService(users repo.UserRepo) *TripService {
	return &TripService{users: users}
}

// TripUpdate carries the mutable trip fields for Update. Nil pointers mean
// "leave the stored value alone" — a field is only written when the client
// explicitly supplied it, so an omitted departureDate is never invented or
// cleared.
type TripUpdate struct {
	TripName      *string
	DepartureDate *string
}

// List returns the caller's trips in stored order.
// Always returns a non-nil slice so callers can safely range over it.
func (s *TripService) List(ctx context.Context, callerID uuid.UUID) ([]domain.Trip, error) {
	user, err := loadCaller(ctx, s.users, callerID)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.List: %w", err)
	}
	if user.Trips == nil {
		return []domain.Trip{}, nil
	}
	return user.Trips, nil
}

// Create appends a new trip to the caller's collection under a fresh id,
// saves the aggregate, and returns the trip as persisted.
// Returns domain.ErrValidation if tripName is empty.
func (s *TripService) Create(ctx context.Context, callerID uuid.UUID, tripName, departureDate string) (domain.Trip, error) {
	if strings.TrimSpace(tripName) == "" {
		return domain.Trip{}, fmt.Errorf("%w: tripName is required", domain.ErrValidation)
	}

	user, err := loadCaller(ctx, s.users, callerID)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}

	trip := domain.Trip{
		ID:            uuid.New(),
		TripName:      tripName,
		DepartureDate: departureDate,
		Activities:    []domain.Activity{},
	}
	user.AppendTrip(trip)

	saved, err := s.users.Save(ctx, user)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}

	return extractTrip(saved, trip.ID, "service.TripService.Create")
}

// Update applies the supplied fields to the caller's trip and returns the
// trip as persisted. Resolution is caller-scoped: a trip id owned by another
// user yields domain.ErrNotFound and no write occurs.
func (s *TripService) Update(ctx context.Context, callerID, tripID uuid.UUID, upd TripUpdate) (domain.Trip, error) {
	user, err := loadCaller(ctx, s.users, callerID)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}

	trip := user.Trip(tripID)
	if trip == nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: trip %s: %w", tripID, domain.ErrNotFound)
	}
	if upd.TripName != nil {
		trip.TripName = *upd.TripName
	}
	if upd.DepartureDate != nil {
		trip.DepartureDate = *upd.DepartureDate
	}

	saved, err := s.users.Save(ctx, user)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}

	return extractTrip(saved, tripID, "service.TripService.Update")
}

// Delete removes the caller's trip and returns its prior value.
// Sibling trips keep their ids and relative order.
func (s *TripService) Delete(ctx context.Context, callerID, tripID uuid.UUID) (domain.Trip, error) {
	user, err := loadCaller(ctx, s.users, callerID)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Delete: %w", err)
	}

	removed, ok := user.RemoveTrip(tripID)
	if !ok {
		return domain.Trip{}, fmt.Errorf("service.TripService.Delete: trip %s: %w", tripID, domain.ErrNotFound)
	}

	if _, err := s.users.Save(ctx, user); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Delete: %w", err)
	}
	return removed, nil
}

// extractTrip re-resolves a trip from the post-save aggregate. The persisted
// state, not the pre-save in-memory value, is authoritative for the response.
func extractTrip(saved domain.User, tripID uuid.UUID, op string) (domain.Trip, error) {
	trip := saved.Trip(tripID)
	if trip == nil {
		return domain.Trip{}, fmt.Errorf("%s: trip %s missing after save: %w", op, tripID, domain.ErrNotFound)
	}
	return *trip, nil
}
