// Package service contains the business logic for the trip planner API.
// Services load the caller's aggregate, verify ownership, apply the mutation
// in memory, save the whole document atomically, and extract the affected
// element from the persisted post-save state. No SQL lives here — services
// depend on repo interfaces, not implementations.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/voyagekit/trip-planner/internal/domain"
	"github.com/voyagekit/trip-planner/internal/repo"
)

// loadCaller fetches the caller's aggregate. This is the ownership guard:
// every operation starts here, and all subsequent resolution stays inside
// the returned aggregate, so a caller can never reach a trip or activity
// owned by someone else. A missing user row (identity became invalid
// mid-session) is reported as ErrUnauthenticated, not ErrNotFound.
func loadCaller(ctx context.Context, users repo.UserRepo, callerID uuid.UUID) (domain.User, error) {
	user, err := users.GetByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.User{}, fmt.Errorf("caller %s: %w", callerID, domain.ErrUnauthenticated)
		}
		return domain.User{}, err
	}
	return user, nil
}
