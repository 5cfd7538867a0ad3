package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/voyagekit/trip-planner/internal/domain"
)

// SessionRepo resolves bearer tokens to user ids. Session issuance (login)
// is handled by an external system that writes the sessions table; this API
// only consumes it.
type SessionRepo interface {
	// GetUserID returns the user id for a session token.
	// Returns domain.ErrNotFound if the token is unknown.
	GetUserID(ctx context.Context, token string) (uuid.UUID, error)

	// Create inserts a session row. Used by fixtures and integration tests.
	Create(ctx context.Context, token string, userID uuid.UUID) error
}

// pgSessionRepo is the Postgres implementation of SessionRepo.
type pgSessionRepo struct {
	db db
}

// NewSessionRepo constructs a SessionRepo backed by the provided db connection.
func NewSessionRepo(db db) SessionRepo {
	return &pgSessionRepo{db: db}
}

func (r *pgSessionRepo) GetUserID(ctx context.Context, token string) (uuid.UUID, error) {
	const q = `
		SELECT user_id
		FROM sessions
		WHERE token = @token`

	var userID uuid.UUID
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"token": token}).Scan(&userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, fmt.Errorf("repo.SessionRepo.GetUserID: %w", domain.ErrNotFound)
		}
		return uuid.Nil, fmt.Errorf("repo.SessionRepo.GetUserID: %w", err)
	}
	return userID, nil
}

func (r *pgSessionRepo) Create(ctx context.Context, token string, userID uuid.UUID) error {
	const q = `
		INSERT INTO sessions (token, user_id)
		VALUES (@token, @user_id)`

	if _, err := r.db.Exec(ctx, q, pgx.NamedArgs{"token": token, "user_id": userID}); err != nil {
		return fmt.Errorf("repo.SessionRepo.Create: %w", err)
	}
	return nil
}
