// Package repo contains all database access logic for the trip planner API.
// Each resource has its own file with an interface and a Postgres implementation.
// No business logic lives here — only SQL and type mapping.
package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/voyagekit/trip-planner/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// UserRepo defines the persistence operations for the User aggregate.
// The aggregate is stored whole as a JSONB document: one row per user, one
// atomic UPDATE per mutation. There is no finer-grained write path — nested
// trips and activities are always saved through their owning document, so a
// reader can never observe a partially applied mutation.
type UserRepo interface {
	// Create inserts a new user aggregate and returns the persisted record
	// (with a DB-generated id when user.ID is the zero UUID).
	Create(ctx context.Context, user domain.User) (domain.User, error)

	// GetByID retrieves a user aggregate by its UUID primary key.
	// Returns domain.ErrNotFound if no user with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.User, error)

	// Save replaces the stored aggregate with the given value in one atomic
	// update and returns the persisted post-save state.
	// Returns domain.ErrNotFound if the user row no longer exists.
	Save(ctx context.Context, user domain.User) (domain.User, error)
}

// pgUserRepo is the Postgres implementation of UserRepo.
type pgUserRepo struct {
	db db
}

// NewUserRepo constructs a UserRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewUserRepo(db db) UserRepo {
	return &pgUserRepo{db: db}
}

// Create inserts a new user row. The document column stores the trips; the
// id lives in its own column and is mirrored into the returned aggregate.
func (r *pgUserRepo) Create(ctx context.Context, user domain.User) (domain.User, error) {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	doc, err := marshalDoc(user)
	if err != nil {
		return domain.User{}, fmt.Errorf("repo.UserRepo.Create: %w", err)
	}

	const q = `
		INSERT INTO users (id, doc)
		VALUES (@id, @doc)
		RETURNING id, doc`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": user.ID, "doc": doc})
	result, err := scanUser(row)
	if err != nil {
		return domain.User{}, fmt.Errorf("repo.UserRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves a user aggregate by primary key.
func (r *pgUserRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.User, error) {
	const q = `
		SELECT id, doc
		FROM users
		WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanUser(row)
	if err != nil {
		return domain.User{}, fmt.Errorf("repo.UserRepo.GetByID: %w", err)
	}
	return result, nil
}

// Save replaces the stored document in a single atomic UPDATE and returns
// the persisted state as read back from the database.
func (r *pgUserRepo) Save(ctx context.Context, user domain.User) (domain.User, error) {
	doc, err := marshalDoc(user)
	if err != nil {
		return domain.User{}, fmt.Errorf("repo.UserRepo.Save: %w", err)
	}

	const q = `
		UPDATE users
		SET doc = @doc, updated_at = now()
		WHERE id = @id
		RETURNING id, doc`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": user.ID, "doc": doc})
	result, err := scanUser(row)
	if err != nil {
		return domain.User{}, fmt.Errorf("repo.UserRepo.Save: %w", err)
	}
	return result, nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing scanUser to be
// reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// docBody is the JSONB payload: everything in domain.User except the id,
// which is authoritative in its own column.
type docBody struct {
	Trips []domain.Trip `json:"trips"`
}

// marshalDoc serializes the aggregate's document body for the JSONB column.
// A nil trips slice is stored as [] so the document shape is stable.
func marshalDoc(user domain.User) ([]byte, error) {
	body := docBody{Trips: user.Trips}
	if body.Trips == nil {
		body.Trips = []domain.Trip{}
	}
	return json.Marshal(body)
}

// scanUser maps a single database row into a domain.User, unmarshalling the
// JSONB document column.
func scanUser(s scanner) (domain.User, error) {
	var (
		u   domain.User
		doc []byte
	)

	if err := s.Scan(&u.ID, &doc); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, domain.ErrNotFound
		}
		return domain.User{}, err
	}

	var body docBody
	if err := json.Unmarshal(doc, &body); err != nil {
		return domain.User{}, fmt.Errorf("decode doc: %w", err)
	}
	u.Trips = body.Trips

	return u, nil
}
