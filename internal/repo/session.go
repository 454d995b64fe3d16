package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/hotelcosta/parking-backend/internal/domain"
)

// SessionRepo defines the persistence operations for parking sessions.
// The Open→Closed transition happens exactly once, enforced by the
// state guard in Close.
type SessionRepo interface {
	// Create inserts a new open session and returns the persisted record.
	Create(ctx context.Context, s domain.Session) (domain.Session, error)

	// GetByID retrieves a single session by its UUID primary key.
	// Returns domain.ErrNotFound if no session with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Session, error)

	// GetOpenByPlate retrieves the open session for a canonical plate.
	// Returns domain.ErrNotFound if the plate has no open session.
	GetOpenByPlate(ctx context.Context, plate string) (domain.Session, error)

	// GetOpenBySpace retrieves the open session occupying a space.
	// Returns domain.ErrNotFound if the space is free.
	GetOpenBySpace(ctx context.Context, spaceNumber int) (domain.Session, error)

	// ListOpen returns all open sessions ordered by space number.
	ListOpen(ctx context.Context) ([]domain.Session, error)

	// Close transitions an open session to closed, recording exitTime, and
	// returns the updated record. Returns domain.ErrNotFound if the session
	// does not exist or is already closed.
	Close(ctx context.Context, id uuid.UUID, exitTime time.Time) (domain.Session, error)
}

// pgSessionRepo is the Postgres implementation of SessionRepo.
type pgSessionRepo struct {
	db db
}

// NewSessionRepo constructs a SessionRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewSessionRepo(db db) SessionRepo {
	return &pgSessionRepo{db: db}
}

const sessionColumns = `id, plate, space_number, entry_time, exit_time, nocturnal, state,
		       created_at, updated_at`

// Create inserts a new open session row and returns the full persisted record.
func (r *pgSessionRepo) Create(ctx context.Context, s domain.Session) (domain.Session, error) {
	const q = `
		INSERT INTO sessions (plate, space_number, entry_time, nocturnal, state)
		VALUES (@plate, @space_number, @entry_time, @nocturnal, 'open')
		RETURNING ` + sessionColumns

	args := pgx.NamedArgs{
		"plate":        s.Plate,
		"space_number": s.SpaceNumber,
		"entry_time":   s.EntryTime,
		"nocturnal":    s.Nocturnal,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanSession(row)
	if err != nil {
		return domain.Session{}, fmt.Errorf("repo.SessionRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves a session by primary key.
func (r *pgSessionRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Session, error) {
	const q = `
		SELECT ` + sessionColumns + `
		FROM sessions
		WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanSession(row)
	if err != nil {
		return domain.Session{}, fmt.Errorf("repo.SessionRepo.GetByID: %w", err)
	}
	return result, nil
}

// GetOpenByPlate retrieves the open session for a plate, if any.
func (r *pgSessionRepo) GetOpenByPlate(ctx context.Context, plate string) (domain.Session, error) {
	const q = `
		SELECT ` + sessionColumns + `
		FROM sessions
		WHERE plate = @plate AND state = 'open'`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"plate": plate})
	result, err := scanSession(row)
	if err != nil {
		return domain.Session{}, fmt.Errorf("repo.SessionRepo.GetOpenByPlate: %w", err)
	}
	return result, nil
}

// GetOpenBySpace retrieves the open session occupying a space, if any.
func (r *pgSessionRepo) GetOpenBySpace(ctx context.Context, spaceNumber int) (domain.Session, error) {
	const q = `
		SELECT ` + sessionColumns + `
		FROM sessions
		WHERE space_number = @space_number AND state = 'open'`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"space_number": spaceNumber})
	result, err := scanSession(row)
	if err != nil {
		return domain.Session{}, fmt.Errorf("repo.SessionRepo.GetOpenBySpace: %w", err)
	}
	return result, nil
}

// ListOpen returns all open sessions ordered by space number ascending.
func (r *pgSessionRepo) ListOpen(ctx context.Context) ([]domain.Session, error) {
	const q = `
		SELECT ` + sessionColumns + `
		FROM sessions
		WHERE state = 'open'
		ORDER BY space_number`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.SessionRepo.ListOpen: %w", err)
	}
	defer rows.Close()

	var sessions []domain.Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.SessionRepo.ListOpen: scan: %w", err)
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.SessionRepo.ListOpen: rows: %w", err)
	}

	return sessions, nil
}

// Close records the exit time and flips state to closed.
// The state guard in the WHERE clause makes the transition idempotence-safe:
// a second close finds no open row and reports ErrNotFound.
func (r *pgSessionRepo) Close(ctx context.Context, id uuid.UUID, exitTime time.Time) (domain.Session, error) {
	const q = `
		UPDATE sessions
		SET exit_time  = @exit_time,
		    state      = 'closed',
		    updated_at = now()
		WHERE id = @id AND state = 'open'
		RETURNING ` + sessionColumns

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id, "exit_time": exitTime})
	result, err := scanSession(row)
	if err != nil {
		return domain.Session{}, fmt.Errorf("repo.SessionRepo.Close: %w", err)
	}
	return result, nil
}

// scanSession maps a single database row into a domain.Session.
// It handles the UUID and nullable exit_time conversions.
func scanSession(s scanner) (domain.Session, error) {
	var (
		sess     domain.Session
		id       pgtype.UUID
		exitTime pgtype.Timestamptz
		state    string
	)

	err := s.Scan(&id, &sess.Plate, &sess.SpaceNumber, &sess.EntryTime, &exitTime,
		&sess.Nocturnal, &state, &sess.CreatedAt, &sess.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Session{}, domain.ErrNotFound
		}
		return domain.Session{}, err
	}

	sess.ID = uuid.UUID(id.Bytes)
	sess.State = domain.SessionState(state)
	if exitTime.Valid {
		et := exitTime.Time
		sess.ExitTime = &et
	}

	return sess, nil
}
