package sessions

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

const (
	sqliteQueryCreate = `
		INSERT INTO sessions (id, user_id, expires_at, created_at)
		VALUES (?, ?, ?, ?)
	`

	sqliteQueryGet = `
		SELECT id, user_id, expires_at, created_at
		FROM sessions
		WHERE id = ?
	`

	sqliteQueryDelete = `
		DELETE FROM sessions
		WHERE id = ?
	`

	sqliteQueryDeleteExpired = `
		DELETE FROM sessions
		WHERE expires_at < ?
	`
)

// Repository implementation backed by the embedded SQLite file
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, userID string) (*Session, error) {
	id, err := GenerateSessionID()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	session := &Session{
		ID:        id,
		UserID:    userID,
		ExpiresAt: now.Add(TTL),
		CreatedAt: now,
	}

	_, err = r.db.ExecContext(
		ctx,
		sqliteQueryCreate,
		session.ID,
		session.UserID,
		session.ExpiresAt,
		session.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return session, nil
}

func (r *SQLiteRepository) Get(ctx context.Context, id string) (*Session, error) {
	var session Session

	err := r.db.QueryRowContext(ctx, sqliteQueryGet, id).Scan(
		&session.ID,
		&session.UserID,
		&session.ExpiresAt,
		&session.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}

	if err != nil {
		return nil, err
	}

	if session.ExpiresAt.Before(time.Now()) {
		_ = r.Delete(ctx, id) //nolint:errcheck // best-effort cleanup
		return nil, ErrNotFound
	}

	return &session, nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, sqliteQueryDelete, id)
	return err
}

func (r *SQLiteRepository) DeleteExpired(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, sqliteQueryDeleteExpired, time.Now().UTC())
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}
