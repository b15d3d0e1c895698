package sessions

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository implementation backed by Postgres
type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, userID string) (*Session, error) {
	id, err := GenerateSessionID()
	if err != nil {
		return nil, err
	}

	var session Session

	err = r.db.QueryRow(ctx, queryCreate, id, userID, time.Now().Add(TTL)).Scan(
		&session.ID,
		&session.UserID,
		&session.ExpiresAt,
		&session.CreatedAt,
	)

	if err != nil {
		return nil, err
	}

	return &session, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*Session, error) {
	var session Session

	err := r.db.QueryRow(ctx, queryGet, id).Scan(
		&session.ID,
		&session.UserID,
		&session.ExpiresAt,
		&session.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}

	if err != nil {
		return nil, err
	}

	// expired sessions read as absent; remove the stale row
	if session.ExpiresAt.Before(time.Now()) {
		_ = r.Delete(ctx, id) //nolint:errcheck // best-effort cleanup
		return nil, ErrNotFound
	}

	return &session, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, queryDelete, id)
	return err
}

func (r *PostgresRepository) DeleteExpired(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx, queryDeleteExpired)
	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}
