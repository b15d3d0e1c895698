package users

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	sqliteQueryUpsert = `
		INSERT INTO users (id, google_id, email, name, avatar, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (google_id)
		DO UPDATE SET
			name = excluded.name,
			avatar = excluded.avatar,
			updated_at = excluded.updated_at
	`

	sqliteQueryFindByGoogleID = `
		SELECT id, email, name, avatar, google_id, created_at, updated_at
		FROM users
		WHERE google_id = ?
	`

	sqliteQueryFindByID = `
		SELECT id, email, name, avatar, google_id, created_at, updated_at
		FROM users
		WHERE id = ?
	`
)

// Repository implementation backed by the embedded SQLite file
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) FindOrCreateByGoogle(
	ctx context.Context,
	googleID, email, name, avatar string,
) (*User, error) {
	now := time.Now().UTC()

	_, err := r.db.ExecContext(
		ctx,
		sqliteQueryUpsert,
		uuid.NewString(),
		googleID,
		email,
		name,
		nullable(avatar),
		now,
		now,
	)
	if err != nil {
		return nil, err
	}

	// upsert cannot tell us whether the insert or the update won,
	// so read the row back for the authoritative id and timestamps
	return r.findByGoogleID(ctx, googleID)
}

func (r *SQLiteRepository) FindByID(ctx context.Context, id string) (*User, error) {
	return r.scanOne(r.db.QueryRowContext(ctx, sqliteQueryFindByID, id))
}

func (r *SQLiteRepository) findByGoogleID(ctx context.Context, googleID string) (*User, error) {
	return r.scanOne(r.db.QueryRowContext(ctx, sqliteQueryFindByGoogleID, googleID))
}

func (r *SQLiteRepository) scanOne(row *sql.Row) (*User, error) {
	var user User

	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&user.Avatar,
		&user.GoogleID,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}

	if err != nil {
		return nil, err
	}

	return &user, nil
}
