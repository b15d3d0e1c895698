package users

import (
	"context"
	"errors"

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

func (r *PostgresRepository) FindOrCreateByGoogle(
	ctx context.Context,
	googleID, email, name, avatar string,
) (*User, error) {
	var user User

	err := r.db.QueryRow(
		ctx,
		queryFindOrCreateByGoogle,
		googleID,
		email,
		name,
		nullable(avatar),
	).Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&user.Avatar,
		&user.GoogleID,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *PostgresRepository) FindByID(ctx context.Context, id string) (*User, error) {
	var user User

	err := r.db.QueryRow(ctx, queryFindByID, id).Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&user.Avatar,
		&user.GoogleID,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}

	if err != nil {
		return nil, err
	}

	return &user, nil
}
