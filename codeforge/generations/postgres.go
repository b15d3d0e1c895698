package generations

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

func (r *PostgresRepository) Create(ctx context.Context, params CreateParams) (*Generation, error) {
	var gen Generation

	err := r.db.QueryRow(
		ctx,
		queryCreate,
		nullable(params.UserID),
		params.Prompt,
		params.Language,
		nullable(params.Framework),
		params.GeneratedCode,
		params.Explanation,
	).Scan(
		&gen.ID,
		&gen.UserID,
		&gen.Prompt,
		&gen.Language,
		&gen.Framework,
		&gen.GeneratedCode,
		&gen.Explanation,
		&gen.CreatedAt,
	)

	if err != nil {
		return nil, err
	}

	return &gen, nil
}

func (r *PostgresRepository) List(ctx context.Context, limit int, userID string) ([]Generation, error) {
	var (
		rows pgx.Rows
		err  error
	)

	if userID == "" {
		rows, err = r.db.Query(ctx, queryList, limit)
	} else {
		rows, err = r.db.Query(ctx, queryListByUser, limit, userID)
	}

	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var gens []Generation

	for rows.Next() {
		var gen Generation

		err := rows.Scan(
			&gen.ID,
			&gen.UserID,
			&gen.Prompt,
			&gen.Language,
			&gen.Framework,
			&gen.GeneratedCode,
			&gen.Explanation,
			&gen.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		gens = append(gens, gen)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return gens, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*Generation, error) {
	var gen Generation

	err := r.db.QueryRow(ctx, queryGet, id).Scan(
		&gen.ID,
		&gen.UserID,
		&gen.Prompt,
		&gen.Language,
		&gen.Framework,
		&gen.GeneratedCode,
		&gen.Explanation,
		&gen.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}

	if err != nil {
		return nil, err
	}

	return &gen, nil
}
