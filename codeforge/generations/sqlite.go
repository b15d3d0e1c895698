package generations

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	sqliteQueryCreate = `
		INSERT INTO code_generations (id, user_id, prompt, language, framework, generated_code, explanation, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	sqliteQueryList = `
		SELECT id, user_id, prompt, language, framework, generated_code, explanation, created_at
		FROM code_generations
		ORDER BY created_at DESC
		LIMIT ?
	`

	sqliteQueryListByUser = `
		SELECT id, user_id, prompt, language, framework, generated_code, explanation, created_at
		FROM code_generations
		WHERE user_id = ?
		ORDER BY created_at DESC
		LIMIT ?
	`

	sqliteQueryGet = `
		SELECT id, user_id, prompt, language, framework, generated_code, explanation, created_at
		FROM code_generations
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

func (r *SQLiteRepository) Create(ctx context.Context, params CreateParams) (*Generation, error) {
	// SQLite has no server-side uuid generator, so ids and timestamps
	// are assigned here instead of by column defaults
	id := uuid.NewString()
	createdAt := time.Now().UTC()

	_, err := r.db.ExecContext(
		ctx,
		sqliteQueryCreate,
		id,
		nullable(params.UserID),
		params.Prompt,
		params.Language,
		nullable(params.Framework),
		params.GeneratedCode,
		params.Explanation,
		createdAt,
	)
	if err != nil {
		return nil, err
	}

	return &Generation{
		ID:            id,
		UserID:        nullable(params.UserID),
		Prompt:        params.Prompt,
		Language:      params.Language,
		Framework:     nullable(params.Framework),
		GeneratedCode: params.GeneratedCode,
		Explanation:   params.Explanation,
		CreatedAt:     createdAt,
	}, nil
}

func (r *SQLiteRepository) List(ctx context.Context, limit int, userID string) ([]Generation, error) {
	var (
		rows *sql.Rows
		err  error
	)

	if userID == "" {
		rows, err = r.db.QueryContext(ctx, sqliteQueryList, limit)
	} else {
		rows, err = r.db.QueryContext(ctx, sqliteQueryListByUser, userID, limit)
	}

	if err != nil {
		return nil, err
	}

	defer rows.Close() //nolint:errcheck

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

func (r *SQLiteRepository) Get(ctx context.Context, id string) (*Generation, error) {
	var gen Generation

	err := r.db.QueryRowContext(ctx, sqliteQueryGet, id).Scan(
		&gen.ID,
		&gen.UserID,
		&gen.Prompt,
		&gen.Language,
		&gen.Framework,
		&gen.GeneratedCode,
		&gen.Explanation,
		&gen.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}

	if err != nil {
		return nil, err
	}

	return &gen, nil
}
