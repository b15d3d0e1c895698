package users

const (
	queryFindOrCreateByGoogle = `
		INSERT INTO users (google_id, email, name, avatar)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (google_id)
		DO UPDATE SET
			name = EXCLUDED.name,
			avatar = EXCLUDED.avatar,
			updated_at = NOW()
		RETURNING id, email, name, avatar, google_id, created_at, updated_at
	`

	queryFindByID = `
		SELECT id, email, name, avatar, google_id, created_at, updated_at
		FROM users
		WHERE id = $1
	`
)
