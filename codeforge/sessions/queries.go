package sessions

const (
	queryCreate = `
		INSERT INTO sessions (id, user_id, expires_at)
		VALUES ($1, $2, $3)
		RETURNING id, user_id, expires_at, created_at
	`

	queryGet = `
		SELECT id, user_id, expires_at, created_at
		FROM sessions
		WHERE id = $1
	`

	queryDelete = `
		DELETE FROM sessions
		WHERE id = $1
	`

	queryDeleteExpired = `
		DELETE FROM sessions
		WHERE expires_at < NOW()
	`
)
