package generations

const (
	queryCreate = `
		INSERT INTO code_generations (user_id, prompt, language, framework, generated_code, explanation)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, user_id, prompt, language, framework, generated_code, explanation, created_at
	`

	queryList = `
		SELECT id, user_id, prompt, language, framework, generated_code, explanation, created_at
		FROM code_generations
		ORDER BY created_at DESC
		LIMIT $1
	`

	queryListByUser = `
		SELECT id, user_id, prompt, language, framework, generated_code, explanation, created_at
		FROM code_generations
		WHERE user_id = $2
		ORDER BY created_at DESC
		LIMIT $1
	`

	queryGet = `
		SELECT id, user_id, prompt, language, framework, generated_code, explanation, created_at
		FROM code_generations
		WHERE id = $1
	`
)
