package config

type Config struct {
	// DatabaseURL selects the Postgres backend when set.
	// When empty the server falls back to the embedded SQLite file.
	DatabaseURL string

	// SQLitePath is the embedded database file used when DatabaseURL is empty.
	SQLitePath string

	// OpenAIKey enables the real generation provider.
	// When empty every request is served by the deterministic mock.
	OpenAIKey string

	// OpenAIModel overrides the default completion model.
	OpenAIModel string

	GoogleClientID     string
	GoogleClientSecret string
	SessionSecret      string

	BaseURL        string
	FrontendOrigin string
	Environment    string
}
