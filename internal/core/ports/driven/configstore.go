package driven

// ConfigStore provides persistent application configuration.
type ConfigStore interface {
	// Get retrieves a raw configuration value by key.
	Get(key string) (any, bool)

	// GetString retrieves a string configuration value.
	// Returns empty string if not found or wrong type.
	GetString(key string) string

	// GetInt retrieves an integer configuration value.
	// Returns 0 if not found or wrong type.
	GetInt(key string) int

	// Set stores a configuration value and persists it.
	Set(key string, value any) error
}
