package driven

// ConfigStore persists user configuration such as provider API keys.
// Implementations must be safe for concurrent use.
type ConfigStore interface {
	// Get retrieves a value by key. The second return indicates
	// whether the key exists.
	Get(key string) (any, bool)

	// GetString retrieves a string value, or "" if absent.
	GetString(key string) string

	// Set stores a value and persists it immediately.
	Set(key string, value any) error

	// Load re-reads configuration from the backing store.
	Load() error
}
