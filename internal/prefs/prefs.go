// Package prefs provides key-value preference storage for user settings
// that survive across sessions (language, currency, number format).
// Storage is injected into consumers so core logic can be tested without
// touching the filesystem.
package prefs

// Preference keys written and read by the onboarding flow.
const (
	KeyLanguage     = "language"
	KeyUserName     = "user_name"
	KeyCurrency     = "currency"
	KeyNumberFormat = "number_format"
)

// Store is a minimal read/write capability over string preferences.
type Store interface {
	// Get returns the stored value for key. The second return value
	// reports whether the key was present.
	Get(key string) (string, bool)
	// Set stores value under key.
	Set(key, value string) error
}
