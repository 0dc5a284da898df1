// Package storage holds the key/value capabilities the login form writes to.
// Browser builds back them with document.cookie and sessionStorage; native
// builds use MemoryStore and FileStore.
package storage

// Keys owned by the login form.
const (
	RememberKey = "rememberUserId"
	TokenKey    = "ACCESS_TOKEN"
)

// CredentialStore is storage that outlives the page or process.
type CredentialStore interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Remove(key string) error
}

// SessionStore is storage scoped to a tab or process lifetime.
type SessionStore interface {
	Set(key, value string) error
}
