package models

// APIKeyStatus is the lifecycle state of an API key.
type APIKeyStatus string

const (
	APIKeyLive    APIKeyStatus = "Live"
	APIKeyRevoked APIKeyStatus = "Revoked"
)

// APIKey is a placeholder key entry kept beside the configuration.
// No authentication is performed with it.
type APIKey struct {
	ID      string       `json:"id"`
	Name    string       `json:"name"`
	Status  APIKeyStatus `json:"status"`
	Created string       `json:"created"`
	Used    int          `json:"used"`
}
