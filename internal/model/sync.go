package model

import "time"

// SingletonID is the fixed identifier of the one remote row holding the
// entire farm's state.
const SingletonID = "singleton"

// SyncEnvelope is the remote row shape: the aggregate plus the time of the
// last successful upsert.
type SyncEnvelope struct {
	ID       string    `json:"id"`
	State    *AppState `json:"state"`
	LastSync time.Time `json:"last_sync"`
}

// RemoteConfig is the runtime-supplied remote store configuration. It lives
// in the local key-value store, not in the config file, so it can be set,
// inspected and cleared while the application is deployed.
type RemoteConfig struct {
	Type string `json:"type"` // "s3", "filesystem" or "memory"

	// S3 fields.
	Bucket          string `json:"bucket,omitempty"`
	Prefix          string `json:"prefix,omitempty"`
	Region          string `json:"region,omitempty"`
	Endpoint        string `json:"endpoint,omitempty"` // optional, for MinIO-style stores
	AccessKeyID     string `json:"accessKeyId,omitempty"`
	SecretAccessKey string `json:"secretAccessKey,omitempty"`
	PathStyle       bool   `json:"pathStyle,omitempty"`

	// Filesystem fields.
	Root string `json:"root,omitempty"`
}

// Session is the persisted identity of the logged-in operator. It is a
// denormalized snapshot taken at login time; it is not refreshed when the
// underlying user record changes.
type Session struct {
	User       User      `json:"user"`
	RememberMe bool      `json:"rememberMe"`
	SavedAt    time.Time `json:"savedAt"`
}

// SessionTTL is how long a session without remember-me stays valid.
const SessionTTL = 12 * time.Hour

// Expired reports whether the session should no longer be honored.
// Remembered sessions never expire.
func (s Session) Expired(now time.Time) bool {
	if s.RememberMe {
		return false
	}
	return now.Sub(s.SavedAt) > SessionTTL
}
