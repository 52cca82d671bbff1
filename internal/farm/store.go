package farm

// Namespaced keys in the local key-value store. The state key carries a
// schema version suffix so a future incompatible blob can live alongside.
const (
	StateKey        = "aquafarm_state_v1"
	RemoteConfigKey = "aquafarm_remote_config"
	SessionKey      = "aquafarm_session"
)

// Store provides an interface for the on-device key-value storage that
// holds the serialized aggregate, the remote-sync configuration and the
// active session. Writes replace the full value for a key atomically.
type Store interface {
	// Get returns the value stored under key, or nil if the key is absent.
	Get(key string) ([]byte, error)

	// Put stores value under key, overwriting any prior value.
	Put(key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error

	// Close closes the underlying storage.
	Close() error
}
