package cache

type ICache interface {
	// GetJSON unmarshals the cached value for key into dest.
	// Returns false without error on a cache miss.
	GetJSON(key string, dest any) (bool, error)
	// SetJSON stores value under key with a TTL in seconds.
	SetJSON(key string, value any, ttlSeconds int) error

	RegisterPlatform(id string) error
	DeleteInactivePlatform() error
	StartIdentityTicker(id string)

	// TryAcquireLock attempts to acquire a distributed worker lock.
	TryAcquireLock(key string, instanceID string, ttlSeconds int) (bool, error)
	// RefreshLock extends the TTL of a lock held by this instance.
	RefreshLock(key string, instanceID string, ttlSeconds int) (bool, error)

	Close() error
}
