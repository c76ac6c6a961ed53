package configuration

const AppName = "festboard-reporting"

const (
	CacheCatalogSchoolsKey      = "catalog:schools"
	CacheCatalogFestivalsKey    = "catalog:festivals"
	CacheAppIdentityKey         = "app:identity"
	CacheAppWorkerLockKey       = "app:worker:lock:%s" //nolint:gosec // not a credential
	CacheAppWorkerLockTTL       = 60
	CacheAppWorkerLockRefresh   = 55
	CacheMaxAppIdentityLifetime = 60
)

// Dashboard aggregate sizing.
const (
	TopEntitiesLimit  = 5
	RecentOrdersLimit = 10
	// MockSeriesHorizonDays is the synthesized-series horizon the
	// fallback source is sliced from.
	MockSeriesHorizonDays = 90
)

// Upstream source types.
const (
	SourceREST = "rest"
	SourceDemo = "demo"
)

var ArrayConfigFields = []string{
	"app.allowed_origins",
	"cache.redis.hosts",
	"cache.valkey.hosts",
}

var ConfigFileSearchPaths = []string{
	"./config.yaml",
	"templates/config.yaml",
}
