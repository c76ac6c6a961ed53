package models

type Configuration struct {
	App       AppConfiguration       `mapstructure:"app"       validate:"required"`
	Upstream  UpstreamConfiguration  `mapstructure:"upstream"  validate:"required"`
	Cache     CacheConfiguration     `mapstructure:"cache"     validate:"required"`
	Tracing   TracingConfiguration   `mapstructure:"tracing"`
	Profiling ProfilingConfiguration `mapstructure:"profiling"`
}

type AppConfiguration struct {
	Profile        string   `mapstructure:"profile"         validate:"oneof=default api worker"`
	LogLevel       string   `mapstructure:"log_level"       validate:"oneof=debug info warn error fatal panic"`
	Port           int      `mapstructure:"port"            validate:"gte=80,lte=65535"`
	AllowedOrigins []string `mapstructure:"allowed_origins" validate:"required"`
}

type UpstreamConfiguration struct {
	Statistics StatisticsConfiguration `mapstructure:"statistics" validate:"required"`
	Catalog    CatalogConfiguration    `mapstructure:"catalog"    validate:"required"`
}

// StatisticsConfiguration selects the statistics query source.
// The demo type serves deterministic fixtures so dashboards render
// without a reachable statistics backend.
type StatisticsConfiguration struct {
	Type           string `mapstructure:"type"            validate:"required,oneof=rest demo"`
	BaseURL        string `mapstructure:"base_url"        validate:"required_if=Type rest,omitempty,http_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" validate:"gte=1,lte=120"`
	RetryCount     int    `mapstructure:"retry_count"     validate:"gte=0,lte=5"`
}

type CatalogConfiguration struct {
	Type                   string `mapstructure:"type"                     validate:"required,oneof=rest demo"`
	BaseURL                string `mapstructure:"base_url"                 validate:"required_if=Type rest,omitempty,http_url"`
	TimeoutSeconds         int    `mapstructure:"timeout_seconds"          validate:"gte=1,lte=120"`
	CacheTTLSeconds        int    `mapstructure:"cache_ttl_seconds"        validate:"gte=1"`
	RefreshIntervalSeconds int    `mapstructure:"refresh_interval_seconds" validate:"gte=1"`
}

type CacheConfiguration struct {
	Type   string                    `mapstructure:"type"   validate:"required,oneof=none redis valkey"`
	Redis  *RedisCacheConfiguration  `mapstructure:"redis"  validate:"required_if=Type redis"`
	Valkey *ValkeyCacheConfiguration `mapstructure:"valkey" validate:"required_if=Type valkey"`
}

type RedisCacheConfiguration struct {
	Hosts         []string `mapstructure:"hosts"`
	Password      string   `mapstructure:"password"`
	TLSEnabled    bool     `mapstructure:"tls_enabled"`
	TLSServerName string   `mapstructure:"tls_server_name"`
}

type ValkeyCacheConfiguration struct {
	Hosts         []string `mapstructure:"hosts"`
	Password      string   `mapstructure:"password"`
	TLSEnabled    bool     `mapstructure:"tls_enabled"`
	TLSServerName string   `mapstructure:"tls_server_name"`
}

type TracingConfiguration struct {
	Enabled     bool    `mapstructure:"enabled"`
	Endpoint    string  `mapstructure:"endpoint"     validate:"required_if=Enabled true"`
	SampleRatio float64 `mapstructure:"sample_ratio" validate:"gte=0,lte=1"`
}

type ProfilingConfiguration struct {
	Enabled       bool   `mapstructure:"enabled"`
	ServerAddress string `mapstructure:"server_address" validate:"required_if=Enabled true,omitempty,http_url"`
}
