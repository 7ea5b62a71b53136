package config

type InternalConfig struct {
	App       App          `mapstructure:"app"`
	Backend   AppBackend   `mapstructure:"backend"`
	Diagnoses AppDiagnoses `mapstructure:"diagnoses"`
}

type App struct {
	Env                        string `mapstructure:"env"`
	Port                       string `mapstructure:"port"`
	Version                    string `mapstructure:"version"`
	Timezone                   string `mapstructure:"timezone"`
	EndpointPrefix             string `mapstructure:"endpoint_prefix"`
	MaxRequests                int    `mapstructure:"max_requests"`
	ShutdownTimeoutInSeconds   int    `mapstructure:"shutdown_timeout_in_seconds"`
	RequestTimeoutInSeconds    int    `mapstructure:"request_timeout_in_seconds"`
	SubmitRequestsPerMinute    int    `mapstructure:"submit_requests_per_minute"`
	SubmitBlockTimeInSeconds   int    `mapstructure:"submit_block_time_in_seconds"`
	RequestBodyLimitInKilobyte int    `mapstructure:"request_body_limit_in_kilobyte"`
}

// AppBackend points at the patient records API the page reads from and
// appends entries to.
type AppBackend struct {
	BaseUrl              string `mapstructure:"base_url"`
	HTTPTimeoutInSeconds int    `mapstructure:"http_timeout_in_seconds"`
}

type AppDiagnoses struct {
	// CacheTTLInMinutes bounds how long a fetched catalog is served from Redis
	CacheTTLInMinutes int `mapstructure:"cache_ttl_in_minutes"`
}
