package config

// Environment variable names
const (
	EnvLogLevel      = "ARKTOOLS_LOG_LEVEL"
	EnvLogFormat     = "ARKTOOLS_LOG_FORMAT"
	EnvEnvironment   = "ARKTOOLS_ENV"
	EnvWorkers       = "ARKTOOLS_WORKERS"
	EnvQueueSize     = "ARKTOOLS_QUEUE_SIZE"
	EnvPoolCacheSize = "ARKTOOLS_POOL_CACHE_SIZE"
	EnvSeed          = "ARKTOOLS_SEED"
	EnvPretty        = "ARKTOOLS_PRETTY"
	EnvLang          = "ARKTOOLS_LANG"
	EnvMetricsFile   = "ARKTOOLS_METRICS_FILE"
)

// Defaults
const (
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "text"
	DefaultEnvironment   = "dev"
	DefaultWorkers       = 4
	DefaultQueueSize     = 64
	DefaultPoolCacheSize = 128
	DefaultLang          = "en"
)

// Error messages
const (
	ErrFmtInvalidInt   = "invalid %s value %q: %w"
	ErrFmtInvalidBool  = "invalid %s value %q: %w"
	ErrFmtInvalidField = "invalid configuration: %s failed %s"
	ErrMsgValidate     = "invalid configuration: %w"
)

// Warning messages
const (
	WarnMsgSeedInProduction = "a fixed random seed is set in the prod environment; item ids will repeat across runs"
	WarnMsgManyWorkers      = "worker count exceeds queue size; some workers will stay idle"
)
