package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Auth       AuthConfig       `yaml:"auth"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
	Reconcile  ReconcileConfig  `yaml:"reconcile"`
	Classifier ClassifierConfig `yaml:"classifier"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	// OverrideRateLimit is the per-caller requests/minute budget for the manual override endpoints.
	OverrideRateLimit int `yaml:"override_rate_limit" env:"SERVER_OVERRIDE_RATE_LIMIT" env-default:"60"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	// StatementTimeout bounds every query server-side. Zero leaves the server default.
	StatementTimeout time.Duration `yaml:"statement_timeout"  env:"DATABASE_STATEMENT_TIMEOUT"  env-default:"30s"`
	ApplicationName  string        `yaml:"application_name"   env:"DATABASE_APPLICATION_NAME"   env-default:"tripmatch"`
}

// AuthConfig holds access token settings. Tokens are issued elsewhere; this
// service only validates them.
type AuthConfig struct {
	JWTSecret string        `yaml:"jwt_secret" env:"AUTH_JWT_SECRET" env-required:"true"`
	JWTIssuer string        `yaml:"jwt_issuer" env:"AUTH_JWT_ISSUER" env-default:"tripmatch"`
	ClockSkew time.Duration `yaml:"clock_skew" env:"AUTH_CLOCK_SKEW" env-default:"30s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// ReconcileConfig holds the transaction-to-trip matching cycle settings.
type ReconcileConfig struct {
	Enabled            bool          `yaml:"enabled"              env:"RECONCILE_ENABLED"              env-default:"true"`
	Schedule           string        `yaml:"schedule"             env:"RECONCILE_SCHEDULE"             env-default:"*/15 * * * *"`
	Timezone           string        `yaml:"timezone"             env:"RECONCILE_TIMEZONE"             env-default:"UTC"`
	RunOnStart         bool          `yaml:"run_on_start"         env:"RECONCILE_RUN_ON_START"         env-default:"false"`
	GlobalCap          int           `yaml:"global_cap"           env:"RECONCILE_GLOBAL_CAP"           env-default:"60"`
	PerUserCap         int           `yaml:"per_user_cap"         env:"RECONCILE_PER_USER_CAP"         env-default:"12"`
	TripCatalogLimit   int           `yaml:"trip_catalog_limit"   env:"RECONCILE_TRIP_CATALOG_LIMIT"   env-default:"25"`
	MaxParallelBuckets int           `yaml:"max_parallel_buckets" env:"RECONCILE_MAX_PARALLEL_BUCKETS" env-default:"4"`
	LeaseTTL           time.Duration `yaml:"lease_ttl"            env:"RECONCILE_LEASE_TTL"            env-default:"10m"`
	// StaleProcessingAfter re-selects records stuck in processing longer than this. Zero disables reclaim.
	StaleProcessingAfter time.Duration `yaml:"stale_processing_after" env:"RECONCILE_STALE_PROCESSING_AFTER" env-default:"60m"`
}

// ClassifierConfig holds generative classifier settings.
// An empty APIKey disables the reconciliation cycle.
type ClassifierConfig struct {
	Provider   string        `yaml:"provider"    env:"CLASSIFIER_PROVIDER"    env-default:"anthropic"`
	APIKey     string        `yaml:"api_key"     env:"CLASSIFIER_API_KEY"`
	Model      string        `yaml:"model"       env:"CLASSIFIER_MODEL"`
	Timeout    time.Duration `yaml:"timeout"     env:"CLASSIFIER_TIMEOUT"     env-default:"60s"`
	PromptPath string        `yaml:"prompt_path" env:"CLASSIFIER_PROMPT_PATH"`
}

// Provider names accepted in ClassifierConfig.Provider.
const (
	ProviderAnthropic = "anthropic"
	ProviderGemini    = "gemini"
)

// Configured reports whether a classifier credential is present.
func (c ClassifierConfig) Configured() bool {
	return c.APIKey != ""
}
