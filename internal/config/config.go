package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Session  SessionConfig  `yaml:"session"`
	Auth     AuthConfig     `yaml:"auth"`
	Accounts AccountsConfig `yaml:"accounts"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-Session-Id"`
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
	// AutoCompleteRateLimit caps auto-complete requests per user (or IP) per minute.
	AutoCompleteRateLimit int `yaml:"auto_complete_rate_limit" env:"SERVER_AUTO_COMPLETE_RATE_LIMIT" env-default:"120"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// RedisConfig holds Redis connection settings.
type RedisConfig struct {
	Addr         string        `yaml:"addr"          env:"REDIS_ADDR"          env-default:"localhost:6379"`
	Password     string        `yaml:"password"      env:"REDIS_PASSWORD"`
	DB           int           `yaml:"db"            env:"REDIS_DB"            env-default:"0"`
	PoolSize     int           `yaml:"pool_size"     env:"REDIS_POOL_SIZE"     env-default:"10"`
	DialTimeout  time.Duration `yaml:"dial_timeout"  env:"REDIS_DIAL_TIMEOUT"  env-default:"5s"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"REDIS_READ_TIMEOUT"  env-default:"3s"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"REDIS_WRITE_TIMEOUT" env-default:"3s"`
}

// SessionConfig holds browsing-session settings.
type SessionConfig struct {
	CookieName   string        `yaml:"cookie_name"   env:"SESSION_COOKIE_NAME"   env-default:"crm_session"`
	TTL          time.Duration `yaml:"ttl"           env:"SESSION_TTL"           env-default:"336h"`
	CookieSecure bool          `yaml:"cookie_secure" env:"SESSION_COOKIE_SECURE" env-default:"false"`
	RecentLimit  int           `yaml:"recent_limit"  env:"SESSION_RECENT_LIMIT"  env-default:"10"`
}

// AuthConfig holds access-token settings.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"crm"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"15m"`
}

// AccountsConfig holds system-wide defaults for the accounts area.
// PerPage, Outline and SortBy apply when a user has no preference of their own.
type AccountsConfig struct {
	PerPage                 int    `yaml:"per_page"                   env:"ACCOUNTS_PER_PAGE"                   env-default:"20"`
	Outline                 string `yaml:"outline"                    env:"ACCOUNTS_OUTLINE"                    env-default:"long"`
	SortBy                  string `yaml:"sort_by"                    env:"ACCOUNTS_SORT_BY"                    env-default:"created_at"`
	DefaultAccess           string `yaml:"default_access"             env:"ACCOUNTS_DEFAULT_ACCESS"             env-default:"Public"`
	AutoCompleteLimit       int    `yaml:"auto_complete_limit"        env:"ACCOUNTS_AUTO_COMPLETE_LIMIT"        env-default:"10"`
	HardDeleteRetentionDays int    `yaml:"hard_delete_retention_days" env:"ACCOUNTS_HARD_DELETE_RETENTION_DAYS" env-default:"30"`
}

// LogConfig holds logging settings.
// Format is one of json, text or pretty (colored text for local development).
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
