package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timeouts, batch sizes, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server       ServerConfig
	DB           DBConfig
	CORS         CORSConfig
	Log          LogConfig
	JWT          JWTConfig
	Distribution DistributionConfig
	Claim        ClaimConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

// DistributionConfig tunes wave scheduling and notification dispatch.
type DistributionConfig struct {
	VisibilityWindow    time.Duration `envconfig:"DIST_VISIBILITY_WINDOW" default:"48h"`
	DispatchTick        time.Duration `envconfig:"DIST_DISPATCH_TICK" default:"1m"`
	DispatchBatchSize   int           `envconfig:"DIST_DISPATCH_BATCH_SIZE" default:"50"`
	DispatchConcurrency int           `envconfig:"DIST_DISPATCH_CONCURRENCY" default:"8"`
	NotifyTimeout       time.Duration `envconfig:"DIST_NOTIFY_TIMEOUT" default:"10s"`
	EntitlementCacheTTL time.Duration `envconfig:"DIST_ENTITLEMENT_CACHE_TTL" default:"5m"`
	// GeocoderBaseURL empty disables geocoding entirely.
	GeocoderBaseURL string `envconfig:"DIST_GEOCODER_BASE_URL" default:""`
}

// ClaimConfig tunes the shadow-supplier claim flow.
type ClaimConfig struct {
	TokenExpiry        time.Duration `envconfig:"CLAIM_TOKEN_EXPIRY" default:"72h"`
	VerificationExpiry time.Duration `envconfig:"CLAIM_VERIFICATION_EXPIRY" default:"1h"`
	LockoutDuration    time.Duration `envconfig:"CLAIM_LOCKOUT_DURATION" default:"30m"`
	MaxFailedAttempts  int           `envconfig:"CLAIM_MAX_FAILED_ATTEMPTS" default:"5"`
	MaxTokensPerDay    int           `envconfig:"CLAIM_MAX_TOKENS_PER_DAY" default:"3"`
	RequestsPerMinute  int           `envconfig:"CLAIM_REQUESTS_PER_MINUTE" default:"10"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "24h",
		},
		Distribution: DistributionConfig{
			VisibilityWindow:    48 * time.Hour,
			DispatchTick:        time.Minute,
			DispatchBatchSize:   50,
			DispatchConcurrency: 8,
			NotifyTimeout:       10 * time.Second,
			EntitlementCacheTTL: 5 * time.Minute,
		},
		Claim: ClaimConfig{
			TokenExpiry:        72 * time.Hour,
			VerificationExpiry: time.Hour,
			LockoutDuration:    30 * time.Minute,
			MaxFailedAttempts:  5,
			MaxTokensPerDay:    3,
			RequestsPerMinute:  600, // keep the per-IP limiter out of test runs
		},
	}
}
