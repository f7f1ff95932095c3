package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	Session      SessionConfig
	Stripe       StripeConfig
	OpenAI       OpenAIConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"WL_APP_ENV" required:"true"`
	Port         string `envconfig:"WL_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"WL_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"WL_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"WL_DB_DSN"`
	Driver string `envconfig:"WL_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"WL_DB_HOST"`
	LegacyPort     int    `envconfig:"WL_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"WL_DB_USER"`
	LegacyPassword string `envconfig:"WL_DB_PASSWORD"`
	LegacyName     string `envconfig:"WL_DB_NAME"`
	LegacySSLMode  string `envconfig:"WL_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"WL_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"WL_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"WL_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"WL_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"WL_REDIS_URL" required:"true"`
	Address      string        `envconfig:"WL_REDIS_ADDR"`
	Password     string        `envconfig:"WL_REDIS_PASSWORD"`
	DB           int           `envconfig:"WL_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"WL_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"WL_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"WL_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"WL_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"WL_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type SessionConfig struct {
	CookieName string        `envconfig:"WL_SESSION_COOKIE_NAME" default:"wl_session"`
	TTL        time.Duration `envconfig:"WL_SESSION_TTL" default:"720h"`
	Secure     bool          `envconfig:"WL_SESSION_COOKIE_SECURE" default:"true"`
}

type StripeConfig struct {
	APIKey string `envconfig:"WL_STRIPE_API_KEY"`
	Env    string `envconfig:"WL_STRIPE_ENV" default:"test"`

	// Price applied when creating a subscription inline. The $188/month
	// base plan is the default; override per environment.
	MonthlyPriceCents  int64  `envconfig:"WL_STRIPE_MONTHLY_PRICE_CENTS" default:"18800"`
	Currency           string `envconfig:"WL_STRIPE_CURRENCY" default:"usd"`
	ProductName        string `envconfig:"WL_STRIPE_PRODUCT_NAME" default:"Year-Round Property Maintenance"`
	ProductDescription string `envconfig:"WL_STRIPE_PRODUCT_DESCRIPTION" default:"Snow removal, lawn care, and seasonal cleanups"`
	PortalReturnURL    string `envconfig:"WL_STRIPE_PORTAL_RETURN_URL" default:"http://localhost:5000/dashboard?from=portal"`
}

// Environment returns the normalized Stripe environment (test/live).
func (s StripeConfig) Environment() string {
	env := strings.TrimSpace(strings.ToLower(s.Env))
	if env == "" {
		return "test"
	}
	return env
}

type OpenAIConfig struct {
	APIKey              string `envconfig:"WL_OPENAI_API_KEY"`
	Model               string `envconfig:"WL_OPENAI_MODEL" default:"gpt-5"`
	MaxCompletionTokens int    `envconfig:"WL_OPENAI_MAX_COMPLETION_TOKENS" default:"500"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"WL_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
