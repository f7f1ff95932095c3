package config

const (
	EnvPrefix = "WL"

	AppEnvDev  = "dev"
	AppEnvProd = "production"

	EnvAppEnv   = "WL_APP_ENV"
	EnvPort     = "WL_APP_PORT"
	EnvDBDSN    = "WL_DB_DSN"
	EnvDBHost   = "WL_DB_HOST"
	EnvDBUser   = "WL_DB_USER"
	EnvDBName   = "WL_DB_NAME"
	EnvRedisURL = "WL_REDIS_URL"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
