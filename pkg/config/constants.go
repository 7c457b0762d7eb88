package config

const (
	EnvPrefix = "LOCOFLY"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvAppEnv = "LOCOFLY_APP_ENV"
	EnvPort   = "LOCOFLY_APP_PORT"

	EnvDBDSN  = "LOCOFLY_DB_DSN"
	EnvDBHost = "LOCOFLY_DB_HOST"
	EnvDBUser = "LOCOFLY_DB_USER"
	EnvDBName = "LOCOFLY_DB_NAME"

	EnvRedisURL = "LOCOFLY_REDIS_URL"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
