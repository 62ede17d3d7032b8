package config

const (
	// Configuration file paths
	ConfigPathCatalog = "configs/catalog/catalog.json"
	ConfigPathModsDir = "configs/mods"

	// Mod document paths, relative to the mods directory
	ModPathDrugs       = "BalancedMeds/config/drugs.json"
	ModPathMedicals    = "BalancedMeds/config/medicals.json"
	ModPathMedkits     = "BalancedMeds/config/medkits.json"
	ModPathStimulators = "BalancedMeds/config/stimulators.json"
	ModPathFoods       = "UsefulFoodsAndDrinks/config/config.json"
	ModPathAttachments = "BetterAttachments/config/config.json"
)

// Catalog sources
const (
	CatalogSourceFile     = "file"
	CatalogSourcePostgres = "postgres"
)

// Environment variable names
const (
	EnvSchemaVersion = "ENV_SCHEMA_VERSION"
	EnvEnvironment   = "ENVIRONMENT"
	EnvLogLevel      = "LOG_LEVEL"
	EnvLogFormat     = "LOG_FORMAT"
	EnvLogDir        = "LOG_DIR"
	EnvServiceName   = "SERVICE_NAME"
	EnvVersion       = "VERSION"
	EnvModsDir       = "MODS_DIR"
	EnvEnabledMods   = "ENABLED_MODS"
	EnvCatalogSource = "CATALOG_SOURCE"
	EnvCatalogPath   = "CATALOG_PATH"
	EnvDBUser        = "DB_USER"
	EnvDBPassword    = "DB_PASSWORD"
	EnvDBHost        = "DB_HOST"
	EnvDBPort        = "DB_PORT"
	EnvDBName        = "DB_NAME"
	EnvDBMaxConns    = "DB_MAX_CONNS"
	EnvRunMigrations = "RUN_MIGRATIONS"
	EnvServe         = "SERVE"
	EnvPort          = "PORT"
	EnvCacheSize     = "CACHE_SIZE"
	EnvCacheTTL      = "CACHE_TTL"
)

// ==================== Error Messages ====================

const (
	ErrMsgInvalidPort           = "invalid PORT value: %w"
	ErrFmtPortOutOfRange        = "PORT must be between 1 and 65535, got %d"
	ErrFmtUnknownCatalogSource  = "CATALOG_SOURCE must be %q or %q, got %q"
	ErrFmtInvalidCacheSize      = "CACHE_SIZE must be positive, got %d"
	ErrMsgSchemaVersionUnset    = "ENV_SCHEMA_VERSION is not set - please update your .env file to include this field (expected: %s)"
	ErrMsgSchemaVersionMismatch = "ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated"
	ErrMsgMissingEnvVars        = "missing required environment variables: %s"
)

// Warnings
const (
	WarnMsgExamplePassword   = "DB_PASSWORD appears to be using the example value - please use a secure password"
	WarnMsgMigrationsIgnored = "RUN_MIGRATIONS is set but CATALOG_SOURCE is not postgres - migrations will not run"
	examplePassword          = "change_this_secure_password"
)
