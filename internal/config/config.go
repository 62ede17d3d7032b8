package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Environment string
	LogLevel    string
	LogFormat   string
	LogDir      string
	ServiceName string
	Version     string

	// ModsDir is the root the mod documents are resolved against.
	ModsDir string
	// EnabledMods restricts which mods run. Empty means all of them.
	EnabledMods []string

	CatalogSource string
	CatalogPath   string

	DBUser        string
	DBPassword    string
	DBHost        string
	DBPort        string
	DBName        string
	DBMaxConns    int
	RunMigrations bool

	// Serve keeps the process running with the inspection API after the
	// override run.
	Serve     bool
	Port      int
	CacheSize int
	CacheTTL  time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		Environment:   getEnv(EnvEnvironment, "dev"),
		LogLevel:      getEnv(EnvLogLevel, "info"),
		LogFormat:     getEnv(EnvLogFormat, "text"),
		LogDir:        getEnv(EnvLogDir, "logs"),
		ServiceName:   getEnv(EnvServiceName, "template-overrides"),
		Version:       getEnv(EnvVersion, "dev"),
		ModsDir:       getEnv(EnvModsDir, ConfigPathModsDir),
		EnabledMods:   getEnvAsList(EnvEnabledMods),
		CatalogSource: strings.ToLower(getEnv(EnvCatalogSource, CatalogSourceFile)),
		CatalogPath:   getEnv(EnvCatalogPath, ConfigPathCatalog),
		DBUser:        getEnv(EnvDBUser, "postgres"),
		DBPassword:    getEnv(EnvDBPassword, "postgres"),
		DBHost:        getEnv(EnvDBHost, "localhost"),
		DBPort:        getEnv(EnvDBPort, "5432"),
		DBName:        getEnv(EnvDBName, "templates"),
		DBMaxConns:    getEnvAsInt(EnvDBMaxConns, 4),
		RunMigrations: getEnvAsBool(EnvRunMigrations, false),
		Serve:         getEnvAsBool(EnvServe, false),
		CacheSize:     getEnvAsInt(EnvCacheSize, 512),
		CacheTTL:      getEnvAsDuration(EnvCacheTTL, 5*time.Minute),
	}

	port, err := strconv.Atoi(getEnv(EnvPort, "8080"))
	if err != nil {
		return nil, fmt.Errorf(ErrMsgInvalidPort, err)
	}
	cfg.Port = port

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the loaded values. Load calls it; callers that override
// fields afterwards should call it again.
func (c *Config) Validate() error {
	if c.CatalogSource != CatalogSourceFile && c.CatalogSource != CatalogSourcePostgres {
		return fmt.Errorf(ErrFmtUnknownCatalogSource, CatalogSourceFile, CatalogSourcePostgres, c.CatalogSource)
	}
	if c.Serve && (c.Port < 1 || c.Port > 65535) {
		return fmt.Errorf(ErrFmtPortOutOfRange, c.Port)
	}
	if c.CacheSize <= 0 {
		return fmt.Errorf(ErrFmtInvalidCacheSize, c.CacheSize)
	}
	return nil
}

// ModEnabled reports whether the named mod should run.
func (c *Config) ModEnabled(name string) bool {
	if len(c.EnabledMods) == 0 {
		return true
	}
	for _, m := range c.EnabledMods {
		if strings.EqualFold(m, name) {
			return true
		}
	}
	return false
}

// ModPath resolves a mod document path against ModsDir.
func (c *Config) ModPath(rel string) string {
	return filepath.Join(c.ModsDir, filepath.FromSlash(rel))
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if v, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return v
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if v, err := strconv.ParseBool(getEnv(key, "")); err == nil {
		return v
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if v, err := time.ParseDuration(getEnv(key, "")); err == nil {
		return v
	}
	return defaultValue
}

// getEnvAsList splits a comma separated variable, dropping blanks.
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(getEnv(key, ""), ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
