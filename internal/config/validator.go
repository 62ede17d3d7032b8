package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ExpectedEnvSchemaVersion is the schema version that the application expects
const ExpectedEnvSchemaVersion = "1.0"

// RequiredDBEnvVars must be set when the catalog is read from PostgreSQL
var RequiredDBEnvVars = []string{
	EnvDBUser,
	EnvDBPassword,
	EnvDBHost,
	EnvDBPort,
	EnvDBName,
}

// ValidateEnv checks the schema version and, for the postgres catalog
// source, that the database variables are set.
func ValidateEnv() error {
	schemaVersion := os.Getenv(EnvSchemaVersion)
	if schemaVersion == "" {
		return fmt.Errorf(ErrMsgSchemaVersionUnset, ExpectedEnvSchemaVersion)
	}
	if schemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf(ErrMsgSchemaVersionMismatch, ExpectedEnvSchemaVersion, schemaVersion)
	}

	if !strings.EqualFold(os.Getenv(EnvCatalogSource), CatalogSourcePostgres) {
		return nil
	}

	var missing []string
	for _, envVar := range RequiredDBEnvVars {
		if os.Getenv(envVar) == "" {
			missing = append(missing, envVar)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf(ErrMsgMissingEnvVars, strings.Join(missing, ", "))
	}
	return nil
}

// ValidateEnvWithWarnings checks environment variables and returns warnings
// for non-critical issues (like using default values)
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string

	if os.Getenv(EnvDBPassword) == examplePassword {
		warnings = append(warnings, WarnMsgExamplePassword)
	}

	if migrate, _ := strconv.ParseBool(os.Getenv(EnvRunMigrations)); migrate &&
		!strings.EqualFold(os.Getenv(EnvCatalogSource), CatalogSourcePostgres) {
		warnings = append(warnings, WarnMsgMigrationsIgnored)
	}

	return warnings, nil
}
