// Package environment provides utilities for managing environment variables
// and configuration loading with support for namespacing and defaults.
package environment

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// LoadPath loads environment variables from a .env file. An empty path loads
// ".env" from the working directory. A missing file is not an error: the
// process environment is always authoritative and the file only fills gaps.
//
// Example:
//
//	if err := environment.LoadPath(""); err != nil {
//	    return fmt.Errorf("loading env: %w", err)
//	}
func LoadPath(p string) error {
	if p == "" {
		p = ".env"
	}
	if err := godotenv.Load(p); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", p, err)
	}
	return nil
}

// GetEnvOrDefault retrieves an environment variable value, returning a fallback
// value if the variable is not set.
//
// Example:
//
//	port := GetEnvOrDefault("PORT", "8000")
func GetEnvOrDefault(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// GetEnvKeyPrefix constructs a namespaced environment variable key by
// combining a prefix with the key using an underscore. If no prefix is
// provided, it returns the key unchanged.
//
// Example:
//
//	GetEnvKeyPrefix("CRUDKIT", "STORE") // "CRUDKIT_STORE"
//	GetEnvKeyPrefix("", "STORE")        // "STORE"
func GetEnvKeyPrefix(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return fmt.Sprintf("%s_%s", prefix, key)
}

// GetPrefixEnvOrDefault retrieves a namespaced environment variable value,
// returning a fallback value if the variable is not set.
func GetPrefixEnvOrDefault(prefix, key, fallback string) string {
	return GetEnvOrDefault(GetEnvKeyPrefix(prefix, key), fallback)
}
