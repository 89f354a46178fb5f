package env

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

var (
	ErrNotFound         = errors.New("environment variable with key not found")
	ErrConversionFailed = errors.New("failed to convert environment variable with key to value")
)

func errNotFound(key string) error {
	return fmt.Errorf("key: %s: %w", key, ErrNotFound)
}

func errConversionFailed(key string, typeName string, err error) error {
	return errors.Wrapf(ErrConversionFailed, "key: %s type: %s: %s", key, typeName, err)
}

func MustGetInt(key string) int {
	envVal, found := os.LookupEnv(key)
	if !found {
		panic(errNotFound(key))
	}

	val, err := strconv.Atoi(envVal)
	if err != nil {
		panic(errConversionFailed(key, "int", err))
	}

	return val
}

// GetDuration returns the parsed duration under key, or fallback when
// the variable is not set. A set but unparsable value panics - a typo
// in config should not silently disable a feature.
func GetDuration(key string, fallback time.Duration) time.Duration {
	envVal, found := os.LookupEnv(key)
	if !found {
		return fallback
	}

	val, err := time.ParseDuration(envVal)
	if err != nil {
		panic(errConversionFailed(key, "time.Duration", err))
	}

	return val
}
