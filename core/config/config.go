package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrParse wraps environment parsing failures with the config type name.
var ErrParse = errors.New("failed to parse environment configuration")

var (
	cache       sync.Map // reflect.Type -> parsed struct value
	loadEnvOnce sync.Once
)

// Load populates cfg from environment variables using `env` struct tags.
// A .env file in the working directory is loaded once per process if present.
// Each configuration type is parsed once and cached; subsequent calls for the
// same type return the cached value.
func Load[T any](cfg *T) error {
	loadEnvOnce.Do(func() {
		// Missing .env is the normal production case.
		_ = godotenv.Load()
	})

	typ := reflect.TypeOf(*cfg)
	if v, ok := cache.Load(typ); ok {
		*cfg = v.(T)
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return errors.Join(fmt.Errorf("%w: %s", ErrParse, typ), err)
	}

	// First parse wins on a concurrent first load for the same type.
	actual, _ := cache.LoadOrStore(typ, *cfg)
	*cfg = actual.(T)
	return nil
}

// MustLoad is Load that panics on failure. Intended for application startup
// where a missing required variable should abort the process.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
