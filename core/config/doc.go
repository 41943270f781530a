// Package config provides type-safe environment variable loading with
// per-type caching.
//
// A .env file is auto-loaded on first use; parsing is handled by the
// caarlos0/env struct-tag convention. Each configuration type is loaded once
// per process and cached for subsequent calls.
//
//	type StoreConfig struct {
//		ConnectionString string        `env:"PG_CONN_URL,required"`
//		QueryTimeout     time.Duration `env:"PG_QUERY_TIMEOUT" envDefault:"5s"`
//	}
//
//	var cfg StoreConfig
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
//	// Or panic on failure during startup:
//	config.MustLoad(&cfg)
package config
