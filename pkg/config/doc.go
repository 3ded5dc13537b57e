// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11: the
// default .env file is read once per process (missing files are fine), then
// the environment is parsed into any annotated struct. Each configuration
// type is parsed at most once and cached for the process lifetime, so every
// component can call Load for its own config without coordination.
//
//	type TimingConfig struct {
//	    DebounceInterval time.Duration `env:"FORM_DEBOUNCE_INTERVAL" envDefault:"500ms"`
//	}
//
//	var cfg TimingConfig
//	if err := config.Load(&cfg); err != nil {
//	    // handle error
//	}
//
// MustLoad panics on failure for configuration the program cannot start
// without. Reset clears the cache, which is useful in tests.
package config
