package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/config"
)

type timingConfig struct {
	DebounceInterval   time.Duration `env:"TEST_DEBOUNCE_INTERVAL" envDefault:"500ms"`
	SuccessBannerDelay time.Duration `env:"TEST_BANNER_DELAY" envDefault:"5s"`
}

func TestLoad(t *testing.T) {
	t.Run("applies defaults when env is unset", func(t *testing.T) {
		config.Reset()

		var cfg timingConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, 500*time.Millisecond, cfg.DebounceInterval)
		assert.Equal(t, 5*time.Second, cfg.SuccessBannerDelay)
	})

	t.Run("reads values from the environment", func(t *testing.T) {
		config.Reset()
		t.Setenv("TEST_DEBOUNCE_INTERVAL", "250ms")

		var cfg timingConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, 250*time.Millisecond, cfg.DebounceInterval)
	})

	t.Run("caches the first successful parse per type", func(t *testing.T) {
		config.Reset()
		t.Setenv("TEST_DEBOUNCE_INTERVAL", "100ms")

		var first timingConfig
		require.NoError(t, config.Load(&first))

		t.Setenv("TEST_DEBOUNCE_INTERVAL", "900ms")
		var second timingConfig
		require.NoError(t, config.Load(&second))
		assert.Equal(t, first.DebounceInterval, second.DebounceInterval)
	})

	t.Run("rejects nil pointer", func(t *testing.T) {
		err := config.Load[timingConfig](nil)
		assert.ErrorIs(t, err, config.ErrNilPointer)
	})

	t.Run("reports unparsable values", func(t *testing.T) {
		config.Reset()
		t.Setenv("TEST_DEBOUNCE_INTERVAL", "not-a-duration")

		var cfg timingConfig
		err := config.Load(&cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("panics on failure", func(t *testing.T) {
		config.Reset()
		t.Setenv("TEST_DEBOUNCE_INTERVAL", "bogus")

		var cfg timingConfig
		assert.Panics(t, func() { config.MustLoad(&cfg) })
	})

	t.Run("loads valid configuration", func(t *testing.T) {
		config.Reset()

		var cfg timingConfig
		assert.NotPanics(t, func() { config.MustLoad(&cfg) })
		assert.Equal(t, 500*time.Millisecond, cfg.DebounceInterval)
	})
}
