package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetkit/fleetkit/pkg/config"
)

type serverConfig struct {
	Addr    string `env:"FLEET_TEST_ADDR" envDefault:":8080"`
	Workers int    `env:"FLEET_TEST_WORKERS" envDefault:"4"`
}

type requiredConfig struct {
	Token string `env:"FLEET_TEST_REQUIRED_TOKEN,required"`
}

type cachedConfig struct {
	Region string `env:"FLEET_TEST_REGION" envDefault:"eu-central"`
}

func TestLoad(t *testing.T) {
	// Cannot be parallel: subtests mutate process environment.

	t.Run("defaults applied", func(t *testing.T) {
		var cfg serverConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, ":8080", cfg.Addr)
		assert.Equal(t, 4, cfg.Workers)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("FLEET_TEST_REGION", "us-east")

		var cfg cachedConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "us-east", cfg.Region)
	})

	t.Run("cached after first load", func(t *testing.T) {
		var first cachedConfig
		require.NoError(t, config.Load(&first))

		// Changing the environment after the first load has no effect.
		t.Setenv("FLEET_TEST_REGION", "ap-south")

		var second cachedConfig
		require.NoError(t, config.Load(&second))
		assert.Equal(t, first.Region, second.Region)
	})

	t.Run("missing required variable", func(t *testing.T) {
		var cfg requiredConfig
		err := config.Load(&cfg)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("nil pointer", func(t *testing.T) {
		var cfg *serverConfig
		assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("panics on failure", func(t *testing.T) {
		assert.Panics(t, func() {
			var cfg requiredConfig
			config.MustLoad(&cfg)
		})
	})

	t.Run("succeeds with defaults", func(t *testing.T) {
		assert.NotPanics(t, func() {
			var cfg serverConfig
			config.MustLoad(&cfg)
		})
	})
}
