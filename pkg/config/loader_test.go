package config_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formrules/pkg/config"
)

type engineConfig struct {
	TrimSpace bool   `env:"TRIM_SPACE" envDefault:"false"`
	Timezone  string `env:"TIMEZONE" envDefault:"UTC"`
}

type serviceConfig struct {
	Addr    string        `env:"ADDR" envDefault:":8080"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"5s"`
	Engine  engineConfig
}

type requiredConfig struct {
	Path string `env:"RULES_PATH,required"`
}

type fileConfig struct {
	FileValue string `env:"FORMCHECK_TEST_FILE_VALUE"`
	Quoted    string `env:"FORMCHECK_TEST_QUOTED"`
}

func TestLoad(t *testing.T) {
	t.Run("defaults and nested structs", func(t *testing.T) {
		var cfg serviceConfig
		err := config.Load(&cfg, config.WithEnvironment(map[string]string{}))
		require.NoError(t, err)
		assert.Equal(t, ":8080", cfg.Addr)
		assert.Equal(t, 5*time.Second, cfg.Timeout)
		assert.False(t, cfg.Engine.TrimSpace)
		assert.Equal(t, "UTC", cfg.Engine.Timezone)
	})

	t.Run("values override defaults", func(t *testing.T) {
		var cfg serviceConfig
		err := config.Load(&cfg, config.WithEnvironment(map[string]string{
			"ADDR":       ":9090",
			"TRIM_SPACE": "true",
			"TIMEZONE":   "Europe/Rome",
		}))
		require.NoError(t, err)
		assert.Equal(t, ":9090", cfg.Addr)
		assert.True(t, cfg.Engine.TrimSpace)
		assert.Equal(t, "Europe/Rome", cfg.Engine.Timezone)
	})

	t.Run("prefix", func(t *testing.T) {
		var cfg serviceConfig
		err := config.Load(&cfg,
			config.WithPrefix("FORMCHECK_"),
			config.WithEnvironment(map[string]string{
				"FORMCHECK_ADDR": ":7070",
				"ADDR":           ":1111",
			}),
		)
		require.NoError(t, err)
		assert.Equal(t, ":7070", cfg.Addr)
	})

	t.Run("process environment", func(t *testing.T) {
		t.Setenv("ADDR", ":6060")
		var cfg serviceConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, ":6060", cfg.Addr)
	})

	t.Run("missing required value", func(t *testing.T) {
		var cfg requiredConfig
		err := config.Load(&cfg, config.WithEnvironment(map[string]string{}))
		require.Error(t, err)
		assert.True(t, errors.Is(err, config.ErrParsingConfig))
	})

	t.Run("invalid value", func(t *testing.T) {
		var cfg serviceConfig
		err := config.Load(&cfg, config.WithEnvironment(map[string]string{"TIMEOUT": "soon"}))
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("nil pointer", func(t *testing.T) {
		var cfg *serviceConfig
		assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
	})
}

func TestLoadEnvFiles(t *testing.T) {
	t.Run("reads explicit file", func(t *testing.T) {
		var cfg fileConfig
		require.NoError(t, config.Load(&cfg, config.WithEnvFiles("testdata/test.env")))
		assert.Equal(t, "from-file", cfg.FileValue)
		assert.Equal(t, "quoted value", cfg.Quoted)
	})

	t.Run("missing file", func(t *testing.T) {
		var cfg fileConfig
		err := config.Load(&cfg, config.WithEnvFiles("testdata/missing.env"))
		assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
	})
}

func TestMustLoad(t *testing.T) {
	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg, config.WithEnvironment(map[string]string{}))
	})
}
