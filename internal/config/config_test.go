package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnv(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		defaultValue string
		setEnv       bool
		envValue     string
		expected     string
	}{
		{
			name:         "env variable set",
			key:          "TEST_KEY",
			defaultValue: "default",
			setEnv:       true,
			envValue:     "custom",
			expected:     "custom",
		},
		{
			name:         "env variable not set",
			key:          "TEST_KEY_NOT_SET",
			defaultValue: "default",
			setEnv:       false,
			expected:     "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setEnv {
				t.Setenv(tt.key, tt.envValue)
			}

			result := getEnv(tt.key, tt.defaultValue)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestGetEnvInt(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		n, err := getEnvInt("TEST_INT_NOT_SET", 10)
		require.NoError(t, err)
		assert.Equal(t, 10, n)
	})

	t.Run("parsed", func(t *testing.T) {
		t.Setenv("TEST_INT", "25")
		n, err := getEnvInt("TEST_INT", 10)
		require.NoError(t, err)
		assert.Equal(t, 25, n)
	})

	t.Run("malformed", func(t *testing.T) {
		t.Setenv("TEST_INT", "ten")
		_, err := getEnvInt("TEST_INT", 10)
		assert.ErrorContains(t, err, "TEST_INT must be an integer")
	})
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("TEST_TTL", "90s")
	d, err := getEnvDuration("TEST_TTL", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 90*time.Second, d)

	t.Setenv("TEST_TTL", "soon")
	_, err = getEnvDuration("TEST_TTL", time.Minute)
	assert.Error(t, err)
}

func TestConfig_DSN(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     "5432",
			User:     "testuser",
			Password: "testpass",
			Name:     "testdb",
		},
	}

	dsn := cfg.DSN()
	expected := "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=disable"
	assert.Equal(t, expected, dsn)

	cfg.Database.SSLMode = "require"
	assert.Contains(t, cfg.DSN(), "sslmode=require")
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			BotToken:        "token",
			ProductPageSize: 10,
			CatalogCacheTTL: time.Minute,
			Database:        DatabaseConfig{Password: "secret"},
		}
	}

	tests := []struct {
		name        string
		mutate      func(*Config)
		expectedErr string
	}{
		{name: "minimal", mutate: func(*Config) {}},
		{name: "missing bot token", mutate: func(c *Config) { c.BotToken = "" }, expectedErr: "BOT_TOKEN is required"},
		{name: "missing db password", mutate: func(c *Config) { c.Database.Password = "" }, expectedErr: "DB_PASSWORD is required"},
		{name: "zero page size", mutate: func(c *Config) { c.ProductPageSize = 0 }, expectedErr: "PRODUCT_PAGE_SIZE"},
		{
			name:        "api without secret",
			mutate:      func(c *Config) { c.API = APIConfig{Addr: ":8080", RateLimit: 60} },
			expectedErr: "API_JWT_SECRET is required",
		},
		{
			name:        "api without rate limit",
			mutate:      func(c *Config) { c.API = APIConfig{Addr: ":8080", JWTSecret: "s"} },
			expectedErr: "API_RATE_LIMIT",
		},
		{
			name:   "api enabled",
			mutate: func(c *Config) { c.API = APIConfig{Addr: ":8080", JWTSecret: "s", RateLimit: 60} },
		},
		{
			name: "redis with zero ttl",
			mutate: func(c *Config) {
				c.Redis.Addr = "localhost:6379"
				c.CatalogCacheTTL = 0
			},
			expectedErr: "CATALOG_CACHE_TTL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()

			if tt.expectedErr != "" {
				assert.ErrorContains(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoad_MissingRequiredFields(t *testing.T) {
	t.Setenv("BOT_TOKEN", "")
	t.Setenv("DB_PASSWORD", "")

	cfg, err := Load()
	assert.Error(t, err)
	assert.Nil(t, cfg)

	t.Setenv("BOT_TOKEN", "test_token")
	cfg, err = Load()
	assert.ErrorContains(t, err, "DB_PASSWORD")
	assert.Nil(t, cfg)
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PRODUCT_PAGE_SIZE", "API_ADDR", "REDIS_ADDR", "CATALOG_CACHE_TTL", "DB_SSLMODE", "MEDIA_ROOT"} {
		t.Setenv(key, "")
	}
	t.Setenv("BOT_TOKEN", "test_token")
	t.Setenv("DB_PASSWORD", "secret")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 10, cfg.ProductPageSize)
	assert.Equal(t, 5*time.Minute, cfg.CatalogCacheTTL)
	assert.Equal(t, "media", cfg.MediaRoot)
	assert.False(t, cfg.API.Enabled())
	assert.False(t, cfg.Redis.Enabled())
}
