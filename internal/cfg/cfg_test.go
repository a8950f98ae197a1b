package cfg

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	c, err := Load(logger.NewNop(), "")
	require.NoError(t, err)

	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, "8080", c.Http.Port)
	assert.Equal(t, 5*time.Second, c.Http.ReadTimeout)
	assert.Equal(t, "https://dummyjson.com", c.Catalog.BaseURL)
	assert.Equal(t, 6, c.Catalog.PageSize)
	assert.Equal(t, 300*time.Millisecond, c.Catalog.DebounceDelay)
	assert.Equal(t, 30*time.Minute, c.Catalog.ViewIdleTTL)
	assert.Equal(t, SessionBackendMemory, c.Session.Backend)
	assert.Equal(t, "storefront_session", c.Session.CookieName)
	assert.Equal(t, 3*time.Minute, c.Redis.ProductTTL)
	assert.False(t, c.Kafka.Enabled())
	assert.False(t, c.NeedsRedis())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("CATALOG_DEBOUNCE", "50ms")
	t.Setenv("CATALOG_CACHE_ENABLED", "true")
	t.Setenv("SESSION_BACKEND", "redis")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")

	c, err := Load(logger.NewNop(), "")
	require.NoError(t, err)

	assert.Equal(t, "9000", c.Http.Port)
	assert.Equal(t, 50*time.Millisecond, c.Catalog.DebounceDelay)
	assert.True(t, c.Catalog.CacheEnabled)
	assert.Equal(t, SessionBackendRedis, c.Session.Backend)
	assert.True(t, c.NeedsRedis())
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, c.Kafka.Brokers)
	assert.True(t, c.Kafka.Enabled())
}

func TestLoad_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("CATALOG_PAGE_SIZE=12\nLOG_LEVEL=debug\n"), 0o600))

	// godotenv не перезаписывает уже заданные переменные, поэтому чистим их после теста.
	t.Cleanup(func() {
		os.Unsetenv("CATALOG_PAGE_SIZE")
		os.Unsetenv("LOG_LEVEL")
	})

	c, err := Load(logger.NewNop(), path)
	require.NoError(t, err)
	assert.Equal(t, 12, c.Catalog.PageSize)
	assert.Equal(t, "debug", c.LogLevel)
}

func TestLoad_MissingEnvFile(t *testing.T) {
	_, err := Load(logger.NewNop(), filepath.Join(t.TempDir(), "absent.env"))
	require.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		err  error
	}{
		{
			name: "unknown session backend",
			env:  map[string]string{"SESSION_BACKEND": "localStorage"},
			err:  e.ErrUnknownSessionStore,
		},
		{
			name: "zero page size",
			env:  map[string]string{"CATALOG_PAGE_SIZE": "0"},
			err:  e.ErrIncorrectEnvVariable,
		},
		{
			name: "relative base url",
			env:  map[string]string{"CATALOG_BASE_URL": "dummyjson"},
			err:  e.ErrIncorrectEnvVariable,
		},
		{
			name: "negative debounce",
			env:  map[string]string{"CATALOG_DEBOUNCE": "-1s"},
			err:  e.ErrIncorrectEnvVariable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load(logger.NewNop(), "")
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestLoad_PostgresRequiresCredentials(t *testing.T) {
	t.Setenv("SESSION_BACKEND", "postgres")

	_, err := Load(logger.NewNop(), "")
	require.Error(t, err)

	t.Setenv("POSTGRES_USER", "storefront")
	t.Setenv("POSTGRES_PASSWORD", "secret")
	t.Setenv("POSTGRES_DB", "storefront")

	c, err := Load(logger.NewNop(), "")
	require.NoError(t, err)
	assert.Contains(t, c.Db.DSN(), "dbname=storefront")
}

func TestLoad_BadDuration(t *testing.T) {
	t.Setenv("HTTP_READ_TIMEOUT", "soon")

	_, err := Load(logger.NewNop(), "")
	require.Error(t, err)
}
