package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	// Save original env vars and restore after tests
	originalEnv := map[string]string{
		"PONSIV_APP_NAME":                os.Getenv("PONSIV_APP_NAME"),
		"PONSIV_APP_ENV":                 os.Getenv("PONSIV_APP_ENV"),
		"PONSIV_APP_PORT":                os.Getenv("PONSIV_APP_PORT"),
		"PONSIV_DATABASE_HOST":           os.Getenv("PONSIV_DATABASE_HOST"),
		"PONSIV_DATABASE_PORT":           os.Getenv("PONSIV_DATABASE_PORT"),
		"PONSIV_DATABASE_USER":           os.Getenv("PONSIV_DATABASE_USER"),
		"PONSIV_DATABASE_PASSWORD":       os.Getenv("PONSIV_DATABASE_PASSWORD"),
		"PONSIV_DATABASE_DBNAME":         os.Getenv("PONSIV_DATABASE_DBNAME"),
		"PONSIV_DATABASE_SSLMODE":        os.Getenv("PONSIV_DATABASE_SSLMODE"),
		"PONSIV_DATABASE_MAX_OPEN_CONNS": os.Getenv("PONSIV_DATABASE_MAX_OPEN_CONNS"),
		"PONSIV_DATABASE_MAX_IDLE_CONNS": os.Getenv("PONSIV_DATABASE_MAX_IDLE_CONNS"),
		"PONSIV_IDENTITY_API_URL":        os.Getenv("PONSIV_IDENTITY_API_URL"),
		"PONSIV_IDENTITY_API_KEY":        os.Getenv("PONSIV_IDENTITY_API_KEY"),
		"PONSIV_COOKIE_SECURE":           os.Getenv("PONSIV_COOKIE_SECURE"),
	}

	defer func() {
		for k, v := range originalEnv {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	}()

	clearEnv := func() {
		for k := range originalEnv {
			os.Unsetenv(k)
		}
	}

	t.Run("loads default values when env vars not set", func(t *testing.T) {
		clearEnv()

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "ponsiv-backend", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "8080", cfg.App.Port)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "postgres", cfg.Database.User)
		assert.Equal(t, "ponsiv", cfg.Database.DBName)
		assert.Equal(t, "disable", cfg.Database.SSLMode)
		assert.Equal(t, 25, cfg.Database.MaxOpenConns)
		assert.Equal(t, "ponsiv_session", cfg.Cookie.Name)
		assert.Equal(t, 60*24*60*60, cfg.Cookie.MaxAge)
		assert.Equal(t, 20, cfg.Feed.DefaultPageSize)
		assert.Equal(t, 100, cfg.Feed.MaxPageSize)
	})

	t.Run("loads values from environment variables with PONSIV prefix", func(t *testing.T) {
		clearEnv()
		os.Setenv("PONSIV_APP_NAME", "test-app")
		os.Setenv("PONSIV_APP_PORT", "9000")
		os.Setenv("PONSIV_DATABASE_HOST", "testdb.local")
		os.Setenv("PONSIV_DATABASE_PORT", "5433")
		os.Setenv("PONSIV_IDENTITY_API_URL", "https://users.example.com")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "test-app", cfg.App.Name)
		assert.Equal(t, "9000", cfg.App.Port)
		assert.Equal(t, "testdb.local", cfg.Database.Host)
		assert.Equal(t, 5433, cfg.Database.Port)
		assert.Equal(t, "https://users.example.com", cfg.Identity.APIURL)
	})

	t.Run("validates MaxIdleConns cannot exceed MaxOpenConns", func(t *testing.T) {
		clearEnv()
		os.Setenv("PONSIV_DATABASE_MAX_OPEN_CONNS", "10")
		os.Setenv("PONSIV_DATABASE_MAX_IDLE_CONNS", "20")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "max_idle_conns")
		assert.Contains(t, err.Error(), "cannot exceed")
	})

	t.Run("zero MaxOpenConns uses default", func(t *testing.T) {
		clearEnv()
		os.Setenv("PONSIV_DATABASE_MAX_OPEN_CONNS", "0")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	})
}

func TestLoad_ProductionValidation(t *testing.T) {
	originalEnv := map[string]string{
		"PONSIV_APP_ENV":           os.Getenv("PONSIV_APP_ENV"),
		"PONSIV_IDENTITY_API_URL":  os.Getenv("PONSIV_IDENTITY_API_URL"),
		"PONSIV_IDENTITY_API_KEY":  os.Getenv("PONSIV_IDENTITY_API_KEY"),
		"PONSIV_DATABASE_PASSWORD": os.Getenv("PONSIV_DATABASE_PASSWORD"),
		"PONSIV_DATABASE_SSLMODE":  os.Getenv("PONSIV_DATABASE_SSLMODE"),
		"PONSIV_COOKIE_SECURE":     os.Getenv("PONSIV_COOKIE_SECURE"),
	}

	defer func() {
		for k, v := range originalEnv {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	}()

	clearEnv := func() {
		for k := range originalEnv {
			os.Unsetenv(k)
		}
	}

	setValidProductionBase := func() {
		os.Setenv("PONSIV_APP_ENV", "production")
		os.Setenv("PONSIV_IDENTITY_API_URL", "https://users.example.com")
		os.Setenv("PONSIV_IDENTITY_API_KEY", "service-key")
		os.Setenv("PONSIV_DATABASE_PASSWORD", "secure-password")
		os.Setenv("PONSIV_DATABASE_SSLMODE", "require")
		os.Setenv("PONSIV_COOKIE_SECURE", "true")
	}

	t.Run("requires identity.api_url in production", func(t *testing.T) {
		clearEnv()
		setValidProductionBase()
		os.Unsetenv("PONSIV_IDENTITY_API_URL")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "identity.api_url is required in production")
	})

	t.Run("requires database.password in production", func(t *testing.T) {
		clearEnv()
		setValidProductionBase()
		os.Unsetenv("PONSIV_DATABASE_PASSWORD")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database.password is required in production")
	})

	t.Run("requires SSL enabled in production", func(t *testing.T) {
		clearEnv()
		setValidProductionBase()
		os.Setenv("PONSIV_DATABASE_SSLMODE", "disable")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database.sslmode cannot be 'disable' in production")
	})

	t.Run("requires secure cookies in production", func(t *testing.T) {
		clearEnv()
		setValidProductionBase()
		os.Setenv("PONSIV_COOKIE_SECURE", "false")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cookie.secure must be true in production")
	})

	t.Run("passes validation with valid production config", func(t *testing.T) {
		clearEnv()
		setValidProductionBase()

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "production", cfg.App.Env)
	})
}

func TestDatabaseConfig_DSN(t *testing.T) {
	t.Run("generates valid DSN", func(t *testing.T) {
		cfg := DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "testuser",
			Password: "testpass",
			DBName:   "testdb",
			SSLMode:  "disable",
		}

		dsn := cfg.DSN()
		assert.Contains(t, dsn, "localhost")
		assert.Contains(t, dsn, "5432")
		assert.Contains(t, dsn, "testuser")
		assert.Contains(t, dsn, "testdb")
		assert.Contains(t, dsn, "sslmode=disable")
	})

	t.Run("escapes special characters in password", func(t *testing.T) {
		cfg := DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "user",
			Password: "pass@word#123",
			DBName:   "db",
			SSLMode:  "disable",
		}

		dsn := cfg.DSN()
		assert.Contains(t, dsn, "pass%40word%23123")
	})
}

func TestRedisConfig_Addr(t *testing.T) {
	cfg := RedisConfig{Host: "cache.local", Port: 6380}
	assert.Equal(t, "cache.local:6380", cfg.Addr())
}
