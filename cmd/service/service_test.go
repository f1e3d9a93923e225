// File: cmd/service/service_test.go
package main

import (
	"context"
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"coffee-wifi/internal/cache"
	"coffee-wifi/internal/database"
	"coffee-wifi/internal/view"
	"coffee-wifi/internal/worker"
)

func restoreGlobals() {
	newPgxPool = database.NewPgxPool
	newRedisClient = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	newWorkerPool = worker.NewPool
	newRenderer = view.NewRenderer
	startServer = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	exitFunc = func(code int) {}
}

func setEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://example/app")
	t.Setenv("SESSION_SECRET", "testsecret")
	t.Setenv("REDIS_ADDR", "127.0.0.1:6379")
	t.Setenv("REDIS_DB", "1")
	t.Setenv("REDIS_PASSWORD", "pw")
}

func TestCustomValidator(t *testing.T) {
	cv := &CustomValidator{validator: validator.New()}
	type s struct {
		Name string `validate:"required"`
	}
	require.NoError(t, cv.Validate(&s{Name: "ok"}))
	require.Error(t, cv.Validate(&s{}))
}

func TestRunSuccess(t *testing.T) {
	t.Cleanup(restoreGlobals)
	called := make(map[string]bool)
	newPgxPool = func(ctx context.Context, url string) (database.DB, error) {
		called["pgx"] = true
		return &database.FakeDB{CloseFn: func() { called["dbClose"] = true }}, nil
	}
	newRedisClient = func(addr, pwd string, db int) (cache.Cache, error) {
		called["redis"] = true
		require.Equal(t, "127.0.0.1:6379", addr)
		require.Equal(t, "pw", pwd)
		require.Equal(t, 1, db)
		return &cache.FakeCache{CloseFn: func() error { called["redisClose"] = true; return nil }}, nil
	}
	runMigrationsFn = func(url string) error { called["migrate"] = true; return nil }
	startServer = func(e *echo.Echo, addr string) error {
		called["start"] = true
		require.Equal(t, ":8080", addr)
		require.NotNil(t, e.Renderer)
		require.NotNil(t, e.Validator)
		return nil
	}

	setEnv(t)
	require.NoError(t, run())
	require.True(t, called["pgx"])
	require.True(t, called["redis"])
	require.True(t, called["migrate"])
	require.True(t, called["start"])
	require.True(t, called["dbClose"])
	require.True(t, called["redisClose"])
}

func TestRunMissingEnv(t *testing.T) {
	t.Cleanup(restoreGlobals)

	t.Run("DATABASE_URL", func(t *testing.T) {
		setEnv(t)
		t.Setenv("DATABASE_URL", "")
		require.Error(t, run())
	})

	t.Run("SESSION_SECRET", func(t *testing.T) {
		setEnv(t)
		t.Setenv("SESSION_SECRET", "")
		require.Error(t, run())
	})

	t.Run("REDIS_ADDR", func(t *testing.T) {
		setEnv(t)
		t.Setenv("REDIS_ADDR", "")
		require.Error(t, run())
	})

	t.Run("invalid REDIS_DB", func(t *testing.T) {
		setEnv(t)
		t.Setenv("REDIS_DB", "abc")
		require.Error(t, run())
	})

	t.Run("invalid WORKER_COUNT", func(t *testing.T) {
		setEnv(t)
		t.Setenv("WORKER_COUNT", "-1")
		require.Error(t, run())
	})
}

func TestRunConnectFailures(t *testing.T) {
	t.Cleanup(restoreGlobals)
	setEnv(t)

	t.Run("db connect fails", func(t *testing.T) {
		newPgxPool = func(ctx context.Context, url string) (database.DB, error) {
			return nil, errors.New("no db")
		}
		require.Error(t, run())
	})

	t.Run("redis connect fails", func(t *testing.T) {
		newPgxPool = func(ctx context.Context, url string) (database.DB, error) {
			return &database.FakeDB{CloseFn: func() {}}, nil
		}
		newRedisClient = func(addr, pwd string, db int) (cache.Cache, error) {
			return nil, errors.New("no redis")
		}
		require.Error(t, run())
	})

	t.Run("migration fails", func(t *testing.T) {
		newRedisClient = func(addr, pwd string, db int) (cache.Cache, error) {
			return &cache.FakeCache{}, nil
		}
		runMigrationsFn = func(url string) error { return errors.New("migrate fail") }
		require.Error(t, run())
	})
}
