//go:build integration

// Runs the HTTP lifecycle against a real PostgreSQL started with testcontainers.
// go test -tags integration ./internal/router/...
package router_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"workoutapi/internal/config"
	"workoutapi/internal/infra"
	"workoutapi/internal/router"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func newPostgresEngine(t *testing.T) http.Handler {
	t.Helper()
	ctx := context.Background()

	pgC, err := tcPostgres.Run(ctx, "postgres:16-alpine",
		tcPostgres.WithDatabase("workout_test"),
		tcPostgres.WithUsername("workout"),
		tcPostgres.WithPassword("workout"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	dsn, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := infra.NewDatabase(dsn, infra.DefaultPool)
	require.NoError(t, err)
	require.NoError(t, infra.RunMigrations(db))
	// Second run exercises the idempotent schema patches.
	require.NoError(t, infra.RunMigrations(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return router.New(&config.Config{Env: "test"}, db)
}

func TestPostgres_AtletaLifecycle(t *testing.T) {
	h := newPostgresEngine(t)
	seedReferencias(t, h)

	w := do(t, h, http.MethodPost, "/atletas/", ana())
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	id := decode(t, w)["id"].(string)

	w = do(t, h, http.MethodPost, "/atletas/", ana())
	assert.Equal(t, http.StatusSeeOther, w.Code)

	w = do(t, h, http.MethodGet, "/atletas/?nome=AN", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, decode(t, w)["total"])

	w = do(t, h, http.MethodPatch, "/atletas/"+id, map[string]any{"idade": 31})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.EqualValues(t, 31, decode(t, w)["idade"])

	w = do(t, h, http.MethodDelete, "/atletas/"+id, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, h, http.MethodGet, "/atletas/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
