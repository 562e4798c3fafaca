//go:build integration

package postgres

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	postgrescontainer "github.com/testcontainers/testcontainers-go/modules/postgres"

	"example.com/fitassess/internal/catalog"
	"example.com/fitassess/internal/profile"
)

func TestLoaderRoundTripsBuiltinCatalog(t *testing.T) {
	ctx := context.Background()

	pg, err := postgrescontainer.RunContainer(ctx,
		postgrescontainer.WithDatabase("fitassess"),
		postgrescontainer.WithUsername("platform"),
		postgrescontainer.WithPassword("platform"),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pg.Terminate(ctx) })

	connStr, err := pg.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)
	require.NoError(t, waitForDatabase(ctx, connStr))

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)
	t.Cleanup(func() { pool.Close() })

	runMigrations(t, ctx, pool)

	builtin := catalog.Default()
	require.NoError(t, Seed(ctx, pool, builtin))

	loaded, err := NewLoader(pool).Load(ctx)
	require.NoError(t, err)
	require.Equal(t, builtin.Exercises(), loaded.Exercises())
	require.Equal(t, builtin.Products(), loaded.Products())

	got := loaded.SelectExercises([]string{profile.ZoneFullBody}, nil, profile.LevelSedentary)
	require.Len(t, got, 7)
}

func runMigrations(t *testing.T, ctx context.Context, pool *pgxpool.Pool) {
	path := resolvePath(t, "../../../db/postgres/migrations/0001_catalog.up.sql")
	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	_, err = pool.Exec(ctx, string(contents))
	require.NoError(t, err)
}

func resolvePath(t *testing.T, rel string) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	require.True(t, ok)
	return filepath.Join(filepath.Dir(file), rel)
}

func waitForDatabase(ctx context.Context, connStr string) error {
	deadline := time.Now().Add(30 * time.Second)
	for {
		pool, err := pgxpool.New(ctx, connStr)
		if err == nil {
			err = pool.Ping(ctx)
			pool.Close()
			if err == nil {
				return nil
			}
		}
		if time.Now().After(deadline) {
			return err
		}
		time.Sleep(time.Second)
	}
}
