//go:build integration

package store_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"starwarsapi/internal/models"
	"starwarsapi/internal/store"
	"starwarsapi/migrations"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:alpine",
		postgres.WithDatabase("starwars"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err, "start postgres container")
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("terminate container: %v", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := sql.Open("pgx", connStr)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, migrations.Up(ctx, db))
	return db
}

func ptr[T any](v T) *T { return &v }

func TestIntegrationMigrationsReleaseConnection(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, migrations.Up(ctx, db))
	version, dirty, err := migrations.Version(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, uint(4), version)
	assert.False(t, dirty)

	assert.Zero(t, db.Stats().InUse, "migrations must hand their connection back to the pool")
	require.NoError(t, db.PingContext(ctx), "migrations must leave the handle open")
}

func TestIntegrationEntityLifecycle(t *testing.T) {
	db := setupTestDB(t)
	s := store.New(db)
	ctx := context.Background()

	luke, err := s.CreatePerson(ctx, models.PersonFields{Name: ptr("Luke"), Height: ptr("172")})
	require.NoError(t, err)

	got, err := s.GetPerson(ctx, luke.ID)
	require.NoError(t, err)
	assert.Equal(t, luke, got)
	assert.Nil(t, got.Mass)

	updated, err := s.UpdatePerson(ctx, luke.ID, models.PersonFields{Mass: ptr("77")})
	require.NoError(t, err)
	assert.Equal(t, "Luke", updated.Name)
	assert.Equal(t, "172", *updated.Height)
	assert.Equal(t, "77", *updated.Mass)

	require.NoError(t, s.DeletePerson(ctx, luke.ID))
	_, err = s.GetPerson(ctx, luke.ID)
	assert.ErrorIs(t, err, store.ErrPersonNotFound)

	planet, err := s.CreatePlanet(ctx, models.PlanetFields{Climate: ptr("arid")})
	require.NoError(t, err)
	assert.Equal(t, models.DefaultPlanetName, planet.Name)
	assert.Equal(t, "", planet.Terrain)

	_, err = s.GetPlanet(ctx, 9999)
	assert.ErrorIs(t, err, store.ErrPlanetNotFound)
}

func TestIntegrationUsersAndFavorites(t *testing.T) {
	db := setupTestDB(t)
	s := store.New(db)
	ctx := context.Background()

	user, err := s.CreateUser(ctx, models.UserFields{Email: ptr("luke@rebellion.org"), Password: ptr("secret")})
	require.NoError(t, err)
	assert.True(t, user.IsActive)

	var hash string
	require.NoError(t, db.QueryRowContext(ctx, `SELECT password_hash FROM users WHERE id = $1`, user.ID).Scan(&hash))
	assert.NotEqual(t, "secret", hash)

	_, err = s.CreateUser(ctx, models.UserFields{Email: ptr("luke@rebellion.org"), Password: ptr("other")})
	assert.ErrorIs(t, err, store.ErrUserExists)

	planet, err := s.CreatePlanet(ctx, models.PlanetFields{Name: ptr("Hoth")})
	require.NoError(t, err)

	fav, err := s.CreateFavorite(ctx, user.ID, models.TargetPlanet, planet.ID)
	require.NoError(t, err)
	assert.Equal(t, planet.ID, *fav.PlanetID)

	_, err = s.CreateFavorite(ctx, user.ID, models.TargetPlanet, planet.ID)
	assert.ErrorIs(t, err, store.ErrFavoriteExists)

	found, err := s.FavoriteExists(ctx, user.ID, models.TargetPlanet, planet.ID)
	require.NoError(t, err)
	assert.True(t, found)

	require.NoError(t, s.DeletePlanet(ctx, planet.ID))
	favs, err := s.ListFavoritesByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, favs, "favorites cascade with their planet")

	err = s.DeleteFavorite(ctx, user.ID, models.TargetPlanet, planet.ID)
	assert.ErrorIs(t, err, store.ErrFavoriteNotFound)
}
