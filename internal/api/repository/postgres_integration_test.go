package repository

import (
	"context"
	"testing"
	"time"
	"touchhub/backend/internal/db"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

func newPostgresDB(t *testing.T) *sqlx.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping PostgreSQL integration test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	ctr, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("touchhub"),
		postgres.WithUsername("touchhub"),
		postgres.WithPassword("touchhub"),
		postgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, ctr)
	require.NoError(t, err)

	dsn, err := ctr.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	conn, err := db.Open(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	require.NoError(t, db.Migrate(ctx, conn))
	return conn
}

func TestPostgres_PlayLifecycle(t *testing.T) {
	conn := newPostgresDB(t)
	ctx := context.Background()
	users := NewUserRepository(conn)
	plays := NewPlayRepository(conn)

	owner := seedUser(t, users, "coach")
	assert.ErrorIs(t, seedUserNoCheck(users, "coach", "second@example.com"), ErrDuplicateUsername)
	assert.ErrorIs(t, seedUserNoCheck(users, "other", "coach@example.com"), ErrDuplicateEmail)

	play := samplePlay(owner.ID, "Sweep", true)
	play.CreatedAt = time.Now().UTC().Truncate(time.Microsecond)
	require.NoError(t, plays.Create(ctx, play))

	got, err := plays.GetByID(ctx, play.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, play.FrameData, got.FrameData)
	assert.True(t, play.CreatedAt.Equal(got.CreatedAt))
	assert.True(t, got.IsPrivate)

	public, err := plays.ListPublic(ctx, 0, 100)
	require.NoError(t, err)
	assert.Empty(t, public)

	mine, err := plays.ListByOwner(ctx, owner.ID, 0, 100)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	got.Title = "Renamed"
	got.IsPrivate = false
	require.NoError(t, plays.Update(ctx, got))

	public, err = plays.ListPublic(ctx, 0, 100)
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Equal(t, "Renamed", public[0].Title)

	require.NoError(t, plays.Delete(ctx, play.ID))
	assert.ErrorIs(t, plays.Delete(ctx, play.ID), ErrNotFound)
}
