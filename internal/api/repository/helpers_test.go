package repository

import (
	"context"
	"testing"
	"time"
	"touchhub/backend/internal/api/models"
	"touchhub/backend/internal/db"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func newSQLiteDB(t *testing.T) *sqlx.DB {
	t.Helper()
	ctx := context.Background()

	conn, err := db.Open(ctx, "sqlite://:memory:")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	require.NoError(t, db.Migrate(ctx, conn))
	return conn
}

func seedUser(t *testing.T, repo UserRepository, username string) *models.User {
	t.Helper()
	u := &models.User{Username: username, Email: username + "@example.com", HashedPassword: "hash-" + username}
	require.NoError(t, repo.Create(context.Background(), u))
	return u
}

func ptr[T any](v T) *T { return &v }

func samplePlay(ownerID int64, title string, private bool) *models.Play {
	return &models.Play{
		Title:       title,
		Description: "drill for " + title,
		FrameData: models.FrameData{
			{
				FrameNumber: 1,
				Duration:    1.5,
				Pieces: []models.Piece{
					{ID: 1, Type: "player", Color: "red", X: 0.1, Y: 0.2, Size: 1, Opacity: 1},
					{ID: 2, Type: "ball", Color: "white", X: 0.5, Y: 0.5, Rotation: 45, Size: 0.5, Label: ptr("ball"), Opacity: 0.8},
				},
			},
			{FrameNumber: 2, Duration: 1, Pieces: []models.Piece{}},
		},
		IsPrivate: private,
		CreatedAt: time.Date(2025, 5, 6, 7, 8, 9, 0, time.UTC),
		OwnerID:   ownerID,
	}
}

func seedUserNoCheck(repo UserRepository, username, email string) error {
	return repo.Create(context.Background(), &models.User{Username: username, Email: email, HashedPassword: "x"})
}

func playTitles(plays []models.Play) []string {
	titles := []string{}
	for _, p := range plays {
		titles = append(titles, p.Title)
	}
	return titles
}
