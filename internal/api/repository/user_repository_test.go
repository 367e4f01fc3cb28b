package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newSQLiteDB(t))

	alice := seedUser(t, repo, "alice")
	bob := seedUser(t, repo, "bob")
	assert.NotZero(t, alice.ID)
	assert.Greater(t, bob.ID, alice.ID)

	t.Run("by id", func(t *testing.T) {
		got, err := repo.GetByID(ctx, alice.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, *alice, *got)
	})

	t.Run("by username", func(t *testing.T) {
		got, err := repo.GetByUsername(ctx, "bob")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, bob.ID, got.ID)
		assert.Equal(t, "hash-bob", got.HashedPassword)
	})

	t.Run("by email", func(t *testing.T) {
		got, err := repo.GetByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, alice.ID, got.ID)
	})

	t.Run("missing returns nil", func(t *testing.T) {
		got, err := repo.GetByID(ctx, 999)
		require.NoError(t, err)
		assert.Nil(t, got)

		got, err = repo.GetByUsername(ctx, "nobody")
		require.NoError(t, err)
		assert.Nil(t, got)

		got, err = repo.GetByEmail(ctx, "nobody@example.com")
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestUserRepository_UniqueConstraints(t *testing.T) {
	repo := NewUserRepository(newSQLiteDB(t))
	seedUser(t, repo, "alice")

	dupe := seedUserNoCheck(repo, "alice", "other@example.com")
	assert.ErrorIs(t, dupe, ErrDuplicateUsername)

	dupe = seedUserNoCheck(repo, "other", "alice@example.com")
	assert.ErrorIs(t, dupe, ErrDuplicateEmail)
}

func TestUserRepository_List(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newSQLiteDB(t))

	empty, err := repo.List(ctx, 0, 100)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	for _, name := range []string{"u1", "u2", "u3", "u4"} {
		seedUser(t, repo, name)
	}

	tests := []struct {
		name  string
		skip  int
		limit int
		want  []string
	}{
		{"all", 0, 100, []string{"u1", "u2", "u3", "u4"}},
		{"limit", 0, 2, []string{"u1", "u2"}},
		{"skip", 2, 100, []string{"u3", "u4"}},
		{"skip and limit", 1, 2, []string{"u2", "u3"}},
		{"skip past end", 10, 100, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users, err := repo.List(ctx, tt.skip, tt.limit)
			require.NoError(t, err)
			names := []string{}
			for _, u := range users {
				names = append(names, u.Username)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}
