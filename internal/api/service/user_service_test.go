package service_test

import (
	"context"
	"errors"
	"testing"
	"time"
	"touchhub/backend/internal/api/models"
	"touchhub/backend/internal/api/repository"
	repomocks "touchhub/backend/internal/api/repository/mocks"
	"touchhub/backend/internal/api/service"
	svcmocks "touchhub/backend/internal/api/service/mocks"
	"touchhub/backend/internal/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

var errDB = errors.New("database unavailable")

type userFixture struct {
	repo   *repomocks.MockUserRepository
	hasher auth.PasswordHasher
	tokens *auth.TokenService
	svc    service.UserService
}

func newUserFixture(t *testing.T) *userFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockUserRepository(ctrl)
	hasher := auth.NewBcryptHasher(bcrypt.MinCost)
	tokens, err := auth.NewTokenService("test-secret", time.Hour)
	require.NoError(t, err)

	return &userFixture{
		repo:   repo,
		hasher: hasher,
		tokens: tokens,
		svc:    service.NewUserService(repo, hasher, tokens),
	}
}

func (f *userFixture) storedUser(t *testing.T, id int64, username, password string) *models.User {
	t.Helper()
	hash, err := f.hasher.Hash(password)
	require.NoError(t, err)
	return &models.User{ID: id, Username: username, Email: username + "@example.com", HashedPassword: hash}
}

func TestUserService_Register(t *testing.T) {
	ctx := context.Background()
	req := &models.RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "secret123"}

	t.Run("creates user with hashed password", func(t *testing.T) {
		f := newUserFixture(t)
		f.repo.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, nil)
		f.repo.EXPECT().GetByEmail(gomock.Any(), "alice@example.com").Return(nil, nil)
		f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u *models.User) error {
			u.ID = 7
			return nil
		})

		user, err := f.svc.Register(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, int64(7), user.ID)
		assert.Equal(t, "alice", user.Username)
		assert.NotEqual(t, "secret123", user.HashedPassword)
		assert.True(t, f.hasher.Verify("secret123", user.HashedPassword))
	})

	t.Run("username taken", func(t *testing.T) {
		f := newUserFixture(t)
		f.repo.EXPECT().GetByUsername(gomock.Any(), "alice").Return(&models.User{ID: 1, Username: "alice"}, nil)

		_, err := f.svc.Register(ctx, req)
		assert.ErrorIs(t, err, service.ErrUsernameTaken)
	})

	t.Run("email taken", func(t *testing.T) {
		f := newUserFixture(t)
		f.repo.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, nil)
		f.repo.EXPECT().GetByEmail(gomock.Any(), "alice@example.com").Return(&models.User{ID: 2}, nil)

		_, err := f.svc.Register(ctx, req)
		assert.ErrorIs(t, err, service.ErrEmailTaken)
	})

	t.Run("username checked before email", func(t *testing.T) {
		f := newUserFixture(t)
		f.repo.EXPECT().GetByUsername(gomock.Any(), "alice").Return(&models.User{ID: 1}, nil)
		f.repo.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Times(0)

		_, err := f.svc.Register(ctx, req)
		assert.ErrorIs(t, err, service.ErrUsernameTaken)
	})

	t.Run("repository failure", func(t *testing.T) {
		f := newUserFixture(t)
		f.repo.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, nil)
		f.repo.EXPECT().GetByEmail(gomock.Any(), "alice@example.com").Return(nil, nil)
		f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errDB)

		_, err := f.svc.Register(ctx, req)
		assert.ErrorIs(t, err, errDB)
	})

	t.Run("insert loses a concurrent race", func(t *testing.T) {
		tests := []struct {
			name    string
			repoErr error
			want    error
		}{
			{name: "username", repoErr: repository.ErrDuplicateUsername, want: service.ErrUsernameTaken},
			{name: "email", repoErr: repository.ErrDuplicateEmail, want: service.ErrEmailTaken},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				f := newUserFixture(t)
				f.repo.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, nil)
				f.repo.EXPECT().GetByEmail(gomock.Any(), "alice@example.com").Return(nil, nil)
				f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(tt.repoErr)

				_, err := f.svc.Register(ctx, req)
				assert.ErrorIs(t, err, tt.want)
			})
		}
	})
}

func TestUserService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("valid credentials", func(t *testing.T) {
		f := newUserFixture(t)
		f.repo.EXPECT().GetByUsername(gomock.Any(), "alice").Return(f.storedUser(t, 1, "alice", "secret123"), nil)

		token, err := f.svc.Login(ctx, &models.LoginRequest{Username: "alice", Password: "secret123"})
		require.NoError(t, err)
		assert.Equal(t, "bearer", token.TokenType)

		subject, err := f.tokens.Verify(token.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, "alice", subject)
	})

	tests := []struct {
		name     string
		stored   bool
		password string
	}{
		{name: "unknown user", stored: false, password: "secret123"},
		{name: "wrong password", stored: true, password: "nope-nope"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newUserFixture(t)
			var stored *models.User
			if tt.stored {
				stored = f.storedUser(t, 1, "alice", "secret123")
			}
			f.repo.EXPECT().GetByUsername(gomock.Any(), "alice").Return(stored, nil)

			token, err := f.svc.Login(ctx, &models.LoginRequest{Username: "alice", Password: tt.password})
			assert.ErrorIs(t, err, service.ErrInvalidCredentials)
			assert.Nil(t, token)
		})
	}

	t.Run("repository failure is not a credential error", func(t *testing.T) {
		f := newUserFixture(t)
		f.repo.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, errDB)

		_, err := f.svc.Login(ctx, &models.LoginRequest{Username: "alice", Password: "secret123"})
		assert.ErrorIs(t, err, errDB)
		assert.NotErrorIs(t, err, service.ErrInvalidCredentials)
	})
}

func TestUserService_Authenticate(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves token subject", func(t *testing.T) {
		f := newUserFixture(t)
		alice := &models.User{ID: 1, Username: "alice"}
		f.repo.EXPECT().GetByUsername(gomock.Any(), "alice").Return(alice, nil)

		token, _, err := f.tokens.Issue("alice")
		require.NoError(t, err)

		user, err := f.svc.Authenticate(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, alice, user)
	})

	t.Run("garbage token", func(t *testing.T) {
		f := newUserFixture(t)
		_, err := f.svc.Authenticate(ctx, "not-a-jwt")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("deleted user", func(t *testing.T) {
		f := newUserFixture(t)
		f.repo.EXPECT().GetByUsername(gomock.Any(), "ghost").Return(nil, nil)

		token, _, err := f.tokens.Issue("ghost")
		require.NoError(t, err)

		_, err = f.svc.Authenticate(ctx, token)
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("repository failure", func(t *testing.T) {
		f := newUserFixture(t)
		f.repo.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, errDB)

		token, _, err := f.tokens.Issue("alice")
		require.NoError(t, err)

		_, err = f.svc.Authenticate(ctx, token)
		assert.ErrorIs(t, err, errDB)
	})
}

func TestUserService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		f := newUserFixture(t)
		f.repo.EXPECT().GetByID(gomock.Any(), int64(3)).Return(&models.User{ID: 3, Username: "carol"}, nil)

		user, err := f.svc.GetByID(ctx, 3)
		require.NoError(t, err)
		assert.Equal(t, "carol", user.Username)
	})

	t.Run("missing", func(t *testing.T) {
		f := newUserFixture(t)
		f.repo.EXPECT().GetByID(gomock.Any(), int64(3)).Return(nil, nil)

		_, err := f.svc.GetByID(ctx, 3)
		assert.ErrorIs(t, err, service.ErrUserNotFound)
	})
}

func TestUserService_List(t *testing.T) {
	f := newUserFixture(t)
	want := []models.User{{ID: 1, Username: "a"}, {ID: 2, Username: "b"}}
	f.repo.EXPECT().List(gomock.Any(), 10, 20).Return(want, nil)

	got, err := f.svc.List(context.Background(), 10, 20)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestUserService_LoginIssueFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockUserRepository(ctrl)
	tokens := svcmocks.NewMockTokenIssuer(ctrl)
	hasher := auth.NewBcryptHasher(bcrypt.MinCost)
	svc := service.NewUserService(repo, hasher, tokens)

	hash, err := hasher.Hash("secret123")
	require.NoError(t, err)
	repo.EXPECT().GetByUsername(gomock.Any(), "alice").Return(&models.User{ID: 1, Username: "alice", HashedPassword: hash}, nil)
	tokens.EXPECT().Issue("alice").Return("", time.Time{}, errDB)

	_, err = svc.Login(context.Background(), &models.LoginRequest{Username: "alice", Password: "secret123"})
	assert.ErrorIs(t, err, errDB)
	assert.NotErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestUserService_AuthenticateMapsInvalidToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	tokens := svcmocks.NewMockTokenIssuer(ctrl)
	svc := service.NewUserService(repomocks.NewMockUserRepository(ctrl), auth.NewBcryptHasher(bcrypt.MinCost), tokens)

	tokens.EXPECT().Verify("tok").Return("", auth.ErrInvalidToken)
	_, err := svc.Authenticate(context.Background(), "tok")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}
