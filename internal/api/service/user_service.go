package service

//go:generate mockgen -source=user_service.go -destination=mocks/mock_user_service.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
	"touchhub/backend/internal/api/models"
	"touchhub/backend/internal/api/repository"
	"touchhub/backend/internal/auth"
)

// TokenIssuer issues and verifies bearer tokens.
type TokenIssuer interface {
	Issue(subject string) (string, time.Time, error)
	Verify(token string) (string, error)
}

// UserService defines the interface for user-related business logic.
type UserService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.Token, error)
	Authenticate(ctx context.Context, token string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	List(ctx context.Context, skip, limit int) ([]models.User, error)
}

type userService struct {
	userRepo repository.UserRepository
	hasher   auth.PasswordHasher
	tokens   TokenIssuer
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository, hasher auth.PasswordHasher, tokens TokenIssuer) UserService {
	return &userService{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
	}
}

// Register creates a user after checking that the username and email are free.
func (s *userService) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	existing, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	existing, err = s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hashed, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:       req.Username,
		Email:          req.Email,
		HashedPassword: hashed,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		// A concurrent registration can win the race past the checks above.
		switch {
		case errors.Is(err, repository.ErrDuplicateUsername):
			return nil, ErrUsernameTaken
		case errors.Is(err, repository.ErrDuplicateEmail):
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	slog.InfoContext(ctx, "user registered", "user_id", user.ID, "username", user.Username)
	return user, nil
}

// Login verifies a username/password pair and returns a bearer token.
func (s *userService) Login(ctx context.Context, req *models.LoginRequest) (*models.Token, error) {
	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if user == nil || !s.hasher.Verify(req.Password, user.HashedPassword) {
		slog.InfoContext(ctx, "login rejected", "username", req.Username)
		return nil, ErrInvalidCredentials
	}

	token, _, err := s.tokens.Issue(user.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &models.Token{AccessToken: token, TokenType: "bearer"}, nil
}

// Authenticate resolves a bearer token to the user it was issued for.
func (s *userService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	username, err := s.tokens.Verify(token)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidToken) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		slog.DebugContext(ctx, "token subject no longer exists", "username", username)
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// GetByID returns a single user.
func (s *userService) GetByID(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// List returns a page of users.
func (s *userService) List(ctx context.Context, skip, limit int) ([]models.User, error) {
	return s.userRepo.List(ctx, skip, limit)
}
