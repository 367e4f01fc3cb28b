package service

//go:generate mockgen -source=play_service.go -destination=mocks/mock_play_service.go -package=mocks

import (
	"context"
	"errors"
	"log/slog"
	"time"
	"touchhub/backend/internal/api/models"
	"touchhub/backend/internal/api/repository"
)

// PlayService defines the interface for play-related business logic.
type PlayService interface {
	Create(ctx context.Context, owner *models.User, req *models.PlayCreateRequest) (*models.Play, error)
	Get(ctx context.Context, id int64) (*models.Play, error)
	List(ctx context.Context, skip, limit int) ([]models.Play, error)
	ListMine(ctx context.Context, owner *models.User, skip, limit int) ([]models.Play, error)
	ListCommunity(ctx context.Context, skip, limit int) ([]models.Play, error)
	Update(ctx context.Context, caller *models.User, id int64, req *models.PlayUpdateRequest) (*models.Play, error)
	Delete(ctx context.Context, caller *models.User, id int64) error
}

type playService struct {
	playRepo repository.PlayRepository
	now      func() time.Time
}

// PlayServiceOption configures a PlayService.
type PlayServiceOption func(*playService)

// WithPlayClock overrides the clock used to stamp created_at.
func WithPlayClock(now func() time.Time) PlayServiceOption {
	return func(s *playService) {
		s.now = now
	}
}

// NewPlayService creates a new PlayService.
func NewPlayService(playRepo repository.PlayRepository, opts ...PlayServiceOption) PlayService {
	s := &playService{
		playRepo: playRepo,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create stores a new play owned by the caller.
func (s *playService) Create(ctx context.Context, owner *models.User, req *models.PlayCreateRequest) (*models.Play, error) {
	play := &models.Play{
		Title:       req.Title,
		Description: req.Description,
		FrameData:   models.NormalizeFrames(req.FrameData),
		IsPrivate:   req.IsPrivate,
		CreatedAt:   s.now().UTC(),
		OwnerID:     owner.ID,
	}
	if err := s.playRepo.Create(ctx, play); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "play created", "play_id", play.ID, "owner_id", owner.ID)
	return play, nil
}

// Get returns a single play by ID.
func (s *playService) Get(ctx context.Context, id int64) (*models.Play, error) {
	play, err := s.playRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if play == nil {
		return nil, ErrPlayNotFound
	}
	return play, nil
}

func (s *playService) List(ctx context.Context, skip, limit int) ([]models.Play, error) {
	return s.playRepo.List(ctx, skip, limit)
}

func (s *playService) ListMine(ctx context.Context, owner *models.User, skip, limit int) ([]models.Play, error) {
	return s.playRepo.ListByOwner(ctx, owner.ID, skip, limit)
}

func (s *playService) ListCommunity(ctx context.Context, skip, limit int) ([]models.Play, error) {
	return s.playRepo.ListPublic(ctx, skip, limit)
}

// Update replaces the editable fields of a play owned by the caller.
func (s *playService) Update(ctx context.Context, caller *models.User, id int64, req *models.PlayUpdateRequest) (*models.Play, error) {
	play, err := s.owned(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	play.Title = req.Title
	play.Description = req.Description
	play.FrameData = models.NormalizeFrames(req.FrameData)
	play.IsPrivate = req.IsPrivate

	if err := s.playRepo.Update(ctx, play); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPlayNotFound
		}
		return nil, err
	}
	return play, nil
}

// Delete removes a play owned by the caller.
func (s *playService) Delete(ctx context.Context, caller *models.User, id int64) error {
	if _, err := s.owned(ctx, caller, id); err != nil {
		return err
	}

	if err := s.playRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPlayNotFound
		}
		return err
	}

	slog.InfoContext(ctx, "play deleted", "play_id", id, "owner_id", caller.ID)
	return nil
}

// owned loads a play and checks that caller owns it. Existence is checked first.
func (s *playService) owned(ctx context.Context, caller *models.User, id int64) (*models.Play, error) {
	play, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if play.OwnerID != caller.ID {
		slog.InfoContext(ctx, "play ownership check failed", "play_id", id, "owner_id", play.OwnerID, "caller_id", caller.ID)
		return nil, ErrForbidden
	}
	return play, nil
}
