package repository

//go:generate mockgen -source=play_repository.go -destination=mocks/mock_play_repository.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"touchhub/backend/internal/api/models"

	"github.com/jmoiron/sqlx"
	"go.opentelemetry.io/otel/attribute"
)

const playColumns = `id, title, description, frame_data, is_private, created_at, owner_id`

// PlayRepository defines the interface for play data operations.
type PlayRepository interface {
	Create(ctx context.Context, play *models.Play) error
	GetByID(ctx context.Context, id int64) (*models.Play, error)
	List(ctx context.Context, skip, limit int) ([]models.Play, error)
	ListByOwner(ctx context.Context, ownerID int64, skip, limit int) ([]models.Play, error)
	ListPublic(ctx context.Context, skip, limit int) ([]models.Play, error)
	Update(ctx context.Context, play *models.Play) error
	Delete(ctx context.Context, id int64) error
}

type sqlPlayRepository struct {
	db *sqlx.DB
}

// NewPlayRepository creates a new sqlx-backed PlayRepository.
func NewPlayRepository(db *sqlx.DB) PlayRepository {
	return &sqlPlayRepository{db: db}
}

// Create inserts a play and sets its ID.
func (r *sqlPlayRepository) Create(ctx context.Context, play *models.Play) error {
	ctx, span := tracer.Start(ctx, "PlayRepository.Create")
	defer span.End()
	span.SetAttributes(attribute.Int64("play.owner_id", play.OwnerID))

	query := r.db.Rebind(`INSERT INTO plays (title, description, frame_data, is_private, created_at, owner_id)
		VALUES (?, ?, ?, ?, ?, ?) RETURNING id`)
	err := r.db.QueryRowxContext(ctx, query,
		play.Title, play.Description, play.FrameData, play.IsPrivate, play.CreatedAt, play.OwnerID,
	).Scan(&play.ID)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to create play: %w", err)
	}
	return nil
}

// GetByID retrieves a play. It returns (nil, nil) when the play does not exist.
func (r *sqlPlayRepository) GetByID(ctx context.Context, id int64) (*models.Play, error) {
	ctx, span := tracer.Start(ctx, "PlayRepository.GetByID")
	defer span.End()
	span.SetAttributes(attribute.Int64("play.id", id))

	var play models.Play
	query := r.db.Rebind(`SELECT ` + playColumns + ` FROM plays WHERE id = ?`)
	if err := r.db.GetContext(ctx, &play, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get play: %w", err)
	}
	return &play, nil
}

// List returns all plays ordered by id.
func (r *sqlPlayRepository) List(ctx context.Context, skip, limit int) ([]models.Play, error) {
	ctx, span := tracer.Start(ctx, "PlayRepository.List")
	defer span.End()

	return r.list(ctx, `SELECT `+playColumns+` FROM plays ORDER BY id LIMIT ? OFFSET ?`, limit, skip)
}

// ListByOwner returns the plays owned by ownerID, private ones included.
func (r *sqlPlayRepository) ListByOwner(ctx context.Context, ownerID int64, skip, limit int) ([]models.Play, error) {
	ctx, span := tracer.Start(ctx, "PlayRepository.ListByOwner")
	defer span.End()
	span.SetAttributes(attribute.Int64("play.owner_id", ownerID))

	return r.list(ctx, `SELECT `+playColumns+` FROM plays WHERE owner_id = ? ORDER BY id LIMIT ? OFFSET ?`, ownerID, limit, skip)
}

// ListPublic returns plays whose is_private flag is false.
func (r *sqlPlayRepository) ListPublic(ctx context.Context, skip, limit int) ([]models.Play, error) {
	ctx, span := tracer.Start(ctx, "PlayRepository.ListPublic")
	defer span.End()

	return r.list(ctx, `SELECT `+playColumns+` FROM plays WHERE is_private = ? ORDER BY id LIMIT ? OFFSET ?`, false, limit, skip)
}

// Update replaces the mutable fields of a play. owner_id and created_at are
// never written.
func (r *sqlPlayRepository) Update(ctx context.Context, play *models.Play) error {
	ctx, span := tracer.Start(ctx, "PlayRepository.Update")
	defer span.End()
	span.SetAttributes(attribute.Int64("play.id", play.ID))

	query := r.db.Rebind(`UPDATE plays SET title = ?, description = ?, frame_data = ?, is_private = ? WHERE id = ?`)
	res, err := r.db.ExecContext(ctx, query, play.Title, play.Description, play.FrameData, play.IsPrivate, play.ID)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to update play: %w", err)
	}
	return expectOneRow(res)
}

// Delete removes a play.
func (r *sqlPlayRepository) Delete(ctx context.Context, id int64) error {
	ctx, span := tracer.Start(ctx, "PlayRepository.Delete")
	defer span.End()
	span.SetAttributes(attribute.Int64("play.id", id))

	res, err := r.db.ExecContext(ctx, r.db.Rebind(`DELETE FROM plays WHERE id = ?`), id)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to delete play: %w", err)
	}
	return expectOneRow(res)
}

func (r *sqlPlayRepository) list(ctx context.Context, query string, args ...any) ([]models.Play, error) {
	plays := []models.Play{}
	if err := r.db.SelectContext(ctx, &plays, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to list plays: %w", err)
	}
	return plays, nil
}

func expectOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
