package repository

//go:generate mockgen -source=user_repository.go -destination=mocks/mock_user_repository.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"touchhub/backend/internal/api/models"

	"github.com/glebarez/go-sqlite"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("repository")

// ErrNotFound is returned by mutations that address a row that does not exist.
var ErrNotFound = errors.New("record not found")

// Create returns these when a unique constraint on users rejects the insert.
var (
	ErrDuplicateUsername = errors.New("duplicate username")
	ErrDuplicateEmail    = errors.New("duplicate email")
)

const (
	sqliteConstraintUnique = 2067 // SQLITE_CONSTRAINT_UNIQUE
	pgUniqueViolation      = "23505"
)

// UserRepository defines the interface for user data operations.
// Lookups return (nil, nil) when no user matches.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context, skip, limit int) ([]models.User, error)
}

type sqlUserRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a new sqlx-backed UserRepository.
func NewUserRepository(db *sqlx.DB) UserRepository {
	return &sqlUserRepository{db: db}
}

// Create inserts a new user and sets its ID. The password must already be hashed.
func (r *sqlUserRepository) Create(ctx context.Context, user *models.User) error {
	ctx, span := tracer.Start(ctx, "UserRepository.Create")
	defer span.End()

	query := r.db.Rebind(`INSERT INTO users (username, email, hashed_password) VALUES (?, ?, ?) RETURNING id`)
	if err := r.db.QueryRowxContext(ctx, query, user.Username, user.Email, user.HashedPassword).Scan(&user.ID); err != nil {
		span.RecordError(err)
		if dup := duplicateUser(err); dup != nil {
			return dup
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetByID retrieves a user by primary key.
func (r *sqlUserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	ctx, span := tracer.Start(ctx, "UserRepository.GetByID")
	defer span.End()

	return r.getOne(ctx, `SELECT id, username, email, hashed_password FROM users WHERE id = ?`, id)
}

// GetByUsername retrieves a user by their username.
func (r *sqlUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	ctx, span := tracer.Start(ctx, "UserRepository.GetByUsername")
	defer span.End()

	return r.getOne(ctx, `SELECT id, username, email, hashed_password FROM users WHERE username = ?`, username)
}

// GetByEmail retrieves a user by their email address.
func (r *sqlUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	ctx, span := tracer.Start(ctx, "UserRepository.GetByEmail")
	defer span.End()

	return r.getOne(ctx, `SELECT id, username, email, hashed_password FROM users WHERE email = ?`, email)
}

// List returns users ordered by id.
func (r *sqlUserRepository) List(ctx context.Context, skip, limit int) ([]models.User, error) {
	ctx, span := tracer.Start(ctx, "UserRepository.List")
	defer span.End()

	users := []models.User{}
	query := r.db.Rebind(`SELECT id, username, email, hashed_password FROM users ORDER BY id LIMIT ? OFFSET ?`)
	if err := r.db.SelectContext(ctx, &users, query, limit, skip); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// duplicateUser maps a unique violation on users to the column it hit.
// It returns nil for any other error.
func duplicateUser(err error) error {
	var detail string
	var pgErr *pgconn.PgError
	var liteErr *sqlite.Error
	switch {
	case errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation:
		detail = pgErr.ConstraintName
	case errors.As(err, &liteErr) && liteErr.Code() == sqliteConstraintUnique:
		detail = liteErr.Error()
	default:
		return nil
	}
	if strings.Contains(detail, "email") {
		return ErrDuplicateEmail
	}
	return ErrDuplicateUsername
}

func (r *sqlUserRepository) getOne(ctx context.Context, query string, arg any) (*models.User, error) {
	var user models.User
	err := r.db.GetContext(ctx, &user, r.db.Rebind(query), arg)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // No user found is not an application error
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}
