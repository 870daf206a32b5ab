package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/sis-eval/backend/internal/app/models"
	"github.com/sis-eval/backend/internal/db"
	"github.com/sis-eval/backend/internal/pkg/apperrors"
	"github.com/sis-eval/backend/internal/pkg/dberrors"
)

// UserRepository handles user database operations. Users are only referenced
// by evaluations, so the surface is deliberately small.
type UserRepository struct {
	db *db.PostgresDB
	sb squirrel.StatementBuilderType
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(database *db.PostgresDB) *UserRepository {
	return &UserRepository{
		db: database,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Exists checks whether a user with the given id exists. Inside a transaction
// it runs on the transaction's connection.
func (r *UserRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.Conn(ctx).QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking user existence: %w", err)
	}

	return exists, nil
}

// Create inserts a new user
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query, args, err := r.sb.Insert("users").
		Columns("id", "username", "email", "is_active").
		Values(user.ID, user.Username, user.Email, user.IsActive).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create user query: %w", err)
	}

	if err := r.db.Conn(ctx).QueryRow(ctx, query, args...).Scan(&user.CreatedAt); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_username_key") ||
			dberrors.IsDuplicateConstraintError(err, "users_email_key") {
			return apperrors.ErrUserAlreadyExists
		}
		return fmt.Errorf("error creating user: %w", err)
	}

	return nil
}

// GetByUsername retrieves a user by username
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query, args, err := r.sb.Select("id", "username", "email", "is_active", "created_at").
		From("users").
		Where(squirrel.Eq{"username": username}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get user query: %w", err)
	}

	var user models.User
	err = r.db.Conn(ctx).QueryRow(ctx, query, args...).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.IsActive,
		&user.CreatedAt,
	)
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, fmt.Errorf("user %q: %w", username, apperrors.ErrResourceNotFound)
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return &user, nil
}
