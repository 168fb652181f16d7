package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/mlbb-fantasy/api/internal/domain/user"
)

const userSelectColumns = `id, public_id, username, email, password_hash, avatar_url, favorite_team, created_at, updated_at`

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u user.User) error {
	const query = `INSERT INTO users (public_id, username, email, password_hash, avatar_url, favorite_team, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.ExecContext(ctx, query,
		u.ID, u.Username, strings.ToLower(u.Email), u.PasswordHash,
		u.AvatarURL, u.FavoriteTeam, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, userID string) (user.User, bool, error) {
	query := fmt.Sprintf("SELECT %s FROM users WHERE public_id = $1", userSelectColumns)

	var row userTableModel
	if err := r.db.GetContext(ctx, &row, query, userID); err != nil {
		if isNotFound(err) {
			return user.User{}, false, nil
		}
		return user.User{}, false, fmt.Errorf("get user by id: %w", err)
	}

	return userFromRow(row), true, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (user.User, bool, error) {
	query := fmt.Sprintf("SELECT %s FROM users WHERE email = $1", userSelectColumns)

	var row userTableModel
	if err := r.db.GetContext(ctx, &row, query, strings.ToLower(email)); err != nil {
		if isNotFound(err) {
			return user.User{}, false, nil
		}
		return user.User{}, false, fmt.Errorf("get user by email: %w", err)
	}

	return userFromRow(row), true, nil
}
