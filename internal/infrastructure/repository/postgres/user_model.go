package postgres

import (
	"time"

	"github.com/mlbb-fantasy/api/internal/domain/user"
)

type userTableModel struct {
	ID           int64     `db:"id"`
	PublicID     string    `db:"public_id"`
	Username     string    `db:"username"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	AvatarURL    string    `db:"avatar_url"`
	FavoriteTeam string    `db:"favorite_team"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func userFromRow(row userTableModel) user.User {
	return user.User{
		ID:           row.PublicID,
		Username:     row.Username,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		AvatarURL:    row.AvatarURL,
		FavoriteTeam: row.FavoriteTeam,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}
