package user

import (
	"fmt"
	"time"
)

// UnknownUsername is the sentinel shown when a leaderboard row references a
// user record that no longer resolves.
const UnknownUsername = "Unknown"

// User is an account record. PasswordHash holds whatever the registration
// flow supplied; this service performs no real hashing (prototype contract).
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	AvatarURL    string
	FavoriteTeam string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (u User) Validate() error {
	if u.ID == "" {
		return fmt.Errorf("user id is required")
	}
	if len(u.Username) < 3 || len(u.Username) > 24 {
		return fmt.Errorf("username must be between 3 and 24 characters")
	}
	if u.Email == "" {
		return fmt.Errorf("email is required")
	}
	if u.PasswordHash == "" {
		return fmt.Errorf("password is required")
	}

	return nil
}
