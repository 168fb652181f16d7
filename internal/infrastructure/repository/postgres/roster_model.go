package postgres

import (
	"time"

	"github.com/lib/pq"

	"github.com/mlbb-fantasy/api/internal/domain/roster"
)

type rosterTableModel struct {
	ID        int64          `db:"id"`
	PublicID  string         `db:"public_id"`
	UserID    string         `db:"user_public_id"`
	Week      int            `db:"week"`
	Budget    int64          `db:"budget"`
	PlayerIDs pq.StringArray `db:"player_ids"`
	TotalCost int64          `db:"total_cost"`
	Points    int64          `db:"points"`
	Version   int64          `db:"version"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

type transferTableModel struct {
	ID          int64     `db:"id"`
	PublicID    string    `db:"public_id"`
	UserID      string    `db:"user_public_id"`
	Week        int       `db:"week"`
	OutPlayerID string    `db:"out_player_public_id"`
	InPlayerID  string    `db:"in_player_public_id"`
	CreatedAt   time.Time `db:"created_at"`
}

func rosterFromRow(row rosterTableModel) roster.Roster {
	return roster.Roster{
		ID:        row.PublicID,
		UserID:    row.UserID,
		Week:      row.Week,
		Budget:    row.Budget,
		PlayerIDs: append([]string(nil), row.PlayerIDs...),
		TotalCost: row.TotalCost,
		Points:    row.Points,
		Version:   row.Version,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

func transferFromRow(row transferTableModel) roster.Transfer {
	return roster.Transfer{
		ID:          row.PublicID,
		UserID:      row.UserID,
		Week:        row.Week,
		OutPlayerID: row.OutPlayerID,
		InPlayerID:  row.InPlayerID,
		CreatedAt:   row.CreatedAt,
	}
}
