package postgres

import (
	"time"

	"github.com/mlbb-fantasy/api/internal/domain/player"
)

type playerTableModel struct {
	ID         int64     `db:"id"`
	PublicID   string    `db:"public_id"`
	Name       string    `db:"name"`
	IGN        string    `db:"ign"`
	Team       string    `db:"team"`
	Role       string    `db:"role"`
	Cost       int64     `db:"cost"`
	KDA        float64   `db:"kda"`
	Damage     int64     `db:"damage"`
	Objectives int64     `db:"objectives"`
	WinRate    float64   `db:"win_rate"`
	MVPCount   int       `db:"mvp_count"`
	PhotoURL   string    `db:"photo_url"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

func playerFromRow(row playerTableModel) player.Player {
	return player.Player{
		ID:         row.PublicID,
		Name:       row.Name,
		IGN:        row.IGN,
		Team:       row.Team,
		Role:       player.Role(row.Role),
		Cost:       row.Cost,
		KDA:        row.KDA,
		Damage:     row.Damage,
		Objectives: row.Objectives,
		WinRate:    row.WinRate,
		MVPCount:   row.MVPCount,
		PhotoURL:   row.PhotoURL,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
}
