package postgres

import (
	"time"

	"github.com/lib/pq"

	"github.com/mlbb-fantasy/api/internal/domain/league"
)

type leagueTableModel struct {
	ID            int64          `db:"id"`
	PublicID      string         `db:"public_id"`
	Name          string         `db:"name"`
	Code          string         `db:"code"`
	OwnerUserID   string         `db:"owner_user_public_id"`
	MemberUserIDs pq.StringArray `db:"member_user_ids"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"`
}

func leagueFromRow(row leagueTableModel) league.League {
	return league.League{
		ID:            row.PublicID,
		Name:          row.Name,
		Code:          row.Code,
		OwnerUserID:   row.OwnerUserID,
		MemberUserIDs: append([]string(nil), row.MemberUserIDs...),
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
}
