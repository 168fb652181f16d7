package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/mlbb-fantasy/api/internal/domain/matchweek"
)

type matchweekTableModel struct {
	ID        int64      `db:"id"`
	PublicID  string     `db:"public_id"`
	Week      int        `db:"week"`
	Name      string     `db:"name"`
	IsCurrent bool       `db:"is_current"`
	LockTime  *time.Time `db:"lock_time"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
}

func matchweekFromRow(row matchweekTableModel) matchweek.Matchweek {
	return matchweek.Matchweek{
		ID:        row.PublicID,
		Week:      row.Week,
		Name:      row.Name,
		IsCurrent: row.IsCurrent,
		LockTime:  row.LockTime,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

type MatchweekRepository struct {
	db *sqlx.DB
}

func NewMatchweekRepository(db *sqlx.DB) *MatchweekRepository {
	return &MatchweekRepository{db: db}
}

func (r *MatchweekRepository) List(ctx context.Context) ([]matchweek.Matchweek, error) {
	const query = `SELECT id, public_id, week, name, is_current, lock_time, created_at, updated_at
FROM matchweeks
ORDER BY week`

	var rows []matchweekTableModel
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list matchweeks: %w", err)
	}

	out := make([]matchweek.Matchweek, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchweekFromRow(row))
	}
	return out, nil
}

func (r *MatchweekRepository) Create(ctx context.Context, m matchweek.Matchweek) error {
	const query = `INSERT INTO matchweeks (public_id, week, name, is_current, lock_time, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecContext(ctx, query,
		m.ID, m.Week, m.Name, m.IsCurrent, m.LockTime, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create matchweek: %w", err)
	}
	return nil
}
