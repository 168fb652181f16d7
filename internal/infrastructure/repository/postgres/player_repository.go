package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/mlbb-fantasy/api/internal/domain/player"
)

const playerSelectColumns = `id, public_id, name, ign, team, role, cost, kda, damage, objectives, win_rate, mvp_count, photo_url, created_at, updated_at`

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) List(ctx context.Context, filter player.Filter) ([]player.Player, error) {
	var (
		conditions []string
		args       []any
	)
	if filter.Role != "" {
		args = append(args, string(filter.Role))
		conditions = append(conditions, fmt.Sprintf("role = $%d", len(args)))
	}
	if filter.Team != "" {
		args = append(args, filter.Team)
		conditions = append(conditions, fmt.Sprintf("team = $%d", len(args)))
	}

	query := fmt.Sprintf("SELECT %s FROM players", playerSelectColumns)
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY id"

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerFromRow(row))
	}
	return out, nil
}

func (r *PlayerRepository) GetByIDs(ctx context.Context, playerIDs []string) ([]player.Player, error) {
	if len(playerIDs) == 0 {
		return nil, nil
	}

	query := fmt.Sprintf("SELECT %s FROM players WHERE public_id = ANY($1) ORDER BY id", playerSelectColumns)

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, pq.Array(playerIDs)); err != nil {
		return nil, fmt.Errorf("get players by ids: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerFromRow(row))
	}
	return out, nil
}

func (r *PlayerRepository) Create(ctx context.Context, p player.Player) error {
	const query = `INSERT INTO players (public_id, name, ign, team, role, cost, kda, damage, objectives, win_rate, mvp_count, photo_url, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	_, err := r.db.ExecContext(ctx, query,
		p.ID, p.Name, p.IGN, p.Team, string(p.Role), p.Cost,
		p.KDA, p.Damage, p.Objectives, p.WinRate, p.MVPCount, p.PhotoURL,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create player: %w", err)
	}
	return nil
}
