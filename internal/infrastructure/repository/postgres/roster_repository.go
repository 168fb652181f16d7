package postgres

import (
	"context"
	"fmt"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/mlbb-fantasy/api/internal/domain/roster"
)

const rosterSelectColumns = `id, public_id, user_public_id, week, budget, player_ids, total_cost, points, version, created_at, updated_at`

type RosterRepository struct {
	db *sqlx.DB
}

func NewRosterRepository(db *sqlx.DB) *RosterRepository {
	return &RosterRepository{db: db}
}

func (r *RosterRepository) Create(ctx context.Context, rst roster.Roster) error {
	const query = `INSERT INTO rosters (public_id, user_public_id, week, budget, player_ids, total_cost, points, version, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.ExecContext(ctx, query,
		rst.ID, rst.UserID, rst.Week, rst.Budget, pq.StringArray(rst.PlayerIDs),
		rst.TotalCost, rst.Points, rst.Version, rst.CreatedAt, rst.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: user %s week %d", roster.ErrAlreadyExists, rst.UserID, rst.Week)
		}
		return fmt.Errorf("create roster: %w", err)
	}
	return nil
}

func (r *RosterRepository) GetByUserAndWeek(ctx context.Context, userID string, week int) (roster.Roster, bool, error) {
	query := fmt.Sprintf("SELECT %s FROM rosters WHERE user_public_id = $1 AND week = $2", rosterSelectColumns)

	var row rosterTableModel
	if err := r.db.GetContext(ctx, &row, query, userID, week); err != nil {
		if isNotFound(err) {
			return roster.Roster{}, false, nil
		}
		return roster.Roster{}, false, fmt.Errorf("get roster: %w", err)
	}

	return rosterFromRow(row), true, nil
}

// ApplyTransfer performs the conditional roster update and the audit insert
// in one transaction. The UPDATE is guarded on the stored version; zero rows
// affected means another writer won and nothing is committed.
func (r *RosterRepository) ApplyTransfer(ctx context.Context, rosterID string, expectedVersion int64, update roster.Update, audit roster.Transfer) (bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, crerr.Wrap(err, "begin transfer tx")
	}
	defer func() { _ = tx.Rollback() }()

	const updateQuery = `UPDATE rosters
SET player_ids = $1, total_cost = $2, version = version + 1, updated_at = $3
WHERE public_id = $4 AND version = $5`

	result, err := tx.ExecContext(ctx, updateQuery,
		pq.StringArray(update.PlayerIDs), update.TotalCost, audit.CreatedAt,
		rosterID, expectedVersion,
	)
	if err != nil {
		return false, crerr.Wrap(err, "update roster")
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, crerr.Wrap(err, "read affected rows")
	}
	if affected == 0 {
		return false, nil
	}

	const insertQuery = `INSERT INTO transfers (public_id, user_public_id, week, out_player_public_id, in_player_public_id, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`

	if _, err := tx.ExecContext(ctx, insertQuery,
		audit.ID, audit.UserID, audit.Week, audit.OutPlayerID, audit.InPlayerID, audit.CreatedAt,
	); err != nil {
		return false, crerr.Wrap(err, "insert transfer audit")
	}

	if err := tx.Commit(); err != nil {
		return false, crerr.Wrap(err, "commit transfer tx")
	}
	return true, nil
}

func (r *RosterRepository) SetPoints(ctx context.Context, userID string, week int, points int64) (bool, error) {
	const query = `UPDATE rosters
SET points = $1, version = version + 1, updated_at = NOW()
WHERE user_public_id = $2 AND week = $3`

	result, err := r.db.ExecContext(ctx, query, points, userID, week)
	if err != nil {
		return false, fmt.Errorf("set roster points: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("read affected rows: %w", err)
	}
	return affected > 0, nil
}

func (r *RosterRepository) SumPointsByUser(ctx context.Context, week *int) ([]roster.UserPoints, error) {
	query := `SELECT user_public_id, COALESCE(SUM(points), 0) AS points FROM rosters`
	var args []any
	if week != nil {
		query += " WHERE week = $1"
		args = append(args, *week)
	}
	query += " GROUP BY user_public_id"

	var rows []struct {
		UserID string `db:"user_public_id"`
		Points int64  `db:"points"`
	}
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("sum roster points: %w", err)
	}

	out := make([]roster.UserPoints, 0, len(rows))
	for _, row := range rows {
		out = append(out, roster.UserPoints{UserID: row.UserID, Points: row.Points})
	}
	return out, nil
}

func (r *RosterRepository) ListTransfers(ctx context.Context, userID string, week int) ([]roster.Transfer, error) {
	const query = `SELECT id, public_id, user_public_id, week, out_player_public_id, in_player_public_id, created_at
FROM transfers
WHERE user_public_id = $1 AND week = $2
ORDER BY id`

	var rows []transferTableModel
	if err := r.db.SelectContext(ctx, &rows, query, userID, week); err != nil {
		return nil, fmt.Errorf("list transfers: %w", err)
	}

	out := make([]roster.Transfer, 0, len(rows))
	for _, row := range rows {
		out = append(out, transferFromRow(row))
	}
	return out, nil
}
