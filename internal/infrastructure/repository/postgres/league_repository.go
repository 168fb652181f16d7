package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/mlbb-fantasy/api/internal/domain/league"
)

const leagueSelectColumns = `id, public_id, name, code, owner_user_public_id, member_user_ids, created_at, updated_at`

type LeagueRepository struct {
	db *sqlx.DB
}

func NewLeagueRepository(db *sqlx.DB) *LeagueRepository {
	return &LeagueRepository{db: db}
}

func (r *LeagueRepository) Create(ctx context.Context, l league.League) error {
	const query = `INSERT INTO leagues (public_id, name, code, owner_user_public_id, member_user_ids, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecContext(ctx, query,
		l.ID, l.Name, l.Code, l.OwnerUserID, pq.StringArray(l.MemberUserIDs),
		l.CreatedAt, l.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create league: %w", err)
	}
	return nil
}

func (r *LeagueRepository) GetByID(ctx context.Context, leagueID string) (league.League, bool, error) {
	query := fmt.Sprintf("SELECT %s FROM leagues WHERE public_id = $1", leagueSelectColumns)

	var row leagueTableModel
	if err := r.db.GetContext(ctx, &row, query, leagueID); err != nil {
		if isNotFound(err) {
			return league.League{}, false, nil
		}
		return league.League{}, false, fmt.Errorf("get league by id: %w", err)
	}

	return leagueFromRow(row), true, nil
}

func (r *LeagueRepository) GetByCode(ctx context.Context, code string) (league.League, bool, error) {
	query := fmt.Sprintf("SELECT %s FROM leagues WHERE code = $1", leagueSelectColumns)

	var row leagueTableModel
	if err := r.db.GetContext(ctx, &row, query, code); err != nil {
		if isNotFound(err) {
			return league.League{}, false, nil
		}
		return league.League{}, false, fmt.Errorf("get league by code: %w", err)
	}

	return leagueFromRow(row), true, nil
}

// AddMember appends the user only when not already present, so re-joining
// stays idempotent without a read-modify-write cycle.
func (r *LeagueRepository) AddMember(ctx context.Context, leagueID string, userID string) error {
	const query = `UPDATE leagues
SET member_user_ids = array_append(member_user_ids, $2), updated_at = NOW()
WHERE public_id = $1 AND NOT ($2 = ANY(member_user_ids))`

	if _, err := r.db.ExecContext(ctx, query, leagueID, userID); err != nil {
		return fmt.Errorf("add league member: %w", err)
	}
	return nil
}
