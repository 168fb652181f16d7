package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/sourcegraph/conc/pool"

	"github.com/mlbb-fantasy/api/internal/domain/roster"
	"github.com/mlbb-fantasy/api/internal/domain/user"
	"github.com/mlbb-fantasy/api/internal/platform/logging"
)

const (
	defaultLeaderboardLimit = 50
	maxLeaderboardLimit     = 500
	hydrationWorkers        = 8
)

// LeaderboardRow is one ranked entry: a user and their summed roster points.
type LeaderboardRow struct {
	UserID   string
	Username string
	Points   int64
}

type LeaderboardService struct {
	rosterRepo roster.Repository
	userRepo   user.Repository
	logger     *logging.Logger
}

func NewLeaderboardService(rosterRepo roster.Repository, userRepo user.Repository, logger *logging.Logger) *LeaderboardService {
	if logger == nil {
		logger = logging.Default()
	}

	return &LeaderboardService{
		rosterRepo: rosterRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

// Leaderboard groups rosters by user, summing points, optionally scoped to
// one week. Rows are ordered by points descending; equal points order by
// user id ascending so pagination is deterministic. Usernames resolve
// through the account store with a sentinel fallback for dangling user ids.
func (s *LeaderboardService) Leaderboard(ctx context.Context, week *int, limit int) ([]LeaderboardRow, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeaderboardService.Leaderboard")
	defer span.End()

	if week != nil && *week <= 0 {
		return nil, fmt.Errorf("%w: week must be greater than zero", ErrInvalidInput)
	}
	if limit <= 0 {
		limit = defaultLeaderboardLimit
	}
	if limit > maxLeaderboardLimit {
		limit = maxLeaderboardLimit
	}

	grouped, err := s.rosterRepo.SumPointsByUser(ctx, week)
	if err != nil {
		return nil, fmt.Errorf("sum roster points: %w", err)
	}

	sort.Slice(grouped, func(i, j int) bool {
		if grouped[i].Points != grouped[j].Points {
			return grouped[i].Points > grouped[j].Points
		}
		return grouped[i].UserID < grouped[j].UserID
	})
	if len(grouped) > limit {
		grouped = grouped[:limit]
	}

	rows := make([]LeaderboardRow, len(grouped))
	hydrate := pool.New().WithErrors().WithMaxGoroutines(hydrationWorkers)
	for i, entry := range grouped {
		hydrate.Go(func() error {
			username := user.UnknownUsername
			account, exists, err := s.userRepo.GetByID(ctx, entry.UserID)
			if err != nil {
				return fmt.Errorf("resolve username for user=%s: %w", entry.UserID, err)
			}
			if exists {
				username = account.Username
			}
			rows[i] = LeaderboardRow{
				UserID:   entry.UserID,
				Username: username,
				Points:   entry.Points,
			}
			return nil
		})
	}
	if err := hydrate.Wait(); err != nil {
		return nil, err
	}

	return rows, nil
}
