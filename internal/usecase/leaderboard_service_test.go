package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlbb-fantasy/api/internal/domain/roster"
	"github.com/mlbb-fantasy/api/internal/domain/user"
	"github.com/mlbb-fantasy/api/internal/infrastructure/repository/memory"
	"github.com/mlbb-fantasy/api/internal/platform/logging"
)

func seedRoster(t *testing.T, repo *memory.RosterRepository, id int, userID string, week int, points int64) {
	t.Helper()

	err := repo.Create(context.Background(), roster.Roster{
		ID:        testID(id),
		UserID:    userID,
		Week:      week,
		Budget:    roster.DefaultBudget,
		PlayerIDs: []string{testID(1)},
		TotalCost: 40,
		Points:    points,
		Version:   1,
		CreatedAt: testClock(),
		UpdatedAt: testClock(),
	})
	require.NoError(t, err)
}

func TestLeaderboardSumsAcrossWeeks(t *testing.T) {
	rosterRepo := memory.NewRosterRepository()
	seedRoster(t, rosterRepo, 100, testID(9), 1, 120)
	seedRoster(t, rosterRepo, 101, testID(9), 2, 80)
	seedRoster(t, rosterRepo, 102, testID(8), 1, 150)

	userRepo := memory.NewUserRepository([]user.User{
		{ID: testID(9), Username: "demo_manager", Email: "demo@example.com", CreatedAt: testClock()},
		{ID: testID(8), Username: "rival_manager", Email: "rival@example.com", CreatedAt: testClock()},
	})
	svc := NewLeaderboardService(rosterRepo, userRepo, logging.NewNop())

	rows, err := svc.Leaderboard(context.Background(), nil, 0)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "demo_manager", rows[0].Username)
	assert.Equal(t, int64(200), rows[0].Points)
	assert.Equal(t, "rival_manager", rows[1].Username)
	assert.Equal(t, int64(150), rows[1].Points)
}

func TestLeaderboardWeekFilter(t *testing.T) {
	rosterRepo := memory.NewRosterRepository()
	seedRoster(t, rosterRepo, 100, testID(9), 1, 120)
	seedRoster(t, rosterRepo, 101, testID(9), 2, 80)
	seedRoster(t, rosterRepo, 102, testID(8), 1, 150)

	userRepo := memory.NewUserRepository([]user.User{
		{ID: testID(9), Username: "demo_manager", Email: "demo@example.com"},
		{ID: testID(8), Username: "rival_manager", Email: "rival@example.com"},
	})
	svc := NewLeaderboardService(rosterRepo, userRepo, logging.NewNop())

	week := 2
	rows, err := svc.Leaderboard(context.Background(), &week, 0)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, testID(9), rows[0].UserID)
	assert.Equal(t, int64(80), rows[0].Points)
}

func TestLeaderboardUnknownUsernameFallback(t *testing.T) {
	rosterRepo := memory.NewRosterRepository()
	seedRoster(t, rosterRepo, 100, testID(7), 1, 50)

	svc := NewLeaderboardService(rosterRepo, memory.NewUserRepository(nil), logging.NewNop())

	rows, err := svc.Leaderboard(context.Background(), nil, 0)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, user.UnknownUsername, rows[0].Username)
}

func TestLeaderboardTieBreaksByUserID(t *testing.T) {
	rosterRepo := memory.NewRosterRepository()
	seedRoster(t, rosterRepo, 100, testID(5), 1, 90)
	seedRoster(t, rosterRepo, 101, testID(3), 1, 90)
	seedRoster(t, rosterRepo, 102, testID(4), 1, 90)

	svc := NewLeaderboardService(rosterRepo, memory.NewUserRepository(nil), logging.NewNop())

	rows, err := svc.Leaderboard(context.Background(), nil, 0)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, testID(3), rows[0].UserID)
	assert.Equal(t, testID(4), rows[1].UserID)
	assert.Equal(t, testID(5), rows[2].UserID)
}

func TestLeaderboardLimitTruncates(t *testing.T) {
	rosterRepo := memory.NewRosterRepository()
	for i := 0; i < 5; i++ {
		seedRoster(t, rosterRepo, 100+i, testID(10+i), 1, int64(100-i))
	}

	svc := NewLeaderboardService(rosterRepo, memory.NewUserRepository(nil), logging.NewNop())

	rows, err := svc.Leaderboard(context.Background(), nil, 2)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, int64(100), rows[0].Points)
	assert.Equal(t, int64(99), rows[1].Points)
}

func TestLeaderboardRejectsNonPositiveWeek(t *testing.T) {
	svc := NewLeaderboardService(memory.NewRosterRepository(), memory.NewUserRepository(nil), logging.NewNop())

	week := 0
	_, err := svc.Leaderboard(context.Background(), &week, 0)
	require.ErrorIs(t, err, ErrInvalidInput)
}
